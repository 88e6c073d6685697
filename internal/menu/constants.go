package menu

// Log messages
const (
	LogMsgGenerateCalled    = "Menu generation requested"
	LogMsgGenerateComplete  = "Menu generation complete"
	LogMsgSlotUnfilled      = "No eligible recipe for slot"
	LogMsgCreateMenuCalled  = "Menu creation requested"
	LogMsgEventPublishError = "Failed to publish menu event"
)

// Error context messages
const (
	ErrCtxFailedToGetMenu      = "failed to get menu"
	ErrCtxFailedToGetUser      = "failed to get menu owner"
	ErrCtxFailedToListRecipes  = "failed to list candidate recipes"
	ErrCtxFailedToReplaceMeals = "failed to persist generated meals"
	ErrCtxFailedToCreateMenu   = "failed to create menu"
)
