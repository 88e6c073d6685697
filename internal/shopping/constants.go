package shopping

// Log messages
const (
	LogMsgGenerateCalled    = "Shopping list generation requested"
	LogMsgGenerateComplete  = "Shopping list generation complete"
	LogMsgEventPublishError = "Failed to publish shopping list event"
)

// Error context messages
const (
	ErrCtxFailedToGetMenu    = "failed to get menu"
	ErrCtxFailedToGetUser    = "failed to get user"
	ErrCtxFailedToCreateList = "failed to persist shopping list"
	ErrCtxFailedToGetList    = "failed to get shopping list"
	ErrCtxFailedToSetItem    = "failed to update shopping list item"
)
