package user

// Log messages
const (
	LogMsgRegisterUserCalled    = "RegisterUser called"
	LogMsgUserRegistered        = "User registered"
	LogMsgUpdateHouseholdCalled = "UpdateHousehold called"
	LogMsgHouseholdUpdated      = "Household updated"
)

// Error contexts
const (
	ErrCtxFailedToCreateUser = "failed to create user"
	ErrCtxFailedToGetUser    = "failed to get user"
	ErrCtxFailedToUpdateUser = "failed to update user"
)
