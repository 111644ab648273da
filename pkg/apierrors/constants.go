package apierrors

const (
	MsgInvalidID        = "invalidID"
	MsgInvalidPayload   = "invalidPayload"
	MsgValidationFailed = "validationFailed"
	MsgInvalidDate      = "invalidDate"
	MsgInvalidDateTime  = "invalidDateTime"
	MsgInvalidCompleted = "invalidCompleted"
	MsgMissingDateRange = "missingDateRange"
	MsgUnauthorized     = "unauthorized"
	MsgTooManyRequests  = "tooManyRequests"
	MsgInternalError    = "internalError"
)

const (
	MsgMoodEntryNotFound   = "moodEntryNotFound"
	MsgFailListMoodEntries = "failListMoodEntries"
	MsgFailGetMoodEntry    = "failGetMoodEntry"
	MsgFailCreateMoodEntry = "failCreateMoodEntry"
	MsgFailUpdateMoodEntry = "failUpdateMoodEntry"
	MsgFailDeleteMoodEntry = "failDeleteMoodEntry"
)

const (
	MsgFocusSessionNotFound   = "focusSessionNotFound"
	MsgFailListFocusSessions  = "failListFocusSessions"
	MsgFailGetFocusSession    = "failGetFocusSession"
	MsgFailCreateFocusSession = "failCreateFocusSession"
	MsgFailUpdateFocusSession = "failUpdateFocusSession"
	MsgFailDeleteFocusSession = "failDeleteFocusSession"
)

const (
	MsgTaskNotFound      = "taskNotFound"
	MsgSubTaskNotFound   = "subTaskNotFound"
	MsgFailListTasks     = "failListTasks"
	MsgFailGetTask       = "failGetTask"
	MsgFailCreateTask    = "failCreateTask"
	MsgFailUpdateTask    = "failUpdateTask"
	MsgFailDeleteTask    = "failDeleteTask"
	MsgFailListSubTasks  = "failListSubTasks"
	MsgFailCreateSubTask = "failCreateSubTask"
	MsgFailUpdateSubTask = "failUpdateSubTask"
	MsgFailDeleteSubTask = "failDeleteSubTask"
)

// Field-level messages. They are templates receiving Field and Param.
const (
	MsgValidationRequired = "validationRequired"
	MsgValidationMin      = "validationMin"
	MsgValidationMax      = "validationMax"
	MsgValidationDate     = "validationDate"
	MsgValidationTime     = "validationTime"
	MsgValidationInvalid  = "validationInvalid"
)
