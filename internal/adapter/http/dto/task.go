package dto

type TaskRequest struct {
	Title       string           `json:"title" binding:"max=255"`
	Description *string          `json:"description" binding:"omitempty,max=65535"`
	Date        string           `json:"date"`
	StartTime   *string          `json:"startTime"`
	Completed   bool             `json:"completed"`
	SubTasks    []SubTaskRequest `json:"subTasks" binding:"omitempty,dive"`
}

// SubTaskRequest accepts an id so clients can echo a task back, but it is
// never used to match existing rows.
type SubTaskRequest struct {
	ID        *uint64 `json:"id"`
	Title     string  `json:"title" binding:"max=255"`
	Completed bool    `json:"completed"`
}

type TaskResponse struct {
	ID          uint64            `json:"id"`
	Title       string            `json:"title"`
	Description *string           `json:"description"`
	Date        string            `json:"date"`
	StartTime   *string           `json:"startTime"`
	Completed   bool              `json:"completed"`
	SubTasks    []SubTaskResponse `json:"subTasks"`
}

type SubTaskResponse struct {
	ID        uint64 `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}
