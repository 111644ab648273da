package ports

import (
	"context"
	"time"

	"github.com/iain-kirkham/Mental-Health-App/internal/core/domain"
)

// TaskMutation edits a loaded task in place. Returning an error aborts the
// surrounding transaction.
type TaskMutation func(task *domain.Task) error

type TaskRepository interface {
	List(ctx context.Context) ([]domain.Task, error)
	GetByID(ctx context.Context, id uint64) (domain.Task, error)
	ListByDate(ctx context.Context, date time.Time) ([]domain.Task, error)
	ListByDateRange(ctx context.Context, start, end time.Time) ([]domain.Task, error)
	Create(ctx context.Context, task domain.Task) (domain.Task, error)
	// UpdateTask loads the task and its subtasks under a row lock, applies fn and
	// writes back the scalar fields and the subtask collection in one transaction.
	UpdateTask(ctx context.Context, id uint64, fn TaskMutation) (domain.Task, error)
	Delete(ctx context.Context, id uint64) error
	ListSubTasks(ctx context.Context, taskID uint64) ([]domain.SubTask, error)
	GetSubTask(ctx context.Context, id uint64) (domain.SubTask, error)
}

type TaskService interface {
	List(ctx context.Context) ([]domain.Task, error)
	Get(ctx context.Context, id uint64) (domain.Task, error)
	ListByDate(ctx context.Context, date time.Time) ([]domain.Task, error)
	ListByDateRange(ctx context.Context, start, end time.Time) ([]domain.Task, error)
	Create(ctx context.Context, input domain.TaskInput) (domain.Task, error)
	Update(ctx context.Context, id uint64, input domain.TaskInput) (domain.Task, error)
	Delete(ctx context.Context, id uint64) error
	SetCompletion(ctx context.Context, id uint64, completed bool) (domain.Task, error)
	ListSubTasks(ctx context.Context, taskID uint64) ([]domain.SubTask, error)
	AddSubTask(ctx context.Context, taskID uint64, input domain.SubTaskInput) (domain.SubTask, error)
	SetSubTaskCompletion(ctx context.Context, subTaskID uint64, completed bool) (domain.SubTask, error)
	DeleteSubTask(ctx context.Context, subTaskID uint64) error
}

// Pinger reports database liveness for health checks.
type Pinger interface {
	PingContext(ctx context.Context) error
}
