package service

import (
	"context"
	"errors"
	"time"

	"github.com/iain-kirkham/Mental-Health-App/internal/core/domain"
	"github.com/iain-kirkham/Mental-Health-App/internal/core/ports"
)

// TaskService is not scoped to a user: tasks are shared by every caller.
type TaskService struct {
	taskRepository ports.TaskRepository
}

func NewTaskService(taskRepository ports.TaskRepository) *TaskService {
	return &TaskService{taskRepository: taskRepository}
}

func (s *TaskService) List(ctx context.Context) ([]domain.Task, error) {
	return s.taskRepository.List(ctx)
}

func (s *TaskService) Get(ctx context.Context, id uint64) (domain.Task, error) {
	return s.taskRepository.GetByID(ctx, id)
}

func (s *TaskService) ListByDate(ctx context.Context, date time.Time) ([]domain.Task, error) {
	return s.taskRepository.ListByDate(ctx, date)
}

func (s *TaskService) ListByDateRange(ctx context.Context, start, end time.Time) ([]domain.Task, error) {
	return s.taskRepository.ListByDateRange(ctx, start, end)
}

func (s *TaskService) Create(ctx context.Context, input domain.TaskInput) (domain.Task, error) {
	return s.taskRepository.Create(ctx, domain.NewTask(input))
}

// Update overwrites the task and replaces its subtasks wholesale.
func (s *TaskService) Update(ctx context.Context, id uint64, input domain.TaskInput) (domain.Task, error) {
	return s.taskRepository.UpdateTask(ctx, id, func(task *domain.Task) error {
		task.Apply(input)
		return nil
	})
}

func (s *TaskService) Delete(ctx context.Context, id uint64) error {
	return s.taskRepository.Delete(ctx, id)
}

func (s *TaskService) SetCompletion(ctx context.Context, id uint64, completed bool) (domain.Task, error) {
	return s.taskRepository.UpdateTask(ctx, id, func(task *domain.Task) error {
		task.Completed = completed
		return nil
	})
}

func (s *TaskService) ListSubTasks(ctx context.Context, taskID uint64) ([]domain.SubTask, error) {
	return s.taskRepository.ListSubTasks(ctx, taskID)
}

func (s *TaskService) AddSubTask(ctx context.Context, taskID uint64, input domain.SubTaskInput) (domain.SubTask, error) {
	index := -1
	task, err := s.taskRepository.UpdateTask(ctx, taskID, func(task *domain.Task) error {
		index = task.AddSubTask(input)
		return nil
	})
	if err != nil {
		return domain.SubTask{}, err
	}
	return task.SubTasks[index], nil
}

func (s *TaskService) SetSubTaskCompletion(ctx context.Context, subTaskID uint64, completed bool) (domain.SubTask, error) {
	subTask, err := s.taskRepository.GetSubTask(ctx, subTaskID)
	if err != nil {
		return domain.SubTask{}, err
	}

	var updated domain.SubTask
	_, err = s.taskRepository.UpdateTask(ctx, subTask.TaskID, func(task *domain.Task) error {
		target, ok := task.SubTask(subTaskID)
		if !ok {
			return domain.ErrSubTaskNotFound
		}
		target.Completed = completed
		updated = *target
		return nil
	})
	if errors.Is(err, domain.ErrTaskNotFound) {
		return domain.SubTask{}, domain.ErrSubTaskNotFound
	}
	if err != nil {
		return domain.SubTask{}, err
	}
	return updated, nil
}

// DeleteSubTask detaches the subtask from its parent and removes it. Deleting a
// subtask that does not exist is not an error.
func (s *TaskService) DeleteSubTask(ctx context.Context, subTaskID uint64) error {
	subTask, err := s.taskRepository.GetSubTask(ctx, subTaskID)
	if errors.Is(err, domain.ErrSubTaskNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	_, err = s.taskRepository.UpdateTask(ctx, subTask.TaskID, func(task *domain.Task) error {
		task.RemoveSubTask(subTaskID)
		return nil
	})
	if errors.Is(err, domain.ErrTaskNotFound) {
		return nil
	}
	return err
}

var _ ports.TaskService = (*TaskService)(nil)
