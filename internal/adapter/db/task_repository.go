package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/iain-kirkham/Mental-Health-App/internal/core/domain"
	"github.com/iain-kirkham/Mental-Health-App/internal/core/ports"
)

const (
	taskColumns    = "id, title, description, date, start_time, completed"
	subTaskColumns = "id, task_id, title, completed"
)

const (
	listTasksQuery = `
SELECT ` + taskColumns + `
FROM tasks
ORDER BY id;
`
	listTasksByDateQuery = `
SELECT ` + taskColumns + `
FROM tasks
WHERE date = ?
ORDER BY id;
`
	listTasksByDateRangeQuery = `
SELECT ` + taskColumns + `
FROM tasks
WHERE date BETWEEN ? AND ?
ORDER BY date, id;
`
	getTaskQuery = `
SELECT ` + taskColumns + `
FROM tasks
WHERE id = ?;
`
	lockTaskQuery = `
SELECT ` + taskColumns + `
FROM tasks
WHERE id = ?
FOR UPDATE;
`
	insertTaskQuery = `
INSERT INTO tasks (title, description, date, start_time, completed)
VALUES (?, ?, ?, ?, ?);
`
	updateTaskQuery = `
UPDATE tasks
SET title = ?, description = ?, date = ?, start_time = ?, completed = ?
WHERE id = ?;
`
	deleteTaskQuery = `DELETE FROM tasks WHERE id = ?;`

	listSubTasksQuery = `
SELECT ` + subTaskColumns + `
FROM sub_tasks
WHERE task_id = ?
ORDER BY id;
`
	listSubTasksForTasksQuery = `
SELECT ` + subTaskColumns + `
FROM sub_tasks
WHERE task_id IN (?)
ORDER BY id;
`
	getSubTaskQuery = `
SELECT ` + subTaskColumns + `
FROM sub_tasks
WHERE id = ?;
`
	insertSubTaskQuery = `
INSERT INTO sub_tasks (task_id, title, completed)
VALUES (?, ?, ?);
`
	updateSubTaskQuery = `
UPDATE sub_tasks
SET title = ?, completed = ?
WHERE id = ? AND task_id = ?;
`
	deleteSubTasksQuery     = `DELETE FROM sub_tasks WHERE task_id = ? AND id IN (?);`
	deleteTaskSubTasksQuery = `DELETE FROM sub_tasks WHERE task_id = ?;`
)

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID          uint64         `db:"id"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	Date        time.Time      `db:"date"`
	StartTime   sql.NullString `db:"start_time"`
	Completed   bool           `db:"completed"`
}

type subTaskRow struct {
	ID        uint64 `db:"id"`
	TaskID    uint64 `db:"task_id"`
	Title     string `db:"title"`
	Completed bool   `db:"completed"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) List(ctx context.Context) ([]domain.Task, error) {
	return r.list(ctx, listTasksQuery)
}

func (r *TaskRepository) ListByDate(ctx context.Context, date time.Time) ([]domain.Task, error) {
	return r.list(ctx, listTasksByDateQuery, date.Format(domain.DateLayout))
}

func (r *TaskRepository) ListByDateRange(ctx context.Context, start, end time.Time) ([]domain.Task, error) {
	return r.list(ctx, listTasksByDateRangeQuery, start.Format(domain.DateLayout), end.Format(domain.DateLayout))
}

func (r *TaskRepository) GetByID(ctx context.Context, id uint64) (domain.Task, error) {
	return getTask(ctx, r.db, getTaskQuery, id)
}

func (r *TaskRepository) Create(ctx context.Context, task domain.Task) (domain.Task, error) {
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		args, err := taskArgs(task)
		if err != nil {
			return err
		}

		result, err := tx.ExecContext(ctx, insertTaskQuery, args...)
		if err != nil {
			return fmt.Errorf("insert task: %w", err)
		}

		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("read task id: %w", err)
		}
		task.ID = uint64(id)

		for i := range task.SubTasks {
			task.SubTasks[i].TaskID = task.ID
			if err := insertSubTask(ctx, tx, &task.SubTasks[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return domain.Task{}, err
	}

	if task.SubTasks == nil {
		task.SubTasks = []domain.SubTask{}
	}
	return task, nil
}

func (r *TaskRepository) UpdateTask(ctx context.Context, id uint64, fn ports.TaskMutation) (domain.Task, error) {
	var task domain.Task
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		loaded, err := getTask(ctx, tx, lockTaskQuery, id)
		if err != nil {
			return err
		}

		previous := make(map[uint64]domain.SubTask, len(loaded.SubTasks))
		for _, sub := range loaded.SubTasks {
			previous[sub.ID] = sub
		}

		if err := fn(&loaded); err != nil {
			return err
		}
		loaded.ID = id

		args, err := taskArgs(loaded)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, updateTaskQuery, append(args, id)...); err != nil {
			return fmt.Errorf("update task %d: %w", id, err)
		}

		if err := syncSubTasks(ctx, tx, &loaded, previous); err != nil {
			return err
		}

		task = loaded
		return nil
	})
	if err != nil {
		return domain.Task{}, err
	}

	if task.SubTasks == nil {
		task.SubTasks = []domain.SubTask{}
	}
	return task, nil
}

func (r *TaskRepository) Delete(ctx context.Context, id uint64) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, deleteTaskSubTasksQuery, id); err != nil {
			return fmt.Errorf("delete subtasks of task %d: %w", id, err)
		}
		if _, err := tx.ExecContext(ctx, deleteTaskQuery, id); err != nil {
			return fmt.Errorf("delete task %d: %w", id, err)
		}
		return nil
	})
}

func (r *TaskRepository) ListSubTasks(ctx context.Context, taskID uint64) ([]domain.SubTask, error) {
	var rows []subTaskRow
	if err := r.db.SelectContext(ctx, &rows, listSubTasksQuery, taskID); err != nil {
		return nil, err
	}

	subTasks := make([]domain.SubTask, 0, len(rows))
	for _, row := range rows {
		subTasks = append(subTasks, mapSubTaskRowToDomain(row))
	}
	return subTasks, nil
}

func (r *TaskRepository) GetSubTask(ctx context.Context, id uint64) (domain.SubTask, error) {
	var row subTaskRow
	if err := r.db.GetContext(ctx, &row, getSubTaskQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.SubTask{}, domain.ErrSubTaskNotFound
		}
		return domain.SubTask{}, err
	}
	return mapSubTaskRowToDomain(row), nil
}

func (r *TaskRepository) list(ctx context.Context, query string, args ...any) ([]domain.Task, error) {
	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	ids := make([]uint64, 0, len(rows))
	for _, row := range rows {
		task, err := mapTaskRowToDomain(row)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
		ids = append(ids, row.ID)
	}

	subTasks, err := loadSubTasks(ctx, r.db, ids)
	if err != nil {
		return nil, err
	}
	for i := range tasks {
		if subs, ok := subTasks[tasks[i].ID]; ok {
			tasks[i].SubTasks = subs
		}
	}

	return tasks, nil
}

func getTask(ctx context.Context, q sqlx.ExtContext, query string, id uint64) (domain.Task, error) {
	var row taskRow
	if err := sqlx.GetContext(ctx, q, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}

	task, err := mapTaskRowToDomain(row)
	if err != nil {
		return domain.Task{}, err
	}

	subTasks, err := loadSubTasks(ctx, q, []uint64{id})
	if err != nil {
		return domain.Task{}, err
	}
	if subs, ok := subTasks[id]; ok {
		task.SubTasks = subs
	}
	return task, nil
}

// loadSubTasks fetches the subtasks of every task in ids with a single query,
// grouped by parent and kept in id order.
func loadSubTasks(ctx context.Context, q sqlx.ExtContext, ids []uint64) (map[uint64][]domain.SubTask, error) {
	grouped := make(map[uint64][]domain.SubTask, len(ids))
	if len(ids) == 0 {
		return grouped, nil
	}

	query, args, err := sqlx.In(listSubTasksForTasksQuery, ids)
	if err != nil {
		return nil, err
	}

	var rows []subTaskRow
	if err := sqlx.SelectContext(ctx, q, &rows, q.Rebind(query), args...); err != nil {
		return nil, err
	}

	for _, row := range rows {
		grouped[row.TaskID] = append(grouped[row.TaskID], mapSubTaskRowToDomain(row))
	}
	return grouped, nil
}

// syncSubTasks writes the mutated collection back: subtasks without an id are
// inserted, known ones are updated when changed and the rest are deleted.
func syncSubTasks(ctx context.Context, tx *sqlx.Tx, task *domain.Task, previous map[uint64]domain.SubTask) error {
	kept := make(map[uint64]struct{}, len(task.SubTasks))
	for _, sub := range task.SubTasks {
		if sub.ID != 0 {
			kept[sub.ID] = struct{}{}
		}
	}

	removed := make([]uint64, 0)
	for id := range previous {
		if _, ok := kept[id]; !ok {
			removed = append(removed, id)
		}
	}
	if len(removed) > 0 {
		slices.Sort(removed)
		query, args, err := sqlx.In(deleteSubTasksQuery, task.ID, removed)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, tx.Rebind(query), args...); err != nil {
			return fmt.Errorf("delete subtasks of task %d: %w", task.ID, err)
		}
	}

	for i := range task.SubTasks {
		sub := &task.SubTasks[i]
		sub.TaskID = task.ID

		if sub.ID == 0 {
			if err := insertSubTask(ctx, tx, sub); err != nil {
				return err
			}
			continue
		}

		if before, ok := previous[sub.ID]; ok && before == *sub {
			continue
		}
		if _, err := tx.ExecContext(ctx, updateSubTaskQuery, sub.Title, sub.Completed, sub.ID, task.ID); err != nil {
			return fmt.Errorf("update subtask %d: %w", sub.ID, err)
		}
	}

	return nil
}

func insertSubTask(ctx context.Context, tx *sqlx.Tx, sub *domain.SubTask) error {
	result, err := tx.ExecContext(ctx, insertSubTaskQuery, sub.TaskID, sub.Title, sub.Completed)
	if err != nil {
		return fmt.Errorf("insert subtask: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("read subtask id: %w", err)
	}
	sub.ID = uint64(id)
	return nil
}

func taskArgs(task domain.Task) ([]any, error) {
	if task.ScheduledDate.IsZero() {
		return nil, errors.New("task date is required")
	}

	var startTime sql.NullString
	if task.StartTime != nil {
		startTime = sql.NullString{String: task.StartTime.String(), Valid: true}
	}

	return []any{
		task.Title,
		task.Description,
		task.ScheduledDate.Format(domain.DateLayout),
		startTime,
		task.Completed,
	}, nil
}

func mapTaskRowToDomain(row taskRow) (domain.Task, error) {
	task := domain.Task{
		ID:            row.ID,
		Title:         row.Title,
		ScheduledDate: time.Date(row.Date.Year(), row.Date.Month(), row.Date.Day(), 0, 0, 0, 0, time.UTC),
		Completed:     row.Completed,
		SubTasks:      []domain.SubTask{},
	}

	if row.Description.Valid {
		value := row.Description.String
		task.Description = &value
	}

	if row.StartTime.Valid {
		startTime, err := domain.ParseTimeOfDay(row.StartTime.String)
		if err != nil {
			return domain.Task{}, fmt.Errorf("task %d: %w", row.ID, err)
		}
		task.StartTime = &startTime
	}

	return task, nil
}

func mapSubTaskRowToDomain(row subTaskRow) domain.SubTask {
	return domain.SubTask{
		ID:        row.ID,
		TaskID:    row.TaskID,
		Title:     row.Title,
		Completed: row.Completed,
	}
}
