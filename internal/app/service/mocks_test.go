package service_test

import (
	"context"
	"time"

	"github.com/iain-kirkham/Mental-Health-App/internal/core/domain"
	"github.com/iain-kirkham/Mental-Health-App/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type authResolverMock struct {
	mock.Mock
}

func (m *authResolverMock) CurrentUserID(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *authResolverMock) Claim(ctx context.Context, name string) (any, bool) {
	args := m.Called(ctx, name)
	return args.Get(0), args.Bool(1)
}

type moodRepositoryMock struct {
	mock.Mock
}

func (m *moodRepositoryMock) Create(ctx context.Context, entry domain.MoodEntry) (domain.MoodEntry, error) {
	args := m.Called(ctx, entry)
	return args.Get(0).(domain.MoodEntry), args.Error(1)
}

func (m *moodRepositoryMock) ListByOwner(ctx context.Context, ownerID string) ([]domain.MoodEntry, error) {
	args := m.Called(ctx, ownerID)
	var entries []domain.MoodEntry
	if value := args.Get(0); value != nil {
		entries = value.([]domain.MoodEntry)
	}
	return entries, args.Error(1)
}

func (m *moodRepositoryMock) ListByOwnerBetween(ctx context.Context, ownerID string, start, end time.Time) ([]domain.MoodEntry, error) {
	args := m.Called(ctx, ownerID, start, end)
	var entries []domain.MoodEntry
	if value := args.Get(0); value != nil {
		entries = value.([]domain.MoodEntry)
	}
	return entries, args.Error(1)
}

func (m *moodRepositoryMock) GetByIDAndOwner(ctx context.Context, id uint64, ownerID string) (domain.MoodEntry, error) {
	args := m.Called(ctx, id, ownerID)
	return args.Get(0).(domain.MoodEntry), args.Error(1)
}

func (m *moodRepositoryMock) Update(ctx context.Context, entry domain.MoodEntry) (domain.MoodEntry, error) {
	args := m.Called(ctx, entry)
	return args.Get(0).(domain.MoodEntry), args.Error(1)
}

func (m *moodRepositoryMock) Delete(ctx context.Context, id uint64, ownerID string) error {
	return m.Called(ctx, id, ownerID).Error(0)
}

type sessionRepositoryMock struct {
	mock.Mock
}

func (m *sessionRepositoryMock) Create(ctx context.Context, session domain.FocusSession) (domain.FocusSession, error) {
	args := m.Called(ctx, session)
	return args.Get(0).(domain.FocusSession), args.Error(1)
}

func (m *sessionRepositoryMock) ListByOwner(ctx context.Context, ownerID string) ([]domain.FocusSession, error) {
	args := m.Called(ctx, ownerID)
	var sessions []domain.FocusSession
	if value := args.Get(0); value != nil {
		sessions = value.([]domain.FocusSession)
	}
	return sessions, args.Error(1)
}

func (m *sessionRepositoryMock) ListByOwnerBetween(ctx context.Context, ownerID string, start, end time.Time) ([]domain.FocusSession, error) {
	args := m.Called(ctx, ownerID, start, end)
	var sessions []domain.FocusSession
	if value := args.Get(0); value != nil {
		sessions = value.([]domain.FocusSession)
	}
	return sessions, args.Error(1)
}

func (m *sessionRepositoryMock) GetByIDAndOwner(ctx context.Context, id uint64, ownerID string) (domain.FocusSession, error) {
	args := m.Called(ctx, id, ownerID)
	return args.Get(0).(domain.FocusSession), args.Error(1)
}

func (m *sessionRepositoryMock) Update(ctx context.Context, session domain.FocusSession) (domain.FocusSession, error) {
	args := m.Called(ctx, session)
	return args.Get(0).(domain.FocusSession), args.Error(1)
}

func (m *sessionRepositoryMock) Delete(ctx context.Context, id uint64, ownerID string) error {
	return m.Called(ctx, id, ownerID).Error(0)
}

// taskRepositoryFake keeps tasks in memory and runs UpdateTask mutations the way
// the SQL repository does: on a copy that only replaces the stored task when the
// mutation succeeds.
type taskRepositoryFake struct {
	tasks  map[uint64]domain.Task
	nextID uint64
	err    error
}

func newTaskRepositoryFake(tasks ...domain.Task) *taskRepositoryFake {
	fake := &taskRepositoryFake{tasks: make(map[uint64]domain.Task), nextID: 100}
	for _, task := range tasks {
		fake.tasks[task.ID] = task
	}
	return fake
}

func (f *taskRepositoryFake) List(context.Context) ([]domain.Task, error) {
	if f.err != nil {
		return nil, f.err
	}
	tasks := make([]domain.Task, 0, len(f.tasks))
	for _, task := range f.tasks {
		tasks = append(tasks, task)
	}
	return tasks, nil
}

func (f *taskRepositoryFake) GetByID(_ context.Context, id uint64) (domain.Task, error) {
	task, ok := f.tasks[id]
	if !ok {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	return task, nil
}

func (f *taskRepositoryFake) ListByDate(_ context.Context, date time.Time) ([]domain.Task, error) {
	return f.ListByDateRange(context.Background(), date, date)
}

func (f *taskRepositoryFake) ListByDateRange(_ context.Context, start, end time.Time) ([]domain.Task, error) {
	var tasks []domain.Task
	for _, task := range f.tasks {
		if !task.ScheduledDate.Before(start) && !task.ScheduledDate.After(end) {
			tasks = append(tasks, task)
		}
	}
	return tasks, nil
}

func (f *taskRepositoryFake) Create(_ context.Context, task domain.Task) (domain.Task, error) {
	if f.err != nil {
		return domain.Task{}, f.err
	}
	f.nextID++
	task.ID = f.nextID
	f.assignSubTaskIDs(&task)
	f.tasks[task.ID] = task
	return task, nil
}

func (f *taskRepositoryFake) UpdateTask(_ context.Context, id uint64, fn ports.TaskMutation) (domain.Task, error) {
	stored, ok := f.tasks[id]
	if !ok {
		return domain.Task{}, domain.ErrTaskNotFound
	}

	task := stored
	task.SubTasks = append([]domain.SubTask(nil), stored.SubTasks...)
	if err := fn(&task); err != nil {
		return domain.Task{}, err
	}
	if f.err != nil {
		return domain.Task{}, f.err
	}

	f.assignSubTaskIDs(&task)
	f.tasks[id] = task
	return task, nil
}

func (f *taskRepositoryFake) Delete(_ context.Context, id uint64) error {
	delete(f.tasks, id)
	return f.err
}

func (f *taskRepositoryFake) ListSubTasks(_ context.Context, taskID uint64) ([]domain.SubTask, error) {
	task, ok := f.tasks[taskID]
	if !ok {
		return []domain.SubTask{}, nil
	}
	return task.SubTasks, nil
}

func (f *taskRepositoryFake) GetSubTask(_ context.Context, id uint64) (domain.SubTask, error) {
	for _, task := range f.tasks {
		for _, sub := range task.SubTasks {
			if sub.ID == id {
				return sub, nil
			}
		}
	}
	return domain.SubTask{}, domain.ErrSubTaskNotFound
}

func (f *taskRepositoryFake) assignSubTaskIDs(task *domain.Task) {
	for i := range task.SubTasks {
		task.SubTasks[i].TaskID = task.ID
		if task.SubTasks[i].ID == 0 {
			f.nextID++
			task.SubTasks[i].ID = f.nextID
		}
	}
}

var (
	_ ports.MoodEntryRepository    = (*moodRepositoryMock)(nil)
	_ ports.FocusSessionRepository = (*sessionRepositoryMock)(nil)
	_ ports.TaskRepository         = (*taskRepositoryFake)(nil)
	_ ports.AuthResolver           = (*authResolverMock)(nil)
)
