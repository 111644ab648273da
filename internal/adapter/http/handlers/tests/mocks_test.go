package tests

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/iain-kirkham/Mental-Health-App/internal/core/domain"
	"github.com/iain-kirkham/Mental-Health-App/internal/core/ports"
)

type moodEntryServiceMock struct {
	mock.Mock
}

func (m *moodEntryServiceMock) Create(ctx context.Context, input domain.MoodEntryInput) (domain.MoodEntry, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.MoodEntry), args.Error(1)
}

func (m *moodEntryServiceMock) List(ctx context.Context) ([]domain.MoodEntry, error) {
	args := m.Called(ctx)
	return moodEntries(args.Get(0)), args.Error(1)
}

func (m *moodEntryServiceMock) ListByRange(ctx context.Context, start, end *time.Time) ([]domain.MoodEntry, error) {
	args := m.Called(ctx, start, end)
	return moodEntries(args.Get(0)), args.Error(1)
}

func (m *moodEntryServiceMock) Get(ctx context.Context, id uint64) (domain.MoodEntry, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.MoodEntry), args.Error(1)
}

func (m *moodEntryServiceMock) Update(ctx context.Context, id uint64, input domain.MoodEntryInput) (domain.MoodEntry, error) {
	args := m.Called(ctx, id, input)
	return args.Get(0).(domain.MoodEntry), args.Error(1)
}

func (m *moodEntryServiceMock) Delete(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

func moodEntries(value any) []domain.MoodEntry {
	if value == nil {
		return nil
	}
	return value.([]domain.MoodEntry)
}

type focusSessionServiceMock struct {
	mock.Mock
}

func (m *focusSessionServiceMock) Create(ctx context.Context, input domain.FocusSessionInput) (domain.FocusSession, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.FocusSession), args.Error(1)
}

func (m *focusSessionServiceMock) List(ctx context.Context) ([]domain.FocusSession, error) {
	args := m.Called(ctx)
	return focusSessions(args.Get(0)), args.Error(1)
}

func (m *focusSessionServiceMock) ListByRange(ctx context.Context, start, end *time.Time) ([]domain.FocusSession, error) {
	args := m.Called(ctx, start, end)
	return focusSessions(args.Get(0)), args.Error(1)
}

func (m *focusSessionServiceMock) Get(ctx context.Context, id uint64) (domain.FocusSession, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.FocusSession), args.Error(1)
}

func (m *focusSessionServiceMock) Update(ctx context.Context, id uint64, input domain.FocusSessionInput) (domain.FocusSession, error) {
	args := m.Called(ctx, id, input)
	return args.Get(0).(domain.FocusSession), args.Error(1)
}

func (m *focusSessionServiceMock) Delete(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

func focusSessions(value any) []domain.FocusSession {
	if value == nil {
		return nil
	}
	return value.([]domain.FocusSession)
}

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) List(ctx context.Context) ([]domain.Task, error) {
	args := m.Called(ctx)
	return tasks(args.Get(0)), args.Error(1)
}

func (m *taskServiceMock) Get(ctx context.Context, id uint64) (domain.Task, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) ListByDate(ctx context.Context, date time.Time) ([]domain.Task, error) {
	args := m.Called(ctx, date)
	return tasks(args.Get(0)), args.Error(1)
}

func (m *taskServiceMock) ListByDateRange(ctx context.Context, start, end time.Time) ([]domain.Task, error) {
	args := m.Called(ctx, start, end)
	return tasks(args.Get(0)), args.Error(1)
}

func (m *taskServiceMock) Create(ctx context.Context, input domain.TaskInput) (domain.Task, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) Update(ctx context.Context, id uint64, input domain.TaskInput) (domain.Task, error) {
	args := m.Called(ctx, id, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) Delete(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *taskServiceMock) SetCompletion(ctx context.Context, id uint64, completed bool) (domain.Task, error) {
	args := m.Called(ctx, id, completed)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) ListSubTasks(ctx context.Context, taskID uint64) ([]domain.SubTask, error) {
	args := m.Called(ctx, taskID)

	var subTasks []domain.SubTask
	if value := args.Get(0); value != nil {
		subTasks = value.([]domain.SubTask)
	}
	return subTasks, args.Error(1)
}

func (m *taskServiceMock) AddSubTask(ctx context.Context, taskID uint64, input domain.SubTaskInput) (domain.SubTask, error) {
	args := m.Called(ctx, taskID, input)
	return args.Get(0).(domain.SubTask), args.Error(1)
}

func (m *taskServiceMock) SetSubTaskCompletion(ctx context.Context, subTaskID uint64, completed bool) (domain.SubTask, error) {
	args := m.Called(ctx, subTaskID, completed)
	return args.Get(0).(domain.SubTask), args.Error(1)
}

func (m *taskServiceMock) DeleteSubTask(ctx context.Context, subTaskID uint64) error {
	return m.Called(ctx, subTaskID).Error(0)
}

func tasks(value any) []domain.Task {
	if value == nil {
		return nil
	}
	return value.([]domain.Task)
}

type pingerMock struct {
	mock.Mock
}

func (m *pingerMock) PingContext(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

var (
	_ ports.MoodEntryService    = (*moodEntryServiceMock)(nil)
	_ ports.FocusSessionService = (*focusSessionServiceMock)(nil)
	_ ports.TaskService         = (*taskServiceMock)(nil)
	_ ports.Pinger              = (*pingerMock)(nil)
)
