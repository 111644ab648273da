package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

var ErrInvalidTimeOfDay = errors.New("invalid time of day")

// TimeOfDay is a wall-clock time without a date, stored as MySQL TIME.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

// ParseTimeOfDay accepts "HH:MM" and "HH:MM:SS".
func ParseTimeOfDay(value string) (TimeOfDay, error) {
	value = strings.TrimSpace(value)
	for _, layout := range []string{"15:04:05", "15:04"} {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return TimeOfDay{Hour: parsed.Hour(), Minute: parsed.Minute(), Second: parsed.Second()}, nil
		}
	}
	return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, value)
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// Task is a planned item for a calendar day. SubTasks is the owned collection,
// kept in insertion order.
type Task struct {
	ID            uint64
	Title         string
	Description   *string
	ScheduledDate time.Time
	StartTime     *TimeOfDay
	Completed     bool
	SubTasks      []SubTask
}

type SubTask struct {
	ID        uint64
	TaskID    uint64
	Title     string
	Completed bool
}

type TaskInput struct {
	Title         string
	Description   *string
	ScheduledDate time.Time
	StartTime     *TimeOfDay
	Completed     bool
	SubTasks      []SubTaskInput
}

type SubTaskInput struct {
	Title     string
	Completed bool
}

// NewTask builds an unsaved task whose subtasks are linked to it.
func NewTask(input TaskInput) Task {
	task := Task{}
	task.Apply(input)
	return task
}

// Apply overwrites the scalar fields and replaces the subtask collection with
// fresh, unsaved subtasks built from the input.
func (t *Task) Apply(input TaskInput) {
	t.Title = input.Title
	t.Description = input.Description
	t.ScheduledDate = input.ScheduledDate
	t.StartTime = input.StartTime
	t.Completed = input.Completed

	t.SubTasks = make([]SubTask, 0, len(input.SubTasks))
	for _, sub := range input.SubTasks {
		t.AddSubTask(sub)
	}
}

// AddSubTask appends an unsaved subtask and returns its index in SubTasks.
func (t *Task) AddSubTask(input SubTaskInput) int {
	t.SubTasks = append(t.SubTasks, SubTask{
		TaskID:    t.ID,
		Title:     input.Title,
		Completed: input.Completed,
	})
	return len(t.SubTasks) - 1
}

// RemoveSubTask detaches the subtask with the given id. It reports whether a
// subtask was removed.
func (t *Task) RemoveSubTask(id uint64) bool {
	for i, sub := range t.SubTasks {
		if sub.ID == id {
			t.SubTasks = append(t.SubTasks[:i], t.SubTasks[i+1:]...)
			return true
		}
	}
	return false
}

// SubTask returns a pointer into the collection so callers can mutate it.
func (t *Task) SubTask(id uint64) (*SubTask, bool) {
	for i := range t.SubTasks {
		if t.SubTasks[i].ID == id {
			return &t.SubTasks[i], true
		}
	}
	return nil, false
}
