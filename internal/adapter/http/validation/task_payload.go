package validation

import (
	"strings"

	"github.com/iain-kirkham/Mental-Health-App/internal/adapter/http/dto"
	"github.com/iain-kirkham/Mental-Health-App/internal/core/domain"
)

// BuildTaskInput checks the fields the binding tags cannot express and
// converts the request into a domain input.
func BuildTaskInput(req dto.TaskRequest) (domain.TaskInput, error) {
	var fieldErrs Errors

	title := strings.TrimSpace(req.Title)
	if title == "" {
		fieldErrs = append(fieldErrs, FieldError{Field: "title", Rule: "required"})
	}

	input := domain.TaskInput{
		Title:       title,
		Description: req.Description,
		Completed:   req.Completed,
		SubTasks:    make([]domain.SubTaskInput, 0, len(req.SubTasks)),
	}

	if strings.TrimSpace(req.Date) == "" {
		fieldErrs = append(fieldErrs, FieldError{Field: "date", Rule: "required"})
	} else if date, err := ParseDate(req.Date); err != nil {
		fieldErrs = append(fieldErrs, FieldError{Field: "date", Rule: "date"})
	} else {
		input.ScheduledDate = date
	}

	if req.StartTime != nil && strings.TrimSpace(*req.StartTime) != "" {
		startTime, err := domain.ParseTimeOfDay(*req.StartTime)
		if err != nil {
			fieldErrs = append(fieldErrs, FieldError{Field: "startTime", Rule: "time"})
		} else {
			input.StartTime = &startTime
		}
	}

	for _, sub := range req.SubTasks {
		input.SubTasks = append(input.SubTasks, BuildSubTaskInput(sub))
	}

	if len(fieldErrs) > 0 {
		return domain.TaskInput{}, fieldErrs
	}
	return input, nil
}

// BuildSubTaskInput ignores any client supplied id: subtasks sent with a task
// always become fresh rows.
func BuildSubTaskInput(req dto.SubTaskRequest) domain.SubTaskInput {
	return domain.SubTaskInput{
		Title:     strings.TrimSpace(req.Title),
		Completed: req.Completed,
	}
}
