package mapper

import (
	"github.com/iain-kirkham/Mental-Health-App/internal/adapter/http/dto"
	"github.com/iain-kirkham/Mental-Health-App/internal/core/domain"
)

func ToTaskResponses(tasks []domain.Task) []dto.TaskResponse {
	items := make([]dto.TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskResponse(task))
	}
	return items
}

func ToTaskResponse(task domain.Task) dto.TaskResponse {
	item := dto.TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Date:        task.ScheduledDate.Format(domain.DateLayout),
		Completed:   task.Completed,
		SubTasks:    ToSubTaskResponses(task.SubTasks),
	}

	if task.StartTime != nil {
		value := task.StartTime.String()
		item.StartTime = &value
	}

	return item
}

func ToSubTaskResponses(subTasks []domain.SubTask) []dto.SubTaskResponse {
	items := make([]dto.SubTaskResponse, 0, len(subTasks))
	for _, sub := range subTasks {
		items = append(items, ToSubTaskResponse(sub))
	}
	return items
}

func ToSubTaskResponse(sub domain.SubTask) dto.SubTaskResponse {
	return dto.SubTaskResponse{
		ID:        sub.ID,
		Title:     sub.Title,
		Completed: sub.Completed,
	}
}
