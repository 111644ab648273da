package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/iain-kirkham/Mental-Health-App/internal/adapter/http/dto"
	"github.com/iain-kirkham/Mental-Health-App/internal/adapter/http/mapper"
	"github.com/iain-kirkham/Mental-Health-App/internal/adapter/http/validation"
	"github.com/iain-kirkham/Mental-Health-App/internal/core/ports"
	"github.com/iain-kirkham/Mental-Health-App/pkg/apierrors"
)

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	tasks, err := h.taskService.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, apierrors.MsgTaskNotFound, apierrors.MsgFailListTasks, "failed to list tasks")
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskResponses(tasks))
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	task, err := h.taskService.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, apierrors.MsgTaskNotFound, apierrors.MsgFailGetTask,
			"failed to get task", zap.Uint64("task_id", id))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskResponse(task))
}

func (h *TaskHandler) ListTasksByDate(c *gin.Context) {
	date, err := validation.ParseDate(c.Param("date"))
	if err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidDate)
		return
	}

	tasks, err := h.taskService.ListByDate(c.Request.Context(), date)
	if err != nil {
		respondServiceError(c, err, apierrors.MsgTaskNotFound, apierrors.MsgFailListTasks,
			"failed to list tasks by date", zap.String("date", c.Param("date")))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskResponses(tasks))
}

// ListTasksForWeek requires both bounds; unlike the mood and pomodoro lists
// there is no fallback to the full list.
func (h *TaskHandler) ListTasksForWeek(c *gin.Context) {
	rawStart, hasStart := c.GetQuery("startDate")
	rawEnd, hasEnd := c.GetQuery("endDate")
	if !hasStart || !hasEnd {
		respondError(c, http.StatusBadRequest, apierrors.MsgMissingDateRange)
		return
	}

	start, err := validation.ParseDate(rawStart)
	if err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidDate)
		return
	}
	end, err := validation.ParseDate(rawEnd)
	if err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidDate)
		return
	}

	tasks, err := h.taskService.ListByDateRange(c.Request.Context(), start, end)
	if err != nil {
		respondServiceError(c, err, apierrors.MsgTaskNotFound, apierrors.MsgFailListTasks,
			"failed to list tasks for week", zap.String("start_date", rawStart), zap.String("end_date", rawEnd))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskResponses(tasks))
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req dto.TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	input, err := validation.BuildTaskInput(req)
	if err != nil {
		respondBindingError(c, err)
		return
	}

	task, err := h.taskService.Create(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, err, apierrors.MsgTaskNotFound, apierrors.MsgFailCreateTask, "failed to create task")
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskResponse(task))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req dto.TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	input, err := validation.BuildTaskInput(req)
	if err != nil {
		respondBindingError(c, err)
		return
	}

	task, err := h.taskService.Update(c.Request.Context(), id, input)
	if err != nil {
		respondServiceError(c, err, apierrors.MsgTaskNotFound, apierrors.MsgFailUpdateTask,
			"failed to update task", zap.Uint64("task_id", id))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskResponse(task))
}

// DeleteTask answers 204 whether or not the task existed.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.taskService.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, apierrors.MsgTaskNotFound, apierrors.MsgFailDeleteTask,
			"failed to delete task", zap.Uint64("task_id", id))
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TaskHandler) SetTaskCompletion(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	completed, ok := completedParam(c)
	if !ok {
		return
	}

	task, err := h.taskService.SetCompletion(c.Request.Context(), id, completed)
	if err != nil {
		respondServiceError(c, err, apierrors.MsgTaskNotFound, apierrors.MsgFailUpdateTask,
			"failed to update task completion", zap.Uint64("task_id", id))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskResponse(task))
}

func (h *TaskHandler) ListSubTasks(c *gin.Context) {
	taskID, ok := idParam(c, "id")
	if !ok {
		return
	}

	subTasks, err := h.taskService.ListSubTasks(c.Request.Context(), taskID)
	if err != nil {
		respondServiceError(c, err, apierrors.MsgTaskNotFound, apierrors.MsgFailListSubTasks,
			"failed to list subtasks", zap.Uint64("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToSubTaskResponses(subTasks))
}

func (h *TaskHandler) AddSubTask(c *gin.Context) {
	taskID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req dto.SubTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	subTask, err := h.taskService.AddSubTask(c.Request.Context(), taskID, validation.BuildSubTaskInput(req))
	if err != nil {
		respondServiceError(c, err, apierrors.MsgTaskNotFound, apierrors.MsgFailCreateSubTask,
			"failed to add subtask", zap.Uint64("task_id", taskID))
		return
	}

	c.JSON(http.StatusCreated, mapper.ToSubTaskResponse(subTask))
}

func (h *TaskHandler) SetSubTaskCompletion(c *gin.Context) {
	subTaskID, ok := idParam(c, "subTaskId")
	if !ok {
		return
	}
	completed, ok := completedParam(c)
	if !ok {
		return
	}

	subTask, err := h.taskService.SetSubTaskCompletion(c.Request.Context(), subTaskID, completed)
	if err != nil {
		respondServiceError(c, err, apierrors.MsgSubTaskNotFound, apierrors.MsgFailUpdateSubTask,
			"failed to update subtask completion", zap.Uint64("subtask_id", subTaskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToSubTaskResponse(subTask))
}

// DeleteSubTask answers 204 whether or not the subtask existed.
func (h *TaskHandler) DeleteSubTask(c *gin.Context) {
	subTaskID, ok := idParam(c, "subTaskId")
	if !ok {
		return
	}

	if err := h.taskService.DeleteSubTask(c.Request.Context(), subTaskID); err != nil {
		respondServiceError(c, err, apierrors.MsgSubTaskNotFound, apierrors.MsgFailDeleteSubTask,
			"failed to delete subtask", zap.Uint64("subtask_id", subTaskID))
		return
	}

	c.Status(http.StatusNoContent)
}
