package http

import (
	"github.com/gin-gonic/gin"

	"github.com/iain-kirkham/Mental-Health-App/internal/adapter/http/handlers"
)

type Handlers struct {
	Health       *handlers.HealthHandler
	MoodEntry    *handlers.MoodEntryHandler
	FocusSession *handlers.FocusSessionHandler
	Task         *handlers.TaskHandler
	Metrics      gin.HandlerFunc
}

// RegisterRoutes mounts the public probes at the root and every planner route
// under /api behind apiMiddlewares (authentication first).
func RegisterRoutes(r *gin.Engine, h Handlers, apiMiddlewares ...gin.HandlerFunc) {
	r.GET("/health", h.Health.CheckHealth)
	r.GET("/health/report", h.Health.CheckHealthReport)
	if h.Metrics != nil {
		r.GET("/metrics", h.Metrics)
	}

	api := r.Group("/api")
	api.Use(apiMiddlewares...)

	mood := api.Group("/mood")
	{
		mood.POST("", h.MoodEntry.CreateMoodEntry)
		mood.GET("", h.MoodEntry.ListMoodEntries)
		mood.GET("/:id", h.MoodEntry.GetMoodEntry)
		mood.PUT("/:id", h.MoodEntry.UpdateMoodEntry)
		mood.DELETE("/:id", h.MoodEntry.DeleteMoodEntry)
	}

	pomodoro := api.Group("/pomodoro")
	{
		pomodoro.POST("", h.FocusSession.CreateFocusSession)
		pomodoro.GET("", h.FocusSession.ListFocusSessions)
		pomodoro.GET("/:id", h.FocusSession.GetFocusSession)
		pomodoro.PUT("/:id", h.FocusSession.UpdateFocusSession)
		pomodoro.DELETE("/:id", h.FocusSession.DeleteFocusSession)
	}

	tasks := api.Group("/tasks")
	{
		tasks.GET("", h.Task.ListTasks)
		tasks.POST("", h.Task.CreateTask)
		tasks.GET("/week", h.Task.ListTasksForWeek)
		tasks.GET("/date/:date", h.Task.ListTasksByDate)
		tasks.GET("/:id", h.Task.GetTask)
		tasks.PUT("/:id", h.Task.UpdateTask)
		tasks.DELETE("/:id", h.Task.DeleteTask)
		tasks.PATCH("/:id/complete", h.Task.SetTaskCompletion)
		tasks.GET("/:id/subtasks", h.Task.ListSubTasks)
		tasks.POST("/:id/subtasks", h.Task.AddSubTask)
		tasks.PATCH("/subtasks/:subTaskId/complete", h.Task.SetSubTaskCompletion)
		tasks.DELETE("/subtasks/:subTaskId", h.Task.DeleteSubTask)
	}
}
