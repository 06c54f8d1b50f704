package handlers

import (
	"net/http"
	"time"

	"dealroom/middleware"
	"dealroom/models"
	"dealroom/services/tasks"
	"dealroom/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// ReminderHandler schedules deadline reminders on the async queue.
type ReminderHandler struct {
	Client *asynq.Client
}

// NewReminderHandler creates a ReminderHandler.
func NewReminderHandler(client *asynq.Client) *ReminderHandler {
	return &ReminderHandler{Client: client}
}

// ScheduleReminderHandler handles POST /api/deals/:id/reminders. The
// reminder fires as a push notification to the requesting user at fireAt.
func (h *ReminderHandler) ScheduleReminderHandler(c *gin.Context) {
	usr := middleware.CurrentUser(c)

	var req models.ReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.FireAt.Before(time.Now()) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fireAt must be in the future"})
		return
	}

	payload := models.ReminderPayload{
		UserID: usr.ID,
		DealID: c.Param("id"),
		Title:  req.Title,
		Body:   req.Body,
		FireAt: req.FireAt.Format(time.RFC3339),
	}

	task, opts, err := tasks.NewReminderTask(payload, req.FireAt)
	if err != nil {
		utils.GetLogger().Error("Failed to build reminder task", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to schedule reminder"})
		return
	}

	info, err := h.Client.Enqueue(task, opts...)
	if err != nil {
		utils.GetLogger().Error("Failed to enqueue reminder", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to schedule reminder"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"taskId": info.ID, "fireAt": payload.FireAt})
}
