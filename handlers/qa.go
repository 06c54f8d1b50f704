package handlers

import (
	"errors"
	"net/http"

	"dealroom/middleware"
	"dealroom/models"
	"dealroom/services/qa"
	"dealroom/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// QAHandler serves the deal Q&A endpoints.
type QAHandler struct {
	QAService qa.QAService
}

// NewQAHandler creates a QAHandler.
func NewQAHandler(svc qa.QAService) *QAHandler {
	return &QAHandler{QAService: svc}
}

// AskQuestionHandler handles POST /api/deals/:id/questions.
func (h *QAHandler) AskQuestionHandler(c *gin.Context) {
	usr := middleware.CurrentUser(c)

	var req models.QuestionCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	q, err := h.QAService.AskQuestion(usr, c.Param("id"), req.Body)
	if err != nil {
		respondQAError(c, err)
		return
	}
	c.JSON(http.StatusCreated, q)
}

// AnswerQuestionHandler handles POST /api/deals/:id/questions/:questionId/answer.
func (h *QAHandler) AnswerQuestionHandler(c *gin.Context) {
	usr := middleware.CurrentUser(c)

	var req models.AnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	q, err := h.QAService.AnswerQuestion(usr, c.Param("questionId"), req.Answer)
	if err != nil {
		respondQAError(c, err)
		return
	}
	c.JSON(http.StatusOK, q)
}

// ListQuestionsHandler handles GET /api/deals/:id/questions.
func (h *QAHandler) ListQuestionsHandler(c *gin.Context) {
	usr := middleware.CurrentUser(c)

	questions, err := h.QAService.ListQuestions(usr, c.Param("id"))
	if err != nil {
		utils.GetLogger().Error("Failed to list questions", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list questions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"questions": questions})
}

func respondQAError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, qa.ErrNotPermitted):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, qa.ErrAlreadyAnswered):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		utils.GetLogger().Error("Q&A operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
