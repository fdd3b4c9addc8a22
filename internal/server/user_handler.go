package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dkarlsen/fitquest/internal/domain"
	"github.com/dkarlsen/fitquest/internal/logger"
	"github.com/dkarlsen/fitquest/internal/repository"
	"github.com/dkarlsen/fitquest/internal/service"
)

// UserHandler serves the three gamified user operations.
type UserHandler struct {
	log   *logger.Logger
	users service.UserService
}

func NewUserHandler(log *logger.Logger, users service.UserService) *UserHandler {
	return &UserHandler{
		log:   log.With("handler", "UserHandler"),
		users: users,
	}
}

type surveyResponseDTO struct {
	QuestionID string    `json:"question_id" binding:"required"`
	Value      string    `json:"value"`
	Timestamp  time.Time `json:"timestamp"`
}

type createUserRequest struct {
	Name      string              `json:"name" binding:"required"`
	Responses []surveyResponseDTO `json:"responses"`
}

// POST /api/users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err)
		return
	}

	responses := make([]domain.SurveyResponse, 0, len(req.Responses))
	for _, r := range req.Responses {
		responses = append(responses, domain.SurveyResponse{
			QuestionID: r.QuestionID,
			Value:      r.Value,
			Timestamp:  r.Timestamp,
		})
	}

	result, err := h.users.CreateFromSurvey(c.Request.Context(), req.Name, responses)
	if err != nil {
		h.log.Errorw("creating user", "error", err)
		RespondError(c, http.StatusInternalServerError, "CREATE_FAILED", err)
		return
	}

	RespondCreated(c, result)
}

// GET /api/users/:id/dashboard
func (h *UserHandler) GetDashboard(c *gin.Context) {
	dashboard, err := h.users.Dashboard(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			RespondError(c, http.StatusNotFound, "USER_NOT_FOUND", err)
			return
		}
		h.log.Errorw("loading dashboard", "error", err)
		RespondError(c, http.StatusInternalServerError, "DASHBOARD_FAILED", err)
		return
	}

	RespondOK(c, dashboard)
}

// POST /api/users/:id/missions/:missionID/complete
func (h *UserHandler) CompleteMission(c *gin.Context) {
	outcome, err := h.users.CompleteMission(c.Request.Context(), c.Param("id"), c.Param("missionID"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			RespondError(c, http.StatusNotFound, "USER_NOT_FOUND", err)
			return
		}
		h.log.Errorw("completing mission", "error", err)
		RespondError(c, http.StatusInternalServerError, "COMPLETION_FAILED", err)
		return
	}

	RespondOK(c, outcome)
}
