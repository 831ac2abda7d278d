package questions

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"ats-backend/internal/shared/server/respond"
	"ats-backend/internal/shared/telemetry"
)

const defaultQuestionCount = 5

// Handler wires HTTP handlers to the questions service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches question routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/generate-screening-questions", h.generate)
}

type generateRequest struct {
	ApplicantID       string `json:"applicantId"`
	UserEmail         string `json:"userEmail"`
	InterviewID       string `json:"interviewId"`
	NumberOfQuestions int    `json:"numberOfQuestions"`
}

type generateResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (h *Handler) generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.JSON(c, http.StatusBadRequest, generateResponse{
			Success: false,
			Message: "invalid request body",
		})
		return
	}
	if req.ApplicantID == "" || req.UserEmail == "" || req.InterviewID == "" {
		respond.JSON(c, http.StatusBadRequest, generateResponse{
			Success: false,
			Message: "Missing required fields: applicantId, userEmail, and interviewId are required",
		})
		return
	}

	count := req.NumberOfQuestions
	if count == 0 {
		count = defaultQuestionCount
	}

	telemetry.Info("questions.generate.requested", map[string]any{
		"applicant_id": req.ApplicantID,
		"interview_id": req.InterviewID,
		"count":        count,
	})
	c.Set("interviewId", req.InterviewID)

	if err := h.Svc.Generate(c.Request.Context(), req.InterviewID, req.UserEmail, count); err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, ErrInvalidInput):
			status = http.StatusBadRequest
		case errors.Is(err, ErrNotFound):
			status = http.StatusNotFound
		case errors.Is(err, ErrGeneration):
			status = http.StatusBadGateway
		}
		telemetry.Error("questions.generate.failed", map[string]any{
			"interview_id": req.InterviewID,
			"err":          err.Error(),
		})
		respond.JSON(c, status, generateResponse{
			Success: false,
			Message: fmt.Sprintf("Failed to generate screening questions: %v", err),
		})
		return
	}

	respond.OK(c, generateResponse{
		Success: true,
		Message: fmt.Sprintf("Generated %d tailored questions for screening interview", count),
	})
}
