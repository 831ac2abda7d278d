package analytics

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"ats-backend/internal/shared/server/respond"
)

// Handler exposes the transcript-analytics endpoint.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches the analytics route to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analytics", h.analyze)
}

type analyzeRequest struct {
	Transcript    string   `json:"transcript" binding:"required"`
	MainQuestions []string `json:"mainQuestions"`
}

func (h *Handler) analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "transcript is required", nil)
		return
	}

	insights, err := h.Svc.Analyze(c.Request.Context(), req.Transcript, req.MainQuestions)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, ErrAnalysis):
			respond.Error(c, http.StatusBadGateway, "analysis_error", "failed to analyze transcript", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to analyze transcript", nil)
		}
		return
	}

	respond.OK(c, insights)
}
