package calls

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"ats-backend/internal/shared/server/respond"
)

// Handler exposes the call-registration endpoint.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches the call-registration route to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/register-call", h.registerCall)
}

type registerCallRequest struct {
	InterviewerID string         `json:"interviewer_id" binding:"required"`
	DynamicData   map[string]any `json:"dynamic_data"`
}

func (h *Handler) registerCall(c *gin.Context) {
	var req registerCallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "interviewer_id is required", nil)
		return
	}

	in := RegisterInput{
		InterviewerID: req.InterviewerID,
		DynamicData:   make(map[string]string, len(req.DynamicData)),
	}
	for k, v := range req.DynamicData {
		if k == "questions" {
			in.AdhocQuestions = stringSlice(v)
			continue
		}
		in.DynamicData[k] = fmt.Sprintf("%v", v)
	}

	resp, err := h.Svc.Register(c.Request.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, ErrInterviewerNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "interviewer not found", nil)
		case errors.Is(err, ErrOrigination):
			respond.Error(c, http.StatusBadGateway, "call_origination_error", "voice provider rejected the call", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to register call", nil)
		}
		return
	}

	respond.OK(c, gin.H{"registerCallResponse": resp})
}

// stringSlice coerces the caller-supplied questions value, which may be
// a JSON array or a single string.
func stringSlice(v any) []string {
	switch t := v.(type) {
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			out = append(out, fmt.Sprintf("%v", item))
		}
		return out
	case []string:
		return t
	case string:
		if t == "" {
			return nil
		}
		return []string{t}
	default:
		return nil
	}
}
