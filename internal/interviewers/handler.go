package interviewers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ats-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the interviewers service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches interviewer routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/interviewers", h.list)
	rg.POST("/interviewers/sync", h.sync)
}

func (h *Handler) list(c *gin.Context) {
	out, err := h.Svc.Repo.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list interviewers", nil)
		return
	}
	if out == nil {
		out = []Interviewer{}
	}
	respond.OK(c, out)
}

func (h *Handler) sync(c *gin.Context) {
	created, err := h.Svc.Sync(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusBadGateway, "agent_provisioning_error", "failed to provision interviewers", nil)
		return
	}
	if created == nil {
		created = []Interviewer{}
	}
	respond.OK(c, gin.H{"created": created})
}
