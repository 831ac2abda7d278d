package interviews

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"ats-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the interviews repo.
type Handler struct {
	Repo Repo
}

// NewHandler constructs a Handler.
func NewHandler(repo Repo) *Handler {
	return &Handler{Repo: repo}
}

// RegisterRoutes attaches interview routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/interviews", h.list)
	rg.GET("/interviews/:id", h.get)
	rg.POST("/interviews", h.create)
}

func (h *Handler) get(c *gin.Context) {
	interview, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "interview not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch interview", nil)
		return
	}
	respond.OK(c, interview)
}

func (h *Handler) list(c *gin.Context) {
	out, err := h.Repo.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list interviews", nil)
		return
	}
	if out == nil {
		out = []Interview{}
	}
	respond.OK(c, out)
}

type createRequest struct {
	Name      string `json:"name"`
	Objective string `json:"objective"`
	JD        string `json:"jd"`
}

func (h *Handler) create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "name is required", nil)
		return
	}

	interview := Interview{
		ID:        NewID(),
		Name:      strings.TrimSpace(req.Name),
		Objective: strings.TrimSpace(req.Objective),
		JD:        req.JD,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.Repo.Create(c.Request.Context(), interview); err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create interview", nil)
		return
	}
	respond.JSON(c, http.StatusCreated, interview)
}
