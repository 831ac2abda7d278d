package applications

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"ats-backend/internal/shared/server/respond"
)

const maxResumeBytes = 10 << 20

// Handler wires HTTP handlers to the applications service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches application routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/apply", h.apply)
	rg.GET("/applications", h.list)
	rg.PATCH("/applications/status", h.updateStatus)
	rg.POST("/applications/:id/invite", h.invite)
}

func (h *Handler) apply(c *gin.Context) {
	file, header, err := c.Request.FormFile("resume")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "resume file is required", nil)
		return
	}
	defer file.Close()

	if header.Size > maxResumeBytes {
		respond.Error(c, http.StatusBadRequest, "validation_error", "resume file too large", nil)
		return
	}
	if !strings.Contains(strings.ToLower(header.Header.Get("Content-Type")), "pdf") &&
		!strings.HasSuffix(strings.ToLower(header.Filename), ".pdf") {
		respond.Error(c, http.StatusBadRequest, "validation_error", "only PDF files are supported", nil)
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, maxResumeBytes+1))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to read resume file", nil)
		return
	}

	id, err := h.Svc.Submit(c.Request.Context(), Submission{
		FullName:    c.PostForm("full_name"),
		Email:       c.PostForm("email"),
		Phone:       c.PostForm("phone"),
		CoverLetter: c.PostForm("cover_letter"),
		JobPosition: c.PostForm("job_position"),
		FileName:    header.Filename,
		File:        data,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, ErrExtraction):
			respond.Error(c, http.StatusUnprocessableEntity, "extraction_error", "failed to extract text from resume", nil)
		case errors.Is(err, ErrStorage):
			respond.Error(c, http.StatusInternalServerError, "storage_error", "failed to upload resume", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to save application", nil)
		}
		return
	}

	c.Set("applicationId", id)
	respond.OK(c, gin.H{"id": id})
}

func (h *Handler) list(c *gin.Context) {
	apps, err := h.Svc.Repo.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list applications", nil)
		return
	}

	resp := make([]ApplicationResponse, 0, len(apps))
	for _, app := range apps {
		resp = append(resp, toApplicationResponse(app))
	}
	respond.OK(c, resp)
}

type updateStatusRequest struct {
	ApplicationID string `json:"applicationId"`
	Status        string `json:"status"`
}

func (h *Handler) updateStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if req.ApplicationID == "" || req.Status == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "application ID and status are required", nil)
		return
	}
	if !ValidStatus(req.Status) {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid status", nil)
		return
	}
	id, err := strconv.ParseInt(req.ApplicationID, 10, 64)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid application ID format", nil)
		return
	}

	if err := h.Svc.Repo.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "application not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to update application status", nil)
		return
	}

	app, err := h.Svc.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch application", nil)
		return
	}
	respond.OK(c, toApplicationResponse(app))
}

type inviteRequest struct {
	NumberOfQuestions int `json:"numberOfQuestions"`
}

func (h *Handler) invite(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid application id", nil)
		return
	}

	req := inviteRequest{NumberOfQuestions: 5}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
			return
		}
	}
	if req.NumberOfQuestions <= 0 {
		req.NumberOfQuestions = 5
	}

	if err := h.Svc.Invite(c.Request.Context(), id, req.NumberOfQuestions); err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "application not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to send screening invite", nil)
		return
	}
	respond.OK(c, gin.H{"success": true})
}
