package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/toppers-edu/admin-console-api/internal/models"
	"github.com/toppers-edu/admin-console-api/internal/service"
	appErrors "github.com/toppers-edu/admin-console-api/pkg/errors"
	"github.com/toppers-edu/admin-console-api/pkg/response"
)

type subjectService interface {
	ListSubjects(ctx context.Context) ([]models.Subject, error)
	CreateSubject(ctx context.Context, draft service.SubjectDraft) (*models.Subject, error)
	UpdateSubject(ctx context.Context, id string, draft service.SubjectDraft) (*models.Subject, error)
	DeleteSubject(ctx context.Context, id string) error
	ReorderSubject(ctx context.Context, id string, direction service.ReorderDirection) ([]models.Subject, error)
	ListScope(ctx context.Context, subjectID string, parentID *string) (*service.ScopeListing, error)
}

// ReorderRequest carries the single-step move direction.
type ReorderRequest struct {
	Direction service.ReorderDirection `json:"direction" binding:"required,oneof=up down"`
}

// SubjectHandler exposes the top level of the content tree.
type SubjectHandler struct {
	service subjectService
}

// NewSubjectHandler builds a new handler.
func NewSubjectHandler(service subjectService) *SubjectHandler {
	return &SubjectHandler{service: service}
}

// List godoc
// @Summary List subjects
// @Tags Content
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /content/subjects [get]
func (h *SubjectHandler) List(c *gin.Context) {
	subjects, err := h.service.ListSubjects(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, subjects, nil)
}

// Create godoc
// @Summary Create subject
// @Tags Content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body service.SubjectDraft true "Subject draft"
// @Success 201 {object} response.Envelope
// @Router /content/subjects [post]
func (h *SubjectHandler) Create(c *gin.Context) {
	var draft service.SubjectDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid subject payload"))
		return
	}
	subject, err := h.service.CreateSubject(c.Request.Context(), draft)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, subject)
}

// Update godoc
// @Summary Update subject
// @Tags Content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Subject ID"
// @Param payload body service.SubjectDraft true "Subject draft"
// @Success 200 {object} response.Envelope
// @Router /content/subjects/{id} [put]
func (h *SubjectHandler) Update(c *gin.Context) {
	var draft service.SubjectDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid subject payload"))
		return
	}
	subject, err := h.service.UpdateSubject(c.Request.Context(), c.Param("id"), draft)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, subject, nil)
}

// Delete godoc
// @Summary Delete subject
// @Tags Content
// @Security BearerAuth
// @Param id path string true "Subject ID"
// @Success 204
// @Router /content/subjects/{id} [delete]
func (h *SubjectHandler) Delete(c *gin.Context) {
	if err := h.service.DeleteSubject(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Reorder godoc
// @Summary Move subject one position
// @Tags Content
// @Accept json
// @Security BearerAuth
// @Param id path string true "Subject ID"
// @Param payload body ReorderRequest true "Direction"
// @Success 200 {object} response.Envelope
// @Router /content/subjects/{id}/reorder [post]
func (h *SubjectHandler) Reorder(c *gin.Context) {
	var req ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid reorder payload"))
		return
	}
	subjects, err := h.service.ReorderSubject(c.Request.Context(), c.Param("id"), req.Direction)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, subjects, nil)
}

// Children godoc
// @Summary List folders and materials of a scope
// @Tags Content
// @Produce json
// @Security BearerAuth
// @Param id path string true "Subject ID"
// @Param parent_id query string false "Parent folder ID, empty for subject root"
// @Success 200 {object} response.Envelope
// @Router /content/subjects/{id}/children [get]
func (h *SubjectHandler) Children(c *gin.Context) {
	var parentID *string
	if raw, ok := c.GetQuery("parent_id"); ok && raw != "" {
		parentID = &raw
	}
	listing, err := h.service.ListScope(c.Request.Context(), c.Param("id"), parentID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, listing, nil)
}
