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

type materialService interface {
	CreateMaterial(ctx context.Context, req service.CreateMaterialRequest) (*models.Material, error)
	UpdateMaterial(ctx context.Context, id string, req service.UpdateMaterialRequest) (*models.Material, error)
	DeleteMaterial(ctx context.Context, id string) error
	ReorderMaterial(ctx context.Context, id string, direction service.ReorderDirection) ([]models.Material, error)
	DownloadURL(ctx context.Context, id string) (string, error)
}

// MaterialHandler exposes leaf content items of the tree.
type MaterialHandler struct {
	service materialService
}

// NewMaterialHandler builds a new handler.
func NewMaterialHandler(service materialService) *MaterialHandler {
	return &MaterialHandler{service: service}
}

// Create godoc
// @Summary Create material
// @Tags Content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body service.CreateMaterialRequest true "Material payload"
// @Success 201 {object} response.Envelope
// @Router /content/materials [post]
func (h *MaterialHandler) Create(c *gin.Context) {
	var req service.CreateMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid material payload"))
		return
	}
	material, err := h.service.CreateMaterial(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, material)
}

// Update godoc
// @Summary Update material title and URL
// @Tags Content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Material ID"
// @Param payload body service.UpdateMaterialRequest true "Material payload"
// @Success 200 {object} response.Envelope
// @Router /content/materials/{id} [put]
func (h *MaterialHandler) Update(c *gin.Context) {
	var req service.UpdateMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid material payload"))
		return
	}
	material, err := h.service.UpdateMaterial(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, material, nil)
}

// Delete godoc
// @Summary Delete material
// @Tags Content
// @Security BearerAuth
// @Param id path string true "Material ID"
// @Success 204
// @Router /content/materials/{id} [delete]
func (h *MaterialHandler) Delete(c *gin.Context) {
	if err := h.service.DeleteMaterial(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Reorder godoc
// @Summary Move material one position among siblings
// @Tags Content
// @Accept json
// @Security BearerAuth
// @Param id path string true "Material ID"
// @Param payload body ReorderRequest true "Direction"
// @Success 200 {object} response.Envelope
// @Router /content/materials/{id}/reorder [post]
func (h *MaterialHandler) Reorder(c *gin.Context) {
	var req ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid reorder payload"))
		return
	}
	materials, err := h.service.ReorderMaterial(c.Request.Context(), c.Param("id"), req.Direction)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, materials, nil)
}

// Download godoc
// @Summary Resolve the direct-download link of a PDF material
// @Tags Content
// @Produce json
// @Security BearerAuth
// @Param id path string true "Material ID"
// @Success 200 {object} response.Envelope
// @Failure 422 {object} response.Envelope
// @Router /content/materials/{id}/download [get]
func (h *MaterialHandler) Download(c *gin.Context) {
	url, err := h.service.DownloadURL(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"download_url": url}, nil)
}
