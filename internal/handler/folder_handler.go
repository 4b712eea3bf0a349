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

type folderService interface {
	CreateFolder(ctx context.Context, req service.CreateFolderRequest) (*models.Folder, error)
	RenameFolder(ctx context.Context, id, name string) (*models.Folder, error)
	MoveFolder(ctx context.Context, id string, newParentID *string) (*models.Folder, error)
	DeleteFolder(ctx context.Context, id string) error
	ReorderFolder(ctx context.Context, id string, direction service.ReorderDirection) ([]models.Folder, error)
}

// RenameFolderRequest carries the new folder name.
type RenameFolderRequest struct {
	Name string `json:"name" binding:"required"`
}

// MoveFolderRequest carries the destination parent. A null parent moves the
// folder to the subject root.
type MoveFolderRequest struct {
	ParentID *string `json:"parent_id"`
}

// FolderHandler exposes folder operations of the content tree.
type FolderHandler struct {
	service folderService
}

// NewFolderHandler builds a new handler.
func NewFolderHandler(service folderService) *FolderHandler {
	return &FolderHandler{service: service}
}

// Create godoc
// @Summary Create folder
// @Tags Content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body service.CreateFolderRequest true "Folder payload"
// @Success 201 {object} response.Envelope
// @Router /content/folders [post]
func (h *FolderHandler) Create(c *gin.Context) {
	var req service.CreateFolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid folder payload"))
		return
	}
	folder, err := h.service.CreateFolder(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, folder)
}

// Rename godoc
// @Summary Rename folder
// @Tags Content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Folder ID"
// @Param payload body RenameFolderRequest true "New name"
// @Success 200 {object} response.Envelope
// @Router /content/folders/{id} [put]
func (h *FolderHandler) Rename(c *gin.Context) {
	var req RenameFolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid folder payload"))
		return
	}
	folder, err := h.service.RenameFolder(c.Request.Context(), c.Param("id"), req.Name)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, folder, nil)
}

// Move godoc
// @Summary Move folder to a new parent
// @Tags Content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Folder ID"
// @Param payload body MoveFolderRequest true "Destination parent"
// @Success 200 {object} response.Envelope
// @Router /content/folders/{id}/move [post]
func (h *FolderHandler) Move(c *gin.Context) {
	var req MoveFolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid move payload"))
		return
	}
	folder, err := h.service.MoveFolder(c.Request.Context(), c.Param("id"), req.ParentID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, folder, nil)
}

// Delete godoc
// @Summary Delete folder
// @Tags Content
// @Security BearerAuth
// @Param id path string true "Folder ID"
// @Success 204
// @Router /content/folders/{id} [delete]
func (h *FolderHandler) Delete(c *gin.Context) {
	if err := h.service.DeleteFolder(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Reorder godoc
// @Summary Move folder one position among siblings
// @Tags Content
// @Accept json
// @Security BearerAuth
// @Param id path string true "Folder ID"
// @Param payload body ReorderRequest true "Direction"
// @Success 200 {object} response.Envelope
// @Router /content/folders/{id}/reorder [post]
func (h *FolderHandler) Reorder(c *gin.Context) {
	var req ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid reorder payload"))
		return
	}
	folders, err := h.service.ReorderFolder(c.Request.Context(), c.Param("id"), req.Direction)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, folders, nil)
}
