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

type operatorService interface {
	List(ctx context.Context) ([]models.Operator, error)
	Create(ctx context.Context, req service.CreateOperatorRequest) (*models.Operator, error)
	Delete(ctx context.Context, id, requesterID string) error
}

// OperatorHandler exposes the operator registry.
type OperatorHandler struct {
	service operatorService
}

// NewOperatorHandler builds a new handler.
func NewOperatorHandler(service operatorService) *OperatorHandler {
	return &OperatorHandler{service: service}
}

// List godoc
// @Summary List operators
// @Tags Operators
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /operators [get]
func (h *OperatorHandler) List(c *gin.Context) {
	operators, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, operators, nil)
}

// Create godoc
// @Summary Register operator
// @Tags Operators
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body service.CreateOperatorRequest true "Operator payload"
// @Success 201 {object} response.Envelope
// @Router /operators [post]
func (h *OperatorHandler) Create(c *gin.Context) {
	var req service.CreateOperatorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid operator payload"))
		return
	}
	operator, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, operator)
}

// Delete godoc
// @Summary Remove operator
// @Tags Operators
// @Security BearerAuth
// @Param id path string true "Operator ID"
// @Success 204
// @Router /operators/{id} [delete]
func (h *OperatorHandler) Delete(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	if err := h.service.Delete(c.Request.Context(), c.Param("id"), claims.OperatorID); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
