package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/toppers-edu/admin-console-api/internal/models"
	appErrors "github.com/toppers-edu/admin-console-api/pkg/errors"
)

type operatorRepository interface {
	List(ctx context.Context) ([]models.Operator, error)
	FindByID(ctx context.Context, id string) (*models.Operator, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, operator *models.Operator) error
	Delete(ctx context.Context, id string) error
	CreateAccount(ctx context.Context, account *models.AuthAccount) error
}

// CreateOperatorRequest carries the payload for registering an operator.
type CreateOperatorRequest struct {
	Email    string              `json:"email" validate:"required,email"`
	Name     string              `json:"name" validate:"required"`
	Password string              `json:"password" validate:"required,min=8"`
	Role     models.OperatorRole `json:"role" validate:"omitempty,oneof=founder ceo owner"`
}

// OperatorService manages the operator registry.
type OperatorService struct {
	repo      operatorRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewOperatorService constructs an OperatorService instance.
func NewOperatorService(repo operatorRepository, validate *validator.Validate, logger *zap.Logger) *OperatorService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &OperatorService{repo: repo, validator: validate, logger: logger}
}

// List returns all operators, newest first.
func (s *OperatorService) List(ctx context.Context) ([]models.Operator, error) {
	operators, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list operators")
	}
	return operators, nil
}

// Create registers a new operator with its credential record. Emails are
// lowercased and must be unique across the registry.
func (s *OperatorService) Create(ctx context.Context, req CreateOperatorRequest) (*models.Operator, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid operator payload")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	role := req.Role
	if role == "" {
		role = models.RoleFounder
	}
	if !role.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown operator role")
	}

	exists, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check operator email")
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, "an operator with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to hash password")
	}

	account := &models.AuthAccount{Email: email, PasswordHash: string(hash)}
	if err := s.repo.CreateAccount(ctx, account); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create credential record")
	}

	operator := &models.Operator{
		Email: email,
		Name:  strings.TrimSpace(req.Name),
		Role:  role,
	}
	if err := s.repo.Create(ctx, operator); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create operator")
	}

	s.logger.Info("operator registered", zap.String("operator_id", operator.ID), zap.String("role", string(role)))
	return operator, nil
}

// Delete removes an operator from the registry. Operators cannot remove
// their own account.
func (s *OperatorService) Delete(ctx context.Context, id, requesterID string) error {
	if id == requesterID {
		return appErrors.Clone(appErrors.ErrForbidden, "operators cannot remove their own account")
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "operator not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load operator")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete operator")
	}

	s.logger.Info("operator removed", zap.String("operator_id", id), zap.String("removed_by", requesterID))
	return nil
}
