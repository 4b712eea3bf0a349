package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/toppers-edu/admin-console-api/internal/models"
	"github.com/toppers-edu/admin-console-api/pkg/driveurl"
	appErrors "github.com/toppers-edu/admin-console-api/pkg/errors"
)

type contentSubjectRepository interface {
	List(ctx context.Context) ([]models.Subject, error)
	FindByID(ctx context.Context, id string) (*models.Subject, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, subject *models.Subject) error
	Update(ctx context.Context, subject *models.Subject) error
	Delete(ctx context.Context, id string) error
	SwapOrder(ctx context.Context, idA string, orderA int, idB string, orderB int) error
}

type contentFolderRepository interface {
	ListByParent(ctx context.Context, subjectID string, parentID *string) ([]models.Folder, error)
	FindByID(ctx context.Context, id string) (*models.Folder, error)
	CountSiblings(ctx context.Context, subjectID string, parentID *string) (int, error)
	Create(ctx context.Context, folder *models.Folder) error
	Rename(ctx context.Context, id, name string) error
	UpdateParent(ctx context.Context, id string, parentID *string, orderIndex int) error
	Delete(ctx context.Context, id string) error
	SwapOrder(ctx context.Context, idA string, orderA int, idB string, orderB int) error
}

type contentMaterialRepository interface {
	ListByFolder(ctx context.Context, subjectID string, folderID *string) ([]models.Material, error)
	FindByID(ctx context.Context, id string) (*models.Material, error)
	CountSiblings(ctx context.Context, subjectID string, folderID *string) (int, error)
	Create(ctx context.Context, material *models.Material) error
	Update(ctx context.Context, material *models.Material) error
	Delete(ctx context.Context, id string) error
	SwapOrder(ctx context.Context, idA string, orderA int, idB string, orderB int) error
}

// ReorderDirection names the two single-step moves the editor supports.
type ReorderDirection string

const (
	ReorderUp   ReorderDirection = "up"
	ReorderDown ReorderDirection = "down"
)

// SubjectDraft carries the editable fields of a subject.
type SubjectDraft struct {
	Name          string                 `json:"name" validate:"required"`
	Code          string                 `json:"code" validate:"required"`
	Category      models.SubjectCategory `json:"category" validate:"required,oneof=Core Additional"`
	TargetClasses []string               `json:"target_classes" validate:"required,min=1"`
	TargetStreams []string               `json:"target_streams"`
	TargetExams   []string               `json:"target_exams"`
	IconURL       string                 `json:"icon_url"`
}

// CreateFolderRequest carries the payload for adding a folder to the
// current navigation scope.
type CreateFolderRequest struct {
	SubjectID string  `json:"subject_id" validate:"required"`
	ParentID  *string `json:"parent_id"`
	Name      string  `json:"name" validate:"required"`
}

// CreateMaterialRequest carries the payload for adding a material.
type CreateMaterialRequest struct {
	SubjectID string              `json:"subject_id" validate:"required"`
	FolderID  *string             `json:"folder_id"`
	Title     string              `json:"title" validate:"required"`
	Type      models.MaterialType `json:"type" validate:"required,oneof=pdf image video"`
	URL       string              `json:"url" validate:"required,url"`
}

// UpdateMaterialRequest carries the editable fields of a material. The type
// is fixed at creation.
type UpdateMaterialRequest struct {
	Title string `json:"title" validate:"required"`
	URL   string `json:"url" validate:"required,url"`
}

// Breadcrumb is one element of the path from subject root to the current
// folder.
type Breadcrumb struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ScopeListing is the content of one navigation scope: the folders and
// materials under a parent node, plus the breadcrumb path leading to it.
type ScopeListing struct {
	Subject   models.Subject    `json:"subject"`
	Path      []Breadcrumb      `json:"path"`
	Folders   []models.Folder   `json:"folders"`
	Materials []models.Material `json:"materials"`
}

// ContentService drives the hierarchical content editor: subjects at the
// top, nested folders beneath them, materials as leaves.
type ContentService struct {
	subjects  contentSubjectRepository
	folders   contentFolderRepository
	materials contentMaterialRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewContentService constructs a ContentService instance.
func NewContentService(subjects contentSubjectRepository, folders contentFolderRepository, materials contentMaterialRepository, validate *validator.Validate, logger *zap.Logger) *ContentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &ContentService{subjects: subjects, folders: folders, materials: materials, validator: validate, logger: logger}
}

// ListSubjects returns all subjects in display order.
func (s *ContentService) ListSubjects(ctx context.Context) ([]models.Subject, error) {
	subjects, err := s.subjects.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list subjects")
	}
	return subjects, nil
}

// CreateSubject validates a draft and appends the subject to the end of the
// display order.
func (s *ContentService) CreateSubject(ctx context.Context, draft SubjectDraft) (*models.Subject, error) {
	subject, err := s.subjectFromDraft(draft)
	if err != nil {
		return nil, err
	}

	count, err := s.subjects.Count(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count subjects")
	}
	subject.OrderIndex = count

	if err := s.subjects.Create(ctx, subject); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create subject")
	}
	return subject, nil
}

// UpdateSubject validates a draft and overwrites the subject's editable
// fields, keeping its position in the display order.
func (s *ContentService) UpdateSubject(ctx context.Context, id string, draft SubjectDraft) (*models.Subject, error) {
	existing, err := s.subjects.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "subject not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load subject")
	}

	subject, err := s.subjectFromDraft(draft)
	if err != nil {
		return nil, err
	}
	subject.ID = existing.ID
	subject.OrderIndex = existing.OrderIndex
	subject.CreatedAt = existing.CreatedAt

	if err := s.subjects.Update(ctx, subject); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update subject")
	}
	return subject, nil
}

// DeleteSubject removes a subject and, through the store's cascading keys,
// its entire content tree.
func (s *ContentService) DeleteSubject(ctx context.Context, id string) error {
	if _, err := s.subjects.FindByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "subject not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load subject")
	}
	if err := s.subjects.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete subject")
	}
	return nil
}

// ReorderSubject moves a subject one step up or down in the display order
// and returns the reloaded subject list. A move past the boundary changes
// nothing.
func (s *ContentService) ReorderSubject(ctx context.Context, id string, direction ReorderDirection) ([]models.Subject, error) {
	subjects, err := s.subjects.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list subjects")
	}

	pos := -1
	for i := range subjects {
		if subjects[i].ID == id {
			pos = i
			break
		}
	}
	if pos < 0 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "subject not found")
	}

	neighbor, ok := neighborIndex(pos, len(subjects), direction)
	if !ok {
		return subjects, nil
	}

	a, b := subjects[pos], subjects[neighbor]
	if err := s.subjects.SwapOrder(ctx, a.ID, b.OrderIndex, b.ID, a.OrderIndex); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to reorder subjects")
	}
	return s.ListSubjects(ctx)
}

// ListScope returns the folders and materials of one navigation scope
// together with the breadcrumb path to it. A nil parentID selects the
// subject root.
func (s *ContentService) ListScope(ctx context.Context, subjectID string, parentID *string) (*ScopeListing, error) {
	subject, err := s.subjects.FindByID(ctx, subjectID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "subject not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load subject")
	}

	path, err := s.breadcrumbPath(ctx, subjectID, parentID)
	if err != nil {
		return nil, err
	}

	folders, err := s.folders.ListByParent(ctx, subjectID, parentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list folders")
	}
	materials, err := s.materials.ListByFolder(ctx, subjectID, parentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list materials")
	}

	return &ScopeListing{Subject: *subject, Path: path, Folders: folders, Materials: materials}, nil
}

// CreateFolder attaches a folder to the current scope, appended at the end
// of its sibling order.
func (s *ContentService) CreateFolder(ctx context.Context, req CreateFolderRequest) (*models.Folder, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid folder payload")
	}

	if _, err := s.subjects.FindByID(ctx, req.SubjectID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "subject not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load subject")
	}

	if req.ParentID != nil {
		parent, err := s.folders.FindByID(ctx, *req.ParentID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, appErrors.Clone(appErrors.ErrNotFound, "parent folder not found")
			}
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load parent folder")
		}
		if parent.SubjectID != req.SubjectID {
			return nil, appErrors.Clone(appErrors.ErrValidation, "parent folder belongs to another subject")
		}
	}

	count, err := s.folders.CountSiblings(ctx, req.SubjectID, req.ParentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count sibling folders")
	}

	folder := &models.Folder{
		SubjectID:  req.SubjectID,
		ParentID:   req.ParentID,
		Name:       strings.TrimSpace(req.Name),
		OrderIndex: count,
	}
	if err := s.folders.Create(ctx, folder); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create folder")
	}
	return folder, nil
}

// RenameFolder updates a folder's name.
func (s *ContentService) RenameFolder(ctx context.Context, id, name string) (*models.Folder, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "folder name is required")
	}

	folder, err := s.folders.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "folder not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load folder")
	}

	if err := s.folders.Rename(ctx, id, name); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to rename folder")
	}
	folder.Name = name
	return folder, nil
}

// MoveFolder reparents a folder within its subject, appending it at the end
// of the destination's sibling order. The destination may not be the folder
// itself or any of its descendants.
func (s *ContentService) MoveFolder(ctx context.Context, id string, newParentID *string) (*models.Folder, error) {
	folder, err := s.folders.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "folder not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load folder")
	}

	if newParentID != nil {
		if *newParentID == id {
			return nil, appErrors.Clone(appErrors.ErrValidation, "folder cannot be its own parent")
		}
		parent, err := s.folders.FindByID(ctx, *newParentID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, appErrors.Clone(appErrors.ErrNotFound, "destination folder not found")
			}
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load destination folder")
		}
		if parent.SubjectID != folder.SubjectID {
			return nil, appErrors.Clone(appErrors.ErrValidation, "destination belongs to another subject")
		}

		// Walk the destination's ancestor chain; finding the moved folder
		// there would create a cycle.
		cursor := parent
		for cursor.ParentID != nil {
			if *cursor.ParentID == id {
				return nil, appErrors.Clone(appErrors.ErrValidation, "cannot move a folder into its own subtree")
			}
			cursor, err = s.folders.FindByID(ctx, *cursor.ParentID)
			if err != nil {
				return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to walk folder ancestry")
			}
		}
	}

	count, err := s.folders.CountSiblings(ctx, folder.SubjectID, newParentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count destination siblings")
	}

	if err := s.folders.UpdateParent(ctx, id, newParentID, count); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to move folder")
	}
	folder.ParentID = newParentID
	folder.OrderIndex = count
	return folder, nil
}

// DeleteFolder removes a folder; nested folders and materials are removed
// by the store's cascading keys.
func (s *ContentService) DeleteFolder(ctx context.Context, id string) error {
	if _, err := s.folders.FindByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "folder not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load folder")
	}
	if err := s.folders.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete folder")
	}
	return nil
}

// ReorderFolder moves a folder one step within its sibling group and
// returns the reloaded sibling list. A move past the boundary changes
// nothing.
func (s *ContentService) ReorderFolder(ctx context.Context, id string, direction ReorderDirection) ([]models.Folder, error) {
	folder, err := s.folders.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "folder not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load folder")
	}

	siblings, err := s.folders.ListByParent(ctx, folder.SubjectID, folder.ParentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list sibling folders")
	}

	pos := -1
	for i := range siblings {
		if siblings[i].ID == id {
			pos = i
			break
		}
	}
	if pos < 0 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "folder not found among siblings")
	}

	neighbor, ok := neighborIndex(pos, len(siblings), direction)
	if !ok {
		return siblings, nil
	}

	a, b := siblings[pos], siblings[neighbor]
	if err := s.folders.SwapOrder(ctx, a.ID, b.OrderIndex, b.ID, a.OrderIndex); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to reorder folders")
	}

	reloaded, err := s.folders.ListByParent(ctx, folder.SubjectID, folder.ParentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to reload sibling folders")
	}
	return reloaded, nil
}

// CreateMaterial attaches a material to the current scope, appended at the
// end of its sibling order. Drive share links are normalized to their
// preview form before persisting.
func (s *ContentService) CreateMaterial(ctx context.Context, req CreateMaterialRequest) (*models.Material, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid material payload")
	}

	if _, err := s.subjects.FindByID(ctx, req.SubjectID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "subject not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load subject")
	}

	if req.FolderID != nil {
		folder, err := s.folders.FindByID(ctx, *req.FolderID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, appErrors.Clone(appErrors.ErrNotFound, "folder not found")
			}
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load folder")
		}
		if folder.SubjectID != req.SubjectID {
			return nil, appErrors.Clone(appErrors.ErrValidation, "folder belongs to another subject")
		}
	}

	count, err := s.materials.CountSiblings(ctx, req.SubjectID, req.FolderID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count sibling materials")
	}

	material := &models.Material{
		SubjectID:  req.SubjectID,
		FolderID:   req.FolderID,
		Title:      strings.TrimSpace(req.Title),
		Type:       req.Type,
		URL:        driveurl.Normalize(req.URL),
		OrderIndex: count,
	}
	if err := s.materials.Create(ctx, material); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create material")
	}
	return material, nil
}

// UpdateMaterial rewrites a material's title and URL. The type is fixed at
// creation.
func (s *ContentService) UpdateMaterial(ctx context.Context, id string, req UpdateMaterialRequest) (*models.Material, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid material payload")
	}

	material, err := s.materials.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "material not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load material")
	}

	material.Title = strings.TrimSpace(req.Title)
	material.URL = driveurl.Normalize(req.URL)
	if err := s.materials.Update(ctx, material); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update material")
	}
	return material, nil
}

// DeleteMaterial removes a material.
func (s *ContentService) DeleteMaterial(ctx context.Context, id string) error {
	if _, err := s.materials.FindByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "material not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load material")
	}
	if err := s.materials.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete material")
	}
	return nil
}

// ReorderMaterial moves a material one step within its sibling group and
// returns the reloaded sibling list. A move past the boundary changes
// nothing.
func (s *ContentService) ReorderMaterial(ctx context.Context, id string, direction ReorderDirection) ([]models.Material, error) {
	material, err := s.materials.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "material not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load material")
	}

	siblings, err := s.materials.ListByFolder(ctx, material.SubjectID, material.FolderID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list sibling materials")
	}

	pos := -1
	for i := range siblings {
		if siblings[i].ID == id {
			pos = i
			break
		}
	}
	if pos < 0 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "material not found among siblings")
	}

	neighbor, ok := neighborIndex(pos, len(siblings), direction)
	if !ok {
		return siblings, nil
	}

	a, b := siblings[pos], siblings[neighbor]
	if err := s.materials.SwapOrder(ctx, a.ID, b.OrderIndex, b.ID, a.OrderIndex); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to reorder materials")
	}

	reloaded, err := s.materials.ListByFolder(ctx, material.SubjectID, material.FolderID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to reload sibling materials")
	}
	return reloaded, nil
}

// DownloadURL returns the direct-download form of a PDF material's link.
// Other material types have no downloadable form.
func (s *ContentService) DownloadURL(ctx context.Context, id string) (string, error) {
	material, err := s.materials.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", appErrors.Clone(appErrors.ErrNotFound, "material not found")
		}
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load material")
	}

	if material.Type != models.MaterialPDF {
		return "", appErrors.Clone(appErrors.ErrUnprocessable, "only pdf materials can be downloaded")
	}
	return driveurl.DownloadForm(material.URL), nil
}

// breadcrumbPath walks the parent chain from the scope folder up to the
// subject root and returns it root-first. A nil parentID is the root scope
// with an empty path.
func (s *ContentService) breadcrumbPath(ctx context.Context, subjectID string, parentID *string) ([]Breadcrumb, error) {
	path := []Breadcrumb{}
	cursor := parentID
	for cursor != nil {
		folder, err := s.folders.FindByID(ctx, *cursor)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, appErrors.Clone(appErrors.ErrNotFound, "folder not found")
			}
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to walk folder ancestry")
		}
		if folder.SubjectID != subjectID {
			return nil, appErrors.Clone(appErrors.ErrValidation, "folder belongs to another subject")
		}
		path = append([]Breadcrumb{{ID: folder.ID, Name: folder.Name}}, path...)
		cursor = folder.ParentID
	}
	return path, nil
}

func (s *ContentService) subjectFromDraft(draft SubjectDraft) (*models.Subject, error) {
	if err := s.validator.Struct(draft); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid subject payload")
	}

	known := make(map[string]bool, len(models.KnownClasses))
	for _, c := range models.KnownClasses {
		known[c] = true
	}
	for _, c := range draft.TargetClasses {
		if !known[c] {
			return nil, appErrors.Clone(appErrors.ErrValidation, "unknown class label: "+c)
		}
	}

	subject := &models.Subject{
		Name:          strings.TrimSpace(draft.Name),
		Code:          strings.TrimSpace(draft.Code),
		Category:      draft.Category,
		TargetClasses: draft.TargetClasses,
		TargetStreams: draft.TargetStreams,
		TargetExams:   draft.TargetExams,
		IconURL:       draft.IconURL,
	}

	switch subject.Category {
	case models.CategoryAdditional:
		// Electives carry no stream tags regardless of prior form state.
		subject.TargetStreams = nil
	case models.CategoryCore:
		if subject.HasSeniorClass() && len(subject.TargetStreams) == 0 {
			return nil, appErrors.Clone(appErrors.ErrValidation, "at least one stream is required for senior classes")
		}
	}

	if subject.TargetClasses == nil {
		subject.TargetClasses = []string{}
	}
	if subject.TargetStreams == nil {
		subject.TargetStreams = []string{}
	}
	if subject.TargetExams == nil {
		subject.TargetExams = []string{}
	}

	return subject, nil
}

// neighborIndex resolves the adjacent sibling position for a single-step
// move, reporting false at the boundary.
func neighborIndex(pos, size int, direction ReorderDirection) (int, bool) {
	switch direction {
	case ReorderUp:
		if pos == 0 {
			return 0, false
		}
		return pos - 1, true
	case ReorderDown:
		if pos >= size-1 {
			return 0, false
		}
		return pos + 1, true
	}
	return 0, false
}
