package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toppers-edu/admin-console-api/internal/models"
	appErrors "github.com/toppers-edu/admin-console-api/pkg/errors"
)

type mockStudentRepo struct {
	students []models.Student
}

func (m *mockStudentRepo) List(ctx context.Context, filter models.StudentFilter) ([]models.Student, int, error) {
	return m.students, len(m.students), nil
}

func (m *mockStudentRepo) ListAll(ctx context.Context) ([]models.Student, error) {
	return m.students, nil
}

func sampleStudents() []models.Student {
	return []models.Student{
		{ID: "st-1", StudentID: "S-001", Name: "Alice", Gender: "F", Class: "XII", Stream: "Science", Email: "alice@toppers.edu", CreatedAt: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "st-2", StudentID: "S-002", Name: "Bob", Gender: "M", Class: "XI", Stream: "Commerce", Email: "bob@toppers.edu", CreatedAt: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)},
	}
}

func TestStudentServiceListNormalisesPagination(t *testing.T) {
	svc := NewStudentService(&mockStudentRepo{students: sampleStudents()}, nil)

	students, page, err := svc.List(context.Background(), models.StudentFilter{Page: 0, PageSize: 500})
	require.NoError(t, err)
	assert.Len(t, students, 2)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 20, page.PageSize)
	assert.Equal(t, 2, page.TotalCount)
}

func TestStudentServiceExportCSV(t *testing.T) {
	svc := NewStudentService(&mockStudentRepo{students: sampleStudents()}, nil)

	result, err := svc.Export(context.Background(), ExportCSV)
	require.NoError(t, err)
	assert.Equal(t, "text/csv", result.ContentType)
	assert.Contains(t, result.FileName, ".csv")
	assert.Contains(t, string(result.Content), "Alice")
	assert.Contains(t, string(result.Content), "S-002")
}

func TestStudentServiceExportPDF(t *testing.T) {
	svc := NewStudentService(&mockStudentRepo{students: sampleStudents()}, nil)

	result, err := svc.Export(context.Background(), ExportPDF)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", result.ContentType)
	assert.True(t, bytes.HasPrefix(result.Content, []byte("%PDF")))
}

func TestStudentServiceExportUnknownFormat(t *testing.T) {
	svc := NewStudentService(&mockStudentRepo{}, nil)

	_, err := svc.Export(context.Background(), ExportFormat("xlsx"))
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}
