package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/toppers-edu/admin-console-api/internal/models"
	"github.com/toppers-edu/admin-console-api/internal/service"
	appErrors "github.com/toppers-edu/admin-console-api/pkg/errors"
)

type materialServiceMock struct {
	downloadURL string
	downloadErr error
}

func (m *materialServiceMock) CreateMaterial(ctx context.Context, req service.CreateMaterialRequest) (*models.Material, error) {
	return &models.Material{ID: "mat-new", Title: req.Title, URL: req.URL}, nil
}

func (m *materialServiceMock) UpdateMaterial(ctx context.Context, id string, req service.UpdateMaterialRequest) (*models.Material, error) {
	return &models.Material{ID: id, Title: req.Title, URL: req.URL}, nil
}

func (m *materialServiceMock) DeleteMaterial(ctx context.Context, id string) error {
	return nil
}

func (m *materialServiceMock) ReorderMaterial(ctx context.Context, id string, direction service.ReorderDirection) ([]models.Material, error) {
	return nil, nil
}

func (m *materialServiceMock) DownloadURL(ctx context.Context, id string) (string, error) {
	if m.downloadErr != nil {
		return "", m.downloadErr
	}
	return m.downloadURL, nil
}

func TestMaterialHandlerDownloadSuccess(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewMaterialHandler(&materialServiceMock{downloadURL: "https://drive.google.com/file/d/abc/view?export=download"})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/content/materials/mat-1/download", nil)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "mat-1"}}

	handler.Download(c)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "export=download")
}

func TestMaterialHandlerDownloadNonPDF(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewMaterialHandler(&materialServiceMock{
		downloadErr: appErrors.Clone(appErrors.ErrUnprocessable, "only pdf materials can be downloaded"),
	})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/content/materials/mat-2/download", nil)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "mat-2"}}

	handler.Download(c)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
