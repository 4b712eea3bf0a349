package driveurl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRewritesViewSuffix(t *testing.T) {
	got := Normalize("https://drive.google.com/file/d/abc123/view?usp=sharing")
	assert.Equal(t, "https://drive.google.com/file/d/abc123/preview", got)
}

func TestNormalizeBareFileLink(t *testing.T) {
	got := Normalize("https://drive.google.com/file/d/abc123/edit")
	assert.Equal(t, "https://drive.google.com/file/d/abc123/preview", got)
}

func TestNormalizeKeepsExistingPreview(t *testing.T) {
	url := "https://drive.google.com/file/d/abc123/preview"
	assert.Equal(t, url, Normalize(url))
}

func TestNormalizeLeavesForeignURLs(t *testing.T) {
	url := "https://example.com/files/notes.pdf"
	assert.Equal(t, url, Normalize(url))
}

func TestDownloadFormFromPreview(t *testing.T) {
	got := DownloadForm("https://drive.google.com/file/d/abc123/preview")
	assert.Equal(t, "https://drive.google.com/file/d/abc123/view?export=download", got)
}

func TestDownloadFormFromView(t *testing.T) {
	got := DownloadForm("https://drive.google.com/file/d/abc123/view?usp=sharing")
	assert.Equal(t, "https://drive.google.com/file/d/abc123/view?export=download", got)
}

func TestDownloadFormLeavesForeignURLs(t *testing.T) {
	url := "https://example.com/files/notes.pdf"
	assert.Equal(t, url, DownloadForm(url))
}
