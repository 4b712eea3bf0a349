// Package driveurl rewrites Google Drive share links between their share,
// embeddable preview, and direct download forms.
package driveurl

import (
	"regexp"
	"strings"
)

const host = "drive.google.com"

var (
	viewSuffix    = regexp.MustCompile(`/view(\?.*)?$`)
	previewSuffix = regexp.MustCompile(`/preview$`)
)

// IsDriveLink reports whether the URL points at Google Drive.
func IsDriveLink(url string) bool {
	return strings.Contains(url, host)
}

// Normalize rewrites a Drive share link into its embeddable preview form:
// a trailing "/view" segment becomes "/preview", and file links are reduced
// to "https://drive.google.com/file/d/<id>/preview". Non-Drive URLs are
// returned unchanged.
func Normalize(url string) string {
	if !IsDriveLink(url) {
		return url
	}

	normalized := viewSuffix.ReplaceAllString(url, "/preview")

	if idx := strings.Index(normalized, "/d/"); idx >= 0 {
		rest := normalized[idx+len("/d/"):]
		if !strings.Contains(rest, "/preview") {
			fileID := rest
			if slash := strings.IndexByte(rest, '/'); slash >= 0 {
				fileID = rest[:slash]
			}
			normalized = "https://" + host + "/file/d/" + fileID + "/preview"
		}
	}

	return normalized
}

// DownloadForm rewrites a stored preview link into a best-effort direct
// download link. Non-Drive URLs are returned unchanged.
func DownloadForm(url string) string {
	if !IsDriveLink(url) {
		return url
	}

	download := previewSuffix.ReplaceAllString(url, "/view")
	return viewSuffix.ReplaceAllString(download, "/view?export=download")
}
