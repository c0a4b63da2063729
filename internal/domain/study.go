package domain

import (
	"path"
	"strings"
	"time"
)

// StudiesPrefix root of per-owner study objects: studies/{ownerID}/{fileName}
const StudiesPrefix = "studies"

// FileType classification of a study file by extension
type FileType string

const (
	FileTypeImage    FileType = "image"
	FileTypePDF      FileType = "pdf"
	FileTypeText     FileType = "text"
	FileTypeDocument FileType = "document"
)

// AllowedStudyExtensions extensions accepted on upload
var AllowedStudyExtensions = map[string]struct{}{
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"pdf":  {},
	"txt":  {},
}

// StudyFile is a stored medical study.
type StudyFile struct {
	Name        string
	Path        string
	Type        FileType
	Size        int64
	UploadedAt  time.Time
	DownloadURL string
}

// FileExtension returns the lower-cased extension without the dot.
func FileExtension(name string) string {
	return strings.ToLower(strings.TrimPrefix(path.Ext(name), "."))
}

// ClassifyFile maps a file name to its display type.
func ClassifyFile(name string) FileType {
	switch FileExtension(name) {
	case "jpg", "jpeg", "png", "gif", "svg":
		return FileTypeImage
	case "pdf":
		return FileTypePDF
	case "txt":
		return FileTypeText
	default:
		return FileTypeDocument
	}
}

// IsAllowedStudyFile reports whether the extension may be uploaded.
func IsAllowedStudyFile(name string) bool {
	_, ok := AllowedStudyExtensions[FileExtension(name)]
	return ok
}

// StudyPath returns the object path of an owner's file.
func StudyPath(ownerID, fileName string) string {
	return path.Join(StudiesPrefix, ownerID, fileName)
}

// StudyPrefix returns the listing prefix of an owner's files.
func StudyPrefix(ownerID string) string {
	return path.Join(StudiesPrefix, ownerID) + "/"
}
