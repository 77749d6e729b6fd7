package constants

import "strings"

// AllowedExtensions holds the default allowed file extensions for document uploads.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"tif":  {},
	"tiff": {},
	"txt":  {},
	"docx": {},
	"zip":  {},
	"tar":  {},
}

// ArchiveExtensions holds the extensions that trigger archive expansion on upload.
var ArchiveExtensions = map[string]struct{}{
	"zip": {},
	"tar": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// IsArchive reports whether a filename looks like an expandable archive.
func IsArchive(filename string) bool {
	ext := NormalizeExt(extOf(filename))
	_, ok := ArchiveExtensions[ext]
	return ok
}

// AllowedExt reports whether the (normalized) extension may be ingested.
func AllowedExt(ext string) bool {
	_, ok := AllowedExtensions[NormalizeExt(ext)]
	return ok
}

func extOf(filename string) string {
	if i := strings.LastIndexByte(filename, '.'); i >= 0 {
		return filename[i:]
	}
	return ""
}

// FieldTypes holds the allowed data types for an extraction field.
var FieldTypes = []string{"STRING", "NUMBER", "DATE", "BOOLEAN", "CURRENCY"}
