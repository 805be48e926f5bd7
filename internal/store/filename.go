package store

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UniqueFilename generates a collision-resistant filename from the current
// time plus a short random suffix, preserving the original file's extension
// when one is given: 20240101_153045_1a2b3c4d.pdf
func UniqueFilename(originalFilename string) string {
	stamp := time.Now().Format("20060102_150405")
	suffix := uuid.NewString()[:8]

	if originalFilename != "" {
		ext := strings.ToLower(filepath.Ext(originalFilename))
		return stamp + "_" + suffix + ext
	}
	return stamp + "_" + suffix
}

// UniqueID generates an id with no extension, used for interview and
// prediction records.
func UniqueID() string {
	return UniqueFilename("")
}

// nowISO stamps records with a second-resolution ISO-8601 local time.
func nowISO() string {
	return time.Now().Format("2006-01-02T15:04:05")
}
