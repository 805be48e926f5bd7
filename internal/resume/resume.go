// Package resume manages resume upload, field extraction, and lookup.
package resume

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/interview-copilot/internal/extract"
	"github.com/jonathan/interview-copilot/internal/llm"
	"github.com/jonathan/interview-copilot/internal/store"
)

// Fields is the closed, ordered enumeration of extracted resume fields.
// The order is the display order.
var Fields = []string{
	"name",
	"contact",
	"email",
	"education",
	"work_history",
	"projects",
	"certificates",
	"publications",
}

// NotExtracted is the placeholder stored for a field whose extraction failed
// or found nothing. It is an explicit marker value, never confused with
// genuine content by callers that need to know.
const NotExtracted = "not extracted"

// extractWorkers bounds concurrent per-field model calls during extraction.
const extractWorkers = 4

// Service composes the file store and the LLM client for resume operations.
type Service struct {
	store  *store.Store
	client llm.Client
}

// NewService creates a resume service.
func NewService(st *store.Store, client llm.Client) *Service {
	return &Service{store: st, client: client}
}

// Upload persists resume content under a unique filename, derives the resume
// id from the stored basename, and extracts the full field set. A failing
// field yields the NotExtracted placeholder for that field only; the upload
// itself only fails on storage or validation errors.
func (s *Service) Upload(ctx context.Context, content []byte, originalFilename string) (*store.ResumeRecord, error) {
	path, err := s.store.SaveResume(content, originalFilename)
	if err != nil {
		return nil, err
	}

	rec := &store.ResumeRecord{
		ResumeID:   idFromPath(path),
		FilePath:   path,
		UploadTime: time.Now().Format("2006-01-02T15:04:05"),
	}
	rec.UserInfo = s.extractInfo(ctx, path, content)
	return rec, nil
}

// Load locates the resume whose stored basename starts with id. Structured
// (.json) resumes reuse their stored fields; raw documents re-run extraction.
func (s *Service) Load(ctx context.Context, id string) (*store.ResumeRecord, error) {
	path, err := s.findByID(id)
	if err != nil {
		return nil, err
	}

	if strings.EqualFold(filepath.Ext(path), ".json") {
		data, err := s.store.GetResume(path)
		if err != nil {
			return nil, err
		}
		var rec store.ResumeRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, &store.StorageError{Message: "failed to parse resume record " + id, Cause: err}
		}
		if rec.ResumeID == "" {
			rec.ResumeID = idFromPath(path)
		}
		rec.FilePath = path
		return &rec, nil
	}

	content, err := s.store.GetResume(path)
	if err != nil {
		return nil, err
	}
	rec := &store.ResumeRecord{
		ResumeID: idFromPath(path),
		FilePath: path,
	}
	rec.UserInfo = s.extractInfo(ctx, path, content)
	return rec, nil
}

// SaveStructured persists the record itself as a .json resume so later loads
// skip re-extraction.
func (s *Service) SaveStructured(rec *store.ResumeRecord) (string, error) {
	return s.store.SaveResumeRecord(rec)
}

// Text renders a resume's extracted fields as a single string, used as model
// context for predictions.
func (s *Service) Text(ctx context.Context, id string) (string, error) {
	rec, err := s.Load(ctx, id)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, field := range Fields {
		value, ok := rec.UserInfo[field]
		if !ok || value == "" || value == NotExtracted {
			continue
		}
		sb.WriteString(fmt.Sprintf("%s: %s\n", field, value))
	}
	return sb.String(), nil
}

// List returns the stored resume file paths.
func (s *Service) List() ([]string, error) {
	return s.store.ListResumes()
}

// Delete removes a resume file.
func (s *Service) Delete(path string) error {
	return s.store.DeleteResume(path)
}

// DeleteByID resolves id to a stored file and removes it.
func (s *Service) DeleteByID(id string) error {
	path, err := s.findByID(id)
	if err != nil {
		return err
	}
	return s.store.DeleteResume(path)
}

// extractInfo parses the document and extracts every field with bounded
// concurrency. Failures are isolated per field.
func (s *Service) extractInfo(ctx context.Context, path string, content []byte) map[string]string {
	text := extract.Clean(extract.Parse(path, content))

	info := make(map[string]string, len(Fields))
	var mu sync.Mutex

	var g errgroup.Group
	g.SetLimit(extractWorkers)
	for _, field := range Fields {
		field := field
		g.Go(func() error {
			value, err := llm.ExtractField(ctx, s.client, text, field)
			if err != nil {
				log.Warn().Err(err).Str("field", field).Msg("resume field extraction failed")
				value = NotExtracted
			}
			value = strings.TrimSpace(value)
			if value == "" {
				value = NotExtracted
			}
			mu.Lock()
			info[field] = value
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait() // workers never return errors; failures become placeholders

	return info
}

// findByID returns the stored path whose basename starts with id.
func (s *Service) findByID(id string) (string, error) {
	if id == "" {
		return "", &store.ValidationError{Field: "resume_id", Message: "resume id is empty"}
	}

	paths, err := s.store.ListResumes()
	if err != nil {
		return "", err
	}
	for _, path := range paths {
		if strings.HasPrefix(filepath.Base(path), id) {
			return path, nil
		}
	}
	return "", &store.NotFoundError{Kind: "resume", ID: id}
}

// idFromPath derives the resume id from a stored path: the base name minus
// its extension.
func idFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
