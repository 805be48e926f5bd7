package store

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/jonathan/interview-copilot/internal/schemas"
)

const recordExt = ".json"

// Store manages three flat directories under a data root: resumes (raw
// uploads plus structured resume records), interviews, and predictions.
// Single-writer: concurrent writers to the same id race and the last write
// wins.
type Store struct {
	resumesDir     string
	interviewsDir  string
	predictionsDir string
	allowedExts    map[string]bool
	validate       *validator.Validate
}

// New creates a Store rooted at dataDir, creating the directories if needed.
// allowedExts is the resume extension allow-list (each entry starts with a dot).
func New(dataDir string, allowedExts []string) (*Store, error) {
	abs, err := filepath.Abs(dataDir)
	if err != nil {
		return nil, &StorageError{Message: "failed to resolve data directory", Cause: err}
	}

	s := &Store{
		resumesDir:     filepath.Join(abs, "resumes"),
		interviewsDir:  filepath.Join(abs, "interviews"),
		predictionsDir: filepath.Join(abs, "predictions"),
		allowedExts:    make(map[string]bool, len(allowedExts)),
		validate:       validator.New(),
	}
	for _, ext := range allowedExts {
		s.allowedExts[strings.ToLower(ext)] = true
	}

	for _, dir := range []string{s.resumesDir, s.interviewsDir, s.predictionsDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, &StorageError{Message: "failed to create data directory " + dir, Cause: err}
		}
	}

	return s, nil
}

// ResumesDir returns the absolute resumes directory.
func (s *Store) ResumesDir() string { return s.resumesDir }

// AllowedExtensions reports whether ext (with dot, any case) is permitted.
func (s *Store) AllowedExtension(ext string) bool {
	return s.allowedExts[strings.ToLower(ext)]
}

// SaveResume writes resume content under a freshly generated unique filename
// preserving the original extension. The extension must be on the allow-list.
func (s *Store) SaveResume(content []byte, originalFilename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalFilename))
	if !s.allowedExts[ext] {
		return "", &ValidationError{
			Field:   "original_filename",
			Message: "unsupported resume file format: " + ext,
		}
	}

	path := filepath.Join(s.resumesDir, UniqueFilename(originalFilename))
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", &StorageError{Message: "failed to write resume file", Cause: err}
	}
	return path, nil
}

// SaveResumeRecord persists a structured resume as <resume_id>.json in the
// resumes directory.
func (s *Store) SaveResumeRecord(rec *ResumeRecord) (string, error) {
	if rec.ResumeID == "" {
		rec.ResumeID = UniqueID()
	}
	data, err := marshalRecord(rec)
	if err != nil {
		return "", &StorageError{Message: "failed to serialize resume record", Cause: err}
	}
	path := filepath.Join(s.resumesDir, rec.ResumeID+recordExt)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", &StorageError{Message: "failed to write resume record", Cause: err}
	}
	return path, nil
}

// GetResume returns the raw bytes of a resume file. The path must lie within
// the resumes directory.
func (s *Store) GetResume(path string) ([]byte, error) {
	if err := s.checkWithin(s.resumesDir, path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Kind: "resume", ID: path}
		}
		return nil, &StorageError{Message: "failed to read resume file", Cause: err}
	}
	return data, nil
}

// DeleteResume removes a resume file. The path must lie within the resumes
// directory. Deleting a missing file is not an error.
func (s *Store) DeleteResume(path string) error {
	if err := s.checkWithin(s.resumesDir, path); err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return &StorageError{Message: "failed to delete resume file", Cause: err}
	}
	return nil
}

// ListResumes enumerates resume files with permitted extensions (plus .json
// for structured resume records), sorted by name.
func (s *Store) ListResumes() ([]string, error) {
	entries, err := os.ReadDir(s.resumesDir)
	if err != nil {
		return nil, &StorageError{Message: "failed to list resumes", Cause: err}
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if s.allowedExts[ext] || ext == recordExt {
			paths = append(paths, filepath.Join(s.resumesDir, entry.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// SaveInterview validates and persists an interview record, assigning an id
// if absent and stamping the save time. Non-ASCII content is preserved as-is.
func (s *Store) SaveInterview(rec *InterviewRecord) (string, error) {
	if err := s.validate.Struct(rec); err != nil {
		return "", &ValidationError{Message: "missing required interview field: " + err.Error()}
	}
	if rec.InterviewID == "" {
		rec.InterviewID = UniqueID()
	}
	rec.SaveTime = nowISO()

	data, err := marshalRecord(rec)
	if err != nil {
		return "", &StorageError{Message: "failed to serialize interview record", Cause: err}
	}
	if err := schemas.ValidateInterviewRecord(data); err != nil {
		return "", err
	}

	path := filepath.Join(s.interviewsDir, rec.InterviewID+recordExt)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", &StorageError{Message: "failed to write interview record", Cause: err}
	}
	return path, nil
}

// GetInterview loads one interview record by id.
func (s *Store) GetInterview(id string) (*InterviewRecord, error) {
	path := filepath.Join(s.interviewsDir, id+recordExt)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Kind: "interview", ID: id}
		}
		return nil, &StorageError{Message: "failed to read interview record", Cause: err}
	}

	var rec InterviewRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, &StorageError{Message: "failed to parse interview record " + id, Cause: err}
	}
	return &rec, nil
}

// DeleteInterview removes one interview record by id. Deleting a missing
// record is not an error.
func (s *Store) DeleteInterview(id string) error {
	path := filepath.Join(s.interviewsDir, id+recordExt)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return &StorageError{Message: "failed to delete interview record", Cause: err}
	}
	return nil
}

// ListInterviews deserializes every interview record and sorts them by
// interview date, newest first. The sort is a plain string comparison:
// ISO dates order correctly, free-text dates best-effort. Unreadable files
// are logged and skipped.
func (s *Store) ListInterviews() ([]*InterviewRecord, error) {
	entries, err := os.ReadDir(s.interviewsDir)
	if err != nil {
		return nil, &StorageError{Message: "failed to list interviews", Cause: err}
	}

	var records []*InterviewRecord
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), recordExt) {
			continue
		}
		id := strings.TrimSuffix(entry.Name(), recordExt)
		rec, err := s.GetInterview(id)
		if err != nil {
			log.Warn().Err(err).Str("file", entry.Name()).Msg("skipping unreadable interview record")
			continue
		}
		records = append(records, rec)
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].InterviewDate > records[j].InterviewDate
	})
	return records, nil
}

// SavePrediction validates and persists a prediction record, mirroring the
// interview layout.
func (s *Store) SavePrediction(rec *PredictionRecord) (string, error) {
	if err := s.validate.Struct(rec); err != nil {
		return "", &ValidationError{Message: "missing required prediction field: " + err.Error()}
	}
	if rec.PredictionID == "" {
		rec.PredictionID = UniqueID()
	}
	rec.SaveTime = nowISO()
	// nil slices would serialize as null and fail schema validation.
	if rec.RecommendedQuestions == nil {
		rec.RecommendedQuestions = []string{}
	}
	if rec.RecommendedTopics == nil {
		rec.RecommendedTopics = []string{}
	}

	data, err := marshalRecord(rec)
	if err != nil {
		return "", &StorageError{Message: "failed to serialize prediction record", Cause: err}
	}
	if err := schemas.ValidatePredictionRecord(data); err != nil {
		return "", err
	}

	path := filepath.Join(s.predictionsDir, rec.PredictionID+recordExt)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", &StorageError{Message: "failed to write prediction record", Cause: err}
	}
	return path, nil
}

// GetPrediction loads one prediction record by id.
func (s *Store) GetPrediction(id string) (*PredictionRecord, error) {
	path := filepath.Join(s.predictionsDir, id+recordExt)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Kind: "prediction", ID: id}
		}
		return nil, &StorageError{Message: "failed to read prediction record", Cause: err}
	}

	var rec PredictionRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, &StorageError{Message: "failed to parse prediction record " + id, Cause: err}
	}
	return &rec, nil
}

// DeletePrediction removes one prediction record by id.
func (s *Store) DeletePrediction(id string) error {
	path := filepath.Join(s.predictionsDir, id+recordExt)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return &StorageError{Message: "failed to delete prediction record", Cause: err}
	}
	return nil
}

// ListPredictions deserializes every prediction record, newest first by
// generation time. Unreadable files are logged and skipped.
func (s *Store) ListPredictions() ([]*PredictionRecord, error) {
	entries, err := os.ReadDir(s.predictionsDir)
	if err != nil {
		return nil, &StorageError{Message: "failed to list predictions", Cause: err}
	}

	var records []*PredictionRecord
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), recordExt) {
			continue
		}
		id := strings.TrimSuffix(entry.Name(), recordExt)
		rec, err := s.GetPrediction(id)
		if err != nil {
			log.Warn().Err(err).Str("file", entry.Name()).Msg("skipping unreadable prediction record")
			continue
		}
		records = append(records, rec)
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].GeneratedTime > records[j].GeneratedTime
	})
	return records, nil
}

// checkWithin rejects paths outside dir, including traversal via "..".
func (s *Store) checkWithin(dir, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return &ValidationError{Field: "path", Message: "invalid path: " + path}
	}
	rel, err := filepath.Rel(dir, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return &ValidationError{Field: "path", Message: "path is outside the managed directory: " + path}
	}
	return nil
}

// marshalRecord pretty-prints a record without escaping HTML or non-ASCII
// characters.
func marshalRecord(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
