// Package interview manages interview records: metadata, the ordered list of
// question/answer items, model-generated summaries, and per-answer analysis.
// Every mutation is a write-through full save of the record.
package interview

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jonathan/interview-copilot/internal/llm"
	"github.com/jonathan/interview-copilot/internal/prompts"
	"github.com/jonathan/interview-copilot/internal/store"
)

// keyPointRunes is the excerpt length used for the cheap summary index.
const keyPointRunes = 50

// Service composes the file store and the LLM client for interview operations.
type Service struct {
	store  *store.Store
	client llm.Client
}

// NewService creates an interview service.
func NewService(st *store.Store, client llm.Client) *Service {
	return &Service{store: st, client: client}
}

// QAUpdate carries a partial update of one QA item; nil fields are left
// untouched.
type QAUpdate struct {
	Question *string
	Answer   *string
	Notes    *string
}

// SummaryResult is a generated summary plus its key-point index.
type SummaryResult struct {
	InterviewID string
	Summary     string
	KeyPoints   []string
}

// BatchResult is one interview's outcome within a batch summarization.
// Failures are isolated per item: Err is set and Summary empty for that
// interview only.
type BatchResult struct {
	InterviewID string
	Summary     string
	Err         error
}

// Create builds a new interview record with the given metadata, filling
// blank fields with the same defaults the record display uses, and persists
// it immediately.
func (s *Service) Create(title, company, position, interviewDate string) (*store.InterviewRecord, error) {
	now := time.Now()
	if title == "" {
		title = "untitled interview " + now.Format("20060102")
	}
	if company == "" {
		company = "unknown company"
	}
	if position == "" {
		position = "unknown position"
	}
	if interviewDate == "" {
		interviewDate = now.Format("2006-01-02")
	}

	rec := &store.InterviewRecord{
		InterviewID:      store.UniqueID(),
		Title:            title,
		Company:          company,
		Position:         position,
		InterviewDate:    interviewDate,
		QuestionsAnswers: []store.QAItem{},
	}
	if _, err := s.store.SaveInterview(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Load fetches an interview record by id.
func (s *Service) Load(id string) (*store.InterviewRecord, error) {
	return s.store.GetInterview(id)
}

// List returns all interview records, newest interview date first.
func (s *Service) List() ([]*store.InterviewRecord, error) {
	return s.store.ListInterviews()
}

// Delete removes an interview record.
func (s *Service) Delete(id string) error {
	return s.store.DeleteInterview(id)
}

// AddQA appends a question/answer item and persists the record.
func (s *Service) AddQA(id, question, answer, notes string) (*store.InterviewRecord, error) {
	rec, err := s.store.GetInterview(id)
	if err != nil {
		return nil, err
	}

	rec.QuestionsAnswers = append(rec.QuestionsAnswers, store.QAItem{
		Question:  question,
		Answer:    answer,
		Notes:     notes,
		Timestamp: nowISO(),
	})
	if _, err := s.store.SaveInterview(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// UpdateQA applies a partial update to the QA item at index, refreshes its
// timestamp, and persists the record.
func (s *Service) UpdateQA(id string, index int, update QAUpdate) (*store.InterviewRecord, error) {
	rec, err := s.store.GetInterview(id)
	if err != nil {
		return nil, err
	}
	if err := checkIndex(index, len(rec.QuestionsAnswers)); err != nil {
		return nil, err
	}

	item := &rec.QuestionsAnswers[index]
	if update.Question != nil {
		item.Question = *update.Question
	}
	if update.Answer != nil {
		item.Answer = *update.Answer
	}
	if update.Notes != nil {
		item.Notes = *update.Notes
	}
	item.Timestamp = nowISO()

	if _, err := s.store.SaveInterview(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// DeleteQA removes the QA item at index and persists the record.
func (s *Service) DeleteQA(id string, index int) (*store.InterviewRecord, error) {
	rec, err := s.store.GetInterview(id)
	if err != nil {
		return nil, err
	}
	if err := checkIndex(index, len(rec.QuestionsAnswers)); err != nil {
		return nil, err
	}

	rec.QuestionsAnswers = append(rec.QuestionsAnswers[:index], rec.QuestionsAnswers[index+1:]...)
	if _, err := s.store.SaveInterview(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// AnalyzeAnswer requests quality feedback for one QA pair, appends a
// timestamped analysis entry to that item's history, and persists.
func (s *Service) AnalyzeAnswer(ctx context.Context, id string, index int) (string, error) {
	rec, err := s.store.GetInterview(id)
	if err != nil {
		return "", err
	}
	if err := checkIndex(index, len(rec.QuestionsAnswers)); err != nil {
		return "", err
	}

	item := &rec.QuestionsAnswers[index]
	analysis, err := llm.AnalyzeAnswer(ctx, s.client, item.Question, item.Answer)
	if err != nil {
		return "", err
	}

	item.Analysis = append(item.Analysis, store.AnalysisEntry{
		Content:   analysis,
		Timestamp: nowISO(),
	})
	if _, err := s.store.SaveInterview(rec); err != nil {
		return "", err
	}
	return analysis, nil
}

// Summarize asks the model for the five-point narrative over the whole
// interview, persists it into the record, and derives the key-point index.
func (s *Service) Summarize(ctx context.Context, id string) (*SummaryResult, error) {
	rec, err := s.store.GetInterview(id)
	if err != nil {
		return nil, err
	}

	system := prompts.MustGet("summary.json", "interview-system")
	prompt := prompts.Format(prompts.MustGet("summary.json", "interview"), map[string]string{
		"Transcript": transcript(rec),
	})

	summary, err := s.client.GenerateContent(ctx, prompt, system, llm.TierStandard)
	if err != nil {
		return nil, err
	}

	rec.Summary = summary
	if _, err := s.store.SaveInterview(rec); err != nil {
		return nil, err
	}

	return &SummaryResult{
		InterviewID: id,
		Summary:     summary,
		KeyPoints:   keyPoints(summary),
	}, nil
}

// SummarizeQA summarizes a single question/answer pair without touching the
// stored record.
func (s *Service) SummarizeQA(ctx context.Context, id string, index int) (string, error) {
	rec, err := s.store.GetInterview(id)
	if err != nil {
		return "", err
	}
	if err := checkIndex(index, len(rec.QuestionsAnswers)); err != nil {
		return "", err
	}

	item := rec.QuestionsAnswers[index]
	system := prompts.MustGet("summary.json", "qa-system")
	prompt := prompts.Format(prompts.MustGet("summary.json", "qa"), map[string]string{
		"Question": item.Question,
		"Answer":   item.Answer,
	})
	return s.client.GenerateContent(ctx, prompt, system, llm.TierStandard)
}

// SummarizeBatch summarizes several interviews, isolating each failure into
// that interview's result entry.
func (s *Service) SummarizeBatch(ctx context.Context, ids []string) []BatchResult {
	results := make([]BatchResult, 0, len(ids))
	for _, id := range ids {
		res, err := s.Summarize(ctx, id)
		if err != nil {
			results = append(results, BatchResult{InterviewID: id, Err: err})
			continue
		}
		results = append(results, BatchResult{InterviewID: id, Summary: res.Summary})
	}
	return results
}

// transcript renders the record's metadata and QA pairs as the composite
// prompt body.
func transcript(rec *store.InterviewRecord) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Position: %s\n", rec.Position))
	sb.WriteString(fmt.Sprintf("Company: %s\n", rec.Company))
	sb.WriteString(fmt.Sprintf("Interview date: %s\n\n", rec.InterviewDate))

	for _, qa := range rec.QuestionsAnswers {
		sb.WriteString(fmt.Sprintf("Question: %s\n", qa.Question))
		sb.WriteString(fmt.Sprintf("Answer: %s\n\n", qa.Answer))
	}
	return sb.String()
}

// keyPoints derives short excerpts from each non-trivial paragraph of a
// summary, as a cheap index into it.
func keyPoints(summary string) []string {
	var points []string
	for _, para := range strings.Split(summary, "\n") {
		para = strings.TrimSpace(para)
		if utf8.RuneCountInString(para) <= 10 {
			continue
		}
		runes := []rune(para)
		if len(runes) > keyPointRunes {
			points = append(points, string(runes[:keyPointRunes])+"...")
		} else {
			points = append(points, para)
		}
	}
	return points
}

func checkIndex(index, length int) error {
	if index < 0 || index >= length {
		return &OutOfRangeError{Index: index, Length: length}
	}
	return nil
}

func nowISO() string {
	return time.Now().Format("2006-01-02T15:04:05")
}
