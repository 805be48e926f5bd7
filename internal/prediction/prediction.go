// Package prediction generates likely interview questions, study topics, and
// a preparation plan for a target role, optionally grounded in a stored
// resume and in questions from past interviews for similar positions.
package prediction

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/jonathan/interview-copilot/internal/itemize"
	"github.com/jonathan/interview-copilot/internal/llm"
	"github.com/jonathan/interview-copilot/internal/prompts"
	"github.com/jonathan/interview-copilot/internal/resume"
	"github.com/jonathan/interview-copilot/internal/store"
)

const (
	// maxQuestions and maxTopics cap the itemized model output.
	maxQuestions = llm.DefaultPredictedQuestions
	maxTopics    = 10
	// maxHistoryQuestions caps how many past questions bias the prompt.
	maxHistoryQuestions = 10
	// planTopN is how many questions/topics the preparation plan references.
	planTopN = 5
	// resumeContextRunes truncates resume text inside prompts.
	resumeContextRunes = 1000
)

// Input describes one prediction request. TargetPosition is required;
// everything else is optional context.
type Input struct {
	TargetPosition string `validate:"required"`
	TargetCompany  string
	ResumeID       string
	ResumeText     string
}

// Service composes the store, the LLM client, and the resume service.
type Service struct {
	store    *store.Store
	client   llm.Client
	resumes  *resume.Service
	validate *validator.Validate
}

// NewService creates a prediction service.
func NewService(st *store.Store, client llm.Client, resumes *resume.Service) *Service {
	return &Service{
		store:    st,
		client:   client,
		resumes:  resumes,
		validate: validator.New(),
	}
}

// Generate runs the full prediction: questions, topics, and plan, then
// persists the record under the predictions directory. A resume that fails
// to load is logged and skipped; the prediction proceeds with empty resume
// context.
func (s *Service) Generate(ctx context.Context, in Input) (*store.PredictionRecord, error) {
	if err := s.validate.Struct(&in); err != nil {
		return nil, &store.ValidationError{Field: "target_position", Message: "target position is required"}
	}

	resumeText := in.ResumeText
	if resumeText == "" && in.ResumeID != "" {
		text, err := s.resumes.Text(ctx, in.ResumeID)
		if err != nil {
			log.Warn().Err(err).Str("resume_id", in.ResumeID).Msg("resume load failed, predicting without resume context")
		} else {
			resumeText = text
		}
	}

	questions, err := s.predictQuestions(ctx, resumeText, in)
	if err != nil {
		return nil, err
	}

	topics, err := s.recommendTopics(ctx, resumeText, in)
	if err != nil {
		return nil, err
	}

	plan, err := s.preparePlan(ctx, in, questions, topics)
	if err != nil {
		return nil, err
	}

	rec := &store.PredictionRecord{
		PredictionID:         store.UniqueID(),
		TargetPosition:       in.TargetPosition,
		TargetCompany:        in.TargetCompany,
		ResumeID:             in.ResumeID,
		RecommendedQuestions: questions,
		RecommendedTopics:    topics,
		PreparationPlan:      plan,
		GeneratedTime:        time.Now().Format("2006-01-02T15:04:05"),
	}
	if _, err := s.store.SavePrediction(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Load fetches a stored prediction by id.
func (s *Service) Load(id string) (*store.PredictionRecord, error) {
	return s.store.GetPrediction(id)
}

// List returns all stored predictions, newest first.
func (s *Service) List() ([]*store.PredictionRecord, error) {
	return s.store.ListPredictions()
}

// Delete removes a stored prediction.
func (s *Service) Delete(id string) error {
	return s.store.DeletePrediction(id)
}

// predictQuestions asks for the ranked question list, biased by questions
// from past interviews whose position contains the target position.
func (s *Service) predictQuestions(ctx context.Context, resumeText string, in Input) ([]string, error) {
	history := s.historicalQuestions(in.TargetPosition)

	historySection := ""
	if len(history) > 0 {
		historySection = "Reference questions from past interviews for similar positions:\n" +
			strings.Join(history, "\n") + "\n\n"
	}

	system := prompts.MustGet("prediction.json", "questions-system")
	prompt := prompts.Format(prompts.MustGet("prediction.json", "questions"), map[string]string{
		"Resume":   truncateRunes(resumeText, resumeContextRunes),
		"Position": in.TargetPosition,
		"Company":  companySection(in.TargetCompany),
		"History":  historySection,
		"Count":    fmt.Sprintf("%d", maxQuestions),
	})

	raw, err := s.client.GenerateContent(ctx, prompt, system, llm.TierAdvanced)
	if err != nil {
		return nil, err
	}
	return capItems(itemize.Items(raw), maxQuestions), nil
}

// recommendTopics asks for the ranked study-topic list.
func (s *Service) recommendTopics(ctx context.Context, resumeText string, in Input) ([]string, error) {
	resumeSection := ""
	if resumeText != "" {
		resumeSection = "Candidate resume summary: " + truncateRunes(resumeText, 500) + "\n\n"
	}

	system := prompts.MustGet("prediction.json", "topics-system")
	prompt := prompts.Format(prompts.MustGet("prediction.json", "topics"), map[string]string{
		"Position": in.TargetPosition,
		"Resume":   resumeSection,
		"Count":    fmt.Sprintf("%d", maxTopics),
	})

	raw, err := s.client.GenerateContent(ctx, prompt, system, llm.TierStandard)
	if err != nil {
		return nil, err
	}
	return capItems(itemize.Items(raw), maxTopics), nil
}

// preparePlan asks for the free-text preparation plan referencing the top
// questions and topics.
func (s *Service) preparePlan(ctx context.Context, in Input, questions, topics []string) (string, error) {
	system := prompts.MustGet("prediction.json", "plan-system")
	prompt := prompts.Format(prompts.MustGet("prediction.json", "plan"), map[string]string{
		"Position":  in.TargetPosition,
		"Company":   companySection(in.TargetCompany),
		"Questions": numberedList(capItems(questions, planTopN)),
		"Topics":    numberedList(capItems(topics, planTopN)),
	})
	return s.client.GenerateContent(ctx, prompt, system, llm.TierAdvanced)
}

// historicalQuestions collects questions from stored interviews whose
// position contains the target position, case-insensitively. Listing
// failures are swallowed: history is an optional enrichment.
func (s *Service) historicalQuestions(targetPosition string) []string {
	records, err := s.store.ListInterviews()
	if err != nil {
		log.Warn().Err(err).Msg("could not list interviews for prediction history")
		return nil
	}

	target := strings.ToLower(targetPosition)
	var questions []string
	for _, rec := range records {
		if !strings.Contains(strings.ToLower(rec.Position), target) {
			continue
		}
		for _, qa := range rec.QuestionsAnswers {
			if qa.Question == "" {
				continue
			}
			questions = append(questions, qa.Question)
			if len(questions) >= maxHistoryQuestions {
				return questions
			}
		}
	}
	return questions
}

func companySection(company string) string {
	if company == "" {
		return ""
	}
	return "Target company: " + company + "\n\n"
}

func numberedList(items []string) string {
	var sb strings.Builder
	for i, item := range items {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, item))
	}
	return sb.String()
}

func capItems(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func truncateRunes(text string, n int) string {
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n]) + "..."
}
