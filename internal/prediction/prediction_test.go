package prediction

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/interview-copilot/internal/llm"
	"github.com/jonathan/interview-copilot/internal/resume"
	"github.com/jonathan/interview-copilot/internal/store"
)

// stubClient replies from a fixed script of responses, in call order, and
// records every prompt it saw.
type stubClient struct {
	responses []string
	prompts   []string
}

func (s *stubClient) GenerateContent(_ context.Context, prompt, _ string, _ llm.ModelTier) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if len(s.responses) == 0 {
		return "", &llm.APICallError{Message: "no scripted response"}
	}
	next := s.responses[0]
	s.responses = s.responses[1:]
	return next, nil
}

func (s *stubClient) GetModel(llm.ModelTier) string { return "stub-model" }
func (s *stubClient) Close() error                  { return nil }

func newTestService(t *testing.T, client llm.Client) (*Service, *store.Store) {
	t.Helper()
	st, err := store.New(t.TempDir(), []string{".txt"})
	require.NoError(t, err)
	return NewService(st, client, resume.NewService(st, client)), st
}

func scripted(questions, topics, plan string) *stubClient {
	return &stubClient{responses: []string{questions, topics, plan}}
}

func TestGenerate_FullFlowAndPersistence(t *testing.T) {
	stub := scripted(
		"1. Why Go?\n2. Describe a race you debugged\n3. How does GC work?",
		"- concurrency\n- garbage collection",
		"Day 1: review goroutines.\nDay 2: mock interview.",
	)
	svc, _ := newTestService(t, stub)

	rec, err := svc.Generate(context.Background(), Input{
		TargetPosition: "Backend Engineer",
		TargetCompany:  "Acme",
	})
	require.NoError(t, err)
	require.NotEmpty(t, rec.PredictionID)

	assert.Equal(t, []string{"Why Go?", "Describe a race you debugged", "How does GC work?"}, rec.RecommendedQuestions)
	assert.Equal(t, []string{"concurrency", "garbage collection"}, rec.RecommendedTopics)
	assert.Equal(t, "Day 1: review goroutines.\nDay 2: mock interview.", rec.PreparationPlan)
	assert.NotEmpty(t, rec.GeneratedTime)

	// Persisted and loadable.
	got, err := svc.Load(rec.PredictionID)
	require.NoError(t, err)
	assert.Equal(t, rec.RecommendedQuestions, got.RecommendedQuestions)

	// The plan prompt references the itemized questions and topics.
	require.Len(t, stub.prompts, 3)
	assert.Contains(t, stub.prompts[2], "1. Why Go?")
	assert.Contains(t, stub.prompts[2], "1. concurrency")
}

func TestGenerate_EmptyPositionRejected(t *testing.T) {
	svc, _ := newTestService(t, scripted("", "", ""))

	_, err := svc.Generate(context.Background(), Input{TargetCompany: "Acme"})
	var verr *store.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestGenerate_ResumeLoadFailureSwallowed(t *testing.T) {
	stub := scripted("1. A question", "- topic", "plan text")
	svc, _ := newTestService(t, stub)

	rec, err := svc.Generate(context.Background(), Input{
		TargetPosition: "Engineer",
		ResumeID:       "does-not-exist",
	})
	require.NoError(t, err)
	assert.Equal(t, "does-not-exist", rec.ResumeID)
	assert.Equal(t, []string{"A question"}, rec.RecommendedQuestions)
}

func TestGenerate_HistoryBiasFromMatchingPositions(t *testing.T) {
	stub := scripted("1. Q", "- t", "p")
	svc, st := newTestService(t, stub)

	save := func(position, question string) {
		rec := &store.InterviewRecord{
			Title:         "past",
			Company:       "Acme",
			Position:      position,
			InterviewDate: "2024-01-01",
			QuestionsAnswers: []store.QAItem{
				{Question: question, Answer: "a", Timestamp: "2024-01-01T10:00:00"},
			},
		}
		_, err := st.SaveInterview(rec)
		require.NoError(t, err)
	}
	save("Senior Backend Engineer", "How do channels work?")
	save("Data Scientist", "Explain gradient descent")

	_, err := svc.Generate(context.Background(), Input{TargetPosition: "backend engineer"})
	require.NoError(t, err)

	questionsPrompt := stub.prompts[0]
	assert.Contains(t, questionsPrompt, "How do channels work?")
	assert.NotContains(t, questionsPrompt, "Explain gradient descent")
}

func TestGenerate_QuestionCapAndUnparseableOutput(t *testing.T) {
	var lines []string
	for i := 1; i <= 15; i++ {
		lines = append(lines, fmt.Sprintf("%d. question %d", i, i))
	}
	stub := scripted(strings.Join(lines, "\n"), "prose without any list markers at all", "plan")
	svc, _ := newTestService(t, stub)

	rec, err := svc.Generate(context.Background(), Input{TargetPosition: "Engineer"})
	require.NoError(t, err)
	assert.Len(t, rec.RecommendedQuestions, llm.DefaultPredictedQuestions)
	// Unparseable topic output degrades to an empty list, not an error.
	assert.Empty(t, rec.RecommendedTopics)
}

func TestListAndDelete(t *testing.T) {
	svc, _ := newTestService(t, scripted("1. Q", "- t", "p"))

	rec, err := svc.Generate(context.Background(), Input{TargetPosition: "Engineer"})
	require.NoError(t, err)

	records, err := svc.List()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, rec.PredictionID, records[0].PredictionID)

	require.NoError(t, svc.Delete(rec.PredictionID))
	_, err = svc.Load(rec.PredictionID)
	var nf *store.NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "short", truncateRunes("short", 10))
	assert.Equal(t, "abcde...", truncateRunes("abcdefgh", 5))
}
