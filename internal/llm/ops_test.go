package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubClient records each call and replies with a canned response.
type stubClient struct {
	lastPrompt string
	lastSystem string
	lastTier   ModelTier
	response   string
	err        error
}

func (s *stubClient) GenerateContent(_ context.Context, prompt, systemPrompt string, tier ModelTier) (string, error) {
	s.lastPrompt = prompt
	s.lastSystem = systemPrompt
	s.lastTier = tier
	return s.response, s.err
}

func (s *stubClient) GetModel(ModelTier) string { return "stub-model" }
func (s *stubClient) Close() error              { return nil }

func TestSummarizeText(t *testing.T) {
	stub := &stubClient{response: "short summary"}

	out, err := SummarizeText(context.Background(), stub, "long interview transcript", 200)
	require.NoError(t, err)
	assert.Equal(t, "short summary", out)
	assert.Equal(t, "long interview transcript", stub.lastPrompt)
	assert.Contains(t, stub.lastSystem, "200")
	assert.Equal(t, TierLite, stub.lastTier)
}

func TestSummarizeText_DefaultLength(t *testing.T) {
	stub := &stubClient{response: "ok"}
	_, err := SummarizeText(context.Background(), stub, "text", 0)
	require.NoError(t, err)
	assert.Contains(t, stub.lastSystem, "300")
}

func TestExtractField(t *testing.T) {
	stub := &stubClient{response: "ada@example.com"}

	out, err := ExtractField(context.Background(), stub, "resume text body", "email")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", out)
	assert.Contains(t, stub.lastPrompt, "email")
	assert.Contains(t, stub.lastPrompt, "resume text body")
	assert.NotEmpty(t, stub.lastSystem)
	assert.Equal(t, TierLite, stub.lastTier)
}

func TestAnalyzeAnswer(t *testing.T) {
	stub := &stubClient{response: "good structure, lacks metrics"}

	out, err := AnalyzeAnswer(context.Background(), stub, "Why Go?", "Because of goroutines")
	require.NoError(t, err)
	assert.Equal(t, "good structure, lacks metrics", out)
	assert.Contains(t, stub.lastPrompt, "Why Go?")
	assert.Contains(t, stub.lastPrompt, "Because of goroutines")
	assert.Equal(t, TierStandard, stub.lastTier)
}

func TestChat(t *testing.T) {
	stub := &stubClient{response: "hello"}

	out, err := Chat(context.Background(), stub, "hi there")
	require.NoError(t, err)
	assert.Equal(t, "hello", out)
	assert.Equal(t, "hi there", stub.lastPrompt)
	assert.Empty(t, stub.lastSystem)
}

func TestOps_PropagateClientError(t *testing.T) {
	stub := &stubClient{err: &APICallError{Message: "model call failed", Cause: errors.New("boom")}}

	_, err := ExtractField(context.Background(), stub, "text", "name")
	var apiErr *APICallError
	assert.ErrorAs(t, err, &apiErr)
}
