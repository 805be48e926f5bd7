package llm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultGeminiConfig(t *testing.T) {
	cfg := DefaultGeminiConfig()
	assert.Equal(t, ProviderGemini, cfg.Provider)
	assert.Equal(t, "gemini-2.5-flash-lite", cfg.GetModel(TierLite))
	assert.Equal(t, "gemini-2.5-flash", cfg.GetModel(TierStandard))
	assert.Equal(t, "gemini-2.5-pro", cfg.GetModel(TierAdvanced))
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
}

func TestGetModel_FallbackChain(t *testing.T) {
	cfg := &Config{Models: map[ModelTier]string{TierStandard: "standard-model"}}
	assert.Equal(t, "standard-model", cfg.GetModel(TierAdvanced))

	cfg = &Config{Models: map[ModelTier]string{TierLite: "lite-model"}}
	assert.Equal(t, "lite-model", cfg.GetModel(TierAdvanced))

	cfg = &Config{Models: map[ModelTier]string{}}
	assert.Empty(t, cfg.GetModel(TierAdvanced))
}

func TestWithModel_DoesNotMutateOriginal(t *testing.T) {
	base := DefaultGeminiConfig()
	derived := base.WithModel(TierLite, "custom-lite")

	assert.Equal(t, "custom-lite", derived.GetModel(TierLite))
	assert.Equal(t, "gemini-2.5-flash-lite", base.GetModel(TierLite))
}

func TestWithAllTiers(t *testing.T) {
	cfg := DefaultGeminiConfig().WithAllTiers("single-model")
	for _, tier := range []ModelTier{TierLite, TierStandard, TierAdvanced} {
		assert.Equal(t, "single-model", cfg.GetModel(tier))
	}
}

func TestWithTimeout(t *testing.T) {
	base := DefaultGeminiConfig()
	derived := base.WithTimeout(5 * time.Second)
	assert.Equal(t, 5*time.Second, derived.Timeout)
	assert.Equal(t, DefaultTimeout, base.Timeout)
	assert.Equal(t, base.GetModel(TierAdvanced), derived.GetModel(TierAdvanced))
}
