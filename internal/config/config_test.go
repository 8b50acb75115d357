package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, 15000, cfg.MaxLawTextChars)
	assert.Equal(t, 10, cfg.QuestionMinLength)
	assert.Equal(t, 2000, cfg.QuestionMaxLength)
	assert.Equal(t, 100, cfg.MinSummaryChars)
	assert.NotEmpty(t, cfg.RelevantKeywords)
	assert.Contains(t, cfg.RelevantKeywords, "datos personales")
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("MAX_LAW_TEXT_CHARS", "500")
	t.Setenv("RELEVANT_KEYWORDS", "privacy, seguridad")

	cfg := Load()

	assert.Equal(t, 9090, cfg.HTTPPort)
	assert.Equal(t, 500, cfg.MaxLawTextChars)
	assert.Equal(t, []string{"privacy", "seguridad"}, cfg.RelevantKeywords)
}

func TestLoadIgnoresMalformedInt(t *testing.T) {
	t.Setenv("HTTP_PORT", "not-a-number")

	cfg := Load()

	assert.Equal(t, 8080, cfg.HTTPPort)
}
