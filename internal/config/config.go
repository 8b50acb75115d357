// Package config provides configuration for the compliance agent.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the agent configuration.
type Config struct {
	// Server settings
	HTTPPort int

	// Database
	DatabaseURL string

	// LLM settings
	LLMBaseURL string
	LLMAPIKey  string
	LLMModel   string
	LLMTimeout time.Duration

	// Token budgets per call site
	DefaultMaxTokens   int
	SelectionMaxTokens int
	SummaryMaxTokens   int

	// Question validation bounds
	QuestionMinLength int
	QuestionMaxLength int

	// Law text processing
	MaxLawTextChars  int
	MinSummaryChars  int
	RelevantKeywords []string

	// Optional overrides for static data
	CatalogPath string
	LawTextDir  string
}

// defaultKeywords drive keyword-preferring truncation of law text.
var defaultKeywords = []string{
	"personal data",
	"data protection",
	"privacy",
	"personal information",
	"data processing",
	"datos personales",
	"protección de datos",
	"privacidad",
	"información personal",
	"tratamiento de datos",
}

// Load loads configuration from environment variables.
func Load() *Config {
	cfg := &Config{
		HTTPPort:           getEnvInt("HTTP_PORT", 8080),
		DatabaseURL:        getEnv("DATABASE_URL", "file:agent.db?cache=shared&mode=rwc"),
		LLMBaseURL:         getEnv("LLM_BASE_URL", "http://localhost:4000"),
		LLMAPIKey:          getEnv("LLM_API_KEY", ""),
		LLMModel:           getEnv("LLM_MODEL", "llama-3-8b-instruct"),
		LLMTimeout:         time.Duration(getEnvInt("LLM_TIMEOUT_MS", 60000)) * time.Millisecond,
		DefaultMaxTokens:   getEnvInt("LLM_MAX_TOKENS", 1500),
		SelectionMaxTokens: getEnvInt("LLM_SELECTION_MAX_TOKENS", 200),
		SummaryMaxTokens:   getEnvInt("LLM_SUMMARY_MAX_TOKENS", 600),
		QuestionMinLength:  getEnvInt("QUESTION_MIN_LENGTH", 10),
		QuestionMaxLength:  getEnvInt("QUESTION_MAX_LENGTH", 2000),
		MaxLawTextChars:    getEnvInt("MAX_LAW_TEXT_CHARS", 15000),
		MinSummaryChars:    getEnvInt("MIN_SUMMARY_CHARS", 100),
		RelevantKeywords:   getEnvList("RELEVANT_KEYWORDS", defaultKeywords),
		CatalogPath:        getEnv("CATALOG_PATH", ""),
		LawTextDir:         getEnv("LAW_TEXT_DIR", ""),
	}
	return cfg
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvList(key string, defaultVal []string) []string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	var out []string
	for _, item := range strings.Split(val, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return defaultVal
	}
	return out
}
