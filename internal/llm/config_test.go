package llm

import (
	"testing"
)

func clearLLMEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"EDURAG_LLM_PROVIDER",
		"EDURAG_ANTHROPIC_API_KEY", "ANTHROPIC_API_KEY", "EDURAG_ANTHROPIC_MODEL",
		"EDURAG_OPENAI_API_KEY", "OPENAI_API_KEY", "EDURAG_OPENAI_MODEL", "EDURAG_OPENAI_BASE_URL",
		"EDURAG_GEMINI_API_KEY", "GEMINI_API_KEY", "EDURAG_GEMINI_MODEL",
	} {
		t.Setenv(k, "")
	}
}

func TestConfigFromEnv_Defaults(t *testing.T) {
	clearLLMEnv(t)

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" {
		t.Errorf("got provider %q, want openai", cfg.Provider)
	}
	if cfg.OpenAI.Model != "gpt-4o-mini" {
		t.Errorf("got model %q, want gpt-4o-mini", cfg.OpenAI.Model)
	}
	if cfg.Retry.MaxAttempts != 3 {
		t.Errorf("got max attempts %d, want 3", cfg.Retry.MaxAttempts)
	}
}

func TestConfigFromEnv_KeySelectsProvider(t *testing.T) {
	clearLLMEnv(t)
	t.Setenv("ANTHROPIC_API_KEY", "sk-test")

	cfg := ConfigFromEnv()
	if cfg.Provider != "anthropic" {
		t.Errorf("got provider %q, want anthropic", cfg.Provider)
	}
	if cfg.Anthropic.APIKey != "sk-test" {
		t.Errorf("got key %q, want sk-test", cfg.Anthropic.APIKey)
	}
}

func TestConfigFromEnv_ExplicitProviderWins(t *testing.T) {
	clearLLMEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-openai")
	t.Setenv("EDURAG_LLM_PROVIDER", "gemini")

	cfg := ConfigFromEnv()
	if cfg.Provider != "gemini" {
		t.Errorf("got provider %q, want gemini", cfg.Provider)
	}
}

func TestConfigFromEnv_PrefixedKeyPreferred(t *testing.T) {
	clearLLMEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-generic")
	t.Setenv("EDURAG_OPENAI_API_KEY", "sk-specific")

	cfg := ConfigFromEnv()
	if cfg.OpenAI.APIKey != "sk-specific" {
		t.Errorf("got key %q, want sk-specific", cfg.OpenAI.APIKey)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"openai with key", Config{Provider: "openai", OpenAI: OpenAIConfig{APIKey: "k"}}, false},
		{"openai without key", Config{Provider: "openai"}, true},
		{"anthropic without key", Config{Provider: "anthropic"}, true},
		{"gemini without key", Config{Provider: "gemini"}, true},
		{"mock needs no key", Config{Provider: "mock"}, false},
		{"unknown provider", Config{Provider: "llama-at-home"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("got err %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestResolveModel(t *testing.T) {
	aliases := map[string]string{"fast": "model-fast-001"}
	if got := resolveModel("fast", aliases); got != "model-fast-001" {
		t.Errorf("got %q, want model-fast-001", got)
	}
	if got := resolveModel("custom-id", aliases); got != "custom-id" {
		t.Errorf("got %q, want custom-id passthrough", got)
	}
}
