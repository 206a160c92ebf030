package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	for _, key := range []string{"HTTP_PORT", "DBType", "LLM_PROVIDER", "OPENAI_MODEL", "STORAGE_TYPE", "DEFAULT_USERNAME"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := ParseConfig()
	if err != nil {
		t.Fatalf("ParseConfig returned error: %v", err)
	}

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"port", cfg.HTTPPort, "5000"},
		{"store", cfg.DBType, StoreMemory},
		{"llm provider", cfg.LLMProvider, LLMProviderGemini},
		{"openai model", cfg.OpenAIModel, "gpt-4o"},
		{"gemini model", cfg.GeminiModel, "gemini-pro"},
		{"storage", cfg.StorageType, "local"},
		{"default user", cfg.DefaultUsername, "John Doe"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Fatalf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestParseConfigOverrides(t *testing.T) {
	t.Setenv("DBType", "sqlite")
	t.Setenv("LLM_PROVIDER", "openai")
	t.Setenv("STORAGE_S3_FORCE_PATH_STYLE", "true")

	cfg, err := ParseConfig()
	if err != nil {
		t.Fatalf("ParseConfig returned error: %v", err)
	}
	if cfg.DBType != "sqlite" {
		t.Fatalf("expected sqlite, got %q", cfg.DBType)
	}
	if cfg.LLMProvider != LLMProviderOpenAI {
		t.Fatalf("expected openai, got %q", cfg.LLMProvider)
	}
	if !cfg.StorageS3ForcePathStyle {
		t.Fatalf("expected force path style to be parsed")
	}
}

func TestLoadDotEnv(t *testing.T) {
	t.Run("missing file is ignored", func(t *testing.T) {
		if err := LoadDotEnv(filepath.Join(t.TempDir(), ".env")); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
	})

	t.Run("does not override existing values", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		content := "PROMPTVAULT_TEST_FROM_FILE=file\nPROMPTVAULT_TEST_PRESET=file\n"
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatalf("write .env: %v", err)
		}
		t.Setenv("PROMPTVAULT_TEST_PRESET", "env")
		t.Setenv("PROMPTVAULT_TEST_FROM_FILE", "")
		os.Unsetenv("PROMPTVAULT_TEST_FROM_FILE")

		if err := LoadDotEnv(path); err != nil {
			t.Fatalf("LoadDotEnv: %v", err)
		}
		if got := os.Getenv("PROMPTVAULT_TEST_FROM_FILE"); got != "file" {
			t.Fatalf("expected value from file, got %q", got)
		}
		if got := os.Getenv("PROMPTVAULT_TEST_PRESET"); got != "env" {
			t.Fatalf("expected preset env to win, got %q", got)
		}
	})
}
