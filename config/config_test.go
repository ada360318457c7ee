package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	// Clean up environment before tests
	cleanupEnv := func() {
		os.Unsetenv("GYMCOACH_SERVER_PORT")
		os.Unsetenv("GYMCOACH_SERVER_ENVIRONMENT")
		os.Unsetenv("GYMCOACH_SERVER_ALLOWED_ORIGINS")
		os.Unsetenv("GYMCOACH_OPENAI_API_KEY")
		os.Unsetenv("GYMCOACH_OPENAI_BASE_URL")
		os.Unsetenv("GYMCOACH_OPENAI_MODEL")
		os.Unsetenv("GYMCOACH_TAVILY_API_KEY")
		os.Unsetenv("GYMCOACH_TAVILY_BASE_URL")
		os.Unsetenv("GYMCOACH_CACHE_TTL")
		os.Unsetenv("GYMCOACH_WORKOUT_DAYS")
	}

	t.Run("loads with defaults when no env vars set", func(t *testing.T) {
		cleanupEnv()
		// Set required API key
		os.Setenv("GYMCOACH_OPENAI_API_KEY", "test-key")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		// Check defaults
		if cfg.Server.Port != "8080" {
			t.Errorf("Server.Port = %s, want 8080", cfg.Server.Port)
		}
		if cfg.Server.Environment != "development" {
			t.Errorf("Server.Environment = %s, want development", cfg.Server.Environment)
		}
		if cfg.OpenAI.Model != "gpt-4o-mini" {
			t.Errorf("OpenAI.Model = %s, want gpt-4o-mini", cfg.OpenAI.Model)
		}
		if cfg.Tavily.BaseURL != "https://api.tavily.com" {
			t.Errorf("Tavily.BaseURL = %s, want https://api.tavily.com", cfg.Tavily.BaseURL)
		}
		if cfg.Tavily.APIKey != "" {
			t.Errorf("Tavily.APIKey = %s, want empty (video search disabled)", cfg.Tavily.APIKey)
		}
		if cfg.Cache.TTL != 24*time.Hour {
			t.Errorf("Cache.TTL = %v, want 24h", cfg.Cache.TTL)
		}
		if cfg.Workout.Days != 3 {
			t.Errorf("Workout.Days = %d, want 3", cfg.Workout.Days)
		}
	})

	t.Run("loads custom values from environment variables", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("GYMCOACH_SERVER_PORT", "9090")
		os.Setenv("GYMCOACH_SERVER_ENVIRONMENT", "production")
		os.Setenv("GYMCOACH_OPENAI_API_KEY", "custom-api-key")
		os.Setenv("GYMCOACH_OPENAI_BASE_URL", "https://custom.api.com/v1")
		os.Setenv("GYMCOACH_OPENAI_MODEL", "gpt-4o")
		os.Setenv("GYMCOACH_TAVILY_API_KEY", "tavily-key")
		os.Setenv("GYMCOACH_CACHE_TTL", "72h")
		os.Setenv("GYMCOACH_WORKOUT_DAYS", "5")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "9090" {
			t.Errorf("Server.Port = %s, want 9090", cfg.Server.Port)
		}
		if cfg.Server.Environment != "production" {
			t.Errorf("Server.Environment = %s, want production", cfg.Server.Environment)
		}
		if cfg.OpenAI.APIKey != "custom-api-key" {
			t.Errorf("OpenAI.APIKey = %s, want custom-api-key", cfg.OpenAI.APIKey)
		}
		if cfg.OpenAI.BaseURL != "https://custom.api.com/v1" {
			t.Errorf("OpenAI.BaseURL = %s, want https://custom.api.com/v1", cfg.OpenAI.BaseURL)
		}
		if cfg.OpenAI.Model != "gpt-4o" {
			t.Errorf("OpenAI.Model = %s, want gpt-4o", cfg.OpenAI.Model)
		}
		if cfg.Tavily.APIKey != "tavily-key" {
			t.Errorf("Tavily.APIKey = %s, want tavily-key", cfg.Tavily.APIKey)
		}
		if cfg.Cache.TTL != 72*time.Hour {
			t.Errorf("Cache.TTL = %v, want 72h", cfg.Cache.TTL)
		}
		if cfg.Workout.Days != 5 {
			t.Errorf("Workout.Days = %d, want 5", cfg.Workout.Days)
		}
	})

	t.Run("fails validation when API key is missing", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Error("Load() error = nil, want error for missing API key")
		}
		if err != nil && err.Error() != "invalid configuration: OpenAI API key is required (set GYMCOACH_OPENAI_API_KEY)" {
			t.Errorf("Load() error = %v, want 'OpenAI API key is required'", err)
		}
	})

	t.Run("fails validation for out-of-range workout days", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("GYMCOACH_OPENAI_API_KEY", "test-key")
		os.Setenv("GYMCOACH_WORKOUT_DAYS", "9")
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Error("Load() error = nil, want error for invalid workout days")
		}
	})
}

func TestLoadEnvFile(t *testing.T) {
	t.Run("returns nil when .env file doesn't exist", func(t *testing.T) {
		// Save current directory
		originalDir, _ := os.Getwd()
		defer os.Chdir(originalDir)

		// Create temp directory
		tempDir := t.TempDir()
		os.Chdir(tempDir)

		err := loadEnvFile()
		if err != nil {
			t.Errorf("loadEnvFile() error = %v, want nil when file doesn't exist", err)
		}
	})

	t.Run("loads variables from .env file", func(t *testing.T) {
		// Save current directory
		originalDir, _ := os.Getwd()
		defer os.Chdir(originalDir)

		// Create temp directory
		tempDir := t.TempDir()
		os.Chdir(tempDir)

		// Create .env file
		envContent := `
# Comment line
TEST_VAR_1=value1
TEST_VAR_2=value2

# Another comment
TEST_VAR_3=value3
`
		err := os.WriteFile(".env", []byte(envContent), 0644)
		if err != nil {
			t.Fatalf("Failed to create test .env file: %v", err)
		}

		// Clear any existing values
		os.Unsetenv("TEST_VAR_1")
		os.Unsetenv("TEST_VAR_2")
		os.Unsetenv("TEST_VAR_3")

		err = loadEnvFile()
		if err != nil {
			t.Fatalf("loadEnvFile() error = %v, want nil", err)
		}

		if os.Getenv("TEST_VAR_1") != "value1" {
			t.Errorf("TEST_VAR_1 = %s, want value1", os.Getenv("TEST_VAR_1"))
		}
		if os.Getenv("TEST_VAR_2") != "value2" {
			t.Errorf("TEST_VAR_2 = %s, want value2", os.Getenv("TEST_VAR_2"))
		}
		if os.Getenv("TEST_VAR_3") != "value3" {
			t.Errorf("TEST_VAR_3 = %s, want value3", os.Getenv("TEST_VAR_3"))
		}

		// Cleanup
		os.Unsetenv("TEST_VAR_1")
		os.Unsetenv("TEST_VAR_2")
		os.Unsetenv("TEST_VAR_3")
	})

	t.Run("skips empty lines and comments", func(t *testing.T) {
		// Save current directory
		originalDir, _ := os.Getwd()
		defer os.Chdir(originalDir)

		// Create temp directory
		tempDir := t.TempDir()
		os.Chdir(tempDir)

		// Create .env file with various formats
		envContent := `
# This is a comment
   # This is also a comment

TEST_SKIP_1=value1

TEST_SKIP_2=value2
# TEST_COMMENTED=should_not_load
`
		err := os.WriteFile(".env", []byte(envContent), 0644)
		if err != nil {
			t.Fatalf("Failed to create test .env file: %v", err)
		}

		os.Unsetenv("TEST_SKIP_1")
		os.Unsetenv("TEST_SKIP_2")
		os.Unsetenv("TEST_COMMENTED")

		err = loadEnvFile()
		if err != nil {
			t.Fatalf("loadEnvFile() error = %v, want nil", err)
		}

		if os.Getenv("TEST_SKIP_1") != "value1" {
			t.Errorf("TEST_SKIP_1 not loaded correctly")
		}
		if os.Getenv("TEST_SKIP_2") != "value2" {
			t.Errorf("TEST_SKIP_2 not loaded correctly")
		}
		if os.Getenv("TEST_COMMENTED") != "" {
			t.Errorf("TEST_COMMENTED should not be loaded from comment")
		}

		os.Unsetenv("TEST_SKIP_1")
		os.Unsetenv("TEST_SKIP_2")
	})

	t.Run("doesn't override existing environment variables", func(t *testing.T) {
		// Save current directory
		originalDir, _ := os.Getwd()
		defer os.Chdir(originalDir)

		// Create temp directory
		tempDir := t.TempDir()
		os.Chdir(tempDir)

		// Set existing env var
		os.Setenv("TEST_OVERRIDE", "existing-value")

		// Create .env file that tries to override
		envContent := "TEST_OVERRIDE=new-value"
		err := os.WriteFile(".env", []byte(envContent), 0644)
		if err != nil {
			t.Fatalf("Failed to create test .env file: %v", err)
		}

		err = loadEnvFile()
		if err != nil {
			t.Fatalf("loadEnvFile() error = %v, want nil", err)
		}

		// Should still have original value
		if os.Getenv("TEST_OVERRIDE") != "existing-value" {
			t.Errorf("TEST_OVERRIDE = %s, want existing-value (should not override)", os.Getenv("TEST_OVERRIDE"))
		}

		os.Unsetenv("TEST_OVERRIDE")
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			OpenAI: OpenAIConfig{
				APIKey: "test-key",
				Model:  "gpt-4o-mini",
			},
			Cache:   CacheConfig{TTL: 24 * time.Hour},
			Workout: WorkoutConfig{Days: 3},
		}
	}

	t.Run("validates successfully with all required fields", func(t *testing.T) {
		if err := validate(valid()); err != nil {
			t.Errorf("validate() error = %v, want nil", err)
		}
	})

	t.Run("fails when API key is empty", func(t *testing.T) {
		cfg := valid()
		cfg.OpenAI.APIKey = ""

		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error for empty API key")
		}
	})

	t.Run("fails when model name is empty", func(t *testing.T) {
		cfg := valid()
		cfg.OpenAI.Model = ""

		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error for empty model name")
		}
	})

	t.Run("fails for zero workout days", func(t *testing.T) {
		cfg := valid()
		cfg.Workout.Days = 0

		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error for zero workout days")
		}
	})

	t.Run("fails for negative cache TTL", func(t *testing.T) {
		cfg := valid()
		cfg.Cache.TTL = -time.Hour

		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error for negative TTL")
		}
	})
}
