package cliparse

import (
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "DATABASE_URL", "DATABASE_TYPE", "ADMIN_USERNAME", "ADMIN_PASSWORD"} {
		t.Setenv(key, "")
	}
}

func TestParseFlagsDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := ParseFlags([]string{"-admin-user", "admin", "-admin-pass", "secret"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.Port != 5000 {
		t.Errorf("Expected default port 5000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("Expected default type sqlite, got %q", cfg.DatabaseType)
	}
	if cfg.DatabaseURL != "polls.db" {
		t.Errorf("Expected default URL polls.db, got %q", cfg.DatabaseURL)
	}
}

func TestParseFlagsExplicit(t *testing.T) {
	clearEnv(t)

	cfg, err := ParseFlags([]string{
		"-p", "8080",
		"-t", "postgres",
		"-d", "postgres://localhost/polls",
		"-admin-user", "admin",
		"-admin-pass", "secret",
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.Port != 8080 {
		t.Errorf("Expected port 8080, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "postgres" {
		t.Errorf("Expected type postgres, got %q", cfg.DatabaseType)
	}
	if cfg.DatabaseURL != "postgres://localhost/polls" {
		t.Errorf("Expected explicit URL, got %q", cfg.DatabaseURL)
	}
}

func TestParseFlagsEnvFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_TYPE", "sqlite")
	t.Setenv("DATABASE_URL", "kiosk.db")
	t.Setenv("ADMIN_USERNAME", "admin")
	t.Setenv("ADMIN_PASSWORD", "secret")

	cfg, err := ParseFlags(nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.Port != 9000 {
		t.Errorf("Expected port 9000 from env, got %d", cfg.Port)
	}
	if cfg.DatabaseURL != "kiosk.db" {
		t.Errorf("Expected URL kiosk.db from env, got %q", cfg.DatabaseURL)
	}
	if cfg.AdminUsername != "admin" || cfg.AdminPassword != "secret" {
		t.Errorf("Expected credentials from env, got %q/%q", cfg.AdminUsername, cfg.AdminPassword)
	}
}

func TestParseFlagsErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{
			name: "missing admin username",
			args: []string{"-admin-pass", "secret"},
		},
		{
			name: "missing admin password",
			args: []string{"-admin-user", "admin"},
		},
		{
			name: "invalid database type",
			args: []string{"-t", "mysql", "-admin-user", "admin", "-admin-pass", "secret"},
		},
		{
			name: "postgres without URL",
			args: []string{"-t", "postgres", "-admin-user", "admin", "-admin-pass", "secret"},
		},
		{
			name: "invalid PORT env",
			args: []string{"-admin-user", "admin", "-admin-pass", "secret"},
			env:  map[string]string{"PORT": "not-a-number"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			if _, err := ParseFlags(tt.args); err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}
}
