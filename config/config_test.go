package config

import (
	"strings"
	"testing"
	"time"
)

const validYAML = `
syrve:
  url: "https://resto.example.com:443"
  login: "admin"
  password_sha1: "d033e22ae348aeb5660fc2140aec35850c4da997"
`

func TestValidateYAMLContentValid(t *testing.T) {
	t.Parallel()

	cfg, err := ValidateYAMLContent([]byte(validYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Syrve.URL != "https://resto.example.com:443" {
		t.Fatalf("unexpected url: %q", cfg.Syrve.URL)
	}
	if cfg.Syrve.Login != "admin" {
		t.Fatalf("unexpected login: %q", cfg.Syrve.Login)
	}
	if cfg.Syrve.TimeoutSeconds != 10 {
		t.Fatalf("expected default timeout of 10 seconds, got %d", cfg.Syrve.TimeoutSeconds)
	}
	if cfg.Syrve.Timeout() != 10*time.Second {
		t.Fatalf("unexpected timeout duration: %v", cfg.Syrve.Timeout())
	}
}

func TestValidateYAMLContentRejectsInvalidConfigs(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		yaml string
	}{
		{"missing url", "syrve:\n  login: admin\n  password_sha1: abc\n"},
		{"invalid url", "syrve:\n  url: resto.example.com\n  login: admin\n  password_sha1: abc\n"},
		{"missing login", "syrve:\n  url: https://resto.example.com\n  password_sha1: abc\n"},
		{"missing credentials", "syrve:\n  url: https://resto.example.com\n  login: admin\n"},
		{"zero timeout", "syrve:\n  url: https://resto.example.com\n  login: admin\n  password_sha1: abc\n  timeout_seconds: 0\n"},
	}
	for _, tc := range cases {
		if _, err := ValidateYAMLContent([]byte(tc.yaml)); err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
	}
}

func TestEffectivePasswordSHA1HashesPlainPassword(t *testing.T) {
	t.Parallel()

	syrve := SyrveConfig{Password: "admin"}
	if got := syrve.EffectivePasswordSHA1(); got != "d033e22ae348aeb5660fc2140aec35850c4da997" {
		t.Fatalf("unexpected hash for plain password: %q", got)
	}
}

func TestEffectivePasswordSHA1PrefersExplicitHash(t *testing.T) {
	t.Parallel()

	syrve := SyrveConfig{
		Password:     "ignored",
		PasswordSHA1: " precomputed-hash ",
	}
	if got := syrve.EffectivePasswordSHA1(); got != "precomputed-hash" {
		t.Fatalf("expected explicit hash to win, got %q", got)
	}
}

func TestExampleYAMLIsValidTemplateShape(t *testing.T) {
	t.Parallel()

	example := ExampleYAML()
	for _, key := range []string{"syrve:", "url:", "login:", "password_sha1:", "find:"} {
		if !strings.Contains(example, key) {
			t.Fatalf("expected example template to contain %q:\n%s", key, example)
		}
	}

	// The shipped template has empty credentials on purpose; with any
	// credential filled in it must validate.
	filled := strings.Replace(example, `password: ""`, `password: "secret"`, 1)
	if _, err := ValidateYAMLContent([]byte(filled)); err != nil {
		t.Fatalf("filled-in template must validate, got %v", err)
	}
}
