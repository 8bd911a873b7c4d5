package config

import (
	"bytes"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	KeySyrveURL            = "syrve.url"
	KeySyrveLogin          = "syrve.login"
	KeySyrvePassword       = "syrve.password"
	KeySyrvePasswordSHA1   = "syrve.password_sha1"
	KeySyrveTimeoutSeconds = "syrve.timeout_seconds"
	KeyFindDefaultName     = "find.default_name"
)

const defaultTimeoutSeconds = 10

type Config struct {
	Syrve SyrveConfig `mapstructure:"syrve" validate:"required"`
	Find  FindConfig  `mapstructure:"find"`
}

type SyrveConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`

	Login string `mapstructure:"login" validate:"required"`

	// Password is the plain back-office password, hashed at use. Ignored
	// when PasswordSHA1 is set.
	Password string `mapstructure:"password"`

	// PasswordSHA1 is the pre-computed SHA-1 hex digest the API expects in
	// the auth "pass" field.
	PasswordSHA1 string `mapstructure:"password_sha1"`

	TimeoutSeconds int `mapstructure:"timeout_seconds" validate:"gte=1"`
}

type FindConfig struct {
	// DefaultName is the supplier looked up when "find" gets no argument.
	DefaultName string `mapstructure:"default_name"`
}

// EffectivePasswordSHA1 returns the hash submitted to the auth endpoint.
func (c SyrveConfig) EffectivePasswordSHA1() string {
	if hash := strings.TrimSpace(c.PasswordSHA1); hash != "" {
		return hash
	}
	sum := sha1.Sum([]byte(c.Password))
	return hex.EncodeToString(sum[:])
}

func (c SyrveConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// SetDefaults sets default values if not provided
func SetDefaults() {
	setDefaults(viper.GetViper())
}

// LoadAndValidate loads config from Viper and validates it
func LoadAndValidate() (*Config, error) {
	return loadAndValidateFromViper(viper.GetViper())
}

// ValidateYAMLContent validates configuration from raw YAML content.
func ValidateYAMLContent(content []byte) (*Config, error) {
	local := viper.New()
	setDefaults(local)
	local.SetConfigType("yaml")
	if err := local.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("read config content: %w", err)
	}
	return loadAndValidateFromViper(local)
}

// ExampleYAML returns the default configuration template.
func ExampleYAML() string {
	return `# syrvectl configuration
syrve:
  # Back-office API base URL, e.g. https://myrestaurant.syrve.online:443
  url: "https://localhost:443"
  login: "admin"
  # Provide either the plain password or its SHA-1 hex digest.
  # password_sha1 wins when both are set.
  password: ""
  password_sha1: ""
  timeout_seconds: 10

find:
  # Supplier name looked up by "find" when no argument is given.
  default_name: ""
`
}

func loadAndValidateFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := validateCredentials(cfg.Syrve); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeySyrveTimeoutSeconds, defaultTimeoutSeconds)
	v.SetDefault(KeyFindDefaultName, "")
}

func validateCredentials(syrve SyrveConfig) error {
	if strings.TrimSpace(syrve.Password) == "" && strings.TrimSpace(syrve.PasswordSHA1) == "" {
		return errors.New("validation failed: one of syrve.password or syrve.password_sha1 is required")
	}
	return nil
}
