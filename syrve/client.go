package syrve

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	authPath      = "/resto/api/auth"
	logoutPath    = "/resto/api/logout"
	suppliersPath = "/resto/api/suppliers"

	// DefaultTimeout bounds each API call; the server holds a license slot
	// per session, so hanging forever on a dead host is never acceptable.
	DefaultTimeout = 10 * time.Second

	errorBodyLimit = 4096
)

// Client defines the Syrve back-office API operations this tool uses.
type Client interface {
	Authenticate(ctx context.Context) (string, error)
	FetchSuppliers(ctx context.Context, token string) ([]Supplier, error)
	Logout(ctx context.Context, token string) error
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// AuthError marks an authentication failure. The entry point maps it to a
// non-zero exit; no code below it terminates the process.
type AuthError struct {
	Err error
}

func (e *AuthError) Error() string {
	return "authentication failed: " + e.Err.Error()
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

type ClientConfig struct {
	BaseURL      string
	Login        string
	PasswordSHA1 string
	Timeout      time.Duration
	HTTPClient   httpDoer
	Logger       *zerolog.Logger
}

type HTTPClient struct {
	baseURL      string
	login        string
	passwordSHA1 string
	httpClient   httpDoer
	logger       zerolog.Logger
}

func NewClient(cfg ClientConfig) (*HTTPClient, error) {
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		return nil, errors.New("base URL is required")
	}
	baseURL = strings.TrimRight(baseURL, "/")

	parsedBase, err := url.Parse(baseURL)
	if err != nil || parsedBase.Scheme == "" || parsedBase.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q", cfg.BaseURL)
	}

	login := strings.TrimSpace(cfg.Login)
	if login == "" {
		return nil, errors.New("login is required")
	}
	passwordSHA1 := strings.TrimSpace(cfg.PasswordSHA1)
	if passwordSHA1 == "" {
		return nil, errors.New("password hash is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	doer := cfg.HTTPClient
	if doer == nil {
		doer = &http.Client{Timeout: timeout}
	}

	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	return &HTTPClient{
		baseURL:      baseURL,
		login:        login,
		passwordSHA1: passwordSHA1,
		httpClient:   doer,
		logger:       logger,
	}, nil
}

// Authenticate submits the credentials and returns the session token issued
// by the server. The token occupies a back-office license slot until Logout.
func (c *HTTPClient) Authenticate(ctx context.Context) (string, error) {
	form := url.Values{
		"login": {c.login},
		"pass":  {c.passwordSHA1},
	}
	body, err := c.postForm(ctx, authPath, form)
	if err != nil {
		return "", &AuthError{Err: err}
	}

	token := strings.TrimSpace(string(body))
	if token == "" {
		return "", &AuthError{Err: errors.New("empty session token in auth response")}
	}
	c.logger.Info().Msg("authenticated, session token acquired")
	return token, nil
}

// FetchSuppliers retrieves the supplier directory for the given session and
// normalizes it from whichever encoding the server chose.
func (c *HTTPClient) FetchSuppliers(ctx context.Context, token string) ([]Supplier, error) {
	endpoint := suppliersPath + "?key=" + url.QueryEscape(token)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request GET %s: %w", suppliersPath, err)
	}

	body, err := c.do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch suppliers: %w", err)
	}
	return NormalizeSuppliers(body, &c.logger)
}

// Logout releases the session. Callers treat a failure here as a warning:
// the server reclaims expired sessions on its own eventually.
func (c *HTTPClient) Logout(ctx context.Context, token string) error {
	form := url.Values{"key": {token}}
	if _, err := c.postForm(ctx, logoutPath, form); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	c.logger.Info().Msg("session released")
	return nil
}

func (c *HTTPClient) postForm(ctx context.Context, endpointPath string, form url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpointPath, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("create request POST %s: %w", endpointPath, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req)
}

func (c *HTTPClient) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s %s failed: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return nil, fmt.Errorf(
			"request %s %s failed with status %d: %s",
			req.Method,
			req.URL.Path,
			resp.StatusCode,
			strings.TrimSpace(string(snippet)),
		)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response %s %s: %w", req.Method, req.URL.Path, err)
	}
	return body, nil
}
