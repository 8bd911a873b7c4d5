package syrve

import "context"

// WithSession authenticates, runs fn with the session token, and guarantees
// exactly one logout on every exit path. A logout failure is logged but never
// replaces the outcome of fn; an authentication failure is returned as is
// (an *AuthError) and fn never runs.
func (c *HTTPClient) WithSession(ctx context.Context, fn func(ctx context.Context, token string) error) error {
	token, err := c.Authenticate(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if logoutErr := c.Logout(ctx, token); logoutErr != nil {
			c.logger.Warn().Err(logoutErr).Msg("session teardown failed")
		}
	}()

	return fn(ctx, token)
}
