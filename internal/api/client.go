package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"resty.dev/v3"
)

// DefaultMaxRetryAttempts bounds how often a failed request is retried.
const DefaultMaxRetryAttempts = 3

// Client calls a dinkwell-server instance. It is the cross-device
// collaborator: a phone or second machine logging sessions against the same
// account goes through this surface.
type Client struct {
	httpClient       *resty.Client
	maxRetryAttempts uint
}

// NewClient creates a Client for the server at baseURL. The token is sent as
// a bearer credential when non-empty.
func NewClient(baseURL, token string, retryAttempts uint) *Client {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetHeader("Content-Type", "application/json")
	if token != "" {
		client.SetHeader("Authorization", "Bearer "+token)
	}

	return &Client{
		httpClient:       client,
		maxRetryAttempts: retryAttempts,
	}
}

// Close releases the underlying HTTP client.
func (client *Client) Close() error {
	return client.httpClient.Close()
}

// Streak fetches the user's computed streaks.
func (client *Client) Streak(ctx context.Context, userID string) (StreakResponse, error) {
	var result StreakResponse
	err := client.do(ctx, func() (*resty.Response, error) {
		return client.httpClient.R().
			SetContext(ctx).
			SetQueryParam("user_id", userID).
			SetResult(&result).
			Get("/api/streak")
	})
	return result, err
}

// Skills fetches the user's per-skill totals and levels.
func (client *Client) Skills(ctx context.Context, userID string) (SkillsResponse, error) {
	var result SkillsResponse
	err := client.do(ctx, func() (*resty.Response, error) {
		return client.httpClient.R().
			SetContext(ctx).
			SetQueryParam("user_id", userID).
			SetResult(&result).
			Get("/api/skills")
	})
	return result, err
}

// LogSession submits a practice session with its skill entries.
func (client *Client) LogSession(ctx context.Context, req LogSessionRequest) (LogSessionResponse, error) {
	var result LogSessionResponse
	err := client.do(ctx, func() (*resty.Response, error) {
		return client.httpClient.R().
			SetContext(ctx).
			SetBody(req).
			SetResult(&result).
			Post("/api/sessions")
	})
	return result, err
}

// Progress fetches the user's curriculum progress and level states.
func (client *Client) Progress(ctx context.Context, userID string) (ProgressResponse, error) {
	var result ProgressResponse
	err := client.do(ctx, func() (*resty.Response, error) {
		return client.httpClient.R().
			SetContext(ctx).
			SetQueryParam("user_id", userID).
			SetResult(&result).
			Get("/api/progress")
	})
	return result, err
}

// CompleteModule marks a curriculum module as completed.
func (client *Client) CompleteModule(ctx context.Context, req CompleteModuleRequest) (CompleteModuleResponse, error) {
	var result CompleteModuleResponse
	err := client.do(ctx, func() (*resty.Response, error) {
		return client.httpClient.R().
			SetContext(ctx).
			SetBody(req).
			SetResult(&result).
			Post("/api/progress/complete")
	})
	return result, err
}

func (client *Client) do(ctx context.Context, send func() (*resty.Response, error)) error {
	return retry.Do(
		func() error {
			response, err := send()
			if err != nil {
				if !isRetryableError(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			if response.IsError() {
				err := responseError(response)
				if !isRetryableStatus(response.StatusCode()) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(client.maxRetryAttempts+1),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
	)
}

func responseError(response *resty.Response) error {
	var body ErrorResponse
	if err := json.Unmarshal([]byte(response.String()), &body); err == nil && body.Error.Message != "" {
		return fmt.Errorf("response error %d (%s): %s",
			response.StatusCode(), body.Error.Kind, body.Error.Message)
	}
	return fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
}

// isRetryableError reports whether a transport error is worth retrying.
func isRetryableError(err error) bool {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return true
	}
	errStr := err.Error()
	return strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "i/o timeout")
}

// isRetryableStatus retries server-side failures and rate limiting only.
func isRetryableStatus(status int) bool {
	return status >= 500 || status == 429
}
