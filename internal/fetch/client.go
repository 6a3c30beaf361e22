package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sirupsen/logrus"
)

const (
	DefaultBaseURL   = "https://fantasy.premierleague.com/api"
	DefaultTimeout   = 20 * time.Second
	DefaultRetries   = 1
	DefaultRetryWait = 500 * time.Millisecond

	maxErrorBody = 4 << 10
)

type Client struct {
	HTTP      *http.Client
	BaseURL   string
	UserAgent string
	Retries   int
	RetryWait time.Duration
	Log       *logrus.Entry
}

func NewClient() *Client {
	return &Client{
		HTTP:      &http.Client{Timeout: DefaultTimeout},
		BaseURL:   DefaultBaseURL,
		UserAgent: "fpl-recommend/1.0",
		Retries:   DefaultRetries,
		RetryWait: DefaultRetryWait,
		Log:       logrus.NewEntry(logrus.StandardLogger()),
	}
}

// FetchRaw GETs urlPath (like "/fixtures/") and returns the body.
// Transport failures and non-2xx responses are retried up to c.Retries times.
func (c *Client) FetchRaw(ctx context.Context, urlPath string) ([]byte, error) {
	var body []byte
	attempt := 0

	op := func() error {
		attempt++
		b, err := c.get(ctx, urlPath)
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(err)
			}
			return err
		}
		body = b
		return nil
	}

	notify := func(err error, wait time.Duration) {
		c.logger().WithFields(logrus.Fields{
			"path":    urlPath,
			"attempt": attempt,
			"wait":    wait,
		}).WithError(err).Warn("fetch retry")
	}

	if err := backoff.RetryNotify(op, c.policy(ctx), notify); err != nil {
		return nil, err
	}
	return body, nil
}

func (c *Client) get(ctx context.Context, urlPath string) ([]byte, error) {
	url := c.BaseURL + urlPath

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &NetworkError{URL: url, Err: err}
	}
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, &NetworkError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &NetworkError{URL: url, StatusCode: resp.StatusCode, Body: string(b)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{URL: url, Err: fmt.Errorf("read body: %w", err)}
	}

	c.logger().WithFields(logrus.Fields{
		"path":     urlPath,
		"status":   resp.StatusCode,
		"bytes":    len(body),
		"duration": time.Since(start).Round(time.Millisecond),
	}).Debug("fetched")
	return body, nil
}

func (c *Client) policy(ctx context.Context) backoff.BackOff {
	exp := backoff.NewExponentialBackOff()
	if c.RetryWait > 0 {
		exp.InitialInterval = c.RetryWait
	}
	exp.MaxElapsedTime = 0

	retries := c.Retries
	if retries < 0 {
		retries = 0
	}
	return backoff.WithContext(backoff.WithMaxRetries(exp, uint64(retries)), ctx)
}

func (c *Client) logger() *logrus.Entry {
	if c.Log == nil {
		return logrus.NewEntry(logrus.StandardLogger())
	}
	return c.Log
}
