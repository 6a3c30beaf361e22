package fetch

import (
	"context"

	jsoniter "github.com/json-iterator/go"

	"fpl-recommend/internal/model"
)

const (
	PathBootstrapStatic = "/bootstrap-static/"
	PathFixtures        = "/fixtures/"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Fetcher is the read side of the FPL API the recommendation pipeline needs.
type Fetcher interface {
	Bootstrap(ctx context.Context) (model.Bootstrap, error)
	Fixtures(ctx context.Context) ([]model.Fixture, error)
}

var _ Fetcher = (*Client)(nil)

// /bootstrap-static/
func (c *Client) Bootstrap(ctx context.Context) (model.Bootstrap, error) {
	var out model.Bootstrap
	if err := c.getJSON(ctx, PathBootstrapStatic, &out); err != nil {
		return model.Bootstrap{}, err
	}
	return out, nil
}

// /fixtures/
func (c *Client) Fixtures(ctx context.Context) ([]model.Fixture, error) {
	var out []model.Fixture
	if err := c.getJSON(ctx, PathFixtures, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) getJSON(ctx context.Context, urlPath string, out any) error {
	raw, err := c.FetchRaw(ctx, urlPath)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &ParseError{URL: c.BaseURL + urlPath, Err: err}
	}
	return nil
}
