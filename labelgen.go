// Package labelgen turns a compact asset selection string into a printable
// HTML sheet of Homebox asset labels.
//
// Basic usage:
//
//	client, err := labelgen.New(
//	    labelgen.WithConfig(cfg.Apply(config.WithServerURL("https://box.example.com"))),
//	)
//	if err != nil {
//	    return err
//	}
//
//	var out bytes.Buffer
//	result, err := client.Generate(ctx, labelgen.GenerateParams{
//	    Assets:   "012-000--012-010,013-005",
//	    Username: "me",
//	    Password: "secret",
//	    Output:   &out,
//	})
//
// The selection notation, its validation, and its expansion live in
// domain/assetlist and can be used on their own.
package labelgen

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/homeboxlabs/labelgen/domain/assetlist"
	"github.com/homeboxlabs/labelgen/domain/sheet"
	"github.com/homeboxlabs/labelgen/infrastructure/homebox"
	"github.com/homeboxlabs/labelgen/infrastructure/render"
	"github.com/homeboxlabs/labelgen/internal/config"
	"github.com/homeboxlabs/labelgen/internal/log"
)

// Client generates label sheets against one Homebox server.
type Client struct {
	cfg      config.AppConfig
	logger   *log.Logger
	homebox  *homebox.Client
	renderer *render.Renderer
	geometry sheet.Geometry
}

// New creates a Client. A Homebox server URL must be supplied, either via
// the configuration or by injecting a ready client with WithHomebox.
func New(opts ...Option) (*Client, error) {
	c := &Client{
		cfg:      config.NewAppConfig(),
		geometry: sheet.NewGeometry(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.logger == nil {
		c.logger = log.NewLogger(c.cfg)
	}
	if c.homebox == nil {
		if c.cfg.ServerURL() == "" {
			return nil, fmt.Errorf("labelgen.New: no Homebox server URL configured")
		}
		c.homebox = homebox.NewClient(c.cfg.ServerURL(),
			homebox.WithTimeout(c.cfg.HTTPTimeout()),
			homebox.WithMaxRetries(c.cfg.MaxRetries()),
			homebox.WithInitialDelay(c.cfg.InitialDelay()),
			homebox.WithBackoffFactor(c.cfg.BackoffFactor()),
		)
	}
	if err := c.geometry.Validate(); err != nil {
		return nil, fmt.Errorf("labelgen.New: %w", err)
	}

	renderer, err := render.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("labelgen.New: %w", err)
	}
	c.renderer = renderer

	return c, nil
}

// GenerateParams are the inputs for one sheet generation.
type GenerateParams struct {
	// Assets is the selection string, e.g. "012-000--012-010,013-005".
	Assets string

	// Username and Password override the configured credentials when set.
	Username string
	Password string

	// Output receives the rendered HTML document.
	Output io.Writer
}

// GenerateResult reports what one generation produced.
type GenerateResult struct {
	labelCount int
	pageCount  int
}

// LabelCount returns how many labels were fetched and placed.
func (r GenerateResult) LabelCount() int { return r.labelCount }

// PageCount returns how many pages the sheet document holds.
func (r GenerateResult) PageCount() int { return r.pageCount }

// Generate parses and validates the asset selection, authenticates, fetches
// every label in selection order, and renders the sheet document to
// params.Output. The whole operation fails on the first syntax, validation,
// or API error; nothing partial is written.
func (c *Client) Generate(ctx context.Context, params GenerateParams) (GenerateResult, error) {
	list, err := assetlist.Parse(params.Assets)
	if err != nil {
		return GenerateResult{}, fmt.Errorf("parse asset selection: %w", err)
	}
	if err := list.Validate(); err != nil {
		return GenerateResult{}, fmt.Errorf("validate asset selection: %w", err)
	}
	ids := list.Expand()
	c.logger.Debug("asset selection expanded", "entries", len(list), "assets", len(ids))

	username := params.Username
	if username == "" {
		username = c.cfg.Username()
	}
	password := params.Password
	if password == "" {
		password = c.cfg.Password()
	}

	c.logger.Info("authenticating", "server", c.homebox.BaseURL(), "username", username)
	session, err := c.homebox.Login(ctx, username, password)
	if err != nil {
		return GenerateResult{}, fmt.Errorf("authenticate: %w", err)
	}

	labels, err := c.fetchLabels(ctx, session, ids)
	if err != nil {
		return GenerateResult{}, err
	}

	pages := c.geometry.PageCount(len(labels))
	c.logger.Info("rendering sheet", "labels", len(labels), "pages", pages)
	if err := c.renderer.Render(params.Output, c.geometry, labels); err != nil {
		return GenerateResult{}, fmt.Errorf("render sheet: %w", err)
	}

	return GenerateResult{labelCount: len(labels), pageCount: pages}, nil
}

// fetchLabels retrieves every label image, at most WorkerCount requests in
// flight. Results are placed by index, so output order always matches
// selection order regardless of completion order.
func (c *Client) fetchLabels(ctx context.Context, session homebox.Session, ids []assetlist.AssetID) ([][]byte, error) {
	workers := c.cfg.WorkerCount()
	if workers < 1 {
		workers = 1
	}

	labels := make([][]byte, len(ids))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, id := range ids {
		g.Go(func() error {
			c.logger.Info("fetching label", "asset", id.String())
			label, err := c.homebox.AssetLabel(ctx, session, id)
			if err != nil {
				return fmt.Errorf("fetch label %s: %w", id, err)
			}
			labels[i] = label
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return labels, nil
}
