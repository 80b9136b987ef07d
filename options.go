package labelgen

import (
	"github.com/homeboxlabs/labelgen/domain/sheet"
	"github.com/homeboxlabs/labelgen/infrastructure/homebox"
	"github.com/homeboxlabs/labelgen/internal/config"
	"github.com/homeboxlabs/labelgen/internal/log"
)

// Option configures a Client.
type Option func(*Client)

// WithConfig sets the application configuration.
func WithConfig(cfg config.AppConfig) Option {
	return func(c *Client) { c.cfg = cfg }
}

// WithLogger sets the logger. Defaults to a logger built from the
// configuration, writing to stderr.
func WithLogger(logger *log.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithHomebox injects a ready Homebox API client, bypassing the one built
// from the configuration.
func WithHomebox(hb *homebox.Client) Option {
	return func(c *Client) { c.homebox = hb }
}

// WithGeometry sets the sheet layout. Defaults to sheet.NewGeometry().
func WithGeometry(g sheet.Geometry) Option {
	return func(c *Client) { c.geometry = g }
}
