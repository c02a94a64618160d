package docgen

import (
	"time"

	"github.com/edutrack/docgen/doc"
)

// Option is a functional option for configuring a Generator via New.
type Option func(*generatorConfig)

type generatorConfig struct {
	geometry  doc.Geometry
	now       func() time.Time
	watermark string
}

// WithGeometry sets the portrait page geometry used for every document. The
// geometry is validated by New; landscape documents swap width and height
// themselves.
func WithGeometry(g doc.Geometry) Option {
	return func(c *generatorConfig) {
		c.geometry = g
	}
}

// WithClock sets the clock used for "fait le" dates when the request data
// supplies none. Mainly for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(c *generatorConfig) {
		c.now = now
	}
}

// WithWatermark stamps the given text in light gray under every page's
// content, e.g. "DUPLICATA" for reissued documents.
func WithWatermark(text string) Option {
	return func(c *generatorConfig) {
		c.watermark = text
	}
}
