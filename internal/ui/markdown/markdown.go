// Package markdown provides styled markdown rendering for the TUI.
package markdown

import (
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/wordwrap"
	gocache "github.com/patrickmn/go-cache"
)

// noMarginStyle is a JSON style that removes document margins.
// It inherits from auto (dark/light detection) but overrides margin to 0.
const noMarginStyle = `{
	"document": {
		"margin": 0,
		"block_prefix": "",
		"block_suffix": ""
	}
}`

// Rendering is width-dependent and not free, and help overlays re-render on
// every resize; cache rendered output per (width, content).
const (
	cacheTTL     = 5 * time.Minute
	cacheCleanup = 10 * time.Minute
)

// Renderer wraps glamour with curios-specific configuration.
type Renderer struct {
	renderer *glamour.TermRenderer
	width    int
	rendered *gocache.Cache
}

// New creates a markdown renderer with the given width.
func New(width int) (*Renderer, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithStylesFromJSONBytes([]byte(noMarginStyle)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	return &Renderer{
		renderer: r,
		width:    width,
		rendered: gocache.New(cacheTTL, cacheCleanup),
	}, nil
}

// Width returns the configured word wrap width.
func (r *Renderer) Width() int {
	return r.width
}

// Render transforms markdown to styled terminal output.
func (r *Renderer) Render(markdown string) (string, error) {
	key := fmt.Sprintf("%d:%x", r.width, sha256.Sum256([]byte(markdown)))
	if cached, ok := r.rendered.Get(key); ok {
		return cached.(string), nil
	}

	out, err := r.renderer.Render(markdown)
	if err != nil {
		return "", err
	}
	r.rendered.Set(key, out, gocache.DefaultExpiration)
	return out, nil
}

// Plain wraps text to width without markdown styling. Callers fall back to it
// when styled rendering is unavailable.
func Plain(text string, width int) string {
	return wordwrap.String(text, width)
}
