package httpfake

import (
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// DefaultBaseURL is prepended to registered paths when no base URL is configured.
const DefaultBaseURL = "http://test.com/"

// BuilderConfig controls construction of a Builder.
type BuilderConfig struct {
	// BaseURL is prepended verbatim to every registered path. Defaults to
	// DefaultBaseURL.
	BaseURL string

	// Validator is passed through to the built Transport.
	Validator func(Call) error

	// Logger is passed through to the built Transport.
	Logger *zap.Logger
}

// Builder registers answers relative to a base URL and builds a Transport.
type Builder struct {
	cfg       BuilderConfig
	responses map[string]*http.Response
	failures  map[string]error

	// err holds the first registration error from the fluent API.
	err error
}

// NewBuilder creates a Builder with no registered answers.
func NewBuilder(cfg BuilderConfig) *Builder {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	return &Builder{
		cfg:       cfg,
		responses: make(map[string]*http.Response),
		failures:  make(map[string]error),
	}
}

// BaseURL returns the base URL registered paths are appended to.
func (b *Builder) BaseURL() string { return b.cfg.BaseURL }

// Register answers requests for method and BaseURL+path with resp.
func (b *Builder) Register(method, path string, resp *http.Response) error {
	if resp == nil {
		return ErrNilResponse
	}

	key, err := b.key(method, path)
	if err != nil {
		return err
	}

	b.responses[key] = resp
	return nil
}

// RegisterError answers requests for method and BaseURL+path with a transport
// error instead of a response.
func (b *Builder) RegisterError(method, path string, failure error) error {
	if failure == nil {
		return fmt.Errorf("%w: failure for %s cannot be nil", ErrNilResponse, path)
	}

	key, err := b.key(method, path)
	if err != nil {
		return err
	}

	b.failures[key] = failure
	return nil
}

// key validates path and returns the lookup key for a new registration.
func (b *Builder) key(method, path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", ErrEmptyURL
	}

	key := Key(method, b.cfg.BaseURL+path)
	if _, ok := b.responses[key]; ok {
		return "", fmt.Errorf("%w: %s", ErrDuplicateResponse, key)
	}
	if _, ok := b.failures[key]; ok {
		return "", fmt.Errorf("%w: %s", ErrDuplicateResponse, key)
	}
	return key, nil
}

// On starts configuration of an answer for method and BaseURL+path.
func (b *Builder) On(method, path string) *Route {
	return &Route{builder: b, method: method, path: path}
}

// Build creates the Transport. It returns the first error recorded by On, or
// ErrNoResponses when nothing was registered.
func (b *Builder) Build() (*Transport, error) {
	if b.err != nil {
		return nil, b.err
	}

	return New(Config{
		Responses: b.responses,
		Failures:  b.failures,
		Validator: b.cfg.Validator,
		Logger:    b.cfg.Logger,
	})
}

// keep records the first registration error.
func (b *Builder) keep(err error) *Builder {
	if err != nil && b.err == nil {
		b.err = err
	}
	return b
}

// Route configures the answer for a single method and path.
type Route struct {
	builder *Builder
	method  string
	path    string
}

// Return sets the response for the route.
func (r *Route) Return(resp *http.Response) *Builder {
	return r.builder.keep(r.builder.Register(r.method, r.path, resp))
}

// ReturnError sets a transport error for the route.
func (r *Route) ReturnError(err error) *Builder {
	return r.builder.keep(r.builder.RegisterError(r.method, r.path, err))
}
