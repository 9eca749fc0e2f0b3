package httpfake

import (
	"fmt"
	"io"
	"maps"
	"net/http"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/tarmac-project/testkit"
)

var (
	// ErrNoResponses is returned when a Transport is created without any answers.
	ErrNoResponses = fmt.Errorf("%w: at least one response should be configured", testkit.ErrSetup)

	// ErrEmptyURL is returned when registering a response for a blank URL.
	ErrEmptyURL = fmt.Errorf("%w: url cannot be empty", testkit.ErrSetup)

	// ErrDuplicateResponse is returned when a method and URL already have an answer.
	ErrDuplicateResponse = fmt.Errorf("%w: response already registered", testkit.ErrSetup)

	// ErrNilResponse is returned when registering a nil response or nil failure.
	ErrNilResponse = fmt.Errorf("%w: response cannot be nil", testkit.ErrSetup)

	// ErrResponseNotFound is returned when no answer is registered for a request.
	ErrResponseNotFound = fmt.Errorf("%w: response not found", testkit.ErrLookup)

	// ErrInvalidRequest is returned for requests that cannot be looked up, such
	// as a request without a URL or one whose body cannot be read.
	ErrInvalidRequest = fmt.Errorf("%w: request is invalid", testkit.ErrLookup)

	// ErrRequestRejected wraps errors returned by a Config.Validator.
	ErrRequestRejected = fmt.Errorf("%w: request rejected", testkit.ErrAssertion)
)

// Key returns the lookup key for a method and full URL.
func Key(method, url string) string {
	return method + " " + url
}

// Call captures a single request dispatched through the Transport.
type Call struct {
	// Method is the HTTP method used.
	Method string
	// URL is the full request URL.
	URL string
	// Header holds a copy of the request headers.
	Header http.Header
	// Body contains the request body, if provided.
	Body []byte
	// Request is the request as received.
	Request *http.Request
}

// JSON returns the value at path within a JSON request body.
func (c Call) JSON(path string) gjson.Result {
	return gjson.GetBytes(c.Body, path)
}

// Config controls construction of a Transport.
type Config struct {
	// Responses maps Key(method, url) to the response returned for it.
	Responses map[string]*http.Response

	// Failures maps Key(method, url) to an error returned instead of a response.
	Failures map[string]error

	// Validator, when set, inspects every call before it is answered. A non-nil
	// error is returned to the caller wrapped in ErrRequestRejected.
	Validator func(Call) error

	// Logger receives debug output for each dispatched request. Defaults to a
	// no-op logger.
	Logger *zap.Logger
}

// Transport implements http.RoundTripper with registered answers and call
// recording for tests.
type Transport struct {
	responses map[string]*http.Response
	failures  map[string]error
	validator func(Call) error
	log       *zap.Logger
	calls     []Call
}

// Compile-time check: ensure Transport implements http.RoundTripper.
var _ http.RoundTripper = (*Transport)(nil)

// New creates a Transport. At least one response or failure must be configured.
// The maps are copied, so later changes by the caller have no effect.
func New(cfg Config) (*Transport, error) {
	if len(cfg.Responses)+len(cfg.Failures) == 0 {
		return nil, ErrNoResponses
	}

	for key, resp := range cfg.Responses {
		if resp == nil {
			return nil, fmt.Errorf("%w: %s", ErrNilResponse, key)
		}
		if _, ok := cfg.Failures[key]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateResponse, key)
		}
	}
	for key, err := range cfg.Failures {
		if err == nil {
			return nil, fmt.Errorf("%w: failure for %s", ErrNilResponse, key)
		}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Transport{
		responses: maps.Clone(cfg.Responses),
		failures:  maps.Clone(cfg.Failures),
		validator: cfg.Validator,
		log:       logger,
		calls:     []Call{},
	}, nil
}

// RoundTrip records req and returns the answer registered for its exact method
// and URL. A registered response is returned as the same instance every time,
// with its Request field pointing at the latest request.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: request cannot be nil", ErrInvalidRequest)
	}
	if req.URL == nil {
		closeBody(req)
		return nil, fmt.Errorf("%w: request url cannot be nil", ErrInvalidRequest)
	}

	body, readErr := readBody(req)

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}
	url := req.URL.String()

	call := Call{
		Method:  method,
		URL:     url,
		Header:  req.Header.Clone(),
		Body:    body,
		Request: req,
	}
	t.calls = append(t.calls, call)

	if readErr != nil {
		return nil, fmt.Errorf("%w: %s %s: %w", ErrInvalidRequest, method, url, readErr)
	}

	t.log.Debug("dispatching fake response",
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("body_bytes", len(body)),
	)

	if t.validator != nil {
		if err := t.validator(call); err != nil {
			return nil, fmt.Errorf("%w: %s %s: %w", ErrRequestRejected, method, url, err)
		}
	}

	key := Key(method, url)
	if err, ok := t.failures[key]; ok {
		return nil, err
	}

	resp, ok := t.responses[key]
	if !ok {
		t.log.Debug("no fake response registered", zap.String("key", key))
		return nil, fmt.Errorf("%w: %s %s", ErrResponseNotFound, method, url)
	}

	resp.Request = req
	return resp, nil
}

// Calls returns the recorded calls in dispatch order.
func (t *Transport) Calls() []Call {
	return append([]Call(nil), t.calls...)
}

// CallsFor returns the recorded calls for one method and URL.
func (t *Transport) CallsFor(method, url string) []Call {
	var out []Call
	for _, c := range t.calls {
		if c.Method == method && c.URL == url {
			out = append(out, c)
		}
	}
	return out
}

// Reset discards recorded calls. Registered answers are kept.
func (t *Transport) Reset() { t.calls = []Call{} }

// Client returns an *http.Client that sends through t. Redirect responses are
// returned to the caller rather than followed.
func (t *Transport) Client() *http.Client {
	return &http.Client{
		Transport: t,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

// readBody reads and closes the request body. On failure it returns the bytes
// read so far along with the error.
func readBody(req *http.Request) ([]byte, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}
	defer closeBody(req)

	b, err := io.ReadAll(req.Body)
	if err != nil {
		return b, fmt.Errorf("failed to read request body: %w", err)
	}
	return b, nil
}

func closeBody(req *http.Request) {
	if req.Body != nil {
		req.Body.Close() //nolint:errcheck
	}
}
