package response

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"gopkg.in/yaml.v3"
)

// DefaultContent is the body of a response built without explicit content.
const DefaultContent = "some-string-content"

// Content types set by the content setters.
const (
	ContentTypeText     = "text/plain; charset=utf-8"
	ContentTypeJSON     = "application/json; charset=utf-8"
	ContentTypeProtobuf = "application/x-protobuf"
	ContentTypeYAML     = "application/yaml"
)

// Builder configures an *http.Response fixture.
type Builder struct {
	statusCode int
	header     http.Header
	body       []byte
	err        error
}

// New returns a Builder with a zero status code and DefaultContent as body.
func New() *Builder {
	return &Builder{
		header: http.Header{"Content-Type": []string{ContentTypeText}},
		body:   []byte(DefaultContent),
	}
}

// WithStatusCode sets the response status code.
func (b *Builder) WithStatusCode(code int) *Builder {
	b.statusCode = code
	return b
}

// WithHeader adds a header value. Content setters replace Content-Type.
func (b *Builder) WithHeader(key, value string) *Builder {
	b.header.Add(key, value)
	return b
}

// WithStringContent sets a raw body with the given content type.
func (b *Builder) WithStringContent(content, contentType string) *Builder {
	return b.setBody([]byte(content), contentType)
}

// WithJSONContent sets the body to v encoded as JSON.
func (b *Builder) WithJSONContent(v any) *Builder {
	data, err := json.Marshal(v)
	if err != nil {
		return b.fail(fmt.Errorf("failed to encode JSON content: %w", err))
	}
	return b.setBody(data, ContentTypeJSON)
}

// WithProtoJSONContent sets the body to m encoded with the protobuf JSON mapping.
func (b *Builder) WithProtoJSONContent(m proto.Message) *Builder {
	data, err := protojson.Marshal(m)
	if err != nil {
		return b.fail(fmt.Errorf("failed to encode protobuf JSON content: %w", err))
	}
	return b.setBody(data, ContentTypeJSON)
}

// WithProtoContent sets the body to m in the protobuf binary wire format.
func (b *Builder) WithProtoContent(m proto.Message) *Builder {
	data, err := proto.Marshal(m)
	if err != nil {
		return b.fail(fmt.Errorf("failed to encode protobuf content: %w", err))
	}
	return b.setBody(data, ContentTypeProtobuf)
}

// WithYAMLContent sets the body to v encoded as YAML.
func (b *Builder) WithYAMLContent(v any) *Builder {
	data, err := yaml.Marshal(v)
	if err != nil {
		return b.fail(fmt.Errorf("failed to encode YAML content: %w", err))
	}
	return b.setBody(data, ContentTypeYAML)
}

func (b *Builder) setBody(data []byte, contentType string) *Builder {
	b.body = data
	b.header.Set("Content-Type", contentType)
	return b
}

// fail keeps the first encoding error.
func (b *Builder) fail(err error) *Builder {
	if b.err == nil {
		b.err = err
	}
	return b
}

// Build returns a new response, or the first encoding error. Every call returns
// an independent response with its own body reader and header copy.
func (b *Builder) Build() (*http.Response, error) {
	if b.err != nil {
		return nil, b.err
	}

	status := ""
	if b.statusCode != 0 {
		status = strings.TrimSpace(fmt.Sprintf("%d %s", b.statusCode, http.StatusText(b.statusCode)))
	}

	body := bytes.Clone(b.body)
	return &http.Response{
		Status:        status,
		StatusCode:    b.statusCode,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        b.header.Clone(),
		Body:          io.NopCloser(bytes.NewReader(body)),
		ContentLength: int64(len(body)),
	}, nil
}

// MustBuild is like Build but panics on an encoding error.
func (b *Builder) MustBuild() *http.Response {
	resp, err := b.Build()
	if err != nil {
		panic(err)
	}
	return resp
}
