package response

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
	sdkproto "github.com/tarmac-project/protobuf-go/sdk"
	proto "github.com/tarmac-project/protobuf-go/sdk/http"
	"google.golang.org/protobuf/encoding/protojson"
	pb "google.golang.org/protobuf/proto"
	"gopkg.in/yaml.v3"
)

type order struct {
	ID    int    `json:"id" yaml:"id"`
	Item  string `json:"item" yaml:"item"`
	Count int    `json:"count" yaml:"count"`
}

var errEncode = errors.New("cannot encode")

type failingYAML struct{}

func (failingYAML) MarshalYAML() (any, error) { return nil, errEncode }

func readBody(t *testing.T, resp *http.Response) []byte {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}
	return body
}

func TestBuildDefaults(t *testing.T) {
	resp, err := New().Build()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if resp.StatusCode != 0 {
		t.Errorf("Expected unset status code, got %d", resp.StatusCode)
	}
	if resp.Status != "" {
		t.Errorf("Expected empty status, got %q", resp.Status)
	}
	if got := string(readBody(t, resp)); got != DefaultContent {
		t.Errorf("Expected body %q, got %q", DefaultContent, got)
	}
	if got := resp.Header.Get("Content-Type"); got != ContentTypeText {
		t.Errorf("Expected Content-Type %s, got %s", ContentTypeText, got)
	}
	if resp.ContentLength != int64(len(DefaultContent)) {
		t.Errorf("Expected ContentLength %d, got %d", len(DefaultContent), resp.ContentLength)
	}
}

func TestWithStatusCode(t *testing.T) {
	tt := []struct {
		code       int
		wantStatus string
	}{
		{http.StatusOK, "200 OK"},
		{http.StatusNotFound, "404 Not Found"},
		{599, "599"},
	}

	for _, tc := range tt {
		t.Run(tc.wantStatus, func(t *testing.T) {
			resp := New().WithStatusCode(tc.code).MustBuild()
			if resp.StatusCode != tc.code {
				t.Errorf("Expected status code %d, got %d", tc.code, resp.StatusCode)
			}
			if resp.Status != tc.wantStatus {
				t.Errorf("Expected status %q, got %q", tc.wantStatus, resp.Status)
			}
		})
	}
}

func TestWithJSONContent(t *testing.T) {
	want := order{ID: 7, Item: "widget", Count: 3}

	resp, err := New().WithStatusCode(http.StatusCreated).WithJSONContent(want).Build()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if got := resp.Header.Get("Content-Type"); got != ContentTypeJSON {
		t.Errorf("Expected Content-Type %s, got %s", ContentTypeJSON, got)
	}

	var got order
	if err := json.Unmarshal(readBody(t, resp), &got); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("body mismatch (-want +got):\n%s", diff)
	}

	t.Run("encoding error is returned by Build", func(t *testing.T) {
		_, err := New().WithJSONContent(make(chan int)).Build()
		if err == nil {
			t.Fatal("Expected error, got nil")
		}
	})
}

func TestWithYAMLContent(t *testing.T) {
	want := order{ID: 1, Item: "bolt", Count: 10}

	resp := New().WithYAMLContent(want).MustBuild()
	if got := resp.Header.Get("Content-Type"); got != ContentTypeYAML {
		t.Errorf("Expected Content-Type %s, got %s", ContentTypeYAML, got)
	}

	var got order
	if err := yaml.Unmarshal(readBody(t, resp), &got); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("body mismatch (-want +got):\n%s", diff)
	}

	t.Run("encoding error is returned by Build", func(t *testing.T) {
		_, err := New().WithYAMLContent(failingYAML{}).Build()
		if !errors.Is(err, errEncode) {
			t.Fatalf("Expected %v, got %v", errEncode, err)
		}
	})
}

func TestWithProtoContent(t *testing.T) {
	msg := &proto.HTTPClientResponse{
		Status: &sdkproto.Status{Status: "OK", Code: 200},
	}

	t.Run("binary", func(t *testing.T) {
		resp := New().WithProtoContent(msg).MustBuild()
		if got := resp.Header.Get("Content-Type"); got != ContentTypeProtobuf {
			t.Errorf("Expected Content-Type %s, got %s", ContentTypeProtobuf, got)
		}

		var got proto.HTTPClientResponse
		if err := pb.Unmarshal(readBody(t, resp), &got); err != nil {
			t.Fatalf("Failed to unmarshal body: %v", err)
		}
		if !pb.Equal(msg, &got) {
			t.Errorf("Expected %v, got %v", msg, &got)
		}
	})

	t.Run("json", func(t *testing.T) {
		resp := New().WithProtoJSONContent(msg).MustBuild()
		if got := resp.Header.Get("Content-Type"); got != ContentTypeJSON {
			t.Errorf("Expected Content-Type %s, got %s", ContentTypeJSON, got)
		}

		var got proto.HTTPClientResponse
		if err := protojson.Unmarshal(readBody(t, resp), &got); err != nil {
			t.Fatalf("Failed to unmarshal body: %v", err)
		}
		if got.GetStatus().GetStatus() != "OK" {
			t.Errorf("Expected status OK, got %q", got.GetStatus().GetStatus())
		}
	})
}

func TestWithHeaderAndStringContent(t *testing.T) {
	resp := New().
		WithHeader("X-Request-Id", "abc").
		WithHeader("X-Request-Id", "def").
		WithStringContent("<ok/>", "application/xml").
		MustBuild()

	if diff := cmp.Diff([]string{"abc", "def"}, resp.Header.Values("X-Request-Id")); diff != "" {
		t.Errorf("header mismatch (-want +got):\n%s", diff)
	}
	if got := resp.Header.Get("Content-Type"); got != "application/xml" {
		t.Errorf("Expected Content-Type application/xml, got %s", got)
	}
	if got := string(readBody(t, resp)); got != "<ok/>" {
		t.Errorf("Expected body <ok/>, got %q", got)
	}
}

func TestBuildIsIndependent(t *testing.T) {
	b := New().WithStringContent("payload", ContentTypeText)

	first := b.MustBuild()
	second := b.MustBuild()

	if first == second {
		t.Fatal("Expected distinct responses")
	}

	_ = readBody(t, first)
	if got := string(readBody(t, second)); got != "payload" {
		t.Errorf("Expected second body to be unread, got %q", got)
	}

	first.Header.Set("X-Changed", "yes")
	if b.MustBuild().Header.Get("X-Changed") != "" {
		t.Error("Expected builder headers to be unaffected by response changes")
	}
}

func TestMustBuildPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Expected MustBuild to panic")
		}
	}()
	New().WithJSONContent(make(chan int)).MustBuild()
}
