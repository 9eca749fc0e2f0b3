package logging_test

import (
	"errors"
	"testing"

	"github.com/tarmac-project/testkit/logging"
	"github.com/tarmac-project/testkit/logmock"
)

func TestNewZap(t *testing.T) {
	t.Parallel()

	tt := []struct {
		name  string
		call  func(logging.Client)
		level logging.Level
	}{
		{"Info", func(c logging.Client) { c.Info("msg") }, logging.Info},
		{"Warn", func(c logging.Client) { c.Warn("msg") }, logging.Warn},
		{"Error", func(c logging.Client) { c.Error("msg") }, logging.Error},
		{"Debug", func(c logging.Client) { c.Debug("msg") }, logging.Debug},
		{"Trace", func(c logging.Client) { c.Trace("msg") }, logging.Trace},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			m := logmock.New(logmock.Config{})
			tc.call(logging.NewZap(m.Zap()))

			if err := m.ReceivedOnlyInOrder(logmock.NewEntry(tc.level, "msg")); err != nil {
				t.Fatalf("unexpected log entries: %v", err)
			}
		})
	}
}

func TestNewZapTraceField(t *testing.T) {
	m := logmock.New(logmock.Config{})
	logging.NewZap(m.Zap()).Trace("deep")

	entries := m.Entries()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Fields[logging.TraceField] != true {
		t.Fatalf("expected %s field, got %v", logging.TraceField, entries[0].Fields)
	}
}

func TestNewZapNilLogger(t *testing.T) {
	c := logging.NewZap(nil)
	c.Info("discarded")
	c.Trace("discarded")
}

func TestNewZapWithMockAsClient(t *testing.T) {
	var c logging.Client = logmock.New(logmock.Config{})
	c.Warn("careful")

	if err := c.(*logmock.Mock).ReceivedOnce(logging.Warn, "careful"); err != nil {
		t.Fatal(err)
	}

}

func TestLevelString(t *testing.T) {
	tt := []struct {
		level logging.Level
		want  string
	}{
		{logging.Trace, "Trace"},
		{logging.Debug, "Debug"},
		{logging.Info, "Info"},
		{logging.Warn, "Warn"},
		{logging.Error, "Error"},
		{logging.Critical, "Critical"},
		{logging.Level(42), "Level(42)"},
	}

	for _, tc := range tt {
		if got := tc.level.String(); got != tc.want {
			t.Errorf("Level(%d).String() = %q, want %q", int(tc.level), got, tc.want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tt := []struct {
		in      string
		want    logging.Level
		wantErr error
	}{
		{in: "trace", want: logging.Trace},
		{in: "Debug", want: logging.Debug},
		{in: "Information", want: logging.Info},
		{in: "info", want: logging.Info},
		{in: "WARNING", want: logging.Warn},
		{in: " error ", want: logging.Error},
		{in: "critical", want: logging.Critical},
		{in: "verbose", wantErr: logging.ErrInvalidLevel},
	}

	for _, tc := range tt {
		t.Run(tc.in, func(t *testing.T) {
			got, err := logging.ParseLevel(tc.in)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("unexpected error: got %v, want %v", err, tc.wantErr)
			}
			if err == nil && got != tc.want {
				t.Fatalf("ParseLevel(%q) = %s, want %s", tc.in, got, tc.want)
			}
		})
	}
}
