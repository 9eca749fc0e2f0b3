package logmock

import (
	"regexp"

	"github.com/stretchr/testify/require"

	"github.com/tarmac-project/testkit/logging"
)

// Require wraps a Mock so that failed assertions stop the test immediately.
type Require struct {
	t    require.TestingT
	h    tHelper
	mock *Mock
}

type tHelper interface {
	Helper()
}

type noHelper struct{}

func (noHelper) Helper() {}

// Require returns assertions bound to t.
func (m *Mock) Require(t require.TestingT) *Require {
	h, ok := t.(tHelper)
	if !ok {
		h = noHelper{}
	}
	return &Require{t: t, h: h, mock: m}
}

func (r *Require) check(err error) {
	r.h.Helper()
	require.NoError(r.t, err)
}

// Received fails the test unless message was logged at level at least once.
func (r *Require) Received(level logging.Level, message string) {
	r.h.Helper()
	r.check(r.mock.Received(level, message))
}

// ReceivedMatch fails the test unless a message matching pattern was logged at level.
func (r *Require) ReceivedMatch(level logging.Level, pattern *regexp.Regexp) {
	r.h.Helper()
	r.check(r.mock.ReceivedMatch(level, pattern))
}

// ReceivedOnce fails the test unless message was logged at level exactly once.
func (r *Require) ReceivedOnce(level logging.Level, message string) {
	r.h.Helper()
	r.check(r.mock.ReceivedOnce(level, message))
}

// ReceivedTimes fails the test unless message was logged at level exactly n times.
func (r *Require) ReceivedTimes(level logging.Level, message string, n int) {
	r.h.Helper()
	r.check(r.mock.ReceivedTimes(level, message, n))
}

// ReceivedEntryTimes fails the test unless entries matching want number exactly n.
func (r *Require) ReceivedEntryTimes(want Entry, n int) {
	r.h.Helper()
	r.check(r.mock.ReceivedEntryTimes(want, n))
}

// NotReceived fails the test if message was logged at level.
func (r *Require) NotReceived(level logging.Level, message string) {
	r.h.Helper()
	r.check(r.mock.NotReceived(level, message))
}

// ReceivedExactly fails the test unless every expectation was logged as many
// times as it is listed.
func (r *Require) ReceivedExactly(entries ...Entry) {
	r.h.Helper()
	r.check(r.mock.ReceivedExactly(entries...))
}

// ReceivedInOrder fails the test unless the recorded entries start with entries.
func (r *Require) ReceivedInOrder(entries ...Entry) {
	r.h.Helper()
	r.check(r.mock.ReceivedInOrder(entries...))
}

// ReceivedOnlyInOrder fails the test unless the recorded entries are exactly entries.
func (r *Require) ReceivedOnlyInOrder(entries ...Entry) {
	r.h.Helper()
	r.check(r.mock.ReceivedOnlyInOrder(entries...))
}
