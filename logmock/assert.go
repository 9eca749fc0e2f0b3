package logmock

import (
	"fmt"
	"regexp"

	"github.com/tarmac-project/testkit"
	"github.com/tarmac-project/testkit/logging"
)

var (
	// ErrUnexpectedCount is returned when an entry was logged a different number
	// of times than expected.
	ErrUnexpectedCount = fmt.Errorf("%w: unexpected number of calls", testkit.ErrAssertion)

	// ErrUnexpectedEntry is returned when a recorded entry differs from the one
	// expected at its position, or when entries remain after an exact sequence.
	ErrUnexpectedEntry = fmt.Errorf("%w: unexpected log entry", testkit.ErrAssertion)

	// ErrMissingEntry is returned when an ordered expectation runs past the
	// recorded entries.
	ErrMissingEntry = fmt.Errorf("%w: missing log entry", testkit.ErrAssertion)

	// ErrInvalidExpectation is returned for expectations that can never be
	// satisfied, such as a nil pattern or a negative count.
	ErrInvalidExpectation = fmt.Errorf("%w: invalid expectation", testkit.ErrSetup)
)

// Received checks that message was logged at level at least once.
func (m *Mock) Received(level logging.Level, message string) error {
	return m.receivedAtLeastOnce(NewEntry(level, message))
}

// ReceivedMatch checks that a message matching pattern was logged at level at
// least once.
func (m *Mock) ReceivedMatch(level logging.Level, pattern *regexp.Regexp) error {
	want := MatchEntry(level, pattern)
	if err := want.validate(); err != nil {
		return err
	}
	return m.receivedAtLeastOnce(want)
}

// ReceivedOnce checks that message was logged at level exactly once.
func (m *Mock) ReceivedOnce(level logging.Level, message string) error {
	return m.ReceivedTimes(level, message, 1)
}

// ReceivedTimes checks that message was logged at level exactly n times.
func (m *Mock) ReceivedTimes(level logging.Level, message string, n int) error {
	return m.ReceivedEntryTimes(NewEntry(level, message), n)
}

// NotReceived checks that message was never logged at level.
func (m *Mock) NotReceived(level logging.Level, message string) error {
	return m.ReceivedTimes(level, message, 0)
}

// ReceivedEntryTimes checks that recorded entries matching want number exactly n.
func (m *Mock) ReceivedEntryTimes(want Entry, n int) error {
	if n < 0 {
		return fmt.Errorf("%w: call count %d is negative", ErrInvalidExpectation, n)
	}
	if err := want.validate(); err != nil {
		return err
	}
	if got := m.count(want); got != n {
		return countError(want, n, got)
	}
	return nil
}

// ReceivedExactly checks recorded entries against a multiset of expectations.
// Expectations are grouped by level and message (or pattern); for every group
// the number of times it was listed must equal the number of matching recorded
// entries. Recorded entries matching no expectation are not checked.
func (m *Mock) ReceivedExactly(entries ...Entry) error {
	if err := validateAll(entries); err != nil {
		return err
	}

	var order []entryKey
	expected := make(map[entryKey]int)
	representative := make(map[entryKey]Entry)

	for _, e := range entries {
		k := e.key()
		if _, ok := expected[k]; !ok {
			order = append(order, k)
			representative[k] = e
		}
		expected[k]++
	}

	for _, k := range order {
		want := representative[k]
		if got := m.count(want); got != expected[k] {
			return countError(want, expected[k], got)
		}
	}
	return nil
}

// ReceivedInOrder checks that the recorded entries start with entries, position
// by position. Recorded entries beyond the expected sequence are ignored.
func (m *Mock) ReceivedInOrder(entries ...Entry) error {
	if err := validateAll(entries); err != nil {
		return err
	}

	for i, want := range entries {
		if i >= len(m.entries) {
			return fmt.Errorf(
				"%w: expected call #%d to Log with arguments %s: no calls found",
				ErrMissingEntry,
				i+1,
				want,
			)
		}

		got := m.entries[i]
		if got.Level != want.Level {
			return fmt.Errorf(
				"%w: expected call #%d to Log at level '%s', actually received '%s' (%s)",
				ErrUnexpectedEntry,
				i+1,
				want.Level,
				got.Level,
				got,
			)
		}
		if !want.Matches(got) {
			return fmt.Errorf(
				"%w: expected call #%d to Log with arguments %s, actually received %s",
				ErrUnexpectedEntry,
				i+1,
				want,
				got,
			)
		}
	}
	return nil
}

// ReceivedOnlyInOrder is ReceivedInOrder that also fails when entries were
// recorded after the expected sequence.
func (m *Mock) ReceivedOnlyInOrder(entries ...Entry) error {
	if err := m.ReceivedInOrder(entries...); err != nil {
		return err
	}
	if len(m.entries) > len(entries) {
		return fmt.Errorf(
			"%w: expected %d call(s) to Log, actually received %d; first unexpected call #%d with arguments %s",
			ErrUnexpectedEntry,
			len(entries),
			len(m.entries),
			len(entries)+1,
			m.entries[len(entries)],
		)
	}
	return nil
}

func (m *Mock) receivedAtLeastOnce(want Entry) error {
	if got := m.count(want); got < 1 {
		return fmt.Errorf(
			"%w: expected at least 1 call(s) to Log with arguments %s, actually received %d",
			ErrUnexpectedCount,
			want,
			got,
		)
	}
	return nil
}

func countError(want Entry, expected, got int) error {
	return fmt.Errorf(
		"%w: expected %d call(s) to Log with arguments %s, actually received %d",
		ErrUnexpectedCount,
		expected,
		want,
		got,
	)
}
