/*
Package logmock provides a recording logger for tests along with assertion helpers
to verify what code under test logged.

A Mock records every entry it receives, in call order, from three front doors:

  - direct calls: Log, Logf and the logging.Client methods (Info, Warn, ...).
  - a zap core: Zap() returns a *zap.Logger writing into the mock.
  - a logr sink: Logr() returns a logr.Logger writing into the mock.

Quick start

	m := logmock.New(logmock.Config{Name: "orders"})
	svc := orders.New(orders.Config{Logger: m.Zap()})
	svc.Place(ctx, order)

	if err := m.ReceivedOnce(logging.Info, "order placed"); err != nil {
	  t.Fatal(err)
	}

Assertions

  - Received / ReceivedMatch: at least one matching entry.
  - ReceivedTimes / ReceivedOnce / NotReceived: exactly n matching entries.
  - ReceivedExactly: for every distinct expected entry, the number of times it was
    listed must equal the number of matching recorded entries.
  - ReceivedInOrder: expected entries match recorded entries position by
    position. Recorded entries past the end of the expectation are ignored;
    ReceivedOnlyInOrder rejects them.

Levels always match exactly. Messages match either literally or, for entries built
with MatchEntry, with a regular expression.

Every assertion returns nil or an error wrapping testkit.ErrAssertion. Wrap a mock
with Require to fail the test directly instead.
*/
package logmock
