/*
Package testkit provides test doubles for code that makes outbound HTTP calls and
emits leveled log messages.

The root package only holds the error taxonomy shared by the sub-packages. Every
error a fake or mock produces itself wraps exactly one of ErrSetup, ErrLookup or
ErrAssertion, so callers can classify failures with errors.Is. Transport errors
scripted through httpfake are returned exactly as registered.

Sub-packages:

  - httpfake: a programmable http.RoundTripper answering from registered responses.
  - httpfake/response: a fluent builder for *http.Response fixtures.
  - logmock: a recording logger with assertion helpers.
  - logging: the leveled logging vocabulary shared by logmock and production code.
  - compare: map equality helpers.
*/
package testkit
