/*
Package logging defines the leveled logging vocabulary shared by production code
and the logmock test double.

Code under test depends on the small Client interface with convenience methods
for common log levels (Trace, Debug, Info, Warn, Error). In production NewZap
backs a Client with a *zap.Logger; in tests a *logmock.Mock satisfies the same
interface and records what was logged.
*/
package logging
