/*
Package httpfake provides a programmable http.RoundTripper for tests.

A Transport answers requests from responses registered for an exact method and
URL, records every request it sees, and never performs network I/O. Requests
without a registered answer fail with ErrResponseNotFound.

Most tests register responses relative to a base URL with a Builder:

	tr, err := httpfake.NewBuilder(httpfake.BuilderConfig{BaseURL: "https://api.example.com"}).
	  On(http.MethodPost, "/orders").Return(response.New().WithStatusCode(http.StatusCreated).MustBuild()).
	  On(http.MethodGet, "/orders/7").ReturnError(io.ErrUnexpectedEOF).
	  Build()
	if err != nil {
	  t.Fatal(err)
	}

	client := orders.NewClient(tr.Client())

After exercising the code under test, inspect tr.Calls() to assert on what was
sent. Call.JSON queries a recorded JSON request body by gjson path.

Registration errors (a blank URL, a duplicate method and URL, an empty response
set) wrap testkit.ErrSetup; a missing answer wraps testkit.ErrLookup.
*/
package httpfake
