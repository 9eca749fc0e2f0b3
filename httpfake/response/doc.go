/*
Package response builds *http.Response fixtures for fakes and handler tests.

A Builder starts with no status code and a placeholder text body. Content
setters encode the supplied value and set the matching Content-Type:

	resp := response.New().
	  WithStatusCode(http.StatusCreated).
	  WithJSONContent(order).
	  MustBuild()

Encoding failures are held until Build, which returns the first one.
*/
package response
