package middleware

import (
	"fmt"
	"net/http"
	"time"

	"seqcompare/api/contexts"
	"seqcompare/api/models/forms"

	"github.com/labstack/echo"
)

/*
	Echo middleware that builds the wizard's FormState from the
	request body and stashes it on the custom context
*/
func MandateWizardForm(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sc := c.(*contexts.SeqCompareContext)
		request := c.Request()

		raw := map[string][]string{}

		if request.Method == http.MethodPost && bodyLength(request) > 0 {
			if parseErr := request.ParseForm(); parseErr != nil {
				// degrade gracefully : an unreadable body is treated
				// as an empty/initial request rather than aborting
				fmt.Printf("[%s] - Could not parse wizard form body, treating as empty : %v\n", time.Now(), parseErr)
			} else {
				raw = request.PostForm
			}
		}

		sc.Form = forms.FormStateFromValues(raw)

		return next(sc)
	}
}

// bodyLength applies the lenient Content-Length policy : a declared
// length that does not parse as a non-negative integer counts as an
// empty body
func bodyLength(request *http.Request) int64 {
	if declared := request.Header.Get(echo.HeaderContentLength); declared != "" {
		return forms.ParseContentLength(declared)
	}
	return request.ContentLength
}
