package wizard

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"seqcompare/api/contexts"
	dtoErrors "seqcompare/api/models/dtos/errors"
	wizardService "seqcompare/api/services/wizard"

	"github.com/labstack/echo"
)

// WizardForm serves both the first visit (GET) and every stage
// submission (POST) : a completed cycle always responds 200 with the
// next stage's document, collaborator failures included (they are
// rendered as in-page messages, never as distinct HTTP status codes)
func WizardForm(c echo.Context) error {
	fmt.Printf("[%s] - WizardForm hit!\n", time.Now())
	sc := c.(*contexts.SeqCompareContext)

	controller := wizardService.NewController(sc.CatalogService, sc.ComparisonService)
	res := controller.Decide(sc.Form)

	document, renderErr := sc.Renderer.Render(res)
	if renderErr != nil {
		fmt.Printf("[%s] - Error rendering stage %s : %v\n", time.Now(), res.Stage, renderErr)
		return c.JSON(http.StatusInternalServerError,
			dtoErrors.CreateSimpleInternalServerError("Something went wrong... Please contact the administrator!"))
	}

	// accurate Content-Length, computed after encoding to bytes
	documentBytes := []byte(document)
	c.Response().Header().Set(echo.HeaderContentLength, strconv.Itoa(len(documentBytes)))

	return c.HTMLBlob(http.StatusOK, documentBytes)
}
