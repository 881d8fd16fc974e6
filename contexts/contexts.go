package contexts

import (
	"seqcompare/api/models"
	"seqcompare/api/models/forms"
	"seqcompare/api/renderer"
	"seqcompare/api/services"

	es7 "github.com/elastic/go-elasticsearch/v7"
	"github.com/labstack/echo"
)

type (
	// "Helper" Context to pass into routes that need
	//  an elasticsearch client and other variables
	SeqCompareContext struct {
		echo.Context
		Es7Client         *es7.Client
		Config            *models.Config
		CatalogService    *services.CatalogService
		ComparisonService *services.ComparisonService
		Renderer          *renderer.Renderer

		// per-request state set by middleware
		Form    forms.FormState
		Regions []string
	}
)
