package mvc

import (
	"seqcompare/api/contexts"
	"seqcompare/api/models"
	"seqcompare/api/services"

	"github.com/elastic/go-elasticsearch/v7"
	"github.com/labstack/echo"
)

func RetrieveCommonElements(c echo.Context) (*elasticsearch.Client, *models.Config, *services.CatalogService) {
	sc := c.(*contexts.SeqCompareContext)

	return sc.Es7Client, sc.Config, sc.CatalogService
}
