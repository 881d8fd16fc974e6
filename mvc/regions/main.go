package regions

import (
	"fmt"
	"net/http"
	"time"

	"seqcompare/api/contexts"
	"seqcompare/api/models/dtos"
	"seqcompare/api/mvc"

	"github.com/labstack/echo"
)

func GetRegionsOverview(c echo.Context) error {
	fmt.Printf("[%s] - GetRegionsOverview hit!\n", time.Now())
	_, _, catalog := mvc.RetrieveCommonElements(c)

	regions, regionsErr := catalog.ListRegions()
	if regionsErr != nil {
		fmt.Printf("[%s] - Error listing regions : %v\n", time.Now(), regionsErr)
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":  500,
			"message": "Something went wrong... Please contact the administrator!",
		})
	}

	return c.JSON(http.StatusOK, dtos.RegionsOverviewResponseDTO{
		Status:  200,
		Message: "Success",
		Count:   len(regions),
		Results: regions,
	})
}

func GenesGetByRegions(c echo.Context) error {
	fmt.Printf("[%s] - GenesGetByRegions hit!\n", time.Now())
	_, _, catalog := mvc.RetrieveCommonElements(c)

	// region ids validated and stashed by the middleware
	regionIds := c.(*contexts.SeqCompareContext).Regions

	fmt.Printf("Executing gene search for regions %v\n", regionIds)

	genes, genesErr := catalog.ListGenes(regionIds)
	if genesErr != nil {
		fmt.Printf("[%s] - Error listing genes : %v\n", time.Now(), genesErr)
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":  500,
			"message": "Something went wrong... Please contact the administrator!",
		})
	}

	fmt.Printf("Found %d genes!\n", len(genes))

	return c.JSON(http.StatusOK, dtos.GenesResponseDTO{
		Status:  200,
		Message: "Success",
		Regions: regionIds,
		Count:   len(genes),
		Results: genes,
	})
}
