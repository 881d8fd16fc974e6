package middleware

import (
	"net/http"
	"strings"

	"seqcompare/api/contexts"
	"seqcompare/api/models/constants/region"

	"github.com/labstack/echo"
)

/*
	Echo middleware to ensure a valid `regions` HTTP query parameter was provided
*/
func MandateRegionsPluralAttribute(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		// check for regions query parameter
		regionsQP := c.QueryParam("regions")
		if len(regionsQP) == 0 {
			// if no ids were provided return an error
			return echo.NewHTTPError(http.StatusBadRequest, "Missing 'regions' query parameter for querying!")
		}

		regionIds := strings.Split(regionsQP, ",")

		// verify:
		for _, regionId := range regionIds {
			if !region.IsValidRegionId(regionId) {
				// if invalid region id
				return echo.NewHTTPError(http.StatusBadRequest, "Invalid 'regions' query parameter! Check your input")
			}
		}

		sc := c.(*contexts.SeqCompareContext)
		sc.Regions = regionIds

		return next(sc)
	}
}
