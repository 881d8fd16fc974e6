package serviceInfo

import (
	"net/http"

	"seqcompare/api/contexts"
	serviceInfo "seqcompare/api/models/constants/service-info"

	"github.com/labstack/echo"
)

func GetServiceInfo(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"type": map[string]interface{}{
			"artifact": serviceInfo.SERVICE_ARTIFACT,
			"group":    serviceInfo.SERVICE_TYPE_NO_VER,
			"version":  c.(*contexts.SeqCompareContext).Config.SemVer,
		},
		"id":          serviceInfo.SERVICE_ID,
		"name":        serviceInfo.SERVICE_NAME,
		"description": serviceInfo.SERVICE_DESCRIPTION,
		"contactUrl":  c.(*contexts.SeqCompareContext).Config.ServiceContact,
		"version":     c.(*contexts.SeqCompareContext).Config.SemVer,
	})
}
