package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"seqcompare/api/contexts"
	gam "seqcompare/api/middleware"
	"seqcompare/api/models"
	serviceInfo "seqcompare/api/models/constants/service-info"
	regionsMvc "seqcompare/api/mvc/regions"
	serviceInfoMvc "seqcompare/api/mvc/service-info"
	wizardMvc "seqcompare/api/mvc/wizard"
	"seqcompare/api/renderer"
	"seqcompare/api/services"
	"seqcompare/api/utils"

	"github.com/kelseyhightower/envconfig"
	"github.com/labstack/echo"
	"github.com/labstack/echo/middleware"
)

func main() {
	// Gather environment variables
	var cfg models.Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	fmt.Printf("Using : \n"+

		"\tDebug : %t \n\n"+

		"\tMethod Registry Path : %s \n"+
		"\tScratch Path : %s \n"+
		"\tRegion Cache Refresh (hours) : %d\n"+
		"\tElasticsearch Url : %s \n"+
		"\tElasticsearch Username : %s\n\n"+

		"Running on Port : %s\n",

		cfg.Debug,
		cfg.Api.MethodsPath,
		cfg.Api.ScratchPath,
		cfg.Api.RegionCacheRefreshHours,
		cfg.Elasticsearch.Url, cfg.Elasticsearch.Username,
		cfg.Api.Port)
	// --

	// Instantiate Server
	e := echo.New()

	// Service Connections:
	// -- Elasticsearch
	es := utils.CreateEsConnection(&cfg)

	// Service Singletons
	catalog := services.NewCatalogService(es, &cfg)
	comparison := services.NewComparisonService(&cfg, catalog)

	pageRenderer, rendererErr := renderer.New()
	if rendererErr != nil {
		fmt.Println(rendererErr)
		os.Exit(2)
	}

	// Configure Server
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.POST},
	}))

	// -- Override handlers with "custom SeqCompare" context
	//		to be able to provide variables and global singletons
	e.Use(func(h echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sc := &contexts.SeqCompareContext{
				Context:           c,
				Es7Client:         es,
				Config:            &cfg,
				CatalogService:    catalog,
				ComparisonService: comparison,
				Renderer:          pageRenderer,
			}
			return h(sc)
		}
	})

	// Begin MVC Routes
	// -- Wizard (single endpoint, form submissions are body encoded
	//    because sequence payloads and gene selections can be large)
	e.GET("/", wizardMvc.WizardForm,
		// middleware
		gam.MandateWizardForm)
	e.POST("/", wizardMvc.WizardForm,
		// middleware
		gam.MandateWizardForm)

	// -- Service Info
	e.GET("/service-info", serviceInfoMvc.GetServiceInfo)

	// -- Catalog (JSON views over the same region/gene data)
	e.GET("/regions/overview", regionsMvc.GetRegionsOverview)
	e.GET("/genes/search", regionsMvc.GenesGetByRegions,
		// middleware
		gam.MandateRegionsPluralAttribute)

	// -- Root sanity check
	e.GET("/ping", func(c echo.Context) error {
		fmt.Printf("[%s] - Ping hit!\n", time.Now())
		return c.JSON(http.StatusOK, serviceInfo.SERVICE_WELCOME)
	})

	// Run
	e.Logger.Fatal(e.Start(":" + cfg.Api.Port))
}
