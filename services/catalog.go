package services

import (
	"fmt"
	"sync"
	"time"

	"seqcompare/api/models"
	"seqcompare/api/models/indexes"
	esRepo "seqcompare/api/repositories/elasticsearch"

	. "github.com/ahmetb/go-linq"
	"github.com/elastic/go-elasticsearch/v7"
	"github.com/go-co-op/gocron"
	"github.com/mitchellh/mapstructure"
	"golang.org/x/sync/errgroup"
)

const geneSearchPageSize = 10000

type (
	CatalogService struct {
		Initialized bool
		Es7Client   *elasticsearch.Client
		Config      *models.Config

		regionCache    []indexes.Region
		regionCacheMux sync.RWMutex
	}
)

func NewCatalogService(es *elasticsearch.Client, cfg *models.Config) *CatalogService {
	cs := &CatalogService{
		Initialized: false,
		Es7Client:   es,
		Config:      cfg,
	}

	cs.Init()

	return cs
}

func (cs *CatalogService) Init() {
	// initialization if necessary
	if !cs.Initialized {
		// - warm the region cache once on startup (best effort ;
		//   the first ListRegions call retries on a cold cache)
		// - then refresh it periodically so newly ingested gene
		//   documents eventually show up on the region picker
		go func() {
			if _, refreshErr := cs.RefreshRegions(); refreshErr != nil {
				fmt.Printf("[%s] - Initial region cache warm-up failed : %v\n", time.Now(), refreshErr)
			}

			refreshHours := cs.Config.Api.RegionCacheRefreshHours
			if refreshHours <= 0 {
				refreshHours = 6
			}

			// setup cron job
			s := gocron.NewScheduler(time.UTC)
			s.Every(refreshHours).Hours().Do(func() {
				fmt.Printf("[%s] - Running region cache refresh..\n", time.Now())
				if _, refreshErr := cs.RefreshRegions(); refreshErr != nil {
					fmt.Printf("[%s] - Region cache refresh failed : %v\n", time.Now(), refreshErr)
				}
			})
			s.StartBlocking()
		}()

		cs.Initialized = true
	}
}

// ListRegions returns the ordered list of regions that currently
// have gene documents behind them, from cache when warm
func (cs *CatalogService) ListRegions() ([]indexes.Region, error) {
	cs.regionCacheMux.RLock()
	cached := cs.regionCache
	cs.regionCacheMux.RUnlock()

	if len(cached) > 0 {
		return cached, nil
	}

	return cs.RefreshRegions()
}

func (cs *CatalogService) RefreshRegions() ([]indexes.Region, error) {
	regions, regionsErr := esRepo.GetRegionBucketsByKeyword(cs.Config, cs.Es7Client)
	if regionsErr != nil {
		return nil, fmt.Errorf("%w : %v", ErrCatalogUnavailable, regionsErr)
	}

	cs.regionCacheMux.Lock()
	cs.regionCache = regions
	cs.regionCacheMux.Unlock()

	return regions, nil
}

// ListGenes fetches the gene documents for each of the given regions
// concurrently, then joins the results before returning : the caller
// (the stage controller) stays single threaded and deterministic
func (cs *CatalogService) ListGenes(regionIds []string) ([]indexes.Gene, error) {
	var (
		g              errgroup.Group
		genesPerRegion = make([][]indexes.Gene, len(regionIds))
	)

	for i, regionId := range regionIds {
		i, regionId := i, regionId
		g.Go(func() error {
			docs, docsErr := esRepo.GetGeneDocumentsByRegion(cs.Config, cs.Es7Client, regionId, geneSearchPageSize)
			if docsErr != nil {
				return docsErr
			}
			genesPerRegion[i] = decodeGeneHits(docs)
			return nil
		})
	}

	if waitErr := g.Wait(); waitErr != nil {
		return nil, fmt.Errorf("%w : %v", ErrCatalogUnavailable, waitErr)
	}

	// flatten in the order the regions were requested
	var allGenes []indexes.Gene
	for _, regionGenes := range genesPerRegion {
		allGenes = append(allGenes, regionGenes...)
	}

	// deduplicate (a gene can back onto more than one requested
	// region) and order by region then name
	orderedGenes := make([]indexes.Gene, 0, len(allGenes))
	From(allGenes).
		DistinctByT(func(gene indexes.Gene) string { return gene.Id }).
		OrderByT(func(gene indexes.Gene) string { return gene.Region }).
		ThenByT(func(gene indexes.Gene) string { return gene.Name }).
		ToSlice(&orderedGenes)

	return orderedGenes, nil
}

// GetGenesByIds resolves the selected gene identifiers to their
// full documents (used by the comparison service)
func (cs *CatalogService) GetGenesByIds(geneIds []string) ([]indexes.Gene, error) {
	docs, docsErr := esRepo.GetGeneDocumentsByIds(cs.Config, cs.Es7Client, geneIds)
	if docsErr != nil {
		return nil, fmt.Errorf("%w : %v", ErrCatalogUnavailable, docsErr)
	}

	return decodeGeneHits(docs), nil
}

func decodeGeneHits(docs map[string]interface{}) []indexes.Gene {
	hitsWrapper, ok := docs["hits"].(map[string]interface{})
	if !ok {
		return nil
	}

	// gather data from "hits"
	docsHits := hitsWrapper["hits"]
	allDocHits := []map[string]interface{}{}
	mapstructure.Decode(docsHits, &allDocHits)

	// grab _source for each hit
	var allSources []indexes.Gene

	for _, r := range allDocHits {
		source, sourceOk := r["_source"].(map[string]interface{})
		if !sourceOk {
			continue
		}

		// cast map[string]interface{} to struct
		var resultingGene indexes.Gene
		mapstructure.Decode(source, &resultingGene)

		// accumulate structs
		allSources = append(allSources, resultingGene)
	}

	return allSources
}
