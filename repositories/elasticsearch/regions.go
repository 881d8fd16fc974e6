package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"

	"seqcompare/api/models"
	"seqcompare/api/models/indexes"
	"seqcompare/api/utils"

	"github.com/Jeffail/gabs"
	"github.com/elastic/go-elasticsearch/v7"
)

func GetRegionBucketsByKeyword(cfg *models.Config, es *elasticsearch.Client) ([]indexes.Region, error) {
	// begin building the request body.
	var buf bytes.Buffer
	aggMap := map[string]interface{}{
		"size": "0",
		"aggs": map[string]interface{}{
			"genes_region_group": map[string]interface{}{
				"terms": map[string]interface{}{
					"field": "region.keyword",
					"size":  "10000", // increases the number of buckets returned (default is 10)
					"order": map[string]string{
						"_key": "asc",
					},
				},
			},
		},
	}

	// encode the query
	if err := json.NewEncoder(&buf).Encode(aggMap); err != nil {
		log.Printf("Error encoding aggMap: %s\n", err)
		return nil, err
	}

	if cfg.Debug {
		// view the outbound elasticsearch query
		myString := string(buf.Bytes()[:])
		fmt.Println(myString)
	}

	// Perform the search request.
	res, searchErr := es.Search(
		es.Search.WithContext(context.Background()),
		es.Search.WithIndex(genesIndex),
		es.Search.WithBody(&buf),
		es.Search.WithTrackTotalHits(true),
		es.Search.WithPretty(),
	)
	if searchErr != nil {
		fmt.Printf("Error getting region buckets: %s\n", searchErr)
		return nil, searchErr
	}

	defer res.Body.Close()

	resultString := res.String()
	if cfg.Debug {
		fmt.Println(resultString)
	}

	// The response comes back with a preceding status code
	// (i.e. '[200 OK] ') which needs trimming
	_, jsonBody := utils.GetLeadingStringInBetweenSquareBrackets(resultString)

	parsed, parseErr := gabs.ParseJSON([]byte(jsonBody))
	if parseErr != nil {
		fmt.Printf("Error parsing region buckets response: %s\n", parseErr)
		return nil, parseErr
	}

	// loop over the aggregation buckets and accumulate
	// one Region per bucket key, with its gene count
	regions := make([]indexes.Region, 0)

	buckets, bucketsErr := parsed.Path("aggregations.genes_region_group.buckets").Children()
	if bucketsErr != nil {
		fmt.Printf("Error traversing region buckets: %s\n", bucketsErr)
		return nil, bucketsErr
	}

	for _, bucket := range buckets {
		regionId, _ := bucket.Path("key").Data().(string)

		geneCount := 0
		if docCount, ok := bucket.Path("doc_count").Data().(float64); ok {
			geneCount = int(docCount)
		}

		regions = append(regions, indexes.Region{
			Id:        regionId,
			GeneCount: geneCount,
		})
	}

	return regions, nil
}
