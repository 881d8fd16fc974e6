package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"

	"seqcompare/api/models"
	"seqcompare/api/utils"

	"github.com/elastic/go-elasticsearch/v7"
)

const genesIndex = "genes"

func GetGeneDocumentsByRegion(cfg *models.Config, es *elasticsearch.Client,
	regionId string, size int) (map[string]interface{}, error) {

	// begin building the request body.
	var buf bytes.Buffer
	query := map[string]interface{}{
		"size": size,
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"filter": []map[string]interface{}{{
					"term": map[string]interface{}{
						"region.keyword": regionId,
					}},
				},
			},
		},
		"sort": []map[string]interface{}{{
			"name.keyword": map[string]string{
				"order": "asc",
			}},
		},
	}

	// encode the query
	if err := json.NewEncoder(&buf).Encode(query); err != nil {
		log.Printf("Error encoding genes query: %s\n", err)
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
		fmt.Printf("Error getting gene documents by region: %s\n", searchErr)
		return nil, searchErr
	}

	defer res.Body.Close()

	resultString := res.String()
	if cfg.Debug {
		fmt.Println(resultString)
	}

	// Declared an empty interface
	result := make(map[string]interface{})

	// Unmarshal or Decode the JSON to the interface.
	// The response comes back with a preceding status code
	// (i.e. '[200 OK] ') which needs trimming
	_, jsonBody := utils.GetLeadingStringInBetweenSquareBrackets(resultString)
	umErr := json.Unmarshal([]byte(jsonBody), &result)
	if umErr != nil {
		fmt.Printf("Error unmarshalling gene search response: %s\n", umErr)
		return nil, umErr
	}

	return result, nil
}

func GetGeneDocumentsByIds(cfg *models.Config, es *elasticsearch.Client,
	geneIds []string) (map[string]interface{}, error) {

	var buf bytes.Buffer
	query := map[string]interface{}{
		"size": len(geneIds),
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"filter": []map[string]interface{}{{
					"terms": map[string]interface{}{
						"id.keyword": geneIds,
					}},
				},
			},
		},
	}

	if err := json.NewEncoder(&buf).Encode(query); err != nil {
		log.Printf("Error encoding genes-by-ids query: %s\n", err)
		return nil, err
	}

	res, searchErr := es.Search(
		es.Search.WithContext(context.Background()),
		es.Search.WithIndex(genesIndex),
		es.Search.WithBody(&buf),
		es.Search.WithTrackTotalHits(true),
		es.Search.WithPretty(),
	)
	if searchErr != nil {
		fmt.Printf("Error getting gene documents by ids: %s\n", searchErr)
		return nil, searchErr
	}

	defer res.Body.Close()

	resultString := res.String()
	if cfg.Debug {
		fmt.Println(resultString)
	}

	result := make(map[string]interface{})

	_, jsonBody := utils.GetLeadingStringInBetweenSquareBrackets(resultString)
	umErr := json.Unmarshal([]byte(jsonBody), &result)
	if umErr != nil {
		fmt.Printf("Error unmarshalling gene search response: %s\n", umErr)
		return nil, umErr
	}

	return result, nil
}
