package utils

import (
	"fmt"
	"time"

	"seqcompare/api/models"

	"github.com/cenkalti/backoff"
	"github.com/elastic/go-elasticsearch/v7"
)

func CreateEsConnection(cfg *models.Config) *elasticsearch.Client {
	var (
		clusterURLs  = []string{cfg.Elasticsearch.Url} // TODO: Add more URLs if necessary
		retryBackoff = backoff.NewExponentialBackOff()
	)

	esCfg := elasticsearch.Config{
		Addresses: clusterURLs,
		Username:  cfg.Elasticsearch.Username,
		Password:  cfg.Elasticsearch.Password,

		RetryOnStatus: []int{502, 503, 504, 429},

		// Configure the backoff function
		//
		RetryBackoff: func(i int) time.Duration {
			if i == 1 {
				retryBackoff.Reset()
			}
			return retryBackoff.NextBackOff()
		},

		// Retry up to 5 attempts
		//
		MaxRetries: 5,
	}

	es7Client, _ := elasticsearch.NewClient(esCfg)

	fmt.Printf("Using ES7 Client Version %s\n", elasticsearch.Version)

	return es7Client
}
