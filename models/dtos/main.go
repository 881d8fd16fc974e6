package dtos

import (
	"time"

	"seqcompare/api/models/indexes"
)

type RegionsOverviewResponseDTO struct {
	Status  int              `json:"status"`
	Message string           `json:"message"`
	Count   int              `json:"count"`
	Results []indexes.Region `json:"results"`
}

type GenesResponseDTO struct {
	Status  int            `json:"status"`
	Message string         `json:"message"`
	Regions []string       `json:"regions"`
	Count   int            `json:"count"`
	Results []indexes.Gene `json:"results"` // []Gene
}

// -- --

type GeneralErrorResponseDto struct {
	Code      int            `json:"code"`
	Message   string         `json:"message"`
	Timestamp time.Time      `json:"timestamp"`
	Errors    []GeneralError `json:"errors"`
}

type GeneralError struct {
	Message string `json:"message"`
}
