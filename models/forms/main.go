package forms

import (
	"strconv"
	"strings"

	"seqcompare/api/models/constants"
	comparisonMethod "seqcompare/api/models/constants/comparison-method"
	submitMarker "seqcompare/api/models/constants/submit-marker"
	"seqcompare/api/models/indexes"

	"github.com/google/uuid"
)

/*
	The single entity threading through all wizard stages.
	Built once per request from the normalized arguments
	and never mutated after construction.
*/
type FormState struct {
	Sequence        string
	Method          constants.ComparisonMethod
	SelectedRegions []string
	SelectedGenes   []string
	Submit          constants.SubmitMarker
}

type Message struct {
	Severity constants.MessageSeverity `json:"severity"`
	Text     string                    `json:"text"`
}

// StageResult is the controller's decision output : which stage to
// render next, what to tell the user, and the form values to carry
// forward so nothing the user typed is lost on errors or "go back"
type StageResult struct {
	Stage    constants.Stage
	Messages []Message
	Form     FormState
	Regions  []indexes.Region
	Genes    []indexes.Gene
	Results  []ComparisonResult
}

func (sr StageResult) HasErrors() bool {
	return len(sr.Messages) > 0
}

// ComparisonJob is constructed only when entering ShowResults and
// consumed entirely within one request ; never persisted
type ComparisonJob struct {
	Id       string
	Method   constants.ComparisonMethod
	Sequence string
	GeneIds  []string
}

type ComparisonResult struct {
	GeneId   string  `json:"geneId"`
	GeneName string  `json:"geneName"`
	Method   string  `json:"method"`
	Score    float64 `json:"score"`
	Summary  string  `json:"summary"`
}

func NewComparisonJob(form FormState) ComparisonJob {
	return ComparisonJob{
		Id:       uuid.New().String(),
		Method:   form.Method,
		Sequence: form.Sequence,
		GeneIds:  form.SelectedGenes,
	}
}

// NormalizeValues flattens a raw field-name to raw-values mapping :
// fields declared in multiFields keep their full ordered value slice
// as given ; every other field collapses to nil (no values, or only
// the empty string) or its first value. Pure function of its input,
// independent of whether the values arrived query- or body-encoded.
func NormalizeValues(raw map[string][]string, multiFields []string) map[string]interface{} {
	normalized := make(map[string]interface{}, len(raw))

	for field, values := range raw {
		if stringInSlice(field, multiFields) {
			normalized[field] = append([]string{}, values...)
			continue
		}

		if len(values) == 0 || (len(values) == 1 && values[0] == "") {
			normalized[field] = nil
			continue
		}
		normalized[field] = values[0]
	}

	return normalized
}

// FormStateFromValues builds the request's FormState from raw form
// values. `regions` and `genes` are the declared multi-valued fields ;
// empty identifiers submitted by blank checkboxes are dropped.
func FormStateFromValues(raw map[string][]string) FormState {
	normalized := NormalizeValues(raw, []string{"regions", "genes"})

	form := FormState{
		Sequence: singleValue(normalized, "sequence"),
		Submit:   submitMarker.CastToSubmitMarker(singleValue(normalized, "submit")),
	}

	if methodText := singleValue(normalized, "method"); methodText != "" {
		form.Method = comparisonMethod.CastToComparisonMethod(methodText)
	}

	form.SelectedRegions = nonEmptyValues(normalized, "regions")
	form.SelectedGenes = nonEmptyValues(normalized, "genes")

	return form
}

// ParseContentLength applies the lenient-degrade policy : a value
// that cannot be parsed as a non-negative integer is treated as an
// empty body rather than an error
func ParseContentLength(text string) int64 {
	length, convErr := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if convErr != nil || length < 0 {
		return 0
	}
	return length
}

func singleValue(normalized map[string]interface{}, field string) string {
	if value, ok := normalized[field].(string); ok {
		return value
	}
	return ""
}

func nonEmptyValues(normalized map[string]interface{}, field string) []string {
	values, ok := normalized[field].([]string)
	if !ok {
		return nil
	}

	var kept []string
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			kept = append(kept, value)
		}
	}
	return kept
}

func stringInSlice(a string, list []string) bool {
	for _, b := range list {
		if b == a {
			return true
		}
	}
	return false
}
