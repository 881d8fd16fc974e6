package forms

import (
	"testing"

	comparisonMethod "seqcompare/api/models/constants/comparison-method"
	submitMarker "seqcompare/api/models/constants/submit-marker"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeValuesCollapsesSingleFields(t *testing.T) {
	raw := map[string][]string{
		"sequence": {"ACGT", "ignored"},
		"method":   {"fasta"},
		"empty":    {""},
		"missing":  {},
	}

	normalized := NormalizeValues(raw, []string{"regions"})

	assert.Equal(t, "ACGT", normalized["sequence"])
	assert.Equal(t, "fasta", normalized["method"])
	assert.Nil(t, normalized["empty"])
	assert.Nil(t, normalized["missing"])
}

func TestNormalizeValuesKeepsMultiFieldsOrdered(t *testing.T) {
	raw := map[string][]string{
		"regions": {"chr2", "", "chr1"},
	}

	normalized := NormalizeValues(raw, []string{"regions", "genes"})

	// declared multi-valued fields retain the full ordered value
	// slice as given, empties included
	assert.Equal(t, []string{"chr2", "", "chr1"}, normalized["regions"])
	assert.Nil(t, normalized["genes"])
}

func TestFormStateFromValues(t *testing.T) {
	raw := map[string][]string{
		"sequence": {"ACGT"},
		"method":   {"fasta"},
		"regions":  {"chr1", ""},
		"genes":    {"geneA", "geneB"},
		"submit":   {"SUBMIT_SELECT_REGIONS"},
	}

	form := FormStateFromValues(raw)

	assert.Equal(t, "ACGT", form.Sequence)
	assert.Equal(t, comparisonMethod.Fasta, form.Method)
	// blank checkbox identifiers are dropped from the selection
	assert.Equal(t, []string{"chr1"}, form.SelectedRegions)
	assert.Equal(t, []string{"geneA", "geneB"}, form.SelectedGenes)
	assert.Equal(t, submitMarker.SubmitSelectRegions, form.Submit)
}

func TestFormStateFromEmptyValues(t *testing.T) {
	form := FormStateFromValues(map[string][]string{})

	assert.Empty(t, form.Sequence)
	assert.Empty(t, form.Method)
	assert.Empty(t, form.SelectedRegions)
	assert.Empty(t, form.SelectedGenes)
	assert.Equal(t, submitMarker.None, form.Submit)
}

func TestFormStateTreatsAnyOtherSubmitValueAsFinal(t *testing.T) {
	raw := map[string][]string{
		"submit": {"Run comparison"},
	}

	form := FormStateFromValues(raw)

	assert.Equal(t, submitMarker.SubmitGenes, form.Submit)
}

func TestParseContentLengthLenientDegrade(t *testing.T) {
	// a length that does not parse as a non-negative integer is
	// treated as an empty body rather than an error
	assert.Equal(t, int64(0), ParseContentLength("not-a-number"))
	assert.Equal(t, int64(0), ParseContentLength(""))
	assert.Equal(t, int64(0), ParseContentLength("-12"))
	assert.Equal(t, int64(123), ParseContentLength("123"))
	assert.Equal(t, int64(42), ParseContentLength(" 42 "))
}

func TestNewComparisonJobCopiesTheForm(t *testing.T) {
	form := FormState{
		Sequence:      "ACGT",
		Method:        comparisonMethod.NeighbourJoining,
		SelectedGenes: []string{"geneA", "geneB"},
	}

	job := NewComparisonJob(form)

	assert.NotEmpty(t, job.Id)
	assert.Equal(t, form.Method, job.Method)
	assert.Equal(t, form.Sequence, job.Sequence)
	assert.Equal(t, form.SelectedGenes, job.GeneIds)
}
