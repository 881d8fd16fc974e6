package renderer

import (
	"testing"

	comparisonMethod "seqcompare/api/models/constants/comparison-method"
	"seqcompare/api/models/constants/severity"
	"seqcompare/api/models/constants/stage"
	"seqcompare/api/models/forms"
	"seqcompare/api/models/indexes"

	"github.com/stretchr/testify/assert"
)

func TestRenderChooseRegionsPrepopulatesEnteredValues(t *testing.T) {
	r, newErr := New()
	assert.Nil(t, newErr)

	document, renderErr := r.Render(forms.StageResult{
		Stage: stage.ChooseRegions,
		Form: forms.FormState{
			Sequence:        "ACGT",
			Method:          comparisonMethod.NeighbourJoining,
			SelectedRegions: []string{"chr2"},
		},
		Regions: []indexes.Region{
			{Id: "chr1", GeneCount: 12},
			{Id: "chr2", GeneCount: 7},
		},
	})
	assert.Nil(t, renderErr)

	// previously entered values reappear pre-filled
	assert.Contains(t, document, ">ACGT</textarea>")
	assert.Contains(t, document, `value="nj" selected`)
	assert.Contains(t, document, `value="chr2" checked`)
	assert.NotContains(t, document, `value="chr1" checked`)
	assert.Contains(t, document, "Neighbour-joining")
}

func TestRenderEscapesUserSuppliedStrings(t *testing.T) {
	r, _ := New()

	document, renderErr := r.Render(forms.StageResult{
		Stage: stage.ChooseRegions,
		Form: forms.FormState{
			Sequence: "<script>alert(1)</script>",
		},
	})
	assert.Nil(t, renderErr)

	// any user supplied string reaching the page must be output
	// encoded at the renderer boundary
	assert.NotContains(t, document, "<script>alert(1)</script>")
	assert.Contains(t, document, "&lt;script&gt;")
}

func TestRenderSelectGenesCarriesStateInHiddenFields(t *testing.T) {
	r, _ := New()

	document, renderErr := r.Render(forms.StageResult{
		Stage: stage.SelectGenes,
		Form: forms.FormState{
			Sequence:        "ACGT",
			Method:          comparisonMethod.Fasta,
			SelectedRegions: []string{"chr1", "chr2"},
			SelectedGenes:   []string{"geneB"},
		},
		Genes: []indexes.Gene{
			{Id: "geneA", Name: "Gene A", Region: "chr1", Start: 100, End: 900},
			{Id: "geneB", Name: "Gene B", Region: "chr1", Start: 1000, End: 1900},
		},
	})
	assert.Nil(t, renderErr)

	// sequence, method and regions ride along as hidden inputs so
	// nothing is lost moving forward or backward
	assert.Contains(t, document, `name="sequence" value="ACGT"`)
	assert.Contains(t, document, `name="method" value="fasta"`)
	assert.Contains(t, document, `name="regions" value="chr1"`)
	assert.Contains(t, document, `name="regions" value="chr2"`)
	assert.Contains(t, document, `value="geneB" checked`)
	assert.NotContains(t, document, `value="geneA" checked`)
	assert.Contains(t, document, `value="RESELECT_REGIONS"`)
	assert.Contains(t, document, `value="SUBMIT_GENES"`)
}

func TestRenderMessagesWithSeverityClasses(t *testing.T) {
	r, _ := New()

	document, renderErr := r.Render(forms.StageResult{
		Stage: stage.ChooseRegions,
		Messages: []forms.Message{
			{Severity: severity.Error, Text: "Please select at least one region to continue."},
		},
	})
	assert.Nil(t, renderErr)

	assert.Contains(t, document, `class="message error"`)
	assert.Contains(t, document, "Please select at least one region to continue.")
}

func TestRenderShowResultsPopulatesResultsBlock(t *testing.T) {
	r, _ := New()

	document, renderErr := r.Render(forms.StageResult{
		Stage: stage.ShowResults,
		Form: forms.FormState{
			Sequence: "ACGT",
			Method:   comparisonMethod.Fasta,
		},
		Results: []forms.ComparisonResult{
			{GeneId: "geneA", GeneName: "Gene A", Method: "FASTA", Score: 0.875, Summary: "87.5% identity over 8 aligned columns"},
		},
	})
	assert.Nil(t, renderErr)

	assert.Contains(t, document, "Gene A (geneA)")
	assert.Contains(t, document, "0.875")
	assert.Contains(t, document, "87.5% identity over 8 aligned columns")
}

func TestRenderResultsBlockEmptyOutsideShowResults(t *testing.T) {
	r, _ := New()

	document, renderErr := r.Render(forms.StageResult{
		Stage: stage.ChooseRegions,
		// stray results must not leak into earlier stages
		Results: []forms.ComparisonResult{
			{GeneId: "geneA", GeneName: "Gene A", Method: "FASTA", Score: 1},
		},
	})
	assert.Nil(t, renderErr)

	assert.NotContains(t, document, "Gene A (geneA)")
}
