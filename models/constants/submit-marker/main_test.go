package submitMarker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCastToSubmitMarkerIsTotal(t *testing.T) {
	assert.Equal(t, None, CastToSubmitMarker(""))
	assert.Equal(t, ReselectRegions, CastToSubmitMarker("RESELECT_REGIONS"))
	assert.Equal(t, SubmitSelectRegions, CastToSubmitMarker("SUBMIT_SELECT_REGIONS"))

	// any other non-empty value counts as a final submission
	assert.Equal(t, SubmitGenes, CastToSubmitMarker("SUBMIT_GENES"))
	assert.Equal(t, SubmitGenes, CastToSubmitMarker("Run comparison"))
	assert.Equal(t, SubmitGenes, CastToSubmitMarker("anything else"))
}
