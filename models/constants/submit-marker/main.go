package submitMarker

import (
	"seqcompare/api/models/constants"
)

const (
	// no submit button fired (first visit)
	None constants.SubmitMarker = ""

	ReselectRegions     constants.SubmitMarker = "RESELECT_REGIONS"
	SubmitSelectRegions constants.SubmitMarker = "SUBMIT_SELECT_REGIONS"
	SubmitGenes         constants.SubmitMarker = "SUBMIT_GENES"
)

// CastToSubmitMarker is total : any unrecognized non-empty
// value counts as a final submission, matching the historical
// behaviour of "any other truthy submit value"
func CastToSubmitMarker(text string) constants.SubmitMarker {
	switch text {
	case "":
		return None
	case "RESELECT_REGIONS":
		return ReselectRegions
	case "SUBMIT_SELECT_REGIONS":
		return SubmitSelectRegions
	default:
		return SubmitGenes
	}
}
