package comparisonMethod

import (
	"seqcompare/api/models/constants"
	"strings"
)

const (
	Unknown constants.ComparisonMethod = "Unknown"

	Fasta            constants.ComparisonMethod = "fasta"
	NeighbourJoining constants.ComparisonMethod = "nj"
)

func CastToComparisonMethod(text string) constants.ComparisonMethod {
	switch strings.ToLower(text) {
	case "fasta":
		return Fasta
	case "nj":
		return NeighbourJoining
	default:
		return Unknown
	}
}

func IsKnownComparisonMethod(text string) bool {
	// attempt to cast to comparisonMethod and
	// return if unknown method
	return CastToComparisonMethod(text) != Unknown
}

// Label returns the human readable name shown on the rendered form
func Label(method constants.ComparisonMethod) string {
	switch method {
	case Fasta:
		return "FASTA"
	case NeighbourJoining:
		return "Neighbour-joining"
	default:
		return string(method)
	}
}

func KnownComparisonMethods() []constants.ComparisonMethod {
	return []constants.ComparisonMethod{Fasta, NeighbourJoining}
}
