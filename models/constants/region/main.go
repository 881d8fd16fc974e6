package region

import (
	"fmt"
	"strconv"
	"strings"
)

func ValidListOfRegionIds() []string {
	var regionIds []string
	for i := 1; i < 23; i++ {
		regionIds = append(regionIds, fmt.Sprintf("chr%d", i))
	}
	regionIds = append(regionIds, "chrX")
	regionIds = append(regionIds, "chrY")
	regionIds = append(regionIds, "chrM")
	return regionIds
}

func IsValidRegionId(text string) bool {

	loweredText := strings.ToLower(text)
	if !strings.HasPrefix(loweredText, "chr") {
		return false
	}
	remainder := loweredText[3:]

	// Check if number can be represented as an int and is non-zero
	chromNumber, _ := strconv.Atoi(remainder)
	if chromNumber > 0 {
		// It can..
		// Check if it in range 1-22
		if chromNumber < 23 {
			return true
		}
	} else {
		// No it can't..
		// Check if it is an X, Y or M (MT)
		switch remainder {
		case "x":
			return true
		case "y":
			return true
		case "m", "mt":
			return true
		}
	}

	return false
}
