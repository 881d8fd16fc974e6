package region

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidRegionId(t *testing.T) {
	assert.True(t, IsValidRegionId("chr1"))
	assert.True(t, IsValidRegionId("chr22"))
	assert.True(t, IsValidRegionId("chrX"))
	assert.True(t, IsValidRegionId("chrY"))
	assert.True(t, IsValidRegionId("chrM"))

	assert.False(t, IsValidRegionId("chr0"))
	assert.False(t, IsValidRegionId("chr23"))
	assert.False(t, IsValidRegionId("1"))
	assert.False(t, IsValidRegionId(""))
	assert.False(t, IsValidRegionId("chrZ"))
}

func TestValidListOfRegionIds(t *testing.T) {
	regionIds := ValidListOfRegionIds()

	assert.Len(t, regionIds, 25)
	for _, regionId := range regionIds {
		assert.True(t, IsValidRegionId(regionId))
	}
}
