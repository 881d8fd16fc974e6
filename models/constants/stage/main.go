package stage

import (
	"seqcompare/api/models/constants"
)

const (
	ChooseRegions constants.Stage = "ChooseRegions"
	SelectGenes   constants.Stage = "SelectGenes"
	ShowResults   constants.Stage = "ShowResults"
)
