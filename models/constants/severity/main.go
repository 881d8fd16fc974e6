package severity

import (
	"seqcompare/api/models/constants"
)

const (
	Info    constants.MessageSeverity = "info"
	Warning constants.MessageSeverity = "warning"
	Error   constants.MessageSeverity = "error"
)
