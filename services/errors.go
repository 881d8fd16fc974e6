package services

import "errors"

// Collaborator error taxonomy : the wizard controller catches these
// and converts them into in-page messages rather than letting them
// escape to the transport layer
var (
	ErrCatalogUnavailable = errors.New("catalog unavailable")
	ErrComparisonFailed   = errors.New("comparison failed")
)
