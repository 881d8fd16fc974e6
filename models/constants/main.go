package constants

/*
	Defines a set of base level
	constants and enums to be used
	throughout SeqCompare and it's
	associated services.
*/
type Stage string

type SubmitMarker string

type ComparisonMethod string

type MessageSeverity string
