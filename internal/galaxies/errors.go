package galaxies

import "errors"

var (
	ErrOutOfRange       = errors.New("coordinates out of range")
	ErrInvalidEdge      = errors.New("invalid edge")
	ErrInvalidDot       = errors.New("invalid dot")
	ErrUnsupportedSize  = errors.New("unsupported grid size")
	ErrGenerationFailed = errors.New("could not generate a puzzle")
	ErrNoCandidates     = errors.New("no candidate edges left")
)
