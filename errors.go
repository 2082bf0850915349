package chatmd

import (
	"errors"

	"github.com/alnah/go-chatmd/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrHTMLConversion = pipeline.ErrHTMLConversion
	ErrUnknownEngine  = errors.New("unknown rendering engine")
	ErrUnknownRole    = errors.New("unknown message role")

	// Option validation errors.
	ErrUnknownBlockMode = pipeline.ErrUnknownBlockMode
	ErrUnknownStyle     = pipeline.ErrUnknownStyle
)

// Structure check errors returned by CheckBalanced.
var (
	ErrUnclosedTag   = pipeline.ErrUnclosedTag
	ErrMismatchedTag = pipeline.ErrMismatchedTag
)
