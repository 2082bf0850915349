package pipeline

import "errors"

// Sentinel errors for pipeline construction and checks.
var (
	ErrHTMLConversion   = errors.New("HTML conversion failed")
	ErrUnknownBlockMode = errors.New("unknown block mode")
	ErrUnknownStyle     = errors.New("unknown highlight style")
	ErrUnclosedTag      = errors.New("unclosed tag")
	ErrMismatchedTag    = errors.New("mismatched closing tag")
)
