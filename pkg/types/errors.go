package types

import "errors"

// Submission errors.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidView  = errors.New("invalid view kind")
)

// Config validation errors.
var (
	ErrRuleNegative     = errors.New("rule length must not be negative")
	ErrRuleRangeInvalid = errors.New("rule minimum exceeds maximum")
	ErrRuleTooLarge     = errors.New("rule limit out of range")
	ErrLogLevelUnknown  = errors.New("unknown log level")
)
