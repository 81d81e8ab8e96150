// Package parser turns a raw input line into a command keyword plus its
// free-text description, and splits descriptions into positional fields.
package parser

import (
	"errors"
	"strings"
)

// ErrInvalidCommand marks input that does not resolve to a known command.
var ErrInvalidCommand = errors.New("invalid command")

// ErrInvalidFormat marks a description with too few fields for its command.
var ErrInvalidFormat = errors.New("invalid command format")

// PrepareInput splits a raw line on the first whitespace run. The keyword is
// lower-cased and trimmed; the description is the trimmed remainder, if any.
func PrepareInput(raw string) (keyword, description string, err error) {
	parts := strings.SplitN(strings.TrimSpace(raw), " ", 2)
	switch len(parts) {
	case 1:
		return strings.ToLower(strings.TrimSpace(parts[0])), "", nil
	case 2:
		return strings.ToLower(strings.TrimSpace(parts[0])), strings.TrimSpace(parts[1]), nil
	default:
		return "", "", ErrInvalidCommand
	}
}

// ParseDescription splits a description into exactly argumentsRequired fields.
// The final field absorbs any remaining whitespace-separated tokens, so only
// it may contain embedded spaces.
func ParseDescription(description string, argumentsRequired int) ([]string, error) {
	fields := strings.SplitN(strings.TrimSpace(description), " ", argumentsRequired)
	if len(fields) != argumentsRequired {
		return nil, ErrInvalidFormat
	}
	return fields, nil
}
