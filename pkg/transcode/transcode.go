package transcode

import (
	"errors"
	"fmt"
	"strings"
)

// Code is one transcoded character: 1-26 are A-Z, 27 is a space and 0 ends a message
type Code uint8

const (
	// Terminator marks the end of a message
	Terminator Code = 0
	// Space is the code for ' '
	Space Code = 27
	// MaxCode is the largest code a message can carry
	MaxCode Code = 27
)

var (
	ErrInvalidCharacter = errors.New("character cannot be transcoded")
	ErrInvalidCode      = errors.New("code does not map to a character")
)

// InvalidCharacterError reports a character outside A-Z and space
type InvalidCharacterError struct {
	Char  rune
	Index int
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("invalid character %q at index %d: only A-Z and space are supported", e.Char, e.Index)
}

func (e *InvalidCharacterError) Unwrap() error {
	return ErrInvalidCharacter
}

// InvalidCodeError reports a code that has no character, including a stray terminator
type InvalidCodeError struct {
	Code  Code
	Index int
}

func (e *InvalidCodeError) Error() string {
	return fmt.Sprintf("invalid code %d at index %d", e.Code, e.Index)
}

func (e *InvalidCodeError) Unwrap() error {
	return ErrInvalidCode
}

// Encode maps text to codes, appending a single terminator. Only ASCII letters
// are folded to upper case; Index in the error is the byte offset into text.
func Encode(text string) ([]Code, error) {
	codes := make([]Code, 0, len(text)+1)

	for i, r := range text {
		c, ok := codeFor(r)
		if !ok {
			return nil, &InvalidCharacterError{Char: r, Index: i}
		}
		codes = append(codes, c)
	}

	return append(codes, Terminator), nil
}

// Validate checks that text only holds characters Encode accepts
func Validate(text string) error {
	for i, r := range text {
		if _, ok := codeFor(r); !ok {
			return &InvalidCharacterError{Char: r, Index: i}
		}
	}
	return nil
}

// Decode maps codes back to text. The terminator is not a character, so
// callers must strip it first (see Trim).
func Decode(codes []Code) (string, error) {
	var sb strings.Builder
	sb.Grow(len(codes))

	for i, c := range codes {
		r, ok := charFor(c)
		if !ok {
			return "", &InvalidCodeError{Code: c, Index: i}
		}
		sb.WriteRune(r)
	}

	return sb.String(), nil
}

// Trim returns the codes in front of the first terminator
func Trim(codes []Code) []Code {
	for i, c := range codes {
		if c == Terminator {
			return codes[:i]
		}
	}
	return codes
}

// Valid reports whether c maps to a character
func Valid(c Code) bool {
	_, ok := charFor(c)
	return ok
}

func codeFor(r rune) (Code, bool) {
	switch {
	case r == ' ':
		return Space, true
	case r >= 'A' && r <= 'Z':
		return Code(r-'A') + 1, true
	case r >= 'a' && r <= 'z':
		return Code(r-'a') + 1, true
	default:
		return 0, false
	}
}

func charFor(c Code) (rune, bool) {
	switch {
	case c == Space:
		return ' ', true
	case c >= 1 && c <= 26:
		return 'A' + rune(c-1), true
	default:
		return 0, false
	}
}
