package card

import (
	"errors"
	"fmt"
)

var (
	ErrUnrecognizedCardValue = errors.New("unrecognized card value")
	ErrUnrecognizedSuit      = errors.New("unrecognized suit")
	ErrTrailingText          = errors.New("unexpected text after card")
)

// UnrecognizedCardValueError is returned when the text does not start with a value token.
// Text is the whole input handed to the value reader.
type UnrecognizedCardValueError struct {
	Text string
}

func (e *UnrecognizedCardValueError) Error() string {
	return fmt.Sprintf("%v: %q", ErrUnrecognizedCardValue, e.Text)
}

func (e *UnrecognizedCardValueError) Is(target error) bool {
	return target == ErrUnrecognizedCardValue
}

// UnrecognizedSuitError is returned when the text after a value does not start with a suit token.
type UnrecognizedSuitError struct {
	Text string
}

func (e *UnrecognizedSuitError) Error() string {
	return fmt.Sprintf("%v: %q", ErrUnrecognizedSuit, e.Text)
}

func (e *UnrecognizedSuitError) Is(target error) bool {
	return target == ErrUnrecognizedSuit
}

// TrailingTextError is returned by the list parsers when a piece holds more than one card token.
type TrailingTextError struct {
	Piece string
	Rest  string
}

func (e *TrailingTextError) Error() string {
	return fmt.Sprintf("%v: %q in %q", ErrTrailingText, e.Rest, e.Piece)
}

func (e *TrailingTextError) Is(target error) bool {
	return target == ErrTrailingText
}
