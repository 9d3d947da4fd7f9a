package card

import (
	"cmp"
	"fmt"
)

// Value is the rank of a playing card. Ace is the lowest value, King the highest.
type Value uint8

const (
	Ace Value = iota
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

var valueNames = [...]string{
	"Ace", "Two", "Three", "Four", "Five", "Six", "Seven",
	"Eight", "Nine", "Ten", "Jack", "Queen", "King",
}

// Values returns every value from Ace to King.
func Values() []Value {
	vals := make([]Value, 0, len(valueNames))
	for v := Ace; v <= King; v++ {
		vals = append(vals, v)
	}
	return vals
}

// Valid reports whether v is one of the thirteen card values.
func (v Value) Valid() bool {
	return v <= King
}

func (v Value) String() string {
	if !v.Valid() {
		return fmt.Sprintf("Value(%d)", uint8(v))
	}
	return valueNames[v]
}

// Suit is the suit of a playing card. The order Clubs < Hearts < Spades < Diamonds
// carries no game meaning; it only makes Card totally ordered.
type Suit uint8

const (
	Clubs Suit = iota
	Hearts
	Spades
	Diamonds
)

var suitNames = [...]string{"Clubs", "Hearts", "Spades", "Diamonds"}

// Suits returns every suit in comparison order.
func Suits() []Suit {
	return []Suit{Clubs, Hearts, Spades, Diamonds}
}

// Valid reports whether s is one of the four suits.
func (s Suit) Valid() bool {
	return s <= Diamonds
}

func (s Suit) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Suit(%d)", uint8(s))
	}
	return suitNames[s]
}

// Symbol returns the unicode glyph for the suit.
func (s Suit) Symbol() string {
	switch s {
	case Clubs:
		return "♣"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	case Diamonds:
		return "♦"
	}
	return "?"
}

// Red reports whether the suit is printed in red.
func (s Suit) Red() bool {
	return s == Hearts || s == Diamonds
}

// Card is an immutable suit and value pair. Cards compare suit first, then value,
// and are comparable with ==.
type Card struct {
	suit  Suit
	value Value
}

// NewCard creates a Card from a value and a suit.
func NewCard(value Value, suit Suit) Card {
	return Card{suit: suit, value: value}
}

func (c Card) Suit() Suit {
	return c.suit
}

func (c Card) Value() Value {
	return c.value
}

// String returns the English name of the card, e.g. "Ace of Spades".
func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.value, c.suit)
}

// Less reports whether c orders before other.
func (c Card) Less(other Card) bool {
	return Compare(c, other) < 0
}

// Compare returns -1, 0 or +1 depending on whether a orders before, equal to, or
// after b. It is suitable for slices.SortFunc.
func Compare(a, b Card) int {
	if n := cmp.Compare(a.suit, b.suit); n != 0 {
		return n
	}
	return cmp.Compare(a.value, b.value)
}
