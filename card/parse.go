package card

import "strings"

// DefaultDelimiter separates cards in ParseList.
const DefaultDelimiter = ","

// Grammar, no whitespace allowed anywhere inside a card:
//
//	Value: 'A' | '2'..'9' | 'T' | '10' | 'J' | 'Q' | 'K'
//	Suit:  'C' | 'H' | 'S' | 'D'
//	Card:  Value Suit

// Parse reads one card from the front of s and returns it together with the
// unconsumed remainder of s.
func Parse(s string) (Card, string, error) {
	val, rest, err := readValue(s)
	if err != nil {
		return Card{}, "", err
	}
	suit, rest, err := readSuit(rest)
	if err != nil {
		return Card{}, "", err
	}
	return NewCard(val, suit), rest, nil
}

// ParseList parses a comma separated list of cards.
func ParseList(s string) ([]Card, error) {
	return ParseListSep(s, DefaultDelimiter)
}

// ParseListSep parses a list of cards separated by sep. Whitespace around each
// piece is ignored. Every piece must hold exactly one card; the first failing
// piece aborts the parse and its error is returned unchanged. An empty sep
// treats the whole input as a single piece.
func ParseListSep(s, sep string) ([]Card, error) {
	pieces := []string{s}
	if sep != "" {
		pieces = strings.Split(s, sep)
	}

	cards := make([]Card, 0, len(pieces))
	for _, piece := range pieces {
		trimmed := strings.TrimSpace(piece)
		c, rest, err := Parse(trimmed)
		if err != nil {
			return nil, err
		}
		if rest != "" {
			return nil, &TrailingTextError{Piece: trimmed, Rest: rest}
		}
		cards = append(cards, c)
	}
	return cards, nil
}

func readValue(s string) (Value, string, error) {
	if s == "" {
		return 0, "", &UnrecognizedCardValueError{Text: s}
	}

	switch s[0] {
	case 'A':
		return Ace, s[1:], nil
	case '2', '3', '4', '5', '6', '7', '8', '9':
		return Two + Value(s[0]-'2'), s[1:], nil
	case 'T':
		return Ten, s[1:], nil
	case 'J':
		return Jack, s[1:], nil
	case 'Q':
		return Queen, s[1:], nil
	case 'K':
		return King, s[1:], nil
	case '1':
		if len(s) > 1 && s[1] == '0' {
			return Ten, s[2:], nil
		}
	}
	return 0, "", &UnrecognizedCardValueError{Text: s}
}

func readSuit(s string) (Suit, string, error) {
	if s == "" {
		return 0, "", &UnrecognizedSuitError{Text: s}
	}

	switch s[0] {
	case 'S':
		return Spades, s[1:], nil
	case 'H':
		return Hearts, s[1:], nil
	case 'D':
		return Diamonds, s[1:], nil
	case 'C':
		return Clubs, s[1:], nil
	}
	return 0, "", &UnrecognizedSuitError{Text: s}
}
