// Package card parses playing-card notation such as "AS", "10C" or "KH" into
// ordered Card values, and comma separated lists of them into slices.
//
// A card is a value token followed immediately by a suit token. Values are
// A, 2-9, T or 10, J, Q and K; suits are C, H, S and D. Tokens are case
// sensitive and no whitespace is allowed inside a card. List parsers trim
// whitespace around each piece only.
//
// Cards are totally ordered by suit (Clubs < Hearts < Spades < Diamonds) and
// then by value, with Ace the lowest value.
package card
