package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcanaland/cardnotation/card"
)

var showCmd = &cobra.Command{
	Use:   "show [card]",
	Short: "Display a single card",
	Long: `Show parses exactly one card in notation form and displays it.

Examples:
  cardnotation show AS
  cardnotation show 10H`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := args[0]

		c, rest, err := card.Parse(input)
		if err != nil {
			return fmt.Errorf("error parsing card: %w", err)
		}
		if rest != "" {
			return fmt.Errorf("error parsing card: %w", &card.TrailingTextError{Piece: input, Rest: rest})
		}

		log.WithFields(logrus.Fields{"input": input, "card": c}).Debug("card parsed")

		width, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || width <= 0 {
			width = 80 // Default if we can't get terminal width
		}
		displayCard(cmd.OutOrStdout(), c, width)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)
}

// cardArt draws a small framed card face
func cardArt(c card.Card) []string {
	label := valueLabel(c.Value())
	sym := suitSymbol(c.Suit())
	return []string{
		"┌───────┐",
		"│" + fmt.Sprintf("%-2s", label) + "     │",
		"│       │",
		"│   " + sym + "   │",
		"│       │",
		"│     " + fmt.Sprintf("%2s", label) + "│",
		"└───────┘",
	}
}

// valueLabel is the corner index printed on a card face
func valueLabel(v card.Value) string {
	switch v {
	case card.Ace:
		return "A"
	case card.Jack:
		return "J"
	case card.Queen:
		return "Q"
	case card.King:
		return "K"
	}
	return fmt.Sprintf("%d", int(v)+1)
}

// displayCard prints the card art on the left and its details on the right
func displayCard(w io.Writer, c card.Card, width int) {
	artLines := cardArt(c)
	maxArtWidth := 0
	for _, line := range artLines {
		if n := visibleWidth(line); n > maxArtWidth {
			maxArtWidth = n
		}
	}

	infoLines := []string{
		colorize.CyanString("Card:  ") + colorize.HiWhiteString("%s", c),
		colorize.CyanString("Value: ") + colorize.HiWhiteString("%s", c.Value()),
		colorize.CyanString("Suit:  ") + colorize.HiWhiteString("%s", c.Suit()) + " " + suitSymbol(c.Suit()),
	}

	spacing := 4
	infoStartCol := maxArtWidth + spacing
	infoWidth := 0
	for _, line := range infoLines {
		if n := visibleWidth(line); n > infoWidth {
			infoWidth = n
		}
	}

	// Center the block when the terminal is wide enough
	pad := 2
	if total := infoStartCol + infoWidth; width > total {
		pad = (width - total) / 2
	}

	fmt.Fprintln(w)
	for i := 0; i < max(len(artLines), len(infoLines)); i++ {
		fmt.Fprint(w, strings.Repeat(" ", pad))
		if i < len(artLines) {
			fmt.Fprint(w, artLines[i])
			fmt.Fprint(w, strings.Repeat(" ", infoStartCol-visibleWidth(artLines[i])))
		} else {
			fmt.Fprint(w, strings.Repeat(" ", infoStartCol))
		}
		if i < len(infoLines) {
			fmt.Fprint(w, infoLines[i])
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)
}

// suitSymbol returns the suit glyph, red for hearts and diamonds
func suitSymbol(s card.Suit) string {
	if s.Red() {
		return colorize.HiRedString(s.Symbol())
	}
	return colorize.HiWhiteString(s.Symbol())
}

// visibleWidth counts runes outside ANSI escape sequences
func visibleWidth(s string) int {
	return len([]rune(stripAnsi(s)))
}

// stripAnsi removes ANSI escape sequences from a string
func stripAnsi(s string) string {
	var result strings.Builder
	inEscape := false
	for _, c := range s {
		if inEscape {
			if c == 'm' {
				inEscape = false
			}
		} else if c == '\033' {
			inEscape = true
		} else {
			result.WriteRune(c)
		}
	}
	return result.String()
}
