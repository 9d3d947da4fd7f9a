package cmd

import (
	"fmt"
	"io"
	"slices"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/arcanaland/cardnotation/card"
)

// parseCmd represents the parse command
var parseCmd = &cobra.Command{
	Use:   "parse [list...]",
	Short: "Parse card lists and print the cards in order",
	Long: `Parse reads each argument as a list of cards separated by the configured
delimiter (a comma by default) and prints the cards in input order.

Examples:
  cardnotation parse "AS, 2H, 8C"
  cardnotation parse -d "|" "10D|JD|QD"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cards, err := parseArgs(args)
		if err != nil {
			return err
		}
		printCards(cmd.OutOrStdout(), cards)
		return nil
	},
}

// sortCmd represents the sort command
var sortCmd = &cobra.Command{
	Use:   "sort [list...]",
	Short: "Parse card lists and print the cards in ascending order",
	Long: `Sort parses every argument like parse does, then prints all cards ordered
by suit (clubs, hearts, spades, diamonds) and by value within a suit (ace low).`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cards, err := parseArgs(args)
		if err != nil {
			return err
		}
		slices.SortFunc(cards, card.Compare)
		printCards(cmd.OutOrStdout(), cards)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(parseCmd)
	RootCmd.AddCommand(sortCmd)
}

// parseArgs parses each argument as a card list, stopping at the first failure
func parseArgs(args []string) ([]card.Card, error) {
	var all []card.Card
	for _, arg := range args {
		cards, err := card.ParseListSep(arg, cfg.Delimiter)
		if err != nil {
			return nil, fmt.Errorf("error parsing %q: %w", arg, err)
		}
		log.WithFields(logrus.Fields{
			"input":     arg,
			"delimiter": cfg.Delimiter,
			"count":     len(cards),
		}).Debug("card list parsed")
		all = append(all, cards...)
	}
	return all, nil
}

func printCards(w io.Writer, cards []card.Card) {
	for i, c := range cards {
		fmt.Fprintf(w, "%d. %s %s\n", i+1, suitSymbol(c.Suit()), c)
	}
}
