package validator

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arcanaland/cardnotation/card"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
	Lists    int
	Cards    int
}

// Validator checks a notation file holding one card list per line.
// Blank lines and lines starting with '#' are skipped.
type Validator struct {
	Path      string
	Delimiter string
	Results   ValidationResults
}

func NewValidator(path, delimiter string) *Validator {
	return &Validator{
		Path:      path,
		Delimiter: delimiter,
		Results:   ValidationResults{},
	}
}

func (v *Validator) Validate() (ValidationResults, error) {
	f, err := os.Open(v.Path)
	if err != nil {
		return v.Results, fmt.Errorf("error opening %s: %w", v.Path, err)
	}
	defer f.Close()

	return v.ValidateReader(f)
}

// ValidateReader validates notation read from r
func (v *Validator) ValidateReader(r io.Reader) (ValidationResults, error) {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		v.validateLine(lineNo, line)
	}
	if err := scanner.Err(); err != nil {
		return v.Results, fmt.Errorf("error reading %s: %w", v.Path, err)
	}

	if v.Results.Lists == 0 && len(v.Results.Errors) == 0 {
		v.Results.Warnings = append(v.Results.Warnings, "no card lists found")
	}
	return v.Results, nil
}

// validateLine parses one list and records duplicate cards as warnings
func (v *Validator) validateLine(lineNo int, line string) {
	cards, err := card.ParseListSep(line, v.Delimiter)
	if err != nil {
		v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("line %d: %v", lineNo, err))
		return
	}

	v.Results.Lists++
	v.Results.Cards += len(cards)

	seen := make(map[card.Card]bool, len(cards))
	for _, c := range cards {
		if seen[c] {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("line %d: duplicate card %s", lineNo, c))
			continue
		}
		seen[c] = true
	}
}
