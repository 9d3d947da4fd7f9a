package validator

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateReader(t *testing.T) {
	input := `# hands
AS, 2H, 8C

10D,JD,QD,KD,AD
AS,XX
KH,KH
QS,
`
	v := NewValidator("hands.txt", ",")
	results, err := v.ValidateReader(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 3, results.Lists)
	assert.Equal(t, 10, results.Cards)
	assert.Equal(t, []string{
		`line 5: unrecognized card value: "XX"`,
		`line 7: unrecognized card value: ""`,
	}, results.Errors)
	assert.Equal(t, []string{"line 6: duplicate card King of Hearts"}, results.Warnings)
}

func TestValidateReaderTrailingText(t *testing.T) {
	v := NewValidator("hands.txt", ",")
	results, err := v.ValidateReader(strings.NewReader("AS2H"))
	require.NoError(t, err)
	require.Len(t, results.Errors, 1)
	assert.Contains(t, results.Errors[0], "unexpected text after card")
}

func TestValidateReaderEmpty(t *testing.T) {
	v := NewValidator("empty.txt", ",")
	results, err := v.ValidateReader(strings.NewReader("# nothing here\n\n"))
	require.NoError(t, err)
	assert.Empty(t, results.Errors)
	assert.Equal(t, []string{"no card lists found"}, results.Warnings)
}

func TestValidateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hands.txt")
	require.NoError(t, os.WriteFile(path, []byte("AS|2H\n3C | 4D\n"), 0644))

	results, err := NewValidator(path, "|").Validate()
	require.NoError(t, err)
	assert.Empty(t, results.Errors)
	assert.Equal(t, 2, results.Lists)
	assert.Equal(t, 4, results.Cards)
}

func TestValidateMissingFile(t *testing.T) {
	_, err := NewValidator(filepath.Join(t.TempDir(), "missing.txt"), ",").Validate()
	assert.ErrorContains(t, err, "error opening")
}
