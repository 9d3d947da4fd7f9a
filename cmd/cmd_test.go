package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/cardnotation/card"
	"github.com/arcanaland/cardnotation/internal/config"
)

// run executes the root command with a fresh config home and returns stdout
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return runIn(t, t.TempDir(), args...)
}

func runIn(t *testing.T, configHome string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv(config.EnvDelimiter, "")
	t.Setenv(config.EnvLogLevel, "")
	t.Setenv(config.EnvColor, config.ColorNever)

	RootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})

	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&out)
	RootCmd.SetArgs(args)
	err := RootCmd.Execute()
	return out.String(), err
}

func TestParseCommand(t *testing.T) {
	out, err := run(t, "parse", "AS, 2H, 8C")
	require.NoError(t, err)
	assert.Equal(t, "1. ♠ Ace of Spades\n2. ♥ Two of Hearts\n3. ♣ Eight of Clubs\n", out)
}

func TestParseCommandDelimiterFlag(t *testing.T) {
	out, err := run(t, "parse", "-d", "|", "10D|KC")
	require.NoError(t, err)
	assert.Equal(t, "1. ♦ Ten of Diamonds\n2. ♣ King of Clubs\n", out)
}

func TestParseCommandError(t *testing.T) {
	_, err := run(t, "parse", "AS,,2H")
	assert.ErrorIs(t, err, card.ErrUnrecognizedCardValue)

	_, err = run(t, "parse", "AS", "2X")
	assert.ErrorIs(t, err, card.ErrUnrecognizedSuit)
}

func TestSortCommand(t *testing.T) {
	out, err := run(t, "sort", "2D,KC", "AS,AC")
	require.NoError(t, err)
	assert.Equal(t, "1. ♣ Ace of Clubs\n2. ♣ King of Clubs\n3. ♠ Ace of Spades\n4. ♦ Two of Diamonds\n", out)
}

func TestShowCommand(t *testing.T) {
	out, err := run(t, "show", "10H")
	require.NoError(t, err)
	assert.Contains(t, out, "Card:  Ten of Hearts")
	assert.Contains(t, out, "│10     │")
	assert.Contains(t, out, "│   ♥   │")

	_, err = run(t, "show", "AS2H")
	assert.ErrorIs(t, err, card.ErrTrailingText)
}

func TestValidateCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hands.txt")
	require.NoError(t, os.WriteFile(path, []byte("AS,2H\nKH,KH\n"), 0644))

	out, err := run(t, "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "is valid: 2 lists, 4 cards.")
	assert.Contains(t, out, "line 2: duplicate card King of Hearts")

	require.NoError(t, os.WriteFile(path, []byte("AS,ZZ\n"), 0644))
	out, err = run(t, "validate", path)
	assert.EqualError(t, err, "validation failed")
	assert.Contains(t, out, `1. line 1: unrecognized card value: "ZZ"`)
}

func TestConfigCommands(t *testing.T) {
	dir := t.TempDir()
	out, err := runIn(t, dir, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(dir, "cardnotation", "config.toml"))

	_, err = runIn(t, dir, "config", "set-delimiter", ";")
	require.NoError(t, err)

	out, err = runIn(t, dir, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, `delimiter = ";"`)

	out, err = runIn(t, dir, "parse", "AS;2H")
	require.NoError(t, err)
	assert.Equal(t, "1. ♠ Ace of Spades\n2. ♥ Two of Hearts\n", out)
}

func TestUseColor(t *testing.T) {
	assert.True(t, useColor(config.ColorAuto, false, true))
	assert.False(t, useColor(config.ColorAuto, false, false))
	assert.True(t, useColor(config.ColorAlways, false, false))
	assert.False(t, useColor(config.ColorAlways, true, true))
	assert.False(t, useColor(config.ColorNever, false, true))
}
