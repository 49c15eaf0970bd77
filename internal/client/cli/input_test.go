package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("coffee with milk\n"), "Description?", &out)
	require.NoError(t, err)
	assert.Equal(t, "coffee with milk", got)
	assert.Contains(t, out.String(), "Description?")
}

func TestGetSimpleText_EOFReturnsPartialLine(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "?", &out)
	require.NoError(t, err)
	assert.Equal(t, "lastline", got)
}

func TestGetDefaultedText(t *testing.T) {
	t.Run("empty input falls back to default", func(t *testing.T) {
		var out bytes.Buffer
		got, err := GetDefaultedText(rdr("\n"), "Enter email", "alice@example.org", &out)
		require.NoError(t, err)
		assert.Equal(t, "alice@example.org", got)
		assert.Contains(t, out.String(), "[alice@example.org]")
	})

	t.Run("typed input wins over default", func(t *testing.T) {
		var out bytes.Buffer
		got, err := GetDefaultedText(rdr("bob@example.org\n"), "Enter email", "alice@example.org", &out)
		require.NoError(t, err)
		assert.Equal(t, "bob@example.org", got)
	})

	t.Run("no default behaves like plain prompt", func(t *testing.T) {
		var out bytes.Buffer
		got, err := GetDefaultedText(rdr("x\n"), "Enter email", "", &out)
		require.NoError(t, err)
		assert.Equal(t, "x", got)
		assert.NotContains(t, out.String(), "[")
	})
}

func TestGetPassword_ErrorFromTerminal(t *testing.T) {
	old := readPassword
	t.Cleanup(func() { readPassword = old })
	readPassword = func(int) ([]byte, error) { return nil, errors.New("boom") }

	var out bytes.Buffer
	_, err := GetPassword(&out)
	require.Error(t, err)
}

func TestGetMultiline_StopsOnEmptyLine(t *testing.T) {
	var out bytes.Buffer
	got, err := GetMultiline(rdr("spent 500 on groceries\nyesterday\n\n"), "Transcript", &out)
	require.NoError(t, err)
	assert.Equal(t, "spent 500 on groceries\nyesterday", got)
}

func TestGetMultiline_ImmediateBlankIsEmpty(t *testing.T) {
	var out bytes.Buffer
	got, err := GetMultiline(rdr("\n"), "Transcript", &out)
	require.NoError(t, err)
	assert.Empty(t, got)
}
