package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	require.NotNil(t, rootCmd)
	assert.Equal(t, "mortcalc", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
}

func TestRootCommandHelp(t *testing.T) {
	cmd := rootCmd
	cmd.SetArgs([]string{"--help"})

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)

	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "calc")
	assert.Contains(t, out, "serve")
	assert.Contains(t, out, "tui")
}

func TestParseSetPairs(t *testing.T) {
	params, err := parseSetPairs([]string{"loanAmount=360000", "interestRate=6.75"})
	require.NoError(t, err)
	assert.Equal(t, "360000", params["loanAmount"])
	assert.Equal(t, "6.75", params["interestRate"])
}

func TestParseSetPairsRejectsMalformed(t *testing.T) {
	_, err := parseSetPairs([]string{"loanAmount"})
	assert.Error(t, err)

	_, err = parseSetPairs([]string{"=360000"})
	assert.Error(t, err)
}

func TestParseSetPairsKeepsEqualsInValue(t *testing.T) {
	params, err := parseSetPairs([]string{"note=a=b"})
	require.NoError(t, err)
	assert.Equal(t, "a=b", params["note"])
}
