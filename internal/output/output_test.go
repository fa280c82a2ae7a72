package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mortcalc/mortcalc/internal/domain"
)

func sampleResult() *domain.Result {
	res := &domain.Result{
		Calculator: "refinance",
		Summary:    "Refinancing saves $394/month and pays for itself in 1 year 4 months.",
	}
	res.AddUSD("monthlySavings", "Monthly Savings", decimal.RequireFromString("394.34"))
	res.AddPercent("newRate", "New Interest Rate", decimal.RequireFromString("6.25"))
	res.AddMonths("breakEvenMonths", "Break-Even Point", 16)
	res.AddText("note", "Note", "Rate and term refinance")
	res.Insights = []string{"Staying past the break-even point nets real savings."}
	return res
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "$0.00"},
		{"1234567.891", "$1,234,567.89"},
		{"-2500.5", "-$2,500.50"},
		{"999", "$999.00"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, FormatCurrency(decimal.RequireFromString(tc.in)))
	}
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Break Even Months", TitleCase("breakEvenMonths"))
	assert.Equal(t, "Loan Amount", TitleCase("loanAmount"))
	assert.Equal(t, "X", TitleCase("x"))
}

func TestConsoleFormatter_RendersAllSections(t *testing.T) {
	var buf bytes.Buffer
	err := NewConsoleFormatter().Write(&buf, "Refinance Break-Even", sampleResult())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "REFINANCE BREAK-EVEN")
	assert.Contains(t, out, "$394.34")
	assert.Contains(t, out, "6.25%")
	assert.Contains(t, out, "1 yr 4 mo")
	assert.Contains(t, out, "Rate and term refinance")
	assert.Contains(t, out, "* Staying past the break-even point")
}

func TestConsoleFormatter_NilResult(t *testing.T) {
	var buf bytes.Buffer
	err := NewConsoleFormatter().Write(&buf, "Anything", nil)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No result")
}

func TestJSONFormatter_RoundTripsUnits(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONFormatter().Write(&buf, sampleResult()))

	var decoded domain.Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "refinance", decoded.Calculator)
	require.Len(t, decoded.Details, 4)
	assert.Equal(t, domain.UnitUSD, decoded.Details[0].Unit, "units must be explicit in the wire format")
}

func TestEmailFormatter_RendersBody(t *testing.T) {
	var buf bytes.Buffer
	err := NewEmailFormatter().Write(&buf, "Refinance Break-Even", sampleResult(),
		map[string]string{"currentBalance": "320000"})
	require.NoError(t, err)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "Refinance Break-Even")
	assert.Contains(t, out, "$394.34")
	assert.Contains(t, out, "Current Balance")
}

func TestEmailFormatter_InputsFooterSorted(t *testing.T) {
	inputs := map[string]string{
		"newRate":        "6.25",
		"currentBalance": "320000",
		"closingCosts":   "6000",
	}

	var first bytes.Buffer
	require.NoError(t, NewEmailFormatter().Write(&first, "Refinance", sampleResult(), inputs))

	out := first.String()
	closing := strings.Index(out, "Closing Costs")
	balance := strings.Index(out, "Current Balance")
	rate := strings.Index(out, "New Rate")
	require.Positive(t, closing)
	assert.Less(t, closing, balance, "footer rows follow key order")
	assert.Less(t, balance, rate)

	for i := 0; i < 5; i++ {
		var again bytes.Buffer
		require.NoError(t, NewEmailFormatter().Write(&again, "Refinance", sampleResult(), inputs))
		assert.Equal(t, out, again.String(), "same inputs must render the same document")
	}
}

func TestEmailFormatter_NilResultErrors(t *testing.T) {
	var buf bytes.Buffer
	err := NewEmailFormatter().Write(&buf, "Anything", nil, nil)
	assert.Error(t, err)
}
