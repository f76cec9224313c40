package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pennywiseai/smsledger/internal/common"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := parseCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestParseCommand_Transaction(t *testing.T) {
	out, err := execute(t,
		"--sender", "AD-HDFCBK-S",
		"--time", "2025-07-09T14:32:00Z",
		"Rs.500.00 debited from A/c XX0093 on 09-07-25 to VPA zomato@paytm (UPI 107829781461)")
	require.NoError(t, err)

	assert.Contains(t, out, "Parsed transaction")
	assert.Contains(t, out, "HDFC Bank")
	assert.Contains(t, out, "Zomato")
	assert.Contains(t, out, "INR 500.00")
	assert.Contains(t, out, "Hash:")
}

func TestParseCommand_MandateNotice(t *testing.T) {
	out, err := execute(t,
		"--sender", "HDFCBK",
		"E-Mandate! Rs.649.00 will be deducted on 15/07/25, 07:58:31 For Netflix mandate UMN 1a2b3c@okhdfcbank")
	require.NoError(t, err)

	assert.Contains(t, out, "Parsed mandate notice")
	assert.Contains(t, out, "Netflix")
	assert.Contains(t, out, "1a2b3c@okhdfcbank")
}

func TestParseCommand_NotTransactional(t *testing.T) {
	out, err := execute(t,
		"--sender", "AD-HDFCBK-S",
		"Your OTP is 123456. Do not share it with anyone.")
	require.NoError(t, err)

	assert.Contains(t, out, "Not a transactional message")
	assert.Contains(t, out, "HDFC Bank")
}

func TestParseCommand_EmptyBody(t *testing.T) {
	_, err := execute(t, "--sender", "HDFCBK", "   ")
	require.ErrorIs(t, err, common.ErrEmptyMessage)
}

func TestParseCommand_BadTimeFlag(t *testing.T) {
	_, err := execute(t, "--sender", "HDFCBK", "--time", "yesterday", "Rs.10 debited")
	require.Error(t, err)
}

func TestBanksCommand_ListsDispatchOrder(t *testing.T) {
	cmd := banksCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	require.NoError(t, cmd.Execute())

	s := out.String()
	assert.Contains(t, s, "HDFC Bank")
	assert.Contains(t, s, "Canara Bank")
	// Generic fallback is always last.
	assert.Regexp(t, `Unknown Bank\s*$`, s)
}
