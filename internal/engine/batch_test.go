package engine

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pennywiseai/smsledger/internal/common"
)

func writeBatchFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "messages.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadMessages_ValidFile(t *testing.T) {
	path := writeBatchFile(t, `
{"sender":"AD-HDFCBK-S","body":"Rs.500.00 debited from A/c XX0093","timestamp":"2025-07-09T14:32:00Z"}

{"sender":"SBIUPI","body":"Rs.199.00 debited","timestamp":"2025-07-10T09:00:00+05:30"}
`)

	messages, err := LoadMessages(path)
	require.NoError(t, err)
	require.Len(t, messages, 2)

	assert.Equal(t, "AD-HDFCBK-S", messages[0].Sender)
	assert.Equal(t, time.Date(2025, 7, 9, 14, 32, 0, 0, time.UTC), messages[0].Timestamp)
	assert.Equal(t, "SBIUPI", messages[1].Sender)
}

func TestLoadMessages_MalformedLineFailsLoad(t *testing.T) {
	path := writeBatchFile(t, `{"sender":"HDFCBK","body":"ok","timestamp":"2025-07-09T14:32:00Z"}
not json at all
`)

	_, err := LoadMessages(path)
	require.ErrorIs(t, err, common.ErrBadBatchFile)
	assert.Contains(t, err.Error(), "line 2")
}

func TestLoadMessages_MissingFields(t *testing.T) {
	path := writeBatchFile(t, `{"sender":"","body":"hello","timestamp":"2025-07-09T14:32:00Z"}`)

	_, err := LoadMessages(path)
	require.ErrorIs(t, err, common.ErrBadBatchFile)
}

func TestLoadMessages_BadTimestamp(t *testing.T) {
	path := writeBatchFile(t, `{"sender":"HDFCBK","body":"hello","timestamp":"09-07-2025"}`)

	_, err := LoadMessages(path)
	require.ErrorIs(t, err, common.ErrBadBatchFile)
}

func TestLoadMessages_MissingFile(t *testing.T) {
	_, err := LoadMessages(filepath.Join(t.TempDir(), "nope.jsonl"))
	require.Error(t, err)
}
