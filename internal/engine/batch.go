package engine

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pennywiseai/smsledger/internal/common"
)

// batchLine is the on-disk form of one message in a scan batch: one JSON
// object per line, timestamp in RFC 3339.
type batchLine struct {
	Sender    string `json:"sender"`
	Body      string `json:"body"`
	Timestamp string `json:"timestamp"`
}

// LoadMessages reads a batch file of JSON-lines messages. Blank lines are
// skipped; any malformed line fails the whole load so a typo cannot
// silently drop part of a user's history.
func LoadMessages(path string) ([]Message, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open batch file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var messages []Message
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var entry batchLine
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", common.ErrBadBatchFile, lineNo, err)
		}
		if entry.Sender == "" || entry.Body == "" {
			return nil, fmt.Errorf("%w: line %d: sender and body are required", common.ErrBadBatchFile, lineNo)
		}
		ts, err := time.Parse(time.RFC3339, entry.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: bad timestamp %q", common.ErrBadBatchFile, lineNo, entry.Timestamp)
		}

		messages = append(messages, Message{
			Sender:    entry.Sender,
			Body:      entry.Body,
			Timestamp: ts,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	return messages, nil
}
