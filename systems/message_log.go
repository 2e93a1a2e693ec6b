package systems

import (
	"bytes"
	"sync"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

// DefaultMaxMessages is the number of messages a log keeps
const DefaultMaxMessages = 100

// MessageLog keeps the most recent log messages for the on-screen console.
// It is an io.Writer for zerolog's JSON output and may be written from any
// goroutine.
type MessageLog struct {
	mu          sync.Mutex
	messages    []ColoredMessage
	maxMessages int
}

// NewMessageLog creates a message log holding at most maxMessages entries
func NewMessageLog(maxMessages int) *MessageLog {
	if maxMessages <= 0 {
		maxMessages = DefaultMaxMessages
	}
	return &MessageLog{maxMessages: maxMessages}
}

type logLine struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// Write parses one zerolog JSON line. Lines that are not JSON are kept as
// plain text.
func (ml *MessageLog) Write(p []byte) (int, error) {
	var line logLine
	if err := json.Unmarshal(p, &line); err != nil || line.Message == "" {
		ml.Add(string(bytes.TrimSpace(p)), zerolog.NoLevel)
		return len(p), nil
	}
	level, err := zerolog.ParseLevel(line.Level)
	if err != nil {
		level = zerolog.NoLevel
	}
	ml.Add(line.Message, level)
	return len(p), nil
}

// Add adds a message to the log
func (ml *MessageLog) Add(text string, level zerolog.Level) {
	if text == "" {
		return
	}
	ml.mu.Lock()
	defer ml.mu.Unlock()

	ml.messages = append(ml.messages, ColoredMessage{Text: text, Level: level})

	// Truncate if we have too many messages
	if len(ml.messages) > ml.maxMessages {
		ml.messages = ml.messages[len(ml.messages)-ml.maxMessages:]
	}
}

// RecentMessages gets the n most recent messages, newest first
func (ml *MessageLog) RecentMessages(n int) []ColoredMessage {
	ml.mu.Lock()
	defer ml.mu.Unlock()

	if n > len(ml.messages) {
		n = len(ml.messages)
	}
	result := make([]ColoredMessage, n)
	for i := 0; i < n; i++ {
		result[i] = ml.messages[len(ml.messages)-1-i]
	}
	return result
}

// Len returns the number of stored messages
func (ml *MessageLog) Len() int {
	ml.mu.Lock()
	defer ml.mu.Unlock()
	return len(ml.messages)
}

// Clear clears all messages
func (ml *MessageLog) Clear() {
	ml.mu.Lock()
	defer ml.mu.Unlock()
	ml.messages = nil
}
