package session

import (
	"strings"
	"time"
)

// Tone controls the color of a line in the message box.
type Tone uint8

const (
	Narration Tone = iota // white
	Speech                // yellow
	Notice                // cyan
	Alarm                 // red
)

// Message is one wrapped line of the message box.
type Message struct {
	Text string
	Tone Tone
}

// MessageLog is a bounded FIFO of wrapped lines.
type MessageLog struct {
	Messages []Message
	maxSize  int
	width    int
}

// NewMessageLog creates a log keeping the most recent maxSize lines, each at
// most width characters. Both are at least 1.
func NewMessageLog(maxSize, width int) *MessageLog {
	maxSize, width = max(maxSize, 1), max(width, 1)
	return &MessageLog{
		Messages: make([]Message, 0, maxSize),
		maxSize:  maxSize,
		width:    width,
	}
}

// Add wraps text and appends the lines, evicting the oldest if full.
func (l *MessageLog) Add(text string, tone Tone) {
	for _, line := range wrapText(text, l.width) {
		msg := Message{Text: line, Tone: tone}
		if len(l.Messages) >= l.maxSize {
			copy(l.Messages, l.Messages[1:])
			l.Messages[len(l.Messages)-1] = msg
		} else {
			l.Messages = append(l.Messages, msg)
		}
	}
}

// Recent returns the last n lines (or fewer if the log is shorter).
func (l *MessageLog) Recent(n int) []Message {
	n = min(n, len(l.Messages))
	return l.Messages[len(l.Messages)-n:]
}

// Clear drops every line.
func (l *MessageLog) Clear() {
	l.Messages = l.Messages[:0]
}

// wrapText splits s into lines no longer than width. Words longer than width
// are cut.
func wrapText(s string, width int) []string {
	width = max(width, 1)
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	line := ""
	for _, w := range words {
		for len(w) > width {
			if line != "" {
				lines = append(lines, line)
				line = ""
			}
			lines = append(lines, w[:width])
			w = w[width:]
		}
		switch {
		case line == "":
			line = w
		case len(line)+1+len(w) > width:
			lines = append(lines, line)
			line = w
		default:
			line += " " + w
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

// IsHalfSecond reports whether elapsed falls in the first half of a second.
// Prompts blink with it.
func IsHalfSecond(elapsed time.Duration) bool {
	return elapsed%time.Second <= time.Second/2
}

// IsQuarterSecond is IsHalfSecond at twice the rate.
func IsQuarterSecond(elapsed time.Duration) bool {
	const period = time.Second / 2
	return elapsed%period <= period/2
}
