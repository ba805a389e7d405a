package types

import (
	"encoding/json"
	"fmt"
)

// Level grades a Result message for the client.
type Level string

const (
	LevelSuccess Level = "success"
	LevelWarn    Level = "warn"
	LevelError   Level = "error"
)

// Message is a client-facing message with a level. It serializes as the
// two-element array ["text", "level"] the web client expects.
type Message struct {
	Text  string
	Level Level
}

// MarshalJSON implements the json.Marshaler interface.
func (m Message) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{m.Text, string(m.Level)})
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (m *Message) UnmarshalJSON(data []byte) error {
	var pair []string
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("message: expected [text, level], got %d elements", len(pair))
	}
	m.Text = pair[0]
	m.Level = Level(pair[1])
	return nil
}

// Result is the uniform envelope for every domain operation. Expected domain
// outcomes (not-found, conflicts, no-op updates) are carried here as values;
// only infrastructure failures travel as Go errors.
type Result struct {
	Success bool        `json:"success"`
	Message Message     `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success builds a successful Result.
func Success(text string, data interface{}) Result {
	return Result{
		Success: true,
		Message: Message{Text: text, Level: LevelSuccess},
		Data:    data,
	}
}

// Failure builds an unsuccessful Result at the given level. Data is optional
// and used when the caller should see the conflicting record.
func Failure(text string, level Level, data interface{}) Result {
	return Result{
		Success: false,
		Message: Message{Text: text, Level: level},
		Data:    data,
	}
}
