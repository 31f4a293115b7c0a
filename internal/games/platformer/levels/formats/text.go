package formats

import (
	"errors"
	"strings"
)

// ParseText parses a plain-text plan: one row per line. The ID and name are
// both taken from the file name. Trailing blank lines and carriage returns
// are dropped; blank lines inside the plan are kept as empty rows.
func ParseText(path string, data []byte) (Level, error) {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	rows := strings.Split(text, "\n")
	for len(rows) > 0 && strings.TrimSpace(rows[len(rows)-1]) == "" {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 {
		return Level{}, errors.New("text: plan is empty")
	}

	id := IDFromPath(path)
	return Level{ID: id, Name: id, Plan: rows}, nil
}
