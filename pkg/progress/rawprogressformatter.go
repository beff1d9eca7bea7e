package progress

import (
	"fmt"
	"strings"
)

const streamNewline = "\n"

type counts struct {
	current, total int64
	units          string
}

func (c counts) String() string {
	if c.total <= 0 {
		return ""
	}
	s := fmt.Sprintf("[%d/%d]", c.current, c.total)
	if c.units != "" {
		s += " " + c.units
	}
	return s
}

type rawProgressFormatter struct{}

func (sf *rawProgressFormatter) formatStatus(id, message string) []byte {
	if id == "" {
		return []byte(message + streamNewline)
	}
	return []byte(id + ": " + message + streamNewline)
}

func (sf *rawProgressFormatter) formatProgress(id, action string, c counts) []byte {
	parts := make([]string, 0, 3)
	if s := c.String(); s != "" {
		parts = append(parts, s)
	}
	if id != "" {
		parts = append(parts, id+":")
	}
	parts = append(parts, action)
	return []byte(strings.Join(parts, " ") + streamNewline)
}
