// Package progress reports per-image progress lines for the addrnames
// command.
package progress

import (
	"fmt"

	"github.com/pcj/mobyprogress"
)

// Progress is one update about the unit of work identified by ID.  An
// update carries a Message or the Current/Total counts of an Action.
type Progress = mobyprogress.Progress

// Output receives progress updates.
type Output = mobyprogress.Output

// Update is a convenience function to write a progress update.
func Update(out Output, id, action string, current, total int64) error {
	return out.WriteProgress(Progress{ID: id, Action: action, Current: current, Total: total})
}

// Updatef is a convenience function to write a printf-formatted progress
// update.
func Updatef(out Output, id string, current, total int64, format string, a ...any) error {
	return Update(out, id, fmt.Sprintf(format, a...), current, total)
}

// Message is a convenience function to write a progress message.
func Message(out Output, id, message string) error {
	return out.WriteProgress(Progress{ID: id, Message: message})
}

// Messagef is a convenience function to write a printf-formatted progress
// message.
func Messagef(out Output, id, format string, a ...any) error {
	return Message(out, id, fmt.Sprintf(format, a...))
}

// Discard is an Output that drops every update.
var Discard Output = discard{}

type discard struct{}

func (discard) WriteProgress(Progress) error { return nil }
