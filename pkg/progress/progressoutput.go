package progress

import (
	"io"
)

// NewProgressOutput returns an Output that writes one line per update to
// out.
func NewProgressOutput(out io.Writer, units string) Output {
	return &progressOutput{sf: &rawProgressFormatter{}, out: out, units: units, newLines: true}
}

type progressOutput struct {
	sf       *rawProgressFormatter
	out      io.Writer
	units    string
	newLines bool
}

// WriteProgress formats a progress update.
func (out *progressOutput) WriteProgress(prog Progress) error {
	var formatted []byte
	if prog.Message != "" {
		formatted = out.sf.formatStatus(prog.ID, prog.Message)
	} else {
		units := prog.Units
		if units == "" {
			units = out.units
		}
		formatted = out.sf.formatProgress(prog.ID, prog.Action, counts{current: prog.Current, total: prog.Total, units: units})
	}
	if _, err := out.out.Write(formatted); err != nil {
		return err
	}

	if out.newLines && prog.LastUpdate {
		_, err := out.out.Write(out.sf.formatStatus("", ""))
		return err
	}

	return nil
}
