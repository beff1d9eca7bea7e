package progress

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pcj/mobyprogress"
	"github.com/stretchr/testify/require"
)

var _ mobyprogress.Output = (*progressOutput)(nil)

func TestProgressOutput(t *testing.T) {
	for name, tc := range map[string]struct {
		units string
		write func(out Output) error
		want  string
	}{
		"message": {
			write: func(out Output) error {
				return Message(out, "a.exe", "done")
			},
			want: "a.exe: done\n",
		},
		"messagef without id": {
			write: func(out Output) error {
				return Messagef(out, "", "%d images", 3)
			},
			want: "3 images\n",
		},
		"update with counts": {
			units: "images",
			write: func(out Output) error {
				return Update(out, "a.exe", "reading", 1, 3)
			},
			want: "[1/3] images a.exe: reading\n",
		},
		"updatef without total": {
			write: func(out Output) error {
				return Updatef(out, "b.so", 0, 0, "resolved %d names", 12)
			},
			want: "b.so: resolved 12 names\n",
		},
		"units override": {
			units: "images",
			write: func(out Output) error {
				return out.WriteProgress(Progress{ID: "x", Action: "load", Current: 2, Total: 4, Units: "tables"})
			},
			want: "[2/4] tables x: load\n",
		},
		"last update": {
			write: func(out Output) error {
				return out.WriteProgress(Progress{Action: "finished", LastUpdate: true})
			},
			want: "finished\n\n",
		},
	} {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, tc.write(NewProgressOutput(&buf, tc.units)))
			if diff := cmp.Diff(tc.want, buf.String()); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestDiscard(t *testing.T) {
	require.NoError(t, Message(Discard, "a", "b"))
}
