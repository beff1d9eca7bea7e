package testutil

import (
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
)

func TestMustWriteTestFiles(t *testing.T) {
	fs := afero.NewMemMapFs()
	got := MustWriteTestFiles(t, fs, "/work", []FileSpec{
		{Path: "names.hcl", Content: `function "f" { start = "0x10" }`},
		{Path: "ords/kernel32.ord", Content: "1 Beep\n"},
		{Path: "ords/user32.ord", NotExist: true},
	})

	assert.Equal(t, []string{"/work/names.hcl", "/work/ords/kernel32.ord", "/work/ords/user32.ord"}, got)
	assert.Equal(t, "1 Beep\n", MustReadTestFile(t, fs, "/work/ords", "kernel32.ord"))

	exists, err := afero.Exists(fs, "/work/ords/user32.ord")
	assert.NoError(t, err)
	assert.False(t, exists)
}

func TestEqualError(t *testing.T) {
	for name, tc := range map[string]struct {
		a, b error
		want bool
	}{
		"both nil":   {want: true},
		"one nil":    {a: errors.New("x")},
		"same text":  {a: errors.New("x"), b: errors.New("x"), want: true},
		"other text": {a: errors.New("x"), b: errors.New("y")},
	} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, EqualError(tc.a, tc.b))
		})
	}
}

func TestNewTestLogger(t *testing.T) {
	log := NewTestLogger(t)
	log.Debug().Str("lib", "kernel32").Msg("visible with -v")
}
