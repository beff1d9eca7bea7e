package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

// FileSpec describes a file to create for a test.
type FileSpec struct {
	// Path is relative to the directory the file is written under.
	Path    string
	Content string
	// NotExist reserves the name without creating the file.
	NotExist bool
}

// MustWriteTestFiles writes files under dir in fs and returns their paths.
func MustWriteTestFiles(t *testing.T, fs afero.Fs, dir string, files []FileSpec) []string {
	t.Helper()
	var filenames []string
	for _, file := range files {
		abs := filepath.Join(dir, file.Path)
		if err := fs.MkdirAll(filepath.Dir(abs), os.ModePerm); err != nil {
			t.Fatal(err)
		}
		if !file.NotExist {
			if err := afero.WriteFile(fs, abs, []byte(file.Content), 0o644); err != nil {
				t.Fatal(err)
			}
		}
		filenames = append(filenames, abs)
	}
	return filenames
}

// MustReadTestFile returns the content of dir/filename in fs.
func MustReadTestFile(t *testing.T, fs afero.Fs, dir string, filename string) string {
	t.Helper()
	data, err := afero.ReadFile(fs, filepath.Join(dir, filename))
	if err != nil {
		ListFiles(t, fs, dir)
		t.Fatal("reading", filename, ":", err)
	}
	return string(data)
}

// EqualError reports whether errors a and b are considered equal.
// They're equal if both are nil, or both are not nil and a.Error() == b.Error().
func EqualError(a, b error) bool {
	return a == nil && b == nil || a != nil && b != nil && a.Error() == b.Error()
}

// ExpectError asserts that the errors are equal.  Return value is true
// if the "want" argument is non-nil.
func ExpectError(t *testing.T, want, got error) bool {
	t.Helper()
	if !EqualError(want, got) {
		t.Fatal("errors: want:", want, "got:", got)
	}
	return want != nil
}

// ListFiles is a convenience debugging function to log the files under a given dir.
func ListFiles(t *testing.T, fs afero.Fs, dir string) {
	t.Log("Listing files under:", dir)
	if err := afero.Walk(fs, dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		t.Log(path)
		return nil
	}); err != nil {
		t.Fatal(err)
	}
}
