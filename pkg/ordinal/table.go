package ordinal

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Table maps an import ordinal to the function name exported under it.
type Table map[uint64]string

// Lookup returns the name stored for ord.  An ordinal declared without a
// name is reported as unresolved.
func (t Table) Lookup(ord uint64) (string, bool) {
	name, ok := t[ord]
	if !ok || name == "" {
		return "", false
	}
	return name, true
}

// maxLineLen bounds the length of a table line.  Longer lines are skipped.
const maxLineLen = 64 << 10

// Parse reads an ordinal table.  Each line holds a whitespace separated
// `<ordinal> <functionName>` pair.  Lines whose first field is not a
// non-negative integer are skipped, as are lines longer than maxLineLen.
// When an ordinal is declared more than once the last declaration wins.
func Parse(r io.Reader) (Table, error) {
	table := make(Table)
	br := bufio.NewReaderSize(r, maxLineLen)
	for {
		line, isPrefix, err := br.ReadLine()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading ordinal table: %w", err)
		}
		if isPrefix {
			for isPrefix && err == nil {
				_, isPrefix, err = br.ReadLine()
			}
			if err == io.EOF {
				break
			}
			if err != nil {
				return nil, fmt.Errorf("reading ordinal table: %w", err)
			}
			continue
		}

		fields := strings.Fields(string(line))
		if len(fields) == 0 {
			continue
		}
		ord, err := strconv.ParseUint(fields[0], 10, 64)
		if err != nil {
			continue
		}
		var name string
		if len(fields) > 1 {
			name = fields[1]
		}
		table[ord] = name
	}
	return table, nil
}

// NormalizeLibrary turns an import library name into the identifier used
// to locate its ordinal table: lower case, without a trailing ".dll".
func NormalizeLibrary(name string) string {
	return strings.TrimSuffix(strings.ToLower(name), ".dll")
}
