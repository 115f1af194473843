// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"strconv"
)

// IDFn names the vertex at zero-based position idx of a constructor.
// Names become original vertex names in the graph's Universe, so an IDFn
// must be injective and deterministic.
type IDFn func(idx int) string

// DefaultIDFn names vertices "0", "1", ...
func DefaultIDFn(idx int) string {
	mustIndex("DefaultIDFn", idx)

	return strconv.Itoa(idx)
}

// SymbolIDFn names vertices "A".."Z". Panics outside [0,25]; use
// ExcelColumnIDFn for longer sequences.
func SymbolIDFn(idx int) string {
	mustIndex("SymbolIDFn", idx)
	if idx >= 26 {
		panic(fmt.Sprintf("builder: SymbolIDFn(%d): only 26 letters", idx))
	}

	return string(rune('A' + idx))
}

// ExcelColumnIDFn continues SymbolIDFn past "Z" the way spreadsheet
// columns do: 25→"Z", 26→"AA", 701→"ZZ".
func ExcelColumnIDFn(idx int) string {
	mustIndex("ExcelColumnIDFn", idx)
	// bijective base 26, filled from the right
	var buf [16]byte
	pos := len(buf)
	for n := idx + 1; n > 0; n = (n - 1) / 26 {
		pos--
		buf[pos] = byte('A' + (n-1)%26)
	}

	return string(buf[pos:])
}

// PrefixIDFn names vertices prefix+"0", prefix+"1", ...
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string {
		mustIndex("PrefixIDFn", idx)

		return prefix + strconv.Itoa(idx)
	}
}

func mustIndex(fn string, idx int) {
	if idx < 0 {
		panic(fmt.Sprintf("builder: %s(%d): negative index", fn, idx))
	}
}

// WithSymbolIDs selects SymbolIDFn.
func WithSymbolIDs() BuilderOption { return WithIDScheme(SymbolIDFn) }

// WithExcelColumnIDs selects ExcelColumnIDFn.
func WithExcelColumnIDs() BuilderOption { return WithIDScheme(ExcelColumnIDFn) }

// WithPrefixIDs selects PrefixIDFn(prefix).
func WithPrefixIDs(prefix string) BuilderOption { return WithIDScheme(PrefixIDFn(prefix)) }
