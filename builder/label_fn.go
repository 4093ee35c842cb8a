// Package builder provides helper functions and types for labelling the
// intersections created by graph constructors.
package builder

import (
	"fmt"
	"strconv"

	"github.com/brianvoe/gofakeit"
)

// LabelFn generates a node label from its zero-based construction index.
// It must be deterministic for a given idx (StreetLabelFn is deterministic
// per gofakeit seed).
type LabelFn func(idx int) string

// DefaultLabelFn returns "V<idx>", e.g. 0→"V0".
func DefaultLabelFn(idx int) string {
	return "V" + strconv.Itoa(idx)
}

// PrefixLabelFn returns prefix + decimal index, e.g. "junction-3".
func PrefixLabelFn(prefix string) LabelFn {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}

// ExcelColumnLabelFn returns the spreadsheet-column name for idx,
// e.g. 0→"A", 25→"Z", 26→"AA". Panics if idx < 0.
func ExcelColumnLabelFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnLabelFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// StreetLabelFn returns a fake street name such as "Oak Avenue #12".
// The index suffix keeps labels unique.
func StreetLabelFn(idx int) string {
	return fmt.Sprintf("%s %s #%d", gofakeit.StreetName(), gofakeit.StreetSuffix(), idx)
}

// gridLabel is the Grid fallback: "(r,c)".
func gridLabel(cols int) LabelFn {
	return func(idx int) string {
		return fmt.Sprintf("(%d,%d)", idx/cols, idx%cols)
	}
}

// clusterLabel is the Clustered fallback: "C<cluster>_V<idx>".
func clusterLabel(perCluster int) LabelFn {
	return func(idx int) string {
		return fmt.Sprintf("C%d_V%d", idx/perCluster, idx)
	}
}
