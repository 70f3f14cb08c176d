// SPDX-License-Identifier: MIT
// Package: campusnav/builder
//
// id_fn.go - external id and display name schemes.

package builder

import (
	"fmt"
	"strconv"
)

// IDFn generates an external node id from its zero-based global index.
// It must be pure: the same index always yields the same id.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal index, e.g. 0→"0", 42→"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// ExcelColumnIDFn returns spreadsheet-style column names: 0→"A", 25→"Z", 26→"AA".
// Panics if idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
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

// SymbolNumberIDFn returns prefix + decimal index, e.g. "osm0", "osm1".
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("SymbolNumberIDFn: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}

// WithSymbNumb sets the id scheme to SymbolNumberIDFn(prefix).
func WithSymbNumb(prefix string) BuilderOption {
	return WithIDScheme(SymbolNumberIDFn(prefix))
}

// WithExcelColumnIDs sets the id scheme to ExcelColumnIDFn.
func WithExcelColumnIDs() BuilderOption {
	return WithIDScheme(ExcelColumnIDFn)
}

// BuildingNames names every node "<prefix> <idx>" except those where
// idx%every == every-1, which stay unnamed. every ≤ 0 names all nodes.
func BuildingNames(prefix string, every int) func(int) string {
	return func(idx int) string {
		if every > 0 && idx%every == every-1 {
			return ""
		}
		return prefix + " " + strconv.Itoa(idx)
	}
}
