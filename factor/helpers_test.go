// SPDX-License-Identifier: MIT
// Package factor_test contains test helpers.
//
// Fixtures use string variables and int outcomes:
//   A ∈ {0,1}, B ∈ {0,1,2}, C ∈ {0,1}, D ∈ {0,1}.

package factor_test

import (
	"testing"

	"github.com/katalvlaran/pgm/factor"
	"github.com/stretchr/testify/require"
)

type F = factor.Factor[string, int]

func space() factor.OutcomeSpace[string, int] {
	return factor.OutcomeSpace[string, int]{
		"A": {0, 1},
		"B": {0, 1, 2},
		"C": {0, 1},
		"D": {0, 1},
	}
}

// seq returns [1, 2, ..., n] as float64.
func seq(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i + 1)
	}

	return out
}

// MustTable builds a factor over domain filled with values or fails the test.
func MustTable(t *testing.T, domain []string, values []float64, opts ...factor.Option) *F {
	t.Helper()
	f, err := factor.NewWithTable(domain, space(), values, opts...)
	require.NoError(t, err)

	return f
}

// MustGet reads the entry for assignment (variable → outcome), building the
// argument list in f's own domain order.
func MustGet(t *testing.T, f *F, assignment map[string]int) float64 {
	t.Helper()
	args := make([]int, 0, f.Rank())
	for _, v := range f.Domain() {
		o, ok := assignment[v]
		require.True(t, ok, "assignment misses %q", v)
		args = append(args, o)
	}
	p, err := f.Get(args...)
	require.NoError(t, err)

	return p
}

// RequireAligned asserts that every table axis is as long as the outcome
// sequence of its variable.
func RequireAligned(t *testing.T, f *F) {
	t.Helper()
	shape := f.Table().Shape()
	require.Len(t, shape, f.Rank())
	for i, v := range f.Domain() {
		seq, ok := f.Outcomes(v)
		require.True(t, ok, "no outcomes for %q", v)
		require.Len(t, seq, shape[i], "axis %d (%q)", i, v)
	}
}

// Assignments collects every joint assignment of f as variable → outcome maps.
func Assignments(f *F) []map[string]int {
	domain := f.Domain()
	var out []map[string]int
	f.Do(func(assignment []int, _ float64) bool {
		m := make(map[string]int, len(domain))
		for i, v := range domain {
			m[v] = assignment[i]
		}
		out = append(out, m)
		return true
	})

	return out
}
