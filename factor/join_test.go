// SPDX-License-Identifier: MIT

package factor_test

import (
	"testing"

	"github.com/katalvlaran/pgm/factor"
	"github.com/stretchr/testify/require"
)

// TestJoinUniformScenario is the two-binary-variable walk-through:
// uniform A ⋈ uniform B is 0.25 everywhere, and summing B out gives 0.5.
func TestJoinUniformScenario(t *testing.T) {
	sp := factor.OutcomeSpace[string, int]{"A": {0, 1}, "B": {0, 1}}
	fa, err := factor.New([]string{"A"}, sp)
	require.NoError(t, err)
	fb, err := factor.New([]string{"B"}, sp)
	require.NoError(t, err)

	ab, err := fa.Join(fb)
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B"}, ab.Domain())
	require.Equal(t, 4, ab.Size())
	ab.Do(func(_ []int, p float64) bool {
		require.Equal(t, 0.25, p)
		return true
	})

	a, err := ab.Marginalize("B")
	require.NoError(t, err)
	require.Equal(t, []string{"A"}, a.Domain())
	require.Equal(t, 2, a.Size())
	a.Do(func(_ []int, p float64) bool {
		require.Equal(t, 0.5, p)
		return true
	})
}

// TestJoinDomainOrder checks receiver variables first, then the other's new
// variables in the other's relative order.
func TestJoinDomainOrder(t *testing.T) {
	f := MustTable(t, []string{"B", "A"}, seq(6))
	g := MustTable(t, []string{"D", "A", "C"}, seq(8))

	fg, err := f.Join(g)
	require.NoError(t, err)
	require.Equal(t, []string{"B", "A", "D", "C"}, fg.Domain())

	gf, err := g.Join(f)
	require.NoError(t, err)
	require.Equal(t, []string{"D", "A", "C", "B"}, gf.Domain())
}

// TestJoinValues checks every cell equals the product of the operands'
// cells, in both operand orders, including a reversed shared axis.
func TestJoinValues(t *testing.T) {
	cases := []struct {
		name       string
		left       []string
		right      []string
		leftSizes  int
		rightSizes int
	}{
		{"shared middle", []string{"A", "B"}, []string{"B", "C"}, 6, 6},
		{"reversed", []string{"A", "B"}, []string{"C", "B"}, 6, 6},
		{"disjoint", []string{"A"}, []string{"B", "C"}, 2, 6},
		{"identical", []string{"A", "B"}, []string{"A", "B"}, 6, 6},
		{"permuted", []string{"A", "B", "C"}, []string{"C", "A", "B"}, 12, 12},
		{"subset", []string{"A", "B", "C"}, []string{"B"}, 12, 3},
		{"scalar", []string{"A", "B"}, nil, 6, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := MustTable(t, tc.left, seq(tc.leftSizes))
			g := MustTable(t, tc.right, seq(tc.rightSizes))
			for _, joined := range []func() (*F, error){
				func() (*F, error) { return f.Join(g) },
				func() (*F, error) { return g.Join(f) },
			} {
				fg, err := joined()
				require.NoError(t, err)
				RequireAligned(t, fg)
				for _, a := range Assignments(fg) {
					want := MustGet(t, f, a) * MustGet(t, g, a)
					require.Equal(t, want, MustGet(t, fg, a), "assignment %v", a)
				}
			}
		})
	}
}

// TestJoinKeepsEvidence joins a factor restricted by evidence with a factor
// whose space lists the full sequence of the observed variable but whose
// domain does not contain it. The observed axis must keep its single outcome.
func TestJoinKeepsEvidence(t *testing.T) {
	a := MustTable(t, []string{"A"}, []float64{0.3, 0.7}).Observe("A", 1)
	b, err := factor.New([]string{"B"}, space())
	require.NoError(t, err)

	ab, err := a.Join(b)
	require.NoError(t, err)
	ba, err := b.Join(a)
	require.NoError(t, err)

	for _, fg := range []*F{ab, ba} {
		RequireAligned(t, fg)
		seq, ok := fg.Outcomes("A")
		require.True(t, ok)
		require.Equal(t, []int{1}, seq)
		for _, asg := range Assignments(fg) {
			require.Equal(t, 1, asg["A"])
			require.InDelta(t, 0.7/3, MustGet(t, fg, asg), 1e-12)
		}
		require.InDelta(t, 0.7, fg.Sum(), 1e-12)

		// repeating the evidence on the result is a no-op
		require.True(t, fg.Observe("A", 1).Equal(fg))
	}
	require.True(t, ab.Equivalent(ba))

	_, err = ab.Get(0, 0)
	require.ErrorIs(t, err, factor.ErrUnknownOutcome)
}

// TestJoinCommutative compares A⋈B and B⋈A up to domain order.
func TestJoinCommutative(t *testing.T) {
	f := MustTable(t, []string{"A", "B"}, seq(6))
	g := MustTable(t, []string{"C", "B"}, seq(6))

	fg, err := f.Join(g)
	require.NoError(t, err)
	gf, err := g.Join(f)
	require.NoError(t, err)

	require.False(t, fg.Equal(gf), "domain order differs")
	require.True(t, fg.Equivalent(gf))
}

// TestJoinAssociative compares (A⋈B)⋈C with A⋈(B⋈C).
func TestJoinAssociative(t *testing.T) {
	f := MustTable(t, []string{"A", "B"}, seq(6))
	g := MustTable(t, []string{"B", "C"}, seq(6))
	h := MustTable(t, []string{"D", "A"}, seq(4))

	fg, err := f.Join(g)
	require.NoError(t, err)
	left, err := fg.Join(h)
	require.NoError(t, err)

	gh, err := g.Join(h)
	require.NoError(t, err)
	right, err := f.Join(gh)
	require.NoError(t, err)

	require.True(t, left.Equivalent(right))
	for _, a := range Assignments(left) {
		require.InDelta(t, MustGet(t, left, a), MustGet(t, right, a), 1e-12)
	}
}

// TestJoinDoesNotMutateOperands verifies value semantics.
func TestJoinDoesNotMutateOperands(t *testing.T) {
	f := MustTable(t, []string{"A", "B"}, seq(6))
	g := MustTable(t, []string{"B", "C"}, seq(6))
	f0, g0 := f.Copy(), g.Copy()

	fg, err := f.Join(g)
	require.NoError(t, err)
	require.NoError(t, fg.Set(0, 0, 0, 0))
	fg.Normalize()

	require.True(t, f.Equal(f0))
	require.True(t, g.Equal(g0))
}

// TestJoinIncompatible requires evidence to be applied to both sides.
func TestJoinIncompatible(t *testing.T) {
	f := MustTable(t, []string{"A", "B"}, seq(6))
	g := MustTable(t, []string{"B", "C"}, seq(6))

	_, err := f.Observe("B", 2).Join(g)
	require.ErrorIs(t, err, factor.ErrIncompatibleOutcomeSpace)

	fg, err := f.Observe("B", 2).Join(g.Observe("B", 2))
	require.NoError(t, err)
	require.Equal(t, 4, fg.Size())
	b, _ := fg.Outcomes("B")
	require.Equal(t, []int{2}, b)

	// same values, different order is still incompatible
	rev := space()
	rev["B"] = []int{2, 1, 0}
	h, err := factor.NewWithTable([]string{"B"}, rev, seq(3))
	require.NoError(t, err)
	_, err = f.Join(h)
	require.ErrorIs(t, err, factor.ErrIncompatibleOutcomeSpace)

	_, err = f.Join(nil)
	require.ErrorIs(t, err, factor.ErrNilFactor)
}

// TestJoinMergesOutcomeSpace checks the union of both spaces.
func TestJoinMergesOutcomeSpace(t *testing.T) {
	left := factor.OutcomeSpace[string, int]{"A": {0, 1}}
	right := factor.OutcomeSpace[string, int]{"B": {0, 1, 2}, "X": {4}}
	f, err := factor.New([]string{"A"}, left)
	require.NoError(t, err)
	g, err := factor.New([]string{"B"}, right)
	require.NoError(t, err)

	fg, err := f.Join(g)
	require.NoError(t, err)
	sp := fg.OutcomeSpace()
	require.Len(t, sp, 3)
	require.Equal(t, []int{4}, sp["X"])
}

func TestProduct(t *testing.T) {
	f := MustTable(t, []string{"A", "B"}, seq(6))
	g := MustTable(t, []string{"B", "C"}, seq(6))
	h := MustTable(t, []string{"D"}, seq(2))

	p, err := factor.Product(f, g, h)
	require.NoError(t, err)
	fg, err := f.Join(g)
	require.NoError(t, err)
	want, err := fg.Join(h)
	require.NoError(t, err)
	require.True(t, p.Equal(want))

	single, err := factor.Product(f)
	require.NoError(t, err)
	require.True(t, single.Equal(f))
	require.NotSame(t, f, single)

	_, err = factor.Product[string, int]()
	require.ErrorIs(t, err, factor.ErrNoFactors)

	_, err = factor.Product(f, nil)
	require.ErrorIs(t, err, factor.ErrNilFactor)

	_, err = factor.Product(f.Observe("B", 0), g)
	require.ErrorIs(t, err, factor.ErrIncompatibleOutcomeSpace)
}
