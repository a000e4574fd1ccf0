// Package pgm is an in-memory toolkit for discrete probabilistic graphical
// models, built bottom-up from a dense tensor to the factor algebra that
// inference algorithms call as a primitive.
//
// What is inside:
//
//	tensor/   - dense row-major N-dimensional float64 arrays: expand, permute,
//	            slice, reduce and broadcast-multiply axes
//	factor/   - discrete factors: construction, indexed access, join,
//	            evidence, marginalization, normalization, copy and equality
//	render/   - bordered-grid rendering of a factor's joint assignments
//	examples/ - runnable programs (sprinkler: posterior queries on a
//	            four-node Bayesian network)
//
// Quick example:
//
//	space := factor.OutcomeSpace[string, int]{"A": {0, 1}, "B": {0, 1}}
//	fa, _ := factor.New([]string{"A"}, space)
//	fb, _ := factor.New([]string{"B"}, space)
//	ab, _ := fa.Join(fb)        // 4 cells of 0.25 over (A, B)
//	a, _ := ab.Marginalize("B") // 2 cells of 0.5 over (A)
//	fmt.Println(render.Table(a))
//
// Pure Go, single-threaded values, sentinel errors matched with errors.Is.
//
//	go get github.com/katalvlaran/pgm
package pgm
