// Package factor implements discrete factors: labeled, dense, non-negative
// tables over the joint outcomes of named discrete random variables, the
// atomic unit of computation in discrete graphical models such as Bayesian
// networks.
//
// Overview:
//
//   - A Factor owns an ordered domain of variables, an OutcomeSpace giving
//     each variable's ordered admissible values, and a tensor.Dense whose
//     axis i belongs to domain[i].
//   - New builds the uniform distribution; NewWithTable and FromTensor take
//     explicit values in row-major order (last variable fastest).
//   - Get/Set address one cell by outcome values in domain order.
//
// Algebra:
//
//   - Join multiplies two factors, aligning shared variables by identity
//     rather than by axis position. The result's domain is the receiver's
//     variables followed by the other's new variables in their own order.
//     Product folds Join over many factors.
//   - Evidence (and Observe) restrict axes to observed values, keeping the
//     rank and shrinking the outcome sequence to the single value. Unknown
//     variables and unknown values are silently skipped per variable, so
//     apply the same evidence to every factor before joining them.
//   - Marginalize sums one variable out; MarginalizeOut sums several.
//   - Normalize rescales in place and returns the receiver for chaining;
//     Normalized is the pure variant. A zero-mass table becomes NaN.
//   - Copy, Equal, Permute and Equivalent cover value semantics.
//
// Every operation except Set and Normalize returns a new Factor and leaves
// its operands untouched.
//
// Error handling (sentinel errors, matched with errors.Is):
//
//   - ErrIncompatibleOutcomeSpace: Join over a shared variable whose outcome
//     sequences differ (values or order).
//   - ErrUnknownOutcome / ErrArity: indexed access with a value outside the
//     outcome sequence, or with the wrong number of values.
//   - ErrUnknownVariable, ErrDuplicateVariable, ErrDuplicateOutcome,
//     ErrTableShape, ErrInvalidValue, ErrNilFactor, ErrNoFactors.
//
// Example usage:
//
//	space := factor.OutcomeSpace[string, bool]{"Rain": {true, false}, "Wet": {true, false}}
//	prior, _ := factor.NewWithTable([]string{"Rain"}, space, []float64{0.2, 0.8})
//	cpt, _ := factor.NewWithTable([]string{"Rain", "Wet"}, space, []float64{0.9, 0.1, 0.1, 0.9})
//	joint, _ := prior.Join(cpt)
//	post, _ := joint.Observe("Wet", true).Marginalize("Wet")
//	fmt.Println(post.Normalize())
//
// Thread safety:
//
//   - A Factor is a single-threaded value. Factors never share mutable
//     state, but concurrent Set/Normalize on one Factor needs external locking.
package factor
