// Package hint annotates branch likelihood.
//
// Go has no branch-prediction intrinsic, so these are identity
// functions the compiler inlines away. They exist to keep the
// expected/unexpected split visible at the call site in code whose
// timing behavior is part of its contract.
package hint

// Likely marks cond as the expected case.
func Likely(cond bool) bool { return cond }

// Unlikely marks cond as the unexpected case.
func Unlikely(cond bool) bool { return cond }
