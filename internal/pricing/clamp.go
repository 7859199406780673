package pricing

// Clamping policy: malformed upstream data never crashes checkout. Negative
// money floors to zero, quantities below one count as one. The guards are kept
// as named functions so the policy stays auditable at each arithmetic step.

// nonNegative floors a monetary value at zero.
func nonNegative(v Money) Money {
	if v < 0 {
		return 0
	}
	return v
}

// atLeastOne floors a quantity at one.
func atLeastOne(q int) int {
	if q < 1 {
		return 1
	}
	return q
}

// resolveAuthoritativeTotal applies the trust-the-caller policy: a line total
// supplied by the caller (typically server-confirmed, reflecting time-limited
// price overrides invisible to this package) wins over the local computation.
// Whichever value is used still gets the non-negativity clamp.
func resolveAuthoritativeTotal(caller *Money, computed Money) Money {
	if caller != nil {
		return nonNegative(*caller)
	}
	return nonNegative(computed)
}
