package pricing

import "fmt"

// Report is the validator's output: the full list of violated invariants in
// human-readable form. An empty list means the totals are consistent.
type Report struct {
	Valid  bool     `json:"isValid"`
	Errors []string `json:"errors"`
}

// Validate inspects computed totals together with the originating items and
// reports every violated invariant. All checks run, none short-circuits, and
// the function never panics: it is a reporting function, not a gate. Callers
// decide whether to block on an invalid result.
func Validate(items []OrderItem, totals OrderTotals) Report {
	var errs []string

	fields := []struct {
		name  string
		value Money
	}{
		{"subtotal", totals.Subtotal},
		{"attributesTotal", totals.AttributesTotal},
		{"deliveryFee", totals.DeliveryFee},
		{"serviceCharges", totals.ServiceCharges},
		{"discountAmount", totals.DiscountAmount},
		{"finalTotal", totals.FinalTotal},
	}
	for _, f := range fields {
		if f.value < 0 {
			errs = append(errs, fmt.Sprintf("%s must not be negative, got %.2f", f.name, f.value))
		}
	}

	for i, item := range items {
		if item.Quantity <= 0 {
			errs = append(errs, fmt.Sprintf("item %d: quantity must be greater than zero, got %d", i+1, item.Quantity))
		}
	}

	preDiscount := totals.Subtotal + totals.AttributesTotal + totals.DeliveryFee + totals.ServiceCharges
	if totals.DiscountAmount > preDiscount {
		errs = append(errs, fmt.Sprintf("discountAmount %.2f exceeds pre-discount total %.2f", totals.DiscountAmount, preDiscount))
	}

	return Report{Valid: len(errs) == 0, Errors: errs}
}
