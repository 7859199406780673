// Package pricing computes order totals for the storefront. Every operation is
// a pure function over plain cart data: no I/O, no shared state, safe to call
// on every re-render. Bad input degrades via clamping instead of failing; the
// validator in this package reports violations after the fact.
package pricing

// AttributeTotal sums the unit-level cost contribution of the selected
// attribute choices. Price and quantity are clamped independently before the
// product, so a malformed negative surcharge contributes zero rather than a
// credit.
func AttributeTotal(selected []SelectedAttribute) Money {
	var total Money
	for _, attr := range selected {
		for _, item := range attr.SelectedItems {
			total += nonNegative(item.ItemPrice) * Money(atLeastOne(item.Quantity))
		}
	}
	return total
}

// ItemTotal resolves a single line item's total. The attribute aggregate is
// multiplied by the item quantity on top of the per-choice quantities already
// folded in by AttributeTotal: attribute cost scales with both "how many of
// this choice" and "how many of this product". A caller-declared ItemTotal
// takes precedence over the local computation.
func ItemTotal(item OrderItem) Money {
	qty := Money(atLeastOne(item.Quantity))
	baseTotal := nonNegative(item.Price.Base() * qty)
	var attributesTotal Money
	if len(item.SelectedAttributes) > 0 {
		attributesTotal = AttributeTotal(item.SelectedAttributes) * qty
	}
	return resolveAuthoritativeTotal(item.ItemTotal, baseTotal+attributesTotal)
}

// Compute folds all line items plus fees and an optional discount into order
// totals.
//
// Subtotal deliberately reflects base price only, ignoring any ItemTotal
// override a line may carry: subtotal is a catalog-price figure for display,
// the aggregate total is the authoritative figure for charging, and the two
// may diverge when overrides are present.
//
// The discount is capped implicitly by flooring the final total at zero. The
// output DiscountAmount and Savings both carry the effective (capped) figure,
// not the raw requested amount.
func Compute(items []OrderItem, deliveryFee, serviceCharges Money, discount *DiscountInfo) OrderTotals {
	var subtotal, attributesTotal Money
	for _, item := range items {
		qty := Money(atLeastOne(item.Quantity))
		subtotal += nonNegative(item.Price.Base() * qty)
		attributesTotal += AttributeTotal(item.SelectedAttributes) * qty
	}

	safeDeliveryFee := nonNegative(deliveryFee)
	safeServiceCharges := nonNegative(serviceCharges)

	var requested Money
	if discount != nil {
		requested = nonNegative(discount.DiscountAmount)
	}

	totalBeforeDiscount := subtotal + attributesTotal + safeDeliveryFee + safeServiceCharges
	finalTotal := nonNegative(totalBeforeDiscount - requested)
	actualSavings := nonNegative(totalBeforeDiscount - finalTotal)

	return OrderTotals{
		Subtotal:        subtotal,
		AttributesTotal: attributesTotal,
		DeliveryFee:     safeDeliveryFee,
		ServiceCharges:  safeServiceCharges,
		DiscountAmount:  actualSavings,
		FinalTotal:      finalTotal,
		Savings:         actualSavings,
	}
}
