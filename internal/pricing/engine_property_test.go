package pricing_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EarneyGit/storefront-pricing/internal/fixture"
	"github.com/EarneyGit/storefront-pricing/internal/pricing"
)

func assertNonNegative(t *testing.T, totals pricing.OrderTotals) {
	t.Helper()
	for name, v := range map[string]pricing.Money{
		"subtotal":        totals.Subtotal,
		"attributesTotal": totals.AttributesTotal,
		"deliveryFee":     totals.DeliveryFee,
		"serviceCharges":  totals.ServiceCharges,
		"discountAmount":  totals.DiscountAmount,
		"finalTotal":      totals.FinalTotal,
		"savings":         totals.Savings,
	} {
		assert.GreaterOrEqual(t, v, pricing.Money(0), name)
	}
}

func TestComputeNonNegativeOverRandomCarts(t *testing.T) {
	fixture.Seed(42)
	for i := 0; i < 200; i++ {
		payload := fixture.Cart(1 + i%6)
		discount := fixture.Discount(100)
		totals := pricing.Compute(payload.Items, payload.DeliveryFee, payload.ServiceCharges, discount)
		assertNonNegative(t, totals)
		report := pricing.Validate(payload.Items, totals)
		require.True(t, report.Valid, "violations on well-formed cart: %v", report.Errors)
	}
}

func TestComputeNonNegativeOverMalformedCarts(t *testing.T) {
	fixture.Seed(7)
	for i := 0; i < 200; i++ {
		payload := fixture.Cart(1 + i%4)
		// Corrupt the cart the way stale client records do.
		payload.Items[0].Quantity = -2
		payload.Items[0].Price = pricing.UnitPrice(-9.99)
		if len(payload.Items[0].SelectedAttributes) > 0 {
			payload.Items[0].SelectedAttributes[0].SelectedItems[0].ItemPrice = -3
		}
		discount := &pricing.DiscountInfo{DiscountType: pricing.DiscountFixed, DiscountAmount: 1e9}
		totals := pricing.Compute(payload.Items, -5, -1, discount)
		assertNonNegative(t, totals)
	}
}

func TestComputeIdempotent(t *testing.T) {
	fixture.Seed(11)
	payload := fixture.Cart(5)
	discount := fixture.Discount(40)
	first := pricing.Compute(payload.Items, payload.DeliveryFee, payload.ServiceCharges, discount)
	second := pricing.Compute(payload.Items, payload.DeliveryFee, payload.ServiceCharges, discount)
	assert.Equal(t, first, second)
}

func TestComputeOrderInsensitive(t *testing.T) {
	fixture.Seed(23)
	payload := fixture.Cart(8)
	discount := fixture.Discount(25)
	want := pricing.Compute(payload.Items, payload.DeliveryFee, payload.ServiceCharges, discount)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		shuffled := make([]pricing.OrderItem, len(payload.Items))
		copy(shuffled, payload.Items)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		got := pricing.Compute(shuffled, payload.DeliveryFee, payload.ServiceCharges, discount)
		assert.InDelta(t, want.Subtotal, got.Subtotal, 1e-9)
		assert.InDelta(t, want.AttributesTotal, got.AttributesTotal, 1e-9)
		assert.InDelta(t, want.FinalTotal, got.FinalTotal, 1e-9)
		assert.InDelta(t, want.Savings, got.Savings, 1e-9)
	}
}
