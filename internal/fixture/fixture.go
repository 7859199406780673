// Package fixture generates randomized cart payloads for tests and the
// quotecheck tool.
package fixture

import (
	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"

	"github.com/EarneyGit/storefront-pricing/internal/cartio"
	"github.com/EarneyGit/storefront-pricing/internal/pricing"
)

// Seed makes subsequent generation deterministic.
func Seed(seed uint64) {
	gofakeit.Seed(seed)
}

// Item produces a random, well-formed line item. Roughly half carry the legacy
// bare-number price shape and half the structured breakdown, so consumers get
// exercised against both.
func Item() pricing.OrderItem {
	unit := gofakeit.Price(1, 30)
	item := pricing.OrderItem{
		ID:       uuid.NewString(),
		Quantity: gofakeit.Number(1, 5),
		Price:    pricing.UnitPrice(unit),
	}
	if gofakeit.Bool() {
		item.Price = pricing.StructuredPrice(pricing.PriceStructure{
			Base:                  unit,
			CurrentEffectivePrice: unit,
			Attributes:            0,
			Total:                 unit * pricing.Money(item.Quantity),
		})
	}
	if gofakeit.Bool() {
		item.SelectedAttributes = []pricing.SelectedAttribute{
			{
				AttributeID:   uuid.NewString(),
				AttributeName: gofakeit.Word(),
				AttributeType: pricing.AttributeMultiple,
				SelectedItems: []pricing.SelectedAttributeItem{
					{
						ItemID:    uuid.NewString(),
						ItemName:  gofakeit.Word(),
						ItemPrice: gofakeit.Price(0, 5),
						Quantity:  gofakeit.Number(1, 3),
					},
				},
			},
		}
	}
	return item
}

// Discount produces a fixed-amount discount against the given order total.
func Discount(total pricing.Money) *pricing.DiscountInfo {
	amount := gofakeit.Price(0, total)
	return &pricing.DiscountInfo{
		DiscountID:     uuid.NewString(),
		Code:           gofakeit.LetterN(6),
		Name:           gofakeit.Word(),
		DiscountType:   pricing.DiscountFixed,
		DiscountValue:  amount,
		DiscountAmount: amount,
		OriginalTotal:  total,
	}
}

// Cart produces a payload with n random line items plus plausible fees.
func Cart(n int) cartio.Payload {
	if n < 1 {
		n = 1
	}
	items := make([]pricing.OrderItem, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, Item())
	}
	return cartio.Payload{
		Items:          items,
		DeliveryFee:    gofakeit.Price(0, 6),
		ServiceCharges: gofakeit.Price(0, 3),
	}
}
