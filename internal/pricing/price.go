package pricing

import "encoding/json"

// Money represents a monetary amount in major currency units.
type Money = float64

// PriceStructure is the decomposed form of a line-item price produced by the
// catalog layer. Base is the undiscounted unit price, CurrentEffectivePrice the
// unit price after any active promotional override, Attributes the unit-level
// surcharge from selected options, and Total the resolved line total.
type PriceStructure struct {
	Base                  Money `json:"base"`
	CurrentEffectivePrice Money `json:"currentEffectivePrice"`
	Attributes            Money `json:"attributes"`
	Total                 Money `json:"total"`
}

// Price is the price field of an order item. Older cart records store a bare
// unit price while newer ones carry a full breakdown, so the field is a sum of
// the two shapes. A Price decoded from an unrecognized shape is the zero value,
// which downstream arithmetic treats as a zero unit price.
type Price struct {
	Unit      Money
	Breakdown *PriceStructure
}

// UnitPrice wraps a bare unit price in the legacy shape.
func UnitPrice(v Money) Price {
	return Price{Unit: v}
}

// StructuredPrice wraps a full price breakdown.
func StructuredPrice(ps PriceStructure) Price {
	return Price{Breakdown: &ps}
}

// Base resolves the unit base price regardless of which shape the record used.
func (p Price) Base() Money {
	if p.Breakdown != nil {
		return p.Breakdown.Base
	}
	return p.Unit
}

// IsPriceObject reports whether a decoded value has the structured price shape.
// The check is presence-only: all four keys must exist, values are not
// inspected. Anything else narrows to the legacy bare-number form.
func IsPriceObject(v any) bool {
	m, ok := v.(map[string]any)
	if !ok || m == nil {
		return false
	}
	for _, key := range []string{"base", "currentEffectivePrice", "attributes", "total"} {
		if _, present := m[key]; !present {
			return false
		}
	}
	return true
}

// UnmarshalJSON decodes either price shape. Unrecognized shapes decode to the
// zero value rather than failing, preserving compatibility with corrupt or
// partial records from older carts.
func (p *Price) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*p = Price{}
	if IsPriceObject(raw) {
		var ps PriceStructure
		if err := json.Unmarshal(data, &ps); err == nil {
			p.Breakdown = &ps
		}
		return nil
	}
	if n, ok := raw.(float64); ok {
		p.Unit = n
	}
	return nil
}

// MarshalJSON writes the record back in the shape it was decoded from.
func (p Price) MarshalJSON() ([]byte, error) {
	if p.Breakdown != nil {
		return json.Marshal(p.Breakdown)
	}
	return json.Marshal(p.Unit)
}
