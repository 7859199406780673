package pricing

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsPriceObject(t *testing.T) {
	full := map[string]any{"base": 10.0, "currentEffectivePrice": 8.0, "attributes": 2.0, "total": 24.0}
	assert.True(t, IsPriceObject(full))

	// Presence-only: values are not inspected.
	junkValues := map[string]any{"base": "x", "currentEffectivePrice": nil, "attributes": true, "total": []any{}}
	assert.True(t, IsPriceObject(junkValues))

	missingKey := map[string]any{"base": 10.0, "currentEffectivePrice": 8.0, "attributes": 2.0}
	assert.False(t, IsPriceObject(missingKey))

	assert.False(t, IsPriceObject(9.5))
	assert.False(t, IsPriceObject(nil))
	assert.False(t, IsPriceObject("10"))
}

func TestPriceUnmarshalLegacyNumber(t *testing.T) {
	var item OrderItem
	require.NoError(t, json.Unmarshal([]byte(`{"id":"a","quantity":1,"price":9.5}`), &item))
	assert.Nil(t, item.Price.Breakdown)
	assert.Equal(t, 9.5, item.Price.Base())
}

func TestPriceUnmarshalStructured(t *testing.T) {
	payload := `{"id":"a","quantity":2,"price":{"base":10,"currentEffectivePrice":8,"attributes":2,"total":24}}`
	var item OrderItem
	require.NoError(t, json.Unmarshal([]byte(payload), &item))
	require.NotNil(t, item.Price.Breakdown)
	assert.Equal(t, Money(10), item.Price.Base())
	assert.Equal(t, Money(8), item.Price.Breakdown.CurrentEffectivePrice)
	assert.Equal(t, Money(24), item.Price.Breakdown.Total)
}

func TestPriceUnmarshalUnknownShapeDefaultsToZero(t *testing.T) {
	for _, raw := range []string{`null`, `"ten"`, `true`, `{"amount":10}`, `[10]`} {
		var p Price
		require.NoError(t, json.Unmarshal([]byte(raw), &p), "raw %s", raw)
		assert.Nil(t, p.Breakdown, "raw %s", raw)
		assert.Equal(t, Money(0), p.Base(), "raw %s", raw)
	}
}

func TestPriceMarshalKeepsShape(t *testing.T) {
	unit, err := json.Marshal(UnitPrice(9.5))
	require.NoError(t, err)
	assert.JSONEq(t, `9.5`, string(unit))

	structured, err := json.Marshal(StructuredPrice(PriceStructure{Base: 10, CurrentEffectivePrice: 8, Attributes: 2, Total: 24}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"base":10,"currentEffectivePrice":8,"attributes":2,"total":24}`, string(structured))
}
