package pricing

// AttributeType mirrors the catalog's product attribute type and constrains how
// many selected items are valid for the group. Selection cardinality is
// enforced by the cart UI upstream; the engine only sums cost.
type AttributeType string

const (
	AttributeSingle        AttributeType = "single"
	AttributeMultiple      AttributeType = "multiple"
	AttributeMultipleTimes AttributeType = "multiple-times"
)

// SelectedAttributeItem is one concretely chosen option, e.g. "extra cheese x2".
// ItemPrice is a per-unit surcharge; the engine re-clamps it rather than
// trusting the boundary.
type SelectedAttributeItem struct {
	ItemID    string `json:"itemId"`
	ItemName  string `json:"itemName"`
	ItemPrice Money  `json:"itemPrice"`
	Quantity  int    `json:"quantity"`
}

// SelectedAttribute is a named attribute group together with the customer's
// chosen item(s) from it.
type SelectedAttribute struct {
	AttributeID   string                  `json:"attributeId"`
	AttributeName string                  `json:"attributeName"`
	AttributeType AttributeType           `json:"attributeType"`
	SelectedItems []SelectedAttributeItem `json:"selectedItems"`
}

// OrderItem is one product entry in a cart. ItemTotal, when present and
// non-negative, is a server-confirmed line total that takes precedence over the
// engine's own recomputation.
type OrderItem struct {
	ID                 string              `json:"id"`
	Quantity           int                 `json:"quantity"`
	Price              Price               `json:"price"`
	ItemTotal          *Money              `json:"itemTotal,omitempty"`
	SelectedAttributes []SelectedAttribute `json:"selectedAttributes,omitempty"`
	Notes              string              `json:"notes,omitempty"`
}

// DiscountType enumerates the supported discount presentations.
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// DiscountInfo describes an applied discount. DiscountAmount is the absolute
// monetary amount to subtract and is authoritative; DiscountType and
// DiscountValue exist for display only, so the engine never recomputes the
// amount from the percentage.
type DiscountInfo struct {
	DiscountID     string       `json:"discountId"`
	Code           string       `json:"code"`
	Name           string       `json:"name"`
	DiscountType   DiscountType `json:"discountType"`
	DiscountValue  Money        `json:"discountValue"`
	DiscountAmount Money        `json:"discountAmount"`
	OriginalTotal  Money        `json:"originalTotal"`
}

// OrderTotals aggregates computed order components. Every field is guaranteed
// non-negative. It is recomputed from scratch on every call; there is no
// incremental state and no identity across calls.
type OrderTotals struct {
	Subtotal        Money `json:"subtotal"`
	AttributesTotal Money `json:"attributesTotal"`
	DeliveryFee     Money `json:"deliveryFee"`
	ServiceCharges  Money `json:"serviceCharges"`
	DiscountAmount  Money `json:"discountAmount"`
	FinalTotal      Money `json:"finalTotal"`
	Savings         Money `json:"savings"`
}
