// Package cartio is the decoding boundary between stored cart payloads and the
// pricing engine. It understands both current and legacy record shapes (older
// carts store a bare unit price where newer ones carry a breakdown) and applies
// structural validation that the engine itself deliberately does not.
package cartio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/EarneyGit/storefront-pricing/internal/pricing"
)

// ErrEmptyCart is returned when a payload carries no line items.
var ErrEmptyCart = errors.New("cart payload has no items")

// Payload is a cart snapshot as exchanged with the storefront client: line
// items plus the fee figures and optional discount needed to quote an order.
type Payload struct {
	Items          []pricing.OrderItem   `json:"items" validate:"min=1,dive"`
	DeliveryFee    pricing.Money         `json:"deliveryFee"`
	ServiceCharges pricing.Money         `json:"serviceCharges"`
	Discount       *pricing.DiscountInfo `json:"discount,omitempty" validate:"omitempty"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterStructValidation(func(sl validator.StructLevel) {
		d := sl.Current().Interface().(pricing.DiscountInfo)
		switch d.DiscountType {
		case pricing.DiscountPercentage, pricing.DiscountFixed:
		default:
			sl.ReportError(d.DiscountType, "discountType", "DiscountType", "oneof", "")
		}
	}, pricing.DiscountInfo{})
	return v
}

// Decode reads a cart payload from r. Items missing an id are assigned one so
// downstream diagnostics can always reference a line. Validation here is
// structural only; monetary sanity is the pricing validator's job.
func Decode(r io.Reader) (Payload, error) {
	var p Payload
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return Payload{}, fmt.Errorf("decode cart payload: %w", err)
	}
	if len(p.Items) == 0 {
		return Payload{}, ErrEmptyCart
	}
	if err := validate.Struct(&p); err != nil {
		return Payload{}, fmt.Errorf("invalid cart payload: %w", err)
	}
	for i := range p.Items {
		if strings.TrimSpace(p.Items[i].ID) == "" {
			p.Items[i].ID = uuid.NewString()
		}
	}
	return p, nil
}

// DecodeFile reads a cart payload from a JSON file.
func DecodeFile(path string) (Payload, error) {
	f, err := os.Open(path)
	if err != nil {
		return Payload{}, fmt.Errorf("open cart payload: %w", err)
	}
	defer f.Close()
	return Decode(f)
}
