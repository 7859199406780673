package pricing

import (
	"fmt"
	"strconv"

	"github.com/EarneyGit/storefront-pricing/internal/currency"
)

// FormatDiscountText renders a discount's effect as display text. Purely
// presentational; plays no part in the monetary computation.
func FormatDiscountText(d DiscountInfo) string {
	if d.DiscountType == DiscountPercentage {
		return fmt.Sprintf("%s%% off", strconv.FormatFloat(d.DiscountValue, 'f', -1, 64))
	}
	return currency.Format(d.DiscountValue) + " off"
}
