// quotecheck computes order totals for a cart payload and reports any violated
// pricing invariants. Feed it a payload exported from the storefront, or let it
// generate a random one, to spot-check the totals the client would display.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/EarneyGit/storefront-pricing/internal/cartio"
	"github.com/EarneyGit/storefront-pricing/internal/config"
	"github.com/EarneyGit/storefront-pricing/internal/currency"
	"github.com/EarneyGit/storefront-pricing/internal/fixture"
	"github.com/EarneyGit/storefront-pricing/internal/obs"
	"github.com/EarneyGit/storefront-pricing/internal/pricing"
)

func main() {
	var (
		file     = flag.String("file", "", "path to a cart payload JSON file")
		random   = flag.Int("random", 0, "generate a random cart with N items instead of reading a file")
		delivery = flag.Float64("delivery", -1, "override the payload's delivery fee")
		service  = flag.Float64("service", -1, "override the payload's service charges")
	)
	flag.Parse()

	cfg := config.MustLoad()
	logger := obs.NewLogger(cfg.LogFormat, cfg.LogLevel).With().Str("tool", "quotecheck").Logger()

	var (
		payload cartio.Payload
		err     error
	)
	switch {
	case *random > 0:
		payload = fixture.Cart(*random)
		payload.DeliveryFee = cfg.DefaultDeliveryFee
		payload.ServiceCharges = cfg.DefaultServiceCharge
	case *file != "":
		payload, err = cartio.DecodeFile(*file)
		if err != nil {
			logger.Fatal().Err(err).Str("file", *file).Msg("load cart payload")
		}
	default:
		flag.Usage()
		os.Exit(2)
	}

	if *delivery >= 0 {
		payload.DeliveryFee = *delivery
	}
	if *service >= 0 {
		payload.ServiceCharges = *service
	}

	totals := pricing.Compute(payload.Items, payload.DeliveryFee, payload.ServiceCharges, payload.Discount)
	report := pricing.Validate(payload.Items, totals)

	evt := logger.Info()
	if !report.Valid {
		evt = logger.Warn().Strs("violations", report.Errors)
	}
	evt.
		Int("items", len(payload.Items)).
		Float64("subtotal", totals.Subtotal).
		Float64("attributes_total", totals.AttributesTotal).
		Float64("delivery_fee", totals.DeliveryFee).
		Float64("service_charges", totals.ServiceCharges).
		Float64("discount_amount", totals.DiscountAmount).
		Float64("final_total", totals.FinalTotal).
		Bool("valid", report.Valid).
		Msg("quote_computed")

	fmtr := currency.NewFormatter(cfg.CurrencyLocale, cfg.CurrencySymbol)
	for i, item := range payload.Items {
		fmt.Printf("item %d (%s): %s\n", i+1, item.ID, fmtr.Format(pricing.ItemTotal(item)))
	}
	fmt.Printf("subtotal:        %s\n", fmtr.Format(totals.Subtotal))
	fmt.Printf("attributes:      %s\n", fmtr.Format(totals.AttributesTotal))
	fmt.Printf("delivery fee:    %s\n", fmtr.Format(totals.DeliveryFee))
	fmt.Printf("service charges: %s\n", fmtr.Format(totals.ServiceCharges))
	if payload.Discount != nil {
		fmt.Printf("discount:        %s (%s)\n", fmtr.Format(totals.DiscountAmount), pricing.FormatDiscountText(*payload.Discount))
	}
	fmt.Printf("total:           %s\n", fmtr.Format(totals.FinalTotal))

	if !report.Valid {
		os.Exit(1)
	}
}
