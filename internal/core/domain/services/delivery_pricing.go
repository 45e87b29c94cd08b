package services

import (
	"strings"

	"burgercounter/internal/core/domain/model/kernel"
)

// feeRule matches a neighborhood name against substrings. Rules are evaluated
// in order; the first match wins, which makes them mutually exclusive by
// construction.
type feeRule struct {
	substrings []string
	fee        string
}

// The counter's fixed delivery zones, nearest first. Anything unmatched,
// including an empty neighborhood, pays the farthest-zone fee.
var feeRules = []feeRule{
	{substrings: []string{"gramacho"}, fee: "1.00"},
	{substrings: []string{"centro"}, fee: "2.00"},
	{substrings: []string{"parque", "vila"}, fee: "3.00"},
	{substrings: []string{"jardim", "mutuá"}, fee: "4.00"},
}

const defaultFee = "5.00"

// DeliveryPricing is a domain service that computes the delivery fee for a
// destination neighborhood. The match is a case-insensitive substring scan
// over a fixed priority list, so "Centro Histórico" and "centro" both land
// in the centro zone.
//
// FeeFor never fails: unknown neighborhoods fall through to the default fee.
type DeliveryPricing struct{}

// NewDeliveryPricing creates a DeliveryPricing service.
func NewDeliveryPricing() DeliveryPricing {
	return DeliveryPricing{}
}

// FeeFor returns the delivery fee for the given neighborhood.
// Deterministic: the same input always yields the same fee, and every result
// is one of 1.00, 2.00, 3.00, 4.00 or 5.00.
func (DeliveryPricing) FeeFor(neighborhood string) kernel.Money {
	name := strings.ToLower(neighborhood)

	for _, rule := range feeRules {
		for _, sub := range rule.substrings {
			if strings.Contains(name, sub) {
				return mustFee(rule.fee)
			}
		}
	}

	return mustFee(defaultFee)
}

// mustFee parses one of the fixed fee constants above. The table is static,
// so a parse failure is a programming error.
func mustFee(s string) kernel.Money {
	fee, err := kernel.MoneyFromString(s)
	if err != nil {
		panic(err)
	}
	return fee
}
