package domain

import (
	"fmt"
	"slices"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

const minLocationLength = 3

var (
	ValidShares       = []int{1, 3, 6, 12, 18, 24, 30, 36}
	MaxInitialPayment = decimal.NewFromInt(10_000_000_000_000_000)
)

type CreatePurchaseRequest struct {
	PaymentMethod  PaymentMethod
	ShippingMethod ShippingMethod
	Address        string
	City           string
	Country        string
	Financed       bool
	Share          int
	InitialPayment decimal.Decimal
}

func (r CreatePurchaseRequest) Validate() error {
	if !r.PaymentMethod.IsValid() {
		return &InvalidArgumentsError{Msg: fmt.Sprintf("unknown payment method %q", r.PaymentMethod)}
	}

	if !r.ShippingMethod.IsValid() {
		return &InvalidArgumentsError{Msg: fmt.Sprintf("unknown shipping method %q", r.ShippingMethod)}
	}

	locations := []struct {
		field string
		value string
	}{
		{"address", r.Address},
		{"city", r.City},
		{"country", r.Country},
	}

	for _, location := range locations {
		if utf8.RuneCountInString(location.value) < minLocationLength {
			return &InvalidArgumentsError{Msg: fmt.Sprintf("%s must be at least %d characters long", location.field, minLocationLength)}
		}
	}

	if !slices.Contains(ValidShares, r.Share) {
		return &InvalidArgumentsError{Msg: fmt.Sprintf("share must be one of %v, got %d", ValidShares, r.Share)}
	}

	if r.InitialPayment.IsNegative() || r.InitialPayment.GreaterThan(MaxInitialPayment) {
		return &InvalidArgumentsError{Msg: "initial payment is out of range"}
	}

	return nil
}

// StockPolicy decides what happens to a cart line that asks for more than is in stock.
type StockPolicy string

const (
	// StockPolicySkip leaves the line out of the purchase and keeps going.
	StockPolicySkip StockPolicy = "skip"
	// StockPolicyReject aborts the whole checkout.
	StockPolicyReject StockPolicy = "reject"
)

func ParseStockPolicy(raw string) (StockPolicy, error) {
	switch policy := StockPolicy(raw); policy {
	case StockPolicySkip, StockPolicyReject:
		return policy, nil
	case "":
		return StockPolicySkip, nil
	default:
		return "", &InvalidArgumentsError{Msg: fmt.Sprintf("unknown stock policy %q", raw)}
	}
}
