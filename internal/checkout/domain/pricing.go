package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	moneyPlaces = 2
	ratePlaces  = 3
)

// AnnualInterestRate is the financing rate in percent.
var AnnualInterestRate = decimal.NewFromInt(5)

type RateTable map[ShippingMethod]decimal.Decimal

var DefaultShippingRates = RateTable{
	ShippingStandard:      decimal.RequireFromString("0.05"),
	ShippingExpress:       decimal.RequireFromString("0.10"),
	ShippingInternational: decimal.RequireFromString("0.15"),
	ShippingOther:         decimal.RequireFromString("0.08"),
}

// Rate falls back to the "other" rate for methods the table does not know.
func (t RateTable) Rate(method ShippingMethod) decimal.Decimal {
	if rate, ok := t[method]; ok {
		return rate
	}

	return t[ShippingOther]
}

type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

func ShippingCost(price decimal.Decimal, method ShippingMethod) decimal.Decimal {
	return DefaultShippingRates.ShippingCost(price, method)
}

func (t RateTable) ShippingCost(price decimal.Decimal, method ShippingMethod) decimal.Decimal {
	return price.Mul(t.Rate(method)).Round(moneyPlaces)
}

func PerShareInterestRate(totalShares decimal.Decimal) (decimal.Decimal, error) {
	if totalShares.IsZero() {
		return decimal.Zero, &InvalidArgumentsError{Msg: "total shares must not be zero"}
	}

	return AnnualInterestRate.DivRound(totalShares, ratePlaces), nil
}

func ShareAmount(total decimal.Decimal, shares int) (decimal.Decimal, error) {
	if shares <= 0 {
		return decimal.Zero, &InvalidArgumentsError{Msg: fmt.Sprintf("shares must be positive, got %d", shares)}
	}

	return total.DivRound(decimal.NewFromInt(int64(shares)), moneyPlaces), nil
}

// MonthlyPayment amortizes total over shares. The periodic rate is derived
// from the monetary total, not from the share count.
func MonthlyPayment(total decimal.Decimal, shares int) (decimal.Decimal, error) {
	if shares <= 0 {
		return decimal.Zero, &InvalidArgumentsError{Msg: fmt.Sprintf("shares must be positive, got %d", shares)}
	}

	rate, err := PerShareInterestRate(total)
	if err != nil {
		return decimal.Zero, err
	}

	// total*r / (1 - (1+r)^-n) == total*r*(1+r)^n / ((1+r)^n - 1)
	growth := decimal.NewFromInt(1).Add(rate).Pow(decimal.NewFromInt(int64(shares)))
	denominator := growth.Sub(decimal.NewFromInt(1))
	if denominator.IsZero() {
		return decimal.Zero, &DivisionByZeroError{Msg: fmt.Sprintf("interest rate %s yields a zero amortization denominator", rate)}
	}

	return total.Mul(rate).Mul(growth).DivRound(denominator, moneyPlaces), nil
}

func AggregateLineTotals(lines []PurchaseLineItem) Totals {
	totals := Totals{
		Subtotal: decimal.Zero,
		Tax:      decimal.Zero,
		Total:    decimal.Zero,
	}

	for _, line := range lines {
		quantity := decimal.NewFromInt(int64(line.Quantity))
		linePrice := line.Price.Mul(quantity)
		lineTax := line.Tax.Mul(quantity)

		totals.Subtotal = totals.Subtotal.Add(linePrice.Sub(lineTax))
		totals.Tax = totals.Tax.Add(lineTax)
		totals.Total = totals.Total.Add(linePrice)
	}

	return totals
}
