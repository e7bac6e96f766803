package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestShippingCost(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name     string
		price    decimal.Decimal
		method   ShippingMethod
		expected decimal.Decimal
	}

	tests := []testCase{
		{
			name:     "standard",
			price:    dec("200"),
			method:   ShippingStandard,
			expected: dec("10.00"),
		},
		{
			name:     "express",
			price:    dec("123.45"),
			method:   ShippingExpress,
			expected: dec("12.35"),
		},
		{
			name:     "international",
			price:    dec("99.99"),
			method:   ShippingInternational,
			expected: dec("15.00"),
		},
		{
			name:     "unknown method falls back to other",
			price:    dec("100"),
			method:   ShippingMethod("drone"),
			expected: dec("8.00"),
		},
		{
			name:     "zero price",
			price:    decimal.Zero,
			method:   ShippingExpress,
			expected: decimal.Zero,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := ShippingCost(tt.price, tt.method)
			assert.True(t, tt.expected.Equal(res), "expected %s, got %s", tt.expected, res)
		})
	}
}

func TestShippingCost_MatchesRateTable(t *testing.T) {
	t.Parallel()

	prices := []decimal.Decimal{dec("0.01"), dec("1"), dec("19.99"), dec("333.33"), dec("1000000")}

	for method, rate := range DefaultShippingRates {
		for _, price := range prices {
			expected := price.Mul(rate).Round(2)
			assert.True(t, expected.Equal(ShippingCost(price, method)), "method %s price %s", method, price)
		}
	}
}

func TestPerShareInterestRate(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name        string
		shares      decimal.Decimal
		expected    decimal.Decimal
		expectedErr error
	}

	tests := []testCase{
		{
			name:     "twelve shares",
			shares:   dec("12"),
			expected: dec("0.417"),
		},
		{
			name:     "three shares",
			shares:   dec("3"),
			expected: dec("1.667"),
		},
		{
			name:     "one share",
			shares:   dec("1"),
			expected: dec("5"),
		},
		{
			name:        "zero shares",
			shares:      decimal.Zero,
			expectedErr: &InvalidArgumentsError{},
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res, err := PerShareInterestRate(tt.shares)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				require.NoError(t, err)
				assert.True(t, tt.expected.Equal(res), "expected %s, got %s", tt.expected, res)
			}
		})
	}
}

func TestShareAmount(t *testing.T) {
	t.Parallel()

	res, err := ShareAmount(dec("100"), 3)
	require.NoError(t, err)
	assert.True(t, dec("33.33").Equal(res))

	res, err = ShareAmount(dec("160"), 6)
	require.NoError(t, err)
	assert.True(t, dec("26.67").Equal(res))

	_, err = ShareAmount(dec("100"), 0)
	assert.ErrorIs(t, err, &InvalidArgumentsError{})
}

func TestMonthlyPayment(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name        string
		total       decimal.Decimal
		shares      int
		expectedErr error
	}

	tests := []testCase{
		{name: "one share", total: dec("210"), shares: 1},
		{name: "twelve shares", total: dec("210"), shares: 12},
		{name: "thirty six shares", total: dec("1500"), shares: 36},
		{name: "small total", total: dec("10"), shares: 6},
		{name: "zero shares", total: dec("210"), shares: 0, expectedErr: &InvalidArgumentsError{}},
		{name: "negative shares", total: dec("210"), shares: -3, expectedErr: &InvalidArgumentsError{}},
		{name: "zero total", total: decimal.Zero, shares: 12, expectedErr: &InvalidArgumentsError{}},
		// 5 / 100000 rounds to a zero rate, so (1+r)^-n == 1
		{name: "rate rounds to zero", total: dec("100000"), shares: 12, expectedErr: &DivisionByZeroError{}},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			payment, err := MonthlyPayment(tt.total, tt.shares)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			require.NoError(t, err)

			// The rate is taken from the monetary total, not from the share count.
			rate, err := PerShareInterestRate(tt.total)
			require.NoError(t, err)

			one := decimal.NewFromInt(1)
			growth := one.Add(rate).Pow(decimal.NewFromInt(int64(tt.shares)))
			discount := one.Sub(one.DivRound(growth, 16))

			lhs := payment.Mul(discount)
			rhs := tt.total.Mul(rate)
			assert.True(t, lhs.Sub(rhs).Abs().LessThanOrEqual(dec("0.01")), "payment %s: %s vs %s", payment, lhs, rhs)
		})
	}
}

func TestMonthlyPayment_RateDerivedFromTotal(t *testing.T) {
	t.Parallel()

	// 5 / 210 = 0.0238.. -> 0.024 per share regardless of the share count.
	payment, err := MonthlyPayment(dec("210"), 1)
	require.NoError(t, err)

	assert.True(t, dec("215.04").Equal(payment), "got %s", payment)
}

func TestAggregateLineTotals(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name     string
		lines    []PurchaseLineItem
		expected Totals
	}

	tests := []testCase{
		{
			name:  "no lines",
			lines: nil,
			expected: Totals{
				Subtotal: decimal.Zero,
				Tax:      decimal.Zero,
				Total:    decimal.Zero,
			},
		},
		{
			name: "single line",
			lines: []PurchaseLineItem{
				{ProductID: 1, Quantity: 2, Price: dec("100"), Tax: dec("10")},
			},
			expected: Totals{
				Subtotal: dec("180"),
				Tax:      dec("20"),
				Total:    dec("200"),
			},
		},
		{
			name: "several lines",
			lines: []PurchaseLineItem{
				{ProductID: 1, Quantity: 2, Price: dec("100"), Tax: dec("10")},
				{ProductID: 2, Quantity: 3, Price: dec("19.99"), Tax: dec("3.19")},
			},
			expected: Totals{
				Subtotal: dec("230.40"),
				Tax:      dec("29.57"),
				Total:    dec("259.97"),
			},
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := AggregateLineTotals(tt.lines)

			assert.True(t, tt.expected.Subtotal.Equal(res.Subtotal), "subtotal %s", res.Subtotal)
			assert.True(t, tt.expected.Tax.Equal(res.Tax), "tax %s", res.Tax)
			assert.True(t, tt.expected.Total.Equal(res.Total), "total %s", res.Total)
		})
	}
}
