package postgres

import (
	"time"

	"github.com/Lexv0lk/merch-checkout/internal/checkout/domain"
	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
)

var (
	purchaseID = uuid.MustParse("8a3f2f0e-6d4c-4c8e-9a57-1b0f6e2d7c41")
	createdAt  = time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	paidAt     = time.Date(2026, time.April, 1, 9, 30, 0, 0, time.UTC)
)

var purchaseColumnNames = []string{
	"id", "user_id", "customer_name", "customer_email", "customer_phone",
	"shipping_method", "shipping_address", "shipping_city", "shipping_country", "shipping_cost",
	"payment_method", "paid", "financed", "shares", "current_share", "total", "debt", "paid_at",
	"active", "created_at",
}

func money(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func financedPurchase(debt string, shares, currentShare int) domain.Purchase {
	return domain.Purchase{
		ID: purchaseID,
		Customer: domain.CustomerInfo{
			UserID: 1,
			Name:   "Ana Lopez",
			Email:  "ana@example.com",
			Phone:  "+34600000000",
		},
		Shipping: domain.ShippingInfo{
			Method:  domain.ShippingStandard,
			Address: "Calle Mayor 1",
			City:    "Madrid",
			Country: "Spain",
			Cost:    money("10.00"),
		},
		Payment: domain.PaymentInfo{
			Method:       domain.PaymentCreditCard,
			Paid:         money(debt).IsZero(),
			Financed:     true,
			Shares:       shares,
			CurrentShare: currentShare,
			Total:        money("210.00"),
			Debt:         money(debt),
			PaidAt:       createdAt,
		},
		Active:    true,
		CreatedAt: createdAt,
	}
}

func purchaseRows(purchases ...domain.Purchase) *pgxmock.Rows {
	rows := pgxmock.NewRows(purchaseColumnNames)
	for _, p := range purchases {
		rows.AddRow(
			p.ID, p.Customer.UserID, p.Customer.Name, p.Customer.Email, p.Customer.Phone,
			string(p.Shipping.Method), p.Shipping.Address, p.Shipping.City, p.Shipping.Country, p.Shipping.Cost,
			string(p.Payment.Method), p.Payment.Paid, p.Payment.Financed, p.Payment.Shares, p.Payment.CurrentShare,
			p.Payment.Total, p.Payment.Debt, p.Payment.PaidAt,
			p.Active, p.CreatedAt,
		)
	}

	return rows
}

func mugItem() domain.PurchaseLineItem {
	return domain.PurchaseLineItem{
		ProductID: 7,
		Name:      "mug",
		Quantity:  2,
		Category:  "kitchen",
		Price:     money("100.00"),
		Tax:       money("10.00"),
	}
}

func itemRows(items ...domain.PurchaseLineItem) *pgxmock.Rows {
	rows := pgxmock.NewRows([]string{"product_id", "name", "category", "quantity", "price", "tax"})
	for _, item := range items {
		rows.AddRow(item.ProductID, item.Name, item.Category, item.Quantity, item.Price, item.Tax)
	}

	return rows
}
