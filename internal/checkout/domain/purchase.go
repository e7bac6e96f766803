package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ShippingMethod string

const (
	ShippingStandard      ShippingMethod = "standard"
	ShippingExpress       ShippingMethod = "express"
	ShippingInternational ShippingMethod = "international"
	ShippingOther         ShippingMethod = "other"
)

func (m ShippingMethod) IsValid() bool {
	switch m {
	case ShippingStandard, ShippingExpress, ShippingInternational, ShippingOther:
		return true
	}

	return false
}

type PaymentMethod string

const (
	PaymentCash       PaymentMethod = "cash"
	PaymentCreditCard PaymentMethod = "credit_card"
	PaymentDebitCard  PaymentMethod = "debit_card"
	PaymentTransfer   PaymentMethod = "transfer"
	PaymentOther      PaymentMethod = "other"
)

func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCash, PaymentCreditCard, PaymentDebitCard, PaymentTransfer, PaymentOther:
		return true
	}

	return false
}

// PurchaseLineItem is frozen at checkout time; later catalog edits never touch it.
type PurchaseLineItem struct {
	ProductID int
	Name      string
	Quantity  int
	Category  string
	Price     decimal.Decimal
	Tax       decimal.Decimal
}

type CustomerInfo struct {
	UserID int
	Name   string
	Email  string
	Phone  string
}

type ShippingInfo struct {
	Method  ShippingMethod
	Address string
	City    string
	Country string
	Cost    decimal.Decimal
}

type PaymentInfo struct {
	Method       PaymentMethod
	Paid         bool
	Financed     bool
	Shares       int
	CurrentShare int
	Total        decimal.Decimal
	Debt         decimal.Decimal
	PaidAt       time.Time
}

type Purchase struct {
	ID        uuid.UUID
	Items     []PurchaseLineItem
	Customer  CustomerInfo
	Shipping  ShippingInfo
	Payment   PaymentInfo
	Active    bool
	CreatedAt time.Time
}

type SharePayment struct {
	ShareIndex int
	Amount     decimal.Decimal
	PaidAt     time.Time
}

type PageMeta struct {
	CurrentPage  int
	ItemCount    int
	ItemsPerPage int
	TotalItems   int
	TotalPages   int
}

type PurchasePage struct {
	Data []Purchase
	Meta PageMeta
}

func NewPageMeta(page, size, itemCount, totalItems int) PageMeta {
	totalPages := 0
	if size > 0 {
		totalPages = (totalItems + size - 1) / size
	}

	return PageMeta{
		CurrentPage:  page,
		ItemCount:    itemCount,
		ItemsPerPage: size,
		TotalItems:   totalItems,
		TotalPages:   totalPages,
	}
}

type InstallmentPlan struct {
	Shares         int
	CurrentShare   int
	Debt           decimal.Decimal
	ShareAmount    decimal.Decimal
	MonthlyPayment decimal.Decimal
}
