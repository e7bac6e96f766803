package domain

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CheckoutService interface {
	Checkout(ctx context.Context, userID int, req CreatePurchaseRequest, idempotencyKey string) (uuid.UUID, error)
}

type PurchaseService interface {
	ListActivePurchases(ctx context.Context, page, size int) (PurchasePage, error)
	GetPurchase(ctx context.Context, id uuid.UUID) (Purchase, error)
	PaySharePayment(ctx context.Context, id uuid.UUID, shareIndex int, amount decimal.Decimal) (Purchase, error)
	DeactivatePurchase(ctx context.Context, id uuid.UUID) (bool, error)
	InvoiceExists(ctx context.Context, id uuid.UUID) (bool, error)
	InstallmentPlan(ctx context.Context, id uuid.UUID) (InstallmentPlan, error)
}
