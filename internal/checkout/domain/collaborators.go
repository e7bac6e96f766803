package domain

import (
	"context"

	"github.com/Lexv0lk/merch-checkout/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CartLine struct {
	ProductID int
	Quantity  int
}

type Cart struct {
	UserID int
	Lines  []CartLine
}

type ProductSnapshot struct {
	ID       int
	Name     string
	Category string
	Price    decimal.Decimal
	Tax      decimal.Decimal
	Quantity int
}

type UserProfile struct {
	ID         int
	FirstName  string
	SecondName string
	LastName   string
	FamilyName string
	Email      string
	Phone      string
}

type CartRepository interface {
	GetCart(ctx context.Context, querier database.Querier, userID int) (Cart, error)
	ClearCart(ctx context.Context, executor database.Executor, userID int) error
}

type UserFinder interface {
	FindUser(ctx context.Context, querier database.Querier, userID int) (UserProfile, error)
}

type ProductRepository interface {
	// LockProduct reads the product row and holds its lock until the transaction ends.
	LockProduct(ctx context.Context, querier database.Querier, productID int) (ProductSnapshot, error)
	ChangeAmount(ctx context.Context, executor database.Executor, productID int, delta int) error
}

type PurchaseRepository interface {
	CreatePurchase(ctx context.Context, executor database.Executor, purchase Purchase) error
	ListActive(ctx context.Context, page, size int) (PurchasePage, error)
	GetActive(ctx context.Context, id uuid.UUID) (Purchase, error)
	ApplySharePayment(ctx context.Context, id uuid.UUID, payment SharePayment) (Purchase, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type IdempotencyStore interface {
	// Reserve claims the key for a new checkout and returns uuid.Nil. A key that
	// already holds a purchase returns that purchase id. A key claimed by a
	// checkout still in flight returns CheckoutInProgressError.
	Reserve(ctx context.Context, userID int, key string) (uuid.UUID, error)
	Complete(ctx context.Context, userID int, key string, purchaseID uuid.UUID) error
	Release(ctx context.Context, userID int, key string) error
}

type CheckoutMetrics interface {
	CheckoutSucceeded()
	CheckoutFailed()
	CartLineSkipped()
}
