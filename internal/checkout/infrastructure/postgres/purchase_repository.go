package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Lexv0lk/merch-checkout/internal/checkout/domain"
	"github.com/Lexv0lk/merch-checkout/internal/pkg/database"
	"github.com/Lexv0lk/merch-checkout/internal/pkg/logging"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const purchaseColumns = `id, user_id, customer_name, customer_email, customer_phone,
	shipping_method, shipping_address, shipping_city, shipping_country, shipping_cost,
	payment_method, paid, financed, shares, current_share, total, debt, paid_at,
	active, created_at`

type PurchaseRepository struct {
	queryTxBeginner database.QueryTxBeginner
	logger          logging.Logger
}

func NewPurchaseRepository(queryTxBeginner database.QueryTxBeginner, logger logging.Logger) *PurchaseRepository {
	return &PurchaseRepository{
		queryTxBeginner: queryTxBeginner,
		logger:          logger,
	}
}

func (pr *PurchaseRepository) CreatePurchase(ctx context.Context, executor database.Executor, purchase domain.Purchase) error {
	insertPurchaseSQL := `INSERT INTO purchases (` + purchaseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`

	_, err := executor.Exec(ctx, insertPurchaseSQL,
		purchase.ID,
		purchase.Customer.UserID,
		purchase.Customer.Name,
		purchase.Customer.Email,
		purchase.Customer.Phone,
		string(purchase.Shipping.Method),
		purchase.Shipping.Address,
		purchase.Shipping.City,
		purchase.Shipping.Country,
		purchase.Shipping.Cost,
		string(purchase.Payment.Method),
		purchase.Payment.Paid,
		purchase.Payment.Financed,
		purchase.Payment.Shares,
		purchase.Payment.CurrentShare,
		purchase.Payment.Total,
		purchase.Payment.Debt,
		purchase.Payment.PaidAt,
		purchase.Active,
		purchase.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert purchase: %w", err)
	}

	insertItemSQL := `INSERT INTO purchase_items (purchase_id, position, product_id, name, category, quantity, price, tax)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	for position, item := range purchase.Items {
		_, err = executor.Exec(ctx, insertItemSQL,
			purchase.ID, position, item.ProductID, item.Name, item.Category, item.Quantity, item.Price, item.Tax)
		if err != nil {
			return fmt.Errorf("failed to insert purchase item: %w", err)
		}
	}

	return nil
}

func (pr *PurchaseRepository) ListActive(ctx context.Context, page, size int) (domain.PurchasePage, error) {
	group, groupCtx := errgroup.WithContext(ctx)

	var totalItems int
	var purchases []domain.Purchase

	group.Go(func() error {
		countSQL := `SELECT COUNT(*) FROM purchases WHERE active`

		err := pr.queryTxBeginner.QueryRow(groupCtx, countSQL).Scan(&totalItems)
		if err != nil {
			return fmt.Errorf("failed to count purchases: %w", err)
		}

		return nil
	})

	group.Go(func() error {
		var err error
		purchases, err = pr.selectActivePage(groupCtx, page, size)
		return err
	})

	if err := group.Wait(); err != nil {
		return domain.PurchasePage{}, err
	}

	return domain.PurchasePage{
		Data: purchases,
		Meta: domain.NewPageMeta(page, size, len(purchases), totalItems),
	}, nil
}

func (pr *PurchaseRepository) selectActivePage(ctx context.Context, page, size int) ([]domain.Purchase, error) {
	listSQL := `SELECT ` + purchaseColumns + ` FROM purchases WHERE active ORDER BY created_at DESC, id LIMIT $1 OFFSET $2`

	rows, err := pr.queryTxBeginner.Query(ctx, listSQL, size, page*size)
	if err != nil {
		return nil, fmt.Errorf("failed to select purchases: %w", err)
	}
	defer rows.Close()

	purchases := make([]domain.Purchase, 0, size)
	for rows.Next() {
		purchase, err := scanPurchase(rows)
		if err != nil {
			return nil, err
		}
		purchases = append(purchases, purchase)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read purchases: %w", err)
	}

	return purchases, nil
}

func (pr *PurchaseRepository) GetActive(ctx context.Context, id uuid.UUID) (domain.Purchase, error) {
	getSQL := `SELECT ` + purchaseColumns + ` FROM purchases WHERE id = $1 AND active`

	purchase, err := scanPurchase(pr.queryTxBeginner.QueryRow(ctx, getSQL, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Purchase{}, &domain.PurchaseNotFoundError{Msg: fmt.Sprintf("purchase %s not found", id)}
		}

		return domain.Purchase{}, err
	}

	purchase.Items, err = loadItems(ctx, pr.queryTxBeginner, id)
	if err != nil {
		return domain.Purchase{}, err
	}

	return purchase, nil
}

// ApplySharePayment records one installment on a locked purchase and updates its debt.
func (pr *PurchaseRepository) ApplySharePayment(ctx context.Context, id uuid.UUID, payment domain.SharePayment) (domain.Purchase, error) {
	tx, err := pr.queryTxBeginner.BeginTx(ctx, pgx.TxOptions{
		IsoLevel: pgx.ReadCommitted,
	})
	if err != nil {
		return domain.Purchase{}, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		err := tx.Rollback(ctx)
		if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			pr.logger.Error("failed to rollback transaction", "error", err.Error())
		}
	}()

	lockSQL := `SELECT ` + purchaseColumns + ` FROM purchases WHERE id = $1 AND active FOR UPDATE`

	purchase, err := scanPurchase(tx.QueryRow(ctx, lockSQL, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Purchase{}, &domain.PurchaseNotFoundError{Msg: fmt.Sprintf("purchase %s not found", id)}
		}

		return domain.Purchase{}, err
	}

	err = checkSharePayment(purchase, payment)
	if err != nil {
		return domain.Purchase{}, err
	}

	insertShareSQL := `INSERT INTO purchase_share_payments (purchase_id, share_index, amount, paid_at)
		VALUES ($1, $2, $3, $4) ON CONFLICT (purchase_id, share_index) DO NOTHING`

	tag, err := tx.Exec(ctx, insertShareSQL, id, payment.ShareIndex, payment.Amount, payment.PaidAt)
	if err != nil {
		return domain.Purchase{}, fmt.Errorf("failed to insert share payment: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return domain.Purchase{}, &domain.InvalidStateError{Msg: fmt.Sprintf("share %d of purchase %s is already paid", payment.ShareIndex, id)}
	}

	purchase.Payment = applyShare(purchase.Payment, payment)

	updateSQL := `UPDATE purchases SET debt = $1, current_share = $2, paid = $3, paid_at = $4 WHERE id = $5`

	_, err = tx.Exec(ctx, updateSQL,
		purchase.Payment.Debt, purchase.Payment.CurrentShare, purchase.Payment.Paid, purchase.Payment.PaidAt, id)
	if err != nil {
		return domain.Purchase{}, fmt.Errorf("failed to update purchase debt: %w", err)
	}

	purchase.Items, err = loadItems(ctx, tx, id)
	if err != nil {
		return domain.Purchase{}, err
	}

	err = tx.Commit(ctx)
	if err != nil {
		return domain.Purchase{}, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return purchase, nil
}

func (pr *PurchaseRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	softDeleteSQL := `UPDATE purchases SET active = FALSE WHERE id = $1`

	tag, err := pr.queryTxBeginner.Exec(ctx, softDeleteSQL, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate purchase: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return &domain.PurchaseNotFoundError{Msg: fmt.Sprintf("purchase %s not found", id)}
	}

	return nil
}

func (pr *PurchaseRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	existsSQL := `SELECT EXISTS (SELECT 1 FROM purchases WHERE id = $1)`

	var exists bool
	err := pr.queryTxBeginner.QueryRow(ctx, existsSQL, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check purchase existence: %w", err)
	}

	return exists, nil
}

func checkSharePayment(purchase domain.Purchase, payment domain.SharePayment) error {
	if !purchase.Payment.Financed {
		return &domain.InvalidStateError{Msg: fmt.Sprintf("purchase %s is not financed", purchase.ID)}
	}

	if payment.ShareIndex < 1 || payment.ShareIndex > purchase.Payment.Shares {
		return &domain.InvalidArgumentsError{
			Msg: fmt.Sprintf("share index %d is outside 1..%d", payment.ShareIndex, purchase.Payment.Shares),
		}
	}

	if !payment.Amount.IsPositive() {
		return &domain.InvalidArgumentsError{Msg: "share payment amount must be positive"}
	}

	if purchase.Payment.Paid {
		return &domain.InvalidStateError{Msg: fmt.Sprintf("purchase %s is already paid", purchase.ID)}
	}

	return nil
}

func applyShare(info domain.PaymentInfo, payment domain.SharePayment) domain.PaymentInfo {
	info.Debt = decimal.Max(info.Debt.Sub(payment.Amount), decimal.Zero)
	info.CurrentShare = min(max(info.CurrentShare, payment.ShareIndex+1), info.Shares)
	info.Paid = info.Debt.IsZero()
	info.PaidAt = payment.PaidAt

	return info
}

func scanPurchase(row pgx.Row) (domain.Purchase, error) {
	var (
		purchase       domain.Purchase
		shippingMethod string
		paymentMethod  string
	)

	err := row.Scan(
		&purchase.ID,
		&purchase.Customer.UserID,
		&purchase.Customer.Name,
		&purchase.Customer.Email,
		&purchase.Customer.Phone,
		&shippingMethod,
		&purchase.Shipping.Address,
		&purchase.Shipping.City,
		&purchase.Shipping.Country,
		&purchase.Shipping.Cost,
		&paymentMethod,
		&purchase.Payment.Paid,
		&purchase.Payment.Financed,
		&purchase.Payment.Shares,
		&purchase.Payment.CurrentShare,
		&purchase.Payment.Total,
		&purchase.Payment.Debt,
		&purchase.Payment.PaidAt,
		&purchase.Active,
		&purchase.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Purchase{}, err
		}

		return domain.Purchase{}, fmt.Errorf("failed to scan purchase: %w", err)
	}

	purchase.Shipping.Method = domain.ShippingMethod(shippingMethod)
	purchase.Payment.Method = domain.PaymentMethod(paymentMethod)

	return purchase, nil
}

func loadItems(ctx context.Context, querier database.Querier, purchaseID uuid.UUID) ([]domain.PurchaseLineItem, error) {
	selectItemsSQL := `SELECT product_id, name, category, quantity, price, tax FROM purchase_items
		WHERE purchase_id = $1 ORDER BY position`

	rows, err := querier.Query(ctx, selectItemsSQL, purchaseID)
	if err != nil {
		return nil, fmt.Errorf("failed to select purchase items: %w", err)
	}
	defer rows.Close()

	items := make([]domain.PurchaseLineItem, 0)
	for rows.Next() {
		var item domain.PurchaseLineItem
		err = rows.Scan(&item.ProductID, &item.Name, &item.Category, &item.Quantity, &item.Price, &item.Tax)
		if err != nil {
			return nil, fmt.Errorf("failed to scan purchase item: %w", err)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read purchase items: %w", err)
	}

	return items, nil
}
