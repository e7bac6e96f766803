package postgres

import (
	"testing"

	"github.com/Lexv0lk/merch-checkout/internal/checkout/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartRepository_GetCart(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name   string
		userID int

		prepareFn func(t *testing.T, mock pgxmock.PgxConnIface)

		expectedCart domain.Cart
		expectedErr  error
	}

	tests := []testCase{
		{
			name:   "cart with lines",
			userID: 1,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				rows := pgxmock.NewRows([]string{"product_id", "quantity"}).
					AddRow(7, 2).
					AddRow(8, 10)
				mock.ExpectQuery(`SELECT product_id, quantity FROM cart_items WHERE user_id = \$1 ORDER BY id FOR UPDATE`).
					WithArgs(1).
					WillReturnRows(rows)
			},
			expectedCart: domain.Cart{UserID: 1, Lines: []domain.CartLine{
				{ProductID: 7, Quantity: 2},
				{ProductID: 8, Quantity: 10},
			}},
		},
		{
			name:   "empty cart",
			userID: 2,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("SELECT product_id, quantity FROM cart_items").
					WithArgs(2).
					WillReturnRows(pgxmock.NewRows([]string{"product_id", "quantity"}))
			},
			expectedCart: domain.Cart{UserID: 2},
		},
		{
			name:   "database error",
			userID: 1,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("SELECT product_id, quantity FROM cart_items").
					WithArgs(1).
					WillReturnError(assert.AnError)
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock, err := pgxmock.NewConn()
			require.NoError(t, err)
			defer mock.Close(t.Context())

			tt.prepareFn(t, mock)

			cart, err := NewCartRepository().GetCart(t.Context(), mock, tt.userID)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedCart, cart)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCartRepository_ClearCart(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name string

		prepareFn func(t *testing.T, mock pgxmock.PgxConnIface)

		expectedErr error
	}

	tests := []testCase{
		{
			name: "cart cleared",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectExec("DELETE FROM cart_items").
					WithArgs(1).
					WillReturnResult(pgxmock.NewResult("DELETE", 2))
			},
		},
		{
			name: "database error",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectExec("DELETE FROM cart_items").
					WithArgs(1).
					WillReturnError(assert.AnError)
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock, err := pgxmock.NewConn()
			require.NoError(t, err)
			defer mock.Close(t.Context())

			tt.prepareFn(t, mock)

			err = NewCartRepository().ClearCart(t.Context(), mock, 1)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserFinder_FindUser(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name   string
		userID int

		prepareFn func(t *testing.T, mock pgxmock.PgxConnIface)

		expectedUser domain.UserProfile
		expectedErr  error
	}

	tests := []testCase{
		{
			name:   "user found",
			userID: 1,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				rows := pgxmock.NewRows([]string{"id", "first_name", "second_name", "last_name", "family_name", "email", "phone"}).
					AddRow(1, "ana", "", "lopez", "garcia", "ana@example.com", "+34600000000")
				mock.ExpectQuery("SELECT (.+) FROM users").
					WithArgs(1).
					WillReturnRows(rows)
			},
			expectedUser: domain.UserProfile{
				ID:         1,
				FirstName:  "ana",
				LastName:   "lopez",
				FamilyName: "garcia",
				Email:      "ana@example.com",
				Phone:      "+34600000000",
			},
		},
		{
			name:   "user not found",
			userID: 999,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("SELECT (.+) FROM users").
					WithArgs(999).
					WillReturnError(pgx.ErrNoRows)
			},
			expectedErr: &domain.UserNotFoundError{},
		},
		{
			name:   "database error",
			userID: 1,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("SELECT (.+) FROM users").
					WithArgs(1).
					WillReturnError(assert.AnError)
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock, err := pgxmock.NewConn()
			require.NoError(t, err)
			defer mock.Close(t.Context())

			tt.prepareFn(t, mock)

			user, err := NewUserFinder().FindUser(t.Context(), mock, tt.userID)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedUser, user)
			}
		})
	}
}

func TestProductRepository_LockProduct(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name      string
		productID int

		prepareFn func(t *testing.T, mock pgxmock.PgxConnIface)

		expectedProduct domain.ProductSnapshot
		expectedErr     error
	}

	tests := []testCase{
		{
			name:      "product locked",
			productID: 7,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				rows := pgxmock.NewRows([]string{"id", "name", "category", "price", "tax", "quantity"}).
					AddRow(7, "mug", "kitchen", money("100.00"), money("10.00"), 5)
				mock.ExpectQuery("SELECT (.+) FROM products WHERE id = \\$1 FOR UPDATE").
					WithArgs(7).
					WillReturnRows(rows)
			},
			expectedProduct: domain.ProductSnapshot{
				ID:       7,
				Name:     "mug",
				Category: "kitchen",
				Price:    money("100.00"),
				Tax:      money("10.00"),
				Quantity: 5,
			},
		},
		{
			name:      "product not found",
			productID: 404,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("SELECT (.+) FROM products").
					WithArgs(404).
					WillReturnError(pgx.ErrNoRows)
			},
			expectedErr: &domain.ProductNotFoundError{},
		},
		{
			name:      "database error",
			productID: 7,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("SELECT (.+) FROM products").
					WithArgs(7).
					WillReturnError(assert.AnError)
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock, err := pgxmock.NewConn()
			require.NoError(t, err)
			defer mock.Close(t.Context())

			tt.prepareFn(t, mock)

			product, err := NewProductRepository().LockProduct(t.Context(), mock, tt.productID)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedProduct.ID, product.ID)
			assert.Equal(t, tt.expectedProduct.Name, product.Name)
			assert.Equal(t, tt.expectedProduct.Category, product.Category)
			assert.Equal(t, tt.expectedProduct.Quantity, product.Quantity)
			assert.True(t, tt.expectedProduct.Price.Equal(product.Price))
			assert.True(t, tt.expectedProduct.Tax.Equal(product.Tax))
		})
	}
}

func TestProductRepository_ChangeAmount(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name  string
		delta int

		prepareFn func(t *testing.T, mock pgxmock.PgxConnIface)

		expectedErr error
	}

	tests := []testCase{
		{
			name:  "stock decremented",
			delta: -2,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectExec("UPDATE products SET quantity").
					WithArgs(-2, 7).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name:  "guard keeps stock non-negative",
			delta: -10,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectExec("UPDATE products SET quantity").
					WithArgs(-10, 7).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expectedErr: &domain.InsufficientStockError{},
		},
		{
			name:  "database error",
			delta: -1,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectExec("UPDATE products SET quantity").
					WithArgs(-1, 7).
					WillReturnError(assert.AnError)
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock, err := pgxmock.NewConn()
			require.NoError(t, err)
			defer mock.Close(t.Context())

			tt.prepareFn(t, mock)

			err = NewProductRepository().ChangeAmount(t.Context(), mock, 7, tt.delta)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
