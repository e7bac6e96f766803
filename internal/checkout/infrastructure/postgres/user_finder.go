package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Lexv0lk/merch-checkout/internal/checkout/domain"
	"github.com/Lexv0lk/merch-checkout/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type UserFinder struct {
}

func NewUserFinder() *UserFinder {
	return &UserFinder{}
}

func (uf *UserFinder) FindUser(ctx context.Context, querier database.Querier, userID int) (domain.UserProfile, error) {
	findUserSQL := `SELECT id, first_name, second_name, last_name, family_name, email, phone FROM users WHERE id = $1`

	var user domain.UserProfile
	err := querier.QueryRow(ctx, findUserSQL, userID).Scan(
		&user.ID,
		&user.FirstName,
		&user.SecondName,
		&user.LastName,
		&user.FamilyName,
		&user.Email,
		&user.Phone,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.UserProfile{}, &domain.UserNotFoundError{Msg: fmt.Sprintf("user with id %d not found", userID)}
		}

		return domain.UserProfile{}, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}
