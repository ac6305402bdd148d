package postgres

import (
	"context"
	"regexp"
	"testing"

	"cakes/internal/domain/entity"
	"cakes/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errPromoCodeTaken = errors.New(`ERROR: duplicate key value violates unique constraint "promo_codes_code_key" (SQLSTATE 23505)`)

func testPromo() *entity.PromoCode {
	return &entity.PromoCode{
		ID:            uuid.New(),
		Code:          "sweet10",
		DiscountType:  entity.DiscountTypePercentage,
		DiscountValue: decimal.NewFromInt(10),
		IsActive:      true,
	}
}

func TestPromoCodeRepository_Create_DuplicateCode(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "promo_codes"`)).WillReturnError(errPromoCodeTaken)

	err := NewPromoCodeRepository(db).Create(context.Background(), testPromo())

	assert.ErrorIs(t, err, repository.ErrDuplicatePromoCode)
	assert.NotErrorIs(t, err, repository.ErrDuplicateSlug)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPromoCodeRepository_Update_DuplicateCode(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "promo_codes" SET`)).WillReturnError(errPromoCodeTaken)

	err := NewPromoCodeRepository(db).Update(context.Background(), testPromo())

	assert.ErrorIs(t, err, repository.ErrDuplicatePromoCode)
	assert.NotErrorIs(t, err, repository.ErrDuplicateSlug)
	require.NoError(t, mock.ExpectationsWereMet())
}
