package postgres

import (
	"context"
	"strings"
	"time"

	"cakes/internal/domain/entity"
	domainerrors "cakes/internal/domain/errors"
	"cakes/internal/domain/repository"
	"cakes/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type promoCodeRepository struct {
	db *gorm.DB
}

// NewPromoCodeRepository is the constructor for promoCodeRepository.
func NewPromoCodeRepository(db *gorm.DB) repository.PromoCodeRepository {
	return &promoCodeRepository{db: db}
}

func (repo *promoCodeRepository) Create(ctx context.Context, promo *entity.PromoCode) error {
	promoM := fromPromoCodeDomain(promo)

	if err := repo.db.WithContext(ctx).Create(promoM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicatePromoCode
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create promo code")
	}

	promo.ID = promoM.ID
	promo.CreatedAt = promoM.CreatedAt
	promo.UpdatedAt = promoM.UpdatedAt

	return nil
}

// Update writes the rule fields. used_count is only changed by ConsumeUsage and ReleaseUsage.
func (repo *promoCodeRepository) Update(ctx context.Context, promo *entity.PromoCode) error {
	promoM := fromPromoCodeDomain(promo)
	promoM.UpdatedAt = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.PromoCodeModel{ID: promo.ID}).
		Select("*").
		Omit("id", "created_at", "used_count").
		Updates(promoM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicatePromoCode
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update promo code")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPromoCodeNotFound
	}

	promo.UpdatedAt = promoM.UpdatedAt

	return nil
}

func (repo *promoCodeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.PromoCodeModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete promo code")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPromoCodeNotFound
	}

	return nil
}

func (repo *promoCodeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.PromoCode, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindByCode looks the code up case-insensitively.
func (repo *promoCodeRepository) FindByCode(ctx context.Context, code string) (*entity.PromoCode, error) {
	return repo.findOne(ctx, "code = ?", strings.ToUpper(strings.TrimSpace(code)))
}

func (repo *promoCodeRepository) findOne(ctx context.Context, cond string, arg any) (*entity.PromoCode, error) {
	var promoM model.PromoCodeModel

	if err := repo.db.WithContext(ctx).Where(cond, arg).First(&promoM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPromoCodeNotFound
		}

		return nil, errors.Wrap(err, "failed to find promo code")
	}

	return toPromoCodeDomain(&promoM), nil
}

func (repo *promoCodeRepository) List(ctx context.Context) ([]*entity.PromoCode, error) {
	var promoModels []*model.PromoCodeModel
	if err := repo.db.WithContext(ctx).Order("created_at DESC").Find(&promoModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list promo codes")
	}

	promos := make([]*entity.PromoCode, 0, len(promoModels))
	for _, promoM := range promoModels {
		promos = append(promos, toPromoCodeDomain(promoM))
	}

	return promos, nil
}

// ConsumeUsage increments used_count only while the code is under its limit, so concurrent
// orders cannot exceed it.
func (repo *promoCodeRepository) ConsumeUsage(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PromoCodeModel{}).
		Where("id = ? AND (usage_limit = 0 OR used_count < usage_limit)", id).
		UpdateColumn("used_count", gorm.Expr("used_count + 1"))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to consume promo usage")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPromoUsageExhausted
	}

	return nil
}

// ReleaseUsage gives back a usage when an order that consumed it is cancelled.
func (repo *promoCodeRepository) ReleaseUsage(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.PromoCodeModel{}).
		Where("id = ? AND used_count > 0", id).
		UpdateColumn("used_count", gorm.Expr("used_count - 1")).Error; err != nil {
		return errors.Wrap(err, "failed to release promo usage")
	}

	return nil
}

// --- Mapper Functions ---

func toPromoCodeDomain(data *model.PromoCodeModel) *entity.PromoCode {
	if data == nil {
		return nil
	}

	return &entity.PromoCode{
		ID:            data.ID,
		Code:          data.Code,
		Description:   data.Description,
		DiscountType:  entity.DiscountType(data.DiscountType),
		DiscountValue: data.DiscountValue,
		MinOrderValue: data.MinOrderValue,
		MaxDiscount:   data.MaxDiscount,
		UsageLimit:    data.UsageLimit,
		UsedCount:     data.UsedCount,
		ValidFrom:     data.ValidFrom,
		ValidUntil:    data.ValidUntil,
		IsActive:      data.IsActive,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromPromoCodeDomain(data *entity.PromoCode) *model.PromoCodeModel {
	if data == nil {
		return nil
	}

	return &model.PromoCodeModel{
		ID:            data.ID,
		Code:          strings.ToUpper(data.Code),
		Description:   data.Description,
		DiscountType:  string(data.DiscountType),
		DiscountValue: data.DiscountValue,
		MinOrderValue: data.MinOrderValue,
		MaxDiscount:   data.MaxDiscount,
		UsageLimit:    data.UsageLimit,
		UsedCount:     data.UsedCount,
		ValidFrom:     data.ValidFrom,
		ValidUntil:    data.ValidUntil,
		IsActive:      data.IsActive,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
