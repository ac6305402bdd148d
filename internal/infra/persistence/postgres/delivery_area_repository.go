package postgres

import (
	"context"
	"encoding/json"
	"time"

	"cakes/internal/domain/entity"
	domainerrors "cakes/internal/domain/errors"
	"cakes/internal/domain/repository"
	"cakes/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type deliveryAreaRepository struct {
	db *gorm.DB
}

// NewDeliveryAreaRepository is the constructor for deliveryAreaRepository.
func NewDeliveryAreaRepository(db *gorm.DB) repository.DeliveryAreaRepository {
	return &deliveryAreaRepository{db: db}
}

func (repo *deliveryAreaRepository) Create(ctx context.Context, area *entity.DeliveryArea) error {
	areaM := fromDeliveryAreaDomain(area)

	if err := repo.db.WithContext(ctx).Create(areaM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create delivery area")
	}

	area.ID = areaM.ID
	area.CreatedAt = areaM.CreatedAt
	area.UpdatedAt = areaM.UpdatedAt

	return nil
}

func (repo *deliveryAreaRepository) Update(ctx context.Context, area *entity.DeliveryArea) error {
	areaM := fromDeliveryAreaDomain(area)
	areaM.UpdatedAt = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.DeliveryAreaModel{ID: area.ID}).
		Select("*").
		Omit("id", "created_at").
		Updates(areaM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update delivery area")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDeliveryAreaNotFound
	}

	area.UpdatedAt = areaM.UpdatedAt

	return nil
}

func (repo *deliveryAreaRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.DeliveryAreaModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete delivery area")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDeliveryAreaNotFound
	}

	return nil
}

func (repo *deliveryAreaRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.DeliveryArea, error) {
	var areaM model.DeliveryAreaModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&areaM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeliveryAreaNotFound
		}

		return nil, errors.Wrap(err, "failed to find delivery area")
	}

	return toDeliveryAreaDomain(&areaM), nil
}

// FindByPincode returns the active area listing pincode.
func (repo *deliveryAreaRepository) FindByPincode(ctx context.Context, pincode string) (*entity.DeliveryArea, error) {
	pincodeJSON, err := json.Marshal([]string{pincode})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var areaM model.DeliveryAreaModel
	if err := repo.db.WithContext(ctx).
		Where("is_active = ? AND pincodes @> ?", true, datatypes.JSON(pincodeJSON)).
		Order("created_at ASC").
		First(&areaM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeliveryAreaNotFound
		}

		return nil, errors.Wrap(err, "failed to find delivery area by pincode")
	}

	return toDeliveryAreaDomain(&areaM), nil
}

func (repo *deliveryAreaRepository) List(ctx context.Context, activeOnly bool) ([]*entity.DeliveryArea, error) {
	query := repo.db.WithContext(ctx).Model(&model.DeliveryAreaModel{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var areaModels []*model.DeliveryAreaModel
	if err := query.Order("name ASC").Find(&areaModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list delivery areas")
	}

	areas := make([]*entity.DeliveryArea, 0, len(areaModels))
	for _, areaM := range areaModels {
		areas = append(areas, toDeliveryAreaDomain(areaM))
	}

	return areas, nil
}

// --- Mapper Functions ---

func toDeliveryAreaDomain(data *model.DeliveryAreaModel) *entity.DeliveryArea {
	if data == nil {
		return nil
	}

	return &entity.DeliveryArea{
		ID:                    data.ID,
		Name:                  data.Name,
		Pincodes:              []string(data.Pincodes),
		DeliveryFee:           data.DeliveryFee,
		FreeDeliveryThreshold: data.FreeDeliveryThreshold,
		CenterLatitude:        data.CenterLatitude,
		CenterLongitude:       data.CenterLongitude,
		RadiusKm:              data.RadiusKm,
		Boundary:              [][2]float64(data.Boundary),
		IsActive:              data.IsActive,
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.UpdatedAt,
	}
}

func fromDeliveryAreaDomain(data *entity.DeliveryArea) *model.DeliveryAreaModel {
	if data == nil {
		return nil
	}

	return &model.DeliveryAreaModel{
		ID:                    data.ID,
		Name:                  data.Name,
		Pincodes:              datatypes.JSONSlice[string](nonNil(data.Pincodes)),
		DeliveryFee:           data.DeliveryFee,
		FreeDeliveryThreshold: data.FreeDeliveryThreshold,
		CenterLatitude:        data.CenterLatitude,
		CenterLongitude:       data.CenterLongitude,
		RadiusKm:              data.RadiusKm,
		Boundary:              datatypes.JSONSlice[[2]float64](nonNil(data.Boundary)),
		IsActive:              data.IsActive,
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.UpdatedAt,
	}
}
