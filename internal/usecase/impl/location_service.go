package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "cakes/internal/delivery/context"
	"cakes/internal/domain/entity"
	domainerrors "cakes/internal/domain/errors"
	"cakes/internal/domain/repository"
	"cakes/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type locationService struct {
	areaRepo repository.DeliveryAreaRepository
	logger   *slog.Logger
}

// NewLocationService creates the delivery area service.
func NewLocationService(areaRepo repository.DeliveryAreaRepository, logger *slog.Logger) usecase.DeliveryAreaUsecase {
	return &locationService{
		areaRepo: areaRepo,
		logger:   logger,
	}
}

func (s *locationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func validateArea(input *usecase.DeliveryAreaInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "name is required")
	}
	if input.DeliveryFee.IsNegative() || input.FreeDeliveryThreshold.IsNegative() {
		return errors.Wrap(domainerrors.ErrValidationFailed, "fees must not be negative")
	}
	if input.RadiusKm < 0 {
		return errors.Wrap(domainerrors.ErrValidationFailed, "radius must not be negative")
	}
	if len(input.Boundary) > 0 && len(input.Boundary) < 3 {
		return errors.Wrap(domainerrors.ErrValidationFailed, "a boundary needs at least three points")
	}
	for _, p := range input.Boundary {
		if p[0] < -180 || p[0] > 180 || p[1] < -90 || p[1] > 90 {
			return errors.Wrap(domainerrors.ErrValidationFailed, "boundary point out of range")
		}
	}

	return nil
}

// normalizePincodes trims, drops blanks and removes duplicates, keeping order.
func normalizePincodes(pincodes []string) []string {
	out := make([]string, 0, len(pincodes))
	seen := make(map[string]struct{}, len(pincodes))
	for _, p := range pincodes {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}

	return out
}

func applyAreaInput(area *entity.DeliveryArea, input *usecase.DeliveryAreaInput) {
	area.Name = strings.TrimSpace(input.Name)
	area.Pincodes = normalizePincodes(input.Pincodes)
	area.DeliveryFee = input.DeliveryFee
	area.FreeDeliveryThreshold = input.FreeDeliveryThreshold
	area.CenterLatitude = input.CenterLatitude
	area.CenterLongitude = input.CenterLongitude
	area.RadiusKm = input.RadiusKm
	area.Boundary = input.Boundary
	area.IsActive = input.IsActive
}

// CreateArea adds a serviceable zone.
func (s *locationService) CreateArea(ctx context.Context, input *usecase.DeliveryAreaInput) (*entity.DeliveryArea, error) {
	if err := validateArea(input); err != nil {
		return nil, err
	}

	area := &entity.DeliveryArea{ID: uuid.New()}
	applyAreaInput(area, input)

	if err := s.areaRepo.Create(ctx, area); err != nil {
		return nil, toAppError(err, "failed to create delivery area")
	}
	s.log(ctx).Info("Created delivery area", slog.String("name", area.Name), slog.Int("pincodes", len(area.Pincodes)))

	return area, nil
}

// UpdateArea replaces the settings of a zone.
func (s *locationService) UpdateArea(ctx context.Context, id uuid.UUID, input *usecase.DeliveryAreaInput) (*entity.DeliveryArea, error) {
	if err := validateArea(input); err != nil {
		return nil, err
	}

	area, err := s.areaRepo.FindByID(ctx, id)
	if err != nil {
		return nil, toAppError(err, "failed to find delivery area")
	}
	applyAreaInput(area, input)

	if err := s.areaRepo.Update(ctx, area); err != nil {
		return nil, toAppError(err, "failed to update delivery area")
	}

	return area, nil
}

// DeleteArea removes a zone.
func (s *locationService) DeleteArea(ctx context.Context, id uuid.UUID) error {
	if err := s.areaRepo.Delete(ctx, id); err != nil {
		return toAppError(err, "failed to delete delivery area")
	}

	return nil
}

// ListAreas lists zones by name.
func (s *locationService) ListAreas(ctx context.Context, activeOnly bool) ([]*entity.DeliveryArea, error) {
	areas, err := s.areaRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list delivery areas")
	}

	return areas, nil
}

// CheckServiceability finds the active area covering a pincode or a point.
func (s *locationService) CheckServiceability(ctx context.Context, query *usecase.LocationQuery) (*entity.DeliveryArea, error) {
	area, err := findServiceableArea(ctx, s.areaRepo, query)
	if err != nil {
		s.log(ctx).Debug("Location not serviceable", slog.String("pincode", query.Pincode), slog.Any("error", err))

		return nil, err
	}

	return area, nil
}

// findServiceableArea matches the exact pincode first, then the boundary polygons, then the radii.
func findServiceableArea(ctx context.Context, areaRepo repository.DeliveryAreaRepository, query *usecase.LocationQuery) (*entity.DeliveryArea, error) {
	pincode := strings.TrimSpace(query.Pincode)
	hasPoint := query.Latitude != nil && query.Longitude != nil
	if pincode == "" && !hasPoint {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "a pincode or coordinates are required")
	}

	if pincode != "" {
		area, err := areaRepo.FindByPincode(ctx, pincode)
		if err == nil {
			return area, nil
		}
		if !errors.Is(err, repository.ErrDeliveryAreaNotFound) {
			return nil, errors.Wrap(err, "failed to find delivery area by pincode")
		}
	}

	if hasPoint {
		areas, err := areaRepo.List(ctx, true)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list delivery areas")
		}

		if area := findAreaContaining(areas, *query.Latitude, *query.Longitude); area != nil {
			return area, nil
		}
	}

	return nil, errors.Wrap(domainerrors.ErrDeliveryAreaNotServiceable, "no delivery area covers the location")
}

// findAreaContaining prefers boundary matches over radius matches.
func findAreaContaining(areas []*entity.DeliveryArea, lat, lng float64) *entity.DeliveryArea {
	var byRadius *entity.DeliveryArea
	for _, area := range areas {
		if !area.ContainsPoint(lat, lng) {
			continue
		}
		if len(area.Boundary) >= 3 {
			bounded := *area
			bounded.RadiusKm = 0
			if bounded.ContainsPoint(lat, lng) {
				return area
			}
		}
		if byRadius == nil {
			byRadius = area
		}
	}

	return byRadius
}
