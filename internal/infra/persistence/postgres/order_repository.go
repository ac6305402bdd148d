package postgres

import (
	"context"
	"time"

	"cakes/internal/domain/entity"
	domainerrors "cakes/internal/domain/errors"
	"cakes/internal/domain/repository"
	"cakes/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateOrderNumber
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("order references an unknown user")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// Update writes status, timeline, payment and assignment columns. Items and amounts are immutable.
func (repo *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)
	orderM.UpdatedAt = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{ID: order.ID}).
		Select(
			"status", "payment_status", "payment_transaction_id",
			"delivery_boy_id", "vendor_id", "cancel_reason",
			"confirmed_at", "preparing_at", "out_for_delivery_at",
			"delivered_at", "cancelled_at", "assigned_at", "updated_at",
		).
		Updates(orderM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return repo.findOne(repo.db.WithContext(ctx), "id = ?", id)
}

func (repo *orderRepository) FindByNumber(ctx context.Context, orderNumber string) (*entity.Order, error) {
	return repo.findOne(repo.db.WithContext(ctx), "order_number = ?", orderNumber)
}

// FindByIDForUpdate locks the row with SELECT ... FOR UPDATE; it only makes sense inside a transaction.
func (repo *orderRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return repo.findOne(repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), "id = ?", id)
}

func (repo *orderRepository) findOne(db *gorm.DB, cond string, arg any) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := db.Where(cond, arg).First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return toOrderDomain(&orderM), nil
}

func (repo *orderRepository) List(ctx context.Context, filter repository.OrderFilter) ([]*entity.Order, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.OrderModel{})

	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.DeliveryBoyID != nil {
		query = query.Where("delivery_boy_id = ?", *filter.DeliveryBoyID)
	}
	if filter.VendorID != nil {
		query = query.Where("vendor_id = ?", *filter.VendorID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.From != nil {
		query = query.Where("created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("created_at < ?", *filter.To)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count orders")
	}

	var orderModels []*model.OrderModel
	if err := query.
		Order("created_at DESC").
		Offset(filter.Page.Offset()).
		Limit(filter.Page.Size()).
		Find(&orderModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, total, nil
}

// --- Mapper Functions ---

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	return &entity.Order{
		ID:                   data.ID,
		OrderNumber:          data.OrderNumber,
		UserID:               data.UserID,
		Items:                []entity.OrderItem(data.Items),
		DeliveryAddress:      data.DeliveryAddress.Data(),
		Delivery:             data.Delivery.Data(),
		Subtotal:             data.Subtotal,
		DeliveryFee:          data.DeliveryFee,
		Discount:             data.Discount,
		WalletUsed:           data.WalletUsed,
		Total:                data.Total,
		PromoCode:            data.PromoCode,
		Status:               entity.OrderStatus(data.Status),
		PaymentMethod:        entity.PaymentMethod(data.PaymentMethod),
		PaymentStatus:        entity.PaymentStatus(data.PaymentStatus),
		PaymentTransactionID: data.PaymentTransactionID,
		DeliveryBoyID:        data.DeliveryBoyID,
		VendorID:             data.VendorID,
		CancelReason:         data.CancelReason,
		ConfirmedAt:          data.ConfirmedAt,
		PreparingAt:          data.PreparingAt,
		OutForDeliveryAt:     data.OutForDeliveryAt,
		DeliveredAt:          data.DeliveredAt,
		CancelledAt:          data.CancelledAt,
		AssignedAt:           data.AssignedAt,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	return &model.OrderModel{
		ID:                   data.ID,
		OrderNumber:          data.OrderNumber,
		UserID:               data.UserID,
		Items:                datatypes.JSONSlice[entity.OrderItem](nonNil(data.Items)),
		DeliveryAddress:      datatypes.NewJSONType(data.DeliveryAddress),
		Delivery:             datatypes.NewJSONType(data.Delivery),
		Subtotal:             data.Subtotal,
		DeliveryFee:          data.DeliveryFee,
		Discount:             data.Discount,
		WalletUsed:           data.WalletUsed,
		Total:                data.Total,
		PromoCode:            data.PromoCode,
		Status:               string(data.Status),
		PaymentMethod:        string(data.PaymentMethod),
		PaymentStatus:        string(data.PaymentStatus),
		PaymentTransactionID: data.PaymentTransactionID,
		DeliveryBoyID:        data.DeliveryBoyID,
		VendorID:             data.VendorID,
		CancelReason:         data.CancelReason,
		ConfirmedAt:          data.ConfirmedAt,
		PreparingAt:          data.PreparingAt,
		OutForDeliveryAt:     data.OutForDeliveryAt,
		DeliveredAt:          data.DeliveredAt,
		CancelledAt:          data.CancelledAt,
		AssignedAt:           data.AssignedAt,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}
