package impl

import (
	"context"
	"log/slog"

	deliverycontext "cakes/internal/delivery/context"
	"cakes/internal/domain/entity"
	domainerrors "cakes/internal/domain/errors"
	"cakes/internal/domain/repository"
	"cakes/internal/domain/service"
	"cakes/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type dispatchService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	lifecycle *orderLifecycle
	logger    *slog.Logger
}

// DispatchServiceParams holds dependencies for DispatchService, injected by Fx.
type DispatchServiceParams struct {
	fx.In

	Lifecycle OrderLifecycleParams
	OrderRepo repository.OrderRepository
}

// NewDispatchService creates the service that hands orders to delivery boys and vendors.
func NewDispatchService(params DispatchServiceParams) usecase.DispatchUsecase {
	return &dispatchService{
		txManager: params.Lifecycle.TxManager,
		orderRepo: params.OrderRepo,
		lifecycle: newOrderLifecycle(params.Lifecycle),
		logger:    params.Lifecycle.Logger,
	}
}

func (srv *dispatchService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// assign sets an assignee on a locked order after checking the assignee's role.
func (srv *dispatchService) assign(
	ctx context.Context,
	orderID, assigneeID uuid.UUID,
	role entity.Role,
	assignable func(*entity.Order) bool,
	set func(*entity.Order, *uuid.UUID),
	eventType service.OrderEventType,
) (*entity.Order, error) {
	var order *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		order, err = repoFactory.OrderRepo().FindByIDForUpdate(ctx, orderID)
		if err != nil {
			return toAppError(err, "failed to lock order")
		}
		if !assignable(order) {
			return errors.Wrapf(domainerrors.ErrOrderNotAssignable, "order is %s", order.Status)
		}

		assignee, err := repoFactory.UserRepo().FindByID(ctx, assigneeID)
		if err != nil {
			return toAppError(err, "failed to find assignee")
		}
		if !assignee.HasRole(role) || !assignee.IsActive {
			return errors.Wrapf(domainerrors.ErrAssigneeRoleMismatch, "user is not an active %s", role)
		}

		now := srv.lifecycle.now()
		set(order, &assigneeID)
		order.AssignedAt = &now
		order.UpdatedAt = now

		if err := repoFactory.OrderRepo().Update(ctx, order); err != nil {
			return toAppError(err, "failed to save assignment")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to assign order")
	}

	srv.log(ctx).Info("Order assigned",
		slog.String("orderNumber", order.OrderNumber),
		slog.String("role", role.String()),
		slog.Any("assigneeID", assigneeID))
	srv.lifecycle.announce(ctx, eventType, order)

	return order, nil
}

// AssignDeliveryBoy hands a confirmed or preparing order to a delivery boy.
func (srv *dispatchService) AssignDeliveryBoy(ctx context.Context, orderID, deliveryBoyID uuid.UUID) (*entity.Order, error) {
	return srv.assign(ctx, orderID, deliveryBoyID, entity.RoleDeliveryBoy,
		func(o *entity.Order) bool {
			return o.Status == entity.OrderStatusConfirmed || o.Status == entity.OrderStatusPreparing
		},
		func(o *entity.Order, id *uuid.UUID) { o.DeliveryBoyID = id },
		service.OrderEventDeliveryAssigned,
	)
}

// AssignVendor hands any open order to a vendor.
func (srv *dispatchService) AssignVendor(ctx context.Context, orderID, vendorID uuid.UUID) (*entity.Order, error) {
	return srv.assign(ctx, orderID, vendorID, entity.RoleVendor,
		func(o *entity.Order) bool { return !o.Status.IsTerminal() },
		func(o *entity.Order, id *uuid.UUID) { o.VendorID = id },
		service.OrderEventVendorAssigned,
	)
}

func (srv *dispatchService) list(ctx context.Context, filter repository.OrderFilter) (*usecase.OrderPage, error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown order status %q", filter.Status)
	}
	filter.Page = repository.NewPagination(filter.Page.Page, filter.Page.Limit)

	orders, total, err := srv.orderRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list assigned orders")
	}

	return &usecase.OrderPage{Orders: orders, Total: total, Page: filter.Page}, nil
}

func (srv *dispatchService) ListDeliveryOrders(ctx context.Context, deliveryBoyID uuid.UUID, status entity.OrderStatus, page repository.Pagination) (*usecase.OrderPage, error) {
	return srv.list(ctx, repository.OrderFilter{DeliveryBoyID: &deliveryBoyID, Status: status, Page: page})
}

func (srv *dispatchService) ListVendorOrders(ctx context.Context, vendorID uuid.UUID, status entity.OrderStatus, page repository.Pagination) (*usecase.OrderPage, error) {
	return srv.list(ctx, repository.OrderFilter{VendorID: &vendorID, Status: status, Page: page})
}

func assignedTo(get func(*entity.Order) *uuid.UUID, callerID uuid.UUID) orderGuard {
	return func(order *entity.Order) error {
		if id := get(order); id == nil || *id != callerID {
			return errors.WithStack(domainerrors.ErrOrderNotAssignedToCaller)
		}

		return nil
	}
}

func deliveryBoyOf(o *entity.Order) *uuid.UUID { return o.DeliveryBoyID }

func vendorOf(o *entity.Order) *uuid.UUID { return o.VendorID }

// PickupOrder marks a prepared order as out for delivery.
func (srv *dispatchService) PickupOrder(ctx context.Context, deliveryBoyID, orderID uuid.UUID) (*entity.Order, error) {
	return srv.lifecycle.transition(ctx, orderID, entity.OrderStatusOutForDelivery, "", assignedTo(deliveryBoyOf, deliveryBoyID))
}

// DeliverOrder completes an order; a COD order becomes paid and loyalty is credited.
func (srv *dispatchService) DeliverOrder(ctx context.Context, deliveryBoyID, orderID uuid.UUID) (*entity.Order, error) {
	return srv.lifecycle.transition(ctx, orderID, entity.OrderStatusDelivered, "", assignedTo(deliveryBoyOf, deliveryBoyID))
}

// AcceptOrder starts preparation of a confirmed order by its vendor.
func (srv *dispatchService) AcceptOrder(ctx context.Context, vendorID, orderID uuid.UUID) (*entity.Order, error) {
	return srv.lifecycle.transition(ctx, orderID, entity.OrderStatusPreparing, "", assignedTo(vendorOf, vendorID))
}
