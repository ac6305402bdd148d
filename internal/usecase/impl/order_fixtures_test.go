package impl

import (
	"testing"
	"time"

	"cakes/config"
	"cakes/internal/domain/entity"
	mockRepo "cakes/internal/mocks/repository"
	mockService "cakes/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// orderDeps is the mock set shared by the services built on the order lifecycle.
type orderDeps struct {
	txManager   *mockRepo.MockTransactionManager
	tx          *txRepos
	userRepo    *mockRepo.MockUserRepository
	cakeRepo    *mockRepo.MockCakeRepository
	addonRepo   *mockRepo.MockAddonRepository
	areaRepo    *mockRepo.MockDeliveryAreaRepository
	promoRepo   *mockRepo.MockPromoCodeRepository
	orderRepo   *mockRepo.MockOrderRepository
	publisher   *mockService.MockEventPublisher
	broadcaster *mockService.MockRealtimeBroadcaster
	config      *config.Config
}

func newOrderDeps(t *testing.T) *orderDeps {
	txManager := mockRepo.NewMockTransactionManager(t)
	d := &orderDeps{
		txManager:   txManager,
		tx:          newTxRepos(t, txManager),
		userRepo:    mockRepo.NewMockUserRepository(t),
		cakeRepo:    mockRepo.NewMockCakeRepository(t),
		addonRepo:   mockRepo.NewMockAddonRepository(t),
		areaRepo:    mockRepo.NewMockDeliveryAreaRepository(t),
		promoRepo:   mockRepo.NewMockPromoCodeRepository(t),
		orderRepo:   mockRepo.NewMockOrderRepository(t),
		publisher:   mockService.NewMockEventPublisher(t),
		broadcaster: mockService.NewMockRealtimeBroadcaster(t),
		config:      newTestConfig(5),
	}

	// Announcements are fire-and-forget; tests that care assert them explicitly.
	d.publisher.EXPECT().PublishOrderEvent(mock.Anything, mock.Anything).Return(nil).Maybe()
	d.broadcaster.EXPECT().Broadcast(mock.Anything, mock.Anything).Maybe()
	d.broadcaster.EXPECT().SendToUser(mock.Anything, mock.Anything, mock.Anything).Maybe()

	return d
}

func (d *orderDeps) lifecycleParams() OrderLifecycleParams {
	return OrderLifecycleParams{
		TxManager:   d.txManager,
		Publisher:   d.publisher,
		Broadcaster: d.broadcaster,
		Config:      d.config,
		Logger:      newDiscardLogger(),
	}
}

func (d *orderDeps) pricerParams() CartPricerParams {
	return CartPricerParams{
		UserRepo:  d.userRepo,
		CakeRepo:  d.cakeRepo,
		AddonRepo: d.addonRepo,
		AreaRepo:  d.areaRepo,
		PromoRepo: d.promoRepo,
		Config:    d.config,
	}
}

func testCake() *entity.Cake {
	return &entity.Cake{
		ID:        uuid.New(),
		Name:      "Black Forest",
		BasePrice: decimal.NewFromInt(450),
		WeightOptions: []entity.WeightOption{
			{Weight: "500g", Price: decimal.NewFromInt(450)},
			{Weight: "1kg", Price: decimal.NewFromInt(850)},
		},
		Flavors:     []string{"chocolate", "vanilla"},
		Images:      []string{"https://cdn.example.com/black-forest.jpg"},
		IsAvailable: true,
	}
}

func testAddon() *entity.Addon {
	return &entity.Addon{
		ID:          uuid.New(),
		Name:        "Candles",
		Price:       decimal.NewFromInt(25),
		IsAvailable: true,
	}
}

func testAddress() entity.Address {
	return entity.Address{
		Name:    "Asha",
		Phone:   "9876543210",
		Line1:   "12 MG Road",
		City:    "Bengaluru",
		Pincode: "560001",
	}
}

func testArea() *entity.DeliveryArea {
	return &entity.DeliveryArea{
		ID:                    uuid.New(),
		Name:                  "Central",
		Pincodes:              []string{"560001"},
		DeliveryFee:           decimal.NewFromInt(50),
		FreeDeliveryThreshold: decimal.NewFromInt(2000),
		IsActive:              true,
	}
}

func tomorrow() string {
	return time.Now().AddDate(0, 0, 1).Format("2006-01-02")
}

// placedOrder returns a stored order in the given state, owned by userID.
func placedOrder(userID uuid.UUID, status entity.OrderStatus, method entity.PaymentMethod) *entity.Order {
	return &entity.Order{
		ID:            uuid.New(),
		OrderNumber:   "CK261015123456",
		UserID:        userID,
		Items:         []entity.OrderItem{{CakeID: uuid.New(), CakeName: "Black Forest", Quantity: 1, UnitPrice: decimal.NewFromInt(850), LineTotal: decimal.NewFromInt(850)}},
		Subtotal:      decimal.NewFromInt(850),
		DeliveryFee:   decimal.NewFromInt(50),
		Discount:      decimal.Zero,
		WalletUsed:    decimal.Zero,
		Total:         decimal.NewFromInt(900),
		Status:        status,
		PaymentMethod: method,
		PaymentStatus: entity.PaymentStatusPending,
	}
}

// decimalEq matches a decimal argument by value rather than representation.
func decimalEq(n int64) interface{} {
	want := decimal.NewFromInt(n)

	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(want) })
}
