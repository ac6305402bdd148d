package entity

import (
	"regexp"
	"slices"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertMoney(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Equal(t, want, got.StringFixed(2))
}

func TestPromoCode_Check(t *testing.T) {
	now := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)
	tomorrow := now.AddDate(0, 0, 1)

	tests := []struct {
		name     string
		promo    PromoCode
		subtotal string
		want     PromoCheck
	}{
		{"valid", PromoCode{IsActive: true, MinOrderValue: money("500")}, "500", PromoOK},
		{"inactive", PromoCode{IsActive: false}, "1000", PromoInactive},
		{"not started", PromoCode{IsActive: true, ValidFrom: &tomorrow}, "1000", PromoExpired},
		{"ended", PromoCode{IsActive: true, ValidUntil: &yesterday}, "1000", PromoExpired},
		{"usage exhausted", PromoCode{IsActive: true, UsageLimit: 5, UsedCount: 5}, "1000", PromoUsageExceeded},
		{"unlimited usage", PromoCode{IsActive: true, UsedCount: 100}, "1000", PromoOK},
		{"below minimum", PromoCode{IsActive: true, MinOrderValue: money("500")}, "499.99", PromoMinOrderNotMet},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.promo.Check(now, money(tt.subtotal)))
		})
	}
}

func TestPromoCode_DiscountFor(t *testing.T) {
	tests := []struct {
		name     string
		promo    PromoCode
		subtotal string
		want     string
	}{
		{"percentage", PromoCode{DiscountType: DiscountTypePercentage, DiscountValue: money("10")}, "1000", "100.00"},
		{"percentage capped", PromoCode{DiscountType: DiscountTypePercentage, DiscountValue: money("10"), MaxDiscount: money("50")}, "1000", "50.00"},
		{"percentage rounded", PromoCode{DiscountType: DiscountTypePercentage, DiscountValue: money("12.5")}, "99.99", "12.50"},
		{"fixed", PromoCode{DiscountType: DiscountTypeFixed, DiscountValue: money("200")}, "1000", "200.00"},
		{"fixed above subtotal", PromoCode{DiscountType: DiscountTypeFixed, DiscountValue: money("200")}, "150", "150.00"},
		{"unknown type", PromoCode{DiscountType: "bogo", DiscountValue: money("200")}, "1000", "0.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertMoney(t, tt.want, tt.promo.DiscountFor(money(tt.subtotal)))
		})
	}
}

func TestDeliveryArea_Coverage(t *testing.T) {
	polygon := &DeliveryArea{
		Pincodes: []string{"560001", "560002"},
		Boundary: [][2]float64{{77.5, 12.9}, {77.7, 12.9}, {77.7, 13.1}, {77.5, 13.1}},
	}
	radius := &DeliveryArea{CenterLatitude: 12.97, CenterLongitude: 77.59, RadiusKm: 5}

	assert.True(t, polygon.HasPincode("560002"))
	assert.False(t, polygon.HasPincode("110001"))
	assert.False(t, polygon.HasPincode(""))

	assert.True(t, polygon.ContainsPoint(13.0, 77.6))
	assert.False(t, polygon.ContainsPoint(13.5, 78.5))

	assert.True(t, radius.ContainsPoint(12.99, 77.59))
	assert.False(t, radius.ContainsPoint(13.2, 77.59))

	assert.False(t, (&DeliveryArea{}).ContainsPoint(12.97, 77.59))
}

func TestDeliveryArea_FeeFor(t *testing.T) {
	area := &DeliveryArea{DeliveryFee: money("40"), FreeDeliveryThreshold: money("500")}

	assertMoney(t, "0.00", area.FeeFor(money("500")))
	assertMoney(t, "40.00", area.FeeFor(money("499")))

	area.FreeDeliveryThreshold = decimal.Zero
	assertMoney(t, "40.00", area.FeeFor(money("10000")))
}

func TestEventReminder_IsDue(t *testing.T) {
	date := func(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }
	now := time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		reminder       EventReminder
		now            time.Time
		wantDue        bool
		wantOccurrence time.Time
	}{
		{
			name:           "days before reached",
			reminder:       EventReminder{EventDate: date(1990, 10, 18), DaysBefore: 3, IsActive: true},
			now:            now,
			wantDue:        true,
			wantOccurrence: date(2026, 10, 18),
		},
		{
			name:           "already notified this year",
			reminder:       EventReminder{EventDate: date(1990, 10, 18), DaysBefore: 3, LastNotifiedYear: 2026, IsActive: true},
			now:            now,
			wantOccurrence: date(2026, 10, 18),
		},
		{
			name:           "passed rolls to next year",
			reminder:       EventReminder{EventDate: date(1990, 10, 10), DaysBefore: 3, IsActive: true},
			now:            now,
			wantOccurrence: date(2027, 10, 10),
		},
		{
			name:           "feb 29 in a common year",
			reminder:       EventReminder{EventDate: date(2000, 2, 29), DaysBefore: 3, IsActive: true},
			now:            date(2027, 2, 25),
			wantDue:        true,
			wantOccurrence: date(2027, 2, 28),
		},
		{
			name:           "feb 29 in a leap year",
			reminder:       EventReminder{EventDate: date(2000, 2, 29), DaysBefore: 3, IsActive: true},
			now:            date(2028, 2, 26),
			wantDue:        true,
			wantOccurrence: date(2028, 2, 29),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			occurrence, due := tt.reminder.IsDue(tt.now)
			assert.Equal(t, tt.wantDue, due)
			assert.True(t, tt.wantOccurrence.Equal(occurrence), "occurrence %s", occurrence)
		})
	}

	t.Run("inactive", func(t *testing.T) {
		_, due := (&EventReminder{EventDate: date(1990, 10, 18), DaysBefore: 3}).IsDue(now)
		assert.False(t, due)
	})
}

func TestLoyaltyReward(t *testing.T) {
	points, cashback := LoyaltyReward(money("1250"), 1, money("2"))
	assert.Equal(t, 12, points)
	assertMoney(t, "25.00", cashback)

	points, cashback = LoyaltyReward(money("99.99"), 1, money("2"))
	assert.Zero(t, points)
	assertMoney(t, "2.00", cashback)

	points, cashback = LoyaltyReward(decimal.Zero, 1, money("2"))
	assert.Zero(t, points)
	assert.True(t, cashback.IsZero())
}

func TestCake_PriceFor(t *testing.T) {
	cake := &Cake{
		BasePrice:     money("450"),
		WeightOptions: []WeightOption{{Weight: "500g", Price: money("500")}, {Weight: "1kg", Price: money("900")}},
	}

	price, ok := cake.PriceFor("1KG")
	require.True(t, ok)
	assertMoney(t, "900.00", price)

	price, ok = cake.PriceFor("")
	require.True(t, ok)
	assertMoney(t, "450.00", price)

	_, ok = cake.PriceFor("2kg")
	assert.False(t, ok)

	price, ok = (&Cake{BasePrice: money("300")}).PriceFor("2kg")
	require.True(t, ok)
	assertMoney(t, "300.00", price)
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "chocolate-truffle-cake", Slugify("Chocolate Truffle Cake!"))
	assert.Equal(t, "red-velvet", Slugify("  Red -- Velvet  "))
	assert.Equal(t, "50-off-photo-cake", Slugify("50% Off: Photo Cake"))
	assert.Empty(t, Slugify("!!!"))
}

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	allowed := map[OrderStatus][]OrderStatus{
		OrderStatusPending:        {OrderStatusConfirmed, OrderStatusCancelled},
		OrderStatusConfirmed:      {OrderStatusPreparing, OrderStatusCancelled},
		OrderStatusPreparing:      {OrderStatusOutForDelivery, OrderStatusCancelled},
		OrderStatusOutForDelivery: {OrderStatusDelivered},
	}
	all := []OrderStatus{
		OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing,
		OrderStatusOutForDelivery, OrderStatusDelivered, OrderStatusCancelled,
	}

	for _, from := range all {
		for _, to := range all {
			assert.Equal(t, slices.Contains(allowed[from], to), from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
	assert.True(t, OrderStatusDelivered.IsTerminal())
	assert.True(t, OrderStatusCancelled.IsTerminal())
	assert.False(t, OrderStatus("lost").IsValid())
}

func TestOrder_ApplyStatusAndRefund(t *testing.T) {
	at := time.Date(2026, 10, 15, 18, 0, 0, 0, time.UTC)

	cod := &Order{PaymentMethod: PaymentMethodCOD, PaymentStatus: PaymentStatusPending, Total: money("500"), WalletUsed: money("100")}
	assertMoney(t, "100.00", cod.RefundableAmount())
	cod.ApplyStatus(OrderStatusDelivered, at)
	assert.Equal(t, PaymentStatusPaid, cod.PaymentStatus)
	require.NotNil(t, cod.DeliveredAt)
	assert.Equal(t, at, *cod.DeliveredAt)

	online := &Order{PaymentMethod: PaymentMethodOnline, PaymentStatus: PaymentStatusPaid, Total: money("500"), WalletUsed: money("100")}
	assertMoney(t, "600.00", online.RefundableAmount())
	online.ApplyStatus(OrderStatusCancelled, at)
	assert.Equal(t, PaymentStatusPaid, online.PaymentStatus)
	assert.NotNil(t, online.CancelledAt)
}

func TestOrder_Tracking(t *testing.T) {
	cakeID := uuid.New()
	order := &Order{
		OrderNumber: "CK261015000042",
		Status:      OrderStatusPreparing,
		Items:       []OrderItem{{CakeID: cakeID, Quantity: 2}, {CakeID: uuid.New(), Quantity: 1}},
	}

	view := order.Tracking()
	assert.Equal(t, 3, view.ItemCount)
	assert.Equal(t, OrderStatusPreparing, view.Status)
	assert.True(t, order.ContainsCake(cakeID))
	assert.False(t, order.ContainsCake(uuid.New()))
}

func TestNewOrderNumber(t *testing.T) {
	number, err := NewOrderNumber(time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^CK261015\d{6}$`), number)
}

func TestRoles(t *testing.T) {
	roles := RolesFromStrings([]string{"admin", "bogus", "vendor"})
	assert.Equal(t, Roles{RoleAdmin, RoleVendor}, roles)
	assert.Equal(t, []string{"admin", "vendor"}, roles.ToStrings())
	assert.True(t, roles.HasStaffRole())
	assert.False(t, Roles{RoleCustomer}.HasStaffRole())
	assert.False(t, RoleCustomer.IsStaffRole())
}
