package export

import (
	"bytes"
	"testing"
	"time"

	"cakes/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"
)

func TestXlsxExporter_ExportOrders(t *testing.T) {
	orders := []*entity.Order{
		{
			OrderNumber:     "CK250101123456",
			CreatedAt:       time.Date(2025, 1, 1, 10, 30, 0, 0, time.UTC),
			Status:          entity.OrderStatusConfirmed,
			PaymentMethod:   entity.PaymentMethodCOD,
			PaymentStatus:   entity.PaymentStatusPending,
			DeliveryAddress: entity.Address{Name: "Priya", Phone: "9876543210", City: "Pune", Pincode: "411001"},
			Delivery:        entity.DeliveryOptions{Date: "2025-01-02", Slot: "18:00-21:00"},
			Items: []entity.OrderItem{
				{CakeName: "Chocolate Truffle", Weight: "1kg", Quantity: 2},
				{CakeName: "Red Velvet", Quantity: 1},
			},
			Subtotal:    decimal.RequireFromString("1499.50"),
			DeliveryFee: decimal.NewFromInt(50),
			Discount:    decimal.NewFromInt(100),
			Total:       decimal.RequireFromString("1449.50"),
			PromoCode:   "WELCOME100",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, NewOrderExporter().ExportOrders(&buf, orders))

	file, err := xlsx.OpenBinary(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, file.Sheets, 1)

	sheet := file.Sheets[0]
	assert.Equal(t, ordersSheet, sheet.Name)
	require.Len(t, sheet.Rows, 2)

	header := sheet.Rows[0].Cells
	require.Len(t, header, len(orderHeaders))
	assert.Equal(t, "Order Number", header[0].Value)

	row := sheet.Rows[1].Cells
	assert.Equal(t, "CK250101123456", row[0].Value)
	assert.Equal(t, "2025-01-01 10:30:00", row[1].Value)
	assert.Equal(t, "confirmed", row[2].Value)
	assert.Equal(t, "2 x Chocolate Truffle (1kg); 1 x Red Velvet", row[11].Value)
	assert.Equal(t, "1449.5", row[16].Value)
	assert.Equal(t, "WELCOME100", row[17].Value)
}

func TestXlsxExporter_ExportOrders_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewOrderExporter().ExportOrders(&buf, nil))

	file, err := xlsx.OpenBinary(buf.Bytes())
	require.NoError(t, err)
	assert.Len(t, file.Sheets[0].Rows, 1)
}
