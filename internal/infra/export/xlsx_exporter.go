// Package export renders back-office spreadsheets.
package export

import (
	"io"
	"strconv"
	"strings"

	"cakes/internal/domain/entity"
	"cakes/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/tealeg/xlsx"
)

const (
	ordersSheet    = "Orders"
	dateTimeFormat = "2006-01-02 15:04:05"
)

var orderHeaders = []string{
	"Order Number", "Placed At", "Status", "Payment Method", "Payment Status",
	"Customer Name", "Customer Phone", "City", "Pincode", "Delivery Date", "Delivery Slot",
	"Items", "Subtotal", "Delivery Fee", "Discount", "Wallet Used", "Total", "Promo Code",
}

type xlsxExporter struct{}

// NewOrderExporter creates the xlsx order exporter.
func NewOrderExporter() service.OrderExporter {
	return &xlsxExporter{}
}

func (e *xlsxExporter) ExportOrders(w io.Writer, orders []*entity.Order) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet(ordersSheet)
	if err != nil {
		return errors.Wrap(err, "failed to create orders sheet")
	}

	header := sheet.AddRow()
	for _, h := range orderHeaders {
		header.AddCell().SetString(h)
	}

	for _, order := range orders {
		row := sheet.AddRow()

		row.AddCell().SetString(order.OrderNumber)
		row.AddCell().SetString(order.CreatedAt.Format(dateTimeFormat))
		row.AddCell().SetString(string(order.Status))
		row.AddCell().SetString(string(order.PaymentMethod))
		row.AddCell().SetString(string(order.PaymentStatus))
		row.AddCell().SetString(order.DeliveryAddress.Name)
		row.AddCell().SetString(order.DeliveryAddress.Phone)
		row.AddCell().SetString(order.DeliveryAddress.City)
		row.AddCell().SetString(order.DeliveryAddress.Pincode)
		row.AddCell().SetString(order.Delivery.Date)
		row.AddCell().SetString(order.Delivery.Slot)
		row.AddCell().SetString(itemSummary(order.Items))
		row.AddCell().SetFloat(order.Subtotal.InexactFloat64())
		row.AddCell().SetFloat(order.DeliveryFee.InexactFloat64())
		row.AddCell().SetFloat(order.Discount.InexactFloat64())
		row.AddCell().SetFloat(order.WalletUsed.InexactFloat64())
		row.AddCell().SetFloat(order.Total.InexactFloat64())
		row.AddCell().SetString(order.PromoCode)
	}

	return errors.Wrap(file.Write(w), "failed to write orders workbook")
}

// itemSummary renders lines as "2 x Chocolate Truffle (1kg); 1 x Red Velvet".
func itemSummary(items []entity.OrderItem) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		part := strconv.Itoa(item.Quantity) + " x " + item.CakeName
		if item.Weight != "" {
			part += " (" + item.Weight + ")"
		}
		parts = append(parts, part)
	}

	return strings.Join(parts, "; ")
}
