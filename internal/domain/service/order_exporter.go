package service

import (
	"io"

	"cakes/internal/domain/entity"
)

// OrderExporter writes orders as a spreadsheet.
type OrderExporter interface {
	ExportOrders(w io.Writer, orders []*entity.Order) error
}
