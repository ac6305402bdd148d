package service

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateTrackingQR generates a PNG QR code that opens the order tracking page
	GenerateTrackingQR(orderNumber string) ([]byte, error)

	// ParseTrackingQR extracts the order number from scanned QR content
	ParseTrackingQR(qrData string) (string, error)
}
