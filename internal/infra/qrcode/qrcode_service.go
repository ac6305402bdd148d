// Package qrcode renders order tracking QR codes.
package qrcode

import (
	"net/url"
	"path"
	"regexp"
	"strings"

	"cakes/config"
	"cakes/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

var orderNumberPattern = regexp.MustCompile(`^CK\d{12}$`)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	trackingURL          string
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	qrCfg := cfg.QRCode
	if qrCfg == nil {
		qrCfg = &config.QRCodeConfig{}
	}

	size := qrCfg.Size
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: recoveryLevel(qrCfg.ErrorCorrectionLevel),
		trackingURL:          strings.TrimRight(qrCfg.TrackingURL, "/"),
	}
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(level) {
	case "L", "LOW":
		return qrcode.Low
	case "Q", "HIGH":
		return qrcode.High
	case "H", "HIGHEST":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateTrackingQR encodes the tracking page URL of an order as a PNG.
func (s *qrcodeService) GenerateTrackingQR(orderNumber string) ([]byte, error) {
	if !orderNumberPattern.MatchString(orderNumber) {
		return nil, errors.Errorf("invalid order number: %s", orderNumber)
	}

	content := orderNumber
	if s.trackingURL != "" {
		content = s.trackingURL + "/" + url.PathEscape(orderNumber)
	}

	pngBytes, err := qrcode.Encode(content, s.errorCorrectionLevel, s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate QR code")
	}

	return pngBytes, nil
}

// ParseTrackingQR accepts either a tracking URL or a bare order number.
func (s *qrcodeService) ParseTrackingQR(qrData string) (string, error) {
	candidate := strings.TrimSpace(qrData)
	if u, err := url.Parse(candidate); err == nil && u.Scheme != "" {
		candidate = path.Base(u.Path)
	}

	if !orderNumberPattern.MatchString(candidate) {
		return "", errors.Errorf("QR code does not reference an order: %q", qrData)
	}

	return candidate, nil
}
