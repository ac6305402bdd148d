package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"cakes/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(level string, size int) *qrcodeService {
	cfg := &config.Config{QRCode: &config.QRCodeConfig{
		Size:                 size,
		ErrorCorrectionLevel: level,
		TrackingURL:          "https://cakesbuy.example/track/",
	}}

	return NewQRCodeService(cfg).(*qrcodeService)
}

func TestNewQRCodeService_Defaults(t *testing.T) {
	srv := NewQRCodeService(&config.Config{}).(*qrcodeService)

	assert.Equal(t, defaultSize, srv.size)
	assert.Empty(t, srv.trackingURL)
}

func TestNewQRCodeService_TrimsTrackingURL(t *testing.T) {
	srv := newTestService("M", 128)

	assert.Equal(t, "https://cakesbuy.example/track", srv.trackingURL)
}

func TestQRCodeService_GenerateTrackingQR(t *testing.T) {
	tests := []struct {
		name  string
		level string
		size  int
	}{
		{"Low error correction", "L", 128},
		{"Medium error correction", "medium", 256},
		{"High error correction", "Q", 256},
		{"Highest error correction", "H", 512},
		{"Unknown level falls back", "bogus", 256},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestService(tt.level, tt.size)

			qrBytes, err := srv.GenerateTrackingQR("CK250101123456")
			require.NoError(t, err)

			img, err := png.Decode(bytes.NewReader(qrBytes))
			require.NoError(t, err)
			assert.Equal(t, tt.size, img.Bounds().Dx())
		})
	}
}

func TestQRCodeService_GenerateTrackingQR_InvalidOrderNumber(t *testing.T) {
	srv := newTestService("M", 256)

	for _, number := range []string{"", "CK123", "XX250101123456", "CK25010112345A"} {
		_, err := srv.GenerateTrackingQR(number)
		assert.Error(t, err, number)
	}
}

func TestQRCodeService_ParseTrackingQR(t *testing.T) {
	srv := newTestService("M", 256)

	tests := []struct {
		name    string
		data    string
		want    string
		wantErr bool
	}{
		{name: "tracking url", data: "https://cakesbuy.example/track/CK250101123456", want: "CK250101123456"},
		{name: "bare number", data: " CK250101123456 ", want: "CK250101123456"},
		{name: "other url", data: "https://cakesbuy.example/track/", wantErr: true},
		{name: "garbage", data: "hello", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := srv.ParseTrackingQR(tt.data)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
