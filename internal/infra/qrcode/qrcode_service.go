package qrcode

import (
	"fmt"
	"strings"

	"portal/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateWiFiQR generates a QR code that phones read as a WPA network join.
func (s *qrcodeService) GenerateWiFiQR(ssid, password string) ([]byte, error) {
	if ssid == "" {
		return nil, fmt.Errorf("ssid is required")
	}

	qrCode, err := qrcode.New(WiFiPayload(ssid, password), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	// Generate PNG image
	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

var wifiEscaper = strings.NewReplacer(`\`, `\\`, `;`, `\;`, `,`, `\,`, `:`, `\:`, `"`, `\"`)

// WiFiPayload builds the WIFI: URI understood by camera apps.
func WiFiPayload(ssid, password string) string {
	if password == "" {
		return fmt.Sprintf("WIFI:T:nopass;S:%s;;", wifiEscaper.Replace(ssid))
	}

	return fmt.Sprintf("WIFI:T:WPA;S:%s;P:%s;;", wifiEscaper.Replace(ssid), wifiEscaper.Replace(password))
}
