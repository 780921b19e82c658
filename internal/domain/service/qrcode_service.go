package service

// QRCodeService renders QR codes as PNG images.
type QRCodeService interface {
	// GenerateWiFiQR encodes a WPA network join payload.
	GenerateWiFiQR(ssid, password string) ([]byte, error)
}
