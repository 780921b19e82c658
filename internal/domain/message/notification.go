package message

import (
	"fmt"
	"strconv"
	"strings"

	"portal/internal/domain/entity"
)

// GatewayTestText is sent to the admin number to check the gateway settings.
func GatewayTestText(isp string) string {
	return "Ini adalah pesan test dari " + isp + ". Jika Anda menerima pesan ini, berarti pengaturan WhatsApp gateway berhasil."
}

// GroupTestText is sent to the configured group to check delivery.
func GroupTestText(isp string) string {
	return "Ini adalah pesan test ke group WhatsApp dari " + isp + "."
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}

	return s
}

// TroubleReportText renders a customer complaint for the admin and the group.
// The timestamp is shown in WIB as "16/10/2026 10:05:00".
func TroubleReportText(r entity.TroubleReport) string {
	at := r.ReportedAt.In(WIB)

	clients5G := notAvailable
	if r.Clients5G > 0 {
		clients5G = strconv.Itoa(r.Clients5G)
	}

	var b strings.Builder
	b.WriteString("*Laporan Gangguan dari Pelanggan*\n")
	b.WriteString("Nomor Pelanggan: " + orDash(r.CustomerNumber) + "\n")
	b.WriteString("PPPoE Username: " + orDash(r.PPPUsername) + "\n")
	b.WriteString("Redaman (RXPower): " + orDash(r.RXPower) + "\n")
	b.WriteString("User Konek SSID 2.4G: " + strconv.Itoa(r.Clients2G) + "\n")
	b.WriteString("User Konek SSID 5G: " + clients5G + "\n")
	b.WriteString("Jenis Gangguan: " + orDash(r.Category) + "\n")
	if strings.TrimSpace(r.Note) != "" {
		b.WriteString("Keterangan: " + r.Note + "\n")
	}
	fmt.Fprintf(&b, "Waktu: %d/%d/%d %02d:%02d:%02d", at.Day(), int(at.Month()), at.Year(), at.Hour(), at.Minute(), at.Second())

	return b.String()
}
