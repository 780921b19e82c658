package message

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"portal/internal/domain/entity"
	"portal/internal/util"
)

const maxListedInterfaces = 5

// RouterOS writes expiry stamps like "apr/18/2025 14:55:20" into comments.
var expiryComment = regexp.MustCompile(`(?i)(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)/\d{1,2}/\d{4}\s\d{1,2}:\d{1,2}:\d{1,2}`)

func writeComment(b *strings.Builder, comment string) {
	if comment == "" {
		return
	}
	if expiryComment.MatchString(comment) {
		b.WriteString("   Masa aktif: " + comment + "\n")
		return
	}
	b.WriteString("   Ket: " + comment + "\n")
}

// AccountCreatedBody confirms a new hotspot user or PPPoE secret.
func AccountCreatedBody(username, password, profile string) string {
	return "Username : " + username + "\nPassword : " + password + "\nProfile  : " + profile
}

// ProfileChangedBody confirms a PPPoE profile change.
func ProfileChangedBody(username, profile string, droppedSessions int) string {
	body := "Username : " + username + "\nProfile : " + profile
	if droppedSessions > 0 {
		body += "\n\nSesi aktif telah dihapus, perangkat akan terhubung kembali dengan profile baru."
	}

	return body
}

// HotspotSessionsBody lists logged-in hotspot users.
func HotspotSessionsBody(sessions []entity.HotspotSession) string {
	if len(sessions) == 0 {
		return "Tidak ada user hotspot yang aktif saat ini"
	}

	var b strings.Builder
	b.WriteString("*Daftar User Hotspot Aktif*\n\n")
	fmt.Fprintf(&b, "Total user aktif: %d\n\n", len(sessions))
	for _, s := range sessions {
		b.WriteString("👤 *" + s.User + "*\n")
		b.WriteString("   IP Address: " + s.Address + "\n")
		b.WriteString("   Uptime: " + s.Uptime + "\n")
		if s.MAC != "" {
			b.WriteString("   MAC: " + s.MAC + "\n")
		}
		if s.LoginBy != "" {
			b.WriteString("   Login: " + s.LoginBy + "\n")
		}
		writeComment(&b, s.Comment)
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// PPPoESecretsBody lists every PPPoE secret.
func PPPoESecretsBody(secrets []entity.PPPSecret) string {
	if len(secrets) == 0 {
		return "Tidak ada secret PPPoE yang ditemukan"
	}

	var b strings.Builder
	b.WriteString("*Daftar Secret PPPoE*\n\n")
	for _, s := range secrets {
		status := "Enabled"
		if s.Disabled {
			status = "Disabled"
		}
		b.WriteString("🔑 *" + s.Name + "*\n")
		b.WriteString("   Profile: " + s.Profile + "\n")
		b.WriteString("   Service: " + s.Service + "\n")
		b.WriteString("   Status: " + status + "\n")
		writeComment(&b, s.Comment)
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// OfflinePPPoEBody lists enabled PPPoE secrets with no active session.
func OfflinePPPoEBody(secrets []entity.PPPSecret) string {
	if len(secrets) == 0 {
		return "Semua user PPPoE sedang online. Tidak ada user yang offline."
	}

	var b strings.Builder
	b.WriteString("*Daftar User PPPoE Offline*\n\n")
	for _, s := range secrets {
		b.WriteString("🔴 *" + s.Name + "*\n")
		b.WriteString("   Profile: " + s.Profile + "\n")
		if s.LastLoggedOut != "" {
			b.WriteString("   Terakhir Online: " + s.LastLoggedOut + "\n")
		}
		if s.Comment != "" {
			b.WriteString("   Keterangan: " + s.Comment + "\n")
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// PPPoEProfilesBody lists the PPP profiles.
func PPPoEProfilesBody(profiles []entity.PPPProfile) string {
	if len(profiles) == 0 {
		return "Tidak ada profile PPPoE yang ditemukan"
	}

	var b strings.Builder
	b.WriteString("*Daftar Profile PPPoE*\n\n")
	for _, p := range profiles {
		b.WriteString("📌 *" + p.Name + "*\n")
		if p.RateLimit != "" {
			b.WriteString("   Rate Limit: " + p.RateLimit + "\n")
		}
		if p.LocalAddress != "" {
			b.WriteString("   Local Address: " + p.LocalAddress + "\n")
		}
		if p.RemoteAddress != "" {
			b.WriteString("   Remote Address: " + p.RemoteAddress + "\n")
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func percentText(p float64) string {
	if p < 0 {
		return notAvailable
	}

	return strconv.Itoa(int(p+0.5)) + "%"
}

func ifaceLabel(iface entity.RouterInterface) string {
	if iface.Comment == "" {
		return iface.Name
	}

	return iface.Name + " (" + iface.Comment + ")"
}

// ResourceBody renders router health.
func ResourceBody(r entity.RouterResource) string {
	identity := r.Identity
	if identity == "" {
		identity = "Mikrotik Router"
	}
	cpu := notAvailable
	if r.CPULoad != "" {
		cpu = r.CPULoad + "%"
	}

	var b strings.Builder
	b.WriteString("*Informasi Resource Router*\n\n")
	b.WriteString("💻 *Router:* " + identity + "\n\n")
	b.WriteString("🔥 *CPU & Memory:*\n")
	b.WriteString("   - CPU Load: " + cpu + "\n")
	b.WriteString("   - Memory Usage: " + percentText(r.MemoryUsedPercent()) + "\n")
	b.WriteString("   - Disk Usage: " + percentText(r.HDDUsedPercent()) + "\n\n")
	b.WriteString("🕒 *Uptime:* " + orNA(r.Uptime) + "\n\n")

	if r.Temperature != "" || r.Voltage != "" || r.CPUTemperature != "" {
		b.WriteString("🌡️ *Health:*\n")
		if r.Temperature != "" {
			b.WriteString("   - Temperature: " + r.Temperature + "°C\n")
		}
		if r.Voltage != "" {
			b.WriteString("   - Voltage: " + r.Voltage + "V\n")
		}
		if r.CPUTemperature != "" {
			b.WriteString("   - CPU Temp: " + r.CPUTemperature + "°C\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("📶 *Network:*\n")
	fmt.Fprintf(&b, "   - Active Interfaces: %d\n", len(r.RunningIfaces))
	for i, iface := range r.RunningIfaces {
		if i == maxListedInterfaces {
			fmt.Fprintf(&b, "      - ... dan %d interface lainnya\n", len(r.RunningIfaces)-maxListedInterfaces)
			break
		}
		b.WriteString("      - " + ifaceLabel(iface) + "\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// BandwidthBody renders one traffic sample per interface.
func BandwidthBody(samples []entity.InterfaceTraffic) string {
	var b strings.Builder
	b.WriteString("*Informasi Bandwidth Router*\n\n")
	if len(samples) == 0 {
		b.WriteString("Tidak ada interface yang tersedia untuk monitoring bandwidth.")
		return b.String()
	}

	for _, s := range samples {
		b.WriteString("📊 *" + s.Interface.Name + "*")
		if s.Interface.Comment != "" {
			b.WriteString(" (" + s.Interface.Comment + ")")
		}
		b.WriteString(":\n")
		b.WriteString("   - Download: " + util.FormatBitsPerSecond(s.RxBPS) + "\n")
		b.WriteString("   - Upload: " + util.FormatBitsPerSecond(s.TxBPS) + "\n\n")
	}

	return strings.TrimRight(b.String(), "\n")
}
