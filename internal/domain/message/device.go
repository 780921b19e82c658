package message

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"portal/internal/domain/entity"
	"portal/internal/util"
)

const (
	notAvailable      = "N/A"
	maxListedDevices  = 20
	noConnectedHosts  = "Tidak ada perangkat yang terhubung."
	noDevicesInFleet  = "Tidak ada perangkat yang ditemukan."
	deviceListHeading = "*Daftar Perangkat dan Informasi Pelanggan*\n\n"
)

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return notAvailable
	}

	return s
}

func rxPowerText(s entity.DeviceSnapshot) string {
	if s.RXPower == nil {
		return notAvailable
	}

	return util.FormatDBm(*s.RXPower)
}

func onlineText(online bool) string {
	if online {
		return "Online ✅"
	}

	return "Offline ❌"
}

// StatusBody renders the reply of the status command.
func StatusBody(s entity.DeviceSnapshot) string {
	var b strings.Builder
	b.WriteString("Status: *" + onlineText(s.Online) + "*\n")
	b.WriteString("Model: " + orNA(s.Model) + "\n")
	b.WriteString("Serial Number: " + orNA(s.SerialNumber) + "\n")
	b.WriteString("Nomor Pelanggan: *" + orNA(s.CustomerNumber) + "*\n")
	b.WriteString("Username PPPoE: " + orNA(s.PPPUsername) + "\n")
	b.WriteString("MAC Address: " + orNA(s.MACAddress) + "\n")
	b.WriteString("Uptime: " + orNA(s.Uptime) + "\n\n")
	b.WriteString("RX Power: " + rxPowerText(s) + "\n\n")
	b.WriteString("📶 *Informasi WiFi*\n")
	writeWiFi(&b, s)

	return strings.TrimSuffix(b.String(), "\n")
}

func writeWiFi(b *strings.Builder, s entity.DeviceSnapshot) {
	b.WriteString("SSID 2.4G: *" + orNA(s.SSID2G) + "*\n")
	b.WriteString("SSID 5G: *" + orNA(s.SSID5G) + "*\n")
	b.WriteString("Perangkat Terhubung 2.4G: " + strconv.Itoa(s.Clients2G) + "\n")
	b.WriteString("Perangkat Terhubung 5G: " + strconv.Itoa(s.Clients5G) + "\n")
}

// ConnectedHostsBody renders the reply of the devices command.
func ConnectedHostsBody(hosts []entity.ConnectedHost) string {
	if len(hosts) == 0 {
		return noConnectedHosts
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Total Perangkat Terhubung: *%d*\n\n", len(hosts))
	for i, h := range hosts {
		fmt.Fprintf(&b, "📱 *Perangkat %d*\n", i+1)
		b.WriteString("Nama: " + h.HostName + "\n")
		b.WriteString("IP: " + h.IPAddress + "\n")
		b.WriteString("MAC: " + h.MACAddress + "\n")
		b.WriteString("Tipe: " + h.InterfaceType + "\n\n")
	}

	return strings.TrimSuffix(b.String(), "\n\n")
}

// UserInfoBody renders the admin view of one customer.
func UserInfoBody(s entity.DeviceSnapshot, hosts []entity.ConnectedHost) string {
	signal := notAvailable
	if s.RXPower != nil {
		signal = s.RXPowerClass.Label()
	}

	var b strings.Builder
	b.WriteString("💻 *Informasi Perangkat*\n")
	b.WriteString("Model: " + orNA(s.Model) + "\n")
	b.WriteString("Serial Number: " + orNA(s.SerialNumber) + "\n")
	b.WriteString("Nomor Pelanggan: *" + orNA(s.CustomerNumber) + "*\n")
	b.WriteString("MAC Address: " + orNA(s.MACAddress) + "\n")
	b.WriteString("Uptime: " + orNA(s.Uptime) + "\n\n")

	b.WriteString("🔑 *Informasi Akun*\n")
	b.WriteString("Username PPPoE: " + orNA(s.PPPUsername) + "\n")
	b.WriteString("Password PPPoE: " + orNA(s.PPPPassword) + "\n")
	b.WriteString("IP Address: " + orNA(s.PPPoEIP) + "\n\n")

	b.WriteString("📶 *Informasi Sinyal*\n")
	b.WriteString("RX Power: " + rxPowerText(s) + "\n")
	b.WriteString("Kualitas Sinyal: " + signal + "\n\n")

	b.WriteString("📱 *Informasi WiFi*\n")
	writeWiFi(&b, s)

	if len(hosts) > 0 {
		b.WriteString("\n📱 *Daftar Perangkat Terhubung*\n")
		for i, h := range hosts {
			fmt.Fprintf(&b, "\n%d. %s\n", i+1, h.HostName)
			b.WriteString("   IP: " + h.IPAddress + "\n")
			b.WriteString("   MAC: " + h.MACAddress + "\n")
		}
	}

	return strings.TrimSuffix(b.String(), "\n")
}

// DeviceListEntry is one row of the fleet listing.
type DeviceListEntry struct {
	CustomerNumber string
	PPPUsername    string
	PPPoEIP        string
}

// DeviceListBody renders the listdevices reply. Rows are ordered by customer
// number with unnumbered devices last, and only the first twenty are shown.
func DeviceListBody(entries []DeviceListEntry) string {
	if len(entries) == 0 {
		return noDevicesInFleet
	}

	rows := make([]DeviceListEntry, len(entries))
	copy(rows, entries)
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i].CustomerNumber, rows[j].CustomerNumber
		switch {
		case a == "":
			return false
		case b == "":
			return true
		default:
			return a < b
		}
	})

	var b strings.Builder
	b.WriteString(deviceListHeading)
	fmt.Fprintf(&b, "Total Perangkat: %d\n\n", len(rows))

	for i, row := range rows {
		if i == maxListedDevices {
			fmt.Fprintf(&b, "...dan %d perangkat lainnya.\n", len(rows)-maxListedDevices)
			break
		}
		fmt.Fprintf(&b, "%d. *%s*\n", i+1, orNA(row.CustomerNumber))
		b.WriteString("   Username PPPoE: " + orNA(row.PPPUsername) + "\n")
		b.WriteString("   IP PPPoE: " + orNA(row.PPPoEIP) + "\n\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// WiFiChangedNotice tells a customer that an administrator changed their WiFi.
func WiFiChangedNotice(setting, value string) string {
	return setting + " perangkat Anda telah diubah oleh administrator.\n\n" +
		setting + " baru: *" + value + "*"
}

// WiFiUpdateResult picks the portal confirmation for the fields that were changed.
func WiFiUpdateResult(u entity.WiFiUpdate) string {
	ssid2, ssid5 := u.SSID2G != "", u.SSID5G != ""
	pass2, pass5 := u.Password2G != "", u.Password5G != ""

	switch {
	case ssid2 && !ssid5 && !pass2 && !pass5:
		return "SSID 2.4G berhasil diperbarui"
	case !ssid2 && ssid5 && !pass2 && !pass5:
		return "SSID 5G berhasil diperbarui"
	case !ssid2 && !ssid5 && pass2 && !pass5:
		return "Password WiFi 2.4G berhasil diperbarui"
	case !ssid2 && !ssid5 && !pass2 && pass5:
		return "Password WiFi 5G berhasil diperbarui"
	case ssid2 && ssid5 && !pass2 && !pass5:
		return "SSID 2.4G dan 5G berhasil diperbarui"
	case !ssid2 && !ssid5 && pass2 && pass5:
		return "Password WiFi 2.4G dan 5G berhasil diperbarui"
	default:
		return "Pengaturan WiFi berhasil diperbarui"
	}
}
