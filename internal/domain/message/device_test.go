package message

import (
	"fmt"
	"strings"
	"testing"

	"portal/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestStatusBody(t *testing.T) {
	rx := -23.456
	snap := entity.DeviceSnapshot{
		Online:         true,
		Model:          "F609",
		CustomerNumber: "081234567890",
		SSID2G:         "MyHome",
		Clients2G:      3,
		RXPower:        &rx,
	}

	got := StatusBody(snap)

	assert.True(t, strings.HasPrefix(got, "Status: *Online ✅*\nModel: F609\nSerial Number: N/A\n"))
	assert.Contains(t, got, "Nomor Pelanggan: *081234567890*\n")
	assert.Contains(t, got, "RX Power: -23.46 dBm\n\n")
	assert.Contains(t, got, "SSID 2.4G: *MyHome*\nSSID 5G: *N/A*\n")
	assert.True(t, strings.HasSuffix(got, "Perangkat Terhubung 2.4G: 3\nPerangkat Terhubung 5G: 0"))
}

func TestStatusBody_Offline(t *testing.T) {
	got := StatusBody(entity.DeviceSnapshot{})

	assert.Contains(t, got, "Status: *Offline ❌*")
	assert.Contains(t, got, "RX Power: N/A")
	assert.Contains(t, got, "Uptime: N/A")
}

func TestConnectedHostsBody(t *testing.T) {
	assert.Equal(t, "Tidak ada perangkat yang terhubung.", ConnectedHostsBody(nil))

	got := ConnectedHostsBody([]entity.ConnectedHost{
		{HostName: "laptop", IPAddress: "192.168.1.2", MACAddress: "AA:BB", InterfaceType: "802.11"},
	})

	assert.Equal(t, "Total Perangkat Terhubung: *1*\n\n"+
		"📱 *Perangkat 1*\nNama: laptop\nIP: 192.168.1.2\nMAC: AA:BB\nTipe: 802.11", got)
}

func TestUserInfoBody(t *testing.T) {
	rx := -26.0
	snap := entity.DeviceSnapshot{
		PPPUsername:  "budi@isp",
		PPPPassword:  "secret",
		RXPower:      &rx,
		RXPowerClass: entity.ClassifyRXPower(rx),
	}
	hosts := []entity.ConnectedHost{{HostName: "phone", IPAddress: "10.0.0.2", MACAddress: "CC:DD"}}

	got := UserInfoBody(snap, hosts)

	assert.Contains(t, got, "🔑 *Informasi Akun*\nUsername PPPoE: budi@isp\nPassword PPPoE: secret\n")
	assert.Contains(t, got, "Kualitas Sinyal: Sedang")
	assert.Contains(t, got, "📱 *Daftar Perangkat Terhubung*\n\n1. phone\n   IP: 10.0.0.2\n   MAC: CC:DD")
}

func TestDeviceListBody(t *testing.T) {
	assert.Equal(t, "Tidak ada perangkat yang ditemukan.", DeviceListBody(nil))

	got := DeviceListBody([]DeviceListEntry{
		{PPPUsername: "orphan"},
		{CustomerNumber: "0822", PPPUsername: "b"},
		{CustomerNumber: "0811", PPPUsername: "a", PPPoEIP: "10.1.1.1"},
	})

	want := "*Daftar Perangkat dan Informasi Pelanggan*\n\n" +
		"Total Perangkat: 3\n\n" +
		"1. *0811*\n   Username PPPoE: a\n   IP PPPoE: 10.1.1.1\n\n" +
		"2. *0822*\n   Username PPPoE: b\n   IP PPPoE: N/A\n\n" +
		"3. *N/A*\n   Username PPPoE: orphan\n   IP PPPoE: N/A"
	assert.Equal(t, want, got)
}

func TestDeviceListBody_Truncates(t *testing.T) {
	entries := make([]DeviceListEntry, 23)
	for i := range entries {
		entries[i] = DeviceListEntry{CustomerNumber: fmt.Sprintf("08%02d", i)}
	}

	got := DeviceListBody(entries)

	assert.Contains(t, got, "20. *0819*")
	assert.NotContains(t, got, "21. ")
	assert.True(t, strings.HasSuffix(got, "...dan 3 perangkat lainnya."))
}

func TestWiFiChangedNotice(t *testing.T) {
	assert.Equal(t,
		"SSID 2.4G perangkat Anda telah diubah oleh administrator.\n\nSSID 2.4G baru: *MyHome-5G*",
		WiFiChangedNotice("SSID 2.4G", "MyHome-5G"))
}

func TestWiFiUpdateResult(t *testing.T) {
	tests := []struct {
		name   string
		update entity.WiFiUpdate
		want   string
	}{
		{name: "ssid 2g", update: entity.WiFiUpdate{SSID2G: "a"}, want: "SSID 2.4G berhasil diperbarui"},
		{name: "ssid 5g", update: entity.WiFiUpdate{SSID5G: "a"}, want: "SSID 5G berhasil diperbarui"},
		{name: "pass 2g", update: entity.WiFiUpdate{Password2G: "a"}, want: "Password WiFi 2.4G berhasil diperbarui"},
		{name: "pass 5g", update: entity.WiFiUpdate{Password5G: "a"}, want: "Password WiFi 5G berhasil diperbarui"},
		{name: "both ssid", update: entity.WiFiUpdate{SSID2G: "a", SSID5G: "b"}, want: "SSID 2.4G dan 5G berhasil diperbarui"},
		{name: "both pass", update: entity.WiFiUpdate{Password2G: "a", Password5G: "b"}, want: "Password WiFi 2.4G dan 5G berhasil diperbarui"},
		{name: "mixed", update: entity.WiFiUpdate{SSID2G: "a", Password2G: "b"}, want: "Pengaturan WiFi berhasil diperbarui"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WiFiUpdateResult(tt.update))
		})
	}
}
