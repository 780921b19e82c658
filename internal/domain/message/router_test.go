package message

import (
	"strings"
	"testing"

	"portal/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestProfileChangedBody(t *testing.T) {
	assert.Equal(t, "Username : budi\nProfile : 20M", ProfileChangedBody("budi", "20M", 0))
	assert.Equal(t,
		"Username : budi\nProfile : 20M\n\nSesi aktif telah dihapus, perangkat akan terhubung kembali dengan profile baru.",
		ProfileChangedBody("budi", "20M", 2))
}

func TestPPPoESecretsBody_Comments(t *testing.T) {
	got := PPPoESecretsBody([]entity.PPPSecret{
		{Name: "a", Profile: "10M", Service: "pppoe", Comment: "apr/18/2025 14:55:20"},
		{Name: "b", Profile: "20M", Service: "pppoe", Disabled: true, Comment: "rumah biru"},
	})

	assert.Contains(t, got, "🔑 *a*\n   Profile: 10M\n   Service: pppoe\n   Status: Enabled\n   Masa aktif: apr/18/2025 14:55:20\n")
	assert.Contains(t, got, "   Status: Disabled\n   Ket: rumah biru")
	assert.Equal(t, "Tidak ada secret PPPoE yang ditemukan", PPPoESecretsBody(nil))
}

func TestOfflinePPPoEBody(t *testing.T) {
	assert.Equal(t, "Semua user PPPoE sedang online. Tidak ada user yang offline.", OfflinePPPoEBody(nil))

	got := OfflinePPPoEBody([]entity.PPPSecret{{Name: "c", Profile: "10M", LastLoggedOut: "oct/01/2026 10:00:00"}})
	assert.Equal(t, "*Daftar User PPPoE Offline*\n\n🔴 *c*\n   Profile: 10M\n   Terakhir Online: oct/01/2026 10:00:00", got)
}

func TestPPPoEProfilesBody(t *testing.T) {
	got := PPPoEProfilesBody([]entity.PPPProfile{{Name: "20M", RateLimit: "20M/20M"}, {Name: "default"}})

	assert.Equal(t, "*Daftar Profile PPPoE*\n\n📌 *20M*\n   Rate Limit: 20M/20M\n\n📌 *default*", got)
}

func TestHotspotSessionsBody(t *testing.T) {
	assert.Equal(t, "Tidak ada user hotspot yang aktif saat ini", HotspotSessionsBody(nil))

	got := HotspotSessionsBody([]entity.HotspotSession{{User: "tamu", Address: "10.5.50.2", Uptime: "1h"}})
	assert.Contains(t, got, "Total user aktif: 1\n\n👤 *tamu*\n   IP Address: 10.5.50.2\n   Uptime: 1h")
}

func TestResourceBody(t *testing.T) {
	ifaces := make([]entity.RouterInterface, 7)
	for i := range ifaces {
		ifaces[i] = entity.RouterInterface{Name: "ether" + string(rune('1'+i))}
	}
	ifaces[0].Comment = "WAN"

	got := ResourceBody(entity.RouterResource{
		Identity:      "core",
		CPULoad:       "12",
		FreeMemory:    25,
		TotalMemory:   100,
		Uptime:        "1w2d",
		Voltage:       "24",
		RunningIfaces: ifaces,
	})

	assert.Contains(t, got, "💻 *Router:* core")
	assert.Contains(t, got, "   - CPU Load: 12%\n   - Memory Usage: 75%\n   - Disk Usage: N/A\n")
	assert.Contains(t, got, "   - Voltage: 24V\n")
	assert.Contains(t, got, "   - Active Interfaces: 7\n      - ether1 (WAN)\n")
	assert.True(t, strings.HasSuffix(got, "      - ... dan 2 interface lainnya"))
}

func TestBandwidthBody(t *testing.T) {
	assert.Equal(t,
		"*Informasi Bandwidth Router*\n\nTidak ada interface yang tersedia untuk monitoring bandwidth.",
		BandwidthBody(nil))

	got := BandwidthBody([]entity.InterfaceTraffic{{
		Interface: entity.RouterInterface{Name: "ether1", Comment: "WAN"},
		RxBPS:     12_500_000,
		TxBPS:     800,
	}})
	assert.Equal(t, "*Informasi Bandwidth Router*\n\n📊 *ether1* (WAN):\n   - Download: 12.5 Mbps\n   - Upload: 800.0 bps", got)
}
