package message

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// 2026-10-16 03:05 UTC is 10.05 on a Friday in WIB.
var fixedNow = func() time.Time { return time.Date(2026, 10, 16, 3, 5, 0, 0, time.UTC) }

func newTestFormatter() *Formatter {
	return NewFormatter(Branding{ISPName: "NetKita", SupportContact: "081234567890"}, fixedNow)
}

func TestFormatter_Format(t *testing.T) {
	got := newTestFormatter().Format("Status Perangkat", "Status: *Online ✅*")

	want := "╭───「 *NetKita* 」───╮\n" +
		"│ Jumat, 16 Oktober 2026\n" +
		"│ 10.05\n" +
		"╰────────────────╯\n\n" +
		"*Status Perangkat*\n" +
		"┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄\n\n" +
		"Status: *Online ✅*" +
		"\n\n┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄\n" +
		"_Pesan ini dikirim otomatis oleh sistem. Ketik *help* untuk bantuan._\n" +
		"╭───「 *NetKita* 」───╮\n" +
		"│ Layanan Pelanggan:\n" +
		"│ 081234567890\n" +
		"╰────────────────╯"

	assert.Equal(t, want, got)
}

func TestFormatter_Format_EmptyTitleAndContact(t *testing.T) {
	f := NewFormatter(Branding{ISPName: "WebPortal"}, fixedNow)

	got := f.Format("  ", "body")

	assert.NotContains(t, got, "*  *")
	assert.Contains(t, got, "╰────────────────╯\n\nbody\n\n")
	assert.True(t, strings.HasSuffix(got, "│ Admin\n╰────────────────╯"))
}

func TestLongDateAndClock_CrossMidnight(t *testing.T) {
	// 17:30 UTC on Saturday is already Sunday in WIB.
	ts := time.Date(2026, 1, 3, 17, 30, 0, 0, time.UTC).In(WIB)

	assert.Equal(t, "Minggu, 4 Januari 2026", LongDate(ts))
	assert.Equal(t, "00.30", ClockTime(ts))
}

func TestFormatter_Templates(t *testing.T) {
	f := newTestFormatter()

	assert.Contains(t, f.NotRegistered(), "*Tidak Terdaftar*")
	assert.Contains(t, f.AdminOnly(), "⛔ Maaf, perintah ini hanya dapat diakses oleh admin.")
	assert.Contains(t, f.Error("timeout"), "❌ Maaf, terjadi kesalahan: timeout")
	assert.Contains(t, f.Success("SSID 2.4G", "MyHome-5G"), "✅ Berhasil mengubah SSID 2.4G menjadi: *MyHome-5G*")
	assert.Contains(t, f.CustomerNotFound("0812"), "Pelanggan dengan nomor 0812 tidak ditemukan.")
	assert.Contains(t, f.RebootFailed("boom"), "Error: boom")
	assert.Contains(t, f.Outcome(false, "x"), "*Gagal*")
}

func TestFormatter_Help(t *testing.T) {
	f := newTestFormatter()

	customer := f.Help(false)
	admin := f.Help(true)

	assert.Contains(t, customer, "*status* - Cek status perangkat")
	assert.NotContains(t, customer, "Khusus Admin")
	assert.NotContains(t, customer, "Perintah Mikrotik")
	assert.Contains(t, admin, "Khusus Admin")
	assert.Contains(t, admin, "*bandwidth*")
}
