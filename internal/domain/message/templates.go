package message

import (
	"strings"
)

// Titles of the fixed replies.
const (
	TitleHelp            = "Menu Bantuan"
	TitleNotRegistered   = "Tidak Terdaftar"
	TitleAdminOnly       = "Akses Ditolak"
	TitleSuccess         = "Berhasil"
	TitleFailed          = "Gagal"
	TitleError           = "Error"
	TitleRebootSuccess   = "Restart Berhasil"
	TitleRebootFailed    = "Restart Gagal"
	TitleInfo            = "Informasi"
	TitleCustomerMissing = "Pelanggan Tidak Ditemukan"
	TitleDeviceStatus    = "Status Perangkat"
	TitleConnectedHosts  = "Perangkat Terhubung"
	TitleDeviceList      = "Daftar Perangkat"
	TitleWiFiChanged     = "Perubahan Pengaturan WiFi"
	TitlePPPoEProfiles   = "Daftar Profile PPPoE"
	TitleHotspotUsers    = "Daftar User Hotspot"
	TitlePPPoESecrets    = "Daftar Secret PPPoE"
	TitlePPPoEOffline    = "Daftar User PPPoE Offline"
	TitleRouterResource  = "Informasi Resource Router"
	TitleRouterBandwidth = "Informasi Bandwidth Router"
)

const (
	bodyNotRegistered = "❌ Maaf, nomor Anda belum terdaftar di sistem. Silakan hubungi admin untuk mendaftarkan nomor Anda."
	bodyAdminOnly     = "⛔ Maaf, perintah ini hanya dapat diakses oleh admin."
	bodyRebootSuccess = "✅ Perangkat berhasil di-restart. Mohon tunggu beberapa menit hingga perangkat kembali online."
)

// NotRegistered is sent to senders with no device and no admin rights.
func (f *Formatter) NotRegistered() string {
	return f.Format(TitleNotRegistered, bodyNotRegistered)
}

// AdminOnly is sent when a non-admin uses an admin command.
func (f *Formatter) AdminOnly() string {
	return f.Format(TitleAdminOnly, bodyAdminOnly)
}

// Error reports an unexpected failure with its description.
func (f *Formatter) Error(detail string) string {
	return f.Format(TitleError, "❌ Maaf, terjadi kesalahan: "+detail)
}

// Success confirms a changed setting, echoing the value with its case intact.
func (f *Formatter) Success(setting, value string) string {
	return f.Format(TitleSuccess, "✅ Berhasil mengubah "+setting+" menjadi: *"+value+"*")
}

// Info frames a usage hint.
func (f *Formatter) Info(body string) string {
	return f.Format(TitleInfo, body)
}

// CustomerNotFound reports an unknown customer number.
func (f *Formatter) CustomerNotFound(number string) string {
	return f.Format(TitleCustomerMissing, "Pelanggan dengan nomor "+number+" tidak ditemukan.")
}

// RebootSuccess confirms a queued reboot.
func (f *Formatter) RebootSuccess() string {
	return f.Format(TitleRebootSuccess, bodyRebootSuccess)
}

// RebootFailed reports a reboot the ACS refused.
func (f *Formatter) RebootFailed(detail string) string {
	return f.Format(TitleRebootFailed, "❌ Gagal me-restart perangkat. Error: "+detail)
}

// Outcome frames a router operation result.
func (f *Formatter) Outcome(ok bool, body string) string {
	if ok {
		return f.Format(TitleSuccess, body)
	}

	return f.Format(TitleFailed, body)
}

// Help lists the commands. Admin and router sections are shown to admins only.
func (f *Formatter) Help(isAdmin bool) string {
	var b strings.Builder
	b.WriteString("📱 *Perintah Pelanggan:*\n")
	b.WriteString("🔸 *status* - Cek status perangkat\n")
	b.WriteString("🔸 *ssid2g* [nama] - Ubah nama WiFi 2.4G\n")
	b.WriteString("🔸 *ssid5g* [nama] - Ubah nama WiFi 5G\n")
	b.WriteString("🔸 *pass2g* [password] - Ubah password WiFi 2.4G\n")
	b.WriteString("🔸 *pass5g* [password] - Ubah password WiFi 5G\n")
	b.WriteString("🔸 *devices* - Lihat perangkat terhubung\n")

	if isAdmin {
		b.WriteString("\n🔴 *Khusus Admin:*\n")
		b.WriteString("🔸 *reboot* [no_pelanggan] - Restart perangkat\n")
		b.WriteString("🔸 *status* [no_pelanggan] - Cek status pelanggan\n")
		b.WriteString("🔸 *userinfo* [no_pelanggan] - Lihat info pelanggan\n")
		b.WriteString("🔸 *ssid2g* [no_pelanggan] [nama] - Ubah SSID 2.4G pelanggan\n")
		b.WriteString("🔸 *ssid5g* [no_pelanggan] [nama] - Ubah SSID 5G pelanggan\n")
		b.WriteString("🔸 *pass2g* [no_pelanggan] [password] - Ubah password WiFi 2.4G pelanggan\n")
		b.WriteString("🔸 *pass5g* [no_pelanggan] [password] - Ubah password WiFi 5G pelanggan\n")
		b.WriteString("🔸 *listdevices* - Lihat daftar semua perangkat dan nomor pelanggan\n\n")

		b.WriteString("🔵 *Perintah Mikrotik:*\n")
		b.WriteString("🔸 *addhotspot* [username] [password] [profile] - Tambah user hotspot\n")
		b.WriteString("🔸 *delhotspot* [username] - Hapus user hotspot\n")
		b.WriteString("🔸 *addpppoe* [username] [password] [profile] - Tambah secret PPPoE\n")
		b.WriteString("🔸 *delpppoe* [username] - Hapus secret PPPoE\n")
		b.WriteString("🔸 *setprofile* [username] [profile] - Ubah profile PPPoE\n")
		b.WriteString("🔸 *listprofiles* - Lihat daftar profile PPPoE\n")
		b.WriteString("🔸 *listhotspot* - Lihat daftar user hotspot yang aktif\n")
		b.WriteString("🔸 *listpppoe* - Lihat daftar secret PPPoE\n")
		b.WriteString("🔸 *offlinepppoe* - Lihat daftar user PPPoE yang offline\n")
		b.WriteString("\n🔵 *Monitoring Router:*\n")
		b.WriteString("🔸 *resource* - Lihat informasi resource router (CPU, memory, dll)\n")
		b.WriteString("🔸 *bandwidth* - Lihat penggunaan bandwidth saat ini\n")
	}

	return f.Format(TitleHelp, b.String())
}
