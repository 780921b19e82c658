// Package command defines the chat command vocabulary and parses inbound text.
package command

import (
	"strings"
)

// ID identifies a command independently of the keywords that invoke it.
type ID string

const (
	Help            ID = "help"
	Status          ID = "status"
	ConnectedHosts  ID = "devices"
	SetSSID2G       ID = "ssid2g"
	SetSSID5G       ID = "ssid5g"
	SetPassword2G   ID = "pass2g"
	SetPassword5G   ID = "pass5g"
	ListDevices     ID = "listdevices"
	Reboot          ID = "reboot"
	UserInfo        ID = "userinfo"
	AddHotspotUser  ID = "addhotspot"
	DelHotspotUser  ID = "delhotspot"
	AddPPPoESecret  ID = "addpppoe"
	DelPPPoESecret  ID = "delpppoe"
	SetPPPoEProfile ID = "setprofile"
	PPPoEProfiles   ID = "listprofiles"
	HotspotActive   ID = "listhotspot"
	PPPoESecrets    ID = "listpppoe"
	PPPoEOffline    ID = "offlinepppoe"
	RouterResource  ID = "resource"
	Bandwidth       ID = "bandwidth"
)

// OnBehalf describes how an admin may aim a command at another customer.
type OnBehalf int

const (
	// OnBehalfNone: the command always targets the sender's own device.
	OnBehalfNone OnBehalf = iota
	// OnBehalfWholeArgs: a non-empty argument string is the customer number.
	OnBehalfWholeArgs
	// OnBehalfFirstToken: with two or more tokens, the first is the customer
	// number and the rest is the value. A value that starts with a quote is
	// never split.
	OnBehalfFirstToken
	// OnBehalfRequired: the argument string must be a customer number.
	OnBehalfRequired
)

// Spec is one row of the command table.
type Spec struct {
	ID        ID
	Keywords  []string
	AdminOnly bool
	OnBehalf  OnBehalf
	MinArgs   int
	Usage     string
}

// Table is the full command vocabulary, in help order.
var Table = []Spec{
	{ID: Help, Keywords: []string{"help", "bantuan", "menu"}},
	{ID: Status, Keywords: []string{"status", "cek", "info"}, OnBehalf: OnBehalfWholeArgs},
	{ID: ConnectedHosts, Keywords: []string{"devices", "perangkat", "connected"}, OnBehalf: OnBehalfWholeArgs},
	{
		ID: SetSSID2G, Keywords: []string{"ssid2g", "ssid2"}, OnBehalf: OnBehalfFirstToken, MinArgs: 1,
		Usage: "Mohon berikan nama SSID 2.4G baru. Contoh: *ssid2g NamaWiFiBaru*",
	},
	{
		ID: SetSSID5G, Keywords: []string{"ssid5g", "ssid5"}, OnBehalf: OnBehalfFirstToken, MinArgs: 1,
		Usage: "Mohon berikan nama SSID 5G baru. Contoh: *ssid5g NamaWiFiBaru*",
	},
	{
		ID: SetPassword2G, Keywords: []string{"pass2g", "password2g", "pwd2g"}, OnBehalf: OnBehalfFirstToken, MinArgs: 1,
		Usage: "Mohon berikan password WiFi 2.4G baru. Contoh: *pass2g PasswordBaru*",
	},
	{
		ID: SetPassword5G, Keywords: []string{"pass5g", "password5g", "pwd5g"}, OnBehalf: OnBehalfFirstToken, MinArgs: 1,
		Usage: "Mohon berikan password WiFi 5G baru. Contoh: *pass5g PasswordBaru*",
	},
	{ID: ListDevices, Keywords: []string{"listdevices", "daftarperangkat", "listnomor"}, AdminOnly: true},
	{
		ID: Reboot, Keywords: []string{"reboot", "restart", "boot"}, AdminOnly: true, OnBehalf: OnBehalfRequired, MinArgs: 1,
		Usage: "Mohon berikan nomor pelanggan yang akan di-reboot. Contoh: *reboot 081234567890*",
	},
	{
		ID: UserInfo, Keywords: []string{"userinfo", "user", "pelanggan"}, AdminOnly: true, OnBehalf: OnBehalfRequired, MinArgs: 1,
		Usage: "Mohon berikan nomor pelanggan. Contoh: *userinfo 081234567890*",
	},
	{
		ID: AddHotspotUser, Keywords: []string{"addhotspot", "tambahhotspot", "addhs"}, AdminOnly: true, MinArgs: 2,
		Usage: "Format perintah salah. Gunakan: *addhotspot username password [profile]*",
	},
	{
		ID: DelHotspotUser, Keywords: []string{"delhotspot", "hapushotspot", "delhs"}, AdminOnly: true, MinArgs: 1,
		Usage: "Format perintah salah. Gunakan: *delhotspot username*",
	},
	{
		ID: AddPPPoESecret, Keywords: []string{"addpppoe", "tambahpppoe", "addppp"}, AdminOnly: true, MinArgs: 2,
		Usage: "Format perintah salah. Gunakan: *addpppoe username password [profile]*",
	},
	{
		ID: DelPPPoESecret, Keywords: []string{"delpppoe", "hapuspppoe", "delppp"}, AdminOnly: true, MinArgs: 1,
		Usage: "Format perintah salah. Gunakan: *delpppoe username*",
	},
	{
		ID: SetPPPoEProfile, Keywords: []string{"setprofile", "gantiprofile", "setppp"}, AdminOnly: true, MinArgs: 2,
		Usage: "Format perintah salah. Gunakan: *setprofile username profile*",
	},
	{ID: PPPoEProfiles, Keywords: []string{"listprofiles", "daftarprofile", "profiles"}, AdminOnly: true},
	{ID: HotspotActive, Keywords: []string{"listhotspot", "daftarhotspot", "hotspots"}, AdminOnly: true},
	{ID: PPPoESecrets, Keywords: []string{"listpppoe", "daftarpppoe", "pppoes"}, AdminOnly: true},
	{ID: PPPoEOffline, Keywords: []string{"offlinepppoe", "pppoeoffline", "offlineppp"}, AdminOnly: true},
	{ID: RouterResource, Keywords: []string{"resource", "sysinfo", "routerinfo"}, AdminOnly: true},
	{ID: Bandwidth, Keywords: []string{"bandwidth", "traffic", "netmon"}, AdminOnly: true},
}

// Target splits args into the customer an admin aims the command at and the
// value the command works with. Customers always act on their own device, so
// customer is empty for them. Values of first-token commands are unquoted.
func (s *Spec) Target(args string, isAdmin bool) (customer, value string) {
	switch s.OnBehalf {
	case OnBehalfWholeArgs:
		if isAdmin {
			return args, ""
		}
	case OnBehalfFirstToken:
		if isAdmin && !strings.HasPrefix(args, `"`) {
			if first, rest, ok := strings.Cut(args, " "); ok {
				return first, Unquote(strings.TrimSpace(rest))
			}
		}

		return "", Unquote(args)
	case OnBehalfRequired:
		return args, ""
	}

	return "", args
}

var byKeyword = indexKeywords(Table)

func indexKeywords(table []Spec) map[string]*Spec {
	index := make(map[string]*Spec)
	for i := range table {
		for _, kw := range table[i].Keywords {
			index[kw] = &table[i]
		}
	}

	return index
}

// Lookup resolves a lower-case keyword to its command.
func Lookup(keyword string) (*Spec, bool) {
	spec, ok := byKeyword[strings.ToLower(keyword)]

	return spec, ok
}
