package entity

import (
	"time"

	"portal/internal/util"
)

// RXPowerClass buckets optical receive power.
type RXPowerClass string

const (
	RXPowerUnknown  RXPowerClass = ""
	RXPowerGood     RXPowerClass = "good"
	RXPowerWarning  RXPowerClass = "warning"
	RXPowerCritical RXPowerClass = "critical"
)

// ClassifyRXPower: above -25 dBm is good, above -27 dBm a warning, anything lower critical.
func ClassifyRXPower(dbm float64) RXPowerClass {
	switch {
	case dbm > -25:
		return RXPowerGood
	case dbm > -27:
		return RXPowerWarning
	default:
		return RXPowerCritical
	}
}

// Label returns the Indonesian description used in chat replies.
func (c RXPowerClass) Label() string {
	switch c {
	case RXPowerGood:
		return "Baik"
	case RXPowerWarning:
		return "Sedang"
	case RXPowerCritical:
		return "Buruk"
	default:
		return "N/A"
	}
}

// DeviceSnapshot is the read model shown on dashboards and in chat replies.
// Empty strings mean the attribute could not be resolved.
type DeviceSnapshot struct {
	ID              string       `json:"id"`
	CustomerNumber  string       `json:"customerNumber"`
	CustomerName    string       `json:"customerName"`
	Model           string       `json:"model"`
	Manufacturer    string       `json:"manufacturer"`
	SerialNumber    string       `json:"serialNumber"`
	SoftwareVersion string       `json:"softwareVersion"`
	PPPUsername     string       `json:"pppUsername"`
	PPPPassword     string       `json:"-"`
	PPPoEIP         string       `json:"pppoeIp"`
	TR069IP         string       `json:"tr069Ip"`
	MACAddress      string       `json:"macAddress"`
	SSID2G          string       `json:"ssid2G"`
	SSID5G          string       `json:"ssid5G"`
	Clients2G       int          `json:"clients2G"`
	Clients5G       int          `json:"clients5G"`
	RXPower         *float64     `json:"rxPower,omitempty"`
	RXPowerClass    RXPowerClass `json:"rxPowerClass"`
	Uptime          string       `json:"uptime"`
	RegisteredAt    string       `json:"registeredAt"`
	Online          bool         `json:"online"`
	LastInform      time.Time    `json:"lastInform"`
}

// NewDeviceSnapshot reads every dashboard attribute from the device document.
func NewDeviceSnapshot(d *Device, now time.Time) DeviceSnapshot {
	snap := DeviceSnapshot{
		ID:              d.ID,
		CustomerName:    d.Tags.CustomerName(),
		Model:           d.FieldOr(ParamModel, ""),
		Manufacturer:    d.FieldOr(ParamManufacturer, ""),
		SerialNumber:    d.FieldOr(ParamSerialNumber, ""),
		SoftwareVersion: d.FieldOr(ParamSoftwareVersion, ""),
		PPPUsername:     d.FieldOr(ParamPPPUsername, ""),
		PPPPassword:     d.FieldOr(ParamPPPPassword, ""),
		PPPoEIP:         d.FieldOr(ParamPPPoEIP, ""),
		TR069IP:         d.FieldOr(ParamTR069IP, ""),
		MACAddress:      d.FieldOr(ParamMACAddress, ""),
		SSID2G:          d.FieldOr(ParamSSID2G, ""),
		SSID5G:          d.FieldOr(ParamSSID5G, ""),
		Uptime:          d.Uptime(),
		RegisteredAt:    d.FieldOr(ParamRegisteredTime, ""),
		Online:          d.IsOnline(now),
		LastInform:      d.LastInform,
	}

	snap.CustomerNumber, _ = d.CustomerNumber()

	if v, ok := d.Field(ParamClients2G); ok {
		snap.Clients2G, _ = v.Int()
	}
	if v, ok := d.Field(ParamClients5G); ok {
		snap.Clients5G, _ = v.Int()
	}
	if v, ok := d.Field(ParamRXPower); ok {
		if dbm, ok := v.Float(); ok {
			snap.RXPower = &dbm
			snap.RXPowerClass = ClassifyRXPower(dbm)
		}
	}

	return snap
}

// Uptime returns a display uptime: preformatted strings pass through,
// second counts are converted, anything else is empty.
func (d *Device) Uptime() string {
	v, ok := d.Field(ParamUptime)
	if !ok {
		return ""
	}

	if s, isString := v.Raw().(string); isString && util.IsPreformattedUptime(s) {
		return s
	}

	seconds, ok := v.Float()
	if !ok {
		return ""
	}

	return util.FormatUptime(int64(seconds))
}

// ConnectedHost is one LAN client known to the CPE.
type ConnectedHost struct {
	HostName      string `json:"hostName"`
	MACAddress    string `json:"macAddress"`
	IPAddress     string `json:"ipAddress"`
	InterfaceType string `json:"interfaceType"`
}

// ConnectedHosts walks the host table. Entries without a MAC address are skipped.
func (d *Device) ConnectedHosts() []ConnectedHost {
	count := 0
	if v, ok := d.Field(ParamHostCount); ok {
		count, _ = v.Int()
	}

	hosts := make([]ConnectedHost, 0, count)
	for i := 1; i <= count; i++ {
		mac, ok := d.Lookup(HostPaths(i, "MACAddress")...)
		if !ok || mac.String() == "" {
			continue
		}

		hosts = append(hosts, ConnectedHost{
			HostName:      lookupOr(d, HostPaths(i, "HostName"), "Unknown"),
			MACAddress:    mac.String(),
			IPAddress:     lookupOr(d, HostPaths(i, "IPAddress"), "N/A"),
			InterfaceType: lookupOr(d, HostPaths(i, "InterfaceType"), "N/A"),
		})
	}

	return hosts
}

func lookupOr(d *Device, paths []string, fallback string) string {
	v, ok := d.Lookup(paths...)
	if !ok || v.String() == "" {
		return fallback
	}

	return v.String()
}

// RefreshTally summarises a fleet-wide refresh.
type RefreshTally struct {
	Successful int `json:"successful"`
	Failed     int `json:"failed"`
}
