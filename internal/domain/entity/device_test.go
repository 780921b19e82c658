package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDeviceJSON = `{
	"_id": "00259E-HG8245H-4857544314A5D19E",
	"_lastInform": "2026-10-16T03:00:00.000Z",
	"_tags": ["081234567890", "customerName:Budi"],
	"_deviceId": {"_Manufacturer": "Huawei", "_SerialNumber": "4857544314A5D19E", "_ProductClass": "HG8245H"},
	"DeviceID": {"ProductClass": {"_value": "HG8245H%2D5"}},
	"VirtualParameters": {
		"RXPower": {"_value": "-23.45"},
		"pppoeUsername": {"_value": "budi@isp"},
		"getdeviceuptime": {"_value": 93784}
	},
	"InternetGatewayDevice": {
		"LANDevice": {"1": {
			"WLANConfiguration": {
				"1": {"SSID": {"_value": "Budi-Home"}, "TotalAssociations": {"_value": 3}},
				"5": {"SSID": {"_value": "Budi-Home-5G"}, "TotalAssociations": {"_value": 1}}
			},
			"Hosts": {
				"HostNumberOfEntries": {"_value": 3},
				"Host": {
					"1": {"HostName": {"_value": "laptop"}, "MACAddress": {"_value": "AA:BB:CC:00:00:01"}, "IPAddress": {"_value": "192.168.1.2"}, "InterfaceType": {"_value": "802.11"}},
					"2": {"HostName": {"_value": "ghost"}},
					"3": {"MACAddress": {"_value": "AA:BB:CC:00:00:03"}}
				}
			}
		}},
		"WANDevice": {
			"1": {"WANConnectionDevice": {"1": {"WANPPPConnection": {
				"1": {"Username": {"_value": "fallback-user"}},
				"2": {"MACAddress": {"_value": "11:22:33:44:55:66"}}
			}}}}
		}
	}
}`

func decodeDevice(t *testing.T, raw string) *Device {
	t.Helper()

	var d Device
	require.NoError(t, json.Unmarshal([]byte(raw), &d))

	return &d
}

func TestDevice_UnmarshalJSON(t *testing.T) {
	d := decodeDevice(t, sampleDeviceJSON)

	assert.Equal(t, "00259E-HG8245H-4857544314A5D19E", d.ID)
	assert.Equal(t, []string{"081234567890", "customerName:Budi"}, d.Tags.Values())
	assert.Equal(t, time.Date(2026, 10, 16, 3, 0, 0, 0, time.UTC), d.LastInform)
}

func TestDevice_Lookup(t *testing.T) {
	d := decodeDevice(t, sampleDeviceJSON)

	tests := []struct {
		name   string
		paths  []string
		want   string
		wantOK bool
	}{
		{
			name:   "plain path returns leaf value",
			paths:  []string{"InternetGatewayDevice.LANDevice.1.WLANConfiguration.1.SSID"},
			want:   "Budi-Home",
			wantOK: true,
		},
		{
			name: "earliest defined path wins",
			paths: []string{
				"VirtualParameters.missing",
				"VirtualParameters.pppoeUsername",
				"InternetGatewayDevice.WANDevice.1.WANConnectionDevice.1.WANPPPConnection.1.Username",
			},
			want:   "budi@isp",
			wantOK: true,
		},
		{
			name:   "wildcard takes first numeric child with a defined leaf",
			paths:  []string{"InternetGatewayDevice.WANDevice.*.WANConnectionDevice.1.WANPPPConnection.*.MACAddress"},
			want:   "11:22:33:44:55:66",
			wantOK: true,
		},
		{
			name:   "device id block unwraps leaf and undoes legacy dash encoding",
			paths:  []string{"DeviceID.ProductClass"},
			want:   "HG8245H-5",
			wantOK: true,
		},
		{
			name:   "device id falls back to underscored identity block",
			paths:  []string{"DeviceID.SerialNumber"},
			want:   "4857544314A5D19E",
			wantOK: true,
		},
		{
			name:   "root property",
			paths:  []string{"_id"},
			want:   "00259E-HG8245H-4857544314A5D19E",
			wantOK: true,
		},
		{
			name:   "numeric leaf",
			paths:  []string{"VirtualParameters.getdeviceuptime"},
			want:   "93784",
			wantOK: true,
		},
		{
			name:   "interior node is not a value",
			paths:  []string{"InternetGatewayDevice.LANDevice.1"},
			wantOK: false,
		},
		{
			name:   "nothing resolves",
			paths:  []string{"Device.Nope", "InternetGatewayDevice.*.Nope"},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := d.Lookup(tt.paths...)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got.String())
			}
		})
	}
}

func TestDevice_Lookup_WildcardOrdersNumerically(t *testing.T) {
	d := decodeDevice(t, `{
		"Root": {
			"10": {"Leaf": {"_value": "ten"}},
			"2": {"Other": {"_value": "x"}},
			"3": {"Leaf": {"_value": "three"}},
			"name": {"Leaf": {"_value": "not numeric"}}
		}
	}`)

	got, ok := d.Lookup("Root.*.Leaf")
	require.True(t, ok)
	assert.Equal(t, "three", got.String())
}

func TestDevice_Lookup_NilDevice(t *testing.T) {
	var d *Device

	_, ok := d.Lookup("_id")
	assert.False(t, ok)
	assert.False(t, d.IsOnline(time.Now()))
}

func TestDevice_IsOnline(t *testing.T) {
	d := &Device{LastInform: time.Date(2026, 10, 16, 3, 0, 0, 0, time.UTC)}

	assert.True(t, d.IsOnline(d.LastInform.Add(4*time.Minute)))
	assert.True(t, d.IsOnline(d.LastInform.Add(5*time.Minute)))
	assert.False(t, d.IsOnline(d.LastInform.Add(5*time.Minute+time.Second)))
}

func TestDevice_ConnectedHosts(t *testing.T) {
	d := decodeDevice(t, sampleDeviceJSON)

	hosts := d.ConnectedHosts()

	require.Len(t, hosts, 2)
	assert.Equal(t, ConnectedHost{
		HostName:      "laptop",
		MACAddress:    "AA:BB:CC:00:00:01",
		IPAddress:     "192.168.1.2",
		InterfaceType: "802.11",
	}, hosts[0])
	assert.Equal(t, "Unknown", hosts[1].HostName)
	assert.Equal(t, "N/A", hosts[1].IPAddress)
}

func TestParamValue_Conversions(t *testing.T) {
	f, ok := NewParamValue("-23.45").Float()
	assert.True(t, ok)
	assert.InDelta(t, -23.45, f, 1e-9)

	n, ok := NewParamValue(float64(7)).Int()
	assert.True(t, ok)
	assert.Equal(t, 7, n)

	_, ok = NewParamValue("n/a").Float()
	assert.False(t, ok)

	assert.Equal(t, "true", NewParamValue(true).String())
	assert.Equal(t, "ONT-A-B", NewParamValue("ONT%2DA%2DB").String())
}
