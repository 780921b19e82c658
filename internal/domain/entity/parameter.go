package entity

import (
	"strconv"
)

// Param names a device attribute that may live under several vendor paths.
type Param string

const (
	ParamPPPUsername     Param = "pppUsername"
	ParamPPPPassword     Param = "pppPassword"
	ParamRXPower         Param = "rxPower"
	ParamMACAddress      Param = "macAddress"
	ParamPPPoEIP         Param = "pppoeIP"
	ParamTR069IP         Param = "tr069IP"
	ParamSSID2G          Param = "ssid2G"
	ParamSSID5G          Param = "ssid5G"
	ParamClients2G       Param = "userConnected2G"
	ParamClients5G       Param = "userConnected5G"
	ParamUptime          Param = "uptime"
	ParamModel           Param = "productClass"
	ParamManufacturer    Param = "manufacturer"
	ParamSerialNumber    Param = "serialNumber"
	ParamRegisteredTime  Param = "registeredTime"
	ParamHostCount       Param = "hostNumberOfEntries"
	ParamCustomerNumber  Param = "customerNumber"
	ParamSoftwareVersion Param = "softwareVersion"
)

// ParameterPaths lists the candidate paths per attribute, most preferred first.
var ParameterPaths = map[Param][]string{
	ParamPPPUsername: {
		"VirtualParameters.pppoeUsername",
		"VirtualParameters.pppUsername",
		"InternetGatewayDevice.WANDevice.1.WANConnectionDevice.1.WANPPPConnection.1.Username",
	},
	ParamPPPPassword: {
		"VirtualParameters.pppoePassword",
		"VirtualParameters.pppPassword",
		"InternetGatewayDevice.WANDevice.1.WANConnectionDevice.1.WANPPPConnection.1.Password",
	},
	ParamRXPower: {
		"VirtualParameters.RXPower",
		"VirtualParameters.redaman",
		"InternetGatewayDevice.WANDevice.1.WANPONInterfaceConfig.RXPower",
	},
	ParamMACAddress: {
		"VirtualParameters.pppMac",
		"VirtualParameters.WanMac",
		"InternetGatewayDevice.WANDevice.1.WANConnectionDevice.1.WANPPPConnection.1.MACAddress",
		"InternetGatewayDevice.WANDevice.1.WANConnectionDevice.1.WANPPPConnection.2.MACAddress",
		"InternetGatewayDevice.WANDevice.1.WANConnectionDevice.1.WANIPConnection.1.MACAddress",
		"InternetGatewayDevice.WANDevice.1.WANConnectionDevice.1.WANIPConnection.2.MACAddress",
		"Device.IP.Interface.1.IPv4Address.1.IPAddress",
		"InternetGatewayDevice.WANDevice.*.WANConnectionDevice.1.WANPPPConnection.*.MACAddress",
		"InternetGatewayDevice.WANDevice.*.WANConnectionDevice.1.WANIPConnection.*.MACAddress",
	},
	ParamPPPoEIP: {
		"VirtualParameters.pppoeIP",
		"VirtualParameters.pppIP",
	},
	ParamTR069IP: {
		"VirtualParameters.IPTR069",
	},
	ParamSSID2G: {
		"InternetGatewayDevice.LANDevice.1.WLANConfiguration.1.SSID",
	},
	ParamSSID5G: {
		"InternetGatewayDevice.LANDevice.1.WLANConfiguration.5.SSID",
	},
	ParamClients2G: {
		"InternetGatewayDevice.LANDevice.1.WLANConfiguration.1.TotalAssociations",
	},
	ParamClients5G: {
		"InternetGatewayDevice.LANDevice.1.WLANConfiguration.5.TotalAssociations",
	},
	ParamUptime: {
		"VirtualParameters.getdeviceuptime",
		"InternetGatewayDevice.DeviceInfo.UpTime",
		"Device.DeviceInfo.UpTime",
	},
	ParamModel: {
		"DeviceID.ProductClass",
		"InternetGatewayDevice.DeviceInfo.ProductClass",
		"Device.DeviceInfo.ProductClass",
		"InternetGatewayDevice.DeviceInfo.ModelName",
		"Device.DeviceInfo.ModelName",
	},
	ParamManufacturer: {
		"DeviceID.Manufacturer",
		"InternetGatewayDevice.DeviceInfo.Manufacturer",
		"Device.DeviceInfo.Manufacturer",
	},
	ParamSerialNumber: {
		"DeviceID.SerialNumber",
		"InternetGatewayDevice.DeviceInfo.SerialNumber",
		"Device.DeviceInfo.SerialNumber",
	},
	ParamSoftwareVersion: {
		"InternetGatewayDevice.DeviceInfo.SoftwareVersion",
		"Device.DeviceInfo.SoftwareVersion",
	},
	ParamRegisteredTime: {
		"Events.Registered",
		"_registered",
	},
	ParamHostCount: {
		"InternetGatewayDevice.LANDevice.1.Hosts.HostNumberOfEntries",
		"Device.Hosts.HostNumberOfEntries",
	},
	ParamCustomerNumber: {
		"Tags.CustomerNumber",
		"VirtualParameters.CustomerNumber",
	},
}

// WiFiBand selects one of the two radios.
type WiFiBand string

const (
	Band2G WiFiBand = "2g"
	Band5G WiFiBand = "5g"
)

// WLAN configuration object paths written by WiFi changes.
const (
	WLANConfigurationRoot = "InternetGatewayDevice.LANDevice.1.WLANConfiguration"
	PeriodicInformEnable  = "InternetGatewayDevice.ManagementServer.PeriodicInformEnable"
)

func wlanIndex(band WiFiBand) string {
	if band == Band5G {
		return "5"
	}

	return "1"
}

// SSIDPath returns the SSID parameter of a band.
func SSIDPath(band WiFiBand) string {
	return WLANConfigurationRoot + "." + wlanIndex(band) + ".SSID"
}

// PassphrasePaths returns both places a band's passphrase may be stored.
// Vendors differ, so changes write to both.
func PassphrasePaths(band WiFiBand) []string {
	base := WLANConfigurationRoot + "." + wlanIndex(band)

	return []string{
		base + ".PreSharedKey.1.KeyPassphrase",
		base + ".KeyPassphrase",
	}
}

// HostPaths returns the candidate paths of one LAN host attribute.
func HostPaths(index int, attribute string) []string {
	i := strconv.Itoa(index)

	return []string{
		"InternetGatewayDevice.LANDevice.1.Hosts.Host." + i + "." + attribute,
		"Device.Hosts.Host." + i + "." + attribute,
	}
}
