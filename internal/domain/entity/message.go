package entity

import "time"

// InboundMessage is a chat message delivered by a gateway webhook.
type InboundMessage struct {
	Gateway string
	Sender  string
	Text    string
}

// TroubleReport is a customer-filed service complaint.
type TroubleReport struct {
	CustomerNumber string
	PPPUsername    string
	RXPower        string
	Clients2G      int
	Clients5G      int
	Category       string
	Note           string
	ReportedAt     time.Time
}

// WiFiUpdate carries the optional fields of a portal WiFi change.
type WiFiUpdate struct {
	SSID2G     string
	SSID5G     string
	Password2G string
	Password5G string
}

// IsEmpty reports whether no field was supplied.
func (u WiFiUpdate) IsEmpty() bool {
	return u.SSID2G == "" && u.SSID5G == "" && u.Password2G == "" && u.Password5G == ""
}
