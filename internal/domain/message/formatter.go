// Package message renders outbound chat text and recognises the system's own
// output when it comes back through a webhook.
package message

import (
	"fmt"
	"strings"
	"time"
)

const (
	defaultContact = "Admin"
	rule           = "┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄"
	boxBottom      = "╰────────────────╯"
	footerNotice   = "_Pesan ini dikirim otomatis oleh sistem. Ketik *help* untuk bantuan._"
	supportLabel   = "Layanan Pelanggan:"
)

// WIB is Western Indonesia Time, the zone every message timestamp is shown in.
var WIB = time.FixedZone("WIB", 7*60*60)

var (
	weekdays = [...]string{"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu"}
	months   = [...]string{
		"Januari", "Februari", "Maret", "April", "Mei", "Juni",
		"Juli", "Agustus", "September", "Oktober", "November", "Desember",
	}
)

// Branding is the operator identity shown in every message frame.
type Branding struct {
	ISPName        string
	SupportContact string
}

// Formatter wraps message bodies in the branded header and footer.
type Formatter struct {
	branding Branding
	now      func() time.Time
}

// NewFormatter creates a formatter. now is read once per Format call.
func NewFormatter(branding Branding, now func() time.Time) *Formatter {
	if now == nil {
		now = time.Now
	}

	return &Formatter{branding: branding, now: now}
}

// Branding returns the operator identity.
func (f *Formatter) Branding() Branding {
	return f.branding
}

// Format frames body with the header, an optional title block and the footer.
func (f *Formatter) Format(title, body string) string {
	now := f.now().In(WIB)
	isp := f.branding.ISPName
	contact := f.branding.SupportContact
	if contact == "" {
		contact = defaultContact
	}

	var b strings.Builder
	b.WriteString(boxTop(isp))
	b.WriteString("│ " + LongDate(now) + "\n")
	b.WriteString("│ " + ClockTime(now) + "\n")
	b.WriteString(boxBottom + "\n\n")

	if strings.TrimSpace(title) != "" {
		b.WriteString("*" + title + "*\n")
		b.WriteString(rule + "\n\n")
	}

	b.WriteString(body)

	b.WriteString("\n\n" + rule + "\n")
	b.WriteString(footerNotice + "\n")
	b.WriteString(boxTop(isp))
	b.WriteString("│ " + supportLabel + "\n")
	b.WriteString("│ " + contact + "\n")
	b.WriteString(boxBottom)

	return b.String()
}

func boxTop(isp string) string {
	return "╭───「 *" + isp + "* 」───╮\n"
}

// LongDate renders t as "Kamis, 16 Oktober 2026".
func LongDate(t time.Time) string {
	return fmt.Sprintf("%s, %d %s %d", weekdays[t.Weekday()], t.Day(), months[t.Month()-1], t.Year())
}

// ClockTime renders t as "HH.mm".
func ClockTime(t time.Time) string {
	return fmt.Sprintf("%02d.%02d", t.Hour(), t.Minute())
}
