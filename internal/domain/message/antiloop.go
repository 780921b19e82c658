package message

import (
	"strings"

	"portal/internal/domain/phone"
)

// Lower-cased fragments that only appear in text this system produces.
var defaultSignatures = []string{
	"perintah tidak valid",
	"pesan ini dikirim otomatis oleh sistem",
	strings.ToLower(supportLabel),
}

// LoopFilter drops webhook traffic that is really the bot talking to itself.
type LoopFilter struct {
	signatures []string
}

// NewLoopFilter builds a filter from the built-in signatures, the brand name
// and any extra fragments.
func NewLoopFilter(brand string, extra ...string) *LoopFilter {
	sigs := append([]string(nil), defaultSignatures...)
	for _, s := range append([]string{brand}, extra...) {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			sigs = append(sigs, s)
		}
	}

	return &LoopFilter{signatures: sigs}
}

// ShouldIgnore reports whether an inbound message must not reach the parser:
// it was sent by the bot's own number, or it carries a system signature.
func (f *LoopFilter) ShouldIgnore(sender, text, botSender string) bool {
	if botSender != "" && (sender == botSender || phone.Equal(sender, botSender)) {
		return true
	}

	lower := strings.ToLower(text)
	for _, sig := range f.signatures {
		if strings.Contains(lower, sig) {
			return true
		}
	}

	return false
}
