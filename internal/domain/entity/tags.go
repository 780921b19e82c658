package entity

import (
	"encoding/json"
	"sort"
	"strings"

	"portal/internal/domain/phone"
)

const (
	customerNumberKey     = "customerNumber"
	customerNamePrefix    = "customerName:"
	minCustomerNumberLen  = 5
	minPartialCandidateLn = 5
)

// Tags are the labels the ACS attaches to a device. Older deployments store
// them as a list, newer ones as an object whose keys are the tags and which
// may carry a dedicated customerNumber entry.
type Tags struct {
	values         []string
	customerNumber string
	keyed          bool
}

// NewTags builds list-form tags.
func NewTags(values ...string) Tags {
	return Tags{values: append([]string(nil), values...)}
}

// NewKeyedTags builds object-form tags.
func NewKeyedTags(customerNumber string, keys ...string) Tags {
	return Tags{values: append([]string(nil), keys...), customerNumber: customerNumber, keyed: true}
}

func tagsFromRaw(raw any) Tags {
	switch t := raw.(type) {
	case []any:
		values := make([]string, 0, len(t))
		for _, item := range t {
			if s, ok := item.(string); ok {
				values = append(values, s)
			}
		}

		return Tags{values: values}
	case map[string]any:
		tags := Tags{keyed: true}
		for key, value := range t {
			if key == customerNumberKey {
				if s, ok := value.(string); ok {
					tags.customerNumber = s
				}
				continue
			}
			tags.values = append(tags.values, key)
		}
		sort.Strings(tags.values)

		return tags
	default:
		return Tags{}
	}
}

// UnmarshalJSON accepts both list and object form.
func (t *Tags) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*t = tagsFromRaw(raw)

	return nil
}

// MarshalJSON always emits the list form.
func (t Tags) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Values())
}

// Values returns every tag, with the dedicated customer number first when present.
func (t Tags) Values() []string {
	out := make([]string, 0, len(t.values)+1)
	if t.customerNumber != "" {
		out = append(out, t.customerNumber)
	}

	return append(out, t.values...)
}

// Contains reports whether tag is attached verbatim.
func (t Tags) Contains(tag string) bool {
	for _, v := range t.values {
		if v == tag {
			return true
		}
	}

	return false
}

// NumericTags returns the tags that look like subscriber numbers.
func (t Tags) NumericTags() []string {
	var out []string
	for _, v := range t.values {
		if isCustomerNumberLike(v) {
			out = append(out, v)
		}
	}

	return out
}

// CustomerNumber returns the dedicated customer number, or the first
// number-like tag.
func (t Tags) CustomerNumber() string {
	if t.customerNumber != "" {
		return t.customerNumber
	}
	if numeric := t.NumericTags(); len(numeric) > 0 {
		return numeric[0]
	}

	return ""
}

// CustomerName returns the value of the "customerName:" tag.
func (t Tags) CustomerName() string {
	for _, v := range t.values {
		if strings.HasPrefix(v, customerNamePrefix) {
			return strings.TrimPrefix(v, customerNamePrefix)
		}
	}

	return ""
}

// CustomerNameTags returns every "customerName:" tag so they can be replaced.
func (t Tags) CustomerNameTags() []string {
	var out []string
	for _, v := range t.values {
		if strings.HasPrefix(v, customerNamePrefix) {
			out = append(out, v)
		}
	}

	return out
}

// CustomerNameTag builds the tag that stores a customer name.
func CustomerNameTag(name string) string {
	return customerNamePrefix + name
}

// MatchesExact applies the exact directory rule for one candidate form.
func (t Tags) MatchesExact(candidate string) bool {
	if candidate == "" {
		return false
	}
	if !t.keyed {
		return t.Contains(candidate)
	}
	if t.customerNumber == candidate {
		return true
	}
	for _, v := range t.NumericTags() {
		if v == candidate {
			return true
		}
	}

	return false
}

// MatchesPartial applies the suffix rule: the candidate ends a number-like
// tag or the tag ends the candidate. Short candidates never match.
func (t Tags) MatchesPartial(candidate string) bool {
	if len(candidate) < minPartialCandidateLn {
		return false
	}

	numbers := t.NumericTags()
	if t.customerNumber != "" {
		numbers = append(numbers, t.customerNumber)
	}

	for _, v := range numbers {
		if strings.HasSuffix(v, candidate) || strings.HasSuffix(candidate, v) {
			return true
		}
	}

	return false
}

func isCustomerNumberLike(s string) bool {
	return len(s) >= minCustomerNumberLen && phone.IsDigits(s)
}
