// Package entity contains the core business objects of the project.
package entity

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"
	"time"

	"portal/internal/errors"
)

const (
	// OnlineWindow is how recent the last inform must be for a device to count as online.
	OnlineWindow = 5 * time.Minute

	wildcardSegment = "*"
	deviceIDPrefix  = "DeviceID."
	leafValueKey    = "_value"
	legacyDash      = "%2D"
)

// Device is one CPE as reported by the ACS. Params keeps the whole document so
// that any parameter path can be resolved later.
type Device struct {
	ID         string
	Tags       Tags
	LastInform time.Time
	Params     map[string]any
}

// UnmarshalJSON decodes the raw ACS device document.
func (d *Device) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "decode device document")
	}

	*d = Device{Params: raw}
	d.ID, _ = raw["_id"].(string)

	if tags, ok := raw["_tags"]; ok {
		d.Tags = tagsFromRaw(tags)
	}

	if v, ok := d.Lookup("_lastInform", "lastInform"); ok {
		if ts, err := time.Parse(time.RFC3339Nano, v.String()); err == nil {
			d.LastInform = ts
		}
	}

	return nil
}

// IsOnline reports whether the device informed within OnlineWindow of now.
func (d *Device) IsOnline(now time.Time) bool {
	if d == nil || d.LastInform.IsZero() {
		return false
	}

	return now.Sub(d.LastInform) <= OnlineWindow
}

// Lookup resolves the first candidate path that yields a value.
//
// Path forms:
//   - "DeviceID.X" reads the shallow identity block, unwrapping a leaf object if present.
//   - "_x" reads a root property of the document.
//   - any other path descends the tree and returns the leaf "_value";
//     a "*" segment tries numeric children in ascending order.
func (d *Device) Lookup(paths ...string) (ParamValue, bool) {
	if d == nil || d.Params == nil {
		return ParamValue{}, false
	}

	for _, path := range paths {
		if v, ok := d.lookupOne(path); ok {
			return newParamValue(v), true
		}
	}

	return ParamValue{}, false
}

// Field resolves a well-known parameter through its candidate path list.
func (d *Device) Field(p Param) (ParamValue, bool) {
	return d.Lookup(ParameterPaths[p]...)
}

// FieldOr resolves a well-known parameter, returning fallback when nothing resolves.
func (d *Device) FieldOr(p Param, fallback string) string {
	v, ok := d.Field(p)
	if !ok || v.String() == "" {
		return fallback
	}

	return v.String()
}

// CustomerNumber returns the subscriber number attached to the device, if any.
func (d *Device) CustomerNumber() (string, bool) {
	if d == nil {
		return "", false
	}
	if number := d.Tags.CustomerNumber(); number != "" {
		return number, true
	}
	if v, ok := d.Field(ParamCustomerNumber); ok && v.String() != "" {
		return v.String(), true
	}

	return "", false
}

func (d *Device) lookupOne(path string) (any, bool) {
	switch {
	case path == "":
		return nil, false
	case strings.HasPrefix(path, deviceIDPrefix):
		return d.lookupDeviceID(strings.TrimPrefix(path, deviceIDPrefix))
	case strings.HasPrefix(path, "_"):
		return primitive(d.Params[path])
	default:
		return resolve(d.Params, strings.Split(path, "."))
	}
}

func (d *Device) lookupDeviceID(prop string) (any, bool) {
	if block, ok := d.Params["DeviceID"].(map[string]any); ok {
		if v, ok := primitive(block[prop]); ok {
			return v, true
		}
		if v, ok := leafValue(block[prop]); ok {
			return v, true
		}
	}

	// GenieACS also keeps the identity under _deviceId with underscored keys.
	if block, ok := d.Params["_deviceId"].(map[string]any); ok {
		return primitive(block["_"+prop])
	}

	return nil, false
}

func resolve(node any, segments []string) (any, bool) {
	if len(segments) == 0 {
		return leafValue(node)
	}

	children, ok := node.(map[string]any)
	if !ok {
		return nil, false
	}

	head, rest := segments[0], segments[1:]
	if head != wildcardSegment {
		child, ok := children[head]
		if !ok {
			return nil, false
		}

		return resolve(child, rest)
	}

	for _, key := range numericKeys(children) {
		if v, ok := resolve(children[key], rest); ok {
			return v, true
		}
	}

	return nil, false
}

func leafValue(node any) (any, bool) {
	m, ok := node.(map[string]any)
	if !ok {
		return nil, false
	}

	v, ok := m[leafValueKey]
	if !ok || v == nil {
		return nil, false
	}

	return v, true
}

func primitive(v any) (any, bool) {
	switch v.(type) {
	case string, float64, bool, json.Number:
		return v, true
	default:
		return nil, false
	}
}

func numericKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		if _, err := strconv.Atoi(key); err == nil {
			keys = append(keys, key)
		}
	}

	sort.Slice(keys, func(i, j int) bool {
		a, _ := strconv.Atoi(keys[i])
		b, _ := strconv.Atoi(keys[j])

		return a < b
	})

	return keys
}

// ParamValue is a resolved leaf. String results have the legacy "%2D"
// encoding of a dash undone.
type ParamValue struct {
	raw any
}

func newParamValue(v any) ParamValue {
	if s, ok := v.(string); ok {
		return ParamValue{raw: strings.ReplaceAll(s, legacyDash, "-")}
	}

	return ParamValue{raw: v}
}

// NewParamValue wraps a raw value the same way resolved leaves are wrapped.
func NewParamValue(v any) ParamValue {
	return newParamValue(v)
}

// Raw returns the decoded JSON value.
func (v ParamValue) Raw() any {
	return v.raw
}

func (v ParamValue) String() string {
	switch t := v.raw.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case json.Number:
		return t.String()
	default:
		return ""
	}
}

// Float parses the value as a number.
func (v ParamValue) Float() (float64, bool) {
	switch t := v.raw.(type) {
	case float64:
		return t, true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// Int parses the value as an integer, truncating fractions.
func (v ParamValue) Int() (int, bool) {
	f, ok := v.Float()
	if !ok {
		return 0, false
	}

	return int(f), true
}
