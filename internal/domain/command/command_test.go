package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   Parsed
		wantOK bool
	}{
		{
			name:   "keyword with case-preserved argument",
			input:  "ssid2g MyHome-5G",
			want:   Parsed{Keyword: "ssid2g", Args: "MyHome-5G"},
			wantOK: true,
		},
		{
			name:   "keyword is lower-cased",
			input:  "  STATUS  ",
			want:   Parsed{Keyword: "status"},
			wantOK: true,
		},
		{
			name:   "multi-word argument kept verbatim",
			input:  "ssid2g Rumah Budi Lt 2",
			want:   Parsed{Keyword: "ssid2g", Args: "Rumah Budi Lt 2"},
			wantOK: true,
		},
		{
			name:   "quotes left in place",
			input:  `ssid2g "Rumah Budi"`,
			want:   Parsed{Keyword: "ssid2g", Args: `"Rumah Budi"`},
			wantOK: true,
		},
		{
			name:   "unterminated quote ignored",
			input:  `ssid2g "Rumah`,
			want:   Parsed{Keyword: "ssid2g", Args: `"Rumah`},
			wantOK: true,
		},
		{name: "empty", input: "", wantOK: false},
		{name: "whitespace only", input: " \t\n ", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := Parse(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsed_Tokens(t *testing.T) {
	p, ok := Parse("pass2g 081234567890   NewPass1")
	require.True(t, ok)
	assert.Equal(t, []string{"081234567890", "NewPass1"}, p.Tokens())
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: `"Rumah Budi"`, want: "Rumah Budi"},
		{input: `Lantai "Dua" Atas`, want: "Dua"},
		{input: `"A" "B"`, want: "A"},
		{input: `"Rumah`, want: `"Rumah`},
		{input: `""`, want: `""`},
		{input: "MyHome-5G", want: "MyHome-5G"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Unquote(tt.input))
		})
	}
}

func TestSpec_Target(t *testing.T) {
	tests := []struct {
		name         string
		id           ID
		args         string
		isAdmin      bool
		wantCustomer string
		wantValue    string
	}{
		{name: "none keeps args", id: DelHotspotUser, args: "tamu", isAdmin: true, wantValue: "tamu"},
		{name: "whole args admin", id: Status, args: "081234567890", isAdmin: true, wantCustomer: "081234567890"},
		{name: "whole args admin empty", id: Status, isAdmin: true},
		{name: "whole args customer", id: Status, args: "081234567890", wantValue: "081234567890"},
		{name: "first token admin", id: SetSSID2G, args: "081234567890 Rumah Budi", isAdmin: true, wantCustomer: "081234567890", wantValue: "Rumah Budi"},
		{name: "first token admin quoted value", id: SetPassword2G, args: `081234567890 "My Pass"`, isAdmin: true, wantCustomer: "081234567890", wantValue: "My Pass"},
		{name: "first token admin single token", id: SetSSID2G, args: "Rumah", isAdmin: true, wantValue: "Rumah"},
		{name: "first token admin leading quote", id: SetSSID2G, args: `"Rumah Budi"`, isAdmin: true, wantValue: "Rumah Budi"},
		{name: "first token customer", id: SetSSID2G, args: `"Rumah Budi"`, wantValue: "Rumah Budi"},
		{name: "first token customer unquoted", id: SetSSID2G, args: "Rumah Budi", wantValue: "Rumah Budi"},
		{name: "required", id: Reboot, args: "081234567890", isAdmin: true, wantCustomer: "081234567890"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := specByID(t, tt.id)

			customer, value := spec.Target(tt.args, tt.isAdmin)
			assert.Equal(t, tt.wantCustomer, customer)
			assert.Equal(t, tt.wantValue, value)
		})
	}
}

func specByID(t *testing.T, id ID) *Spec {
	t.Helper()

	for i := range Table {
		if Table[i].ID == id {
			return &Table[i]
		}
	}
	require.FailNow(t, "unknown command", id)

	return nil
}

func TestLookup(t *testing.T) {
	spec, ok := Lookup("SSID2G")
	require.True(t, ok)
	assert.Equal(t, SetSSID2G, spec.ID)
	assert.Equal(t, OnBehalfFirstToken, spec.OnBehalf)

	spec, ok = Lookup("restart")
	require.True(t, ok)
	assert.Equal(t, Reboot, spec.ID)
	assert.True(t, spec.AdminOnly)

	_, ok = Lookup("banana")
	assert.False(t, ok)
}

func TestTable_KeywordsAreUnique(t *testing.T) {
	seen := map[string]ID{}
	for _, spec := range Table {
		for _, kw := range spec.Keywords {
			prev, dup := seen[kw]
			assert.False(t, dup, "keyword %q used by %s and %s", kw, prev, spec.ID)
			seen[kw] = spec.ID
		}
	}
}

func TestTable_ArgumentCommandsHaveUsage(t *testing.T) {
	for _, spec := range Table {
		if spec.MinArgs > 0 {
			assert.NotEmpty(t, spec.Usage, "command %s", spec.ID)
		}
	}
}
