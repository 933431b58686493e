package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/Gunvolt24/vendorcache/internal/domain"
)

func TestFlexFloat_Unmarshal(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantValue float64
		wantKnown bool
	}{
		{"number", `41.715`, 41.715, true},
		{"integer", `42`, 42, true},
		{"negative", `-0.5`, -0.5, true},
		{"numeric_string", `"41.715"`, 41.715, true},
		{"padded_string", `"  41.715 "`, 41.715, true},
		{"null", `null`, 0, false},
		{"empty_string", `""`, 0, false},
		{"junk_string", `"abc"`, 0, false},
		{"nan_string", `"NaN"`, 0, false},
		{"inf_string", `"+Inf"`, 0, false},
		{"object", `{"v":1}`, 0, false},
		{"array", `[1]`, 0, false},
		{"bool", `true`, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f domain.FlexFloat
			if err := json.Unmarshal([]byte(tt.input), &f); err != nil {
				t.Fatalf("tolerant decode must not error: %v", err)
			}
			if f.Known != tt.wantKnown || f.Value != tt.wantValue {
				t.Fatalf("input %s: got {%v %v}, want {%v %v}",
					tt.input, f.Value, f.Known, tt.wantValue, tt.wantKnown)
			}
		})
	}
}

func TestFlexFloat_UnmarshalDoesNotFailRecord(t *testing.T) {
	// Мусор в одной координате не валит декодирование записи.
	raw := `{"id":"v-1","slug":"v-1","display_name":"V","active":true,"latitude":"oops","longitude":24.9}`

	var v domain.VendorRecord
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		t.Fatalf("record decode failed: %v", err)
	}
	if v.ID != "v-1" || v.Latitude.Known || !v.Longitude.Known {
		t.Fatalf("unexpected record: %+v", v)
	}
	if _, ok := v.Coordinates(); ok {
		t.Fatalf("half-known pair must have no coordinates")
	}
}

func TestFlexFloat_Marshal(t *testing.T) {
	known, err := json.Marshal(domain.Float(41.715))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(known) != "41.715" {
		t.Fatalf("want 41.715, got %s", known)
	}

	unknown, err := json.Marshal(domain.FlexFloat{})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(unknown) != "null" {
		t.Fatalf("unknown value must marshal as null, got %s", unknown)
	}
}
