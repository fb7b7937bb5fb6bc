package utils

import (
	"reflect"
	"testing"
)

func TestFacilitiesRoundTrip(t *testing.T) {
	tags := []string{"parkir", "AC", "catering", "sound system"}
	got := DecodeFacilities(EncodeFacilities(tags))
	if !reflect.DeepEqual(got, tags) {
		t.Errorf("DecodeFacilities(EncodeFacilities(%v)) = %v, want %v", tags, got, tags)
	}
}

func TestDecodeFacilitiesEmpty(t *testing.T) {
	got := DecodeFacilities("")
	if got == nil {
		t.Fatal("DecodeFacilities(\"\") = nil, want empty slice")
	}
	if len(got) != 0 {
		t.Errorf("DecodeFacilities(\"\") = %v, want []", got)
	}
}

func TestDecodeFacilitiesMalformed(t *testing.T) {
	for _, raw := range []string{"not json", "{\"a\":1}", "[1,2,3]", "null"} {
		got := DecodeFacilities(raw)
		if got == nil {
			t.Fatalf("DecodeFacilities(%q) = nil, want empty slice", raw)
		}
		if len(got) != 0 {
			t.Errorf("DecodeFacilities(%q) = %v, want []", raw, got)
		}
	}
}

func TestEncodeFacilitiesNil(t *testing.T) {
	if got := EncodeFacilities(nil); got != "[]" {
		t.Errorf("EncodeFacilities(nil) = %q, want %q", got, "[]")
	}
}
