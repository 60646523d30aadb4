package nexus

import (
	"encoding/json"
	"testing"
	"time"
)

func TestCategoryParentDecode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantID  uint64
		wantSet bool
		wantErr bool
	}{
		{"zero is a valid parent id", "0", 0, true, false},
		{"positive id", "42", 42, true, false},
		{"false means no parent", "false", 0, false, false},
		{"true is rejected", "true", 0, false, true},
		{"negative id is rejected", "-3", 0, false, true},
		{"string is rejected", `"7"`, 0, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p CategoryParent
			err := json.Unmarshal([]byte(tt.input), &p)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Unmarshal(%s) succeeded, want error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal(%s) returned error: %v", tt.input, err)
			}
			id, set := p.ID()
			if id != tt.wantID || set != tt.wantSet {
				t.Errorf("ID() = (%d, %v), want (%d, %v)", id, set, tt.wantID, tt.wantSet)
			}
		})
	}
}

func TestCategoryParentRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		value CategoryParent
		wire  string
	}{
		{"parent id", ParentCategory(17), "17"},
		{"zero parent id", ParentCategory(0), "0"},
		{"no parent", NoParent(), "false"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := json.Marshal(tt.value)
			if err != nil {
				t.Fatalf("Marshal returned error: %v", err)
			}
			if string(out) != tt.wire {
				t.Errorf("Marshal = %s, want %s", out, tt.wire)
			}
			var back CategoryParent
			if err := json.Unmarshal(out, &back); err != nil {
				t.Fatalf("Unmarshal of own output returned error: %v", err)
			}
			if back != tt.value {
				t.Errorf("round trip = %#v, want %#v", back, tt.value)
			}
		})
	}
}

func TestEndorseStatusDecode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  EndorseStatus
	}{
		{"exact tag", `"Endorsed"`, Endorsed},
		{"undecided", `"Undecided"`, NotEndorsed},
		{"abstained", `"Abstained"`, NotEndorsed},
		{"unknown tag", `"Whatever"`, NotEndorsed},
		{"lowercase is not the tag", `"endorsed"`, NotEndorsed},
		{"non-string is still well-formed", `123`, NotEndorsed},
		{"null is still well-formed", `null`, NotEndorsed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s EndorseStatus
			if err := json.Unmarshal([]byte(tt.input), &s); err != nil {
				t.Fatalf("Unmarshal(%s) returned error: %v", tt.input, err)
			}
			if s != tt.want {
				t.Errorf("Unmarshal(%s) = %v, want %v", tt.input, s, tt.want)
			}
		})
	}
}

func TestEndorseStatusRoundTrip(t *testing.T) {
	for _, status := range []EndorseStatus{Endorsed, NotEndorsed} {
		out, err := json.Marshal(status)
		if err != nil {
			t.Fatalf("Marshal(%v) returned error: %v", status, err)
		}
		var back EndorseStatus
		if err := json.Unmarshal(out, &back); err != nil {
			t.Fatalf("Unmarshal of own output returned error: %v", err)
		}
		if back != status {
			t.Errorf("round trip of %v = %v", status, back)
		}
	}
}

func TestFileCategoryDecode(t *testing.T) {
	tests := []struct {
		input   string
		want    FileCategory
		wantErr bool
	}{
		{"1", FileCategoryMain, false},
		{"2", FileCategoryUpdate, false},
		{"3", FileCategoryOptional, false},
		{"4", FileCategoryOldVersion, false},
		{"5", FileCategoryMiscellaneous, false},
		{"6", FileCategoryRemoved, false},
		{"0", 0, true},
		{"7", 0, true},
		{"-1", 0, true},
		{`"main"`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var c FileCategory
			err := json.Unmarshal([]byte(tt.input), &c)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Unmarshal(%s) succeeded with %v, want error", tt.input, c)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal(%s) returned error: %v", tt.input, err)
			}
			if c != tt.want {
				t.Errorf("Unmarshal(%s) = %v, want %v", tt.input, c, tt.want)
			}
		})
	}
}

func TestTimestampDecodesBothEncodings(t *testing.T) {
	want := time.Date(2021, 4, 14, 18, 52, 28, 0, time.UTC)

	var fromEpoch Timestamp
	if err := json.Unmarshal([]byte("1618426348"), &fromEpoch); err != nil {
		t.Fatalf("Unmarshal(epoch) returned error: %v", err)
	}
	if !fromEpoch.Time().Equal(want) {
		t.Errorf("epoch decode = %v, want %v", fromEpoch.Time(), want)
	}

	var fromISO Timestamp
	if err := json.Unmarshal([]byte(`"2021-04-14T18:52:28.000+00:00"`), &fromISO); err != nil {
		t.Fatalf("Unmarshal(iso) returned error: %v", err)
	}
	if !fromISO.Time().Equal(want) {
		t.Errorf("iso decode = %v, want %v", fromISO.Time(), want)
	}

	// Both encodings of the same instant must agree.
	if !fromEpoch.Time().Equal(fromISO.Time()) {
		t.Errorf("epoch and iso decode disagree: %v vs %v", fromEpoch.Time(), fromISO.Time())
	}
}

func TestTimestampRoundTripPreservesWireForm(t *testing.T) {
	for _, input := range []string{"1618426348", `"2021-04-14T18:52:28Z"`} {
		var ts Timestamp
		if err := json.Unmarshal([]byte(input), &ts); err != nil {
			t.Fatalf("Unmarshal(%s) returned error: %v", input, err)
		}
		out, err := json.Marshal(ts)
		if err != nil {
			t.Fatalf("Marshal returned error: %v", err)
		}
		if string(out) != input {
			t.Errorf("round trip of %s = %s", input, out)
		}
	}
}

func TestTimestampRejectsGarbage(t *testing.T) {
	for _, input := range []string{`"yesterday"`, `true`, `1.5`} {
		var ts Timestamp
		if err := json.Unmarshal([]byte(input), &ts); err == nil {
			t.Errorf("Unmarshal(%s) succeeded, want error", input)
		}
	}
}
