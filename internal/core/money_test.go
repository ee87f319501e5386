package core

import (
	"encoding/json"
	"testing"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in  string
		out int64
		ok  bool
	}{
		{"1", 100, true},
		{"1.0", 100, true},
		{"1.23", 123, true},
		{"1,23", 123, true},
		{"0.01", 1, true},
		{".5", 50, true},
		{"3.", 300, true},
		{"1.005", 101, true}, // half-up rounding
		{"12,345", 1235, true},
		{" 2.50 ", 250, true},
		{"-1", 0, false},
		{"+1", 0, false},
		{"0", 0, false},
		{"0.001", 0, false},
		{"abc", 0, false},
		{"1e3", 0, false},
		{"1.2.3", 0, false},
		{".", 0, false},
		{"", 0, false},
		{"1000000000000000", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseAmount(tc.in)
		if tc.ok {
			if err != nil || got.Cents != tc.out {
				t.Fatalf("%q expected %d, got %d (err=%v)", tc.in, tc.out, got.Cents, err)
			}
		} else if err == nil {
			t.Fatalf("%q expected error, got %d", tc.in, got.Cents)
		}
	}
}

func TestMoneyFloatRoundTrip(t *testing.T) {
	for _, cents := range []int64{0, 1, -1, 10, 99, 12345, -4000, 1999999} {
		m := Money{Cents: cents}
		if got := FromFloat(m.Float64()); got != m {
			t.Fatalf("round trip of %d gave %d", cents, got.Cents)
		}
	}
	if got := FromFloat(0.1 + 0.2); got.Cents != 30 {
		t.Fatalf("expected 30 cents, got %d", got.Cents)
	}
	if got := FromFloat(-40.005); got.Cents != -4001 {
		t.Fatalf("expected -4001 cents, got %d", got.Cents)
	}
}

func TestMoneyString(t *testing.T) {
	cases := map[int64]string{0: "0.00", 5: "0.05", -4000: "-40.00", 123456: "1234.56"}
	for cents, want := range cases {
		if got := (Money{Cents: cents}).String(); got != want {
			t.Fatalf("%d: expected %q, got %q", cents, want, got)
		}
	}
}

func TestMoneyJSON(t *testing.T) {
	b, err := json.Marshal(struct{ A Money }{Money{Cents: -1050}})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `{"A":"-10.50"}` {
		t.Fatalf("unexpected json %s", b)
	}

	var out struct{ A Money }
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.A.Cents != -1050 {
		t.Fatalf("expected -1050, got %d", out.A.Cents)
	}
}
