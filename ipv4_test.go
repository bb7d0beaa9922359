package weburl

import "testing"

func TestParseIPv4(t *testing.T) {
	tests := []struct {
		in      string
		wantOk  bool
		wantErr bool
		want    uint32
	}{
		{"192.168.0.1", true, false, 0xC0A80001},
		{"0300.0250.0.01", true, false, 0xC0A80001}, // octal octets
		{"0x7f.0.0.1", true, false, 0x7F000001},      // hex octet
		{"1", true, false, 1},
		{"256.1.1.1", false, true, 0},  // overflow in the first octet
		{"1.1.1.999999", false, true, 0}, // overflow in the last part
		{"not-an-ip", false, false, 0},
		{"1.2.3.4.5", false, false, 0},
	}
	for _, tt := range tests {
		addr, ok, err := parseIPv4(tt.in, nil)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseIPv4(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err != nil {
			continue
		}
		if ok != tt.wantOk {
			t.Errorf("parseIPv4(%q) ok = %v, want %v", tt.in, ok, tt.wantOk)
			continue
		}
		if ok && addr != tt.want {
			t.Errorf("parseIPv4(%q) = %#x, want %#x", tt.in, addr, tt.want)
		}
	}
}

func TestParseIPv4ThreePartShorthand(t *testing.T) {
	// "1.2.3" means octet1=1, octet2=2, and the last 16 bits = 3.
	addr, ok, err := parseIPv4("1.2.3", nil)
	if err != nil || !ok {
		t.Fatalf("parseIPv4(1.2.3) = %v, %v, %v", addr, ok, err)
	}
	want := uint32(1)<<24 | uint32(2)<<16 | uint32(3)
	if addr != want {
		t.Errorf("parseIPv4(1.2.3) = %#x, want %#x", addr, want)
	}
}

func TestSerializeIPv4(t *testing.T) {
	tests := []struct {
		in   uint32
		want string
	}{
		{0xC0A80001, "192.168.0.1"},
		{0, "0.0.0.0"},
		{0xFFFFFFFF, "255.255.255.255"},
	}
	for _, tt := range tests {
		if got := serializeIPv4(tt.in); got != tt.want {
			t.Errorf("serializeIPv4(%#x) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseIPv4ReportsValidationCodes(t *testing.T) {
	var got []ValidationErrorCode
	sink := func(code ValidationErrorCode, context string) { got = append(got, code) }

	if _, _, err := parseIPv4("256.1.1.1", sink); err == nil {
		t.Fatal("expected overflow to fail hard")
	}
	if len(got) != 1 || got[0] != ValIPv4Overflow {
		t.Errorf("sink codes = %v, want [%s]", got, ValIPv4Overflow)
	}

	got = nil
	if _, ok, _ := parseIPv4("1.2.3.4x", sink); ok {
		t.Fatal("expected non-numeric part to fail")
	}
	if len(got) != 1 || got[0] != ValIPv4NonNumericPart {
		t.Errorf("sink codes = %v, want [%s]", got, ValIPv4NonNumericPart)
	}
}

func TestLooksLikeIPv4Candidate(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"192.168.0.1", true},
		{"0x7f.0.0.1", true},
		{"example.com", false},
		{"example.1", true}, // last label numeric -> candidate, parseIPv4 will then fail hard
		{"example.de", false},  // unprefixed hex letters are not decimal digits
		{"face", false},
		{"cafe", false},
		{"dead.beef", false},
		{"0xface", true}, // explicit hex prefix makes hex letters valid
	}
	for _, tt := range tests {
		if got := looksLikeIPv4Candidate(tt.in); got != tt.want {
			t.Errorf("looksLikeIPv4Candidate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
