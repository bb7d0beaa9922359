package weburl

import "testing"

func TestParseIPv6(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
		want    [8]uint16
	}{
		{
			in:   "2001:db8:0:0:0:0:0:1",
			want: [8]uint16{0x2001, 0x0db8, 0, 0, 0, 0, 0, 1},
		},
		{
			in:   "2001:db8::1",
			want: [8]uint16{0x2001, 0x0db8, 0, 0, 0, 0, 0, 1},
		},
		{
			in:   "::1",
			want: [8]uint16{0, 0, 0, 0, 0, 0, 0, 1},
		},
		{
			in:   "::",
			want: [8]uint16{0, 0, 0, 0, 0, 0, 0, 0},
		},
		{
			in:   "1::",
			want: [8]uint16{1, 0, 0, 0, 0, 0, 0, 0},
		},
		{
			in:   "::ffff:192.168.0.1",
			want: [8]uint16{0, 0, 0, 0, 0, 0xFFFF, 0xC0A8, 0x0001},
		},
		{
			in:      ":::1",
			wantErr: true,
		},
		{
			in:      "1:2:3:4:5:6:7:8:9",
			wantErr: true,
		},
		{
			in:      "gggg::1",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		addr, err := parseIPv6(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseIPv6(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && addr != tt.want {
			t.Errorf("parseIPv6(%q) = %v, want %v", tt.in, addr, tt.want)
		}
	}
}

func TestSerializeIPv6(t *testing.T) {
	tests := []struct {
		in   [8]uint16
		want string
	}{
		{[8]uint16{0x2001, 0x0db8, 0, 0, 0, 0, 0, 1}, "2001:db8::1"},
		{[8]uint16{0, 0, 0, 0, 0, 0, 0, 1}, "::1"},
		{[8]uint16{0, 0, 0, 0, 0, 0, 0, 0}, "::"},
		{[8]uint16{1, 0, 0, 0, 0, 0, 0, 0}, "1::"},
		{[8]uint16{0, 0, 0, 0, 0, 0xFFFF, 0xC0A8, 0x0001}, "::ffff:192.168.0.1"},
	}
	for _, tt := range tests {
		if got := serializeIPv6(tt.in); got != tt.want {
			t.Errorf("serializeIPv6(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIPv6RoundTrip(t *testing.T) {
	for _, s := range []string{
		"2001:db8::1",
		"::1",
		"::",
		"1:2:3:4:5:6:7:8",
		"ff::ff",
	} {
		addr, err := parseIPv6(s)
		if err != nil {
			t.Fatalf("parseIPv6(%q): %v", s, err)
		}
		addr2, err := parseIPv6(serializeIPv6(addr))
		if err != nil {
			t.Fatalf("parseIPv6(serializeIPv6(parseIPv6(%q))): %v", s, err)
		}
		if addr != addr2 {
			t.Errorf("round trip of %q not stable: %v != %v", s, addr, addr2)
		}
	}
}

func TestLongestZeroRun(t *testing.T) {
	tests := []struct {
		in          [8]uint16
		start, want int
	}{
		{[8]uint16{0, 0, 1, 0, 0, 0, 1, 0}, 3, 3},
		{[8]uint16{1, 2, 3, 4, 5, 6, 7, 8}, 0, 0},
		{[8]uint16{0, 1, 2, 3, 4, 5, 6, 0}, 0, 0},
	}
	for _, tt := range tests {
		start, length := longestZeroRun(tt.in)
		if length != tt.want || (length > 0 && start != tt.start) {
			t.Errorf("longestZeroRun(%v) = (%d, %d), want start %d length %d", tt.in, start, length, tt.start, tt.want)
		}
	}
}
