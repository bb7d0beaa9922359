package weburl

// parseIPv4 implements spec.md §4.2.1. ok is false when the input is
// simply "not an IPv4 address"; err is non-nil only for a hard failure
// (numeric overflow). parseHost calls this only for hosts whose last
// label is numeric, and rejects the host in either case.
func parseIPv4(input string, sink ValidationErrorSink) (addr uint32, ok bool, err error) {
	parts := split(input, ".")
	if len(parts) > 4 {
		return 0, false, nil
	}

	// A single trailing empty part is dropped (spec.md §4.2.1), but
	// only when there are at least two parts in total.
	if len(parts) >= 2 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	if len(parts) == 0 || len(parts) > 4 {
		return 0, false, nil
	}

	nums := make([]uint64, len(parts))
	for i, p := range parts {
		n, pok := parseIPv4Part(p)
		if !pok {
			sink.report(ValIPv4NonNumericPart, p)
			return 0, false, nil
		}
		nums[i] = n
	}

	for i, n := range nums[:len(nums)-1] {
		if n > 0xFF {
			sink.report(ValIPv4Overflow, input)
			return 0, false, ErrInvalidIPv4
		}
		_ = i
	}

	last := nums[len(nums)-1]
	maxLast := uint64(1)<<(8*uint(5-len(nums))) - 1
	if last > maxLast {
		sink.report(ValIPv4Overflow, input)
		return 0, false, ErrInvalidIPv4
	}

	var result uint32
	for i := 0; i < len(nums)-1; i++ {
		shift := 8 * uint(3-i)
		result |= uint32(nums[i]) << shift
	}
	result |= uint32(last)

	return result, true, nil
}

// parseIPv4Part parses a single dot-separated part in decimal, octal
// ("0" prefix, length >= 2) or hex ("0x"/"0X" prefix) radix. ok is
// false when the part has no digits or contains a disallowed
// character, signalling "not an IP address" rather than overflow.
func parseIPv4Part(p string) (uint64, bool) {
	if p == "" {
		return 0, false
	}

	radix := 10
	digits := p
	switch {
	case len(p) >= 2 && p[0] == '0' && (p[1] == 'x' || p[1] == 'X'):
		radix = 16
		digits = p[2:]
	case len(p) >= 2 && p[0] == '0':
		radix = 8
		digits = p[1:]
	}

	if digits == "" {
		// Bare "0" or "0x"/"0X" with no further digits: "0" is valid
		// decimal/octal zero; a bare radix prefix with nothing after
		// it is not a number.
		if p == "0" {
			return 0, true
		}
		return 0, false
	}

	for i := 0; i < len(digits); i++ {
		c := digits[i]
		switch radix {
		case 16:
			if !isASCIIHexDigit(c) {
				return 0, false
			}
		case 8:
			if c < '0' || c > '7' {
				return 0, false
			}
		default:
			if !isASCIIDigit(c) {
				return 0, false
			}
		}
	}

	n, err := puint(digits, radix, 64)
	if err != nil {
		// Too many digits to fit a uint64: treat as a hard overflow
		// rather than "not an address", since the syntax was valid:
		// the maximum value fails parseIPv4's range check.
		return ^uint64(0), true
	}
	return n, true
}

// serializeIPv4 renders addr as four decimal octets, no leading
// zeros, per spec.md §4.2.1.
func serializeIPv4(addr uint32) string {
	b := newStrBuilder()
	for i := 3; i >= 0; i-- {
		octet := byte(addr >> uint(8*i))
		b.WriteString(fmtUint(uint64(octet), 10))
		if i > 0 {
			b.WriteByte('.')
		}
	}
	return b.String()
}

// looksLikeIPv4Candidate reports whether the last dot-separated label
// of a host string is entirely numeric (decimal/octal/hex), the
// precondition spec.md §4.2 uses to decide whether a special-scheme
// host must be parsed as IPv4 (and fail hard if it doesn't parse) as
// opposed to falling through to domain parsing.
func looksLikeIPv4Candidate(host string) bool {
	parts := split(host, ".")
	if len(parts) == 0 {
		return false
	}
	last := parts[len(parts)-1]
	if last == "" && len(parts) > 1 {
		last = parts[len(parts)-2]
	}
	if last == "" {
		return false
	}
	digits := last
	hex := false
	if len(last) >= 2 && last[0] == '0' && (last[1] == 'x' || last[1] == 'X') {
		digits = last[2:]
		hex = true
	}
	if digits == "" {
		return false
	}
	for i := 0; i < len(digits); i++ {
		if hex {
			if !isASCIIHexDigit(digits[i]) {
				return false
			}
		} else if !isASCIIDigit(digits[i]) {
			return false
		}
	}
	return true
}
