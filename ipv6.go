package weburl

// parseIPv6 implements spec.md §4.2.2: 1-8 colon-separated 1-4-hex
// pieces, at most one "::" compression, with an optional trailing
// IPv4 address occupying the last two pieces.
func parseIPv6(input string) (addr [8]uint16, err error) {
	pieceIndex := 0
	compress := -1
	i := 0
	n := len(input)

	if n > 0 && input[0] == ':' {
		if n < 2 || input[1] != ':' {
			return addr, ErrInvalidIPv6
		}
		i = 2
		pieceIndex++
		compress = pieceIndex
	}

	for i < n {
		if pieceIndex >= 8 {
			return addr, ErrInvalidIPv6
		}
		if input[i] == ':' {
			if compress != -1 {
				return addr, ErrInvalidIPv6
			}
			i++
			pieceIndex++
			compress = pieceIndex
			continue
		}

		start := i
		value := 0
		length := 0
		for i < n && length < 4 && isASCIIHexDigit(input[i]) {
			value = value*16 + int(hexVal(input[i]))
			i++
			length++
		}

		if i < n && input[i] == '.' {
			// IPv4 tail: must occupy the last two pieces and start
			// a dotted-quad from here.
			if pieceIndex > 6 {
				return addr, ErrInvalidIPv6
			}
			numbersSeen := 0
			v4 := uint32(0)
			j := start
			for numbersSeen < 4 {
				if numbersSeen > 0 {
					if j < n && input[j] == '.' && numbersSeen < 4 {
						j++
					} else {
						return addr, ErrInvalidIPv6
					}
				}
				if j >= n || !isASCIIDigit(input[j]) {
					return addr, ErrInvalidIPv6
				}
				part := 0
				digits := 0
				for j < n && isASCIIDigit(input[j]) {
					if digits > 0 && part == 0 {
						return addr, ErrInvalidIPv6 // leading zero
					}
					part = part*10 + int(input[j]-'0')
					digits++
					if digits > 3 || part > 255 {
						return addr, ErrInvalidIPv6
					}
					j++
				}
				v4 = v4<<8 | uint32(part)
				numbersSeen++
				if numbersSeen == 4 && j != n {
					return addr, ErrInvalidIPv6
				}
			}
			addr[pieceIndex] = uint16(v4 >> 16)
			pieceIndex++
			addr[pieceIndex] = uint16(v4 & 0xFFFF)
			pieceIndex++
			i = j
			break
		}

		if length == 0 {
			return addr, ErrInvalidIPv6
		}
		addr[pieceIndex] = uint16(value)
		pieceIndex++

		if i < n {
			if input[i] != ':' {
				return addr, ErrInvalidIPv6
			}
			i++
			if i >= n {
				return addr, ErrInvalidIPv6 // trailing single colon
			}
		}
	}

	if compress != -1 {
		swaps := pieceIndex - compress
		for k := 1; k <= swaps; k++ {
			addr[8-k], addr[compress+swaps-k] = addr[compress+swaps-k], addr[8-k]
		}
	} else if pieceIndex != 8 {
		return addr, ErrInvalidIPv6
	}

	return addr, nil
}

// serializeIPv6 renders addr in its canonical compressed lower-case
// form, including the IPv4-mapped special case (spec.md §4.2.2).
func serializeIPv6(addr [8]uint16) string {
	if addr[0] == 0 && addr[1] == 0 && addr[2] == 0 && addr[3] == 0 &&
		addr[4] == 0 && addr[5] == 0xFFFF {
		b := newStrBuilder()
		b.WriteString("::ffff:")
		b.WriteString(serializeIPv4(uint32(addr[6])<<16 | uint32(addr[7])))
		return b.String()
	}

	start, length := longestZeroRun(addr)
	if length == 0 {
		pieces := make([]string, 8)
		for i, p := range addr {
			pieces[i] = fmtUint(uint64(p), 16)
		}
		return joinStr(pieces, ":")
	}

	before := make([]string, start)
	for i := 0; i < start; i++ {
		before[i] = fmtUint(uint64(addr[i]), 16)
	}
	after := make([]string, 0, 8-start-length)
	for i := start + length; i < 8; i++ {
		after = append(after, fmtUint(uint64(addr[i]), 16))
	}
	return joinStr(before, ":") + "::" + joinStr(after, ":")
}

// longestZeroRun finds the earliest longest run of >=2 consecutive
// zero pieces, returning (start, length); length is 0 if no such run
// exists.
func longestZeroRun(addr [8]uint16) (start, length int) {
	bestStart, bestLen := -1, 0
	curStart, curLen := -1, 0
	for i := 0; i < 8; i++ {
		if addr[i] == 0 {
			if curStart == -1 {
				curStart = i
			}
			curLen++
		} else {
			if curLen > bestLen {
				bestStart, bestLen = curStart, curLen
			}
			curStart, curLen = -1, 0
		}
	}
	if curLen > bestLen {
		bestStart, bestLen = curStart, curLen
	}
	if bestLen < 2 {
		return 0, 0
	}
	return bestStart, bestLen
}
