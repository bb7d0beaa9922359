package weburl

// Byte classification helpers over raw ASCII code points. The parser
// and host/path sub-parsers never operate on runes directly once past
// the initial UTF-8 decode of non-ASCII input (which percent-encoding
// handles byte-wise); everything below is a pure function of a single
// byte.

func isASCIIAlpha(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isASCIIDigit(c byte) bool { return '0' <= c && c <= '9' }

func isASCIIAlphanumeric(c byte) bool { return isASCIIAlpha(c) || isASCIIDigit(c) }

func isASCIIHexDigit(c byte) bool {
	return isASCIIDigit(c) || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func hexVal(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}

// isC0OrSpace matches the set stripped from leading/trailing input
// before the state machine starts (spec.md §4.1).
func isC0OrSpace(c byte) bool { return c <= 0x20 }

// isASCIITabOrNewline matches the set filtered from the interior of
// the input (spec.md §4.1).
func isASCIITabOrNewline(c byte) bool { return c == 0x09 || c == 0x0A || c == 0x0D }

// isSchemeChar matches bytes valid after the first character of a
// scheme (spec.md §4.1 scheme state).
func isSchemeChar(c byte) bool {
	return isASCIIAlphanumeric(c) || c == '+' || c == '-' || c == '.'
}

// isForbiddenHostCodePoint matches the closed set from spec.md §4.2
// forbidden for any parsed host (domain or opaque).
func isForbiddenHostCodePoint(c byte) bool {
	switch c {
	case 0x00, 0x09, 0x0A, 0x0D, 0x20,
		'#', '/', ':', '<', '>', '?', '@', '[', '\\', ']', '^', '|':
		return true
	}
	return false
}

// isForbiddenDomainCodePoint extends the forbidden-host set with '%'
// and the C0 controls, as spec.md §4.2 requires for domain hosts.
func isForbiddenDomainCodePoint(c byte) bool {
	return isForbiddenHostCodePoint(c) || c == '%' || c < 0x20 || c == 0x7F
}

// isURLCodePoint approximates the WHATWG URL code point set for the
// ASCII range; non-ASCII bytes are always allowed through (they are
// percent-encoded by the caller before this check would ever see
// them in a context that matters).
func isURLCodePoint(c byte) bool {
	if c >= 0x80 {
		return true
	}
	if isASCIIAlphanumeric(c) {
		return true
	}
	switch c {
	case '!', '$', '&', '\'', '(', ')', '*', '+', ',', '-', '.', '/', ':',
		';', '=', '?', '@', '_', '~', '%':
		return true
	}
	return false
}

// isWindowsDriveLetter matches a two-byte ASCII-alpha + (':'|'|')
// pair, meaningful only under the file scheme (spec.md §4.3).
func isWindowsDriveLetter(s string) bool {
	return len(s) == 2 && isASCIIAlpha(s[0]) && (s[1] == ':' || s[1] == '|')
}

// isNormalizedWindowsDriveLetter additionally requires the second
// byte be exactly ':', i.e. already in its stored/normalized form.
func isNormalizedWindowsDriveLetter(s string) bool {
	return len(s) == 2 && isASCIIAlpha(s[0]) && s[1] == ':'
}

// startsWithWindowsDriveLetter reports whether s begins with a drive
// letter that is itself a whole path component (followed by '/', '\',
// '?', '#' or end of string).
func startsWithWindowsDriveLetter(s string) bool {
	if len(s) < 2 || !isWindowsDriveLetter(s[:2]) {
		return false
	}
	if len(s) == 2 {
		return true
	}
	switch s[2] {
	case '/', '\\', '?', '#':
		return true
	}
	return false
}
