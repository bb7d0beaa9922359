package weburl

// HostKind identifies which variant a [ParsedHost] holds, and doubles
// as the Structure.HostKind tag (spec.md §3).
type HostKind uint8

const (
	HostNone HostKind = iota
	HostDomain
	HostDomainIDN
	HostIPv4
	HostIPv6
	HostOpaque
	HostEmpty
)

func (k HostKind) String() string {
	switch k {
	case HostDomain:
		return "domain"
	case HostDomainIDN:
		return "domain-with-idn"
	case HostIPv4:
		return "ipv4"
	case HostIPv6:
		return "ipv6"
	case HostOpaque:
		return "opaque"
	case HostEmpty:
		return "empty"
	}
	return "none"
}

// ParsedHost is the tagged variant produced by [parseHost] and
// returned from [URL.Host] (spec.md §3).
type ParsedHost struct {
	Kind HostKind
	IPv4 uint32
	IPv6 [8]uint16
	text string // domain / opaque serialization; unused for ipv4/ipv6/none/empty
}

// String renders the host the way it is stored in a URL's
// serialization (spec.md §6 "Serialization format").
func (h ParsedHost) String() string {
	switch h.Kind {
	case HostIPv4:
		return serializeIPv4(h.IPv4)
	case HostIPv6:
		return "[" + serializeIPv6(h.IPv6) + "]"
	case HostDomain, HostDomainIDN, HostOpaque:
		return h.text
	}
	return ""
}

func (h ParsedHost) IsZero() bool { return h.Kind == HostNone }

// parseHost implements spec.md §4.2: dispatch to IPv6 (bracketed),
// IPv4 (special schemes, numeric-looking input), domain (percent-
// decode + IDNA + lower-case) or opaque.
func parseHost(input string, isSpecial bool, sink ValidationErrorSink) (ParsedHost, error) {
	if input == "" {
		return ParsedHost{Kind: HostEmpty}, nil
	}

	if input[0] == '[' {
		if input[len(input)-1] != ']' {
			sink.report(ValUnclosedIPv6, input)
			return ParsedHost{}, ErrInvalidHost
		}
		addr, err := parseIPv6(input[1 : len(input)-1])
		if err != nil {
			return ParsedHost{}, ErrInvalidHost
		}
		return ParsedHost{Kind: HostIPv6, IPv6: addr}, nil
	}

	if !isSpecial {
		return parseOpaqueHost(input, sink)
	}

	decoded := percentDecodeString(input)
	for i := 0; i < len(decoded); i++ {
		if isForbiddenDomainCodePoint(decoded[i]) {
			sink.report(ValHostForbiddenCodePoint, decoded)
			return ParsedHost{}, ErrInvalidHost
		}
	}

	if looksLikeIPv4Candidate(decoded) {
		addr, ok, err := parseIPv4(decoded, sink)
		if err != nil {
			return ParsedHost{}, err
		}
		if ok {
			return ParsedHost{Kind: HostIPv4, IPv4: addr}, nil
		}
		return ParsedHost{}, ErrInvalidHost
	}

	ascii, err := idnaToASCII(decoded)
	if err != nil {
		return ParsedHost{}, ErrInvalidHost
	}
	ascii = lc(ascii)

	for i := 0; i < len(ascii); i++ {
		if isForbiddenDomainCodePoint(ascii[i]) {
			sink.report(ValHostForbiddenCodePoint, ascii)
			return ParsedHost{}, ErrInvalidHost
		}
	}

	kind := HostDomain
	if ascii != lc(decoded) {
		kind = HostDomainIDN
	}
	return ParsedHost{Kind: kind, text: ascii}, nil
}

// parseFileHost applies the "localhost" folding quirk on top of the
// ordinary special-scheme host parse, as spec.md §4.2 requires for
// the file scheme.
func parseFileHost(input string, sink ValidationErrorSink) (ParsedHost, error) {
	if cntns(input, "@") {
		return ParsedHost{}, ErrFileWithCreds
	}
	h, err := parseHost(input, true, sink)
	if err != nil {
		return h, err
	}
	if (h.Kind == HostDomain || h.Kind == HostDomainIDN) && h.text == "localhost" {
		return ParsedHost{Kind: HostEmpty}, nil
	}
	return h, nil
}

func parseOpaqueHost(input string, sink ValidationErrorSink) (ParsedHost, error) {
	for i := 0; i < len(input); i++ {
		c := input[i]
		if c == '%' {
			if isInvalidPercentEncodedAt(input, i) {
				sink.report(ValInvalidPercentEncoding, input)
			}
			continue
		}
		if isForbiddenHostCodePoint(c) {
			sink.report(ValHostForbiddenCodePoint, input)
			return ParsedHost{}, ErrInvalidHost
		}
		if !isURLCodePoint(c) {
			sink.report(ValInvalidCodePoint, input)
		}
	}
	encoded := percentEncodeString(input, encodeSetC0)
	return ParsedHost{Kind: HostOpaque, text: encoded}, nil
}
