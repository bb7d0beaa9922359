package weburl

// parserState names the WHATWG state machine's states (spec.md §4.1)
// one-for-one, so the switch in (*parser).run reads against the spec
// state-for-state rather than needing a translation table.
type parserState uint8

const (
	stateSchemeStart parserState = iota
	stateScheme
	stateNoScheme
	stateSpecialRelativeOrAuthority
	statePathOrAuthority
	stateRelative
	stateRelativeSlash
	stateSpecialAuthoritySlashes
	stateSpecialAuthorityIgnoreSlashes
	stateAuthority
	stateHost
	statePort
	stateFile
	stateFileSlash
	stateFileHost
	statePathStart
	statePath
	stateOpaquePath
	stateQuery
	stateFragment
)

// parser is the mutable state threaded through one run of the state
// machine. url accumulates the result; base, when non-nil, is
// consulted by every state that says "copy from base URL" in
// spec.md §4.1.
type parser struct {
	input string
	pos   int
	state parserState
	done  bool
	sink  ValidationErrorSink

	base *components
	url  components

	buf            []byte
	atSignSeen     bool
	passwordSeen   bool
	insideBrackets bool
	hasAuthority   bool

	pathSegs *pathStack
}

// parseURL runs the state machine over input, relative to base if
// given, and returns a fully-resolved components value. This is the
// sole entry point the URL type's parsing methods call.
func parseURL(input string, base *components, sink ValidationErrorSink) (*components, error) {
	trimmed := stripC0AndSpace(input, sink)

	p := &parser{
		input:    trimmed,
		base:     base,
		sink:     sink,
		pathSegs: &pathStack{},
	}

	if err := p.run(); err != nil {
		return nil, err
	}

	if !p.url.hasOpaquePath {
		p.url.path = p.pathSegs.serialize()
		p.url.firstPathComponentLen = p.pathSegs.firstComponentLength()
	}
	p.url.hasAuthority = p.hasAuthority
	return &p.url, nil
}

func stripC0AndSpace(s string, sink ValidationErrorSink) string {
	start, end := 0, len(s)
	for start < end && isC0OrSpace(s[start]) {
		start++
	}
	for end > start && isC0OrSpace(s[end-1]) {
		end--
	}
	if start != 0 || end != len(s) {
		sink.report(ValLeadingTrailingC0, s)
	}
	out := make([]byte, 0, end-start)
	stripped := false
	for i := start; i < end; i++ {
		if isASCIITabOrNewline(s[i]) {
			stripped = true
			continue
		}
		out = append(out, s[i])
	}
	if stripped {
		sink.report(ValTabOrNewlineStripped, s)
	}
	return string(out)
}

func lcByte(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + 32
	}
	return c
}

func (p *parser) c() byte {
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

func (p *parser) remaining() string {
	if p.pos >= len(p.input) {
		return ""
	}
	return p.input[p.pos:]
}

func (p *parser) eof() bool { return p.pos >= len(p.input) }

// splitPathString turns a serialized path ("" or "/a/b/c") back into
// its component list, the inverse of pathStack.serialize.
func splitPathString(path string) []string {
	if path == "" {
		return nil
	}
	return split(path[1:], "/")
}

func (p *parser) copyBasePath() {
	for _, seg := range splitPathString(p.base.path) {
		p.pathSegs.push(seg)
	}
}

func appendPercentEncodedByte(s string, b byte, set encodeSet) string {
	out, _ := percentEncodeAppend([]byte(s), []byte{b}, set)
	return string(out)
}

// looksFormEncoded is a light heuristic for Structure.QueryIsKnownFormEncoded:
// a query string built only from unreserved/form bytes and containing at
// least one '=' reads as application/x-www-form-urlencoded.
func looksFormEncoded(raw string) bool {
	if raw == "" || !cntns(raw, "=") {
		return false
	}
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if isASCIIAlphanumeric(c) {
			continue
		}
		switch c {
		case '=', '&', '%', '+', '-', '_', '.', '~':
			continue
		}
		return false
	}
	return true
}

func (p *parser) run() error {
	for !p.done {
		var err error
		switch p.state {
		case stateSchemeStart:
			p.stateSchemeStart()
		case stateScheme:
			err = p.stateScheme()
		case stateNoScheme:
			err = p.stateNoScheme()
		case stateSpecialRelativeOrAuthority:
			p.stateSpecialRelativeOrAuthority()
		case statePathOrAuthority:
			p.statePathOrAuthority()
		case stateRelative:
			p.stateRelative()
		case stateRelativeSlash:
			p.stateRelativeSlash()
		case stateSpecialAuthoritySlashes:
			p.stateSpecialAuthoritySlashes()
		case stateSpecialAuthorityIgnoreSlashes:
			p.stateSpecialAuthorityIgnoreSlashes()
		case stateAuthority:
			err = p.stateAuthority()
		case stateHost:
			err = p.stateHost()
		case statePort:
			err = p.statePort()
		case stateFile:
			err = p.stateFile()
		case stateFileSlash:
			p.stateFileSlash()
		case stateFileHost:
			err = p.stateFileHost()
		case statePathStart:
			p.statePathStart()
		case statePath:
			p.statePath()
		case stateOpaquePath:
			p.stateOpaquePath()
		case stateQuery:
			p.stateQuery()
		case stateFragment:
			p.stateFragment()
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (p *parser) stateSchemeStart() {
	if isASCIIAlpha(p.c()) {
		p.buf = append(p.buf, lcByte(p.c()))
		p.pos++
		p.state = stateScheme
		return
	}
	p.state = stateNoScheme
}

func (p *parser) stateScheme() error {
	for isSchemeChar(p.c()) {
		p.buf = append(p.buf, lcByte(p.c()))
		p.pos++
	}
	if p.c() == ':' {
		scheme := string(p.buf)
		p.buf = p.buf[:0]
		p.url.scheme = scheme
		p.url.schemeKind = schemeKindOf(scheme)
		p.pos++

		switch {
		case p.url.schemeKind == SchemeFile:
			p.state = stateFile
		case p.url.schemeKind.isSpecial():
			if p.base != nil && p.base.schemeKind == p.url.schemeKind {
				p.state = stateSpecialRelativeOrAuthority
			} else {
				p.state = stateSpecialAuthoritySlashes
			}
		case hasPfx(p.remaining(), "/"):
			p.state = statePathOrAuthority
			p.pos++
		default:
			p.state = stateOpaquePath
		}
		return nil
	}

	p.buf = p.buf[:0]
	p.pos = 0
	p.state = stateNoScheme
	return nil
}

func (p *parser) stateNoScheme() error {
	c := p.c()
	if p.base == nil {
		return ErrNoScheme
	}
	if p.base.hasOpaquePath && c != '#' {
		return ErrOpaqueBaseFragOnly
	}
	if p.base.hasOpaquePath {
		p.url.scheme = p.base.scheme
		p.url.schemeKind = p.base.schemeKind
		p.url.hasOpaquePath = true
		p.url.path = p.base.path
		p.url.hasQuery = p.base.hasQuery
		p.url.query = p.base.query
		p.url.hasFragment = true
		p.pos++
		p.state = stateFragment
		return nil
	}
	if p.base.schemeKind != SchemeFile {
		p.state = stateRelative
		return nil
	}
	p.state = stateFile
	return nil
}

func (p *parser) stateSpecialRelativeOrAuthority() {
	if p.c() == '/' && p.pos+1 < len(p.input) && p.input[p.pos+1] == '/' {
		p.state = stateSpecialAuthorityIgnoreSlashes
		p.pos += 2
		return
	}
	p.sink.report(ValSpecialSchemeMissingSlashes, p.remaining())
	p.state = stateRelative
}

func (p *parser) statePathOrAuthority() {
	if p.c() == '/' {
		p.state = stateAuthority
		p.pos++
		return
	}
	p.state = statePath
}

func (p *parser) stateRelative() {
	p.url.scheme = p.base.scheme
	p.url.schemeKind = p.base.schemeKind
	special := p.url.schemeKind.isSpecial()
	c := p.c()

	if c == '/' {
		p.state = stateRelativeSlash
		p.pos++
		return
	}
	if special && c == '\\' {
		p.sink.report(ValBackslashAsDelimiter, p.remaining())
		p.state = stateRelativeSlash
		p.pos++
		return
	}

	p.url.username = p.base.username
	p.url.password = p.base.password
	p.url.hasPassword = p.base.hasPassword
	p.url.host = p.base.host
	p.hasAuthority = p.base.hasAuthority
	p.url.hasPort = p.base.hasPort
	p.url.port = p.base.port
	p.copyBasePath()
	p.url.hasQuery = p.base.hasQuery
	p.url.query = p.base.query
	p.url.queryIsForm = p.base.queryIsForm

	switch {
	case c == '?':
		p.url.hasQuery = true
		p.pos++
		p.state = stateQuery
	case c == '#':
		p.url.hasFragment = true
		p.pos++
		p.state = stateFragment
	case p.eof():
		p.done = true
	default:
		p.url.hasQuery = false
		p.url.query = ""
		p.pathSegs.shorten(p.url.schemeKind == SchemeFile)
		p.state = statePath
	}
}

func (p *parser) stateRelativeSlash() {
	special := p.base != nil && p.base.schemeKind.isSpecial()
	c := p.c()
	if special && (c == '/' || c == '\\') {
		if c == '\\' {
			p.sink.report(ValBackslashAsDelimiter, p.remaining())
		}
		p.state = stateSpecialAuthorityIgnoreSlashes
		p.pos++
		return
	}
	if c == '/' {
		p.state = stateAuthority
		p.pos++
		return
	}
	p.url.username = p.base.username
	p.url.password = p.base.password
	p.url.hasPassword = p.base.hasPassword
	p.url.host = p.base.host
	p.hasAuthority = p.base.hasAuthority
	p.url.hasPort = p.base.hasPort
	p.url.port = p.base.port
	p.state = statePath
}

func (p *parser) stateSpecialAuthoritySlashes() {
	if p.c() == '/' && p.pos+1 < len(p.input) && p.input[p.pos+1] == '/' {
		p.state = stateSpecialAuthorityIgnoreSlashes
		p.pos += 2
		return
	}
	p.sink.report(ValSpecialSchemeMissingSlashes, p.remaining())
	p.state = stateSpecialAuthorityIgnoreSlashes
}

func (p *parser) stateSpecialAuthorityIgnoreSlashes() {
	for p.c() == '/' || p.c() == '\\' {
		if p.c() == '\\' {
			p.sink.report(ValBackslashAsDelimiter, p.remaining())
		}
		p.pos++
	}
	p.state = stateAuthority
}

// stateAuthority scans raw userinfo text up to the next '@' (which
// commits it, split on the first ':', to username/password) or to the
// authority terminator, at which point the unconsumed buffer is
// handed unchanged to host state (spec.md §4.1 authority state).
func (p *parser) stateAuthority() error {
	special := p.url.schemeKind.isSpecial()
	for {
		c := p.c()
		if c == '@' {
			p.sink.report(ValAtSignInAuthority, p.remaining())
			if p.atSignSeen {
				p.buf = append([]byte("%40"), p.buf...)
			}
			p.atSignSeen = true

			for _, b := range p.buf {
				if b == ':' && !p.passwordSeen {
					p.passwordSeen = true
					p.url.hasPassword = true
					continue
				}
				if p.passwordSeen {
					p.url.password = appendPercentEncodedByte(p.url.password, b, encodeSetUserinfo)
				} else {
					p.url.username = appendPercentEncodedByte(p.url.username, b, encodeSetUserinfo)
				}
			}
			p.buf = p.buf[:0]
			p.pos++
			continue
		}
		if c == '/' || c == '?' || c == '#' || (special && c == '\\') || p.eof() {
			if p.atSignSeen && len(p.buf) == 0 {
				return ErrMissingHost
			}
			p.pos -= len(p.buf)
			p.buf = p.buf[:0]
			p.state = stateHost
			return nil
		}
		p.buf = append(p.buf, c)
		p.pos++
	}
}

func (p *parser) stateHost() error {
	special := p.url.schemeKind.isSpecial()
	for {
		c := p.c()
		if c == '[' {
			p.insideBrackets = true
		}
		if c == ']' {
			p.insideBrackets = false
		}
		isPortColon := c == ':' && !p.insideBrackets
		if isPortColon || c == '/' || c == '?' || c == '#' || (special && c == '\\') || p.eof() {
			if special && len(p.buf) == 0 {
				return ErrEmptyHost
			}
			var host ParsedHost
			var err error
			if p.url.schemeKind == SchemeFile {
				host, err = parseFileHost(string(p.buf), p.sink)
			} else {
				host, err = parseHost(string(p.buf), special, p.sink)
			}
			if err != nil {
				return err
			}
			p.url.host = host
			p.hasAuthority = true
			p.buf = p.buf[:0]
			if isPortColon {
				p.pos++
				p.state = statePort
				return nil
			}
			p.state = statePathStart
			return nil
		}
		p.buf = append(p.buf, c)
		p.pos++
	}
}

func (p *parser) statePort() error {
	for isASCIIDigit(p.c()) {
		p.buf = append(p.buf, p.c())
		p.pos++
	}
	c := p.c()
	if c == '/' || c == '?' || c == '#' || (p.url.schemeKind.isSpecial() && c == '\\') || p.eof() {
		if len(p.buf) > 0 {
			n, err := atoi(string(p.buf))
			if err != nil || n > 65535 {
				p.sink.report(ValInvalidPort, string(p.buf))
				return ErrInvalidPort
			}
			if def, ok := p.url.schemeKind.defaultPort(); ok && uint16(n) == def {
				p.url.hasPort = false
			} else {
				p.url.hasPort = true
				p.url.port = uint16(n)
			}
			p.buf = p.buf[:0]
		}
		p.state = statePathStart
		return nil
	}
	p.sink.report(ValInvalidPort, string(p.buf))
	return ErrInvalidPort
}

func (p *parser) stateFile() error {
	p.url.scheme = "file"
	p.url.schemeKind = SchemeFile
	p.url.host = ParsedHost{Kind: HostEmpty}
	p.hasAuthority = true

	c := p.c()
	if c == '/' || c == '\\' {
		if c == '\\' {
			p.sink.report(ValBackslashAsDelimiter, p.remaining())
		}
		p.state = stateFileSlash
		p.pos++
		return nil
	}

	if p.base != nil && p.base.schemeKind == SchemeFile {
		p.url.host = p.base.host
		p.copyBasePath()
		p.url.hasQuery = p.base.hasQuery
		p.url.query = p.base.query

		switch {
		case c == '?':
			p.url.hasQuery = true
			p.pos++
			p.state = stateQuery
		case c == '#':
			p.url.hasFragment = true
			p.pos++
			p.state = stateFragment
		case p.eof():
			p.done = true
		default:
			p.url.hasQuery = false
			p.url.query = ""
			if startsWithWindowsDriveLetter(p.remaining()) {
				p.sink.report(ValWindowsDriveLetterHost, p.remaining())
				p.pathSegs = &pathStack{}
			} else {
				p.pathSegs.shorten(true)
			}
			p.state = statePath
		}
		return nil
	}

	p.sink.report(ValFileSchemeMissingSlash, p.remaining())
	p.state = statePath
	return nil
}

func (p *parser) stateFileSlash() {
	c := p.c()
	if c == '/' || c == '\\' {
		if c == '\\' {
			p.sink.report(ValBackslashAsDelimiter, p.remaining())
		}
		p.state = stateFileHost
		p.pos++
		return
	}
	if p.base != nil && p.base.schemeKind == SchemeFile {
		p.url.host = p.base.host
		basePath := splitPathString(p.base.path)
		if len(basePath) > 0 && isNormalizedWindowsDriveLetter(basePath[0]) &&
			!startsWithWindowsDriveLetter(p.remaining()) {
			p.pathSegs.push(basePath[0])
		}
	}
	p.state = statePath
}

func (p *parser) stateFileHost() error {
	for {
		c := p.c()
		if c == '/' || c == '\\' || c == '?' || c == '#' || p.eof() {
			buf := string(p.buf)
			p.buf = p.buf[:0]

			if isWindowsDriveLetter(buf) {
				p.sink.report(ValWindowsDriveLetterHost, buf)
				p.state = statePath
				return nil
			}
			if buf == "" {
				p.url.host = ParsedHost{Kind: HostEmpty}
				p.hasAuthority = true
				p.state = statePathStart
				return nil
			}
			host, err := parseFileHost(buf, p.sink)
			if err != nil {
				return err
			}
			p.url.host = host
			p.hasAuthority = true
			p.state = statePathStart
			return nil
		}
		p.buf = append(p.buf, c)
		p.pos++
	}
}

func (p *parser) statePathStart() {
	special := p.url.schemeKind.isSpecial()
	if special {
		if p.c() == '\\' {
			p.sink.report(ValBackslashAsDelimiter, p.remaining())
		}
		p.state = statePath
		if p.c() == '/' || p.c() == '\\' {
			p.pos++
		}
		return
	}
	if p.c() == '?' {
		p.url.hasQuery = true
		p.pos++
		p.state = stateQuery
		return
	}
	if p.c() == '#' {
		p.url.hasFragment = true
		p.pos++
		p.state = stateFragment
		return
	}
	if !p.eof() {
		p.state = statePath
		if p.c() == '/' {
			p.pos++
		}
		return
	}
	p.done = true
}

// statePath consumes raw path text, resolving one component at every
// '/' (or, for special schemes, '\') boundary through
// resolvePathComponent/resolveOpaquePathComponent (path.go), which
// implements the dot-segment and Windows drive-letter rules.
func (p *parser) statePath() {
	fileScheme := p.url.schemeKind == SchemeFile
	special := p.url.schemeKind.isSpecial()
	raw := make([]byte, 0, 16)

	for {
		c := p.c()
		isSlash := c == '/' || (special && c == '\\')
		boundary := isSlash || c == '?' || c == '#' || p.eof()

		if special && c == '\\' {
			p.sink.report(ValBackslashAsDelimiter, p.remaining())
		}

		if boundary {
			if fileScheme {
				resolvePathComponent(p.pathSegs, string(raw), true, isSlash)
			} else if special {
				resolvePathComponent(p.pathSegs, string(raw), false, isSlash)
			} else {
				resolveOpaquePathComponent(p.pathSegs, string(raw), isSlash)
			}
			raw = raw[:0]

			if c == '?' {
				p.url.hasQuery = true
				p.pos++
				p.state = stateQuery
				return
			}
			if c == '#' {
				p.url.hasFragment = true
				p.pos++
				p.state = stateFragment
				return
			}
			if p.eof() {
				p.done = true
				return
			}
			p.pos++
			continue
		}

		if isInvalidPercentEncodedAt(p.input, p.pos) {
			p.sink.report(ValInvalidPercentEncoding, p.remaining())
		}
		raw = append(raw, c)
		p.pos++
	}
}

func (p *parser) stateOpaquePath() {
	start := p.pos
	for !p.eof() && p.c() != '?' && p.c() != '#' {
		if isInvalidPercentEncodedAt(p.input, p.pos) {
			p.sink.report(ValInvalidPercentEncoding, p.remaining())
		}
		p.pos++
	}
	p.url.path = percentEncodeString(p.input[start:p.pos], encodeSetC0)
	p.url.hasOpaquePath = true

	if p.c() == '?' {
		p.url.hasQuery = true
		p.pos++
		p.state = stateQuery
		return
	}
	if p.c() == '#' {
		p.url.hasFragment = true
		p.pos++
		p.state = stateFragment
		return
	}
	p.done = true
}

func (p *parser) stateQuery() {
	special := p.url.schemeKind.isSpecial()
	set := encodeSetQuery
	if special {
		set = encodeSetQuerySpecial
	}

	start := p.pos
	for !p.eof() && p.c() != '#' {
		if isInvalidPercentEncodedAt(p.input, p.pos) {
			p.sink.report(ValInvalidPercentEncoding, p.remaining())
		}
		p.pos++
	}
	raw := p.input[start:p.pos]
	p.url.queryIsForm = looksFormEncoded(raw)
	p.url.query = percentEncodeString(raw, set)

	if p.c() == '#' {
		p.url.hasFragment = true
		p.pos++
		p.state = stateFragment
		return
	}
	p.done = true
}

func (p *parser) stateFragment() {
	start := p.pos
	for !p.eof() {
		if isInvalidPercentEncodedAt(p.input, p.pos) {
			p.sink.report(ValInvalidPercentEncoding, p.remaining())
		}
		p.pos++
	}
	p.url.fragment = percentEncodeString(p.input[start:p.pos], encodeSetFragment)
	p.done = true
}
