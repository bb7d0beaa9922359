package weburl

// URL is an immutable-by-convention handle onto a normalized WHATWG
// serialization: a pure-ASCII byte buffer plus the [Structure] header
// describing where each component lives inside it. Every mutation
// method returns a new, independently valid *URL rather than editing
// the receiver's buffer in place; the receiver is left untouched on
// any error.
type URL struct {
	buf        []byte
	structure  Structure
	components components
	sink       ValidationErrorSink
}

// Parse parses input as an absolute URL (spec.md §4.1/§5 "Parse").
// A relative reference with no scheme of its own fails with
// [ErrNoScheme]; use [ParseRef] to resolve against a base.
func Parse(input string) (*URL, error) {
	return ParseRef(input, nil)
}

// ParseRef parses input, resolving it against base when input is a
// relative reference (spec.md §4.1 "basic URL parser", §5 "Resolve").
// base may be nil, in which case input must be an absolute URL.
func ParseRef(input string, base *URL) (*URL, error) {
	return parseWithSink(input, base, nil)
}

func parseWithSink(input string, base *URL, sink ValidationErrorSink) (*URL, error) {
	var baseComponents *components
	if base != nil {
		baseComponents = &base.components
	}

	c, err := parseURL(input, baseComponents, sink)
	if err != nil {
		return nil, err
	}

	s, buf := renderComponents(c)
	return &URL{buf: buf, structure: s, components: *c, sink: sink}, nil
}

// WithValidationErrors parses input as an absolute URL, like Parse,
// and reports non-fatal deviations to sink as parsing proceeds, per
// spec.md §6. It takes no base URL. The returned URL keeps sink and
// passes it to the host parser when WithHostname is called.
func WithValidationErrors(input string, sink ValidationErrorSink) (*URL, error) {
	return parseWithSink(input, nil, sink)
}

// Resolve parses ref as a possibly-relative reference against u,
// equivalent to ParseRef(ref, u) (spec.md §5).
func (u *URL) Resolve(ref string) (*URL, error) {
	return ParseRef(ref, u)
}

// Serialize returns the URL's normalized string form, fragment
// included (spec.md §6).
func (u *URL) Serialize() string {
	return string(u.buf)
}

func (u *URL) String() string { return u.Serialize() }

// SerializeWithoutFragment returns the normalized string form with
// any fragment (and its leading '#') omitted, per spec.md §6.
func (u *URL) SerializeWithoutFragment() string {
	start, _ := u.structure.fragmentRange()
	return string(u.buf[:start])
}

func (u *URL) slice(start, end int) string { return string(u.buf[start:end]) }

// Scheme returns the scheme without its trailing ':'.
func (u *URL) Scheme() string {
	start, end := u.structure.schemeRange()
	return u.slice(start, end-1)
}

func (u *URL) SchemeKind() SchemeKind { return u.structure.SchemeKind }

// Username returns the percent-encoded username, "" if absent.
func (u *URL) Username() string {
	start, end := u.structure.userinfoRange()
	if u.structure.UsernameLength == 0 {
		return ""
	}
	return u.slice(start, start+int(u.structure.UsernameLength))
}

// Password returns the percent-encoded password without its leading
// ':', and reports whether one is present at all.
func (u *URL) Password() (string, bool) {
	if u.structure.PasswordLength == 0 {
		return "", false
	}
	start, _ := u.structure.userinfoRange()
	pstart := start + int(u.structure.UsernameLength) + 1
	pend := pstart + int(u.structure.PasswordLength) - 1
	return u.slice(pstart, pend), true
}

// Host returns the parsed host value (spec.md §3 GLOSSARY); its Kind
// is [HostNone] when the URL has no authority at all.
func (u *URL) Host() ParsedHost { return u.components.host }

// Hostname returns the host exactly as stored in the serialization.
func (u *URL) Hostname() string {
	start, end := u.structure.hostnameRange()
	return u.slice(start, end)
}

// Port returns the URL's explicit port and whether one is stored; a
// special scheme's default port is never stored (spec.md §4.1 "port
// state").
func (u *URL) Port() (uint16, bool) {
	if !u.structure.hasPort() {
		return 0, false
	}
	return u.components.port, true
}

// HasOpaquePath reports whether this URL cannot-be-a-base, i.e. its
// path is an opaque string rather than a "/"-delimited component list
// (spec.md §3 GLOSSARY).
func (u *URL) HasOpaquePath() bool { return u.structure.HasOpaquePath }

// Path returns the path exactly as stored in the serialization,
// including its leading '/' for non-opaque paths.
func (u *URL) Path() string {
	start, end := u.structure.pathRange()
	return u.slice(start, end)
}

// PathComponents returns the percent-decoded path split into its
// "/"-delimited segments. It returns nil for an opaque path; callers
// that need the opaque string should use Path instead.
func (u *URL) PathComponents() []string {
	if u.structure.HasOpaquePath {
		return nil
	}
	segs := splitPathString(u.Path())
	out := make([]string, len(segs))
	for i, s := range segs {
		out[i] = percentDecodeString(s)
	}
	return out
}

// Query returns the percent-encoded query without its leading '?',
// and reports whether one is present.
func (u *URL) Query() (string, bool) {
	if u.structure.QueryLength == 0 {
		return "", false
	}
	start, end := u.structure.queryRange()
	return u.slice(start+1, end), true
}

// QueryIsFormEncoded reports whether the query parsed as plausibly
// application/x-www-form-urlencoded content (spec.md §3 Structure
// field QueryIsKnownFormEncoded).
func (u *URL) QueryIsFormEncoded() bool { return u.structure.QueryIsKnownFormEncoded }

// Fragment returns the percent-encoded fragment without its leading
// '#', and reports whether one is present.
func (u *URL) Fragment() (string, bool) {
	if u.structure.FragmentLength == 0 {
		return "", false
	}
	start, end := u.structure.fragmentRange()
	return u.slice(start+1, end), true
}

func (u *URL) IsZero() bool { return u == nil }
