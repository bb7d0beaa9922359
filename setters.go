package weburl

// Setters implement spec.md §4.6/§7: each either returns a new *URL
// built from a copy of the receiver's components with one field
// replaced, or a non-nil [SetterError] with the receiver's buffer and
// structure left completely untouched.

func (u *URL) rebuild(c components) (*URL, SetterError) {
	s, buf := renderComponents(&c)
	return &URL{buf: buf, structure: s, components: c, sink: u.sink}, ""
}

// WithScheme replaces the scheme. A change between a special and a
// non-special scheme, and any change to or from file, is rejected
// with ErrSpecialChangeNotAllowed. A stored port equal to the new
// scheme's default port is dropped.
func (u *URL) WithScheme(scheme string) (*URL, SetterError) {
	if scheme == "" || !isASCIIAlpha(scheme[0]) {
		return u, ErrInvalidSchemeCharacters
	}
	for i := 0; i < len(scheme); i++ {
		if !isSchemeChar(scheme[i]) {
			return u, ErrInvalidSchemeCharacters
		}
	}
	lower := lc(scheme)
	newKind := schemeKindOf(lower)

	if newKind.isSpecial() != u.components.schemeKind.isSpecial() {
		return u, ErrSpecialChangeNotAllowed
	}
	if newKind != u.components.schemeKind && (newKind == SchemeFile || u.components.schemeKind == SchemeFile) {
		return u, ErrSpecialChangeNotAllowed
	}
	if u.components.hasOpaquePath && newKind.isSpecial() {
		return u, ErrCannotSetScheme
	}

	c := u.components
	c.scheme = lower
	c.schemeKind = newKind
	if def, has := newKind.defaultPort(); has && c.hasPort && c.port == def {
		c.hasPort = false
	}
	return u.rebuild(c)
}

// WithUsername replaces the username. Fails if the URL has no host
// at all, or is a file URL (spec.md §4.6).
func (u *URL) WithUsername(username string) (*URL, SetterError) {
	if !u.components.hasAuthority || u.components.host.IsZero() || u.components.schemeKind == SchemeFile {
		return u, ErrCannotHaveCredsOrPort
	}
	c := u.components
	c.username = percentEncodeString(username, encodeSetUserinfo)
	return u.rebuild(c)
}

// WithPassword replaces the password; pass ok=false to remove it
// entirely rather than setting it to an empty string.
func (u *URL) WithPassword(password string, ok bool) (*URL, SetterError) {
	if !u.components.hasAuthority || u.components.host.IsZero() || u.components.schemeKind == SchemeFile {
		return u, ErrCannotHaveCredsOrPort
	}
	c := u.components
	c.hasPassword = ok
	if ok {
		c.password = percentEncodeString(password, encodeSetUserinfo)
	} else {
		c.password = ""
	}
	return u.rebuild(c)
}

// WithHostname parses and replaces the host, per spec.md §4.2/§4.6.
// An empty hostname is rejected outright for special schemes other
// than file, matching the "cannot set empty host on special scheme"
// setter failure; a file URL accepts it as an empty host.
func (u *URL) WithHostname(hostname string) (*URL, SetterError) {
	if u.components.hasOpaquePath {
		return u, ErrCannotSetPathOnOpaque
	}
	special := u.components.schemeKind.isSpecial()
	if hostname == "" && special && u.components.schemeKind != SchemeFile {
		return u, ErrCannotSetEmptyHostSpecial
	}

	var host ParsedHost
	var err error
	if u.components.schemeKind == SchemeFile {
		host, err = parseFileHost(hostname, u.sink)
	} else {
		host, err = parseHost(hostname, special, u.sink)
	}
	if err != nil {
		return u, ErrInvalidHostname
	}

	c := u.components
	c.host = host
	c.hasAuthority = true
	return u.rebuild(c)
}

// WithPort replaces the port. ok=false clears it (reverting to the
// scheme's default, if any); the stored port is omitted outright when
// it equals the scheme's default (spec.md §4.1 "port state").
func (u *URL) WithPort(port uint16, ok bool) (*URL, SetterError) {
	if !u.components.hasAuthority || u.components.host.IsZero() ||
		u.components.schemeKind == SchemeFile {
		return u, ErrCannotHaveCredsOrPort
	}
	c := u.components
	if !ok {
		c.hasPort = false
		return u.rebuild(c)
	}
	if def, has := c.schemeKind.defaultPort(); has && port == def {
		c.hasPort = false
	} else {
		c.hasPort = true
		c.port = port
	}
	return u.rebuild(c)
}

// WithPath replaces the path. It is rejected outright for an opaque-
// path URL, matching spec.md §4.6; callers that need to set opaque
// path text should build a new URL via Parse instead.
func (u *URL) WithPath(path string) (*URL, SetterError) {
	if u.components.hasOpaquePath {
		return u, ErrCannotSetPathOnOpaque
	}
	fileScheme := u.components.schemeKind == SchemeFile
	special := u.components.schemeKind.isSpecial()

	stack := &pathStack{}
	raw := path
	if hasPfx(raw, "/") {
		raw = raw[1:]
	}
	for _, seg := range split(raw, "/") {
		if fileScheme {
			resolvePathComponent(stack, seg, true, true)
		} else if special {
			resolvePathComponent(stack, seg, false, true)
		} else {
			resolveOpaquePathComponent(stack, seg, true)
		}
	}

	c := u.components
	c.path = stack.serialize()
	c.firstPathComponentLen = stack.firstComponentLength()
	return u.rebuild(c)
}

// WithQuery replaces the query. ok=false removes it entirely.
func (u *URL) WithQuery(query string, ok bool) (*URL, SetterError) {
	c := u.components
	c.hasQuery = ok
	if ok {
		set := encodeSetQuery
		if c.schemeKind.isSpecial() {
			set = encodeSetQuerySpecial
		}
		c.queryIsForm = looksFormEncoded(query)
		c.query = percentEncodeString(query, set)
	} else {
		c.query = ""
		c.queryIsForm = false
	}
	return u.rebuild(c)
}

// WithFragment replaces the fragment. ok=false removes it entirely.
func (u *URL) WithFragment(fragment string, ok bool) (*URL, SetterError) {
	c := u.components
	c.hasFragment = ok
	if ok {
		c.fragment = percentEncodeString(fragment, encodeSetFragment)
	} else {
		c.fragment = ""
	}
	return u.rebuild(c)
}
