package weburl

// components holds one fully-resolved, already-percent-encoded set of
// URL parts, produced by the parser (or by a setter) before either
// writer pass runs. Every byte slice here is exactly what will end up
// in the final serialization for that component — no further encoding
// happens downstream.
type components struct {
	scheme     string // lower-case, without trailing ':'
	schemeKind SchemeKind

	hasAuthority bool // host is present (possibly empty) -> sigil authority
	username     string
	password     string
	hasPassword  bool
	host         ParsedHost

	hasPort bool
	port    uint16

	hasOpaquePath         bool
	path                  string // includes leading '/'-per-component; "" if empty
	firstPathComponentLen int

	hasQuery    bool
	query       string
	queryIsForm bool

	hasFragment bool
	fragment    string
}

// sigilFor decides the sigil per spec.md §3 invariants 3/4: authority
// whenever a host is present (even empty), otherwise path whenever an
// omitted host would make the serialized path ambiguous with an
// authority (path starts with an empty first component, i.e. "//").
func (c *components) sigilFor() Sigil {
	if c.hasAuthority {
		return SigilAuthority
	}
	if !c.hasOpaquePath && len(c.path) >= 2 && c.path[0] == '/' && c.path[1] == '/' {
		return SigilPath
	}
	return SigilNone
}

// writer is the two-implementation protocol from spec.md §4.5/§9: a
// metrics pass measures required capacity and produces the
// Structure header without allocating the serialization, and a
// buffer pass fills a pre-sized allocation using that same Structure.
// Both implementations are driven in the same canonical component
// order by renderComponents.
type writer interface {
	write(c *components, s *Structure, buf *[]byte)
}

// metricsWriter fills in every length/kind field of Structure by
// measuring components; it never touches the byte buffer.
type metricsWriter struct{}

func (metricsWriter) write(c *components, s *Structure, buf *[]byte) {
	s.SchemeKind = c.schemeKind
	s.SchemeLength = uint32(len(c.scheme) + 1)

	s.UsernameLength = uint32(len(c.username))
	if c.hasPassword {
		s.PasswordLength = uint32(len(c.password) + 1)
	}

	if c.hasAuthority {
		s.HostKind = c.host.Kind
		s.HostnameLength = uint32(len(c.host.String()))
	} else {
		s.HostKind = HostNone
	}

	if c.hasPort {
		s.PortLength = uint32(len(fmtUint(uint64(c.port), 10)) + 1)
	}

	s.HasOpaquePath = c.hasOpaquePath
	s.PathLength = uint32(len(c.path))
	s.FirstPathComponentLength = uint32(c.firstPathComponentLen)

	if c.hasQuery {
		s.QueryLength = uint32(len(c.query) + 1)
		s.QueryIsKnownFormEncoded = c.queryIsForm
	}
	if c.hasFragment {
		s.FragmentLength = uint32(len(c.fragment) + 1)
	}

	s.Sigil = c.sigilFor()
}

// bufferWriter materializes the normalized serialization into buf,
// which the caller has already pre-sized from a prior metricsWriter
// pass using the same Structure.
type bufferWriter struct{}

func (bufferWriter) write(c *components, s *Structure, buf *[]byte) {
	*buf = append(*buf, c.scheme...)
	*buf = append(*buf, ':')
	*buf = append(*buf, s.Sigil.bytes()...)

	if c.hasAuthority {
		if s.hasCredentials() {
			*buf = append(*buf, c.username...)
			if c.hasPassword {
				*buf = append(*buf, ':')
				*buf = append(*buf, c.password...)
			}
			*buf = append(*buf, '@')
		}
		*buf = append(*buf, c.host.String()...)
		if c.hasPort {
			*buf = append(*buf, ':')
			*buf = append(*buf, fmtUint(uint64(c.port), 10)...)
		}
	}

	*buf = append(*buf, c.path...)

	if c.hasQuery {
		*buf = append(*buf, '?')
		*buf = append(*buf, c.query...)
	}
	if c.hasFragment {
		*buf = append(*buf, '#')
		*buf = append(*buf, c.fragment...)
	}
}

// renderComponents drives both writer implementations in sequence:
// metricsWriter measures components into a Structure (no allocation
// beyond the header itself), then a single pre-sized buffer is
// allocated and bufferWriter fills it using that Structure. This is
// the two-pass contract of spec.md §4.5/§9.
func renderComponents(c *components) (Structure, []byte) {
	var s Structure
	var writers = [...]writer{metricsWriter{}, bufferWriter{}}

	writers[0].write(c, &s, nil)

	buf := make([]byte, 0, s.totalLength())
	writers[1].write(c, &s, &buf)

	return s, buf
}
