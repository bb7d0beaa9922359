package weburl

import "errors"

var mkerr func(string) error = errors.New

// Hard failures. These are the conditions spec.md §4.1/§4.2/§4.3 name
// as aborting parse/resolve outright, as opposed to validation errors
// reported through a [ValidationErrorSink] (see validation.go).
var (
	ErrNoScheme           = mkerr("weburl: relative reference has no base to resolve against")
	ErrInvalidHost        = mkerr("weburl: invalid host")
	ErrEmptyHost          = mkerr("weburl: special-scheme URL may not have an empty host")
	ErrMissingHost        = mkerr("weburl: missing host before port or path terminator")
	ErrInvalidPort        = mkerr("weburl: invalid or out-of-range port")
	ErrInvalidIPv4        = mkerr("weburl: invalid IPv4 address")
	ErrInvalidIPv6        = mkerr("weburl: invalid IPv6 address")
	ErrFileWithCreds      = mkerr("weburl: file URL may not carry credentials or a port")
	ErrOpaqueBaseFragOnly = mkerr("weburl: base URL with an opaque path accepts only a new fragment")
)

// SetterError is the closed taxonomy of reasons a component setter
// can reject a new value (spec.md §7). A setter either returns a nil
// SetterError and a mutated URL, or a non-nil SetterError and the
// receiver left byte-for-byte unchanged.
type SetterError string

const (
	ErrCannotSetScheme           SetterError = "cannot-set-scheme"
	ErrInvalidSchemeCharacters   SetterError = "invalid-scheme-characters"
	ErrSpecialChangeNotAllowed   SetterError = "special-change-not-allowed"
	ErrCannotHaveCredsOrPort     SetterError = "cannot-have-credentials-or-port"
	ErrPortOutOfRange            SetterError = "port-out-of-range"
	ErrInvalidHostname           SetterError = "invalid-hostname"
	ErrCannotSetPathOnOpaque     SetterError = "cannot-set-path-on-opaque"
	ErrCannotSetEmptyHostSpecial SetterError = "cannot-set-empty-host-on-special"
)

func (e SetterError) Error() string { return "weburl: " + string(e) }
