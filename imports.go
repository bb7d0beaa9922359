package weburl

import (
	"strconv"
	"strings"

	"golang.org/x/net/idna"
)

// Function-valued aliases for the handful of stdlib calls used
// throughout the package. Keeps call sites terse and import lists
// short.
var (
	fmtUint func(uint64, int) string                = strconv.FormatUint
	atoi    func(string) (int, error)                = strconv.Atoi
	puint   func(string, int, int) (uint64, error)   = strconv.ParseUint

	cntns   func(string, string) bool     = strings.Contains
	hasPfx  func(string, string) bool     = strings.HasPrefix
	split   func(string, string) []string = strings.Split
	lc      func(string) string           = strings.ToLower
	eqf     func(string, string) bool     = strings.EqualFold
	joinStr func([]string, string) string = strings.Join
)

func newStrBuilder() strings.Builder { return strings.Builder{} }

// idnaProfile maps and validates special-scheme domain labels before
// they are ASCII-ized. Failures surfaced through this profile are
// always hard failures (see SPEC_FULL.md DOMAIN STACK): IDNA is not
// wired as a validation-error source, matching spec.md §9 Open
// Question (b).
var idnaProfile = idna.New(
	idna.MapForLookup(),
	idna.Transitional(false),
	idna.VerifyDNSLength(false),
	idna.BidiRule(),
)

func idnaToASCII(s string) (string, error) {
	return idnaProfile.ToASCII(s)
}
