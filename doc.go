/*
Package weburl implements the hard core of a WHATWG-conformant URL
library: a byte-level state-machine parser, the host/IPv4/IPv6
sub-parsers, percent-encoding, path lexical simplification, and a
normalized-serialization-plus-header storage model with component
setters.

A [URL] owns an immutable, pure-ASCII byte buffer holding its
normalized serialization, plus a compact [Structure] header of
component offsets. Every mutation goes through a typed setter that
either returns a new URL with its own buffer and header or fails; in
both cases the receiver is left unchanged, so there is no
partially-mutated state.

Parsing is two-pass: a [*parser] walks the input once to build a set
of already-validated, already-percent-encoded component values, a
metrics writer measures the exact byte capacity those components
need, and a buffer writer fills a single pre-sized allocation. See
writer.go for the two writer implementations.
*/
package weburl
