// Package wire implements the SmartGlass protocol's low-level binary
// primitives: big-endian integers (via encoding/binary at each call site),
// the length-prefixed null-terminated SGString, the two UUID wire forms,
// the raw PublicKey record, the Certificate wrapper, and bounded DynArray
// readers for u32 and byte arrays, which reject a count that needs more
// bytes than remain. Arrays of records in the payload catalog (touch
// points, active titles, media metadata) are read element by element after
// their u16 count, with no up-front bound on the count.
package wire
