// Package packet implements the SmartGlass framing codec: the packet kind
// and message kind registries, the two header layouts the wire format
// carries, and the Encode/Decode pair that ties the wire primitives,
// crypto engine, session state, and payload catalog together into whole
// datagrams.
package packet
