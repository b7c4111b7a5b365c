// Package canschema holds hand-written flatc-style bindings for the CAN
// stream schema (AutomotiveBus.Stream.Frame.*). Field numbers, vtable slot
// order and default values follow the existing wire schema bit-exact so
// that peers generated by flatc in other languages stay interoperable.
package canschema

// CanFrameType mirrors AutomotiveBus.Stream.Frame.CanFrameType.
type CanFrameType byte

const (
	CanFrameTypeBase CanFrameType = iota
	CanFrameTypeExtended
	CanFrameTypeFdBase
	CanFrameTypeFdExtended
)

// FrameUnion discriminates the union value carried inside a Frame table.
// Only CanFrame exists today; the union shape leaves room for a future
// CanFdFrame variant without breaking the wire format.
type FrameUnion byte

const (
	FrameUnionNONE FrameUnion = iota
	FrameUnionCanFrame
)
