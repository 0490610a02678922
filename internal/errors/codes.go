package errors

// Error codes for the smir toolkit.
// These codes identify fault classes consistently across packages and in
// serialized diagnostics.
//
// Error code ranges:
// E0100-E0199: Allocation data decoding errors
// E0200-E0299: Place projection errors
// E0300-E0399: Host context errors
//
// Contract violations (nested serialization sessions, registry access
// outside a session, unfinished structural descent) are deliberately not
// represented here: they indicate bugs in the core and fail as panics
// instead of propagating as values.

const (
	// E0101: Decoding requested zero bytes or more bytes than the decoder
	// can represent.
	ErrorDecodeLength = "E0101"

	// E0102: Decoding reached past the end of the allocation's bytes.
	ErrorDecodeOutOfBounds = "E0102"

	// E0103: The decoded range overlaps uninitialized allocation bytes.
	ErrorDecodeUninit = "E0103"

	// E0201: A projection step is inapplicable to the type it was folded
	// onto (e.g. indexing a non-array).
	ErrorInvalidProjection = "E0201"

	// E0202: A place references a local outside the body's declarations.
	ErrorUnknownLocal = "E0202"

	// E0301: A fixture file could not be parsed or fails validation.
	ErrorBadFixture = "E0301"

	// E0302: A queried item has no entry in the host context.
	ErrorUnknownItem = "E0302"
)

// GetErrorDescription returns a human-readable description of the error code
func GetErrorDescription(code string) string {
	switch code {
	case ErrorDecodeLength:
		return "Requested decode length is zero or exceeds the decoder's width"
	case ErrorDecodeOutOfBounds:
		return "Decode range extends past the end of the allocation"
	case ErrorDecodeUninit:
		return "Decode range covers uninitialized bytes"
	case ErrorInvalidProjection:
		return "Projection step is inapplicable to the folded type"
	case ErrorUnknownLocal:
		return "Place references an undeclared local"
	case ErrorBadFixture:
		return "Fixture file is malformed or inconsistent"
	case ErrorUnknownItem:
		return "Item is not known to the host context"
	default:
		return "Unknown error code"
	}
}

// GetErrorCategory returns the category of the error based on its code
func GetErrorCategory(code string) string {
	switch {
	case code >= "E0100" && code < "E0200":
		return "Decoding"
	case code >= "E0200" && code < "E0300":
		return "Projection"
	case code >= "E0300" && code < "E0400":
		return "Host Context"
	default:
		return "Unknown"
	}
}
