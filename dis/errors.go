package dis

import "fmt"

/*
Error taxonomy for the DIS byte codec, following go-iec104's style of
concrete error structs (errSingleCmdTerm, errDoubleCmdTerm in errors.go)
rather than sentinel values, so callers can type-switch on the kind.
*/

// NotEnoughInputError means the byte cursor ran out before a field
// could be read.
type NotEnoughInputError struct {
	Need int
	Have int
}

func (e NotEnoughInputError) Error() string {
	return fmt.Sprintf("not enough input: need %d bytes, have %d", e.Need, e.Have)
}

// InsufficientHeaderError means a datagram was shorter than a full
// 12-byte PDU header.
type InsufficientHeaderError struct {
	Have int
}

func (e InsufficientHeaderError) Error() string {
	return fmt.Sprintf("insufficient header: have %d bytes, need %d", e.Have, PduHeaderLenBytes)
}

// InsufficientBodyError means a header declared more bytes than remain
// in the datagram.
type InsufficientBodyError struct {
	Expected int
	Have     int
}

func (e InsufficientBodyError) Error() string {
	return fmt.Sprintf("insufficient body: expected %d bytes, have %d", e.Expected, e.Have)
}

// UnsupportedVersionError means protocol_version was neither 6 nor 7.
type UnsupportedVersionError struct {
	Version uint8
}

func (e UnsupportedVersionError) Error() string {
	return fmt.Sprintf("unsupported protocol version: %d", e.Version)
}

// MalformedFieldError means a field-level constraint from the standard
// was violated (e.g. a variable datum length outside its legal range).
type MalformedFieldError struct {
	Field  string
	Reason string
}

func (e MalformedFieldError) Error() string {
	return fmt.Sprintf("malformed field %q: %s", e.Field, e.Reason)
}

// IsNotEnoughInput reports whether err is a NotEnoughInputError.
func IsNotEnoughInput(err error) bool {
	_, ok := err.(NotEnoughInputError)
	return ok
}

// IsInsufficientHeader reports whether err is an InsufficientHeaderError.
func IsInsufficientHeader(err error) bool {
	_, ok := err.(InsufficientHeaderError)
	return ok
}

// IsInsufficientBody reports whether err is an InsufficientBodyError.
func IsInsufficientBody(err error) bool {
	_, ok := err.(InsufficientBodyError)
	return ok
}
