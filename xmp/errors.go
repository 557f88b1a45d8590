package xmp

import (
	"errors"
	"strings"
)

// ErrorCode represents a programmatic error code for error handling.
type ErrorCode string

const (
	// ErrCodeStructuralMisuse indicates a write that violates the element
	// writer's state machine.
	ErrCodeStructuralMisuse ErrorCode = "STRUCTURAL_MISUSE"
	// ErrCodeInvalidName indicates an illegal XML element name.
	ErrCodeInvalidName ErrorCode = "INVALID_NAME"
	// ErrCodeFinished indicates use of a writer after Finish.
	ErrCodeFinished ErrorCode = "FINISHED"
	// ErrCodeNoPacket indicates that no xpacket region was found.
	ErrCodeNoPacket ErrorCode = "NO_PACKET"
	// ErrCodePacketTooLarge indicates that the packet does not fit the
	// existing xpacket region.
	ErrCodePacketTooLarge ErrorCode = "PACKET_TOO_LARGE"
)

var (
	// ErrStructuralMisuse indicates a write that violates the element
	// writer's state machine: writing to a closed element, writing to a
	// parent while a child cursor is outstanding, mixing content kinds
	// within one element, or a language alternative with more than one
	// default entry.
	ErrStructuralMisuse = errors.New("xmp: structural misuse of element writer")
	// ErrInvalidName indicates that a property or field name is not a
	// legal XML element name.
	ErrInvalidName = errors.New("xmp: invalid XML name")
	// ErrFinished indicates that the packet writer was already finished.
	ErrFinished = errors.New("xmp: writer already finished")
	// ErrNoPacket indicates that FinishInto found no xpacket region.
	ErrNoPacket = errors.New("xmp: no xpacket region in buffer")
	// ErrPacketTooLarge indicates that the packet exceeds the xpacket
	// region it should replace.
	ErrPacketTooLarge = errors.New("xmp: packet exceeds existing region")
)

// Code returns the error code for an error. Returns the empty string for
// nil errors and ErrCodeStructuralMisuse for unrecognized ones: every
// failure in this package is a usage error by construction.
func Code(err error) ErrorCode {
	if err == nil {
		return ""
	}
	switch {
	case errors.Is(err, ErrInvalidName):
		return ErrCodeInvalidName
	case errors.Is(err, ErrFinished):
		return ErrCodeFinished
	case errors.Is(err, ErrNoPacket):
		return ErrCodeNoPacket
	case errors.Is(err, ErrPacketTooLarge):
		return ErrCodePacketTooLarge
	}
	return ErrCodeStructuralMisuse
}

// WriteError provides structured context for a rejected write.
type WriteError struct {
	Op      string // Offending operation (e.g. "Scalar", "BeginArray")
	Element string // Prefixed element name being written (empty if unknown)
	Detail  string // Human-readable description of the violation
	Err     error  // Underlying sentinel error
}

func (e *WriteError) Error() string {
	var msg strings.Builder
	msg.WriteString("xmp: ")
	msg.WriteString(e.Op)
	if e.Element != "" {
		msg.WriteString(" on <")
		msg.WriteString(e.Element)
		msg.WriteString(">")
	}
	msg.WriteString(": ")
	if e.Detail != "" {
		msg.WriteString(e.Detail)
	} else {
		msg.WriteString(e.Err.Error())
	}
	return msg.String()
}

func (e *WriteError) Unwrap() error { return e.Err }

// misuse builds a structural misuse error for the given operation.
func misuse(op, element, detail string) error {
	return &WriteError{Op: op, Element: element, Detail: detail, Err: ErrStructuralMisuse}
}

// invalidName builds an invalid-name error for the given operation.
func invalidName(op, name string) error {
	return &WriteError{Op: op, Element: name, Detail: "not a valid XML name", Err: ErrInvalidName}
}
