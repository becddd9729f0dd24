package dicom

import "errors"

// Sentinel errors returned by the header reader, element parser, and
// dataset scanner. Callers should use errors.Is against these rather than
// string-matching, since every returned error is wrapped with context via
// fmt.Errorf("...: %w", ...).
var (
	// ErrInvalidData covers every fatal structural problem: truncation,
	// bad magic, an unsupported transfer syntax or photometric
	// interpretation, an unsupported bits_allocated, a negative value
	// length, or a sequence that overflows the recursion limits.
	ErrInvalidData = errors.New("dicom: invalid data")

	// ErrUnsupportedTransferSyntax is wrapped into ErrInvalidData when the
	// File Meta group names a transfer syntax other than implicit-VR or
	// explicit-VR little-endian.
	ErrUnsupportedTransferSyntax = errors.New("dicom: unsupported transfer syntax")

	// ErrSequenceOverflow is wrapped into ErrInvalidData when a sequence
	// or an implicit-length item exceeds its recursion limit.
	ErrSequenceOverflow = errors.New("dicom: sequence overflow")

	// ErrShortPixelPacket is wrapped into ErrInvalidData when a pixel data
	// element is smaller than width * height * bits_allocated/8.
	ErrShortPixelPacket = errors.New("dicom: short pixel packet")

	// ErrBadMagic is wrapped into ErrInvalidData when the 4 bytes after
	// the preamble are not "DICM".
	ErrBadMagic = errors.New("dicom: missing DICM magic")
)
