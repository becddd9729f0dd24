// Package dicom implements the DICOM stream decoder: a data-element
// parser for explicit- and implicit-VR encodings (with a built-in tag
// dictionary), and a dataset scanner that turns a file into metadata
// key/value pairs plus raw pixel-data packets for pkg/dicom/pixel.
package dicom

import (
	"github.com/clarivue/dicomgray/pkg/dicom/tag"
	"github.com/clarivue/dicomgray/pkg/dicom/transfer"
	"github.com/clarivue/dicomgray/pkg/dicom/vr"
)

// Tag re-exports tag.Tag so callers need only import package dicom for the
// common case.
type Tag = tag.Tag

// UndefinedVL is the sentinel Value Length marking an implicit-length
// sequence or item that terminates on a delimiter tag rather than a byte
// count.
const UndefinedVL int64 = 0xFFFFFFFF

// DataElement is the central parsed unit: one DICOM tag plus its value,
// which is either a raw byte buffer or - for a sequence element - an
// ordered list of child elements.
type DataElement struct {
	Group, Element uint16
	VR             vr.VR
	VL             int64

	// Bytes holds the raw value field of an element with a defined length,
	// including an SQ element with an explicit length. Nil when the value
	// was skipped or read as Items.
	Bytes []byte

	// Items holds the ordered child elements read from an undefined-length
	// value (VL == UndefinedVL). Nil otherwise; an explicit-length SQ
	// element is not walked and keeps its value in Bytes.
	Items []*DataElement

	// Described reports whether the tag dictionary had an entry for this
	// element; Desc is that entry's human-readable name, or "" if not
	// described.
	Described bool
	Desc      string
}

// Tag returns this element's (Group, Element) pair.
func (e *DataElement) Tag() Tag {
	return Tag{Group: e.Group, Element: e.Element}
}

// IsSequence reports whether this element's value is a list of child
// elements rather than raw bytes.
func (e *DataElement) IsSequence() bool {
	return e.VL == UndefinedVL || e.VR == vr.SQ
}

// Photometric is the image's intended display interpretation. Only
// Monochrome1 and Monochrome2 are supported for pixel decoding; the
// others are recognized so metadata/state reporting is accurate, but a
// scan that reaches pixel data under one of them fails.
type Photometric int

const (
	PhotometricUnset Photometric = iota
	PhotometricMonochrome1
	PhotometricMonochrome2
	PhotometricPalette
	PhotometricRGB
)

// photometricFromString maps a trimmed Photometric Interpretation (CS)
// value to its enum.
func photometricFromString(s string) Photometric {
	switch s {
	case "MONOCHROME1":
		return PhotometricMonochrome1
	case "MONOCHROME2":
		return PhotometricMonochrome2
	case "PALETTE COLOR":
		return PhotometricPalette
	case "RGB":
		return PhotometricRGB
	default:
		return PhotometricUnset
	}
}

// noWindowLevel is the sentinel value for DecoderState.Window and
// DecoderState.Level meaning "not yet set by file or caller".
const noWindowLevel = -1

// DecoderState accumulates the attributes the dataset scanner and pixel
// decoder need, built incrementally while scanning a single file. It
// replaces the source's scattered globals (window/level overrides,
// in-sequence flag) with one value threaded explicitly through every
// parsing routine - see spec.md §9.
type DecoderState struct {
	Width, Height                  uint16
	BitsAllocated, BitsStored      uint16
	NumberOfFrames                 uint64
	FrameDelayMs                   float64
	FrameIndex                     uint64
	Photometric                    Photometric
	PixelRepresentation            int // 0 = unsigned, 1 = signed
	PixelPadding                   int32
	HasPixelPadding                bool
	RescaleSlope, RescaleIntercept int

	// Window/Level: -1 means "not yet set". A caller-supplied Options
	// value latches these before the scan starts; the scanner then only
	// overwrites them from file metadata if they are still unset.
	Window, Level int

	TransferSyntax transfer.Syntax

	// InHeader is true while parsing the File Meta Information group,
	// which is always explicit-VR little-endian regardless of the
	// negotiated TransferSyntax.
	InHeader bool

	// InSequence is true while reading the value field of an SQ element:
	// item headers inside a sequence always use implicit-style VL
	// encoding, even when the outer transfer syntax is explicit-VR.
	InSequence bool
}

// NewDecoderState returns a DecoderState with the defaults spec.md §3
// specifies, plus any caller-supplied window/level overrides already
// latched.
func NewDecoderState(opts Options) *DecoderState {
	s := &DecoderState{
		NumberOfFrames:      1,
		FrameDelayMs:        100,
		FrameIndex:          1,
		PixelRepresentation: 0,
		PixelPadding:        0,
		RescaleSlope:        1,
		RescaleIntercept:    0,
		Window:              noWindowLevel,
		Level:               noWindowLevel,
		InHeader:            true,
	}
	if opts.Window != noWindowLevel {
		s.Window = opts.Window
	}
	if opts.Level != noWindowLevel {
		s.Level = opts.Level
	}
	return s
}

// BitMask returns the mask that clears any bits above BitsStored, used by
// the pixel decoder to strip overlay/unused high bits from a sample.
func (s *DecoderState) BitMask() int64 {
	return int64(1)<<s.BitsStored - 1
}

// Frame is one decoded output image: Width x Height GRAY8 bytes plus its
// presentation timestamp and duration on the 1/1000 time base.
type Frame struct {
	Width, Height int
	Pixels        []byte // len == Width*Height, one GRAY8 sample per pixel
	PTS           int64  // (frame index - 1) * FrameDelayMs
	Duration      int64  // FrameDelayMs
}
