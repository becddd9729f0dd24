// Package vr defines DICOM Value Representations and their wire encoding
// rules.
package vr

// VR is a DICOM Value Representation: a two-letter code denoting a data
// element's datatype and encoding. The numeric value of a VR constant is
// its two ASCII bytes packed big-endian, matching the way the explicit-VR
// element header encodes it on the wire (group, element, then two VR
// bytes read as a big-endian uint16).
type VR uint16

// Standard DICOM Value Representations (DICOM PS3.5 Section 6.2).
const (
	AE VR = 0x4145
	AS VR = 0x4153
	AT VR = 0x4154
	CS VR = 0x4353
	DA VR = 0x4441
	DS VR = 0x4453
	DT VR = 0x4454
	FD VR = 0x4644
	FL VR = 0x464c
	IS VR = 0x4953
	LO VR = 0x4c4f
	LT VR = 0x4c54
	OB VR = 0x4f42
	OD VR = 0x4f44
	OF VR = 0x4f46
	OL VR = 0x4f4c
	OV VR = 0x4f56
	OW VR = 0x4f57
	PN VR = 0x504e
	SH VR = 0x5348
	SL VR = 0x534c
	SQ VR = 0x5351
	SS VR = 0x5353
	ST VR = 0x5354
	SV VR = 0x5356
	TM VR = 0x544d
	UC VR = 0x5543
	UI VR = 0x5549
	UL VR = 0x554c
	UN VR = 0x554e
	UR VR = 0x5552
	US VR = 0x5553
	UT VR = 0x5554
	UV VR = 0x5556

	// Unset is the zero VR: no VR known yet. The element parser replaces it
	// with UN when neither the wire nor the dictionary supplies one.
	Unset VR = 0
)

// String renders the VR as its two-letter code.
func (v VR) String() string {
	if v == Unset {
		return "??"
	}
	return string([]byte{byte(v >> 8), byte(v)})
}

// FromBytes interprets two ASCII bytes (as read off the wire) as a VR.
func FromBytes(b [2]byte) VR {
	return VR(uint16(b[0])<<8 | uint16(b[1]))
}

// HasLongLengthForm reports whether the explicit-VR encoding of this VR
// uses the long form: 2 reserved bytes followed by a 4-byte length, rather
// than a plain 2-byte length.
func (v VR) HasLongLengthForm() bool {
	switch v {
	case OB, OD, OF, OL, OV, OW, SQ, SV, UC, UR, UT, UN, UV:
		return true
	default:
		return false
	}
}

// IsString reports whether this VR's value field is textual.
func (v VR) IsString() bool {
	switch v {
	case AE, AS, CS, DA, DS, DT, IS, LO, LT, PN, SH, ST, TM, UC, UI, UR, UT:
		return true
	default:
		return false
	}
}

// IsBinary reports whether this VR's value field is raw binary.
func (v VR) IsBinary() bool {
	switch v {
	case AT, FL, FD, OB, OD, OF, OL, OV, OW, SL, SS, SV, UL, UN, US, UV:
		return true
	default:
		return false
	}
}

// IsSequence reports whether this is the sequence VR.
func (v VR) IsSequence() bool {
	return v == SQ
}

// FixedSize returns the fixed byte size of a single value for VRs with a
// constant-width encoding, or 0 for variable-length VRs.
func (v VR) FixedSize() int {
	switch v {
	case AT, FL, SL, UL:
		return 4
	case FD, SV, UV:
		return 8
	case SS, US:
		return 2
	default:
		return 0
	}
}
