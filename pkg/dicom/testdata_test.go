package dicom

import (
	"encoding/binary"

	"github.com/clarivue/dicomgray/pkg/dicom/vr"
)

func u16le(v uint16) []byte {
	b := make([]byte, 2)
	binary.LittleEndian.PutUint16(b, v)
	return b
}

func u32le(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}

// explicitElement encodes one explicit-VR little-endian element.
func explicitElement(group, element uint16, v vr.VR, value []byte) []byte {
	buf := append(u16le(group), u16le(element)...)
	buf = append(buf, byte(v>>8), byte(v))
	if v.HasLongLengthForm() {
		buf = append(buf, 0, 0)
		buf = append(buf, u32le(uint32(len(value)))...)
	} else {
		buf = append(buf, u16le(uint16(len(value)))...)
	}
	return append(buf, value...)
}

// implicitElement encodes one implicit-VR little-endian element (VR is
// resolved from the dictionary by the reader, not carried on the wire).
func implicitElement(group, element uint16, value []byte) []byte {
	buf := append(u16le(group), u16le(element)...)
	buf = append(buf, u32le(uint32(len(value)))...)
	return append(buf, value...)
}

// preambleAndMagic returns the 128-byte preamble plus the "DICM" magic.
func preambleAndMagic() []byte {
	return append(make([]byte, 128), []byte(magic)...)
}

// minimalMetaGroup returns a File Meta Information group declaring the
// given transfer syntax UID, with a correct Group Length element.
func minimalMetaGroup(transferSyntaxUID string) []byte {
	tsElem := explicitElement(0x0002, 0x0010, vr.UI, padEven([]byte(transferSyntaxUID)))
	groupLen := explicitElement(0x0002, 0x0000, vr.UL, u32le(uint32(len(tsElem))))
	return append(groupLen, tsElem...)
}

func padEven(b []byte) []byte {
	if len(b)%2 == 0 {
		return b
	}
	return append(b, ' ')
}
