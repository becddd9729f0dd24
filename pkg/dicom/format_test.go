package dicom

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clarivue/dicomgray/pkg/dicom/vr"
)

func TestMetadataKeyFormat(t *testing.T) {
	e := &DataElement{Group: 0x0028, Element: 0x0010, Desc: "Rows"}
	assert.Equal(t, "(0028,0010) Rows", MetadataKey(e))
}

func TestFormatValueBinaryVRs(t *testing.T) {
	for _, v := range []vr.VR{vr.AT, vr.OB, vr.OD, vr.OF, vr.OL, vr.OV, vr.OW} {
		e := &DataElement{VR: v, Bytes: []byte{1, 2, 3, 4}}
		assert.Equal(t, "[Binary data]", FormatValue(e))
	}
}

func TestFormatValueSequenceVRs(t *testing.T) {
	for _, v := range []vr.VR{vr.UN, vr.SQ} {
		e := &DataElement{VR: v}
		assert.Equal(t, "[Sequence of items]", FormatValue(e))
	}
}

func TestFormatValueFloats(t *testing.T) {
	e := &DataElement{VR: vr.FL, Bytes: u32le(math.Float32bits(1.5))}
	assert.Equal(t, "1.500", FormatValue(e))

	fdBytes := make([]byte, 8)
	binary.LittleEndian.PutUint64(fdBytes, math.Float64bits(-2.25))
	e64 := &DataElement{VR: vr.FD, Bytes: fdBytes}
	assert.Equal(t, "-2.250", FormatValue(e64))
}

func TestFormatValueIntegers(t *testing.T) {
	assert.Equal(t, "-1", FormatValue(&DataElement{VR: vr.SL, Bytes: u32le(uint32(int32(-1)))}))
	assert.Equal(t, "4294967295", FormatValue(&DataElement{VR: vr.UL, Bytes: u32le(0xFFFFFFFF)}))
	assert.Equal(t, "-1", FormatValue(&DataElement{VR: vr.SS, Bytes: u16le(uint16(int16(-1)))}))
	assert.Equal(t, "65535", FormatValue(&DataElement{VR: vr.US, Bytes: u16le(0xFFFF)}))
}

func TestFormatValueStringFallback(t *testing.T) {
	e := &DataElement{VR: vr.LO, Bytes: append([]byte("ACME "), 0, 0)}
	assert.Equal(t, "ACME", FormatValue(e))
}

func TestFormatValueShortBytesReturnsEmpty(t *testing.T) {
	assert.Equal(t, "", FormatValue(&DataElement{VR: vr.US, Bytes: []byte{0x01}}))
}
