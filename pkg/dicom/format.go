package dicom

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"strings"

	"github.com/clarivue/dicomgray/pkg/dicom/vr"
)

// MetadataKey renders an element's dictionary key in the
// "(gggg,eeee) <description>" form spec.md §4.7 specifies, with gggg/eeee
// as zero-padded lowercase hex.
func MetadataKey(e *DataElement) string {
	return fmt.Sprintf("(%04x,%04x) %s", e.Group, e.Element, e.Desc)
}

// FormatValue renders an element's value field as a human-readable string,
// dispatching on VR per spec.md §4.7.
func FormatValue(e *DataElement) string {
	switch e.VR {
	case vr.AT, vr.OB, vr.OD, vr.OF, vr.OL, vr.OV, vr.OW:
		return "[Binary data]"
	case vr.UN, vr.SQ:
		return "[Sequence of items]"
	case vr.FL:
		if len(e.Bytes) < 4 {
			return ""
		}
		bits := binary.LittleEndian.Uint32(e.Bytes)
		return fmt.Sprintf("%.3f", math.Float32frombits(bits))
	case vr.FD:
		if len(e.Bytes) < 8 {
			return ""
		}
		bits := binary.LittleEndian.Uint64(e.Bytes)
		return fmt.Sprintf("%.3f", math.Float64frombits(bits))
	case vr.SL:
		if len(e.Bytes) < 4 {
			return ""
		}
		return fmt.Sprintf("%d", int32(binary.LittleEndian.Uint32(e.Bytes)))
	case vr.UL:
		if len(e.Bytes) < 4 {
			return ""
		}
		return fmt.Sprintf("%d", binary.LittleEndian.Uint32(e.Bytes))
	case vr.SS:
		if len(e.Bytes) < 2 {
			return ""
		}
		return fmt.Sprintf("%d", int16(binary.LittleEndian.Uint16(e.Bytes)))
	case vr.US:
		if len(e.Bytes) < 2 {
			return ""
		}
		return fmt.Sprintf("%d", binary.LittleEndian.Uint16(e.Bytes))
	case vr.SV:
		if len(e.Bytes) < 8 {
			return ""
		}
		return fmt.Sprintf("%d", int64(binary.LittleEndian.Uint64(e.Bytes)))
	case vr.UV:
		if len(e.Bytes) < 8 {
			return ""
		}
		return fmt.Sprintf("%d", binary.LittleEndian.Uint64(e.Bytes))
	default:
		return nulTerminatedASCII(e.Bytes)
	}
}

// nulTerminatedASCII interprets raw bytes as a NUL-terminated ASCII string,
// the fallback rendering for every string-like VR per spec.md §4.7.
func nulTerminatedASCII(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return strings.TrimRight(string(b), " ")
}
