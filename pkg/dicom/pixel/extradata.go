// Package pixel implements the DICOM pixel pipeline: reinterpreting raw
// frame bytes under a bit depth and signedness, pixel-padding detection,
// rescale slope/intercept, and window/level contrast mapping into GRAY8
// output samples.
package pixel

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// fieldSize is the width of each of the five extradata fields.
const fieldSize = 4

// Size is the total encoded size of an Extradata blob: five 32-bit
// little-endian fields plus a zero-filled padding tail, matching the
// demuxer-to-decoder contract in spec.md §6.
const Size = 32

// ErrShortExtradata is returned by DecodeExtradata when fewer than the
// five required fields are present.
var ErrShortExtradata = errors.New("pixel: short extradata")

// Extradata is the packet sidecar a demuxer snapshots from DecoderState at
// the moment it reaches Pixel Data, so a decoder fed only raw frame bytes
// (no element stream) can still apply the full pixel pipeline.
type Extradata struct {
	Photometric         int32
	PixelRepresentation int32
	PixelPadding        int32
	RescaleSlope        int32
	RescaleIntercept    int32
}

// Encode packs the five fields as little-endian int32s followed by a
// zero-filled tail, for a total of Size bytes.
func (e Extradata) Encode() []byte {
	buf := make([]byte, Size)
	binary.LittleEndian.PutUint32(buf[0*fieldSize:], uint32(e.Photometric))
	binary.LittleEndian.PutUint32(buf[1*fieldSize:], uint32(e.PixelRepresentation))
	binary.LittleEndian.PutUint32(buf[2*fieldSize:], uint32(e.PixelPadding))
	binary.LittleEndian.PutUint32(buf[3*fieldSize:], uint32(e.RescaleSlope))
	binary.LittleEndian.PutUint32(buf[4*fieldSize:], uint32(e.RescaleIntercept))
	return buf
}

// DecodeExtradata reads the five fields in order, ignoring any trailing
// padding. It requires at least 20 bytes.
func DecodeExtradata(b []byte) (Extradata, error) {
	const required = 5 * fieldSize
	if len(b) < required {
		return Extradata{}, fmt.Errorf("%w: got %d bytes, want at least %d", ErrShortExtradata, len(b), required)
	}
	return Extradata{
		Photometric:         int32(binary.LittleEndian.Uint32(b[0*fieldSize:])),
		PixelRepresentation: int32(binary.LittleEndian.Uint32(b[1*fieldSize:])),
		PixelPadding:        int32(binary.LittleEndian.Uint32(b[2*fieldSize:])),
		RescaleSlope:        int32(binary.LittleEndian.Uint32(b[3*fieldSize:])),
		RescaleIntercept:    int32(binary.LittleEndian.Uint32(b[4*fieldSize:])),
	}, nil
}
