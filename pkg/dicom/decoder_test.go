package dicom

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clarivue/dicomgray/pkg/dicom/transfer"
	"github.com/clarivue/dicomgray/pkg/dicom/vr"
)

// TestDecodeEndToEnd builds a complete minimal DICOM stream - preamble,
// magic, File Meta group, a patient-name element, the Image Pixel Module,
// and one frame of pixel data - and drives it through Decode, checking
// metadata emission order and the resulting frame.
func TestDecodeEndToEnd(t *testing.T) {
	stream := append([]byte{}, preambleAndMagic()...)
	stream = append(stream, minimalMetaGroup(transfer.UIDExplicitVRLittleEndian)...)

	stream = append(stream, explicitElement(0x0010, 0x0010, vr.PN, padEven([]byte("Doe^Jane")))...)
	stream = append(stream, explicitElement(0x0028, 0x0010, vr.US, u16le(2))...)
	stream = append(stream, explicitElement(0x0028, 0x0011, vr.US, u16le(2))...)
	stream = append(stream, explicitElement(0x0028, 0x0100, vr.US, u16le(8))...)
	stream = append(stream, explicitElement(0x0028, 0x0101, vr.US, u16le(8))...)
	stream = append(stream, explicitElement(0x0028, 0x0004, vr.CS, padEven([]byte("MONOCHROME2")))...)
	stream = append(stream, explicitElement(0x0028, 0x0103, vr.US, u16le(0))...)
	raw := []byte{0x00, 0x40, 0x80, 0xFF}
	stream = append(stream, explicitElement(0x7fe0, 0x0010, vr.OW, raw)...)

	var metaKeys []string
	metaSink := MetadataSinkFunc(func(k, v string) { metaKeys = append(metaKeys, k) })
	var frames []Frame
	frameSink := FrameSinkFunc(func(f Frame) error {
		frames = append(frames, f)
		return nil
	})

	opts := Options{Window: 256, Level: 128, Metadata: true}
	err := Decode(context.Background(), bytes.NewReader(stream), opts, frameSink, metaSink)
	require.NoError(t, err)

	require.Len(t, frames, 1)
	assert.Equal(t, raw, frames[0].Pixels)
	assert.Equal(t, 2, frames[0].Width)
	assert.Equal(t, 2, frames[0].Height)

	// readHeader never emits the Group Length element itself, so the first
	// metadata key is the Transfer Syntax UID that follows it.
	require.NotEmpty(t, metaKeys)
	assert.Contains(t, metaKeys[0], "0002,0010")
	assert.Contains(t, metaKeys, "(0010,0010) ")
}

// TestDecodeMetadataDisabledSkipsGenericElementsButDecodesFrames checks that
// with Metadata:false, generic elements outside the Image Pixel Module are
// never materialized, yet pixel data is still fully decoded.
func TestDecodeMetadataDisabledSkipsGenericElementsButDecodesFrames(t *testing.T) {
	stream := append([]byte{}, preambleAndMagic()...)
	stream = append(stream, minimalMetaGroup(transfer.UIDExplicitVRLittleEndian)...)
	stream = append(stream, explicitElement(0x0010, 0x0010, vr.PN, padEven([]byte("Doe^Jane")))...)
	stream = append(stream, explicitElement(0x0028, 0x0010, vr.US, u16le(1))...)
	stream = append(stream, explicitElement(0x0028, 0x0011, vr.US, u16le(1))...)
	stream = append(stream, explicitElement(0x0028, 0x0100, vr.US, u16le(8))...)
	stream = append(stream, explicitElement(0x0028, 0x0101, vr.US, u16le(8))...)
	stream = append(stream, explicitElement(0x0028, 0x0004, vr.CS, padEven([]byte("MONOCHROME2")))...)
	raw := []byte{0x77}
	stream = append(stream, explicitElement(0x7fe0, 0x0010, vr.OW, raw)...)

	var frames []Frame
	frameSink := FrameSinkFunc(func(f Frame) error {
		frames = append(frames, f)
		return nil
	})

	opts := Options{Window: 256, Level: 128, Metadata: false}
	err := Decode(context.Background(), bytes.NewReader(stream), opts, frameSink, nil)
	require.NoError(t, err)
	require.Len(t, frames, 1)
	assert.Equal(t, raw, frames[0].Pixels)
}

func TestDecodeUnsupportedTransferSyntaxFails(t *testing.T) {
	stream := append([]byte{}, preambleAndMagic()...)
	stream = append(stream, minimalMetaGroup(transfer.UIDJPEGBaseline)...)

	opts := Options{Window: -1, Level: -1}
	err := Decode(context.Background(), bytes.NewReader(stream), opts, nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedTransferSyntax)
}
