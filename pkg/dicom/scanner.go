package dicom

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/clarivue/dicomgray/pkg/dicom/dicomio"
	"github.com/clarivue/dicomgray/pkg/dicom/pixel"
	"github.com/clarivue/dicomgray/pkg/dicom/tag"
)

// imageGroup is the Image Pixel Module group spec.md §4.5 dispatches on.
const imageGroup = 0x0028

// multiFrameGroup is the Multi-frame Module group; together with
// tag.FrameTime.Element it locates the Frame Time element spec.md §4.5
// reads.
const multiFrameGroup = 0x0018

// scanDataset consumes the main dataset after the File Meta group: it reads
// one element at a time, dispatches by group, and emits metadata or pixel
// frames until EOF or pixel data has been fully served (spec.md §4.5).
func scanDataset(ctx context.Context, log *slog.Logger, r *dicomio.Reader, state *DecoderState, frames FrameSink, meta MetadataSink) error {
	for {
		if err := wrapCtxErr(ctx); err != nil {
			return err
		}

		e, err := readElement(log, r, state, func(t Tag) bool {
			switch {
			case t.Group == imageGroup, t.Group == multiFrameGroup, t == tag.PixelData:
				return true
			default:
				return meta != nil
			}
		})
		if err != nil {
			if r.AtEOF() && errors.Is(err, dicomio.ErrShortRead) {
				return nil
			}
			return err
		}

		switch {
		case e.Group == imageGroup:
			applyImageInfo(state, e)

		case e.Group == multiFrameGroup && e.Element == tag.FrameTime.Element:
			applyFrameTime(state, e)
			emitMetadata(meta, e)

		case e.Tag() == tag.PixelData:
			return emitPixelFrames(state, e, frames)

		default:
			emitMetadata(meta, e)
		}
	}
}

// applyImageInfo updates DecoderState from one Image Pixel Module (0028)
// element, per the table in spec.md §4.5.
func applyImageInfo(state *DecoderState, e *DataElement) {
	switch e.Element {
	case tag.Rows.Element:
		state.Height = le16(e.Bytes)
	case tag.Columns.Element:
		state.Width = le16(e.Bytes)
	case tag.BitsAllocated.Element:
		state.BitsAllocated = le16(e.Bytes)
	case tag.BitsStored.Element:
		state.BitsStored = le16(e.Bytes)
	case tag.NumberOfFrames.Element:
		if n, ok := parseIntString(e.Bytes); ok && n > 0 {
			state.NumberOfFrames = uint64(n)
		}
	case tag.WindowCenter.Element:
		if n, ok := parseIntString(e.Bytes); ok && state.Level == noWindowLevel {
			state.Level = n
		}
	case tag.WindowWidth.Element:
		if n, ok := parseIntString(e.Bytes); ok && state.Window == noWindowLevel {
			state.Window = n
		}
	case tag.PhotometricInterpretation.Element:
		state.Photometric = photometricFromString(strings.TrimSpace(string(e.Bytes)))
	case tag.PixelRepresentation.Element:
		state.PixelRepresentation = int(le16(e.Bytes))
	case tag.PixelPaddingValue.Element:
		state.PixelPadding = int32(le16(e.Bytes))
		state.HasPixelPadding = true
	case tag.RescaleIntercept.Element:
		if n, ok := parseIntString(e.Bytes); ok {
			state.RescaleIntercept = n
		}
	case tag.RescaleSlope.Element:
		if n, ok := parseIntString(e.Bytes); ok {
			state.RescaleSlope = n
		}
	}
}

// applyFrameTime sets frame_delay_ms from the Frame Time (0018,1063)
// element, a DS (decimal string) value per spec.md §4.5.
func applyFrameTime(state *DecoderState, e *DataElement) {
	if ms, ok := parseFloatString(e.Bytes); ok {
		state.FrameDelayMs = ms
	}
}

// emitPixelFrames computes frame_size, snapshots the extradata blob, and
// hands each frame's raw bytes through pkg/dicom/pixel to FrameSink, per
// spec.md §4.5 and the pixel pipeline in §4.6.
func emitPixelFrames(state *DecoderState, e *DataElement, frames FrameSink) error {
	if state.NumberOfFrames == 0 {
		state.NumberOfFrames = 1
	}
	total := int64(len(e.Bytes))
	frameSize := total / int64(state.NumberOfFrames)

	bytesPerPixel := int64(state.BitsAllocated) / 8
	if bytesPerPixel == 0 {
		bytesPerPixel = 1
	}
	wantSize := int64(state.Width) * int64(state.Height) * bytesPerPixel
	if frameSize < wantSize {
		return fmt.Errorf("%w: %w: got %d bytes, want %d", ErrInvalidData, ErrShortPixelPacket, frameSize, wantSize)
	}

	ed := pixel.Extradata{
		Photometric:         int32(state.Photometric),
		PixelRepresentation: int32(state.PixelRepresentation),
		PixelPadding:        pixelPaddingValue(state),
		RescaleSlope:        int32(state.RescaleSlope),
		RescaleIntercept:    int32(state.RescaleIntercept),
	}

	dec := pixel.Decoder{
		Width:         int(state.Width),
		Height:        int(state.Height),
		BitsAllocated: int(state.BitsAllocated),
		BitsStored:    int(state.BitsStored),
		Window:        state.Window,
		Level:         state.Level,
		Extradata:     ed,
	}

	if frames == nil {
		return nil
	}

	for i := uint64(0); i < state.NumberOfFrames; i++ {
		start := int64(i) * frameSize
		raw := e.Bytes[start : start+frameSize]
		pix, err := dec.Decode(raw)
		if err != nil {
			return fmt.Errorf("%w: pixel frame %d: %w", ErrInvalidData, i, err)
		}
		f := Frame{
			Width:    int(state.Width),
			Height:   int(state.Height),
			Pixels:   pix,
			PTS:      int64(i) * int64(state.FrameDelayMs),
			Duration: int64(state.FrameDelayMs),
		}
		if err := frames.Frame(f); err != nil {
			return fmt.Errorf("dicom: frame sink: %w", err)
		}
		state.FrameIndex++
	}
	return nil
}

func pixelPaddingValue(state *DecoderState) int32 {
	if !state.HasPixelPadding {
		return math.MinInt32 // spec's "none" sentinel
	}
	return state.PixelPadding
}

func le16(b []byte) uint16 {
	if len(b) < 2 {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

// parseIntString parses an IS (Integer String) value: ASCII decimal text,
// NUL/space padded, optionally signed.
func parseIntString(b []byte) (int, bool) {
	s := strings.TrimSpace(nulTerminatedASCII(b))
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// parseFloatString parses a DS (Decimal String) value: ASCII floating-point
// text, NUL/space padded.
func parseFloatString(b []byte) (float64, bool) {
	s := strings.TrimSpace(nulTerminatedASCII(b))
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
