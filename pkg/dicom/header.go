package dicom

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/clarivue/dicomgray/pkg/dicom/dicomio"
	"github.com/clarivue/dicomgray/pkg/dicom/tag"
	"github.com/clarivue/dicomgray/pkg/dicom/transfer"
)

const (
	preambleSize = 128
	magic        = "DICM"

	// fallbackMetaGroupLength is used when the first meta element is
	// missing or is not (0002,0000) UL, per spec.md §4.4 step 3.
	fallbackMetaGroupLength = 200
)

// ProbeScore reports the probe confidence for a 132+ byte prefix: maximum
// confidence (255) if bytes [128:132) are "DICM", else zero. Matches the
// demuxer probe contract described in spec.md §6.
func ProbeScore(prefix []byte) int {
	if len(prefix) < preambleSize+4 {
		return 0
	}
	if bytes.Equal(prefix[preambleSize:preambleSize+4], []byte(magic)) {
		return 255
	}
	return 0
}

// readHeader skips the preamble, validates the magic, and parses the File
// Meta Information group (always explicit-VR little-endian), updating
// state.TransferSyntax from (0002,0010). Metadata for each meta element is
// forwarded to sink if non-nil.
func readHeader(log *slog.Logger, r *dicomio.Reader, state *DecoderState, sink MetadataSink) error {
	if err := r.Skip(preambleSize); err != nil {
		return fmt.Errorf("%w: preamble: %w", ErrInvalidData, err)
	}
	magicBytes, err := r.ReadExact(4)
	if err != nil {
		return fmt.Errorf("%w: magic: %w", ErrInvalidData, err)
	}
	if string(magicBytes) != magic {
		return fmt.Errorf("%w: %w", ErrInvalidData, ErrBadMagic)
	}

	first, err := readElement(log, r, state, nil)
	if err != nil {
		return fmt.Errorf("%w: file meta group length element: %w", ErrInvalidData, err)
	}

	metaGroupLength := int64(fallbackMetaGroupLength)
	consumed := int64(0)
	if first.Tag() == tag.FileMetaInformationGroupLength && len(first.Bytes) >= 4 {
		metaGroupLength = int64(leUint32(first.Bytes))
	} else {
		log.Warn("file meta group length missing or malformed, using fallback", "fallback", fallbackMetaGroupLength)
		consumed += elementWireSize(first)
		emitMetadata(sink, first)
		if err := applyTransferSyntax(state, first); err != nil {
			return err
		}
	}

	for consumed < metaGroupLength {
		e, err := readElement(log, r, state, nil)
		if err != nil {
			if r.AtEOF() && errors.Is(err, dicomio.ErrShortRead) {
				break
			}
			return fmt.Errorf("%w: file meta element: %w", ErrInvalidData, err)
		}
		consumed += elementWireSize(e)
		emitMetadata(sink, e)
		if err := applyTransferSyntax(state, e); err != nil {
			return err
		}
	}

	state.InHeader = false
	return nil
}

// applyTransferSyntax updates state.TransferSyntax when e is the Transfer
// Syntax UID element, failing fast on an unsupported syntax per spec.md
// §4.4 step 5.
func applyTransferSyntax(state *DecoderState, e *DataElement) error {
	if e.Tag() != tag.TransferSyntaxUID {
		return nil
	}
	uid := strings.TrimRight(string(e.Bytes), " \x00")
	state.TransferSyntax = transfer.FromUID(uid)
	if state.TransferSyntax == transfer.Unsupported {
		return fmt.Errorf("%w: %w: %q", ErrInvalidData, ErrUnsupportedTransferSyntax, uid)
	}
	return nil
}

// elementWireSize approximates the number of File Meta group bytes an
// element consumed: its value length plus the header overhead implied by
// its VR's length-field form. The meta group is always explicit-VR, so
// this matches the encoding readElement used for it.
func elementWireSize(e *DataElement) int64 {
	header := int64(6) // group + element + 2-byte VR
	if e.VR.HasLongLengthForm() {
		header += 6 // 2 reserved + 4-byte length
	} else {
		header += 2 // 2-byte length
	}
	return header + e.VL
}

func leUint32(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}
