package dicom

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/clarivue/dicomgray/pkg/dicom/dicomio"
)

// Options are the consumer-supplied knobs spec.md §6 enumerates.
type Options struct {
	// Window overrides the file's window width; -1 (the default) means
	// "use the file's value".
	Window int

	// Level overrides the file's window center; -1 (the default) means
	// "use the file's value".
	Level int

	// Metadata, when true, emits every non-image, non-pixel element as a
	// stream metadata entry via MetadataSink.
	Metadata bool

	// Logger receives parser warnings (odd value lengths, missing meta
	// group length, etc). Defaults to slog.Default() if nil.
	Logger *slog.Logger
}

// MetadataSink receives one "(gggg,eeee) <desc>" / formatted-value pair per
// emitted element, in file order. The collaborator that implements it -
// the demuxer's stream dictionary in the source system - is out of scope
// (spec.md §6); this package only calls it.
type MetadataSink interface {
	Metadata(key, value string)
}

// FrameSink receives one decoded GRAY8 Frame at a time, in frame order with
// monotonically increasing PTS. Out-of-scope collaborator per spec.md §6.
type FrameSink interface {
	Frame(f Frame) error
}

// MetadataSinkFunc adapts a function to a MetadataSink.
type MetadataSinkFunc func(key, value string)

// Metadata implements MetadataSink.
func (f MetadataSinkFunc) Metadata(key, value string) { f(key, value) }

// FrameSinkFunc adapts a function to a FrameSink.
type FrameSinkFunc func(f Frame) error

// Frame implements FrameSink.
func (f FrameSinkFunc) Frame(frame Frame) error { return f(frame) }

func emitMetadata(sink MetadataSink, e *DataElement) {
	if sink == nil {
		return
	}
	sink.Metadata(MetadataKey(e), FormatValue(e))
}

// Decode reads one DICOM stream from r: the preamble and File Meta group,
// then the dataset, handing every decoded pixel frame to frames. meta
// always receives the File Meta group's elements and, when opts.Metadata
// is set, every non-image, non-pixel dataset element. It returns after the
// stream is exhausted or a fatal error is hit (see spec.md §7).
//
// ctx is checked at each element boundary so a caller can cancel a long
// scan; cancellation surfaces as ctx.Err() wrapped in the returned error,
// matching the "caller may stop consuming at any element boundary"
// requirement in spec.md §5.
func Decode(ctx context.Context, r io.Reader, opts Options, frames FrameSink, meta MetadataSink) error {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	state := NewDecoderState(opts)
	br := dicomio.NewReader(r)

	// The File Meta group is always emitted as metadata, regardless of
	// opts.Metadata: spec.md §4.4 step 4 emits unconditionally, while only
	// the dataset scan's §4.5 emission is gated on the option.
	if err := readHeader(log, br, state, meta); err != nil {
		return err
	}

	var datasetMeta MetadataSink
	if opts.Metadata {
		datasetMeta = meta
	}
	if err := scanDataset(ctx, log, br, state, frames, datasetMeta); err != nil {
		return err
	}
	return nil
}

// wrapCtxErr folds a context cancellation into the fatal-error shape the
// rest of the package uses.
func wrapCtxErr(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("dicom: %w", err)
	}
	return nil
}
