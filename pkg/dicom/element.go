package dicom

import (
	"fmt"
	"log/slog"

	"github.com/clarivue/dicomgray/pkg/dicom/dicomio"
	"github.com/clarivue/dicomgray/pkg/dicom/tag"
	"github.com/clarivue/dicomgray/pkg/dicom/transfer"
	"github.com/clarivue/dicomgray/pkg/dicom/vr"
)

// maxSequenceItems and maxSequenceTokens bound sequence recursion: an
// explicit-length or undefined-length item list stops and fails rather
// than growing without bound on adversarial input.
const (
	maxSequenceItems  = 20
	maxSequenceTokens = 5000
)

// readElement reads one DataElement: its header (group, element, VR, VL)
// and its value, recursing into readSequence when VL is the undefined-length
// sentinel. state.InSequence is toggled for the duration of an SQ value per
// spec.md §4.3 step 5.
//
// wantValue is consulted, once the element's tag is known, to decide what
// happens to a non-sequence value field: true reads it into e.Bytes; false
// skips it without allocating, leaving e.Bytes nil. A nil wantValue reads
// every value. A sequence's value is always read (never skipped) since the
// parser must walk it to find where it ends - spec.md §4.5 notes this
// exception for "all other groups" when metadata emission is disabled.
func readElement(log *slog.Logger, r *dicomio.Reader, state *DecoderState, wantValue func(Tag) bool) (*DataElement, error) {
	group, err := r.ReadU16LE()
	if err != nil {
		return nil, fmt.Errorf("%w: read group: %w", ErrInvalidData, err)
	}
	element, err := r.ReadU16LE()
	if err != nil {
		return nil, fmt.Errorf("%w: read element: %w", ErrInvalidData, err)
	}

	e := &DataElement{Group: group, Element: element}
	isDelimiter := group == 0xFFFE

	var v vr.VR
	var vl int64

	switch {
	case isDelimiter:
		raw, err := r.ReadU32LE()
		if err != nil {
			return nil, fmt.Errorf("%w: read delimiter length: %w", ErrInvalidData, err)
		}
		vl = int64(raw)

	case state.InSequence || (state.TransferSyntax == transfer.ImplicitVRLittleEndian && !state.InHeader):
		raw, err := r.ReadU32LE()
		if err != nil {
			return nil, fmt.Errorf("%w: read implicit length: %w", ErrInvalidData, err)
		}
		vl = int64(raw)

	default:
		vrRaw, err := r.ReadU16BE()
		if err != nil {
			return nil, fmt.Errorf("%w: read VR: %w", ErrInvalidData, err)
		}
		v = vr.VR(vrRaw)
		if v.HasLongLengthForm() {
			if err := r.Skip(2); err != nil {
				return nil, fmt.Errorf("%w: skip VR reserved bytes: %w", ErrInvalidData, err)
			}
			raw, err := r.ReadU32LE()
			if err != nil {
				return nil, fmt.Errorf("%w: read long-form length: %w", ErrInvalidData, err)
			}
			vl = int64(raw)
		} else {
			raw, err := r.ReadU16LE()
			if err != nil {
				return nil, fmt.Errorf("%w: read short-form length: %w", ErrInvalidData, err)
			}
			vl = int64(raw)
		}
	}

	if vl < 0 {
		return nil, fmt.Errorf("%w: negative value length on (%04x,%04x)", ErrInvalidData, group, element)
	}
	if vl != UndefinedVL && vl%2 != 0 {
		log.Warn("odd value length", "group", fmt.Sprintf("%04x", group), "element", fmt.Sprintf("%04x", element), "vl", vl)
	}

	if entry, ok := tag.Lookup(e.Tag()); ok {
		e.Described = true
		e.Desc = entry.Description
		if v == vr.Unset {
			v = entry.VR
		}
	}
	if v == vr.Unset {
		v = vr.UN
	}
	e.VR = v
	e.VL = vl

	if vl == UndefinedVL {
		wasInSeq := state.InSequence
		state.InSequence = true
		items, err := readSequence(log, r)
		state.InSequence = wasInSeq
		if err != nil {
			return nil, err
		}
		e.Items = items
		return e, nil
	}

	if wantValue != nil && !wantValue(e.Tag()) {
		if err := r.Skip(vl); err != nil {
			return nil, fmt.Errorf("%w: skip value field of (%04x,%04x): %w", ErrInvalidData, group, element, err)
		}
		return e, nil
	}

	buf, err := r.ReadExact(vl)
	if err != nil {
		return nil, fmt.Errorf("%w: read value field of (%04x,%04x): %w", ErrInvalidData, group, element, err)
	}
	e.Bytes = buf
	return e, nil
}

// readSequence reads the children of an undefined-length sequence: element
// headers read back to back until the Sequence Delimitation Item
// (0xFFFE,0xE0DD) is seen, bounded by maxSequenceItems. Each child item
// with an explicit length is read as a plain value; one with an undefined
// length is read word-at-a-time by readImplicitItem.
func readSequence(log *slog.Logger, r *dicomio.Reader) ([]*DataElement, error) {
	items := make([]*DataElement, 0, 4)
	for i := 0; i < maxSequenceItems; i++ {
		group, err := r.ReadU16LE()
		if err != nil {
			return nil, fmt.Errorf("%w: read sequence item header: %w", ErrInvalidData, err)
		}
		element, err := r.ReadU16LE()
		if err != nil {
			return nil, fmt.Errorf("%w: read sequence item header: %w", ErrInvalidData, err)
		}
		rawLen, err := r.ReadU32LE()
		if err != nil {
			return nil, fmt.Errorf("%w: read sequence item length: %w", ErrInvalidData, err)
		}
		item := &DataElement{Group: group, Element: element, VL: int64(rawLen)}

		if group == tag.SequenceDelimitationItem.Group && element == tag.SequenceDelimitationItem.Element {
			items = append(items, item)
			return items, nil
		}

		if item.VL == UndefinedVL {
			buf, n, err := readImplicitItem(r)
			if err != nil {
				return nil, err
			}
			item.Bytes = buf
			item.VL = n
		} else {
			buf, err := r.ReadExact(item.VL)
			if err != nil {
				return nil, fmt.Errorf("%w: read sequence item value: %w", ErrInvalidData, err)
			}
			item.Bytes = buf
		}
		items = append(items, item)
	}
	return nil, fmt.Errorf("%w: %w: sequence exceeded %d items", ErrInvalidData, ErrSequenceOverflow, maxSequenceItems)
}

// readImplicitItem reads an undefined-length sequence item word by word
// until it observes the Item Delimitation Item (0xFFFE,0xE00D) preceded by
// the item tag's group, bounded by maxSequenceTokens 16-bit words. It
// consumes the 4 trailing zero length bytes of the delimiter before
// returning, matching the wire shape every DICOM writer emits.
func readImplicitItem(r *dicomio.Reader) ([]byte, int64, error) {
	buf := make([]byte, 0, maxSequenceTokens*2)
	prevWasGroup := false
	for i := 0; i < maxSequenceTokens; i++ {
		word, err := r.ReadU16LE()
		if err != nil {
			return nil, 0, fmt.Errorf("%w: read implicit item token: %w", ErrInvalidData, err)
		}
		if word == tag.Item.Group {
			prevWasGroup = true
			buf = append(buf, byte(word), byte(word>>8))
			continue
		}
		if word == tag.ItemDelimitationItem.Element && prevWasGroup {
			if err := r.Skip(4); err != nil {
				return nil, 0, fmt.Errorf("%w: skip item delimitation trailer: %w", ErrInvalidData, err)
			}
			buf = buf[:len(buf)-2]
			return buf, int64(len(buf)), nil
		}
		prevWasGroup = false
		buf = append(buf, byte(word), byte(word>>8))
	}
	return nil, 0, fmt.Errorf("%w: %w: implicit item exceeded %d tokens", ErrInvalidData, ErrSequenceOverflow, maxSequenceTokens)
}
