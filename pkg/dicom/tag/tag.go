// Package tag defines the DICOM (Group, Element) tag type and the static
// tag dictionary used to fill in VR and description for elements whose VR
// is not carried on the wire (implicit-VR encoding).
package tag

import "github.com/clarivue/dicomgray/pkg/dicom/vr"

// Tag identifies a DICOM data element by its (Group, Element) pair.
type Tag struct {
	Group   uint16
	Element uint16
}

// New creates a Tag.
func New(group, element uint16) Tag {
	return Tag{Group: group, Element: element}
}

// IsPrivate reports whether this is a private tag (odd group number).
func (t Tag) IsPrivate() bool {
	return t.Group%2 == 1
}

// Sequence and item delimiters (group 0xFFFE never carries a VR on the
// wire, explicit-VR or not).
var (
	Item                     = Tag{0xFFFE, 0xE000}
	ItemDelimitationItem     = Tag{0xFFFE, 0xE00D}
	SequenceDelimitationItem = Tag{0xFFFE, 0xE0DD}
)

// File Meta Information group (0002) tags referenced directly by the
// header reader.
var (
	FileMetaInformationGroupLength = Tag{0x0002, 0x0000}
	TransferSyntaxUID              = Tag{0x0002, 0x0010}
)

// Image Pixel Module (0028) and Pixel Data tags referenced directly by the
// dataset scanner.
var (
	Rows                      = Tag{0x0028, 0x0010}
	Columns                   = Tag{0x0028, 0x0011}
	BitsAllocated             = Tag{0x0028, 0x0100}
	BitsStored                = Tag{0x0028, 0x0101}
	NumberOfFrames            = Tag{0x0028, 0x0008}
	WindowCenter              = Tag{0x0028, 0x1050}
	WindowWidth               = Tag{0x0028, 0x1051}
	PhotometricInterpretation = Tag{0x0028, 0x0004}
	PixelRepresentation       = Tag{0x0028, 0x0103}
	PixelPaddingValue         = Tag{0x0028, 0x0120}
	RescaleIntercept          = Tag{0x0028, 0x1052}
	RescaleSlope              = Tag{0x0028, 0x1053}
	PixelData                 = Tag{0x7FE0, 0x0010}
)

// Multi-frame Module (0018) tag referenced directly by the dataset scanner.
var FrameTime = Tag{0x0018, 0x1063}

// Entry is a single row of the dictionary: the VR and human-readable name
// for one tag.
type Entry struct {
	VR          vr.VR
	Description string
}

// Lookup returns the dictionary entry for a tag, or (Entry{}, false) if the
// tag is not in the dictionary. The element parser treats a miss as an
// empty description and, when no VR came off the wire, as VR UN.
func Lookup(t Tag) (Entry, bool) {
	e, ok := dictionary[t]
	return e, ok
}
