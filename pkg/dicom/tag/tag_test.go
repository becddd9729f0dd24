package tag

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clarivue/dicomgray/pkg/dicom/vr"
)

func TestLookupKnownTag(t *testing.T) {
	entry, ok := Lookup(Tag{0x0002, 0x0010})
	assert.True(t, ok)
	assert.Equal(t, vr.UI, entry.VR)
	assert.NotEmpty(t, entry.Description)
}

func TestLookupUnknownTagNotFound(t *testing.T) {
	_, ok := Lookup(Tag{0x9999, 0x9999})
	assert.False(t, ok)
}

func TestIsPrivate(t *testing.T) {
	assert.False(t, Tag{0x0008, 0x0018}.IsPrivate())
	assert.True(t, Tag{0x0009, 0x0001}.IsPrivate())
}

func TestDictionaryHasNoDuplicateKeys(t *testing.T) {
	seen := make(map[Tag]bool, len(dictionary))
	for k := range dictionary {
		assert.False(t, seen[k], "duplicate dictionary key %v", k)
		seen[k] = true
	}
}
