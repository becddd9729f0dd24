package util

import (
	"encoding/json"

	"github.com/google/uuid"
)

// CorrelationUUID derives a stable, deterministic UUID from a DICOM
// identifier - typically the SOP Instance UID pulled out of file metadata -
// using SHA-1 in the standard OID namespace. DICOM UIDs are themselves
// OIDs, so this reuses the namespace the value already belongs to rather
// than inventing a private one; the same UID always yields the same
// correlation UUID across runs and processes.
func CorrelationUUID(dicomUID string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(dicomUID)).String()
}

// HashUUID derives a deterministic UUID from the JSON encoding of any
// value, for callers with no DICOM UID to key off of. Returns "" if the
// value cannot be marshaled.
func HashUUID(value any) string {
	raw, err := json.Marshal(value)
	if err != nil {
		return ""
	}
	return uuid.NewSHA1(uuid.NameSpaceOID, raw).String()
}
