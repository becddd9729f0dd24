package vr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromBytesRoundTripsString(t *testing.T) {
	cases := []struct {
		bytes [2]byte
		want  VR
	}{
		{[2]byte{'O', 'B'}, OB},
		{[2]byte{'U', 'L'}, UL},
		{[2]byte{'S', 'Q'}, SQ},
	}
	for _, c := range cases {
		got := FromBytes(c.bytes)
		assert.Equal(t, c.want, got)
		assert.Equal(t, string(c.bytes[:]), got.String())
	}
}

func TestHasLongLengthForm(t *testing.T) {
	for _, v := range []VR{OB, OD, OF, OL, OV, OW, SQ, SV, UC, UR, UT, UN, UV} {
		assert.True(t, v.HasLongLengthForm(), "%s should use the long length form", v)
	}
	for _, v := range []VR{AE, CS, DA, IS, LO, SS, US, UI} {
		assert.False(t, v.HasLongLengthForm(), "%s should use the short length form", v)
	}
}

func TestIsStringAndIsBinaryAreDisjoint(t *testing.T) {
	all := []VR{AE, AS, AT, CS, DA, DS, DT, FD, FL, IS, LO, LT, OB, OD, OF, OL, OV, OW,
		PN, SH, SL, SQ, SS, ST, SV, TM, UC, UI, UL, UN, UR, US, UT, UV}
	for _, v := range all {
		if v.IsString() {
			assert.False(t, v.IsBinary(), "%s marked both string and binary", v)
		}
	}
}

func TestFixedSize(t *testing.T) {
	assert.Equal(t, 4, AT.FixedSize())
	assert.Equal(t, 4, UL.FixedSize())
	assert.Equal(t, 8, FD.FixedSize())
	assert.Equal(t, 2, US.FixedSize())
	assert.Equal(t, 0, LO.FixedSize())
}

func TestUnsetString(t *testing.T) {
	assert.Equal(t, "??", Unset.String())
}
