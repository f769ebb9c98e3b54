package teletext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestParityTableMatchesBitCount(t *testing.T) {
	for a := 0; a < 256; a++ {
		var ones int
		for bit := 0; bit < 8; bit++ {
			if byte(a)&(1<<bit) != 0 {
				ones++
			}
		}
		var want = byte(ones % 2)
		assert.Equal(t, want, PARITY_8[a], "table entry 0x%02x", a)
	}
}

func TestTeletextToUcs2ParityFailure(t *testing.T) {
	var cs = new_charset_state()

	rapid.Check(t, func(t *rapid.T) {
		var b = rapid.Byte().Filter(func(b byte) bool { return PARITY_8[b] == 0 }).Draw(t, "b")
		assert.Equal(t, uint16(0x20), cs.teletext_to_ucs2(b))
	})
}

func TestTeletextToUcs2Latin(t *testing.T) {
	var cs = new_charset_state()

	tests := []struct {
		name     string
		code     byte
		expected uint16
	}{
		{"control code passes through", 0x0B, 0x000B},
		{"space", 0x20, 0x0020},
		{"pound at 0x23", 0x23, 0x00a3},
		{"dollar", 0x24, 0x0024},
		{"letter A", 0x41, 0x0041},
		{"letter z", 0x7A, 0x007a},
		{"left guillemet at 0x5B", 0x5B, 0x00ab},
		{"one quarter at 0x7B", 0x7B, 0x00bc},
		{"delete", 0x7F, 0x007f},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cs.teletext_to_ucs2(odd_parity(tt.code)))
		})
	}
}

func TestNationalSubsetPositions(t *testing.T) {
	// The 13 patched positions, ETS 300 706 table 36 grid arithmetic.
	assert.Equal(t,
		[13]byte{0x03, 0x04, 0x20, 0x3b, 0x3c, 0x3d, 0x3e, 0x3f, 0x40, 0x5b, 0x5c, 0x5d, 0x5e},
		G0_LATIN_NATIONAL_SUBSETS_POSITIONS)
}

func TestRemapCzechSubset(t *testing.T) {
	var cs = new_charset_state()

	// Designation bits 3 select the Czech/Slovak sub-set.
	assert.Equal(t, byte(0x03), G0_LATIN_NATIONAL_SUBSETS_MAP[3])
	cs.set_x28(3)

	// Every patched position now carries the Czech replacement.
	for j, pos := range G0_LATIN_NATIONAL_SUBSETS_POSITIONS {
		assert.Equal(t, G0_LATIN_NATIONAL_SUBSETS[3][j], cs.g0_latin[pos], "position 0x%02x", pos)
	}

	// Byte 0x7B sits at patched position 0x5B: 'one quarter' becomes
	// 'a with acute' under the Czech option.
	assert.Equal(t, uint16(0x00e1), cs.teletext_to_ucs2(odd_parity(0x7B)))

	// Unpatched positions keep their base Latin value.
	assert.Equal(t, uint16(0x0041), cs.teletext_to_ucs2(odd_parity(0x41)))
}

func TestResetX28FallsBackToHeaderCharset(t *testing.T) {
	// After set_x28(k) then reset_x28(f) without any M/29, the table
	// must equal the one produced by set_x28(f) alone.
	var cs1 = new_charset_state()
	cs1.set_x28(3)
	cs1.reset_x28(2)

	var cs2 = new_charset_state()
	cs2.set_x28(2)

	assert.Equal(t, cs2.g0_latin, cs1.g0_latin)
	assert.Equal(t, byte(CHARSET_UNDEFINED), cs1.g0_x28)
}

func TestResetX28PrefersM29(t *testing.T) {
	var cs = new_charset_state()
	cs.set_m29(4) // German, magazine level
	cs.set_x28(3) // Czech, page level

	cs.reset_x28(2)

	// Magazine-level sub-set wins over the header fallback.
	var want = new_charset_state()
	want.set_x28(4)
	assert.Equal(t, want.g0_latin, cs.g0_latin)
}

func TestSetM29DoesNotOverrideX28(t *testing.T) {
	var cs = new_charset_state()
	cs.set_x28(3)
	cs.set_m29(4)

	// The page-level override stays installed.
	var want = new_charset_state()
	want.set_x28(3)
	assert.Equal(t, want.g0_latin, cs.g0_latin)
}

func TestRemapIgnoresUnmappedDesignation(t *testing.T) {
	var cs = new_charset_state()
	cs.set_x28(3)
	var czech = cs.g0_latin

	// Designation 13 maps to 0xff: no change.
	cs.set_x28(13)
	assert.Equal(t, czech, cs.g0_latin)

	// Out of range designations are ignored too.
	cs.set_x28(200)
	assert.Equal(t, czech, cs.g0_latin)
}

func TestSetG0Charset(t *testing.T) {
	tests := []struct {
		name     string
		triplet  uint32
		expected g0_charset_t
	}{
		{"latin when designation bits absent", 0x0000, CHARSET_LATIN},
		{"cyrillic 1", 0x1000, CHARSET_CYRILLIC1},
		{"cyrillic 2", 0x1200, CHARSET_CYRILLIC2},
		{"cyrillic 3", 0x1280, CHARSET_CYRILLIC3},
		{"unrecognised combination falls back to latin", 0x1080, CHARSET_LATIN},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cs = new_charset_state()
			cs.set_g0_charset(tt.triplet)
			assert.Equal(t, tt.expected, cs.g0_default)
		})
	}
}

func TestTeletextToUcs2Cyrillic(t *testing.T) {
	var cs = new_charset_state()
	cs.set_g0_charset(0x1200) // Russian/Bulgarian

	assert.Equal(t, uint16(0x0410), cs.teletext_to_ucs2(odd_parity(0x41)))
	assert.Equal(t, uint16(0x042e), cs.teletext_to_ucs2(odd_parity(0x40)))

	// X/28 sub-set remapping only applies to the Latin family.
	var before = cs.g0_latin
	cs.set_x28(3)
	assert.Equal(t, before, cs.g0_latin)
	assert.Equal(t, byte(CHARSET_UNDEFINED), cs.g0_x28)
}

func TestG2ToUcs2(t *testing.T) {
	var cs = new_charset_state()

	assert.Equal(t, uint16(0x0020), cs.g2_to_ucs2(0x20))
	assert.Equal(t, uint16(0x00a1), cs.g2_to_ucs2(0x21)) // inverted exclamation
	assert.Equal(t, uint16(0x20ac), cs.g2_to_ucs2(0x56)) // euro sign
	assert.Equal(t, uint16(0x0020), cs.g2_to_ucs2(0x7F))

	// Below the printable range there is nothing.
	assert.Equal(t, uint16(0x0000), cs.g2_to_ucs2(0x1F))

	// The Latin G2 set is used regardless of the primary family.
	cs.set_g0_charset(0x1200)
	assert.Equal(t, uint16(0x00a1), cs.g2_to_ucs2(0x21))
}

func TestG2AccentToUcs2(t *testing.T) {
	var cs = new_charset_state()

	tests := []struct {
		name     string
		c        byte
		accent   byte
		expected uint16
	}{
		{"A grave", 'A', 0, 0x00c0},
		{"e acute", 'e', 1, 0x00e9},
		{"u umlaut", 'u', 7, 0x00fc},
		{"Z caron", 'Z', 14, 0x017d},
		{"z caron", 'z', 14, 0x017e},
		{"no composition defined", 'b', 0, 0x0000},
		{"accent row 8 is empty", 'A', 8, 0x0000},
		{"accent row 11 is empty", 'A', 11, 0x0000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cs.g2_accent_to_ucs2(tt.c, tt.accent))
		})
	}

	// Anything outside A-Z / a-z falls back to the primary translation.
	assert.Equal(t, uint16(0x0031), cs.g2_accent_to_ucs2(odd_parity('1'), 2))
}

func TestG2AccentRowsZeroed(t *testing.T) {
	for _, row := range []int{8, 11} {
		for col := 0; col < ACCENT_LETTER_COUNT; col++ {
			assert.Equal(t, uint16(0), G2_ACCENTS[row][col], "row %d col %d", row, col)
		}
	}
}
