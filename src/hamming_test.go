package teletext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestHam84EncodeTable(t *testing.T) {
	// Verify some known codewords from ETS 300 706, table 36.
	assert.Equal(t, byte(0x15), HAM_8_4[0x0])
	assert.Equal(t, byte(0x02), HAM_8_4[0x1])
	assert.Equal(t, byte(0x49), HAM_8_4[0x2])
	assert.Equal(t, byte(0xd0), HAM_8_4[0x8])
	assert.Equal(t, byte(0xea), HAM_8_4[0xF])
}

func TestHam84RoundTrip(t *testing.T) {
	for nibble := byte(0); nibble < 16; nibble++ {
		assert.Equal(t, nibble, unham_8_4(ham_8_4(nibble)), "Hamming 8/4 round-trip failed for nibble %d", nibble)
	}
}

func TestHam84SingleBitCorrection(t *testing.T) {
	for nibble := byte(0); nibble < 16; nibble++ {
		var codeword = ham_8_4(nibble)
		for bit := 0; bit < 8; bit++ {
			var corrupted = codeword ^ (1 << bit)
			assert.Equal(t, nibble, unham_8_4(corrupted),
				"Hamming 8/4 correction failed for nibble %d, bit %d flipped", nibble, bit)
		}
	}
}

func TestUnham84Range(t *testing.T) {
	// Every possible input must decode into the nibble range, with
	// sentinel table entries yielding zero.
	for a := 0; a < 256; a++ {
		var decoded = unham_8_4(byte(a))
		assert.LessOrEqual(t, decoded, byte(0x0F))
		if UNHAM_8_4[a] == 0xFF {
			assert.Equal(t, byte(0x00), decoded, "sentinel entry 0x%02x should decode to zero", a)
		} else {
			assert.Equal(t, UNHAM_8_4[a]&0x0F, decoded)
		}
	}
}

func TestHam2418RoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var value = rapid.Uint32Range(0, 0x3FFFF).Draw(t, "value")
		assert.Equal(t, value, unham_24_18(ham_24_18(value)))
	})
}

func TestHam2418SingleBitCorrection(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var value = rapid.Uint32Range(0, 0x3FFFF).Draw(t, "value")
		var bit = rapid.IntRange(0, 23).Draw(t, "bit")

		var corrupted = ham_24_18(value) ^ (1 << bit)
		assert.Equal(t, value, unham_24_18(corrupted), "single bit flip %d not corrected", bit)
	})
}

func TestHam2418DoubleErrorDetection(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var value = rapid.Uint32Range(0, 0x3FFFF).Draw(t, "value")
		var bit1 = rapid.IntRange(0, 22).Draw(t, "bit1")
		var bit2 = rapid.IntRange(0, 22).Filter(func(b int) bool { return b != bit1 }).Draw(t, "bit2")

		var corrupted = ham_24_18(value) ^ (1 << bit1) ^ (1 << bit2)
		assert.Equal(t, uint32(UNHAM_24_18_ERROR), unham_24_18(corrupted))
	})
}

func TestHam2418KnownValue(t *testing.T) {
	const value = uint32(0x2A5A5)

	var codeword = ham_24_18(value)
	assert.Equal(t, value, unham_24_18(codeword))

	// Single error at bit 7 is corrected.
	assert.Equal(t, value, unham_24_18(codeword^(1<<7)))

	// Double error at bits 7 and 15 is detected.
	assert.Equal(t, uint32(UNHAM_24_18_ERROR), unham_24_18(codeword^(1<<7)^(1<<15)))
}
