package teletext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestPageNumberParts(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		magazine int
		pageOf   int
	}{
		{"magazine 8 page 88", 0x888, 8, 0x88},
		{"magazine 1 page 00", 0x100, 1, 0x00},
		{"magazine 2 page 34", 0x234, 2, 0x34},
		{"zero", 0x000, 0, 0x00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.magazine, magazine_of(tt.page))
			assert.Equal(t, tt.pageOf, page_of(tt.page))
		})
	}
}

func TestPageBcdConversion(t *testing.T) {
	assert.Equal(t, 888, page_bcd_to_binary(0x888))
	assert.Equal(t, 0x888, page_binary_to_bcd(888))
	assert.Equal(t, 100, page_bcd_to_binary(0x100))
	assert.Equal(t, 0, page_bcd_to_binary(0x000))
}

func TestPageBcdRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var n = rapid.IntRange(0, 999).Draw(t, "n")
		assert.Equal(t, n, page_bcd_to_binary(page_binary_to_bcd(n)))
	})
}

func TestPageIsEmpty(t *testing.T) {
	var page = new_teletext_page()
	assert.True(t, page.is_empty())

	// A start-of-box mark in the header row does not count.
	page.text[0][5] = 0x0B
	assert.True(t, page.is_empty())

	page.text[1][5] = 0x0B
	assert.False(t, page.is_empty())
}

func TestPageReset(t *testing.T) {
	var page = new_teletext_page()
	page.text[3][7] = 'A'
	page.tainted = true
	page.hide_timestamp = 99
	page.frame_count = 2
	page.charset.set_x28(3)

	page.reset(5000)

	assert.Equal(t, int64(5000), page.show_timestamp)
	assert.Equal(t, int64(0), page.hide_timestamp)
	assert.False(t, page.tainted)
	assert.Equal(t, uint16(0), page.text[3][7])

	// The frame count and the charset state survive a reset.
	assert.Equal(t, uint32(2), page.frame_count)
	assert.Equal(t, byte(3), page.charset.g0_x28)
}
