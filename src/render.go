package teletext

/*------------------------------------------------------------------
 *
 * Purpose:	Render a completed Teletext page into a text sample.
 *
 * Description:	Rows 1..24 of the grid are trimmed to their boxed area,
 *		colour attributes become <font> tags when colour output
 *		is enabled, and the surviving rows are joined with a
 *		single space into one UTF-8 sample body.
 *
 *------------------------------------------------------------------*/

import (
	"strconv"
)

// Text foreground color codes.
// 0=black, 1=red, 2=green, 3=yellow, 4=blue, 5=magenta, 6=cyan, 7=white.
var TELETEXT_COLORS = [8]string{
	"#000000", "#ff0000", "#00ff00", "#ffff00",
	"#0000ff", "#ff00ff", "#00ffff", "#ffffff",
}

func append_ascii(line []uint16, s string) []uint16 {
	for i := 0; i < len(s); i++ {
		line = append(line, uint16(s[i]))
	}
	return line
}

/*-------------------------------------------------------------
 *
 * Name:	process_teletext_page
 *
 * Purpose:	Render one page buffer and emit the resulting sample.
 *
 * Inputs:	page		- Page buffer to render.
 *		page_number	- Page number, for diagnostics.
 *
 * Description:	An empty page (no boxed area in rows 1..24) emits
 *		nothing.  The sample id is the per-page frame count.
 *
 *--------------------------------------------------------------*/

func (d *Decoder) process_teletext_page(page *teletext_page_t, page_number uint16) {
	if page.is_empty() {
		return
	}

	// Adjust frame count and timestamps.
	page.frame_count++
	if page.show_timestamp > page.hide_timestamp {
		page.hide_timestamp = page.show_timestamp
	}

	var body string

	// Process page data.
	for row := 1; row < PAGE_ROWS_COUNT; row++ {
		var line []uint16

		// Anchors for string trimming purpose.
		var col_start = PAGE_COLUMNS_COUNT
		var col_stop = PAGE_COLUMNS_COUNT

		for col := PAGE_COLUMNS_COUNT - 1; col >= 0; col-- {
			if page.text[row][col] == 0x0B {
				col_start = col
				break
			}
		}

		if col_start == PAGE_COLUMNS_COUNT {
			// Line is empty.
			continue
		}

		for col := col_start + 1; col < PAGE_COLUMNS_COUNT; col++ {
			if page.text[row][col] > 0x20 {
				if col_stop == PAGE_COLUMNS_COUNT {
					col_start = col
				}
				col_stop = col
			}
			if page.text[row][col] == 0x0A {
				break
			}
		}

		if col_stop == PAGE_COLUMNS_COUNT {
			// Line is empty.
			continue
		}

		// ETS 300 706, chapter 12.2: Alpha White ("Set-After") is the
		// start-of-row default condition; colour changes before the
		// start box mark only update the running foreground colour.
		var foreground_color uint16 = 0x07
		var font_tag_opened = false

		for col := 0; col <= col_stop; col++ {
			var v = page.text[row][col]

			if col < col_start {
				if v <= 0x07 {
					foreground_color = v
				}
			}

			if col == col_start {
				if foreground_color != 0x07 && d.add_colours {
					line = append_ascii(line, "<font color=\"")
					line = append_ascii(line, TELETEXT_COLORS[foreground_color])
					line = append_ascii(line, "\">")
					font_tag_opened = true
				}
			}

			if col >= col_start {
				if v <= 0x07 {
					// ETS 300 706, chapter 12.2: unless operating in
					// "Hold Mosaics" mode, each character space occupied
					// by a spacing attribute is displayed as a SPACE.
					if d.add_colours {
						if font_tag_opened {
							line = append_ascii(line, "</font> ")
							font_tag_opened = false
						}
						if v > 0x00 && v < 0x07 {
							line = append_ascii(line, "<font color=\"")
							line = append_ascii(line, TELETEXT_COLORS[v])
							line = append_ascii(line, "\">")
							font_tag_opened = true
						}
					} else {
						v = 0x20
					}
				}

				// Translate unsafe HTML tag chars into entities when in
				// colour mode.
				if v >= 0x20 && d.add_colours {
					switch v {
					case '<':
						line = append_ascii(line, "&lt;")
						v = 0
					case '>':
						line = append_ascii(line, "&gt;")
						v = 0
					case '&':
						line = append_ascii(line, "&amp;")
						v = 0
					}
				}

				if v >= 0x20 {
					line = append(line, v)
				}
			}
		}

		// No tag will be left opened!
		if d.add_colours && font_tag_opened {
			line = append_ascii(line, "</font>")
		}

		// Line is now complete.
		var line_utf8 = ucs2_to_utf8(line)
		if len(line_utf8) > 0 {
			if len(body) > 0 {
				body += " "
			}
			body += line_utf8
		}
	}

	d.logger.Debug("rendered teletext page",
		"page", page_bcd_to_binary(int(page_number)),
		"frame", page.frame_count,
		"show_ms", page.show_timestamp,
		"hide_ms", page.hide_timestamp)

	if d.emit != nil {
		d.emit(&TextSample{
			ID:      strconv.FormatUint(uint64(page.frame_count), 10),
			StartMS: page.show_timestamp,
			EndMS:   page.hide_timestamp,
			Body:    body,
		})
	}
}
