package teletext

/*------------------------------------------------------------------
 *
 * Purpose:	Teletext subtitle decoder: PES data unit dispatch and
 *		page assembly.
 *
 * Description:	A Decoder owns one analysis context per PID.  PES
 *		payloads are split into data units, Teletext packets are
 *		bit-reversed and interpreted by magazine and row, and
 *		completed pages are rendered into text samples.
 *
 * References:	ETSI EN 300 472 (Teletext in DVB bitstreams)
 *		ETSI EN 300 706 (Enhanced Teletext specification)
 *
 *------------------------------------------------------------------*/

import (
	"io"

	"github.com/charmbracelet/log"
)

// Analysis context for one PID.
type pid_context_t struct {
	receiving_data bool         // incoming data should be processed or ignored
	trans_mode     trans_mode_t // teletext transmission mode
	current_page   uint16       // current teletext page number
	pages          map[uint16]*teletext_page_t
}

func new_pid_context() *pid_context_t {
	return &pid_context_t{
		trans_mode: TRANSMODE_SERIAL,
		pages:      make(map[uint16]*teletext_page_t),
	}
}

// Working page buffer for a page number, created on first reference.
func (pc *pid_context_t) page(page_number uint16) *teletext_page_t {
	var page = pc.pages[page_number]
	if page == nil {
		page = new_teletext_page()
		pc.pages[page_number] = page
	}
	return page
}

// Decoder reassembles Teletext subtitle pages from PES payloads and
// hands rendered samples to the configured sink.  All methods must be
// called from a single goroutine; the decoder never blocks.
type Decoder struct {
	emit        EmitSampleFunc
	stream_info StreamInfoFunc
	add_colours bool
	logger      *log.Logger

	last_pts  int64
	contexts  map[uint32]*pid_context_t
	announced map[uint32]bool
}

// DecoderOptions configures a Decoder.  All fields are optional; without
// Emit, rendered samples are discarded.
type DecoderOptions struct {
	Emit       EmitSampleFunc // sink for rendered samples
	StreamInfo StreamInfoFunc // optional one-time per-PID announcement
	AddColours bool           // emit <font> tags and HTML entities
	Logger     *log.Logger    // optional debug logger
}

func NewDecoder(opts DecoderOptions) *Decoder {
	var logger = opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Decoder{
		emit:        opts.Emit,
		stream_info: opts.StreamInfo,
		add_colours: opts.AddColours,
		logger:      logger,
		contexts:    make(map[uint32]*pid_context_t),
		announced:   make(map[uint32]bool),
	}
}

func (d *Decoder) context(pid uint32) *pid_context_t {
	var pc = d.contexts[pid]
	if pc == nil {
		pc = new_pid_context()
		d.contexts[pid] = pc
	}
	return pc
}

/*-------------------------------------------------------------
 *
 * Name:	ProcessPES
 *
 * Purpose:	Consume one PES payload carrying EBU Teletext data.
 *
 * Inputs:	pid	- PID the payload was demultiplexed from.
 *		pts	- Presentation timestamp in milliseconds.
 *		payload	- PES payload, starting at the data_identifier.
 *
 * Description:	Iterates the data units inside the payload.  Units of
 *		44 bytes carrying subtitle or non-subtitle Teletext are
 *		bit-reversed and decoded; everything else is skipped.
 *		A truncated unit terminates the iteration.  Samples for
 *		any page completed by this payload are emitted before
 *		the call returns.
 *
 *--------------------------------------------------------------*/

func (d *Decoder) ProcessPES(pid uint32, pts int64, payload []byte) {
	if d.stream_info != nil && !d.announced[pid] {
		d.announced[pid] = true
		d.stream_info(&StreamInfo{PID: pid, Timescale: MILLISECOND_TIMESCALE})
	}

	// The first byte is a data_identifier.
	if len(payload) < 1 || payload[0] < TELETEXT_PES_FIRST_EBU_DATA_ID ||
		payload[0] > TELETEXT_PES_LAST_EBU_DATA_ID {
		// Not a valid Teletext PES packet.
		d.logger.Debug("PES payload without EBU data identifier", "pid", pid)
		return
	}

	var pc = d.context(pid)
	var data = payload[1:]

	// Loop on all data units inside the PES payload.
	for len(data) >= 2 {
		var unit_id = data_unit_id_t(data[0])
		var unit_size = int(data[1])
		data = data[2:]

		if unit_size > len(data) {
			d.logger.Debug("truncated data unit", "pid", pid, "unit_id", unit_id, "unit_size", unit_size)
			break
		}

		// Filter Teletext packets.
		if unit_size == TELETEXT_PACKET_SIZE &&
			(unit_id == DATA_UNIT_NON_SUBTITLE || unit_id == DATA_UNIT_SUBTITLE) {
			// Reverse bitwise endianess of each data byte via lookup
			// table, ETS 300 706, chapter 7.1.
			var pkt [TELETEXT_PACKET_SIZE]byte
			for i := 0; i < unit_size; i++ {
				pkt[i] = reverse8(data[i])
			}

			d.process_teletext_packet(pc, unit_id, pkt[:], pts)
		}

		// Point to next data unit.
		data = data[unit_size:]
	}
}

/*-------------------------------------------------------------
 *
 * Name:	process_teletext_packet
 *
 * Purpose:	Interpret one 44-byte Teletext packet.
 *
 * Inputs:	pc	- PID context owning the page buffers.
 *		unit_id	- Data unit id the packet arrived in.
 *		pkt	- Packet bytes, already bit-reversed.
 *		pts	- Presentation timestamp in milliseconds.
 *
 *--------------------------------------------------------------*/

func (d *Decoder) process_teletext_packet(pc *pid_context_t, unit_id data_unit_id_t, pkt []byte, pts int64) {
	d.last_pts = pts

	// Structure of a Teletext packet.  See ETSI 300 706, section 7.1.
	// - Clock run-in: 1 byte
	// - Framing code: 1 byte
	// - Address: 2 bytes
	// - Data: 40 bytes

	// Variable names conform to ETS 300 706, chapter 7.1.2.
	var address = unham_8_4(pkt[3])<<4 | unham_8_4(pkt[2])
	var m = uint16(address & 0x07)
	if m == 0 {
		m = 8
	}
	var y = (address >> 3) & 0x1F
	var data = pkt[4:]

	var designation_code byte
	if y > 25 {
		designation_code = unham_8_4(data[0])
	}

	switch {
	case y == 0:
		// Page number and control bits.
		var page_number = m<<8 | uint16(unham_8_4(data[1]))<<4 | uint16(unham_8_4(data[0]))
		var charset = (unham_8_4(data[7]) & 0x0E) >> 1

		// ETS 300 706, chapter 9.3.1.3:
		// When set to '1' the service is designated to be in Serial mode
		// and the transmission of a page is terminated by the next page
		// header with a different page number.
		// When set to '0' the service is designated to be in Parallel
		// mode and the transmission of a page is terminated by the next
		// page header with a different page number but the same magazine
		// number.
		pc.trans_mode = trans_mode_t(unham_8_4(data[7]) & 0x01)

		// In parallel mode subtitle and non-subtitle magazines
		// interleave; headers from non-subtitle units carry nothing of
		// interest here.
		if pc.trans_mode == TRANSMODE_PARALLEL && unit_id != DATA_UNIT_SUBTITLE {
			return
		}

		// Terminate the page in progress, if any.  The closed page is
		// rendered and recycled right away.  Both modes compare the
		// page digits only; parallel mode additionally requires the
		// same magazine.
		if pc.receiving_data &&
			((pc.trans_mode == TRANSMODE_SERIAL &&
				page_of(int(page_number)) != page_of(int(pc.current_page))) ||
				(pc.trans_mode == TRANSMODE_PARALLEL &&
					page_of(int(page_number)) != page_of(int(pc.current_page)) &&
					int(m) == magazine_of(int(pc.current_page)))) {
			pc.receiving_data = false

			var prev = pc.pages[pc.current_page]
			if prev != nil && prev.tainted {
				// Contract 40 ms (1 frame @25 fps) so the subtitle
				// does not hide the previous video frame.
				prev.hide_timestamp = pts - 40
				d.process_teletext_page(prev, pc.current_page)
				prev.reset(pts)
			}
		}

		// A new frame starts on this page.  If the page buffer still
		// holds a frame in progress, flush it now.
		var page = pc.page(page_number)
		if page.tainted {
			page.hide_timestamp = pts - 40
			d.process_teletext_page(page, page_number)
		}

		// Start new page.
		pc.current_page = page_number
		page.reset(pts)
		page.charset.reset_x28(charset)
		pc.receiving_data = true

	case int(m) == magazine_of(int(pc.current_page)) && y >= 1 && y <= 23 && pc.receiving_data:
		// ETS 300 706, chapter 9.4.1: packets X/26 address individual
		// character locations and overwrite the Level 1 page.
		// ETS 300 706, annex B.2.2: packets with Y = 26 are transmitted
		// before any packets with Y = 1 to Y = 25, so a grid cell may
		// already contain a character received in packet 26; skip the
		// original G0 character then.
		var page = pc.page(pc.current_page)
		for i := 0; i < 40; i++ {
			if page.text[y][i] == 0x00 {
				page.text[y][i] = page.charset.teletext_to_ucs2(data[i])
			}
		}
		page.tainted = true

	case int(m) == magazine_of(int(pc.current_page)) && y == 26 && pc.receiving_data:
		// ETS 300 706, chapter 12.3.2: X/26 definition.
		d.process_x26_packet(pc, data)

	case int(m) == magazine_of(int(pc.current_page)) && y == 28 && pc.receiving_data:
		if designation_code == 0 || designation_code == 4 {
			// ETS 300 706, chapter 9.4.2: Packet X/28/0 Format 1
			// ETS 300 706, chapter 9.4.7: Packet X/28/4
			var triplet0 = unham_24_18(uint32(data[3])<<16 | uint32(data[2])<<8 | uint32(data[1]))
			if triplet0 == UNHAM_24_18_ERROR {
				return
			}
			// Format 1 only.
			if triplet0&0x0F == 0x00 {
				var page = pc.page(pc.current_page)
				page.charset.set_g0_charset(triplet0)
				page.charset.set_x28(byte((triplet0 & 0x3F80) >> 7))
			}
		}

	case int(m) == magazine_of(int(pc.current_page)) && y == 29:
		if designation_code == 0 || designation_code == 4 {
			// ETS 300 706, chapter 9.5.1: Packet M/29/0
			// ETS 300 706, chapter 9.5.3: Packet M/29/4
			var triplet0 = unham_24_18(uint32(data[3])<<16 | uint32(data[2])<<8 | uint32(data[1]))
			if triplet0 == UNHAM_24_18_ERROR {
				return
			}
			// ETS 300 706, table 11 and table 13.
			if triplet0&0xFF == 0x00 {
				var page = pc.page(pc.current_page)
				page.charset.set_g0_charset(triplet0)
				page.charset.set_m29(byte((triplet0 & 0x3F80) >> 7))
			}
		}

	case m == 8 && y == 30:
		// ETS 300 706, chapter 9.8: Broadcast Service Data Packets.
		// Programme identification and absolute time stamps; not
		// interesting for subtitles.
	}
}

// Character overlay from packet X/26, ETS 300 706 chapter 12.3.1 table 27.
func (d *Decoder) process_x26_packet(pc *pid_context_t, data []byte) {
	var x26_row int
	var x26_col int

	var triplets [13]uint32
	for i, j := 1, 0; i < 40; i, j = i+3, j+1 {
		triplets[j] = unham_24_18(uint32(data[i+2])<<16 | uint32(data[i+1])<<8 | uint32(data[i]))
	}

	var page = pc.page(pc.current_page)

	for j := 0; j < 13; j++ {
		if triplets[j] == UNHAM_24_18_ERROR {
			// Uncorrectable error detected, skip group.
			continue
		}

		var tdata = byte((triplets[j] & 0x3F800) >> 11)
		var tmode = byte((triplets[j] & 0x7C0) >> 6)
		var taddr = byte(triplets[j] & 0x3F)
		var row_address_group = taddr >= 40 && taddr <= 63

		// Set active position.
		if tmode == 0x04 && row_address_group {
			x26_row = int(taddr) - 40
			if x26_row == 0 {
				x26_row = 24
			}
			x26_col = 0
		}

		// Termination marker.
		if tmode >= 0x11 && tmode <= 0x1F && row_address_group {
			break
		}

		// Character from the G2 set.
		if tmode == 0x0F && !row_address_group {
			x26_col = int(taddr)
			if tdata > 31 {
				page.text[x26_row][x26_col] = page.charset.g2_to_ucs2(tdata)
			}
		}

		// G0 character with diacritical mark.
		if tmode >= 0x11 && tmode <= 0x1F && !row_address_group {
			x26_col = int(taddr)
			page.text[x26_row][x26_col] = page.charset.g2_accent_to_ucs2(tdata, tmode-0x11)
		}
	}
}

/*-------------------------------------------------------------
 *
 * Name:	Flush
 *
 * Purpose:	Emit all buffered tainted pages, using the last
 *		observed PTS as the hide timestamp.
 *
 * Description:	Pages are visited in map iteration order; callers must
 *		not depend on cross-page ordering.
 *
 *--------------------------------------------------------------*/

func (d *Decoder) Flush() {
	for _, pc := range d.contexts {
		for page_number, page := range pc.pages {
			if page.tainted {
				// No more frames coming, so no 40 ms contraction here.
				page.hide_timestamp = d.last_pts
				d.process_teletext_page(page, page_number)
				page.reset(d.last_pts)
			}
		}
	}
}

// Reset discards all state for one PID.
func (d *Decoder) Reset(pid uint32) {
	delete(d.contexts, pid)
}
