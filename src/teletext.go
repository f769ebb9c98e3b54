// Package teletext decodes EBU Teletext subtitles carried in DVB PES payloads.
package teletext

/*------------------------------------------------------------------
 *
 * Purpose:	Shared constants and public types for the Teletext
 *		subtitle decoder.
 *
 * Description: The decoder consumes PES payloads conveying EBU Teletext
 *		(ETSI EN 300 472), reassembles subtitle pages from the
 *		44-byte Teletext packets inside (ETSI EN 300 706) and
 *		emits timestamped UTF-8 text samples.
 *
 *------------------------------------------------------------------*/

// Size in bytes of a Teletext packet:
// clock run-in (1), framing code (1), address (2), data (40).
const TELETEXT_PACKET_SIZE = 44

// First and last EBU data_identifier values in PES packets conveying Teletext.
const (
	TELETEXT_PES_FIRST_EBU_DATA_ID = 0x10
	TELETEXT_PES_LAST_EBU_DATA_ID  = 0x1F
)

// Teletext data unit ids.  See ETSI EN 300 472.
type data_unit_id_t uint8

const (
	DATA_UNIT_NON_SUBTITLE    data_unit_id_t = 0x02 // EBU Teletext non-subtitle data
	DATA_UNIT_SUBTITLE        data_unit_id_t = 0x03 // EBU Teletext subtitle data
	DATA_UNIT_INVERTED        data_unit_id_t = 0x0C // EBU Teletext Inverted
	DATA_UNIT_VPS             data_unit_id_t = 0xC3 // VPS
	DATA_UNIT_CLOSED_CAPTIONS data_unit_id_t = 0xC5 // Closed Caption
	DATA_UNIT_STUFFING        data_unit_id_t = 0xFF // stuffing data
)

// Teletext transmission mode.
// Don't change values, they must match the binary format.
type trans_mode_t uint8

const (
	TRANSMODE_PARALLEL trans_mode_t = 0
	TRANSMODE_SERIAL   trans_mode_t = 1
)

// Timestamps are carried through the decoder in milliseconds.
const MILLISECOND_TIMESCALE = 1000

// TextSample is one rendered subtitle frame.
// Body is UTF-8; with colour output enabled it embeds
// <font color="#rrggbb"> tags and HTML entities for <, > and &.
type TextSample struct {
	ID      string
	StartMS int64
	EndMS   int64
	Body    string
}

// StreamInfo announces a Teletext subtitle stream the first time a
// PES payload for its PID is processed.
type StreamInfo struct {
	PID       uint32
	Timescale int
}

// EmitSampleFunc receives rendered samples as soon as they are complete.
type EmitSampleFunc func(sample *TextSample)

// StreamInfoFunc receives the one-time stream announcement per PID.
type StreamInfoFunc func(info *StreamInfo)
