package teletext

// Builders for Teletext packets and PES payloads as they appear on the
// wire (lsb-first), used by the decoder tests.

// Force odd parity on a 7-bit text code.
func odd_parity(c byte) byte {
	c &= 0x7F
	if PARITY_8[c] == 1 {
		return c
	}
	return c | 0x80
}

// wire_packet assembles a 44-byte Teletext packet for magazine m and
// row y and returns it in wire bit order.
func wire_packet(m int, y int, data [40]byte) []byte {
	var pkt [TELETEXT_PACKET_SIZE]byte

	pkt[0] = 0x55 // clock run-in
	pkt[1] = 0x27 // framing code

	var address = byte(y)<<3 | byte(m)&0x07
	pkt[2] = ham_8_4(address)
	pkt[3] = ham_8_4(address >> 4)

	copy(pkt[4:], data[:])

	for i := range pkt {
		pkt[i] = reverse8(pkt[i])
	}
	return pkt[:]
}

// header_data builds the 40 data bytes of a page header packet.
// page digits are BCD, charset is the C12..C14 field.
func header_data(page_tens byte, page_units byte, charset byte, serial bool) [40]byte {
	var data [40]byte

	data[0] = ham_8_4(page_units)
	data[1] = ham_8_4(page_tens)
	for i := 2; i < 7; i++ {
		data[i] = ham_8_4(0)
	}

	var control = charset << 1
	if serial {
		control |= 0x01
	}
	data[7] = ham_8_4(control)

	for i := 8; i < 40; i++ {
		data[i] = odd_parity(0x20)
	}
	return data
}

// row_data builds the 40 data bytes of a text row packet, padding with
// spaces.  Parity is applied to every byte.
func row_data(cells []byte) [40]byte {
	var data [40]byte
	for i := range data {
		if i < len(cells) {
			data[i] = odd_parity(cells[i])
		} else {
			data[i] = odd_parity(0x20)
		}
	}
	return data
}

// triplet_value packs the X/26 address, mode and data fields.
func triplet_value(tdata byte, tmode byte, taddr byte) uint32 {
	return uint32(tdata)<<11 | uint32(tmode)<<6 | uint32(taddr)
}

// enhancement_data builds the 40 data bytes of an X/26, X/28 or M/29
// packet from up to 13 raw triplet values.
func enhancement_data(designation byte, triplets []uint32) [40]byte {
	var data [40]byte
	data[0] = ham_8_4(designation)
	for j, t := range triplets {
		var enc = ham_24_18(t)
		data[1+3*j] = byte(enc)
		data[2+3*j] = byte(enc >> 8)
		data[3+3*j] = byte(enc >> 16)
	}
	return data
}

// data_unit frames a Teletext packet as a PES data unit.
func data_unit(id data_unit_id_t, unit []byte) []byte {
	var out = []byte{byte(id), byte(len(unit))}
	return append(out, unit...)
}

// pes_payload concatenates data units behind an EBU data identifier.
func pes_payload(units ...[]byte) []byte {
	var payload = []byte{0x10}
	for _, u := range units {
		payload = append(payload, u...)
	}
	return payload
}

// sample_collector gathers emitted samples for inspection.
type sample_collector struct {
	samples []*TextSample
}

func (c *sample_collector) emit(sample *TextSample) {
	c.samples = append(c.samples, sample)
}

func new_test_decoder(add_colours bool) (*Decoder, *sample_collector) {
	var collector = &sample_collector{}
	var decoder = NewDecoder(DecoderOptions{
		Emit:       collector.emit,
		AddColours: add_colours,
	})
	return decoder, collector
}
