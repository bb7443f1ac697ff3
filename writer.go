package cea708

import "time"

// Writer paces DTVCCPacket and Cea608 data out into cc_data byte
// sequences at a rate bounded by a Framerate's byte budget, carrying
// partially-written packets across Write calls.
type Writer struct {
	outputCea608Padding bool
	outputPadding       bool

	packets           []DTVCCPacket
	pendingPacketData []byte
	cea608Field1      []Cea608
	cea608Field2      []Cea608
	lastWasField1     bool
}

// NewWriter creates an empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// SetOutputCea608Padding controls whether Write emits padding CEA-608 byte
// pairs (0xF8/0xF9, byte0=byte1=0x80) when not enough real data has been
// provided to fill a frame's CEA-608 budget.
func (w *Writer) SetOutputCea608Padding(v bool) { w.outputCea608Padding = v }

// OutputCea608Padding reports whether padding CEA-608 bytes will be used.
func (w *Writer) OutputCea608Padding() bool { return w.outputCea608Padding }

// SetOutputPadding controls whether Write emits padding DTVCC bytes
// (0xFA, 0x00, 0x00) when not enough packet data has been provided to
// fill a frame's cc_count budget.
func (w *Writer) SetOutputPadding(v bool) { w.outputPadding = v }

// OutputPadding reports whether padding DTVCC bytes will be produced.
func (w *Writer) OutputPadding() bool { return w.outputPadding }

// PushPacket queues a DTVCCPacket for writing.
func (w *Writer) PushPacket(packet DTVCCPacket) {
	w.packets = append(w.packets, packet)
}

// PushCea608 queues a CEA-608 byte pair for writing. Pairs equal to the
// idle value (0x80, 0x80) are dropped, matching the bitstream's own
// definition of an absent byte pair.
func (w *Writer) PushCea608(pair Cea608) {
	if pair.Byte0 == 0x80 && pair.Byte1 == 0x80 {
		return
	}
	switch pair.Field {
	case Cea608Field1:
		w.cea608Field1 = append(w.cea608Field1, pair)
	case Cea608Field2:
		w.cea608Field2 = append(w.cea608Field2, pair)
	}
}

// Flush discards all queued packets and byte pairs.
func (w *Writer) Flush() {
	w.packets = nil
	w.pendingPacketData = nil
	w.cea608Field1 = nil
	w.cea608Field2 = nil
}

// BufferedCea608Field1Duration is the playout duration of the CEA-608
// field-1 byte pairs currently queued, at CEA-608's fixed bitrate.
func (w *Writer) BufferedCea608Field1Duration() time.Duration {
	return cea608PairsDuration(len(w.cea608Field1))
}

// BufferedCea608Field2Duration is the playout duration of the CEA-608
// field-2 byte pairs currently queued, at CEA-608's fixed bitrate.
func (w *Writer) BufferedCea608Field2Duration() time.Duration {
	return cea608PairsDuration(len(w.cea608Field2))
}

func cea608PairsDuration(n int) time.Duration {
	// CEA-608 has a max bitrate of 60000/1001 byte pairs/s.
	micros := uint64(n) * 1001 * 1_000_000 / 60000
	if uint64(n)*1001*1_000_000%60000 != 0 {
		micros++
	}
	return time.Duration(micros) * time.Microsecond
}

func (w *Writer) bufferedPacketBytes() int {
	n := len(w.pendingPacketData)
	for _, p := range w.packets {
		n += p.Len()
	}
	return n
}

// BufferedPacketDuration is the playout duration of the DTVCC packet data
// currently queued, at CEA-708's fixed bitrate.
func (w *Writer) BufferedPacketDuration() time.Duration {
	triples := uint64(w.bufferedPacketBytes()+1) / 2
	num := triples * 2 * 1001 * 1_000_000
	const den = 9_600_000 / 8
	micros := num / den
	if num%den != 0 {
		micros++
	}
	return time.Duration(micros) * time.Microsecond
}

// Write appends one cc_data byte sequence (header byte, 0xFF marker byte,
// then cc_count triples) to w, consuming queued CEA-608 pairs and
// DTVCCPacket data. framerate determines how many triples are written.
func (w *Writer) Write(framerate Framerate, out *[]byte) error {
	cea608PairRem := framerate.CEA608PairsPerFrame()
	if !w.outputCea608Padding {
		want := len(w.cea608Field1)
		if alt := len(w.cea608Field2) * 2; alt > want {
			want = alt
		}
		if want < cea608PairRem {
			cea608PairRem = want
		}
	}

	ccCountRem := framerate.MaxCCCount()
	if !w.outputPadding {
		available := cea608PairRem + len(w.pendingPacketData)/3
		for _, p := range w.packets {
			available += p.CCCount()
		}
		if available < ccCountRem {
			ccCountRem = available
		}
	}

	const reserved = 0x80
	const processCCFlag = 0x40
	hdrPos := len(*out)
	*out = append(*out, reserved|processCCFlag|byte(ccCountRem&0x1F), 0xFF)

	for ccCountRem > 0 {
		if cea608PairRem > 0 {
			if !w.lastWasField1 {
				if len(w.cea608Field1) > 0 {
					pair := w.cea608Field1[0]
					w.cea608Field1 = w.cea608Field1[1:]
					*out = append(*out, 0xFC, pair.Byte0, pair.Byte1)
					ccCountRem--
				} else if len(w.cea608Field2) > 0 {
					*out = append(*out, 0xFC, 0x80, 0x80)
					ccCountRem--
				} else if w.outputCea608Padding {
					*out = append(*out, 0xF8, 0x80, 0x80)
					ccCountRem--
				}
				w.lastWasField1 = true
			} else {
				if len(w.cea608Field2) > 0 {
					pair := w.cea608Field2[0]
					w.cea608Field2 = w.cea608Field2[1:]
					*out = append(*out, 0xFD, pair.Byte0, pair.Byte1)
					ccCountRem--
				} else if w.outputCea608Padding {
					*out = append(*out, 0xF9, 0x80, 0x80)
					ccCountRem--
				}
				w.lastWasField1 = false
			}
			cea608PairRem--
			continue
		}

		packetOffset := 0
		for packetOffset >= len(w.pendingPacketData) {
			if len(w.packets) == 0 {
				break
			}
			packet := w.packets[0]
			w.packets = w.packets[1:]
			if err := packet.WriteAsCCData(&w.pendingPacketData); err != nil {
				return err
			}
		}

		for packetOffset < len(w.pendingPacketData) && ccCountRem > 0 {
			*out = append(*out, w.pendingPacketData[packetOffset:packetOffset+3]...)
			packetOffset += 3
			ccCountRem--
		}

		w.pendingPacketData = append([]byte(nil), w.pendingPacketData[packetOffset:]...)

		if len(w.packets) == 0 && len(w.pendingPacketData) == 0 {
			if w.outputPadding {
				for ccCountRem > 0 {
					*out = append(*out, 0xFA, 0x00, 0x00)
					ccCountRem--
				}
			}
			break
		}
	}
	// A CEA-608 turn with nothing to send writes no triple, so the header
	// carries the number of triples actually written.
	written := (len(*out) - hdrPos - 2) / 3
	(*out)[hdrPos] = reserved | processCCFlag | byte(written&0x1F)
	return nil
}
