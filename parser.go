package cea708

import "errors"

// Stats is a snapshot of a Parser's lifetime counters.
type Stats struct {
	// PacketsCompleted is the number of DTVCCPacket values successfully
	// assembled and queued for PopPacket.
	PacketsCompleted int
	// PacketsDiscarded is the number of partial packets dropped because a
	// new header byte truncated them before they were fully received.
	PacketsDiscarded int
	// Cea608PairsSurfaced is the number of CEA-608 byte pairs returned via
	// Cea608 across the lifetime of the parser (only counted while
	// HandleCea608 is active).
	Cea608PairsSurfaced int
}

// Parser reassembles a stream of cc_data byte sequences into individual
// DTVCCPackets, carrying partial packets across Push calls.
type Parser struct {
	pendingData          []byte
	packets              []DTVCCPacket
	cea608               []Cea608
	trackCea608          bool
	haveInitialCCPHeader bool
	ccpBytesNeeded       int

	stats Stats
}

// NewParser creates an empty Parser.
func NewParser() *Parser {
	return &Parser{}
}

// HandleCea608 enables surfacing of CEA-608 compatibility byte pairs via
// Cea608. Once enabled it cannot be disabled except by Flush.
func (p *Parser) HandleCea608() {
	p.trackCea608 = true
	p.cea608 = p.cea608[:0]
}

// Push feeds one complete cc_data byte sequence (from the
// process_cc_data_flag/cc_count header byte through the final triple) into
// the parser.
//
// Returns LengthMismatch if the data's length does not match the number of
// triples its own header advertises, and Cea608AfterCea708 if CEA-608
// compatibility bytes are found after CEA-708 triples within data.
func (p *Parser) Push(data []byte) error {
	if p.trackCea608 {
		p.cea608 = p.cea608[:0]
	}

	if len(data) < 5 {
		return nil
	}
	processCCDataFlag := data[0]&0x40 > 0
	if !processCCDataFlag {
		return nil
	}

	ccCount := int(data[0] & 0x1F)
	if ccCount == 0 {
		return nil
	}
	if ccCount*3+2 != len(data) {
		return &LengthMismatch{Expected: ccCount*3 + 2, Actual: len(data)}
	}

	var ccpData []byte
	inDTVCC := false

	var pendingData []byte
	for i := 0; i*2 < len(p.pendingData); i++ {
		if i == 0 {
			pendingData = append(pendingData, 0xFF)
		} else {
			pendingData = append(pendingData, 0xFE)
		}
		chunk := p.pendingData[i*2:]
		if len(chunk) > 2 {
			chunk = chunk[:2]
		}
		pendingData = append(pendingData, chunk...)
		if len(chunk) == 1 {
			pendingData = append(pendingData, 0x00)
		}
	}

	ccpOffset := -1
	triples := data[2:]
	for i := 0; i*3+3 <= len(triples); i++ {
		triple := triples[i*3 : i*3+3]
		ccValid := triple[0]&0x04 == 0x04
		ccType := triple[0] & 0x3
		if ccType&0b10 > 0 {
			inDTVCC = true
		}
		if !ccValid {
			continue
		}
		if !inDTVCC && (ccType == 0b00 || ccType == 0b01) {
			if p.trackCea608 {
				var field Cea608Field
				if ccType == 0b00 {
					field = Cea608Field1
				} else {
					field = Cea608Field2
				}
				p.cea608 = append(p.cea608, Cea608{Field: field, Byte0: triple[1], Byte1: triple[2]})
				p.stats.Cea608PairsSurfaced++
			}
			continue
		}
		if inDTVCC && (ccType == 0b00 || ccType == 0b01) {
			return &Cea608AfterCea708{BytePos: i * 3}
		}
		if ccpOffset == -1 {
			ccpOffset = i * 3
		}
	}
	if ccpOffset == -1 {
		return nil
	}
	ccpOffset += 2

	stream := append(append([]byte(nil), pendingData...), data[ccpOffset:]...)
	inDTVCC = false
	for i := 0; i+3 <= len(stream); i += 3 {
		byte0, byte1, byte2 := stream[i], stream[i+1], stream[i+2]
		ccValid := byte0&0x04 == 0x04
		ccType := byte0 & 0x3
		if ccType&0b10 > 0 {
			inDTVCC = true
		}
		if !ccValid {
			continue
		}
		if !inDTVCC && (ccType == 0b00 || ccType == 0b01) {
			continue
		}

		if ccType&0b11 == 0b11 {
			p.haveInitialCCPHeader = true
			packet, err := ParseDTVCCPacket(ccpData)
			if err == nil {
				p.packets = append(p.packets, packet)
				p.stats.PacketsCompleted++
			} else if len(ccpData) > 0 {
				var lm *LengthMismatch
				if errors.As(err, &lm) {
					p.stats.PacketsDiscarded++
				}
			}
			inDTVCC = false
			ccpData = nil
			_, packetLen := parseHdrByte(byte1)
			p.ccpBytesNeeded = packetLen + 1
		}

		if p.haveInitialCCPHeader {
			if p.ccpBytesNeeded > 0 {
				ccpData = append(ccpData, byte1)
				p.ccpBytesNeeded--
			}
			if p.ccpBytesNeeded > 0 {
				ccpData = append(ccpData, byte2)
				p.ccpBytesNeeded--
			}
		}
	}

	if p.ccpBytesNeeded == 0 {
		packet, err := ParseDTVCCPacket(ccpData)
		if err == nil {
			p.packets = append(p.packets, packet)
			p.stats.PacketsCompleted++
		}
		ccpData = nil
	}

	p.pendingData = ccpData
	return nil
}

// Flush resets the parser to its zero value, discarding any partial
// packet and any HandleCea608 opt-in.
func (p *Parser) Flush() {
	*p = Parser{}
}

// PopPacket removes and returns the oldest fully-assembled DTVCCPacket, or
// ok=false if none is available.
func (p *Parser) PopPacket() (DTVCCPacket, bool) {
	if len(p.packets) == 0 {
		return DTVCCPacket{}, false
	}
	packet := p.packets[0]
	p.packets = p.packets[1:]
	return packet, true
}

// Cea608 returns the CEA-608 byte pairs surfaced by the most recent Push
// call, or nil if HandleCea608 has not been called.
func (p *Parser) Cea608() []Cea608 {
	if !p.trackCea608 {
		return nil
	}
	return p.cea608
}

// Stats returns a snapshot of the parser's lifetime counters.
func (p *Parser) Stats() Stats {
	return p.stats
}
