package cea708

import "fmt"

// Service is a numbered service block within a DTVCCPacket. CEA-708 allows
// up to 63 services; service 1 is the primary caption service and service
// 2 the secondary caption service. Service 0 is the NULL service and is
// always empty.
type Service struct {
	Number uint8
	Codes  []Code
}

// NewService creates a Service with the given number. It panics if
// serviceNo is not in [0,63].
func NewService(serviceNo uint8) Service {
	if serviceNo >= 64 {
		panic(fmt.Sprintf("cea708: service numbers must be between 0 and 63 inclusive, not %d", serviceNo))
	}
	return Service{Number: serviceNo}
}

func (s Service) codesLen() int {
	n := 0
	for _, c := range s.Codes {
		n += c.ByteLen()
	}
	return n
}

// FreeSpace is the number of code bytes that can still be pushed into this
// Service before it overflows its 31-byte block limit.
func (s Service) FreeSpace() int {
	return 31 - s.codesLen()
}

// Len is the number of bytes this Service occupies when written, including
// its header byte(s). A Service with no codes, or service number 0, has
// length 0 and is omitted from the wire entirely.
func (s Service) Len() int {
	if s.Number == 0 || len(s.Codes) == 0 {
		return 0
	}
	hdrSize := 1
	if s.Number >= 7 {
		hdrSize = 2
	}
	return hdrSize + s.codesLen()
}

// IsEmpty reports whether this Service carries no codes.
func (s Service) IsEmpty() bool {
	return len(s.Codes) == 0
}

// PushCode appends a Code to the end of this Service.
func (s *Service) PushCode(code Code) error {
	if s.Number == 0 {
		return ErrReadOnly
	}
	if code.ByteLen() > s.FreeSpace() {
		return &WouldOverflow{Overflow: code.ByteLen() - s.FreeSpace()}
	}
	s.Codes = append(s.Codes, code)
	return nil
}

// ParseService parses a Service block out of data, which must begin with
// the block's own header byte(s).
func ParseService(data []byte) (Service, error) {
	if len(data) == 0 {
		return Service{}, &LengthMismatch{Expected: 1, Actual: 0}
	}
	b := data[0]
	serviceNo := (b & 0xE0) >> 5
	blockSize := int(b & 0x1F)
	idx := 1
	if serviceNo == 7 && blockSize != 0 {
		if len(data) == 1 {
			return Service{}, &LengthMismatch{Expected: 2, Actual: len(data)}
		}
		serviceNo = data[1] & 0x3F
		idx++
	}
	if len(data) < idx+blockSize {
		return Service{}, &LengthMismatch{Expected: idx + blockSize, Actual: len(data)}
	}
	if serviceNo == 0 {
		return Service{Number: 0}, nil
	}
	codes, err := CodeFromData(data[idx : idx+blockSize])
	if err != nil {
		return Service{}, codeErrorToLengthMismatch(err)
	}
	return Service{Number: serviceNo, Codes: codes}, nil
}

// Write appends the wire representation of s to w.
func (s Service) Write(w *[]byte) error {
	length := byte(s.codesLen() & 0x3F)
	if s.Number >= 7 {
		*w = append(*w, 0xE0|length, s.Number)
	} else {
		*w = append(*w, (s.Number&0x7)<<5|length)
	}
	for _, c := range s.Codes {
		if err := c.Write(w); err != nil {
			return err
		}
	}
	return nil
}

// DTVCCPacket is a single packet in the cc_data bitstream: a 2-bit
// sequence number plus a run of Service blocks.
type DTVCCPacket struct {
	SeqNo    uint8
	Services []Service
}

// NewDTVCCPacket creates a DTVCCPacket with the given sequence number. It
// panics if seqNo is not in [0,3].
func NewDTVCCPacket(seqNo uint8) DTVCCPacket {
	if seqNo > 3 {
		panic(fmt.Sprintf("cea708: dtvcc sequence numbers must be between 0 and 3 inclusive, not %d", seqNo))
	}
	return DTVCCPacket{SeqNo: seqNo}
}

// SequenceNo is the sequence number of this DTVCCPacket.
func (p DTVCCPacket) SequenceNo() uint8 {
	return p.SeqNo
}

// FreeSpace is the number of bytes that can still be pushed into this
// DTVCCPacket, which caps out at 128 bytes including its own header byte.
func (p DTVCCPacket) FreeSpace() int {
	return 128 - p.Len()
}

// Len is the number of bytes this DTVCCPacket occupies when written,
// including its header byte. An empty packet has length 0.
func (p DTVCCPacket) Len() int {
	servicesLen := 0
	for _, s := range p.Services {
		servicesLen += s.Len()
	}
	if servicesLen == 0 {
		return 0
	}
	return 1 + servicesLen
}

// PushService appends a completed Service block to this DTVCCPacket.
func (p *DTVCCPacket) PushService(service Service) error {
	if service.Len() > p.FreeSpace() {
		return &WouldOverflow{Overflow: service.Len() - p.FreeSpace()}
	}
	if service.IsEmpty() {
		return ErrEmptyService
	}
	p.Services = append(p.Services, service)
	return nil
}

func parseHdrByte(b byte) (seqNo uint8, length int) {
	seqNo = (b & 0xC0) >> 6
	l := b & 0x3F
	if l == 0 {
		return seqNo, 127
	}
	return seqNo, int(l)*2 - 1
}

func (p DTVCCPacket) hdrByte() byte {
	return (p.SeqNo&0x3)<<6 | byte(p.ccCount()&0x3F)
}

func (p DTVCCPacket) ccCount() int {
	return (p.Len() + 1) / 2
}

// ParseDTVCCPacket parses a DTVCCPacket out of data, which must begin with
// the packet's own header byte.
func ParseDTVCCPacket(data []byte) (DTVCCPacket, error) {
	if len(data) == 0 {
		return DTVCCPacket{}, &LengthMismatch{Expected: 1, Actual: 0}
	}
	seqNo, length := parseHdrByte(data[0])
	if length+1 < len(data) {
		return DTVCCPacket{}, &LengthMismatch{Expected: length + 1, Actual: len(data)}
	}

	offset := 1
	var services []Service
	for offset < len(data) {
		service, err := ParseService(data[offset:])
		if err != nil {
			return DTVCCPacket{}, err
		}
		if service.Len() == 0 {
			offset++
			continue
		}
		offset += service.Len()
		services = append(services, service)
	}
	return DTVCCPacket{SeqNo: seqNo, Services: services}, nil
}

// Write appends the wire representation of p to w, including the trailing
// pad byte required when p's total length is odd.
func (p DTVCCPacket) Write(w *[]byte) error {
	*w = append(*w, p.hdrByte())
	for _, s := range p.Services {
		if err := s.Write(w); err != nil {
			return err
		}
	}
	if p.Len()%2 == 1 {
		*w = append(*w, 0x00)
	}
	return nil
}

// WriteAsCCData appends p's services re-wrapped as cc_data triples
// (0xFF header triple followed by 0xF8|cc_valid|cc_type data triples),
// suitable for splicing directly into a Writer's pending byte stream.
func (p DTVCCPacket) WriteAsCCData(w *[]byte) error {
	if len(p.Services) == 0 {
		return nil
	}
	var written []byte
	for _, s := range p.Services {
		if err := s.Write(&written); err != nil {
			return err
		}
	}
	*w = append(*w, 0xFF, p.hdrByte(), written[0])
	rest := written[1:]
	for len(rest) > 0 {
		n := 2
		if n > len(rest) {
			n = len(rest)
		}
		const cc708Prefix = 0xF8 | 0x04 | 0b10
		*w = append(*w, cc708Prefix)
		*w = append(*w, rest[:n]...)
		if n == 1 {
			*w = append(*w, 0x00)
		}
		rest = rest[n:]
	}
	return nil
}

// CCCount is the number of cc_data triples p occupies once re-wrapped by
// WriteAsCCData.
func (p DTVCCPacket) CCCount() int {
	return p.ccCount()
}
