package cea708

import "testing"

func buildPacketBytes(t *testing.T, packet DTVCCPacket) []byte {
	t.Helper()
	var ccData []byte
	if err := packet.WriteAsCCData(&ccData); err != nil {
		t.Fatal(err)
	}
	ccCount := len(ccData) / 3
	data := append([]byte{0x40 | byte(ccCount), 0xFF}, ccData...)
	return data
}

func samplePacket(t *testing.T) DTVCCPacket {
	t.Helper()
	service := NewService(1)
	for _, r := range "Hi!" {
		code, ok := CodeFromChar(r)
		if !ok {
			t.Fatalf("no Code for %q", r)
		}
		if err := service.PushCode(code); err != nil {
			t.Fatal(err)
		}
	}
	packet := NewDTVCCPacket(1)
	if err := packet.PushService(service); err != nil {
		t.Fatal(err)
	}
	return packet
}

func TestParserRoundTripSinglePacket(t *testing.T) {
	t.Parallel()
	packet := samplePacket(t)
	data := buildPacketBytes(t, packet)

	parser := NewParser()
	if err := parser.Push(data); err != nil {
		t.Fatal(err)
	}
	got, ok := parser.PopPacket()
	if !ok {
		t.Fatal("expected a popped packet")
	}
	if got.SeqNo != packet.SeqNo {
		t.Fatalf("seq no = %d, want %d", got.SeqNo, packet.SeqNo)
	}
	if len(got.Services) != 1 || got.Services[0].Number != 1 {
		t.Fatalf("got services %+v", got.Services)
	}
	if len(got.Services[0].Codes) != len(packet.Services[0].Codes) {
		t.Fatalf("got %d codes, want %d", len(got.Services[0].Codes), len(packet.Services[0].Codes))
	}
	if _, ok := parser.PopPacket(); ok {
		t.Fatal("expected no second packet")
	}
}

func TestParserShortDataIgnored(t *testing.T) {
	t.Parallel()
	parser := NewParser()
	if err := parser.Push([]byte{0x01, 0x02}); err != nil {
		t.Fatal(err)
	}
	if _, ok := parser.PopPacket(); ok {
		t.Fatal("expected no packet from short data")
	}
}

func TestParserProcessFlagUnset(t *testing.T) {
	t.Parallel()
	parser := NewParser()
	data := []byte{0x00, 0xFF, 0xFC, 0x80, 0x80}
	if err := parser.Push(data); err != nil {
		t.Fatal(err)
	}
	if _, ok := parser.PopPacket(); ok {
		t.Fatal("expected no packet when process_cc_data_flag is unset")
	}
}

func TestParserLengthMismatch(t *testing.T) {
	t.Parallel()
	parser := NewParser()
	// cc_count=2 implies 2*3+2=8 bytes, but only 5 are given.
	data := []byte{0x40 | 0x02, 0xFF, 0xFC, 0x80, 0x80}
	err := parser.Push(data)
	if err == nil {
		t.Fatal("expected a LengthMismatch error")
	}
	var lm *LengthMismatch
	if !asLengthMismatch(err, &lm) {
		t.Fatalf("got %v, want *LengthMismatch", err)
	}
}

func asLengthMismatch(err error, target **LengthMismatch) bool {
	lm, ok := err.(*LengthMismatch)
	if ok {
		*target = lm
	}
	return ok
}

func TestParserCea608AfterCea708(t *testing.T) {
	t.Parallel()
	parser := NewParser()
	// First triple is a CEA-708 DTVCC triple (type 0b10), second is a
	// CEA-608 field-1 triple (type 0b00): invalid ordering.
	data := []byte{
		0x40 | 0x02, 0xFF,
		0xFC | 0x02, 0x00, 0x00,
		0xFC | 0x00, 0x41, 0x42,
	}
	err := parser.Push(data)
	if err == nil {
		t.Fatal("expected a Cea608AfterCea708 error")
	}
	if _, ok := err.(*Cea608AfterCea708); !ok {
		t.Fatalf("got %T, want *Cea608AfterCea708", err)
	}
}

func TestParserCea608Surfaced(t *testing.T) {
	t.Parallel()
	parser := NewParser()
	parser.HandleCea608()
	data := []byte{
		0x40 | 0x01, 0xFF,
		0xFC | 0x00, 0x41, 0x42,
	}
	if err := parser.Push(data); err != nil {
		t.Fatal(err)
	}
	pairs := parser.Cea608()
	if len(pairs) != 1 {
		t.Fatalf("got %d pairs, want 1", len(pairs))
	}
	if pairs[0].Field != Cea608Field1 || pairs[0].Byte0 != 0x41 || pairs[0].Byte1 != 0x42 {
		t.Fatalf("got %+v", pairs[0])
	}
}

func TestParserFlushClearsState(t *testing.T) {
	t.Parallel()
	parser := NewParser()
	parser.HandleCea608()
	packet := samplePacket(t)
	data := buildPacketBytes(t, packet)
	if err := parser.Push(data); err != nil {
		t.Fatal(err)
	}
	parser.Flush()
	if _, ok := parser.PopPacket(); ok {
		t.Fatal("expected no packets after Flush")
	}
	if pairs := parser.Cea608(); pairs != nil {
		t.Fatalf("expected HandleCea608 opt-in to not survive Flush, got %+v", pairs)
	}
	if stats := parser.Stats(); stats.PacketsCompleted != 0 {
		t.Fatalf("Stats should reset after Flush, got %+v", stats)
	}
}
