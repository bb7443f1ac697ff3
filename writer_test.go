package cea708

import "testing"

func TestWriterRoundTripWithParser(t *testing.T) {
	t.Parallel()
	packet := samplePacket(t)

	w := NewWriter()
	w.PushPacket(packet)

	var out []byte
	if err := w.Write(NewFramerate(30, 1), &out); err != nil {
		t.Fatal(err)
	}

	parser := NewParser()
	if err := parser.Push(out); err != nil {
		t.Fatal(err)
	}
	got, ok := parser.PopPacket()
	if !ok {
		t.Fatal("expected a packet to round trip through the writer and parser")
	}
	if len(got.Services) != 1 || len(got.Services[0].Codes) != len(packet.Services[0].Codes) {
		t.Fatalf("got %+v", got)
	}
}

func TestWriterCea608Pacing(t *testing.T) {
	t.Parallel()
	w := NewWriter()
	w.PushCea608(Cea608{Field: Cea608Field1, Byte0: 0x41, Byte1: 0x42})
	w.PushCea608(Cea608{Field: Cea608Field2, Byte0: 0x43, Byte1: 0x44})

	var out []byte
	// 60fps budgets exactly 1 cea608 pair per frame.
	if err := w.Write(NewFramerate(60, 1), &out); err != nil {
		t.Fatal(err)
	}
	if len(out) < 2+3 {
		t.Fatalf("output too short: % x", out)
	}
	if out[2] != 0xFC {
		t.Fatalf("first triple marker = %#x, want 0xFC (field 1)", out[2])
	}
}

func TestWriterDropsIdlePair(t *testing.T) {
	t.Parallel()
	w := NewWriter()
	w.PushCea608(Cea608{Field: Cea608Field1, Byte0: 0x80, Byte1: 0x80})
	if len(w.cea608Field1) != 0 {
		t.Fatal("idle byte pair (0x80, 0x80) should be dropped")
	}
}

func TestWriterPaddingDisabledByDefault(t *testing.T) {
	t.Parallel()
	w := NewWriter()
	var out []byte
	if err := w.Write(NewFramerate(30, 1), &out); err != nil {
		t.Fatal(err)
	}
	// With nothing queued and padding disabled, only the 2-byte cc_data
	// header is written.
	if len(out) != 2 {
		t.Fatalf("got %d bytes, want 2 (header only): % x", len(out), out)
	}
}

func TestWriterPaddingEnabled(t *testing.T) {
	t.Parallel()
	w := NewWriter()
	w.SetOutputPadding(true)
	var out []byte
	if err := w.Write(NewFramerate(30, 1), &out); err != nil {
		t.Fatal(err)
	}
	wantTriples := NewFramerate(30, 1).MaxCCCount()
	if len(out) != 2+wantTriples*3 {
		t.Fatalf("got %d bytes, want %d", len(out), 2+wantTriples*3)
	}
}

func TestWriterBufferedDurations(t *testing.T) {
	t.Parallel()
	w := NewWriter()
	if w.BufferedCea608Field1Duration() != 0 {
		t.Fatal("empty writer should report zero duration")
	}
	w.PushCea608(Cea608{Field: Cea608Field1, Byte0: 0x41, Byte1: 0x42})
	if w.BufferedCea608Field1Duration() <= 0 {
		t.Fatal("expected a positive duration after pushing a pair")
	}
}
