package cea708

import (
	"reflect"
	"testing"
)

func TestCodeFromDataG0(t *testing.T) {
	t.Parallel()
	codes, err := CodeFromData([]byte{0x41})
	if err != nil {
		t.Fatal(err)
	}
	if len(codes) != 1 || codes[0].ID != CodeChar || codes[0].Rune != 'A' {
		t.Fatalf("got %+v", codes)
	}
}

func TestCodeFromDataG1(t *testing.T) {
	t.Parallel()
	codes, err := CodeFromData([]byte{0xA0})
	if err != nil {
		t.Fatal(err)
	}
	if codes[0].Rune != ' ' {
		t.Fatalf("got rune %q, want NBSP", codes[0].Rune)
	}
}

func TestCodeFromDataReservedC0Unknown(t *testing.T) {
	t.Parallel()
	// 0x11-0x17 and 0x19-0x1F are reserved C0 extension codes with no
	// assigned meaning; they must decode as CodeUnknown, not panic.
	for b := byte(0x11); b <= 0x17; b++ {
		data := []byte{b, 0x00}
		codes, err := CodeFromData(data)
		if err != nil {
			t.Fatalf("byte %#x: %v", b, err)
		}
		if len(codes) != 1 || codes[0].ID != CodeUnknown {
			t.Fatalf("byte %#x: got %+v, want a single CodeUnknown", b, codes)
		}
	}
	for b := byte(0x19); b <= 0x1F; b++ {
		data := []byte{b, 0x00, 0x00}
		codes, err := CodeFromData(data)
		if err != nil {
			t.Fatalf("byte %#x: %v", b, err)
		}
		if len(codes) != 1 || codes[0].ID != CodeUnknown {
			t.Fatalf("byte %#x: got %+v, want a single CodeUnknown", b, codes)
		}
	}
}

func TestCodeRoundTripWrite(t *testing.T) {
	t.Parallel()
	tests := []Code{
		{ID: CodeNUL},
		{ID: CodeETX},
		{ID: CodeChar, Byte: 0x41, Rune: 'A'},
		{ID: CodeP16, P16: 0x1234},
		{ID: CodeSetCurrentWindow, Window: 3},
		{ID: CodeClearWindows, Windows: Window0.Or(Window2)},
		{ID: CodeDelay, Delay: 12},
		{ID: CodeSetPenLocation, PenLocation: SetPenLocationArgs{Row: 5, Column: 10}},
		{ID: CodeExt1, Ext1: Ext1HorizontalEllipsis},
	}
	for _, c := range tests {
		var buf []byte
		if err := c.Write(&buf); err != nil {
			t.Fatalf("write %+v: %v", c, err)
		}
		if len(buf) != c.ByteLen() {
			t.Fatalf("ByteLen() = %d, wrote %d bytes for %+v", c.ByteLen(), len(buf), c)
		}
		decoded, err := CodeFromData(buf)
		if err != nil {
			t.Fatalf("decode %x: %v", buf, err)
		}
		if len(decoded) != 1 {
			t.Fatalf("decoded %d codes, want 1", len(decoded))
		}
		if !reflect.DeepEqual(decoded[0], c) {
			t.Fatalf("round trip mismatch: got %+v, want %+v", decoded[0], c)
		}
	}
}

func TestCodeCharRoundTrip(t *testing.T) {
	t.Parallel()
	for _, r := range []rune{'A', 'z', '♪', ' ', '…', 'Œ'} {
		code, ok := CodeFromChar(r)
		if !ok {
			t.Fatalf("CodeFromChar(%q) not found", r)
		}
		got, ok := code.Char()
		if !ok || got != r {
			t.Fatalf("Char() roundtrip for %q: got %q, ok=%v", r, got, ok)
		}
	}
}

func TestCodeFromCharUnknown(t *testing.T) {
	t.Parallel()
	if _, ok := CodeFromChar('漢'); ok {
		t.Fatal("expected not found for unsupported rune")
	}
}

func TestDefineWindowArgsBytesRoundTrip(t *testing.T) {
	t.Parallel()
	args := DefineWindowArgs{
		WindowID:            2,
		Priority:            3,
		AnchorPoint:         AnchorBottomRight,
		RelativePositioning: true,
		AnchorVertical:      100,
		AnchorHorizontal:    50,
		RowCount:            5,
		ColumnCount:         20,
		RowLock:             true,
		ColumnLock:          false,
		Visible:             true,
		WindowStyleID:       4,
		PenStyleID:          1,
	}
	b := args.bytes()
	got := defineWindowArgsFromBytes(b)
	got.WindowID = args.WindowID
	if got != args {
		t.Fatalf("got %+v, want %+v", got, args)
	}
}

func TestDefineWindowArgsPredefinedStyles(t *testing.T) {
	t.Parallel()
	a := DefineWindowArgs{WindowStyleID: 1, PenStyleID: 1}
	if a.WindowAttributes() != predefinedWindowStyles[0] {
		t.Fatal("WindowAttributes() should index into predefinedWindowStyles by style id - 1")
	}
	if a.PenAttributes() != predefinedPenStylesAttributes[0] {
		t.Fatal("PenAttributes() should index into predefinedPenStylesAttributes by style id - 1")
	}
	if a.PenColor() != predefinedPenStylesColor[0] {
		t.Fatal("PenColor() should index into predefinedPenStylesColor by style id - 1")
	}

	zero := DefineWindowArgs{}
	if zero.WindowAttributes() != (SetWindowAttributesArgs{}) {
		t.Fatal("WindowStyleID 0 should return the zero value")
	}
}

func TestSetPenAttributesArgsRoundTrip(t *testing.T) {
	t.Parallel()
	a := SetPenAttributesArgs{
		PenSize:   PenSizeLarge,
		FontStyle: FontStyleCursive,
		TextTag:   TextTagSongLyrics,
		Offset:    TextOffsetSuperscript,
		Italics:   true,
		Underline: true,
		EdgeType:  EdgeTypeRightDropShadow,
	}
	got := setPenAttributesArgsFromBytes(a.bytes())
	if got != a {
		t.Fatalf("got %+v, want %+v", got, a)
	}
}

func TestSetPenColorArgsRoundTrip(t *testing.T) {
	t.Parallel()
	a := SetPenColorArgs{
		ForegroundColor:   ColorRed,
		ForegroundOpacity: OpacityFlash,
		BackgroundColor:   ColorBlue,
		BackgroundOpacity: OpacityTranslucent,
		EdgeColor:         ColorGreen,
	}
	got := setPenColorArgsFromBytes(a.bytes())
	if got != a {
		t.Fatalf("got %+v, want %+v", got, a)
	}
}

func TestSetWindowAttributesArgsRoundTrip(t *testing.T) {
	t.Parallel()
	a := SetWindowAttributesArgs{
		Justify:         JustifyFull,
		PrintDirection:  DirectionTopToBottom,
		ScrollDirection: DirectionRightToLeft,
		WordWrap:        true,
		DisplayEffect:   DisplayEffectWipe,
		EffectDirection: DirectionBottomToTop,
		EffectSpeed:     7,
		FillColor:       ColorWhite,
		FillOpacity:     OpacityTranslucent,
		BorderType:      BorderTypeShadowRight,
		BorderColor:     ColorBlack,
	}
	got := setWindowAttributesArgsFromBytes(a.bytes())
	if got != a {
		t.Fatalf("got %+v, want %+v", got, a)
	}
}

func TestWindowBits(t *testing.T) {
	t.Parallel()
	w := Window0.Or(Window3)
	if !w.Has(0) || !w.Has(3) || w.Has(1) {
		t.Fatalf("unexpected bits in %08b", w)
	}
	if w.And(Window3) != Window3 {
		t.Fatal("And should isolate the shared bit")
	}
	if w.Not().Has(0) {
		t.Fatal("Not should clear previously-set bits")
	}
}

func TestCodeFromDataShortBuffer(t *testing.T) {
	t.Parallel()
	if _, err := CodeFromData([]byte{0x90}); err == nil {
		t.Fatal("expected an error for a truncated SetPenAttributes code")
	}
}
