package cea708

import "fmt"

// CodeError reports a length mismatch while decoding a single Code
// element. It is folded into a LengthMismatch by callers that parse full
// Service/DTVCCPacket blocks.
type CodeError struct {
	Expected int
	Actual   int
}

func (e *CodeError) Error() string {
	return fmt.Sprintf("cea708: code data length %d does not match expected length %d", e.Actual, e.Expected)
}

// g0Chars maps wire bytes 0x20-0x7F to their glyph. Index 0 is byte 0x20.
var g0Chars = [...]rune{
	' ', '!', '"', '#', '$', '%', '&', '\'', '(', ')', '*', '+', ',', '-', '.', '/',
	'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', ':', ';', '<', '=', '>', '?',
	'@', 'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J', 'K', 'L', 'M', 'N', 'O',
	'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z', '[', '\\', ']', '^', '_',
	'`', 'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h', 'i', 'j', 'k', 'l', 'm', 'n', 'o',
	'p', 'q', 'r', 's', 't', 'u', 'v', 'w', 'x', 'y', 'z', '{', '|', '}', '~', '♪',
}

// g1Chars maps wire bytes 0xA0-0xFF to their glyph. Index 0 is byte 0xA0.
// Mostly Latin-1 Supplement, with two CEA-708-specific substitutions at
// 0xAE (circled R, not registered-sign) and 0xD0 (D with stroke, not Eth).
var g1Chars = [...]rune{
	' ', '¡', '¢', '£', '¤', '¥', '¦', '§', '¨', '©', 'ª', '«', '¬', '­', 'Ⓡ', '¯',
	'°', '±', '²', '³', '´', 'µ', '¶', '·', '¸', '¹', 'º', '»', '¼', '½', '¾', '¿',
	'À', 'Á', 'Â', 'Ã', 'Ä', 'Å', 'Æ', 'Ç', 'È', 'É', 'Ê', 'Ë', 'Ì', 'Í', 'Î', 'Ï',
	'Đ', 'Ñ', 'Ò', 'Ó', 'Ô', 'Õ', 'Ö', '×', 'Ø', 'Ù', 'Ú', 'Û', 'Ü', 'Ý', 'Þ', 'ß',
	'à', 'á', 'â', 'ã', 'ä', 'å', 'æ', 'ç', 'è', 'é', 'ê', 'ë', 'ì', 'í', 'î', 'ï',
	'ð', 'ñ', 'ò', 'ó', 'ô', 'õ', 'ö', '÷', 'ø', 'ù', 'ú', 'û', 'ü', 'ý', 'þ', 'ÿ',
}

type ext1Entry struct {
	id   Ext1ID
	byte byte
	r    rune
	has  bool
}

// ext1Table lists the 26 known characters reachable through the Ext1
// (0x10) prefix byte, alongside their second byte and optional glyph.
var ext1Table = []ext1Entry{
	{Ext1TransparentSpace, 0x20, 0, false},
	{Ext1NonBreakingTransparentSpace, 0x21, 0, false},
	{Ext1HorizontalEllipsis, 0x25, '…', true},
	{Ext1LatinCapitalSWithCaron, 0x2A, 'Š', true},
	{Ext1LatinCapitalLigatureOE, 0x2C, 'Œ', true},
	{Ext1FullBlock, 0x30, '█', true},
	{Ext1SingleOpenQuote, 0x31, '‘', true},
	{Ext1SingleCloseQuote, 0x32, '’', true},
	{Ext1DoubleOpenQuote, 0x33, '“', true},
	{Ext1DoubleCloseQuote, 0x34, '”', true},
	{Ext1SolidDot, 0x35, 0, false},
	{Ext1TradeMarkSign, 0x39, '™', true},
	{Ext1LatinLowerSWithCaron, 0x3A, 'š', true},
	{Ext1LatinLowerLigatureOE, 0x3C, 'œ', true},
	{Ext1LatinCapitalYWithDiaeresis, 0x3F, 'Ÿ', true},
	{Ext1Fraction18, 0x76, '⅛', true},
	{Ext1Fraction38, 0x77, '⅜', true},
	{Ext1Fraction58, 0x78, '⅝', true},
	{Ext1Fraction78, 0x79, '⅞', true},
	{Ext1VerticalBorder, 0x7A, 0, false},
	{Ext1UpperRightBorder, 0x7B, 0, false},
	{Ext1LowerLeftBorder, 0x7C, 0, false},
	{Ext1HorizontalBorder, 0x7D, 0, false},
	{Ext1LowerRightBorder, 0x7E, 0, false},
	{Ext1UpperLeftBorder, 0x7F, 0, false},
	{Ext1ClosedCaptionSign, 0xA0, 0, false},
}

func ext1ByByte(b byte) (ext1Entry, bool) {
	for _, e := range ext1Table {
		if e.byte == b {
			return e, true
		}
	}
	return ext1Entry{}, false
}

func ext1ByID(id Ext1ID) (ext1Entry, bool) {
	for _, e := range ext1Table {
		if e.id == id {
			return e, true
		}
	}
	return ext1Entry{}, false
}

// codeExpectedSize returns the number of bytes the Code starting at data[0]
// occupies, following the CEA-708 code-size table: fixed sizes for C0/G0/G1
// ranges, a variable size for Ext1-prefixed codes, and fixed sizes per C1
// command.
func codeExpectedSize(data []byte) (int, error) {
	if len(data) == 0 {
		return 0, &CodeError{Expected: 1, Actual: 0}
	}
	switch {
	case data[0] <= 0x0F:
		return 1, nil
	case data[0] == 0x10:
		size, err := ext1ExpectedSize(data[1:])
		if err != nil {
			return 0, err
		}
		return size + 1, nil
	case data[0] <= 0x17:
		return 2, nil
	case data[0] <= 0x1F:
		return 3, nil
	case data[0] <= 0x7F:
		return 1, nil
	case data[0] <= 0x87:
		return 1, nil
	case data[0] <= 0x8C:
		return 2, nil
	case data[0] == 0x8D:
		return 2, nil
	case data[0] == 0x8E:
		return 1, nil
	case data[0] == 0x8F:
		return 1, nil
	case data[0] == 0x90:
		return 3, nil
	case data[0] == 0x91:
		return 4, nil
	case data[0] == 0x92:
		return 3, nil
	case data[0] <= 0x96:
		return 1, nil
	case data[0] == 0x97:
		return 5, nil
	case data[0] <= 0x9F:
		return 7, nil
	default: // 0xA0-0xFF
		return 1, nil
	}
}

func ext1ExpectedSize(bytes []byte) (int, error) {
	if len(bytes) == 0 {
		return 0, &CodeError{Expected: 1, Actual: 0}
	}
	switch {
	case bytes[0] <= 0x07:
		return 1, nil
	case bytes[0] <= 0x0F:
		return 2, nil
	case bytes[0] <= 0x17:
		return 3, nil
	case bytes[0] <= 0x1F:
		return 4, nil
	case bytes[0] <= 0x7F:
		return 1, nil
	case bytes[0] <= 0x87:
		return 5, nil
	case bytes[0] <= 0x8F:
		return 6, nil
	case bytes[0] <= 0x9F:
		if len(bytes) < 2 {
			return 0, &CodeError{Expected: 2, Actual: len(bytes)}
		}
		return int(bytes[1]&0x3F) + 1, nil
	default: // 0xA0-0xFF
		return 1, nil
	}
}

// codeParseElement decodes exactly one Code from data, which must be
// exactly codeExpectedSize(data) bytes long.
func codeParseElement(data []byte) (Code, error) {
	size, err := codeExpectedSize(data)
	if err != nil {
		return Code{}, err
	}
	if len(data) != size {
		return Code{}, &CodeError{Expected: size, Actual: len(data)}
	}

	b := data[0]
	switch {
	case b <= 0x0F:
		switch b {
		case 0x00:
			return Code{ID: CodeNUL}, nil
		case 0x03:
			return Code{ID: CodeETX}, nil
		case 0x08:
			return Code{ID: CodeBS}, nil
		case 0x0C:
			return Code{ID: CodeFF}, nil
		case 0x0D:
			return Code{ID: CodeCR}, nil
		case 0x0E:
			return Code{ID: CodeHCR}, nil
		default:
			return Code{ID: CodeUnknown, Raw: append([]byte(nil), data...)}, nil
		}
	case b == 0x10:
		ext, err := ext1Parse(data[1:])
		if err != nil {
			return Code{}, err
		}
		return ext, nil
	case b >= 0x11 && b <= 0x17:
		return Code{ID: CodeUnknown, Raw: append([]byte(nil), data...)}, nil
	case b == 0x18:
		return Code{ID: CodeP16, P16: uint16(data[1])<<8 | uint16(data[2])}, nil
	case b >= 0x19 && b <= 0x1F:
		return Code{ID: CodeUnknown, Raw: append([]byte(nil), data...)}, nil
	case b >= 0x20 && b <= 0x7F:
		return Code{ID: CodeChar, Byte: b, Rune: g0Chars[b-0x20]}, nil
	case b >= 0x80 && b <= 0x87:
		return Code{ID: CodeSetCurrentWindow, Window: b - 0x80}, nil
	case b == 0x88:
		return Code{ID: CodeClearWindows, Windows: WindowBits(data[1])}, nil
	case b == 0x89:
		return Code{ID: CodeDisplayWindows, Windows: WindowBits(data[1])}, nil
	case b == 0x8A:
		return Code{ID: CodeHideWindows, Windows: WindowBits(data[1])}, nil
	case b == 0x8B:
		return Code{ID: CodeToggleWindows, Windows: WindowBits(data[1])}, nil
	case b == 0x8C:
		return Code{ID: CodeDeleteWindows, Windows: WindowBits(data[1])}, nil
	case b == 0x8D:
		return Code{ID: CodeDelay, Delay: data[1] & 0x3F}, nil
	case b == 0x8E:
		return Code{ID: CodeDelayCancel}, nil
	case b == 0x8F:
		return Code{ID: CodeReset}, nil
	case b == 0x90:
		return Code{ID: CodeSetPenAttributes, PenAttributes: setPenAttributesArgsFromBytes([2]byte{data[1], data[2]})}, nil
	case b == 0x91:
		return Code{ID: CodeSetPenColor, PenColor: setPenColorArgsFromBytes([3]byte{data[1], data[2], data[3]})}, nil
	case b == 0x92:
		return Code{ID: CodeSetPenLocation, PenLocation: setPenLocationArgsFromBytes([2]byte{data[1], data[2]})}, nil
	case b >= 0x93 && b <= 0x96:
		return Code{ID: CodeUnknown, Raw: append([]byte(nil), data...)}, nil
	case b == 0x97:
		return Code{ID: CodeSetWindowAttributes, WindowAttributes: setWindowAttributesArgsFromBytes([4]byte{data[1], data[2], data[3], data[4]})}, nil
	case b >= 0x98 && b <= 0x9F:
		args := defineWindowArgsFromBytes([6]byte{data[1], data[2], data[3], data[4], data[5], data[6]})
		args.WindowID = b & 0x07
		return Code{ID: CodeDefineWindow, DefineWindow: args}, nil
	default: // 0xA0-0xFF
		return Code{ID: CodeChar, Byte: b, Rune: g1Chars[b-0xA0]}, nil
	}
}

func ext1Parse(data []byte) (Code, error) {
	if len(data) == 0 {
		return Code{}, &CodeError{Expected: 1, Actual: 0}
	}
	if entry, ok := ext1ByByte(data[0]); ok {
		return Code{ID: CodeExt1, Ext1: entry.id}, nil
	}
	return Code{ID: CodeExt1, Ext1: Ext1Unknown, Raw: append([]byte(nil), data...)}, nil
}

// CodeFromData parses a run of codes out of data, consuming all of it.
func CodeFromData(data []byte) ([]Code, error) {
	var codes []Code
	for len(data) > 0 {
		size, err := codeExpectedSize(data)
		if err != nil {
			return nil, err
		}
		if len(data) < size {
			return nil, &CodeError{Expected: size, Actual: len(data)}
		}
		code, err := codeParseElement(data[:size])
		if err != nil {
			return nil, err
		}
		codes = append(codes, code)
		data = data[size:]
	}
	return codes, nil
}

// ByteLen returns the number of bytes c occupies when written.
func (c Code) ByteLen() int {
	switch c.ID {
	case CodeNUL, CodeETX, CodeBS, CodeFF, CodeCR, CodeHCR:
		return 1
	case CodeExt1:
		if c.Ext1 == Ext1Unknown {
			return 1 + len(c.Raw)
		}
		return 2
	case CodeP16:
		return 3
	case CodeChar:
		return 1
	case CodeSetCurrentWindow, CodeDelayCancel, CodeReset:
		return 1
	case CodeClearWindows, CodeDisplayWindows, CodeHideWindows, CodeToggleWindows, CodeDeleteWindows:
		return 2
	case CodeDelay:
		return 2
	case CodeSetPenAttributes:
		return 3
	case CodeSetPenColor:
		return 4
	case CodeSetPenLocation:
		return 3
	case CodeSetWindowAttributes:
		return 5
	case CodeDefineWindow:
		return 7
	case CodeUnknown:
		return len(c.Raw)
	default:
		return 0
	}
}

// Write appends the wire representation of c to w.
func (c Code) Write(w *[]byte) error {
	switch c.ID {
	case CodeNUL:
		*w = append(*w, 0x00)
	case CodeETX:
		*w = append(*w, 0x03)
	case CodeBS:
		*w = append(*w, 0x08)
	case CodeFF:
		*w = append(*w, 0x0C)
	case CodeCR:
		*w = append(*w, 0x0D)
	case CodeHCR:
		*w = append(*w, 0x0E)
	case CodeExt1:
		*w = append(*w, 0x10)
		if c.Ext1 == Ext1Unknown {
			*w = append(*w, c.Raw...)
			return nil
		}
		entry, ok := ext1ByID(c.Ext1)
		if !ok {
			return fmt.Errorf("cea708: unknown ext1 id %d", c.Ext1)
		}
		*w = append(*w, entry.byte)
	case CodeP16:
		*w = append(*w, 0x18, byte(c.P16>>8), byte(c.P16))
	case CodeChar:
		*w = append(*w, c.Byte)
	case CodeSetCurrentWindow:
		*w = append(*w, 0x80|c.Window&0x07)
	case CodeClearWindows:
		*w = append(*w, 0x88, byte(c.Windows))
	case CodeDisplayWindows:
		*w = append(*w, 0x89, byte(c.Windows))
	case CodeHideWindows:
		*w = append(*w, 0x8A, byte(c.Windows))
	case CodeToggleWindows:
		*w = append(*w, 0x8B, byte(c.Windows))
	case CodeDeleteWindows:
		*w = append(*w, 0x8C, byte(c.Windows))
	case CodeDelay:
		*w = append(*w, 0x8D, c.Delay&0x3F)
	case CodeDelayCancel:
		*w = append(*w, 0x8E)
	case CodeReset:
		*w = append(*w, 0x8F)
	case CodeSetPenAttributes:
		b := c.PenAttributes.bytes()
		*w = append(*w, 0x90, b[0], b[1])
	case CodeSetPenColor:
		b := c.PenColor.bytes()
		*w = append(*w, 0x91, b[0], b[1], b[2])
	case CodeSetPenLocation:
		b := c.PenLocation.bytes()
		*w = append(*w, 0x92, b[0], b[1])
	case CodeSetWindowAttributes:
		b := c.WindowAttributes.bytes()
		*w = append(*w, 0x97, b[0], b[1], b[2], b[3])
	case CodeDefineWindow:
		b := c.DefineWindow.bytes()
		*w = append(*w, 0x98|c.DefineWindow.WindowID&0x07, b[0], b[1], b[2], b[3], b[4], b[5])
	case CodeUnknown:
		*w = append(*w, c.Raw...)
	default:
		return fmt.Errorf("cea708: cannot write code with id %d", c.ID)
	}
	return nil
}

// Char returns the glyph represented by c and true, or ok=false if c is a
// command code with no character representation.
func (c Code) Char() (r rune, ok bool) {
	switch c.ID {
	case CodeChar:
		return c.Rune, true
	case CodeExt1:
		entry, found := ext1ByID(c.Ext1)
		if found && entry.has {
			return entry.r, true
		}
		return 0, false
	default:
		return 0, false
	}
}

// CodeFromChar returns the Code representing r, or ok=false if r has no
// CEA-708 representation.
func CodeFromChar(r rune) (Code, bool) {
	if r >= 0x20 && r <= 0x7E {
		b := byte(r)
		return Code{ID: CodeChar, Byte: b, Rune: g0Chars[b-0x20]}, true
	}
	if r == '♪' {
		return Code{ID: CodeChar, Byte: 0x7F, Rune: '♪'}, true
	}
	for i, gr := range g1Chars {
		if gr == r {
			return Code{ID: CodeChar, Byte: byte(0xA0 + i), Rune: gr}, true
		}
	}
	for _, entry := range ext1Table {
		if entry.has && entry.r == r {
			return Code{ID: CodeExt1, Ext1: entry.id}, true
		}
	}
	return Code{}, false
}
