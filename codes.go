package cea708

// CodeID identifies the kind of value held by a Code. Codes that carry a
// fixed-width argument payload (window commands, pen commands) use the
// matching field on Code; character codes use Byte/Rune.
type CodeID uint8

const (
	CodeNUL CodeID = iota
	CodeETX
	CodeBS
	CodeFF
	CodeCR
	CodeHCR
	CodeExt1
	CodeP16
	// CodeChar covers every G0 (0x20-0x7F) and G1 (0xA0-0xFF) basic
	// character code. Byte holds the wire value, Rune its glyph.
	CodeChar
	CodeSetCurrentWindow
	CodeClearWindows
	CodeDisplayWindows
	CodeHideWindows
	CodeToggleWindows
	CodeDeleteWindows
	CodeDelay
	CodeDelayCancel
	CodeReset
	CodeSetPenAttributes
	CodeSetPenColor
	CodeSetPenLocation
	CodeSetWindowAttributes
	CodeDefineWindow
	CodeUnknown
)

func (id CodeID) String() string {
	switch id {
	case CodeNUL:
		return "NUL"
	case CodeETX:
		return "ETX"
	case CodeBS:
		return "BS"
	case CodeFF:
		return "FF"
	case CodeCR:
		return "CR"
	case CodeHCR:
		return "HCR"
	case CodeExt1:
		return "Ext1"
	case CodeP16:
		return "P16"
	case CodeChar:
		return "Char"
	case CodeSetCurrentWindow:
		return "SetCurrentWindow"
	case CodeClearWindows:
		return "ClearWindows"
	case CodeDisplayWindows:
		return "DisplayWindows"
	case CodeHideWindows:
		return "HideWindows"
	case CodeToggleWindows:
		return "ToggleWindows"
	case CodeDeleteWindows:
		return "DeleteWindows"
	case CodeDelay:
		return "Delay"
	case CodeDelayCancel:
		return "DelayCancel"
	case CodeReset:
		return "Reset"
	case CodeSetPenAttributes:
		return "SetPenAttributes"
	case CodeSetPenColor:
		return "SetPenColor"
	case CodeSetPenLocation:
		return "SetPenLocation"
	case CodeSetWindowAttributes:
		return "SetWindowAttributes"
	case CodeDefineWindow:
		return "DefineWindow"
	case CodeUnknown:
		return "Unknown"
	default:
		return "Invalid"
	}
}

// Ext1ID identifies the known characters reachable through the Ext1 (0x10)
// prefix byte. Codes outside this set are carried as raw bytes in
// Code.Raw with ID set to CodeExt1 and Ext1ID set to Ext1Unknown.
type Ext1ID uint8

const (
	Ext1TransparentSpace Ext1ID = iota
	Ext1NonBreakingTransparentSpace
	Ext1HorizontalEllipsis
	Ext1LatinCapitalSWithCaron
	Ext1LatinCapitalLigatureOE
	Ext1FullBlock
	Ext1SingleOpenQuote
	Ext1SingleCloseQuote
	Ext1DoubleOpenQuote
	Ext1DoubleCloseQuote
	Ext1SolidDot
	Ext1TradeMarkSign
	Ext1LatinLowerSWithCaron
	Ext1LatinLowerLigatureOE
	Ext1LatinCapitalYWithDiaeresis
	Ext1Fraction18
	Ext1Fraction38
	Ext1Fraction58
	Ext1Fraction78
	Ext1VerticalBorder
	Ext1UpperRightBorder
	Ext1LowerLeftBorder
	Ext1HorizontalBorder
	Ext1LowerRightBorder
	Ext1UpperLeftBorder
	Ext1ClosedCaptionSign
	Ext1Unknown
)

// Code is a single element of a Service block's code stream: either a
// printable character or a control command. Which fields are meaningful is
// determined by ID; this mirrors the tagged-union shape used elsewhere in
// this package's data model (see Service, DTVCCPacket) rather than an
// interface-per-kind design, since most Code variants carry no payload at
// all and only a handful carry a small fixed-width struct.
type Code struct {
	ID CodeID

	Ext1 Ext1ID

	// Byte/Rune are populated for CodeChar (the raw wire byte and its
	// glyph) and left zero otherwise.
	Byte byte
	Rune rune

	P16 uint16

	// Window is the window number for CodeSetCurrentWindow, [0,7].
	Window uint8

	// Windows is the window bitset argument for the ClearWindows,
	// DisplayWindows, HideWindows, ToggleWindows and DeleteWindows
	// commands.
	Windows WindowBits

	// Delay is the delay-in-tenths-of-a-second argument for CodeDelay,
	// [0,63].
	Delay uint8

	PenAttributes    SetPenAttributesArgs
	PenColor         SetPenColorArgs
	PenLocation      SetPenLocationArgs
	WindowAttributes SetWindowAttributesArgs
	DefineWindow     DefineWindowArgs

	// Raw holds the undecoded bytes for CodeUnknown and CodeExt1 with
	// Ext1 == Ext1Unknown.
	Raw []byte
}

// WindowBits is a bitset over the 8 windows (0-7) a Service can address.
type WindowBits uint8

const (
	WindowNone WindowBits = 0
	Window0    WindowBits = 1 << 0
	Window1    WindowBits = 1 << 1
	Window2    WindowBits = 1 << 2
	Window3    WindowBits = 1 << 3
	Window4    WindowBits = 1 << 4
	Window5    WindowBits = 1 << 5
	Window6    WindowBits = 1 << 6
	Window7    WindowBits = 1 << 7
)

// Or returns the union of the two window bitsets.
func (w WindowBits) Or(o WindowBits) WindowBits { return w | o }

// And returns the intersection of the two window bitsets.
func (w WindowBits) And(o WindowBits) WindowBits { return w & o }

// Not returns the complement of the window bitset.
func (w WindowBits) Not() WindowBits { return ^w }

// Has reports whether window n (0-7) is set.
func (w WindowBits) Has(n uint8) bool { return w&(1<<n) != 0 }

// Anchor is a window's anchor point, one of the 9 compass positions plus 7
// reserved values.
type Anchor uint8

const (
	AnchorTopLeft Anchor = iota
	AnchorTopMiddle
	AnchorTopRight
	AnchorCenterLeft
	AnchorCenterMiddle
	AnchorCenterRight
	AnchorBottomLeft
	AnchorBottomMiddle
	AnchorBottomRight
	AnchorUndefined9
	AnchorUndefined10
	AnchorUndefined11
	AnchorUndefined12
	AnchorUndefined13
	AnchorUndefined14
	AnchorUndefined15
)

// DefineWindowArgs are the arguments carried by a DefineWindow command.
type DefineWindowArgs struct {
	WindowID             uint8 // [0,7]
	Priority             uint8 // [0,7]
	AnchorPoint          Anchor
	RelativePositioning  bool
	AnchorVertical       uint8 // [0,127]
	AnchorHorizontal     uint8 // [0,255]
	RowCount             uint8 // [0,11]
	ColumnCount          uint8 // [0,41]
	RowLock              bool
	ColumnLock           bool
	Visible              bool
	WindowStyleID        uint8 // [0,7]
	PenStyleID           uint8 // [0,7]
}

func defineWindowArgsFromBytes(b [6]byte) DefineWindowArgs {
	return DefineWindowArgs{
		Priority:            b[0] & 0x7,
		AnchorPoint:         Anchor((b[3] & 0xF0) >> 4),
		RelativePositioning: b[1]&0x80 > 0,
		AnchorVertical:      b[1] & 0x7F,
		AnchorHorizontal:    b[2],
		RowCount:            b[3] & 0x0F,
		ColumnCount:         b[4] & 0x3F,
		RowLock:             b[0]&0x10 > 0,
		ColumnLock:          b[0]&0x08 > 0,
		Visible:             b[0]&0x20 > 0,
		WindowStyleID:       (b[5] & 0x38) >> 3,
		PenStyleID:          b[5] & 0x07,
	}
}

func (a DefineWindowArgs) bytes() [6]byte {
	var b0 byte
	b0 |= a.Priority & 0x7
	if a.ColumnLock {
		b0 |= 1 << 3
	}
	if a.RowLock {
		b0 |= 1 << 4
	}
	if a.Visible {
		b0 |= 1 << 5
	}
	b1 := (a.AnchorVertical & 0x7F)
	if a.RelativePositioning {
		b1 |= 1 << 7
	}
	return [6]byte{
		b0,
		b1,
		a.AnchorHorizontal,
		(a.RowCount & 0x0F) | uint8(a.AnchorPoint)<<4,
		a.ColumnCount & 0x3F,
		(a.PenStyleID & 0x07) | (a.WindowStyleID&0x7)<<3,
	}
}

// WindowAttributes returns the predefined window attributes this
// DefineWindowArgs selects via WindowStyleID, or the zero value if
// WindowStyleID is 0 (meaning "use the attributes given explicitly by a
// following SetWindowAttributes command").
func (a DefineWindowArgs) WindowAttributes() SetWindowAttributesArgs {
	if a.WindowStyleID == 0 || int(a.WindowStyleID) > len(predefinedWindowStyles) {
		return SetWindowAttributesArgs{}
	}
	return predefinedWindowStyles[a.WindowStyleID-1]
}

// PenAttributes returns the predefined pen attributes this
// DefineWindowArgs selects via PenStyleID, or the zero value if
// PenStyleID is 0.
func (a DefineWindowArgs) PenAttributes() SetPenAttributesArgs {
	if a.PenStyleID == 0 || int(a.PenStyleID) > len(predefinedPenStylesAttributes) {
		return SetPenAttributesArgs{}
	}
	return predefinedPenStylesAttributes[a.PenStyleID-1]
}

// PenColor returns the predefined pen color this DefineWindowArgs selects
// via PenStyleID, or the zero value if PenStyleID is 0.
func (a DefineWindowArgs) PenColor() SetPenColorArgs {
	if a.PenStyleID == 0 || int(a.PenStyleID) > len(predefinedPenStylesColor) {
		return SetPenColorArgs{}
	}
	return predefinedPenStylesColor[a.PenStyleID-1]
}

// Justify is a window's text justification.
type Justify uint8

const (
	JustifyLeft Justify = iota
	JustifyRight
	JustifyCenter
	JustifyFull
)

// Direction is used for print, scroll and effect directions.
type Direction uint8

const (
	DirectionLeftToRight Direction = iota
	DirectionRightToLeft
	DirectionTopToBottom
	DirectionBottomToTop
)

// DisplayEffect is how a window transitions on/off screen.
type DisplayEffect uint8

const (
	DisplayEffectSnap DisplayEffect = iota
	DisplayEffectFade
	DisplayEffectWipe
	DisplayEffectUndefined
)

// Opacity is an alpha level for fills, pens and edges.
type Opacity uint8

const (
	OpacitySolid Opacity = iota
	OpacityFlash
	OpacityTranslucent
	OpacityTransparent
)

// ColorValue is one RGB channel quantized to 2 bits.
type ColorValue uint8

const (
	ColorValueNone ColorValue = iota
	ColorValueOneThird
	ColorValueTwoThirds
	ColorValueFull
)

// Color is an RGB color with each channel quantized to a ColorValue.
type Color struct {
	R, G, B ColorValue
}

var (
	ColorBlack = Color{ColorValueNone, ColorValueNone, ColorValueNone}
	ColorWhite = Color{ColorValueFull, ColorValueFull, ColorValueFull}
	ColorRed   = Color{ColorValueFull, ColorValueNone, ColorValueNone}
	ColorGreen = Color{ColorValueNone, ColorValueFull, ColorValueNone}
	ColorBlue  = Color{ColorValueNone, ColorValueNone, ColorValueFull}
)

func (c Color) byte() byte {
	return byte(c.R)<<4 | byte(c.G)<<2 | byte(c.B)
}

func colorFromByte(b byte) Color {
	return Color{
		R: ColorValue((b & 0x30) >> 4),
		G: ColorValue((b & 0x0C) >> 2),
		B: ColorValue(b & 0x03),
	}
}

func colorOpacityByte(c Color, o Opacity) byte {
	return byte(o)<<6 | c.byte()
}

func colorOpacityFromByte(b byte) (Color, Opacity) {
	return colorFromByte(b & 0x3F), Opacity((b & 0xC0) >> 6)
}

// BorderType is a window border style.
type BorderType uint8

const (
	BorderTypeNone BorderType = iota
	BorderTypeRaised
	BorderTypeDepressed
	BorderTypeUniform
	BorderTypeShadowLeft
	BorderTypeShadowRight
	BorderTypeUndefined6
	BorderTypeUndefined7
)

// SetWindowAttributesArgs are the arguments carried by a
// SetWindowAttributes command.
type SetWindowAttributesArgs struct {
	Justify         Justify
	PrintDirection  Direction
	ScrollDirection Direction
	WordWrap        bool
	DisplayEffect   DisplayEffect
	EffectDirection Direction
	EffectSpeed     uint8 // [1,15], units of 500ms
	FillColor       Color
	FillOpacity     Opacity
	BorderType      BorderType
	BorderColor     Color
}

func setWindowAttributesArgsFromBytes(b [4]byte) SetWindowAttributesArgs {
	fillColor, fillOpacity := colorOpacityFromByte(b[0])
	borderType := (b[1]&0xC0)>>6 | (b[2]&0x80)>>5
	return SetWindowAttributesArgs{
		Justify:         Justify(b[2] & 0x03),
		PrintDirection:  Direction((b[2] & 0x30) >> 4),
		ScrollDirection: Direction((b[2] & 0x0C) >> 2),
		WordWrap:        b[2]&0x40 > 0,
		DisplayEffect:   DisplayEffect(b[3] & 0x03),
		EffectDirection: Direction((b[3] & 0x0C) >> 2),
		EffectSpeed:     (b[3] & 0xF0) >> 4,
		FillColor:       fillColor,
		FillOpacity:     fillOpacity,
		BorderType:      BorderType(borderType),
		BorderColor:     colorFromByte(b[1]),
	}
}

func (a SetWindowAttributesArgs) bytes() [4]byte {
	bt := byte(a.BorderType)
	var b2 byte
	b2 |= byte(a.Justify)
	b2 |= byte(a.PrintDirection) << 4
	b2 |= byte(a.ScrollDirection) << 2
	if a.WordWrap {
		b2 |= 1 << 6
	}
	b2 |= (bt & 0x4) << 5
	return [4]byte{
		colorOpacityByte(a.FillColor, a.FillOpacity),
		(bt&0x3)<<6 | a.BorderColor.byte(),
		b2,
		a.EffectSpeed<<4 | byte(a.EffectDirection)<<2 | byte(a.DisplayEffect),
	}
}

// PenSize is a pen's glyph size.
type PenSize uint8

const (
	PenSizeSmall PenSize = iota
	PenSizeStandard
	PenSizeLarge
	PenSizeUndefined
)

// FontStyle is a pen's font family.
type FontStyle uint8

const (
	FontStyleDefault FontStyle = iota
	FontStyleMonospacedWithSerifs
	FontStyleProportionallySpacedWithSerifs
	FontStyleMonospacedWithoutSerifs
	FontStyleProportionallySpacedWithoutSerifs
	FontStyleCasual
	FontStyleCursive
	FontStyleSmallCapitals
)

// TextTag classifies the kind of text a pen is rendering.
type TextTag uint8

const (
	TextTagDialog TextTag = iota
	TextTagSourceOrSpeakerID
	TextTagElectronicallyReproducedVoice
	TextTagDialogInNonPrimaryLanguage
	TextTagVoiceover
	TextTagAudibleTranslation
	TextTagSubtitleTranslation
	TextTagVoiceQualityDescription
	TextTagSongLyrics
	TextTagSoundEffectDescription
	TextTagMusicalScoreDescription
	TextTagExpletive
	TextTagUndefined12
	TextTagUndefined13
	TextTagUndefined14
	TextTagNotToBeDisplayed
)

// TextOffset is a pen's sub/superscript offset.
type TextOffset uint8

const (
	TextOffsetSubscript TextOffset = iota
	TextOffsetNormal
	TextOffsetSuperscript
	TextOffsetUndefined
)

// EdgeType is a pen's glyph edge treatment.
type EdgeType uint8

const (
	EdgeTypeNone EdgeType = iota
	EdgeTypeRaised
	EdgeTypeDepressed
	EdgeTypeUniform
	EdgeTypeLeftDropShadow
	EdgeTypeRightDropShadow
	EdgeTypeUndefined6
	EdgeTypeUndefined7
)

// SetPenAttributesArgs are the arguments carried by a SetPenAttributes
// command.
type SetPenAttributesArgs struct {
	PenSize   PenSize
	FontStyle FontStyle
	TextTag   TextTag
	Offset    TextOffset
	Italics   bool
	Underline bool
	EdgeType  EdgeType
}

func setPenAttributesArgsFromBytes(b [2]byte) SetPenAttributesArgs {
	return SetPenAttributesArgs{
		PenSize:   PenSize(b[0] & 0x3),
		FontStyle: FontStyle(b[1] & 0x07),
		TextTag:   TextTag((b[0] & 0xF0) >> 4),
		Offset:    TextOffset((b[0] & 0x0C) >> 2),
		Italics:   b[1]&0x80 > 0,
		Underline: b[1]&0x40 > 0,
		EdgeType:  EdgeType((b[1] & 0x38) >> 3),
	}
}

func (a SetPenAttributesArgs) bytes() [2]byte {
	b0 := byte(a.PenSize) | byte(a.Offset)<<2 | byte(a.TextTag)<<4
	b1 := byte(a.FontStyle) | byte(a.EdgeType)<<3
	if a.Underline {
		b1 |= 1 << 6
	}
	if a.Italics {
		b1 |= 1 << 7
	}
	return [2]byte{b0, b1}
}

// SetPenColorArgs are the arguments carried by a SetPenColor command.
type SetPenColorArgs struct {
	ForegroundColor   Color
	ForegroundOpacity Opacity
	BackgroundColor   Color
	BackgroundOpacity Opacity
	EdgeColor         Color
}

func setPenColorArgsFromBytes(b [3]byte) SetPenColorArgs {
	fg, fgOp := colorOpacityFromByte(b[0])
	bg, bgOp := colorOpacityFromByte(b[1])
	return SetPenColorArgs{
		ForegroundColor:   fg,
		ForegroundOpacity: fgOp,
		BackgroundColor:   bg,
		BackgroundOpacity: bgOp,
		EdgeColor:         colorFromByte(b[2]),
	}
}

func (a SetPenColorArgs) bytes() [3]byte {
	return [3]byte{
		colorOpacityByte(a.ForegroundColor, a.ForegroundOpacity),
		colorOpacityByte(a.BackgroundColor, a.BackgroundOpacity),
		a.EdgeColor.byte(),
	}
}

// SetPenLocationArgs are the arguments carried by a SetPenLocation command.
type SetPenLocationArgs struct {
	Row    uint8 // [0,14]
	Column uint8 // [0,41]
}

func setPenLocationArgsFromBytes(b [2]byte) SetPenLocationArgs {
	return SetPenLocationArgs{Row: b[0] & 0x0F, Column: b[1] & 0x3F}
}

func (a SetPenLocationArgs) bytes() [2]byte {
	return [2]byte{a.Row & 0x0F, a.Column & 0x3F}
}

var predefinedWindowStyles = [7]SetWindowAttributesArgs{
	{Justify: JustifyLeft, PrintDirection: DirectionLeftToRight, ScrollDirection: DirectionBottomToTop, WordWrap: false, DisplayEffect: DisplayEffectSnap, EffectDirection: DirectionLeftToRight, EffectSpeed: 1, FillColor: ColorBlack, FillOpacity: OpacitySolid, BorderType: BorderTypeNone, BorderColor: ColorBlack},
	{Justify: JustifyLeft, PrintDirection: DirectionLeftToRight, ScrollDirection: DirectionBottomToTop, WordWrap: false, DisplayEffect: DisplayEffectSnap, EffectDirection: DirectionLeftToRight, EffectSpeed: 1, FillColor: ColorBlack, FillOpacity: OpacityTransparent, BorderType: BorderTypeNone, BorderColor: ColorBlack},
	{Justify: JustifyCenter, PrintDirection: DirectionLeftToRight, ScrollDirection: DirectionBottomToTop, WordWrap: false, DisplayEffect: DisplayEffectSnap, EffectDirection: DirectionLeftToRight, EffectSpeed: 1, FillColor: ColorBlack, FillOpacity: OpacitySolid, BorderType: BorderTypeNone, BorderColor: ColorBlack},
	{Justify: JustifyLeft, PrintDirection: DirectionLeftToRight, ScrollDirection: DirectionBottomToTop, WordWrap: true, DisplayEffect: DisplayEffectSnap, EffectDirection: DirectionLeftToRight, EffectSpeed: 1, FillColor: ColorBlack, FillOpacity: OpacitySolid, BorderType: BorderTypeNone, BorderColor: ColorBlack},
	{Justify: JustifyLeft, PrintDirection: DirectionLeftToRight, ScrollDirection: DirectionBottomToTop, WordWrap: true, DisplayEffect: DisplayEffectSnap, EffectDirection: DirectionLeftToRight, EffectSpeed: 1, FillColor: ColorBlack, FillOpacity: OpacityTransparent, BorderType: BorderTypeNone, BorderColor: ColorBlack},
	{Justify: JustifyCenter, PrintDirection: DirectionLeftToRight, ScrollDirection: DirectionBottomToTop, WordWrap: true, DisplayEffect: DisplayEffectSnap, EffectDirection: DirectionLeftToRight, EffectSpeed: 1, FillColor: ColorBlack, FillOpacity: OpacitySolid, BorderType: BorderTypeNone, BorderColor: ColorBlack},
	{Justify: JustifyLeft, PrintDirection: DirectionTopToBottom, ScrollDirection: DirectionRightToLeft, WordWrap: false, DisplayEffect: DisplayEffectSnap, EffectDirection: DirectionLeftToRight, EffectSpeed: 1, FillColor: ColorBlack, FillOpacity: OpacitySolid, BorderType: BorderTypeNone, BorderColor: ColorBlack},
}

var predefinedPenStylesAttributes = [7]SetPenAttributesArgs{
	{PenSize: PenSizeStandard, FontStyle: FontStyleDefault, TextTag: TextTagDialog, Offset: TextOffsetNormal, EdgeType: EdgeTypeNone},
	{PenSize: PenSizeStandard, FontStyle: FontStyleMonospacedWithSerifs, TextTag: TextTagDialog, Offset: TextOffsetNormal, EdgeType: EdgeTypeNone},
	{PenSize: PenSizeStandard, FontStyle: FontStyleProportionallySpacedWithSerifs, TextTag: TextTagDialog, Offset: TextOffsetNormal, EdgeType: EdgeTypeNone},
	{PenSize: PenSizeStandard, FontStyle: FontStyleMonospacedWithoutSerifs, TextTag: TextTagDialog, Offset: TextOffsetNormal, EdgeType: EdgeTypeNone},
	{PenSize: PenSizeStandard, FontStyle: FontStyleProportionallySpacedWithoutSerifs, TextTag: TextTagDialog, Offset: TextOffsetNormal, EdgeType: EdgeTypeNone},
	{PenSize: PenSizeStandard, FontStyle: FontStyleMonospacedWithoutSerifs, TextTag: TextTagDialog, Offset: TextOffsetNormal, EdgeType: EdgeTypeUniform},
	{PenSize: PenSizeStandard, FontStyle: FontStyleProportionallySpacedWithoutSerifs, TextTag: TextTagDialog, Offset: TextOffsetNormal, EdgeType: EdgeTypeUniform},
}

var predefinedPenStylesColor = [7]SetPenColorArgs{
	{ForegroundColor: ColorWhite, ForegroundOpacity: OpacitySolid, BackgroundColor: ColorBlack, BackgroundOpacity: OpacitySolid, EdgeColor: ColorBlack},
	{ForegroundColor: ColorWhite, ForegroundOpacity: OpacitySolid, BackgroundColor: ColorBlack, BackgroundOpacity: OpacitySolid, EdgeColor: ColorBlack},
	{ForegroundColor: ColorWhite, ForegroundOpacity: OpacitySolid, BackgroundColor: ColorBlack, BackgroundOpacity: OpacitySolid, EdgeColor: ColorBlack},
	{ForegroundColor: ColorWhite, ForegroundOpacity: OpacitySolid, BackgroundColor: ColorBlack, BackgroundOpacity: OpacitySolid, EdgeColor: ColorBlack},
	{ForegroundColor: ColorWhite, ForegroundOpacity: OpacitySolid, BackgroundColor: ColorBlack, BackgroundOpacity: OpacitySolid, EdgeColor: ColorBlack},
	{ForegroundColor: ColorWhite, ForegroundOpacity: OpacitySolid, BackgroundColor: ColorBlack, BackgroundOpacity: OpacityTransparent, EdgeColor: ColorBlack},
	{ForegroundColor: ColorWhite, ForegroundOpacity: OpacitySolid, BackgroundColor: ColorBlack, BackgroundOpacity: OpacityTransparent, EdgeColor: ColorBlack},
}
