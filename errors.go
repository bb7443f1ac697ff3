package cea708

import (
	"errors"
	"fmt"
)

// LengthMismatch reports that a chunk of cc_data did not contain as many
// bytes as its own header advertised.
type LengthMismatch struct {
	Expected int
	Actual   int
}

func (e *LengthMismatch) Error() string {
	return fmt.Sprintf("cea708: data length %d does not match expected length %d", e.Actual, e.Expected)
}

// Cea608AfterCea708 reports CEA-608 compatibility byte pairs found after
// CEA-708 (DTVCC) triples within the same cc_data packet. The bitstream
// requires all CEA-608 triples to precede any CEA-708 triple.
type Cea608AfterCea708 struct {
	BytePos int
}

func (e *Cea608AfterCea708) Error() string {
	return fmt.Sprintf("cea708: cea-608 compatibility bytes found after cea-708 data at byte %d", e.BytePos)
}

// WouldOverflow reports that writing a Code or Service would exceed a
// fixed-size buffer, by the given number of bytes.
type WouldOverflow struct {
	Overflow int
}

func (e *WouldOverflow) Error() string {
	return fmt.Sprintf("cea708: write would overflow by %d bytes", e.Overflow)
}

var (
	// ErrReadOnly is returned by Service.PushCode on the NULL service
	// (number 0), which carries no codes.
	ErrReadOnly = errors.New("cea708: service 0 is read-only")

	// ErrEmptyService is returned by DTVCCPacket.PushService when given a
	// Service with no codes.
	ErrEmptyService = errors.New("cea708: service has no codes")
)

func codeErrorToLengthMismatch(err error) error {
	var ce *CodeError
	if errors.As(err, &ce) {
		return &LengthMismatch{Expected: ce.Expected, Actual: ce.Actual}
	}
	return err
}
