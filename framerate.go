package cea708

// Framerate is a video framerate expressed as a numer/denom fraction.
// Framerates above 60fps are not well supported by the cc_data byte budget.
type Framerate struct {
	Numer uint32
	Denom uint32
}

// NewFramerate returns a Framerate of numer/denom frames per second.
func NewFramerate(numer, denom uint32) Framerate {
	return Framerate{Numer: numer, Denom: denom}
}

// CEA608PairsPerFrame is the number of CEA-608 byte pairs that fit in one
// frame at this framerate, rounded to the nearest integer. CEA-608 has a
// max bitrate of 60000/1001 pairs/s.
func (f Framerate) CEA608PairsPerFrame() int {
	return int(mulDivRound(60, f.Denom, f.Numer))
}

// MaxCCCount is the maximum number of cc_data triples that fit in one
// frame at this framerate, rounded to the nearest integer. CEA-708 has a
// max bitrate of 9600000/1001 bits/s.
func (f Framerate) MaxCCCount() int {
	return int(mulDivRound(600, f.Denom, f.Numer))
}

// mulDivRound computes round(a*b/c) using 64-bit intermediates, avoiding
// overflow for the small values Framerate deals in.
func mulDivRound(a, b, c uint32) uint64 {
	num := uint64(a) * uint64(b)
	half := uint64(c) / 2
	return (num + half) / uint64(c)
}
