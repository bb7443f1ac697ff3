// Package cea708 implements encoding and decoding of the CEA-708 cc_data
// bitstream carried in ATSC/DVB video elementary streams, per
// ANSI/CTA-708-E R-2018: DTVCC packets, their constituent Service blocks,
// the Code table of characters and control commands, and a streaming
// Parser/Writer pair that handle the framing and CEA-608 interleaving
// rules around that core.
//
// This package performs no caption rendering; it stops at decoded Code
// values and encoded bytes. Window/pen state simulation belongs to a
// layer above this one.
package cea708
