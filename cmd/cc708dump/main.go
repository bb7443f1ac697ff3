// Command cc708dump parses a raw stream of cc_data triples and prints the
// decoded DTVCCPackets, Services and Codes found in it.
//
// The input file is treated as a flat stream of cc_data triple bytes (no
// process_cc_data_flag/cc_count header), read in fixed-size chunks of 20
// triples and re-framed with a synthetic header before being pushed to the
// parser.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/zsiec/cea708"
)

const triplesPerChunk = 20

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "cc708dump filename")
		os.Exit(1)
	}

	if os.Getenv("CC708DUMP_DEBUG") != "" {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if err := run(os.Args[1]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("cc708dump: open %s: %w", path, err)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	parser := cea708.NewParser()

	buf := make([]byte, 2+triplesPerChunk*3)
	for i := 0; ; i++ {
		buf[0] = 0x40 | triplesPerChunk
		buf[1] = 0xFF
		n, err := io.ReadFull(r, buf[2:])
		if n > 0 {
			chunk := buf[:2+n]
			chunk[0] = 0x40 | byte(n/3)
			slog.Debug("pushing chunk", "index", i, "bytes", len(chunk))
			if perr := parser.Push(chunk); perr != nil {
				fmt.Fprintf(os.Stderr, "%d error parsing: %v\n", i, perr)
			}
			for {
				packet, ok := parser.PopPacket()
				if !ok {
					break
				}
				printPacket(i, packet)
			}
		}
		if err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return nil
			}
			return fmt.Errorf("cc708dump: read: %w", err)
		}
	}
}

func printPacket(frame int, packet cea708.DTVCCPacket) {
	fmt.Printf("%d start DTVCCPacket:%d\n", frame, packet.SequenceNo())
	for _, service := range packet.Services {
		fmt.Printf("%d  start Service:%d\n", frame, service.Number)
		for _, code := range service.Codes {
			fmt.Printf("%d   %+v\n", frame, code)
		}
		fmt.Printf("%d  end Service:%d\n", frame, service.Number)
	}
	fmt.Printf("%d end DTVCCPacket:%d\n", frame, packet.SequenceNo())
}
