//go:build ignore

// This script generates the ADTS fixtures used by the tests.
// Run with: go run testdata/generate.go
//
// Generated files:
//   testdata/lc_stereo_44100.aac  3 bytes of junk, then five MPEG-4 AAC-LC
//                                 stereo 44.1 kHz frames without CRC.
//
// Payload bytes are a counting pattern below 0x80 so that only real
// headers can match the startcode scanner.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ePirat/streamreader"
)

// Fixture describes one generated stream.
type Fixture struct {
	Name       string
	Junk       []byte
	ObjectType streamreader.ObjectType
	SFIndex    uint8
	Channels   uint8
	Lengths    []uint16 // total frame lengths, header included
}

var fixtures = []Fixture{
	{
		Name:       "lc_stereo_44100.aac",
		Junk:       []byte{0x00, 0x12, 0x34},
		ObjectType: streamreader.ObjectTypeLC,
		SFIndex:    4, // 44100 Hz
		Channels:   2,
		Lengths:    []uint16{24, 31, 17, 40, 9},
	},
}

func main() {
	dir := "testdata"
	if _, err := os.Stat(dir); err != nil {
		dir = "."
	}

	for _, f := range fixtures {
		data, err := build(f)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", f.Name, err)
			os.Exit(1)
		}
		path := filepath.Join(dir, f.Name)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", f.Name, err)
			os.Exit(1)
		}
		fmt.Printf("Generated %s (%d bytes, %d frames)\n", path, len(data), len(f.Lengths))
	}
}

func build(f Fixture) ([]byte, error) {
	out := append([]byte{}, f.Junk...)

	for i, length := range f.Lengths {
		h := streamreader.Header{
			Version:              streamreader.MPEG4,
			ProtectionAbsent:     true,
			ObjectType:           f.ObjectType,
			SFIndex:              f.SFIndex,
			ChannelConfiguration: f.Channels,
			FrameLength:          length,
			BufferFullness:       0x7FF, // VBR
		}
		hdr, err := h.Encode()
		if err != nil {
			return nil, err
		}
		out = append(out, hdr...)

		for j := 0; j < h.DataSize(); j++ {
			out = append(out, byte(0x21+i*3+j)&0x7F)
		}
	}

	return out, nil
}
