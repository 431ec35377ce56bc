package main

import (
	"fmt"
	"io"

	"github.com/ePirat/streamreader"
	"github.com/ePirat/streamreader/internal/tables"
)

func printFrame(w io.Writer, fr streamreader.Frame) {
	h := fr.Header

	fmt.Fprintf(w, "Header at: %d\n", fr.Offset)
	fmt.Fprintf(w, "  Len is %d\n", h.FrameLength)
	fmt.Fprintf(w, "  ID is %s\n", h.Version)
	fmt.Fprintf(w, "  Profile is %s\n", h.ObjectType)

	if rate := tables.GetSampleRate(h.SFIndex); rate > 0 {
		fmt.Fprintf(w, "  Sampling frequency index is %d (%d Hz)\n", h.SFIndex, rate)
	} else {
		fmt.Fprintf(w, "  Sampling frequency index is %d (reserved)\n", h.SFIndex)
	}

	fmt.Fprintf(w, "  Channel configuration is %d (%s, %d channels)\n",
		h.ChannelConfiguration,
		tables.ChannelLayout(h.ChannelConfiguration),
		tables.GetChannelCount(h.ChannelConfiguration))
	fmt.Fprintf(w, "  Protection absent is %t\n", h.ProtectionAbsent)

	if asc, err := h.AudioSpecificConfig(); err == nil {
		fmt.Fprintf(w, "  AudioSpecificConfig is %X\n", asc)
	}
}

func printSummary(w io.Writer, walker *streamreader.Walker) {
	fmt.Fprintf(w, "End of stream after %d frames (%d bytes)\n", walker.Frames(), walker.Bytes())
}
