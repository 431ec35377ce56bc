// Package streamreader locates and decodes frame headers in a raw ADTS
// (Audio Data Transport Stream) elementary stream.
//
// An ADTS stream is a sequence of AAC frames, each prefixed by a 7 byte
// header (9 bytes when a CRC is present) that starts with the 12-bit
// syncword 0xFFF and declares the total length of its frame. Reading starts
// at an arbitrary byte offset, so the first header has to be found by
// scanning; every following header is reached by skipping the declared
// frame length.
//
// # Basic Usage
//
//	f, err := os.Open("audio.aac")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer f.Close()
//
//	w := streamreader.NewWalker(f, streamreader.Config{Offset: 0})
//	err = w.Walk(func(fr streamreader.Frame) error {
//	    fmt.Println(fr.Offset, fr.Header.ObjectType, fr.Header.FrameLength)
//	    return nil
//	})
//	if errors.Is(err, io.EOF) {
//	    // clean end of stream
//	}
//
// # Errors
//
// Validation failures are reported as Error codes (ErrInvalidSyncword,
// ErrInvalidObjectType, ErrInvalidFrameLength, ErrSyncNotFound) and source
// failures as *IOError, which matches ErrIO. Use Code to classify an error
// chain. There is no resynchronization: the first failure ends a walk.
//
// # Limitations
//
// The CRC that follows a protected header is neither read nor verified. The
// sampling frequency index is kept as an opaque index; mapping it to Hz is
// left to the caller. SBR and Parametric Stereo are not detected.
//
// # Thread Safety
//
// Nothing in this module is safe for concurrent use. A walker owns its
// source exclusively.
package streamreader
