// internal/syntax/asc.go
package syntax

import (
	"errors"

	pkgerrors "github.com/pkg/errors"

	"github.com/ePirat/streamreader/internal/bits"
)

// AudioSpecificConfig errors.
var (
	// ErrASCInvalidSampleRate is returned for a reserved or escape sample rate index.
	ErrASCInvalidSampleRate = errors.New("syntax: invalid sample rate index for AudioSpecificConfig")

	// ErrASCInvalidChannelConfig is returned for channel configuration 0,
	// which needs the program config element from the payload.
	ErrASCInvalidChannelConfig = errors.New("syntax: channel configuration needs a program config element")
)

// ascLen is the size of a GA AudioSpecificConfig without extensions.
const ascLen = 2

// AudioSpecificConfig builds the 2 byte AudioSpecificConfig that describes
// the stream of h outside of ADTS, as stored in an MP4 esds box.
//
// Layout (ISO/IEC 14496-3 1.6.2.1 and 4.4.1):
//   - audioObjectType: 5 bits
//   - samplingFrequencyIndex: 4 bits
//   - channelConfiguration: 4 bits
//   - frameLengthFlag: 1 bit (0, 1024 samples)
//   - dependsOnCoreCoder: 1 bit (0)
//   - extensionFlag: 1 bit (0)
func (h *Header) AudioSpecificConfig() ([]byte, error) {
	if _, ok := h.ObjectType.Profile(); !ok {
		return nil, pkgerrors.Wrapf(ErrUnencodable, "object type %s", h.ObjectType)
	}
	if h.SFIndex > 12 {
		return nil, pkgerrors.Wrapf(ErrASCInvalidSampleRate, "index %d", h.SFIndex)
	}
	if h.ChannelConfiguration == 0 {
		return nil, ErrASCInvalidChannelConfig
	}

	w := bits.NewWriter(ascLen)
	w.PutBits(5, uint32(h.ObjectType))
	w.PutBits(4, uint32(h.SFIndex))
	w.PutBits(4, uint32(h.ChannelConfiguration))
	w.PutBool(false) // frameLengthFlag
	w.PutBool(false) // dependsOnCoreCoder
	w.PutBool(false) // extensionFlag

	return w.Bytes(), nil
}
