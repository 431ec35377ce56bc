package tables

// SampleRates maps the ADTS sampling_frequency_index to a sample rate in Hz.
// Index 0-12 are defined; 13 and 14 are reserved and 15 means the rate is
// signalled explicitly, which ADTS cannot do.
//
// Source: ISO/IEC 14496-3 Table 1.18
var SampleRates = [13]uint32{
	96000, 88200, 64000, 48000, 44100, 32000,
	24000, 22050, 16000, 12000, 11025, 8000,
	7350,
}

// GetSampleRate returns the sample rate for a given index.
// Returns 0 for reserved or escape indices (>= 13).
func GetSampleRate(srIndex uint8) uint32 {
	if int(srIndex) >= len(SampleRates) {
		return 0
	}
	return SampleRates[srIndex]
}
