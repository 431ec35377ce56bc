package tables

// channelCounts maps channel_configuration 1-7 to an output channel count.
// Configuration 0 defers to a program config element inside the payload.
var channelCounts = [8]uint8{0, 1, 2, 3, 4, 5, 6, 8}

// GetChannelCount returns the number of channels for a channel configuration.
// Returns 0 for configuration 0 and for values above 7.
func GetChannelCount(config uint8) uint8 {
	if int(config) >= len(channelCounts) {
		return 0
	}
	return channelCounts[config]
}

var channelLayouts = [8]string{
	"defined in payload",
	"mono",
	"stereo",
	"3.0",
	"4.0",
	"5.0",
	"5.1",
	"7.1",
}

// ChannelLayout names the speaker layout of a channel configuration.
func ChannelLayout(config uint8) string {
	if int(config) >= len(channelLayouts) {
		return "unknown"
	}
	return channelLayouts[config]
}
