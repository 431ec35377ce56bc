package streamreader

import "github.com/ePirat/streamreader/internal/format"

// MPEGVersion is the ADTS ID bit.
type MPEGVersion = format.MPEGVersion

// MPEG versions.
const (
	MPEG4 = format.MPEG4
	MPEG2 = format.MPEG2
)

// ObjectType represents an MPEG-4 audio object type.
type ObjectType = format.ObjectType

// Recognized audio object types.
const (
	ObjectTypeMain     = format.ObjectTypeMain
	ObjectTypeLC       = format.ObjectTypeLC // Low Complexity
	ObjectTypeSSR      = format.ObjectTypeSSR
	ObjectTypeLTP      = format.ObjectTypeLTP
	ObjectTypeSBR      = format.ObjectTypeSBR
	ObjectTypeScalable = format.ObjectTypeScalable
	ObjectTypeTwinVQ   = format.ObjectTypeTwinVQ
	ObjectTypeCELP     = format.ObjectTypeCELP
	ObjectTypeLayer1   = format.ObjectTypeLayer1
	ObjectTypeLayer2   = format.ObjectTypeLayer2
	ObjectTypeLayer3   = format.ObjectTypeLayer3
)

// ParseObjectType validates an audio object type number.
func ParseObjectType(n uint8) (ObjectType, error) {
	return format.ParseObjectType(n)
}

// ObjectTypeFromProfile maps the 2-bit ADTS profile field to an object type.
func ObjectTypeFromProfile(profile uint8) (ObjectType, error) {
	return format.ObjectTypeFromProfile(profile)
}
