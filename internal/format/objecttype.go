// Package format defines the ADTS header enums and the error codes shared
// by the scanner, decoder and walker.
package format

// MPEGVersion is the ADTS ID bit.
type MPEGVersion uint8

// MPEG versions.
const (
	MPEG4 MPEGVersion = 0
	MPEG2 MPEGVersion = 1
)

func (v MPEGVersion) String() string {
	switch v {
	case MPEG4:
		return "MPEG-4"
	case MPEG2:
		return "MPEG-2"
	default:
		return "unknown"
	}
}

// ObjectType represents an MPEG-4 audio object type.
// Values are the audio object type numbers of ISO/IEC 14496-3.
type ObjectType uint8

// Recognized audio object types.
const (
	ObjectTypeMain        ObjectType = 1
	ObjectTypeLC          ObjectType = 2 // Low Complexity
	ObjectTypeSSR         ObjectType = 3 // Scalable Sample Rate
	ObjectTypeLTP         ObjectType = 4 // Long Term Prediction
	ObjectTypeSBR         ObjectType = 5 // Spectral Band Replication
	ObjectTypeScalable    ObjectType = 6
	ObjectTypeTwinVQ      ObjectType = 7
	ObjectTypeCELP        ObjectType = 8
	ObjectTypeLayer1      ObjectType = 32
	ObjectTypeLayer2      ObjectType = 33
	ObjectTypeLayer3      ObjectType = 34
	objectTypeUnspecified ObjectType = 0
)

var objectTypeNames = map[ObjectType]string{
	ObjectTypeMain:     "AAC_MAIN",
	ObjectTypeLC:       "AAC_LC",
	ObjectTypeSSR:      "AAC_SSR",
	ObjectTypeLTP:      "AAC_LTP",
	ObjectTypeSBR:      "SBR",
	ObjectTypeScalable: "AAC_SCALABLE",
	ObjectTypeTwinVQ:   "TWIN_VQ",
	ObjectTypeCELP:     "CELP",
	ObjectTypeLayer1:   "LAYER1",
	ObjectTypeLayer2:   "LAYER2",
	ObjectTypeLayer3:   "LAYER3",
}

func (ot ObjectType) String() string {
	if name, ok := objectTypeNames[ot]; ok {
		return name
	}
	return "unknown"
}

// ParseObjectType validates an audio object type number against the
// recognized set. Unrecognized numbers return ErrInvalidObjectType, never a
// default.
func ParseObjectType(n uint8) (ObjectType, error) {
	switch ot := ObjectType(n); ot {
	case ObjectTypeMain, ObjectTypeLC, ObjectTypeSSR, ObjectTypeLTP,
		ObjectTypeSBR, ObjectTypeScalable, ObjectTypeTwinVQ, ObjectTypeCELP,
		ObjectTypeLayer1, ObjectTypeLayer2, ObjectTypeLayer3:
		return ot, nil
	default:
		return objectTypeUnspecified, ErrInvalidObjectType
	}
}

// ObjectTypeFromProfile maps the 2-bit ADTS profile field to an object type.
//
// The profile field carries the object type minus one, so only Main, LC,
// SSR and LTP can be expressed. The mapping is the same for MPEG-2 and
// MPEG-4 headers.
func ObjectTypeFromProfile(profile uint8) (ObjectType, error) {
	if profile > 3 {
		return objectTypeUnspecified, ErrInvalidObjectType
	}
	return ParseObjectType(profile + 1)
}

// Profile returns the 2-bit ADTS profile code for ot.
// ok is false when ot cannot be carried in an ADTS header.
func (ot ObjectType) Profile() (profile uint8, ok bool) {
	if ot < ObjectTypeMain || ot > ObjectTypeLTP {
		return 0, false
	}
	return uint8(ot) - 1, true
}
