package riv

// TypeKey identifies an object class on the wire. Every concrete object
// class has exactly one TypeKey, mirroring the reference runtime's
// generated constants.
type TypeKey uint16

// PropertyKey identifies a property within the union of all known
// properties across every object class. Property keys are globally
// unique: the same key always names the same semantic property, even
// when several classes carry it (x, opacity, is_visible, ...).
//
// Key 0 is reserved as the object terminator sentinel and is never a
// real property.
type PropertyKey uint16

// BackingType is the wire encoding family of a property value.
type BackingType uint8

const (
	BackingUintOrBool BackingType = 0
	BackingString      BackingType = 1
	BackingFloat       BackingType = 2
	BackingColor       BackingType = 3
)

func (b BackingType) String() string {
	switch b {
	case BackingUintOrBool:
		return "uint_or_bool"
	case BackingString:
		return "string"
	case BackingFloat:
		return "float"
	case BackingColor:
		return "color"
	default:
		return "unknown"
	}
}

// Baseline property keys the runtime knows natively. They must never
// appear in the ToC, even though they may appear on individual objects.
const (
	PropName     PropertyKey = 4
	PropParentID PropertyKey = 5
	PropWidth    PropertyKey = 7
	PropHeight   PropertyKey = 8
)

// Non-baseline property keys. Grouped by the subsystem that emits them;
// numbering mirrors the pinned upstream schema revision recorded in
// SchemaRevision below, not any particular ordering requirement.
const (
	PropX               PropertyKey = 13
	PropY               PropertyKey = 14
	PropRotation        PropertyKey = 15
	PropScaleX          PropertyKey = 16
	PropScaleY          PropertyKey = 17
	PropOpacity         PropertyKey = 18
	PropOriginX         PropertyKey = 19
	PropOriginY         PropertyKey = 20
	PropCornerRadius    PropertyKey = 21
	PropBlendMode       PropertyKey = 22
	PropFillRule        PropertyKey = 23
	PropColor           PropertyKey = 24
	PropGradientStartX  PropertyKey = 25
	PropGradientStartY  PropertyKey = 26
	PropGradientEndX    PropertyKey = 27
	PropGradientEndY    PropertyKey = 28
	PropGradientStopPos PropertyKey = 29
	PropGradientStopCol PropertyKey = 30
	PropTrimStart       PropertyKey = 31
	PropTrimEnd         PropertyKey = 32
	PropTrimOffset      PropertyKey = 33
	PropTrimMode        PropertyKey = 34
	PropTrimEnabled     PropertyKey = 41 // designated raw-byte bool
	PropNestedArtboard  PropertyKey = 35
	PropBoneLength      PropertyKey = 36
	PropTendonBoneRef   PropertyKey = 37
	PropWeightData      PropertyKey = 38
	PropConstraintStrength PropertyKey = 39
	PropConstraintTarget   PropertyKey = 40
	PropIsVisible          PropertyKey = 62 // designated raw-byte bool
	PropCopyX              PropertyKey = 43
	PropCopyY              PropertyKey = 44
	PropMinScale           PropertyKey = 45
	PropMaxScale           PropertyKey = 46
	PropRotationOffset     PropertyKey = 47
	PropTextRunValue       PropertyKey = 48
	PropTextStyleRef       PropertyKey = 49
	PropFontSize           PropertyKey = 50
	PropLineHeight         PropertyKey = 51
	PropFontAssetRef       PropertyKey = 52
	PropFontStyleBold      PropertyKey = 141 // designated raw-byte bool
	PropImageAssetRef      PropertyKey = 53
	PropAssetURI           PropertyKey = 54
	PropLayoutFit          PropertyKey = 55
	PropLayoutAlignment    PropertyKey = 56
	PropLayoutGap          PropertyKey = 57
	PropLayoutPadding      PropertyKey = 58
	PropTextOverflow       PropertyKey = 59
	PropVMPropertyType     PropertyKey = 60
	PropVMDefaultNumber    PropertyKey = 63
	PropVMDefaultString    PropertyKey = 64
	PropVMDefaultBool      PropertyKey = 164 // designated raw-byte bool
	PropDataBindVMRef      PropertyKey = 65
	PropDataBindPropRef    PropertyKey = 66
	PropDataBindTargetKey  PropertyKey = 67
	PropStrokeThickness    PropertyKey = 93

	PropAnimFPS        PropertyKey = 70
	PropAnimDuration   PropertyKey = 71
	PropAnimSpeed      PropertyKey = 72
	PropAnimLoop       PropertyKey = 73
	PropAnimWorkStart  PropertyKey = 74
	PropAnimWorkEnd    PropertyKey = 75
	PropAnimQuantize   PropertyKey = 76
	PropKeyedObjectRef   PropertyKey = 80
	PropKeyedPropertyKey PropertyKey = 81
	PropKeyframeFrame        PropertyKey = 82
	PropKeyframeInterpRef    PropertyKey = 83
	PropKeyframeValueFloat   PropertyKey = 84
	PropKeyframeValueColor   PropertyKey = 85
	PropKeyframeValueBool    PropertyKey = 86
	PropKeyframeValueString  PropertyKey = 87
	PropKeyframeValueUint    PropertyKey = 88
	PropInterpolatorX1 PropertyKey = 89
	PropInterpolatorY1 PropertyKey = 90
	PropInterpolatorX2 PropertyKey = 91
	PropInterpolatorY2 PropertyKey = 92

	PropSMInputValueBool      PropertyKey = 100
	PropSMInputValueNumber    PropertyKey = 101
	PropSMStateAnimationRef   PropertyKey = 102
	PropSMTransitionTarget    PropertyKey = 103
	PropSMTransitionDuration  PropertyKey = 104
	PropSMTransitionExitTime  PropertyKey = 105
	PropSMConditionInputRef   PropertyKey = 106
	PropSMConditionOp         PropertyKey = 107
	PropSMConditionValueNum   PropertyKey = 108
	PropSMConditionValueBool  PropertyKey = 376 // designated raw-byte bool
)

// SchemaRevision stamps the upstream generated-header revision the
// registry below was regenerated against. Changing any constant in this
// file without bumping this string is the silent-breakage the registry
// exists to prevent (spec §9 Open Questions).
const SchemaRevision = "rivc-registry-2026.07-r3"

// rawByteBoolKeys is the designated set of boolean property keys encoded
// as a single raw byte rather than a varuint. This is the fixed,
// reference-pinned list; adding to it means regenerating the registry,
// never guessing.
var rawByteBoolKeys = map[PropertyKey]bool{
	41:  true,
	62:  true,
	141: true,
	164: true,
	376: true,
}

// IsRawByteBool reports whether key is in the designated raw-byte boolean
// set. It is always false for keys whose backing type is not
// BackingUintOrBool.
func IsRawByteBool(key PropertyKey) bool {
	return rawByteBoolKeys[key]
}
