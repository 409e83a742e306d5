package riv

// propCatalogEntry is the wire-encoding fact about one property key,
// independent of which classes use it. This is what answers
// backing_type(key) and the baseline/ToC-exclusion rule; per-class
// defaults and required/elision behavior live in ClassDef.Properties.
type propCatalogEntry struct {
	Name     string
	Backing  BackingType
	Baseline bool
}

var propCatalog = map[PropertyKey]propCatalogEntry{
	PropName:     {"name", BackingString, true},
	PropParentID: {"parent_id", BackingUintOrBool, true},
	PropWidth:    {"width", BackingFloat, true},
	PropHeight:   {"height", BackingFloat, true},

	PropX:               {"x", BackingFloat, false},
	PropY:               {"y", BackingFloat, false},
	PropRotation:        {"rotation", BackingFloat, false},
	PropScaleX:          {"scale_x", BackingFloat, false},
	PropScaleY:          {"scale_y", BackingFloat, false},
	PropOpacity:         {"opacity", BackingFloat, false},
	PropOriginX:         {"origin_x", BackingFloat, false},
	PropOriginY:         {"origin_y", BackingFloat, false},
	PropCornerRadius:    {"corner_radius", BackingFloat, false},
	PropBlendMode:       {"blend_mode", BackingUintOrBool, false},
	PropFillRule:        {"fill_rule", BackingUintOrBool, false},
	PropColor:           {"color", BackingColor, false},
	PropGradientStartX:  {"gradient_start_x", BackingFloat, false},
	PropGradientStartY:  {"gradient_start_y", BackingFloat, false},
	PropGradientEndX:    {"gradient_end_x", BackingFloat, false},
	PropGradientEndY:    {"gradient_end_y", BackingFloat, false},
	PropGradientStopPos: {"position", BackingFloat, false},
	PropGradientStopCol: {"color", BackingColor, false},
	PropTrimStart:       {"start", BackingFloat, false},
	PropTrimEnd:         {"end", BackingFloat, false},
	PropTrimOffset:      {"offset", BackingFloat, false},
	PropTrimMode:        {"mode", BackingUintOrBool, false},
	PropTrimEnabled:     {"is_enabled", BackingUintOrBool, false},
	PropNestedArtboard:  {"artboard_ref", BackingUintOrBool, false},
	PropBoneLength:      {"length", BackingFloat, false},
	PropTendonBoneRef:   {"bone_ref", BackingUintOrBool, false},
	PropWeightData:      {"weight_data", BackingString, false},
	PropConstraintStrength: {"strength", BackingFloat, false},
	PropConstraintTarget:   {"target_ref", BackingUintOrBool, false},
	PropIsVisible:          {"is_visible", BackingUintOrBool, false},
	PropCopyX:              {"copy_x", BackingUintOrBool, false},
	PropCopyY:              {"copy_y", BackingUintOrBool, false},
	PropMinScale:           {"min_scale", BackingFloat, false},
	PropMaxScale:           {"max_scale", BackingFloat, false},
	PropRotationOffset:     {"rotation_offset", BackingFloat, false},
	PropTextRunValue:       {"text", BackingString, false},
	PropTextStyleRef:       {"style_ref", BackingUintOrBool, false},
	PropFontSize:           {"font_size", BackingFloat, false},
	PropLineHeight:         {"line_height", BackingFloat, false},
	PropFontAssetRef:       {"font_asset_ref", BackingUintOrBool, false},
	PropFontStyleBold:      {"is_bold", BackingUintOrBool, false},
	PropImageAssetRef:      {"image_asset_ref", BackingUintOrBool, false},
	PropAssetURI:           {"uri", BackingString, false},
	PropLayoutFit:          {"fit", BackingUintOrBool, false},
	PropLayoutAlignment:    {"alignment", BackingUintOrBool, false},
	PropLayoutGap:          {"gap", BackingFloat, false},
	PropLayoutPadding:      {"padding", BackingFloat, false},
	PropTextOverflow:       {"overflow", BackingUintOrBool, false},
	PropVMPropertyType:     {"property_type", BackingUintOrBool, false},
	PropVMDefaultNumber:    {"default_number", BackingFloat, false},
	PropVMDefaultString:    {"default_string", BackingString, false},
	PropVMDefaultBool:      {"default_bool", BackingUintOrBool, false},
	PropDataBindVMRef:      {"view_model_ref", BackingUintOrBool, false},
	PropDataBindPropRef:    {"property_ref", BackingUintOrBool, false},
	PropDataBindTargetKey:  {"target_property_key", BackingUintOrBool, false},
	PropStrokeThickness:    {"thickness", BackingFloat, false},

	PropAnimFPS:       {"fps", BackingUintOrBool, false},
	PropAnimDuration:  {"duration", BackingUintOrBool, false},
	PropAnimSpeed:     {"speed", BackingFloat, false},
	PropAnimLoop:      {"loop", BackingUintOrBool, false},
	PropAnimWorkStart: {"work_start", BackingUintOrBool, false},
	PropAnimWorkEnd:   {"work_end", BackingUintOrBool, false},
	PropAnimQuantize:  {"quantize", BackingUintOrBool, false},

	PropKeyedObjectRef:      {"object_ref", BackingUintOrBool, false},
	PropKeyedPropertyKey:    {"property_key", BackingUintOrBool, false},
	PropKeyframeFrame:       {"frame", BackingUintOrBool, false},
	PropKeyframeInterpRef:   {"interpolator_ref", BackingUintOrBool, false},
	PropKeyframeValueFloat:  {"value", BackingFloat, false},
	PropKeyframeValueColor:  {"value", BackingColor, false},
	PropKeyframeValueBool:   {"value", BackingUintOrBool, false},
	PropKeyframeValueString: {"value", BackingString, false},
	PropKeyframeValueUint:   {"value", BackingUintOrBool, false},
	PropInterpolatorX1:      {"x1", BackingFloat, false},
	PropInterpolatorY1:      {"y1", BackingFloat, false},
	PropInterpolatorX2:      {"x2", BackingFloat, false},
	PropInterpolatorY2:      {"y2", BackingFloat, false},

	PropSMInputValueBool:     {"value", BackingUintOrBool, false},
	PropSMInputValueNumber:   {"value", BackingFloat, false},
	PropSMStateAnimationRef:  {"animation_ref", BackingUintOrBool, false},
	PropSMTransitionTarget:   {"target_ref", BackingUintOrBool, false},
	PropSMTransitionDuration: {"duration", BackingUintOrBool, false},
	PropSMTransitionExitTime: {"exit_time", BackingFloat, false},
	PropSMConditionInputRef:  {"input_ref", BackingUintOrBool, false},
	PropSMConditionOp:        {"op", BackingUintOrBool, false},
	PropSMConditionValueNum:  {"value", BackingFloat, false},
	PropSMConditionValueBool: {"value", BackingUintOrBool, false},
}

// BackingTypeOf answers registry query 2: the wire encoding family for a
// property key. The bool result is false for unclassified keys, which is
// a construction error per invariant 4.
func BackingTypeOf(key PropertyKey) (BackingType, bool) {
	e, ok := propCatalog[key]
	if !ok {
		return 0, false
	}
	return e.Backing, true
}

// IsBaseline reports whether key is one of {name, parent_id, width,
// height}: known natively by the runtime and always excluded from the ToC.
func IsBaseline(key PropertyKey) bool {
	e, ok := propCatalog[key]
	return ok && e.Baseline
}

// PropertyName returns the human-readable name of a property key, used
// in diagnostics. Returns "" for unknown keys.
func PropertyName(key PropertyKey) string {
	return propCatalog[key].Name
}

// PropertyRuleFor returns the class-specific rule for key on kind, if
// that class carries the property.
func PropertyRuleFor(kind ClassKind, key PropertyKey) (PropertyRule, bool) {
	cd := ClassByKind(kind)
	if cd == nil {
		return PropertyRule{}, false
	}
	for _, r := range cd.Properties {
		if r.Key == key {
			return r, true
		}
	}
	return PropertyRule{}, false
}
