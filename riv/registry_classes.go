package riv

// ClassKind discriminates the concrete object classes the registry
// knows about. Dispatch elsewhere in the package is by switch on this
// tag, never through an indirection table — this mirrors the runtime's
// own generated model and gives the builder exhaustiveness checks.
type ClassKind int

const (
	ClassBackboard ClassKind = iota
	ClassArtboard
	ClassNode
	ClassShape
	ClassEllipse
	ClassRectangle
	ClassPath
	ClassFill
	ClassStroke
	ClassSolidColor
	ClassLinearGradient
	ClassRadialGradient
	ClassGradientStop
	ClassTrimPath
	ClassNestedArtboard
	ClassBone
	ClassRootBone
	ClassSkin
	ClassTendon
	ClassWeight
	ClassCubicWeight
	ClassIKConstraint
	ClassDistanceConstraint
	ClassTransformConstraint
	ClassTranslationConstraint
	ClassScaleConstraint
	ClassRotationConstraint
	ClassText
	ClassTextStyle
	ClassTextValueRun
	ClassImageAsset
	ClassFontAsset
	ClassAudioAsset
	ClassImage
	ClassLayoutComponent
	ClassLayoutComponentStyle
	ClassViewModel
	ClassViewModelProperty
	ClassDataBind
	ClassLinearAnimation
	ClassKeyedObject
	ClassKeyedProperty
	ClassKeyFrameDouble
	ClassKeyFrameColor
	ClassKeyFrameBool
	ClassKeyFrameString
	ClassKeyFrameID
	ClassCubicInterpolator
	ClassStateMachine
	ClassStateMachineLayer
	ClassStateMachineBoolInput
	ClassStateMachineNumberInput
	ClassStateMachineTriggerInput
	ClassEntryState
	ClassAnyState
	ClassExitState
	ClassAnimationState
	ClassStateTransition
	ClassTransitionBoolCondition
	ClassTransitionNumberCondition
	ClassTransitionTriggerCondition

	classKindCount
)

// PropertyRule describes how one property is handled for one class.
type PropertyRule struct {
	Key        PropertyKey
	Default    PropertyValue // value elided from the wire unless AlwaysEmit; left unset it is Uint(0), which matches no float, string or color value
	Required   bool          // must be present on every object of this class
	AlwaysEmit bool          // emit even when the value equals Default (e.g. LinearAnimation.duration)
	NeverEmit  bool          // never placed on the wire (e.g. LinearAnimation.quantize)
}

// ClassDef is the registry's full description of one object class.
type ClassDef struct {
	Kind       ClassKind
	Type       TypeKey
	Name       string // Go-facing name, used in error messages
	SceneType  string // JSON discriminator ("shape", "ellipse", ...); empty for implicit-only classes
	Properties []PropertyRule
	// Order, when non-nil, is the mandatory emission order for this
	// class's properties. When nil, the encoder emits properties sorted
	// by ascending key, which is deterministic but not semantically
	// mandated.
	Order []PropertyKey
	// NoParent marks classes that never carry parent_id (Backboard, Artboard).
	NoParent bool
	// ParentKinds, when non-nil, is the set of classes this class may be
	// declared directly under. nil means any container accepts it.
	ParentKinds []ClassKind
}

var classTable = buildClassTable()

func buildClassTable() [classKindCount]ClassDef {
	var t [classKindCount]ClassDef

	t[ClassBackboard] = ClassDef{Kind: ClassBackboard, Type: 1, Name: "Backboard", NoParent: true}

	t[ClassArtboard] = ClassDef{
		Kind: ClassArtboard, Type: 2, Name: "Artboard", SceneType: "artboard",
		Properties: []PropertyRule{
			{Key: PropWidth, Required: true},
			{Key: PropHeight, Required: true},
			{Key: PropName, Required: true},
		},
		Order:    []PropertyKey{PropWidth, PropHeight, PropName},
		NoParent: true,
	}

	t[ClassNode] = ClassDef{
		Kind: ClassNode, Type: 3, Name: "Node", SceneType: "node",
		Properties: transformProps(),
	}

	t[ClassShape] = ClassDef{
		Kind: ClassShape, Type: 4, Name: "Shape", SceneType: "shape",
		Properties: append(transformProps(),
			PropertyRule{Key: PropBlendMode, Default: Uint(0)},
		),
	}

	t[ClassEllipse] = ClassDef{
		Kind: ClassEllipse, Type: 5, Name: "Ellipse", SceneType: "ellipse",
		Properties: []PropertyRule{
			{Key: PropWidth, Required: true},
			{Key: PropHeight, Required: true},
			{Key: PropOriginX, Default: Float(0)},
			{Key: PropOriginY, Default: Float(0)},
		},
	}

	t[ClassRectangle] = ClassDef{
		Kind: ClassRectangle, Type: 6, Name: "Rectangle", SceneType: "rectangle",
		Properties: []PropertyRule{
			{Key: PropWidth, Required: true},
			{Key: PropHeight, Required: true},
			{Key: PropOriginX, Default: Float(0)},
			{Key: PropOriginY, Default: Float(0)},
			{Key: PropCornerRadius, Default: Float(0)},
		},
	}

	t[ClassPath] = ClassDef{
		Kind: ClassPath, Type: 7, Name: "Path", SceneType: "path",
		Properties: []PropertyRule{
			{Key: PropOriginX, Default: Float(0)},
			{Key: PropOriginY, Default: Float(0)},
		},
	}

	t[ClassFill] = ClassDef{
		Kind: ClassFill, Type: 8, Name: "Fill", SceneType: "fill",
		Properties: []PropertyRule{
			{Key: PropBlendMode, Default: Uint(0)},
			{Key: PropFillRule, Default: Uint(0)},
			{Key: PropIsVisible, Default: Bool(true)},
		},
	}

	t[ClassStroke] = ClassDef{
		Kind: ClassStroke, Type: 9, Name: "Stroke", SceneType: "stroke",
		Properties: []PropertyRule{
			{Key: PropBlendMode, Default: Uint(0)},
			{Key: PropIsVisible, Default: Bool(true)},
			{Key: PropStrokeThickness, Default: Float(1)},
		},
	}

	t[ClassSolidColor] = ClassDef{
		Kind: ClassSolidColor, Type: 10, Name: "SolidColor", SceneType: "solid_color",
		Properties: []PropertyRule{{Key: PropColor, Default: Color(0xFF000000)}},
	}

	t[ClassLinearGradient] = ClassDef{
		Kind: ClassLinearGradient, Type: 11, Name: "LinearGradient", SceneType: "linear_gradient",
		Properties: gradientProps(),
	}

	t[ClassRadialGradient] = ClassDef{
		Kind: ClassRadialGradient, Type: 12, Name: "RadialGradient", SceneType: "radial_gradient",
		Properties: gradientProps(),
	}

	t[ClassGradientStop] = ClassDef{
		Kind: ClassGradientStop, Type: 13, Name: "GradientStop", SceneType: "gradient_stop",
		Properties: []PropertyRule{
			{Key: PropGradientStopPos, Required: true},
			{Key: PropGradientStopCol, Default: Color(0xFF000000)},
		},
		ParentKinds: []ClassKind{ClassLinearGradient, ClassRadialGradient},
	}

	t[ClassTrimPath] = ClassDef{
		Kind: ClassTrimPath, Type: 14, Name: "TrimPath", SceneType: "trim_path",
		Properties: []PropertyRule{
			{Key: PropTrimStart, Default: Float(0)},
			{Key: PropTrimEnd, Default: Float(1)},
			{Key: PropTrimOffset, Default: Float(0)},
			{Key: PropTrimMode, Required: true},
			{Key: PropTrimEnabled, Default: Bool(true)},
		},
		ParentKinds: []ClassKind{ClassFill, ClassStroke},
	}

	t[ClassNestedArtboard] = ClassDef{
		Kind: ClassNestedArtboard, Type: 15, Name: "NestedArtboard", SceneType: "nested_artboard",
		Properties: append(transformProps(),
			PropertyRule{Key: PropNestedArtboard, Required: true},
		),
	}

	t[ClassBone] = ClassDef{
		Kind: ClassBone, Type: 16, Name: "Bone", SceneType: "bone",
		Properties: []PropertyRule{
			{Key: PropX, Default: Float(0)},
			{Key: PropY, Default: Float(0)},
			{Key: PropRotation, Default: Float(0)},
			{Key: PropBoneLength, Default: Float(0)},
		},
	}

	t[ClassRootBone] = ClassDef{
		Kind: ClassRootBone, Type: 17, Name: "RootBone", SceneType: "root_bone",
		Properties: []PropertyRule{
			{Key: PropX, Default: Float(0)},
			{Key: PropY, Default: Float(0)},
			{Key: PropRotation, Default: Float(0)},
		},
	}

	t[ClassSkin] = ClassDef{Kind: ClassSkin, Type: 18, Name: "Skin", SceneType: "skin"}

	t[ClassTendon] = ClassDef{
		Kind: ClassTendon, Type: 19, Name: "Tendon", SceneType: "tendon",
		Properties: []PropertyRule{{Key: PropTendonBoneRef, Required: true}},
	}

	t[ClassWeight] = ClassDef{
		Kind: ClassWeight, Type: 20, Name: "Weight", SceneType: "weight",
		Properties: []PropertyRule{{Key: PropWeightData, Default: Str("")}},
	}

	t[ClassCubicWeight] = ClassDef{
		Kind: ClassCubicWeight, Type: 21, Name: "CubicWeight", SceneType: "cubic_weight",
		Properties: []PropertyRule{{Key: PropWeightData, Default: Str("")}},
	}

	t[ClassIKConstraint] = ClassDef{
		Kind: ClassIKConstraint, Type: 22, Name: "IKConstraint", SceneType: "ik_constraint",
		Properties: constraintProps(),
	}
	t[ClassDistanceConstraint] = ClassDef{
		Kind: ClassDistanceConstraint, Type: 23, Name: "DistanceConstraint", SceneType: "distance_constraint",
		Properties: constraintProps(),
	}
	t[ClassTransformConstraint] = ClassDef{
		Kind: ClassTransformConstraint, Type: 24, Name: "TransformConstraint", SceneType: "transform_constraint",
		Properties: constraintProps(),
	}
	t[ClassTranslationConstraint] = ClassDef{
		Kind: ClassTranslationConstraint, Type: 25, Name: "TranslationConstraint", SceneType: "translation_constraint",
		Properties: append(constraintProps(),
			PropertyRule{Key: PropCopyX, Default: Bool(true)},
			PropertyRule{Key: PropCopyY, Default: Bool(true)},
		),
	}
	t[ClassScaleConstraint] = ClassDef{
		Kind: ClassScaleConstraint, Type: 26, Name: "ScaleConstraint", SceneType: "scale_constraint",
		Properties: append(constraintProps(),
			PropertyRule{Key: PropMinScale, Default: Float(1)},
			PropertyRule{Key: PropMaxScale, Default: Float(1)},
		),
	}
	t[ClassRotationConstraint] = ClassDef{
		Kind: ClassRotationConstraint, Type: 27, Name: "RotationConstraint", SceneType: "rotation_constraint",
		Properties: append(constraintProps(),
			PropertyRule{Key: PropRotationOffset, Default: Float(0)},
		),
	}

	t[ClassText] = ClassDef{
		Kind: ClassText, Type: 28, Name: "Text", SceneType: "text",
		Properties: []PropertyRule{
			{Key: PropWidth, Default: Float(0)},
			{Key: PropHeight, Default: Float(0)},
			{Key: PropTextOverflow, Default: Uint(0)},
		},
	}
	t[ClassTextStyle] = ClassDef{
		Kind: ClassTextStyle, Type: 29, Name: "TextStyle", SceneType: "text_style",
		Properties: []PropertyRule{
			{Key: PropFontSize, Default: Float(14)},
			{Key: PropLineHeight, Default: Float(0)},
			{Key: PropFontAssetRef, Required: true},
			{Key: PropFontStyleBold, Default: Bool(false)},
		},
	}
	t[ClassTextValueRun] = ClassDef{
		Kind: ClassTextValueRun, Type: 30, Name: "TextValueRun", SceneType: "text_value_run",
		Properties: []PropertyRule{
			{Key: PropTextRunValue, Default: Str("")},
			{Key: PropTextStyleRef, Required: true},
		},
	}

	t[ClassImageAsset] = ClassDef{
		Kind: ClassImageAsset, Type: 31, Name: "ImageAsset", SceneType: "image_asset",
		Properties: []PropertyRule{
			{Key: PropName, Required: true},
			{Key: PropAssetURI, Default: Str("")},
		},
	}
	t[ClassFontAsset] = ClassDef{
		Kind: ClassFontAsset, Type: 32, Name: "FontAsset", SceneType: "font_asset",
		Properties: []PropertyRule{
			{Key: PropName, Required: true},
			{Key: PropAssetURI, Default: Str("")},
		},
	}
	t[ClassAudioAsset] = ClassDef{
		Kind: ClassAudioAsset, Type: 33, Name: "AudioAsset", SceneType: "audio_asset",
		Properties: []PropertyRule{
			{Key: PropName, Required: true},
			{Key: PropAssetURI, Default: Str("")},
		},
	}
	t[ClassImage] = ClassDef{
		Kind: ClassImage, Type: 34, Name: "Image", SceneType: "image",
		Properties: append(transformProps(),
			PropertyRule{Key: PropImageAssetRef, Required: true},
		),
	}

	t[ClassLayoutComponent] = ClassDef{
		Kind: ClassLayoutComponent, Type: 35, Name: "LayoutComponent", SceneType: "layout_component",
		Properties: []PropertyRule{
			{Key: PropWidth, Default: Float(0)},
			{Key: PropHeight, Default: Float(0)},
		},
	}
	t[ClassLayoutComponentStyle] = ClassDef{
		Kind: ClassLayoutComponentStyle, Type: 36, Name: "LayoutComponentStyle", SceneType: "layout_component_style",
		Properties: []PropertyRule{
			{Key: PropLayoutFit, Default: Uint(0)},
			{Key: PropLayoutAlignment, Default: Uint(0)},
			{Key: PropLayoutGap, Default: Float(0)},
			{Key: PropLayoutPadding, Default: Float(0)},
		},
	}

	t[ClassViewModel] = ClassDef{
		Kind: ClassViewModel, Type: 37, Name: "ViewModel", SceneType: "view_model",
		Properties: []PropertyRule{{Key: PropName, Required: true}},
	}
	t[ClassViewModelProperty] = ClassDef{
		Kind: ClassViewModelProperty, Type: 38, Name: "ViewModelProperty", SceneType: "view_model_property",
		Properties: []PropertyRule{
			{Key: PropName, Required: true},
			{Key: PropVMPropertyType, Default: Uint(0)},
			{Key: PropVMDefaultNumber, Default: Float(0)},
			{Key: PropVMDefaultString, Default: Str("")},
			{Key: PropVMDefaultBool, Default: Bool(false)},
		},
	}
	t[ClassDataBind] = ClassDef{
		Kind: ClassDataBind, Type: 39, Name: "DataBind", SceneType: "data_bind",
		Properties: []PropertyRule{
			{Key: PropDataBindVMRef, Required: true},
			{Key: PropDataBindPropRef, Required: true},
			{Key: PropDataBindTargetKey, Required: true},
		},
	}

	t[ClassLinearAnimation] = ClassDef{
		Kind: ClassLinearAnimation, Type: 40, Name: "LinearAnimation", SceneType: "",
		Properties: []PropertyRule{
			{Key: PropName, Required: true},
			{Key: PropAnimFPS, Default: Uint(60), AlwaysEmit: true},
			{Key: PropAnimDuration, Default: Uint(0), AlwaysEmit: true},
			{Key: PropAnimSpeed, Default: Float(1)},
			{Key: PropAnimLoop, Default: Uint(0)},
			{Key: PropAnimWorkStart, Default: Uint(0)},
			{Key: PropAnimWorkEnd, Default: Uint(0)},
			{Key: PropAnimQuantize, NeverEmit: true},
		},
		Order: []PropertyKey{
			PropName, PropAnimFPS, PropAnimDuration,
			PropAnimSpeed, PropAnimLoop, PropAnimWorkStart, PropAnimWorkEnd,
		},
	}

	t[ClassKeyedObject] = ClassDef{
		Kind: ClassKeyedObject, Type: 41, Name: "KeyedObject",
		Properties: []PropertyRule{{Key: PropKeyedObjectRef, Required: true}},
	}
	t[ClassKeyedProperty] = ClassDef{
		Kind: ClassKeyedProperty, Type: 42, Name: "KeyedProperty",
		Properties: []PropertyRule{{Key: PropKeyedPropertyKey, Required: true}},
	}
	t[ClassKeyFrameDouble] = ClassDef{
		Kind: ClassKeyFrameDouble, Type: 43, Name: "KeyFrameDouble",
		Properties: []PropertyRule{
			{Key: PropKeyframeFrame, Required: true},
			{Key: PropKeyframeInterpRef, Default: Uint(0)},
			{Key: PropKeyframeValueFloat, Required: true},
		},
	}
	t[ClassKeyFrameColor] = ClassDef{
		Kind: ClassKeyFrameColor, Type: 44, Name: "KeyFrameColor",
		Properties: []PropertyRule{
			{Key: PropKeyframeFrame, Required: true},
			{Key: PropKeyframeInterpRef, Default: Uint(0)},
			{Key: PropKeyframeValueColor, Required: true},
		},
	}
	t[ClassKeyFrameBool] = ClassDef{
		Kind: ClassKeyFrameBool, Type: 45, Name: "KeyFrameBool",
		Properties: []PropertyRule{
			{Key: PropKeyframeFrame, Required: true},
			{Key: PropKeyframeValueBool, Required: true},
		},
	}
	t[ClassKeyFrameString] = ClassDef{
		Kind: ClassKeyFrameString, Type: 46, Name: "KeyFrameString",
		Properties: []PropertyRule{
			{Key: PropKeyframeFrame, Required: true},
			{Key: PropKeyframeValueString, Required: true},
		},
	}
	t[ClassKeyFrameID] = ClassDef{
		Kind: ClassKeyFrameID, Type: 47, Name: "KeyFrameId",
		Properties: []PropertyRule{
			{Key: PropKeyframeFrame, Required: true},
			{Key: PropKeyframeValueUint, Required: true},
		},
	}
	t[ClassCubicInterpolator] = ClassDef{
		Kind: ClassCubicInterpolator, Type: 48, Name: "CubicInterpolator",
		Properties: []PropertyRule{
			{Key: PropInterpolatorX1, Required: true},
			{Key: PropInterpolatorY1, Required: true},
			{Key: PropInterpolatorX2, Required: true},
			{Key: PropInterpolatorY2, Required: true},
		},
	}

	t[ClassStateMachine] = ClassDef{
		Kind: ClassStateMachine, Type: 49, Name: "StateMachine", SceneType: "",
		Properties: []PropertyRule{{Key: PropName, Required: true}},
	}
	t[ClassStateMachineLayer] = ClassDef{Kind: ClassStateMachineLayer, Type: 50, Name: "StateMachineLayer"}
	t[ClassStateMachineBoolInput] = ClassDef{
		Kind: ClassStateMachineBoolInput, Type: 51, Name: "StateMachineBoolInput",
		Properties: []PropertyRule{
			{Key: PropName, Required: true},
			{Key: PropSMInputValueBool, Default: Bool(false)},
		},
	}
	t[ClassStateMachineNumberInput] = ClassDef{
		Kind: ClassStateMachineNumberInput, Type: 52, Name: "StateMachineNumberInput",
		Properties: []PropertyRule{
			{Key: PropName, Required: true},
			{Key: PropSMInputValueNumber, Default: Float(0)},
		},
	}
	t[ClassStateMachineTriggerInput] = ClassDef{
		Kind: ClassStateMachineTriggerInput, Type: 53, Name: "StateMachineTriggerInput",
		Properties: []PropertyRule{{Key: PropName, Required: true}},
	}

	t[ClassEntryState] = ClassDef{Kind: ClassEntryState, Type: 54, Name: "EntryState"}
	t[ClassAnyState] = ClassDef{Kind: ClassAnyState, Type: 55, Name: "AnyState"}
	t[ClassExitState] = ClassDef{Kind: ClassExitState, Type: 56, Name: "ExitState"}
	t[ClassAnimationState] = ClassDef{
		Kind: ClassAnimationState, Type: 57, Name: "AnimationState",
		Properties: []PropertyRule{
			{Key: PropName, Required: true},
			{Key: PropSMStateAnimationRef, Required: true},
		},
	}
	t[ClassStateTransition] = ClassDef{
		Kind: ClassStateTransition, Type: 58, Name: "StateTransition",
		Properties: []PropertyRule{
			{Key: PropSMTransitionTarget, Required: true},
			{Key: PropSMTransitionDuration, Default: Uint(0)},
			{Key: PropSMTransitionExitTime, Default: Float(0)},
		},
	}
	t[ClassTransitionBoolCondition] = ClassDef{
		Kind: ClassTransitionBoolCondition, Type: 59, Name: "TransitionBoolCondition",
		Properties: []PropertyRule{
			{Key: PropSMConditionInputRef, Required: true},
			{Key: PropSMConditionValueBool, Default: Bool(true)},
		},
	}
	t[ClassTransitionNumberCondition] = ClassDef{
		Kind: ClassTransitionNumberCondition, Type: 60, Name: "TransitionNumberCondition",
		Properties: []PropertyRule{
			{Key: PropSMConditionInputRef, Required: true},
			{Key: PropSMConditionOp, Default: Uint(0)},
			{Key: PropSMConditionValueNum, Default: Float(0)},
		},
	}
	t[ClassTransitionTriggerCondition] = ClassDef{
		Kind: ClassTransitionTriggerCondition, Type: 61, Name: "TransitionTriggerCondition",
		Properties: []PropertyRule{{Key: PropSMConditionInputRef, Required: true}},
	}

	return t
}

func transformProps() []PropertyRule {
	return []PropertyRule{
		{Key: PropX, Default: Float(0)},
		{Key: PropY, Default: Float(0)},
		{Key: PropRotation, Default: Float(0)},
		{Key: PropScaleX, Default: Float(1)},
		{Key: PropScaleY, Default: Float(1)},
		{Key: PropOpacity, Default: Float(1)},
		{Key: PropIsVisible, Default: Bool(true)},
	}
}

func gradientProps() []PropertyRule {
	return []PropertyRule{
		{Key: PropGradientStartX, Default: Float(0)},
		{Key: PropGradientStartY, Default: Float(0)},
		{Key: PropGradientEndX, Default: Float(0)},
		{Key: PropGradientEndY, Default: Float(0)},
	}
}

func constraintProps() []PropertyRule {
	return []PropertyRule{
		{Key: PropConstraintStrength, Default: Float(1)},
		{Key: PropConstraintTarget, Required: true},
	}
}

var typeKeyIndex = func() map[TypeKey]ClassKind {
	m := make(map[TypeKey]ClassKind, classKindCount)
	for _, cd := range classTable {
		m[cd.Type] = cd.Kind
	}
	return m
}()

var sceneTypeIndex = func() map[string]ClassKind {
	m := make(map[string]ClassKind, classKindCount)
	for _, cd := range classTable {
		if cd.SceneType != "" {
			m[cd.SceneType] = cd.Kind
		}
	}
	return m
}()

// ClassByKind returns the registry entry for kind.
func ClassByKind(kind ClassKind) *ClassDef {
	if kind < 0 || kind >= classKindCount {
		return nil
	}
	return &classTable[kind]
}

// TypeKeyOf returns the wire type key for kind.
func TypeKeyOf(kind ClassKind) TypeKey {
	return classTable[kind].Type
}

// ClassOfType resolves a wire type key back to a ClassKind.
func ClassOfType(tk TypeKey) (ClassKind, bool) {
	k, ok := typeKeyIndex[tk]
	return k, ok
}

// ClassBySceneType resolves a scene-description JSON discriminator
// ("shape", "ellipse", ...) to a ClassKind.
func ClassBySceneType(sceneType string) (ClassKind, bool) {
	k, ok := sceneTypeIndex[sceneType]
	return k, ok
}
