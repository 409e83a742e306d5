package riv

import (
	"fmt"
	"sort"

	json "github.com/goccy/go-json"
)

// Build compiles a decoded scene Document into the ordered object list
// spec §4.C describes: a Backboard, then for each artboard (in declared
// order) the Artboard object followed by every descendant it implies,
// with names resolved to artboard-local indices and implicit objects
// (Backboard, state-machine sentinels, transitions) inserted.
func Build(doc *Document, cfg Config) ([]Object, error) {
	artboards := doc.ArtboardList()
	if len(artboards) == 0 {
		return nil, parseError("scene describes no artboards")
	}

	ordinals := make(map[string]int, len(artboards))
	for i, a := range artboards {
		if _, dup := ordinals[a.Name]; dup {
			return nil, duplicateName(a.Name, nil)
		}
		ordinals[a.Name] = i
	}

	if err := checkNestedArtboardCycles(artboards, ordinals); err != nil {
		return nil, err
	}

	subtrees := make([][]Object, len(artboards))
	nestedPatches := make([][]nestedPatch, len(artboards))
	for i := range artboards {
		objs, patches, err := buildArtboard(&artboards[i], ordinals)
		if err != nil {
			return nil, err
		}
		subtrees[i] = objs
		nestedPatches[i] = patches
	}

	offsets := make([]int, len(artboards))
	running := 1 // Backboard occupies global index 0
	for i, objs := range subtrees {
		offsets[i] = running
		running += len(objs)
	}

	for i, patches := range nestedPatches {
		for _, p := range patches {
			target := offsets[p.targetOrdinal]
			subtrees[i][p.localIdx].Set(PropNestedArtboard, Uint(uint64(target)))
		}
	}

	result := make([]Object, 0, running)
	result = append(result, Object{Type: TypeKeyOf(ClassBackboard), Class: ClassBackboard})
	for _, objs := range subtrees {
		result = append(result, objs...)
	}
	return result, nil
}

// nestedPatch records a NestedArtboard object (by local index within its
// owning artboard's subtree) whose artboard_ref still needs the target
// artboard's resolved global index, known only once every artboard's
// subtree size has been computed.
type nestedPatch struct {
	localIdx      int
	targetOrdinal int
}

// checkNestedArtboardCycles walks the nested_artboard reference graph
// before any object is built, so a cycle is reported as a BuildError
// rather than recursing forever during construction.
func checkNestedArtboardCycles(artboards []ArtboardDesc, ordinals map[string]int) error {
	edges := make([][]int, len(artboards))
	var collect func(children []ChildDesc) []string
	collect = func(children []ChildDesc) []string {
		var refs []string
		for _, c := range children {
			if c.Type == "nested_artboard" {
				if name, ok, _ := fieldString(c.Fields, "artboard_ref"); ok {
					refs = append(refs, name)
				}
			}
			refs = append(refs, collect(c.Children)...)
		}
		return refs
	}
	for i := range artboards {
		for _, refName := range collect(artboards[i].Children) {
			target, ok := ordinals[refName]
			if !ok {
				return missingReference(refName)
			}
			edges[i] = append(edges[i], target)
		}
	}

	const (
		unvisited = 0
		visiting  = 1
		done      = 2
	)
	state := make([]int, len(artboards))
	var visit func(i int) error
	visit = func(i int) error {
		switch state[i] {
		case done:
			return nil
		case visiting:
			return circularNestedArtboard(artboards[i].Name)
		}
		state[i] = visiting
		for _, next := range edges[i] {
			if err := visit(next); err != nil {
				return err
			}
		}
		state[i] = done
		return nil
	}
	for i := range artboards {
		if err := visit(i); err != nil {
			return err
		}
	}
	return nil
}

// pendingRef is a property that names another object by its declared
// name; it is resolved once the whole artboard's name table is
// complete, which allows both backward and forward references.
type pendingRef struct {
	objIdx    int
	key       PropertyKey
	name      string
	wantKinds []ClassKind // nil means any kind is acceptable
}

// pendingVMProperty is DataBind's property_ref: it must resolve to a
// ViewModelProperty parented by the DataBind's already-resolved
// view_model_ref, not merely any same-named object in the artboard.
type pendingVMProperty struct {
	objIdx int
	name   string
}

type buildCtx struct {
	artboardName string
	objects      []Object
	names        map[string]int
	pending      []pendingRef
	pendingVM    []pendingVMProperty
	nested       []nestedPatch
	ordinals     map[string]int // artboard name -> declaration ordinal, for nested_artboard refs
}

func (b *buildCtx) add(obj Object, declaredName string) (int, error) {
	idx := len(b.objects)
	if declaredName != "" {
		if _, dup := b.names[declaredName]; dup {
			return 0, duplicateName(declaredName, []string{b.artboardName})
		}
		b.names[declaredName] = idx
	}
	obj.Name = declaredName
	b.objects = append(b.objects, obj)
	return idx, nil
}

// emit appends a new object parented to parentIdx, sets its name
// property and registers name in the artboard's name table (both only
// when name is non-empty), for the animation and state-machine
// builders that construct objects directly rather than from JSON
// fields.
func (b *buildCtx) emit(kind ClassKind, parentIdx int, name string) (int, error) {
	cd := ClassByKind(kind)
	obj := Object{Type: cd.Type, Class: kind}
	if !cd.NoParent {
		obj.Set(PropParentID, Uint(uint64(parentIdx)))
	}
	if name != "" {
		obj.Set(PropName, Str(name))
	}
	return b.add(obj, name)
}

// resolveNamed looks up name in the artboard's name table, requiring
// the resolved object's class to be one of wantKinds when non-nil.
func (b *buildCtx) resolveNamed(name string, wantKinds ...ClassKind) (int, error) {
	idx, ok := b.names[name]
	if !ok {
		return 0, missingReference(name)
	}
	if len(wantKinds) == 0 {
		return idx, nil
	}
	for _, k := range wantKinds {
		if b.objects[idx].Class == k {
			return idx, nil
		}
	}
	return 0, parentTypeMismatch(name, ClassByKind(b.objects[idx].Class).Name)
}

func buildArtboard(ad *ArtboardDesc, ordinals map[string]int) ([]Object, []nestedPatch, error) {
	width, height, err := ad.ResolveSize()
	if err != nil {
		return nil, nil, parseError(err.Error())
	}
	if width <= 0 || height <= 0 {
		return nil, nil, outOfRange("width/height", fmt.Sprintf("%gx%g", width, height))
	}

	ctx := &buildCtx{artboardName: ad.Name, names: make(map[string]int), ordinals: ordinals}
	artboardObj := Object{Type: TypeKeyOf(ClassArtboard), Class: ClassArtboard}
	artboardObj.Set(PropWidth, Float(float32(width)))
	artboardObj.Set(PropHeight, Float(float32(height)))
	artboardObj.Set(PropName, Str(ad.Name))
	if _, err := ctx.add(artboardObj, ad.Name); err != nil {
		return nil, nil, err
	}
	const artboardIdx = 0

	if err := walkChildren(ctx, artboardIdx, ad.Children); err != nil {
		return nil, nil, err
	}
	if err := buildAnimations(ctx, artboardIdx, ad.Animations); err != nil {
		return nil, nil, err
	}
	if err := buildStateMachines(ctx, artboardIdx, ad.StateMachines); err != nil {
		return nil, nil, err
	}
	if err := resolvePending(ctx); err != nil {
		return nil, nil, err
	}
	return ctx.objects, ctx.nested, nil
}

// geometryClasses precede paint classes among a Shape's children; every
// other class keeps its declared relative position after those two
// buckets. This is the one sibling-reordering rule the registry marks
// significant.
var geometryClasses = map[ClassKind]bool{
	ClassEllipse: true, ClassRectangle: true, ClassPath: true,
}
var paintClasses = map[ClassKind]bool{
	ClassFill: true, ClassStroke: true,
}

func normalizeShapeChildren(children []ChildDesc) []ChildDesc {
	out := make([]ChildDesc, 0, len(children))
	var geom, paint, other []ChildDesc
	for _, c := range children {
		kind, ok := ClassBySceneType(c.Type)
		switch {
		case ok && geometryClasses[kind]:
			geom = append(geom, c)
		case ok && paintClasses[kind]:
			paint = append(paint, c)
		default:
			other = append(other, c)
		}
	}
	out = append(out, geom...)
	out = append(out, paint...)
	out = append(out, other...)
	return out
}

func walkChildren(ctx *buildCtx, parentIdx int, children []ChildDesc) error {
	for _, child := range children {
		kind, ok := ClassBySceneType(child.Type)
		if !ok {
			return unsupportedType(child.Type)
		}
		if err := checkParentContainment(ctx, parentIdx, kind, child.Type); err != nil {
			return err
		}
		idx, err := createObject(ctx, parentIdx, kind, child.Name, child.Fields)
		if err != nil {
			return err
		}

		grandChildren := child.Children
		if kind == ClassShape {
			grandChildren = normalizeShapeChildren(grandChildren)
		}
		if err := walkChildren(ctx, idx, grandChildren); err != nil {
			return err
		}
	}
	return nil
}

// checkParentContainment enforces a class's declared ParentKinds, when
// it has any: TrimPath must be a direct child of a Fill or Stroke, a
// GradientStop of a LinearGradient or RadialGradient, never a bare
// Shape or anything else (spec §4.C containment rules).
func checkParentContainment(ctx *buildCtx, parentIdx int, kind ClassKind, sceneType string) error {
	cd := ClassByKind(kind)
	if cd.ParentKinds == nil {
		return nil
	}
	parentKind := ctx.objects[parentIdx].Class
	for _, pk := range cd.ParentKinds {
		if pk == parentKind {
			return nil
		}
	}
	parentCD := ClassByKind(parentKind)
	return parentTypeMismatch(sceneType, parentCD.SceneType)
}

// createObject instantiates one object of kind, filling its properties
// from fields using the registry's class definition: required
// properties must be present, defaults apply when absent, and
// reference-typed and enum-typed properties get the special handling
// ordinary scalar fields don't need.
func createObject(ctx *buildCtx, parentIdx int, kind ClassKind, name string, fields map[string]json.RawMessage) (int, error) {
	cd := ClassByKind(kind)
	obj := Object{Type: cd.Type, Class: kind}
	if !cd.NoParent {
		obj.Set(PropParentID, Uint(uint64(parentIdx)))
	}
	if name != "" {
		obj.Set(PropName, Str(name))
	}

	for _, rule := range cd.Properties {
		if rule.Key == PropName {
			if rule.Required && name == "" {
				return 0, parseError(fmt.Sprintf("%s requires a name", cd.Name))
			}
			continue
		}
		if err := fillProperty(ctx, &obj, cd, rule, fields); err != nil {
			return 0, err
		}
	}

	idx, err := ctx.add(obj, name)
	if err != nil {
		return 0, err
	}
	if err := registerRefs(ctx, idx, kind, fields); err != nil {
		return 0, err
	}
	return idx, nil
}

func fillProperty(ctx *buildCtx, obj *Object, cd *ClassDef, rule PropertyRule, fields map[string]json.RawMessage) error {
	propName := PropertyName(rule.Key)
	backing, _ := BackingTypeOf(rule.Key)

	// Reference-typed and enum-typed properties are resolved in
	// registerRefs/setEnumProperty after the object exists; skip them
	// here so the generic path doesn't fight the specialized one.
	if isReferenceProperty(rule.Key) || isEnumProperty(rule.Key) {
		return nil
	}

	switch backing {
	case BackingFloat:
		v, present, err := fieldFloat(fields, propName)
		if err != nil {
			return parseError(err.Error())
		}
		if !present {
			if rule.Required {
				return parseError(fmt.Sprintf("%s.%s is required", cd.Name, propName))
			}
			return nil
		}
		if rule.Key == PropGradientStopPos && (v < 0 || v > 1) {
			return outOfRange(propName, v)
		}
		val := Float(float32(v))
		if rule.AlwaysEmit || !rule.Default.Equal(val) {
			obj.Set(rule.Key, val)
		}
	case BackingString:
		v, present, err := fieldString(fields, propName)
		if err != nil {
			return parseError(err.Error())
		}
		if !present {
			if rule.Required {
				return parseError(fmt.Sprintf("%s.%s is required", cd.Name, propName))
			}
			return nil
		}
		val := Str(v)
		if rule.AlwaysEmit || !rule.Default.Equal(val) {
			obj.Set(rule.Key, val)
		}
	case BackingColor:
		v, present, err := fieldColor(fields, propName)
		if err != nil {
			return parseError(err.Error())
		}
		if !present {
			if rule.Required {
				return parseError(fmt.Sprintf("%s.%s is required", cd.Name, propName))
			}
			return nil
		}
		val := Color(v)
		if rule.AlwaysEmit || !rule.Default.Equal(val) {
			obj.Set(rule.Key, val)
		}
	case BackingUintOrBool:
		if rule.Default.Tag() == TagBool {
			v, present, err := fieldBool(fields, propName)
			if err != nil {
				return parseError(err.Error())
			}
			if !present {
				if rule.Required {
					return parseError(fmt.Sprintf("%s.%s is required", cd.Name, propName))
				}
				return nil
			}
			val := Bool(v)
			if rule.AlwaysEmit || !rule.Default.Equal(val) {
				obj.Set(rule.Key, val)
			}
			return nil
		}
		v, present, err := fieldFloat(fields, propName)
		if err != nil {
			return parseError(err.Error())
		}
		if !present {
			if rule.Required {
				return parseError(fmt.Sprintf("%s.%s is required", cd.Name, propName))
			}
			return nil
		}
		val := Uint(uint64(v))
		if rule.AlwaysEmit || !rule.Default.Equal(val) {
			obj.Set(rule.Key, val)
		}
	}
	if rule.NeverEmit {
		// Quantize and similarly disabled properties never reach the
		// wire even if a value was computed above for elision bookkeeping.
		removeProperty(obj, rule.Key)
	}
	return nil
}

func removeProperty(obj *Object, key PropertyKey) {
	for i, p := range obj.Properties {
		if p.Key == key {
			obj.Properties = append(obj.Properties[:i], obj.Properties[i+1:]...)
			return
		}
	}
}

// isReferenceProperty reports whether key names another object and is
// therefore handled by registerRefs/resolvePending instead of the
// scalar fillProperty path.
func isReferenceProperty(key PropertyKey) bool {
	switch key {
	case PropNestedArtboard, PropTendonBoneRef, PropConstraintTarget,
		PropTextStyleRef, PropFontAssetRef, PropImageAssetRef,
		PropDataBindVMRef, PropDataBindPropRef,
		PropKeyedObjectRef, PropKeyframeInterpRef,
		PropSMStateAnimationRef, PropSMTransitionTarget, PropSMConditionInputRef:
		return true
	}
	return false
}

func isEnumProperty(key PropertyKey) bool {
	_, ok := enumTables[key]
	return ok
}

var enumTables = map[PropertyKey]map[string]uint64{
	PropBlendMode: {
		"normal": 0, "multiply": 1, "screen": 2, "darken": 3, "lighten": 4,
		"overlay": 5, "color_dodge": 6, "color_burn": 7, "hard_light": 8,
		"soft_light": 9, "difference": 10, "exclusion": 11, "hue": 12,
		"saturation": 13, "color": 14, "luminosity": 15,
	},
	PropFillRule:      {"nonzero": 0, "evenodd": 1},
	PropTrimMode:      {"sequential": 1, "synchronized": 2},
	PropAnimLoop:      {"oneshot": 0, "loop": 1, "pingpong": 2},
	PropLayoutFit:     {"fill": 0, "contain": 1, "cover": 2, "fit_width": 3, "fit_height": 4, "none": 5, "scale_down": 6},
	PropLayoutAlignment: {
		"top_left": 0, "top_center": 1, "top_right": 2,
		"center_left": 3, "center": 4, "center_right": 5,
		"bottom_left": 6, "bottom_center": 7, "bottom_right": 8,
	},
	PropTextOverflow:   {"visible": 0, "clip": 1, "ellipsis": 2},
	PropVMPropertyType: {"number": 0, "string": 1, "boolean": 2, "color": 3, "enum": 4, "trigger": 5, "view_model": 6},
	PropSMConditionOp:  {"equal": 0, "not_equal": 1, "less": 2, "less_or_equal": 3, "greater": 4, "greater_or_equal": 5},
}

func setEnumProperty(obj *Object, cd *ClassDef, rule PropertyRule, fields map[string]json.RawMessage) error {
	table := enumTables[rule.Key]
	propName := PropertyName(rule.Key)
	s, present, err := fieldString(fields, propName)
	if err != nil {
		return parseError(err.Error())
	}
	if !present {
		if rule.Required {
			return parseError(fmt.Sprintf("%s.%s is required", cd.Name, propName))
		}
		return nil
	}
	v, ok := table[s]
	if !ok {
		return invalidEnum(propName, s)
	}
	val := Uint(v)
	if rule.AlwaysEmit || !rule.Default.Equal(val) {
		obj.Set(rule.Key, val)
	}
	return nil
}

// registerRefs fills enum properties immediately (no forward-reference
// concern) and queues name-reference properties for resolvePending.
func registerRefs(ctx *buildCtx, idx int, kind ClassKind, fields map[string]json.RawMessage) error {
	cd := ClassByKind(kind)
	for _, rule := range cd.Properties {
		switch {
		case isEnumProperty(rule.Key):
			if err := setEnumProperty(&ctx.objects[idx], cd, rule, fields); err != nil {
				return err
			}
		case isReferenceProperty(rule.Key):
			if err := queueRef(ctx, idx, cd, rule, fields); err != nil {
				return err
			}
		}
	}
	return nil
}

func queueRef(ctx *buildCtx, idx int, cd *ClassDef, rule PropertyRule, fields map[string]json.RawMessage) error {
	propName := PropertyName(rule.Key)
	name, present, err := fieldString(fields, propName)
	if err != nil {
		return parseError(err.Error())
	}
	if !present {
		if rule.Required {
			return parseError(fmt.Sprintf("%s.%s is required", cd.Name, propName))
		}
		return nil
	}

	switch rule.Key {
	case PropNestedArtboard:
		// Resolved separately: cross-artboard, patched after every
		// artboard's subtree size is known (see Build/nestedPatch).
		target, ok := ctx.ordinals[name]
		if !ok {
			return missingReference(name)
		}
		ctx.nested = append(ctx.nested, nestedPatch{localIdx: idx, targetOrdinal: target})
		return nil
	case PropDataBindPropRef:
		// The target ViewModelProperty must belong to this DataBind's
		// view_model_ref, which is itself pending resolution; defer to
		// resolvePending once both names are known.
		ctx.pendingVM = append(ctx.pendingVM, pendingVMProperty{objIdx: idx, name: name})
		return nil
	}

	var wantKinds []ClassKind
	switch rule.Key {
	case PropConstraintTarget:
		wantKinds = nil // any object kind is accepted
	case PropTendonBoneRef:
		wantKinds = []ClassKind{ClassBone, ClassRootBone}
	case PropTextStyleRef:
		wantKinds = []ClassKind{ClassTextStyle}
	case PropFontAssetRef:
		wantKinds = []ClassKind{ClassFontAsset}
	case PropImageAssetRef:
		wantKinds = []ClassKind{ClassImageAsset}
	case PropDataBindVMRef:
		wantKinds = []ClassKind{ClassViewModel}
	case PropDataBindPropRef:
		wantKinds = []ClassKind{ClassViewModelProperty}
	}
	ctx.pending = append(ctx.pending, pendingRef{objIdx: idx, key: rule.Key, name: name, wantKinds: wantKinds})
	return nil
}

// resolvePending resolves every queued name reference once the
// artboard's full name table is known, allowing both backward and
// forward references within one artboard.
func resolvePending(ctx *buildCtx) error {
	classOf := make(map[int]ClassKind, len(ctx.objects))
	for i, o := range ctx.objects {
		classOf[i] = o.Class
	}

	for _, p := range ctx.pending {
		target, ok := ctx.names[p.name]
		if !ok {
			return missingReference(p.name)
		}
		if p.wantKinds != nil {
			matched := false
			for _, k := range p.wantKinds {
				if classOf[target] == k {
					matched = true
					break
				}
			}
			if !matched {
				return parentTypeMismatch(ctx.objects[p.objIdx].Name, ctx.objects[target].Name)
			}
		}
		ctx.objects[p.objIdx].Set(p.key, Uint(uint64(target)))
	}

	for _, pv := range ctx.pendingVM {
		vmVal, ok := ctx.objects[pv.objIdx].Get(PropDataBindVMRef)
		if !ok {
			return missingReference("<view_model_ref unresolved>")
		}
		vmIdx := int(vmVal.Uint())
		propIdx, ok := ctx.names[pv.name]
		if !ok {
			return missingReference(pv.name)
		}
		if ctx.objects[propIdx].Class != ClassViewModelProperty {
			return parentTypeMismatch(pv.name, "view_model_property")
		}
		parentIdx, _ := ctx.objects[propIdx].ParentID()
		if parentIdx != vmIdx {
			return parentTypeMismatch(pv.name, ctx.objects[vmIdx].Name)
		}
		ctx.objects[pv.objIdx].Set(PropDataBindPropRef, Uint(uint64(propIdx)))
	}
	return nil
}

// sortedPropertyKeys is used by the encoder, not the builder, but lives
// here because it shares the registry-iteration helper below.
func sortedPropertyKeys(m map[PropertyKey]bool) []PropertyKey {
	keys := make([]PropertyKey, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
