package riv

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// propertyKeyByName is the reverse of PropertyName, built once from the
// registry catalog; keyed tracks name the property they animate by its
// scene-description name ("x", "opacity", "color", ...). Where several
// keys share a name, the lowest key wins.
var propertyKeyByName = func() map[string]PropertyKey {
	m := make(map[string]PropertyKey, len(propCatalog))
	for k, e := range propCatalog {
		if prev, ok := m[e.Name]; ok && prev < k {
			continue
		}
		m[e.Name] = k
	}
	return m
}()

// buildAnimations emits each declared LinearAnimation and its keyed
// tracks, parented directly to the artboard. KeyedObject groups every
// track that targets the same named object; KeyedProperty groups every
// keyframe for one property of that object; interpolators are
// deduplicated and emitted before the first keyframe that uses them
// (spec §4.C keyframe emission ordering).
func buildAnimations(ctx *buildCtx, artboardIdx int, anims []AnimationDesc) error {
	for _, a := range anims {
		animIdx, err := ctx.emit(ClassLinearAnimation, artboardIdx, a.Name)
		if err != nil {
			return err
		}
		obj := &ctx.objects[animIdx]
		fps := 60
		if a.FPS != nil {
			fps = *a.FPS
		}
		obj.Set(PropAnimFPS, Uint(uint64(fps)))
		obj.Set(PropAnimDuration, Uint(uint64(a.Duration)))
		if a.Speed != nil && float32(*a.Speed) != 1 {
			obj.Set(PropAnimSpeed, Float(float32(*a.Speed)))
		}
		if a.Loop != "" {
			v, ok := enumTables[PropAnimLoop][a.Loop]
			if !ok {
				return invalidEnum("loop", a.Loop)
			}
			if v != 0 {
				obj.Set(PropAnimLoop, Uint(v))
			}
		}
		if a.WorkStart != nil && *a.WorkStart != 0 {
			obj.Set(PropAnimWorkStart, Uint(uint64(*a.WorkStart)))
		}
		if a.WorkEnd != nil && *a.WorkEnd != 0 {
			obj.Set(PropAnimWorkEnd, Uint(uint64(*a.WorkEnd)))
		}

		interpolators := map[string]int{}
		objectOrder, tracksByObject := groupTracksByObject(a.Tracks)
		for _, objName := range objectOrder {
			targetIdx, err := ctx.resolveNamed(objName)
			if err != nil {
				return err
			}
			koIdx, err := ctx.emit(ClassKeyedObject, animIdx, "")
			if err != nil {
				return err
			}
			ctx.objects[koIdx].Set(PropKeyedObjectRef, Uint(uint64(targetIdx)))

			for _, track := range tracksByObject[objName] {
				key, ok := propertyKeyByName[track.Property]
				if !ok {
					return unsupportedType(fmt.Sprintf("animated property %q", track.Property))
				}
				kpIdx, err := ctx.emit(ClassKeyedProperty, koIdx, "")
				if err != nil {
					return err
				}
				ctx.objects[kpIdx].Set(PropKeyedPropertyKey, Uint(uint64(key)))

				backing, _ := BackingTypeOf(key)
				for _, kf := range track.Keyframes {
					if err := emitKeyframe(ctx, animIdx, kpIdx, key, backing, kf, interpolators); err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}

func groupTracksByObject(tracks []KeyedTrack) ([]string, map[string][]KeyedTrack) {
	order := make([]string, 0)
	seen := map[string]bool{}
	byObj := map[string][]KeyedTrack{}
	for _, t := range tracks {
		if !seen[t.Object] {
			seen[t.Object] = true
			order = append(order, t.Object)
		}
		byObj[t.Object] = append(byObj[t.Object], t)
	}
	return order, byObj
}

func emitKeyframe(ctx *buildCtx, animIdx, kpIdx int, key PropertyKey, backing BackingType, kf KeyframeDesc, interpolators map[string]int) error {
	var kind ClassKind
	switch backing {
	case BackingColor:
		kind = ClassKeyFrameColor
	case BackingFloat:
		kind = ClassKeyFrameDouble
	case BackingString:
		kind = ClassKeyFrameString
	case BackingUintOrBool:
		if isBoolValue(kf.Value) {
			kind = ClassKeyFrameBool
		} else {
			kind = ClassKeyFrameID
		}
	default:
		return unsupportedType("keyframe value")
	}

	// A new interpolator is emitted ahead of the keyframe that first
	// references it; the lookups below then hit the cache.
	if kf.Interpolator != nil && (kind == ClassKeyFrameDouble || kind == ClassKeyFrameColor) {
		if _, err := resolveInterpolator(ctx, animIdx, interpolators, kf.Interpolator); err != nil {
			return err
		}
	}

	kfIdx, err := ctx.emit(kind, kpIdx, "")
	if err != nil {
		return err
	}
	obj := &ctx.objects[kfIdx]
	obj.Set(PropKeyframeFrame, Uint(uint64(kf.Frame)))

	switch kind {
	case ClassKeyFrameDouble:
		var v float64
		if err := json.Unmarshal(kf.Value, &v); err != nil {
			return parseError(fmt.Sprintf("keyframe value: %v", err))
		}
		obj.Set(PropKeyframeValueFloat, Float(float32(v)))
		if kf.Interpolator != nil {
			interpIdx, err := resolveInterpolator(ctx, animIdx, interpolators, kf.Interpolator)
			if err != nil {
				return err
			}
			obj.Set(PropKeyframeInterpRef, Uint(uint64(interpIdx)))
		}
	case ClassKeyFrameColor:
		var s string
		if err := json.Unmarshal(kf.Value, &s); err != nil {
			return parseError(fmt.Sprintf("keyframe value: %v", err))
		}
		c, err := parseColorHex(s)
		if err != nil {
			return parseError(err.Error())
		}
		obj.Set(PropKeyframeValueColor, Color(c))
		if kf.Interpolator != nil {
			interpIdx, err := resolveInterpolator(ctx, animIdx, interpolators, kf.Interpolator)
			if err != nil {
				return err
			}
			obj.Set(PropKeyframeInterpRef, Uint(uint64(interpIdx)))
		}
	case ClassKeyFrameBool:
		var v bool
		if err := json.Unmarshal(kf.Value, &v); err != nil {
			return parseError(fmt.Sprintf("keyframe value: %v", err))
		}
		obj.Set(PropKeyframeValueBool, Bool(v))
	case ClassKeyFrameString:
		var v string
		if err := json.Unmarshal(kf.Value, &v); err != nil {
			return parseError(fmt.Sprintf("keyframe value: %v", err))
		}
		obj.Set(PropKeyframeValueString, Str(v))
	case ClassKeyFrameID:
		var v float64
		if err := json.Unmarshal(kf.Value, &v); err != nil {
			return parseError(fmt.Sprintf("keyframe value: %v", err))
		}
		obj.Set(PropKeyframeValueUint, Uint(uint64(v)))
	}
	return nil
}

func isBoolValue(raw json.RawMessage) bool {
	var v bool
	return json.Unmarshal(raw, &v) == nil
}

// resolveInterpolator dedupes CubicInterpolator objects by curve value
// within one LinearAnimation, emitting a fresh one only the first time
// a given curve is used.
func resolveInterpolator(ctx *buildCtx, animIdx int, cache map[string]int, d *InterpolatorDesc) (int, error) {
	key := d.key()
	if idx, ok := cache[key]; ok {
		return idx, nil
	}
	idx, err := ctx.emit(ClassCubicInterpolator, animIdx, "")
	if err != nil {
		return 0, err
	}
	obj := &ctx.objects[idx]
	obj.Set(PropInterpolatorX1, Float(float32(d.X1)))
	obj.Set(PropInterpolatorY1, Float(float32(d.Y1)))
	obj.Set(PropInterpolatorX2, Float(float32(d.X2)))
	obj.Set(PropInterpolatorY2, Float(float32(d.Y2)))
	cache[key] = idx
	return idx, nil
}
