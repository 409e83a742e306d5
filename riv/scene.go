package riv

import (
	"fmt"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// Document is the decoded root of a scene-description JSON file
// (spec §6 External interfaces). Decoding is schema-shaped — the same
// class of document goccy/go-json is optimized for — so the scene JSON
// is decoded with it rather than encoding/json.
type Document struct {
	SceneFormatVersion int            `json:"scene_format_version"`
	Artboard           *ArtboardDesc  `json:"artboard,omitempty"`
	Artboards          []ArtboardDesc `json:"artboards,omitempty"`
}

// ArtboardDesc is one artboard in the scene description.
type ArtboardDesc struct {
	Name          string             `json:"name"`
	Preset        string             `json:"preset,omitempty"`
	Width         float64            `json:"width,omitempty"`
	Height        float64            `json:"height,omitempty"`
	Children      []ChildDesc        `json:"children,omitempty"`
	Animations    []AnimationDesc    `json:"animations,omitempty"`
	StateMachines []StateMachineDesc `json:"state_machines,omitempty"`
}

var presets = map[string][2]float64{
	"mobile":  {390, 844},
	"tablet":  {768, 1024},
	"desktop": {1440, 900},
	"square":  {500, 500},
	"banner":  {728, 90},
	"story":   {1080, 1920},
}

// ResolveSize applies the artboard's preset, if any, returning the
// effective width/height.
func (a *ArtboardDesc) ResolveSize() (float64, float64, error) {
	if a.Preset != "" {
		dims, ok := presets[a.Preset]
		if !ok {
			return 0, 0, fmt.Errorf("unknown preset %q", a.Preset)
		}
		return dims[0], dims[1], nil
	}
	return a.Width, a.Height, nil
}

// ChildDesc is one declared scene-tree node. It captures the
// discriminator and nesting explicitly and keeps every other declared
// field as raw JSON, since the concrete field set depends on Type and
// there are dozens of concrete types (spec §6's enumerated type surface).
type ChildDesc struct {
	Type     string
	Name     string
	Children []ChildDesc
	Fields   map[string]json.RawMessage
}

func (c *ChildDesc) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if v, ok := raw["type"]; ok {
		if err := json.Unmarshal(v, &c.Type); err != nil {
			return fmt.Errorf("field type: %w", err)
		}
		delete(raw, "type")
	}
	if v, ok := raw["name"]; ok {
		if err := json.Unmarshal(v, &c.Name); err != nil {
			return fmt.Errorf("field name: %w", err)
		}
		delete(raw, "name")
	}
	if v, ok := raw["children"]; ok {
		if err := json.Unmarshal(v, &c.Children); err != nil {
			return fmt.Errorf("field children: %w", err)
		}
		delete(raw, "children")
	}
	c.Fields = raw
	return nil
}

// AnimationDesc is a declared linear animation and its keyframe tracks.
type AnimationDesc struct {
	Name      string         `json:"name"`
	FPS       *int           `json:"fps,omitempty"`
	Duration  int            `json:"duration"`
	Speed     *float64       `json:"speed,omitempty"`
	Loop      string         `json:"loop,omitempty"` // "oneshot" | "loop" | "pingpong"
	WorkStart *int           `json:"work_start,omitempty"`
	WorkEnd   *int           `json:"work_end,omitempty"`
	Tracks    []KeyedTrack   `json:"tracks,omitempty"`
}

// KeyedTrack animates one property of one named object.
type KeyedTrack struct {
	Object      string          `json:"object"`
	Property    string          `json:"property"`
	Keyframes   []KeyframeDesc  `json:"keyframes"`
}

// KeyframeDesc is a single anchored value on a KeyedTrack.
type KeyframeDesc struct {
	Frame       int             `json:"frame"`
	Value       json.RawMessage `json:"value"`
	Interpolator *InterpolatorDesc `json:"interpolator,omitempty"`
}

// InterpolatorDesc is a cubic-bezier easing curve, inlined at the
// keyframe that first uses it; the builder deduplicates and assigns
// local indices.
type InterpolatorDesc struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

func (i *InterpolatorDesc) key() string {
	return fmt.Sprintf("%g:%g:%g:%g", i.X1, i.Y1, i.X2, i.Y2)
}

// StateMachineDesc is a declared state machine: inputs, one or more
// layers of states, and the transitions between them.
type StateMachineDesc struct {
	Name   string             `json:"name"`
	Inputs []StateInputDesc   `json:"inputs,omitempty"`
	Layers []StateLayerDesc   `json:"layers,omitempty"`
}

// StateInputDesc is a named, typed state-machine input.
type StateInputDesc struct {
	Name    string  `json:"name"`
	Type    string  `json:"type"` // "bool" | "number" | "trigger"
	Default float64 `json:"default,omitempty"`
}

// StateLayerDesc is one layer's declared states and transitions. The
// builder injects EntryState/AnyState/ExitState sentinels regardless of
// what is declared here.
type StateLayerDesc struct {
	Name        string              `json:"name,omitempty"`
	States      []StateDesc         `json:"states,omitempty"`
	Transitions []StateTransitionDesc `json:"transitions,omitempty"`
}

// StateDesc is a single animation state in a layer.
type StateDesc struct {
	Name      string `json:"name"`
	Animation string `json:"animation"`
}

// StateTransitionDesc is a declared edge between two states.
type StateTransitionDesc struct {
	From       string                 `json:"from"`
	To         string                 `json:"to"`
	Duration   int                    `json:"duration,omitempty"`
	ExitTime   float64                `json:"exit_time,omitempty"`
	Conditions []StateConditionDesc   `json:"conditions,omitempty"`
}

// StateConditionDesc gates a StateTransitionDesc on one input's value.
type StateConditionDesc struct {
	Input string          `json:"input"`
	Op    string          `json:"op,omitempty"` // for number inputs: "equal","less","greater"
	Value json.RawMessage `json:"value,omitempty"`
}

// DecodeDocument decodes a scene-description JSON document.
func DecodeDocument(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &SchemaError{Message: err.Error()}
	}
	if doc.SceneFormatVersion != 1 {
		return nil, &SchemaError{Path: "/scene_format_version", Message: fmt.Sprintf("expected 1, got %d", doc.SceneFormatVersion)}
	}
	if doc.Artboard != nil && doc.Artboards != nil {
		return nil, &SchemaError{Message: "exactly one of artboard or artboards must be set, not both"}
	}
	if doc.Artboard == nil && doc.Artboards == nil {
		return nil, &SchemaError{Message: "one of artboard or artboards is required"}
	}
	return &doc, nil
}

// ArtboardList returns the scene's artboards as a single slice regardless
// of which of Document.Artboard/Artboards was used.
func (d *Document) ArtboardList() []ArtboardDesc {
	if d.Artboard != nil {
		return []ArtboardDesc{*d.Artboard}
	}
	return d.Artboards
}

// --- raw field accessors, used by the builder to pull typed values out
// of ChildDesc.Fields by the registry's property name. ---

func fieldFloat(fields map[string]json.RawMessage, name string) (float64, bool, error) {
	raw, ok := fields[name]
	if !ok {
		return 0, false, nil
	}
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, true, fmt.Errorf("field %s: expected number: %w", name, err)
	}
	return v, true, nil
}

func fieldString(fields map[string]json.RawMessage, name string) (string, bool, error) {
	raw, ok := fields[name]
	if !ok {
		return "", false, nil
	}
	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		return "", true, fmt.Errorf("field %s: expected string: %w", name, err)
	}
	return v, true, nil
}

func fieldBool(fields map[string]json.RawMessage, name string) (bool, bool, error) {
	raw, ok := fields[name]
	if !ok {
		return false, false, nil
	}
	var v bool
	if err := json.Unmarshal(raw, &v); err != nil {
		return false, true, fmt.Errorf("field %s: expected bool: %w", name, err)
	}
	return v, true, nil
}

// fieldColor parses a "#RRGGBB" or "#AARRGGBB" hex string into a packed
// 32-bit ARGB word, defaulting to fully opaque alpha when unspecified.
func fieldColor(fields map[string]json.RawMessage, name string) (uint32, bool, error) {
	s, ok, err := fieldString(fields, name)
	if err != nil || !ok {
		return 0, ok, err
	}
	c, err := parseColorHex(s)
	if err != nil {
		return 0, true, fmt.Errorf("field %s: %w", name, err)
	}
	return c, true, nil
}

func parseColorHex(s string) (uint32, error) {
	s = strings.TrimPrefix(s, "#")
	switch len(s) {
	case 6: // RRGGBB, fully opaque
		rgb, err := strconv.ParseUint(s, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid color %q", s)
		}
		return 0xFF000000 | uint32(rgb), nil
	case 8: // AARRGGBB
		argb, err := strconv.ParseUint(s, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid color %q", s)
		}
		return uint32(argb), nil
	default:
		return 0, fmt.Errorf("invalid color %q: expected #RRGGBB or #AARRGGBB", s)
	}
}
