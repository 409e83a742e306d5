package riv

import (
	"errors"
	"testing"
)

func TestBuildRejectsTrimPathDirectlyUnderShape(t *testing.T) {
	raw := []byte(`{
		"scene_format_version": 1,
		"artboard": {
			"name": "Main", "width": 100, "height": 100,
			"children": [
				{
					"type": "shape", "name": "Circle",
					"children": [
						{"type": "ellipse", "width": 50, "height": 50},
						{"type": "trim_path", "mode": "sequential"}
					]
				}
			]
		}
	}`)
	doc, err := DecodeDocument(raw)
	if err != nil {
		t.Fatalf("DecodeDocument: %v", err)
	}
	_, err = Build(doc, DefaultConfig())
	if err == nil {
		t.Fatal("expected parent_type_mismatch error for trim_path under shape")
	}
	var be *BuildError
	if !errors.As(err, &be) || !errors.Is(be, ErrParentTypeMismatch) {
		t.Fatalf("expected ErrParentTypeMismatch, got %v", err)
	}
}

func TestBuildAllowsTrimPathUnderStroke(t *testing.T) {
	raw := []byte(`{
		"scene_format_version": 1,
		"artboard": {
			"name": "Main", "width": 100, "height": 100,
			"children": [
				{
					"type": "shape", "name": "Circle",
					"children": [
						{"type": "ellipse", "width": 50, "height": 50},
						{"type": "stroke", "children": [
							{"type": "solid_color", "color": "#FF0000"},
							{"type": "trim_path", "mode": "synchronized"}
						]}
					]
				}
			]
		}
	}`)
	doc, err := DecodeDocument(raw)
	if err != nil {
		t.Fatalf("DecodeDocument: %v", err)
	}
	objs, err := Build(doc, DefaultConfig())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	var found bool
	for _, o := range objs {
		if o.Class == ClassTrimPath {
			found = true
			v, ok := o.Get(PropTrimMode)
			if !ok || v.Uint() != 2 {
				t.Fatalf("expected synchronized to encode as 2, got %v ok=%v", v, ok)
			}
		}
	}
	if !found {
		t.Fatal("no TrimPath object found")
	}
}

func TestBuildRejectsGradientStopDirectlyUnderShape(t *testing.T) {
	raw := []byte(`{
		"scene_format_version": 1,
		"artboard": {
			"name": "Main", "width": 100, "height": 100,
			"children": [
				{
					"type": "shape", "name": "Circle",
					"children": [
						{"type": "ellipse", "width": 50, "height": 50},
						{"type": "gradient_stop", "position": 0.5, "color": "#FF0000"}
					]
				}
			]
		}
	}`)
	doc, err := DecodeDocument(raw)
	if err != nil {
		t.Fatalf("DecodeDocument: %v", err)
	}
	if _, err := Build(doc, DefaultConfig()); err == nil {
		t.Fatal("expected parent_type_mismatch error for gradient_stop under shape")
	}
}

func TestBuildRejectsGradientStopPositionOutOfRange(t *testing.T) {
	raw := []byte(`{
		"scene_format_version": 1,
		"artboard": {
			"name": "Main", "width": 100, "height": 100,
			"children": [
				{
					"type": "shape", "name": "Circle",
					"children": [
						{"type": "ellipse", "width": 50, "height": 50},
						{"type": "fill", "children": [
							{"type": "linear_gradient", "children": [
								{"type": "gradient_stop", "position": 2.0, "color": "#FF0000"}
							]}
						]}
					]
				}
			]
		}
	}`)
	doc, err := DecodeDocument(raw)
	if err != nil {
		t.Fatalf("DecodeDocument: %v", err)
	}
	_, err = Build(doc, DefaultConfig())
	if err == nil {
		t.Fatal("expected out_of_range error for gradient stop position 2.0")
	}
	var be *BuildError
	if !errors.As(err, &be) || !errors.Is(be, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
}

func TestBuildMinimalScene(t *testing.T) {
	doc := &Document{
		SceneFormatVersion: 1,
		Artboard: &ArtboardDesc{
			Name: "Main", Width: 100, Height: 100,
		},
	}
	objs, err := Build(doc, DefaultConfig())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(objs) != 2 {
		t.Fatalf("expected Backboard+Artboard, got %d objects", len(objs))
	}
	if objs[0].Class != ClassBackboard {
		t.Fatalf("objs[0] should be Backboard, got %v", objs[0].Class)
	}
	if objs[1].Class != ClassArtboard {
		t.Fatalf("objs[1] should be Artboard, got %v", objs[1].Class)
	}
}

func TestBuildRedCircleScene(t *testing.T) {
	raw := []byte(`{
		"scene_format_version": 1,
		"artboard": {
			"name": "Main", "width": 200, "height": 200,
			"children": [
				{
					"type": "shape", "name": "Circle",
					"children": [
						{"type": "ellipse", "width": 50, "height": 50},
						{"type": "fill", "children": [
							{"type": "solid_color", "color": "#FF0000"}
						]}
					]
				}
			]
		}
	}`)
	doc, err := DecodeDocument(raw)
	if err != nil {
		t.Fatalf("DecodeDocument: %v", err)
	}
	objs, err := Build(doc, DefaultConfig())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	var foundColor bool
	for _, o := range objs {
		if o.Class == ClassSolidColor {
			v, ok := o.Get(PropColor)
			if !ok || v.ColorARGB() != 0xFFFF0000 {
				t.Fatalf("expected opaque red, got %v ok=%v", v, ok)
			}
			foundColor = true
		}
	}
	if !foundColor {
		t.Fatal("no SolidColor object found")
	}

	data, err := Encode(objs, DefaultConfig())
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	file, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(file.Objects) != len(objs) {
		t.Fatalf("round trip object count mismatch: %d vs %d", len(file.Objects), len(objs))
	}
}

func TestBuildRejectsZeroArtboards(t *testing.T) {
	doc := &Document{SceneFormatVersion: 1, Artboards: []ArtboardDesc{}}
	if _, err := Build(doc, DefaultConfig()); err == nil {
		t.Fatal("expected error for empty artboard list")
	}
}

func TestBuildRejectsDuplicateArtboardNames(t *testing.T) {
	doc := &Document{
		SceneFormatVersion: 1,
		Artboards: []ArtboardDesc{
			{Name: "A", Width: 10, Height: 10},
			{Name: "A", Width: 20, Height: 20},
		},
	}
	if _, err := Build(doc, DefaultConfig()); err == nil {
		t.Fatal("expected duplicate name error")
	}
}

func TestBuildRejectsMissingReference(t *testing.T) {
	raw := []byte(`{
		"scene_format_version": 1,
		"artboard": {
			"name": "Main", "width": 100, "height": 100,
			"children": [
				{"type": "nested_artboard", "name": "N", "artboard_ref": "DoesNotExist"}
			]
		}
	}`)
	doc, err := DecodeDocument(raw)
	if err != nil {
		t.Fatalf("DecodeDocument: %v", err)
	}
	if _, err := Build(doc, DefaultConfig()); err == nil {
		t.Fatal("expected missing_reference error")
	}
}

func TestBuildResolvesNestedArtboardAcrossSubtrees(t *testing.T) {
	doc := &Document{
		SceneFormatVersion: 1,
		Artboards: []ArtboardDesc{
			{
				Name: "Main", Width: 100, Height: 100,
				Children: []ChildDesc{
					mustChild(`{"type":"nested_artboard","name":"N","artboard_ref":"Child"}`),
				},
			},
			{Name: "Child", Width: 50, Height: 50},
		},
	}
	objs, err := Build(doc, DefaultConfig())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	var nested *Object
	for i := range objs {
		if objs[i].Class == ClassNestedArtboard {
			nested = &objs[i]
		}
	}
	if nested == nil {
		t.Fatal("no NestedArtboard object found")
	}
	ref, ok := nested.Get(PropNestedArtboard)
	if !ok {
		t.Fatal("artboard_ref not set")
	}
	// Backboard(0), Main(1), NestedArtboard(2), Child(3).
	if int(ref.Uint()) != 3 {
		t.Fatalf("expected nested_artboard ref 3, got %d", ref.Uint())
	}
}

func mustChild(jsonStr string) ChildDesc {
	var c ChildDesc
	if err := c.UnmarshalJSON([]byte(jsonStr)); err != nil {
		panic(err)
	}
	return c
}
