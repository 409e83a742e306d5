package riv

import "testing"

func TestBuildAnimationWithKeyframesAndInterpolatorDedup(t *testing.T) {
	raw := []byte(`{
		"scene_format_version": 1,
		"artboard": {
			"name": "Main", "width": 100, "height": 100,
			"children": [{"type": "node", "name": "Box"}],
			"animations": [
				{
					"name": "Move", "duration": 30, "loop": "loop",
					"tracks": [
						{
							"object": "Box", "property": "x",
							"keyframes": [
								{"frame": 0, "value": 0, "interpolator": {"x1": 0.2, "y1": 0, "x2": 0.8, "y2": 1}},
								{"frame": 30, "value": 100, "interpolator": {"x1": 0.2, "y1": 0, "x2": 0.8, "y2": 1}}
							]
						}
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

	var keyframes, interpolators int
	for _, o := range objs {
		switch o.Class {
		case ClassKeyFrameDouble:
			keyframes++
		case ClassCubicInterpolator:
			interpolators++
		}
	}
	if keyframes != 2 {
		t.Fatalf("expected 2 keyframes, got %d", keyframes)
	}
	if interpolators != 1 {
		t.Fatalf("expected interpolator dedup to 1, got %d", interpolators)
	}

	data, err := Encode(objs, DefaultConfig())
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if _, err := Parse(data); err != nil {
		t.Fatalf("Parse round trip: %v", err)
	}
}
