package inspect

import (
	"strings"
	"testing"

	"github.com/rive-tools/rivenc/riv"
)

func sampleFile() *riv.File {
	ab := riv.Object{Type: riv.TypeKeyOf(riv.ClassArtboard), Class: riv.ClassArtboard}
	ab.Set(riv.PropName, riv.Str("Main"))
	ab.Set(riv.PropWidth, riv.Float(100))
	ab.Set(riv.PropHeight, riv.Float(100))

	node := riv.Object{Type: riv.TypeKeyOf(riv.ClassNode), Class: riv.ClassNode}
	node.Set(riv.PropParentID, riv.Uint(0))
	node.Set(riv.PropX, riv.Float(12.5))

	return &riv.File{MajorVersion: 7, MinorVersion: 0, FileID: 1, Objects: []riv.Object{ab, node}}
}

func TestTableRendersAllObjects(t *testing.T) {
	out := Table(sampleFile(), Filter{})
	if !strings.Contains(out, "Artboard") {
		t.Fatal("expected table to mention Artboard")
	}
	if !strings.Contains(out, "Node") {
		t.Fatal("expected table to mention Node")
	}
	if !strings.Contains(out, "12.5") {
		t.Fatal("expected table to render node's x value")
	}
}

func TestTableFilterByTypeKey(t *testing.T) {
	tk := riv.TypeKeyOf(riv.ClassNode)
	out := Table(sampleFile(), Filter{TypeKey: &tk})
	if strings.Contains(out, "Artboard") {
		t.Fatal("filter by type key should exclude Artboard rows")
	}
	if !strings.Contains(out, "Node") {
		t.Fatal("filter by type key should keep Node rows")
	}
}

func TestTableFilterByPropertyKey(t *testing.T) {
	pk := riv.PropX
	out := Table(sampleFile(), Filter{PropertyKey: &pk})
	if !strings.Contains(out, "12.5") {
		t.Fatal("filter by property key should keep objects carrying x")
	}
	if strings.Contains(out, "Main") {
		t.Fatal("filter by property key should exclude Artboard, which has no x")
	}
}

func TestJSONRendersFilteredObjects(t *testing.T) {
	out, err := JSON(sampleFile(), Filter{})
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	s := string(out)
	if !strings.Contains(s, `"class": "Artboard"`) {
		t.Fatalf("expected JSON to contain Artboard class, got %s", s)
	}
	if !strings.Contains(s, `"class": "Node"`) {
		t.Fatalf("expected JSON to contain Node class, got %s", s)
	}
}
