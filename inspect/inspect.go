// Package inspect renders a parsed .riv file for human inspection: a
// go-pretty table of every object and property, optionally filtered by
// type key, property key, or object index. It shares no state with the
// riv package's decoder — each call to Table or JSON re-derives its view
// from the *riv.File it's given.
package inspect

import (
	"fmt"
	"strconv"

	json "github.com/goccy/go-json"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/rive-tools/rivenc/riv"
)

// Filter narrows which objects Table and JSON render. A zero-value Filter matches
// everything; each non-nil/non-empty field is a separate AND condition.
type Filter struct {
	TypeKey     *riv.TypeKey
	PropertyKey *riv.PropertyKey
	ObjectIndex *int
}

func (f Filter) matches(index int, obj *riv.Object) bool {
	if f.ObjectIndex != nil && *f.ObjectIndex != index {
		return false
	}
	if f.TypeKey != nil && *f.TypeKey != obj.Type {
		return false
	}
	if f.PropertyKey != nil {
		if _, ok := obj.Get(*f.PropertyKey); !ok {
			return false
		}
	}
	return true
}

// Table renders file's objects as a go-pretty table: one row per
// (object, property) pair that survives filter.
func Table(file *riv.File, filter Filter) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "class", "name", "property", "value"})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
	})

	for i, obj := range file.Objects {
		if !filter.matches(i, &obj) {
			continue
		}
		if len(obj.Properties) == 0 {
			tw.AppendRow(table.Row{i, className(obj.Class), obj.Name, "", ""})
			continue
		}
		for _, p := range obj.Properties {
			tw.AppendRow(table.Row{i, className(obj.Class), obj.Name, riv.PropertyName(p.Key), formatValue(p.Value)})
		}
	}
	return tw.Render()
}

// JSON renders the same filtered view as a JSON array of objects, for
// scripting rather than terminal reading.
func JSON(file *riv.File, filter Filter) ([]byte, error) {
	type propOut struct {
		Key   string `json:"key"`
		Value string `json:"value"`
	}
	type objOut struct {
		Index      int       `json:"index"`
		Class      string    `json:"class"`
		Name       string    `json:"name,omitempty"`
		Properties []propOut `json:"properties"`
	}

	var out []objOut
	for i, obj := range file.Objects {
		if !filter.matches(i, &obj) {
			continue
		}
		o := objOut{Index: i, Class: className(obj.Class), Name: obj.Name}
		for _, p := range obj.Properties {
			o.Properties = append(o.Properties, propOut{Key: riv.PropertyName(p.Key), Value: formatValue(p.Value)})
		}
		out = append(out, o)
	}
	return json.MarshalIndent(out, "", "  ")
}

func className(kind riv.ClassKind) string {
	cd := riv.ClassByKind(kind)
	if cd == nil {
		return "unknown"
	}
	return cd.Name
}

func formatValue(v riv.PropertyValue) string {
	switch v.Tag() {
	case riv.TagUint:
		return strconv.FormatUint(v.Uint(), 10)
	case riv.TagBool:
		return strconv.FormatBool(v.Bool())
	case riv.TagFloat:
		return strconv.FormatFloat(float64(v.Float()), 'g', -1, 32)
	case riv.TagString:
		return v.String()
	case riv.TagColor:
		return fmt.Sprintf("#%08X", v.ColorARGB())
	default:
		return ""
	}
}
