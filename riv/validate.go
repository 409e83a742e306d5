package riv

// Diagnostic is one finding from Validate: a structural observation the
// decoder itself doesn't reject (e.g. a required property absent on a
// class that predates it in the registry's history). Validate fills
// Object and Message only; a decode failure is returned as Validate's
// error, never as a Diagnostic, so Fatal and Err stay unset.
type Diagnostic struct {
	Fatal   bool
	Err     error
	Object  int // index into File.Objects, -1 when not object-specific
	Message string
}

// Validate parses data and layers spec §4.D's structural checks on top
// of it: everything Parse itself enforces (truncation, unknown keys,
// backing-type agreement, parent index bounds) plus per-class required
// properties and unreachable-parent detection that a byte-level parse
// alone can't see. It returns as many diagnostics as it can rather than
// stopping at the first one, except for the fatal parse error itself.
func Validate(data []byte) (*File, []Diagnostic, error) {
	file, err := Parse(data)
	if err != nil {
		return nil, nil, err
	}

	var diags []Diagnostic
	for i, obj := range file.Objects {
		cd := ClassByKind(obj.Class)
		if cd == nil {
			diags = append(diags, Diagnostic{Object: i, Message: "object has no registry entry for its class"})
			continue
		}
		for _, rule := range cd.Properties {
			if !rule.Required {
				continue
			}
			if _, ok := obj.Get(rule.Key); !ok {
				diags = append(diags, Diagnostic{
					Object:  i,
					Message: cd.Name + "." + PropertyName(rule.Key) + " is required but absent",
				})
			}
		}
	}

	if cyc := findParentCycle(file.Objects); cyc != nil {
		diags = append(diags, Diagnostic{
			Object:  cyc[0],
			Message: "parent chain forms a cycle",
		})
	}

	return file, diags, nil
}

// findParentCycle detects a cycle in the parent_id chain. Parse already
// rejects a parent index that is out of bounds or forward-pointing at
// decode time (ErrImpossibleParentIndex), which makes a true cycle
// impossible to construct through this package's own encoder — this
// check exists for files that didn't come from Encode.
func findParentCycle(objects []Object) []int {
	for start := range objects {
		visited := map[int]bool{start: true}
		cur := start
		for {
			parent, ok := objects[cur].ParentID()
			if !ok {
				break
			}
			if visited[parent] {
				return []int{start}
			}
			visited[parent] = true
			cur = parent
		}
	}
	return nil
}
