package riv

import "testing"

func TestBuildStateMachineWithTransitions(t *testing.T) {
	raw := []byte(`{
		"scene_format_version": 1,
		"artboard": {
			"name": "Main", "width": 100, "height": 100,
			"animations": [
				{"name": "Idle", "duration": 10},
				{"name": "Run", "duration": 10}
			],
			"state_machines": [
				{
					"name": "SM",
					"inputs": [{"name": "IsRunning", "type": "bool"}],
					"layers": [
						{
							"name": "Base",
							"states": [
								{"name": "IdleState", "animation": "Idle"},
								{"name": "RunState", "animation": "Run"}
							],
							"transitions": [
								{
									"from": "IdleState", "to": "RunState", "duration": 5,
									"conditions": [{"input": "IsRunning", "value": true}]
								}
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

	var states, transitions, conditions int
	for _, o := range objs {
		switch o.Class {
		case ClassAnimationState:
			states++
		case ClassStateTransition:
			transitions++
		case ClassTransitionBoolCondition:
			conditions++
			v, ok := o.Get(PropSMConditionValueBool)
			if !ok || !v.Bool() {
				t.Fatalf("expected condition value true, got %v ok=%v", v, ok)
			}
		}
	}
	if states != 2 {
		t.Fatalf("expected 2 AnimationStates, got %d", states)
	}
	if transitions != 1 {
		t.Fatalf("expected 1 StateTransition, got %d", transitions)
	}
	if conditions != 1 {
		t.Fatalf("expected 1 condition, got %d", conditions)
	}

	// sentinel states carry no name property.
	for _, o := range objs {
		if o.Class == ClassEntryState || o.Class == ClassAnyState || o.Class == ClassExitState {
			if _, ok := o.Get(PropName); ok {
				t.Fatal("sentinel state should carry no name property")
			}
		}
	}

	data, err := Encode(objs, DefaultConfig())
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if _, err := Parse(data); err != nil {
		t.Fatalf("Parse round trip: %v", err)
	}
}

func TestBuildStateMachineRejectsUnknownTransitionTarget(t *testing.T) {
	raw := []byte(`{
		"scene_format_version": 1,
		"artboard": {
			"name": "Main", "width": 100, "height": 100,
			"animations": [{"name": "Idle", "duration": 10}],
			"state_machines": [
				{
					"name": "SM",
					"layers": [
						{
							"states": [{"name": "IdleState", "animation": "Idle"}],
							"transitions": [{"from": "IdleState", "to": "Nowhere"}]
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
	if _, err := Build(doc, DefaultConfig()); err == nil {
		t.Fatal("expected missing_reference error for unknown transition target")
	}
}
