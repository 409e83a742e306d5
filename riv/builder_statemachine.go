package riv

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// stateBucket is one named slot in a layer's from-state space: the
// three implicit sentinels plus every declared AnimationState.
type stateBucket struct {
	name  string
	kind  ClassKind // zero value for declared states, set for sentinels
	state *StateDesc
}

// buildStateMachines emits each declared state machine: its inputs,
// then each layer's sentinel states (always at layer-local indices
// 0,1,2), declared states, and — immediately following each state
// that is a transition's source — that transition and its conditions.
func buildStateMachines(ctx *buildCtx, artboardIdx int, sms []StateMachineDesc) error {
	for _, sm := range sms {
		smIdx, err := ctx.emit(ClassStateMachine, artboardIdx, sm.Name)
		if err != nil {
			return err
		}

		inputIdx := map[string]int{}
		inputKind := map[string]ClassKind{}
		for _, in := range sm.Inputs {
			var kind ClassKind
			switch in.Type {
			case "bool":
				kind = ClassStateMachineBoolInput
			case "number":
				kind = ClassStateMachineNumberInput
			case "trigger":
				kind = ClassStateMachineTriggerInput
			default:
				return invalidEnum("input.type", in.Type)
			}
			idx, err := ctx.emit(kind, smIdx, in.Name)
			if err != nil {
				return err
			}
			switch kind {
			case ClassStateMachineBoolInput:
				ctx.objects[idx].Set(PropSMInputValueBool, Bool(in.Default != 0))
			case ClassStateMachineNumberInput:
				ctx.objects[idx].Set(PropSMInputValueNumber, Float(float32(in.Default)))
			}
			inputIdx[in.Name] = idx
			inputKind[in.Name] = kind
		}

		for _, layer := range sm.Layers {
			if err := buildStateMachineLayer(ctx, smIdx, &layer, inputIdx, inputKind); err != nil {
				return err
			}
		}
	}
	return nil
}

func buildStateMachineLayer(ctx *buildCtx, smIdx int, layer *StateLayerDesc, inputIdx map[string]int, inputKind map[string]ClassKind) error {
	layerIdx, err := ctx.emit(ClassStateMachineLayer, smIdx, layer.Name)
	if err != nil {
		return err
	}

	buckets := []stateBucket{
		{name: "Entry", kind: ClassEntryState},
		{name: "Any", kind: ClassAnyState},
		{name: "Exit", kind: ClassExitState},
	}
	for i := range layer.States {
		buckets = append(buckets, stateBucket{name: layer.States[i].Name, state: &layer.States[i]})
	}

	transitionsFrom := map[string][]StateTransitionDesc{}
	for _, t := range layer.Transitions {
		transitionsFrom[t.From] = append(transitionsFrom[t.From], t)
	}

	// Pass 1: compute every state's eventual local index without
	// emitting anything yet, so a transition's "to" can resolve even
	// when it targets a state declared later in this layer.
	stateIndex := map[string]int{}
	running := layerIdx + 1
	for _, b := range buckets {
		stateIndex[b.name] = running
		running++
		for _, t := range transitionsFrom[b.name] {
			running += 1 + len(t.Conditions)
		}
	}

	// Pass 2: emit in the same order, now resolving every "to" via
	// stateIndex instead of the artboard-wide name table, the same way
	// "Entry"/"Any"/"Exit" are resolved with no name property at all.
	// Declared state names still enter the artboard-wide name table when
	// emitted, so they must not repeat any other name in the artboard.
	for _, b := range buckets {
		var stateIdx int
		if b.state == nil { // sentinel: no name property on the wire
			stateIdx, err = ctx.emit(b.kind, layerIdx, "")
		} else {
			stateIdx, err = ctx.emit(ClassAnimationState, layerIdx, b.state.Name)
		}
		if err != nil {
			return err
		}
		if b.state != nil {
			animIdx, rerr := ctx.resolveNamed(b.state.Animation, ClassLinearAnimation)
			if rerr != nil {
				return rerr
			}
			ctx.objects[stateIdx].Set(PropSMStateAnimationRef, Uint(uint64(animIdx)))
		}

		for _, t := range transitionsFrom[b.name] {
			toIdx, ok := stateIndex[t.To]
			if !ok {
				return missingReference(t.To)
			}
			trIdx, err := ctx.emit(ClassStateTransition, stateIdx, "")
			if err != nil {
				return err
			}
			trObj := &ctx.objects[trIdx]
			trObj.Set(PropSMTransitionTarget, Uint(uint64(toIdx)))
			trObj.Set(PropSMTransitionDuration, Uint(uint64(t.Duration)))
			trObj.Set(PropSMTransitionExitTime, Float(float32(t.ExitTime)))

			for _, cond := range t.Conditions {
				if err := buildCondition(ctx, trIdx, cond, inputIdx, inputKind); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func buildCondition(ctx *buildCtx, transitionIdx int, cond StateConditionDesc, inputIdx map[string]int, inputKind map[string]ClassKind) error {
	idx, ok := inputIdx[cond.Input]
	if !ok {
		return missingReference(cond.Input)
	}
	kind := inputKind[cond.Input]

	var condKind ClassKind
	switch kind {
	case ClassStateMachineBoolInput:
		condKind = ClassTransitionBoolCondition
	case ClassStateMachineNumberInput:
		condKind = ClassTransitionNumberCondition
	case ClassStateMachineTriggerInput:
		condKind = ClassTransitionTriggerCondition
	default:
		return unsupportedType("condition input kind")
	}

	cIdx, err := ctx.emit(condKind, transitionIdx, "")
	if err != nil {
		return err
	}
	obj := &ctx.objects[cIdx]
	obj.Set(PropSMConditionInputRef, Uint(uint64(idx)))

	switch condKind {
	case ClassTransitionBoolCondition:
		var v bool
		if len(cond.Value) > 0 {
			if err := json.Unmarshal(cond.Value, &v); err != nil {
				return parseError(fmt.Sprintf("condition value: %v", err))
			}
		}
		obj.Set(PropSMConditionValueBool, Bool(v))
	case ClassTransitionNumberCondition:
		opVal, ok := enumTables[PropSMConditionOp][cond.Op]
		if cond.Op != "" && !ok {
			return invalidEnum("condition.op", cond.Op)
		}
		obj.Set(PropSMConditionOp, Uint(opVal))
		var v float64
		if len(cond.Value) > 0 {
			if err := json.Unmarshal(cond.Value, &v); err != nil {
				return parseError(fmt.Sprintf("condition value: %v", err))
			}
		}
		obj.Set(PropSMConditionValueNum, Float(float32(v)))
	}
	return nil
}
