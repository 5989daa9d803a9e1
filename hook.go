// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import "reflect"

// HookPos identifies where in a circuit a hook fires.
//
type HookPos struct {
	Name string
}

// Hook positions raised by a Circuit.
//
var (
	// Item: DrainResult with only ID and MaxSteps set.
	HookPosDrainStart = &HookPos{Name: "DrainStart"}
	// Item: WireID being processed. Detail: its State.
	HookPosWire = &HookPos{Name: "Wire"}
	// Item: GateID whose output changed. Detail: the new State.
	HookPosGateOutput = &HookPos{Name: "GateOutput"}
	// Item: the final DrainResult.
	HookPosDrainEnd = &HookPos{Name: "DrainEnd"}
	// Item: GateID whose cache got disabled. Detail: its CacheStats.
	HookPosCacheDegraded = &HookPos{Name: "CacheDegraded"}
	// Item: GateID whose cache got enabled again. Detail: its CacheStats.
	HookPosCacheRestored = &HookPos{Name: "CacheRestored"}
)

// HookCtx holds the information about the site that triggered a hook.
//
type HookCtx struct {
	Domain Hookable
	Pos    *HookPos
	Item   any
	Detail any
}

// A Hook is invoked by a Hookable at specific positions.
//
type Hook interface {
	Func(ctx HookCtx)
}

// HookFunc adapts an ordinary function to the Hook interface.
//
type HookFunc func(ctx HookCtx)

// Func calls f(ctx).
//
func (f HookFunc) Func(ctx HookCtx) { f(ctx) }

// Hookable is implemented by objects that accept hooks.
//
// Hooks must be registered before the object is used; they cannot be
// removed.
//
type Hookable interface {
	AcceptHook(hook Hook)
	NumHooks() int
	Hooks() []Hook
	InvokeHook(ctx HookCtx)
}

// HookableBase implements Hookable.
//
type HookableBase struct {
	hooks []Hook
}

// AcceptHook registers a hook. It panics if the hook is already registered.
// Hooks of non comparable types, like HookFunc, are not checked.
//
func (h *HookableBase) AcceptHook(hook Hook) {
	if reflect.TypeOf(hook).Comparable() {
		for _, x := range h.hooks {
			if reflect.TypeOf(x).Comparable() && x == hook {
				panic("logicsim: duplicated hook")
			}
		}
	}
	h.hooks = append(h.hooks, hook)
}

// NumHooks returns the number of registered hooks.
//
func (h *HookableBase) NumHooks() int { return len(h.hooks) }

// Hooks returns the registered hooks.
//
func (h *HookableBase) Hooks() []Hook { return h.hooks }

// InvokeHook calls all registered hooks with ctx.
//
func (h *HookableBase) InvokeHook(ctx HookCtx) {
	for _, hook := range h.hooks {
		hook.Func(ctx)
	}
}

var _ Hookable = (*HookableBase)(nil)
