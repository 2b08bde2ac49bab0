// SPDX-License-Identifier: EPL-2.0

package fcurve

import "fmt"

// Action holds the curves of a project, at most one per Key.
type Action struct {
	Name   string
	order  []Key
	curves map[Key]*Curve
}

func NewAction(name string) *Action {
	return &Action{
		Name:   name,
		curves: make(map[Key]*Curve),
	}
}

// Find returns the curve bound to key, if any.
func (a *Action) Find(key Key) (*Curve, bool) {
	c, ok := a.curves[key]
	return c, ok
}

// New creates an empty curve for key.
func (a *Action) New(key Key) (*Curve, error) {
	if _, ok := a.curves[key]; ok {
		return nil, fmt.Errorf("%w: %s", ErrCurveExists, key.DataPath())
	}

	c := newCurve(key)
	a.curves[key] = c
	a.order = append(a.order, key)

	return c, nil
}

// Remove deletes the curve bound to key.
func (a *Action) Remove(key Key) bool {
	if _, ok := a.curves[key]; !ok {
		return false
	}

	delete(a.curves, key)
	for i, k := range a.order {
		if k == key {
			a.order = append(a.order[:i], a.order[i+1:]...)
			break
		}
	}

	return true
}

// Curves returns every curve in creation order.
func (a *Action) Curves() []*Curve {
	out := make([]*Curve, 0, len(a.order))
	for _, k := range a.order {
		out = append(out, a.curves[k])
	}

	return out
}

// Prune removes curves whose clip is not in clips and returns how many
// were dropped. Curves otherwise outlive the clips they animate.
func (a *Action) Prune(clips []string) int {
	alive := make(map[string]struct{}, len(clips))
	for _, name := range clips {
		alive[name] = struct{}{}
	}

	var stale []Key
	for _, k := range a.order {
		if _, ok := alive[k.Clip]; !ok {
			stale = append(stale, k)
		}
	}

	for _, k := range stale {
		a.Remove(k)
	}

	return len(stale)
}

// AnimationData is the per-project animation container.
type AnimationData struct {
	Action *Action
}
