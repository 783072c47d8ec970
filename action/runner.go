package action

import "math"

// Handle is one installed action. It stays valid after it finishes or is
// cancelled, but no longer affects its target.
type Handle struct {
	key        string
	action     Action
	elapsed    float64
	speed      float64
	onComplete func()
	cancelled  bool
}

func (h *Handle) Key() string { return h.key }

func (h *Handle) Action() Action { return h.action }

// Elapsed is the action's local time in seconds, already scaled by speed.
func (h *Handle) Elapsed() float64 { return h.elapsed }

func (h *Handle) Speed() float64 { return h.speed }

// SetSpeed scales how fast the action advances. 0 freezes it in place.
func (h *Handle) SetSpeed(speed float64) {
	if speed < 0 {
		speed = 0
	}
	h.speed = speed
}

func (h *Handle) Cancelled() bool { return h.cancelled }

// Cancel stops the action without running its completion. Cancelling a
// handle that is still installed leaves a stale entry in its runner until the
// next Update; prefer Runner.Remove.
func (h *Handle) Cancel() { h.cancelled = true }

// Runner keeps at most one action per key for a single target.
type Runner struct {
	target  Target
	handles map[string]*Handle
	order   []string
}

func NewRunner(target Target) *Runner {
	return &Runner{
		target:  target,
		handles: make(map[string]*Handle),
	}
}

// Run installs a under key, cancelling whatever was installed there. The
// action starts and is applied at time zero immediately. onComplete, if set,
// runs once when a finite action reaches its duration.
func (r *Runner) Run(key string, a Action, onComplete func()) *Handle {
	if a == nil {
		return nil
	}
	r.Remove(key)

	h := &Handle{key: key, action: a, speed: 1, onComplete: onComplete}
	r.handles[key] = h
	r.order = append(r.order, key)

	a.Start(r.target)
	a.Apply(r.target, 0)
	return h
}

// Remove cancels the action under key. It reports whether one was installed.
func (r *Runner) Remove(key string) bool {
	h, ok := r.handles[key]
	if !ok {
		return false
	}
	h.cancelled = true
	r.drop(key)
	return true
}

// RemoveAll cancels every installed action.
func (r *Runner) RemoveAll() {
	for _, key := range append([]string(nil), r.order...) {
		r.Remove(key)
	}
}

func (r *Runner) Action(key string) (*Handle, bool) {
	h, ok := r.handles[key]
	if !ok || h.cancelled {
		return nil, false
	}
	return h, true
}

func (r *Runner) Len() int { return len(r.handles) }

// Update advances every installed action by dt seconds of game time. Actions
// are stepped in install order. A finished action is removed before its
// completion runs, so completions may freely install or remove actions.
func (r *Runner) Update(dt float64) {
	if dt <= 0 || len(r.order) == 0 {
		return
	}

	pending := make([]*Handle, 0, len(r.order))
	for _, key := range r.order {
		pending = append(pending, r.handles[key])
	}

	for _, h := range pending {
		if h.cancelled {
			if r.handles[h.key] == h {
				r.drop(h.key)
			}
			continue
		}
		if r.handles[h.key] != h {
			continue
		}

		h.elapsed += dt * h.speed
		d := h.action.Duration()
		done := !math.IsInf(d, 1) && h.elapsed >= d
		if done {
			h.elapsed = d
		}
		h.action.Apply(r.target, h.elapsed)

		if !done {
			continue
		}
		r.drop(h.key)
		if h.onComplete != nil {
			h.onComplete()
		}
	}
}

func (r *Runner) drop(key string) {
	delete(r.handles, key)
	for i, k := range r.order {
		if k == key {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}
