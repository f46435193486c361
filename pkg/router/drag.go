package router

import (
	"tableflip.dev/weekly/pkg/day"
)

// DragState is the phase of the drag-and-drop machine.
type DragState int

const (
	Idle DragState = iota
	Dragging
)

func (s DragState) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// Token is the single in-flight drag: which task, picked up from which day.
type Token struct {
	TaskID string
	Source day.Key
}

// Drag tracks the in-flight token and the highlighted drop targets. The zero
// value is Idle.
type Drag struct {
	state   DragState
	token   Token
	targets map[day.Key]struct{}
}

// Start picks up a task. Starting while already Dragging replaces the token;
// replaced reports that case.
func (d *Drag) Start(tok Token) (replaced bool) {
	replaced = d.state == Dragging
	d.state = Dragging
	d.token = tok
	d.targets = nil
	return replaced
}

// Enter highlights k as the drop target. Only meaningful while Dragging.
func (d *Drag) Enter(k day.Key) bool {
	if d.state != Dragging || !k.Valid() {
		return false
	}
	if d.targets == nil {
		d.targets = make(map[day.Key]struct{})
	}
	d.targets[k] = struct{}{}
	return true
}

// Leave removes the highlight from k.
func (d *Drag) Leave(k day.Key) {
	delete(d.targets, k)
}

// Drop hands out the token and clears every highlight. The machine stays in
// Dragging until End, which the surface always sends after a drop.
func (d *Drag) Drop() (Token, bool) {
	d.targets = nil
	if d.state != Dragging {
		return Token{}, false
	}
	return d.token, true
}

// End returns to Idle whether or not a drop happened.
func (d *Drag) End() {
	d.state = Idle
	d.token = Token{}
	d.targets = nil
}

// State is the current phase.
func (d *Drag) State() DragState {
	return d.state
}

// Token returns the in-flight token while Dragging.
func (d *Drag) Token() (Token, bool) {
	return d.token, d.state == Dragging
}

// Targets lists the highlighted days in week order.
func (d *Drag) Targets() []day.Key {
	out := make([]day.Key, 0, len(d.targets))
	for _, k := range day.All() {
		if _, ok := d.targets[k]; ok {
			out = append(out, k)
		}
	}
	return out
}
