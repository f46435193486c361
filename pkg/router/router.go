// Package router turns user interface events into task store operations.
//
// Surfaces (the browser page, the terminal board) describe what happened as
// an Event: the kind of event and the action tag the renderer attached to the
// element it happened on. The router looks the pair up in its dispatch table,
// runs the matching store operation and answers with a Result saying which
// days to redraw and what the surface should do with the element.
package router

import (
	"sync"

	"go.uber.org/zap"

	"tableflip.dev/weekly/pkg/day"
	"tableflip.dev/weekly/pkg/logging"
	"tableflip.dev/weekly/pkg/task"
)

// Type is the kind of interface event.
type Type string

const (
	KeyDown   Type = "keydown"
	Click     Type = "click"
	Blur      Type = "blur"
	DragStart Type = "dragstart"
	DragOver  Type = "dragover"
	DragEnter Type = "dragenter"
	DragLeave Type = "dragleave"
	Drop      Type = "drop"
	DragEnd   Type = "dragend"
)

// Action is the tag the renderer attaches to interactive elements.
type Action string

const (
	ActionAdd            Action = "add"
	ActionToggle         Action = "toggle"
	ActionDelete         Action = "delete"
	ActionRename         Action = "rename"
	ActionDrag           Action = "drag"
	ActionDropZone       Action = "drop-zone"
	ActionClearCompleted Action = "clear-completed"
	ActionClearAll       Action = "clear-all"
)

// EnterKey is the key name that submits input.
const EnterKey = "Enter"

// ClearAllPrompt is shown before every task is deleted.
const ClearAllPrompt = "Are you sure you want to delete all tasks? This cannot be undone."

// Event is one interface event.
type Event struct {
	Type   Type    `json:"type"`
	Action Action  `json:"action"`
	Day    day.Key `json:"day,omitempty"`
	TaskID string  `json:"taskId,omitempty"`
	// Key is the key name for keydown events.
	Key string `json:"key,omitempty"`
	// Value is the input value or the edited text content.
	Value string `json:"value,omitempty"`
	// Confirmed is set when the surface already asked the user.
	Confirmed bool `json:"confirmed,omitempty"`
}

// Result tells the surface what to do after an event.
type Result struct {
	Handled bool `json:"handled"`
	// Redraw lists the days whose task lists changed.
	Redraw []day.Key `json:"redraw,omitempty"`
	// ClearInput empties the new-task field the event came from.
	ClearInput bool `json:"clearInput,omitempty"`
	// Blur asks the surface to drop focus from the element, committing an edit.
	Blur bool `json:"blur,omitempty"`
	// PreventDefault suppresses the element's default behavior.
	PreventDefault bool `json:"preventDefault,omitempty"`
	// DropTargets are the days currently highlighted as drop targets.
	DropTargets []day.Key `json:"dropTargets"`
}

// Mutator is the part of the task store the router drives.
type Mutator interface {
	Add(d day.Key, text string) (*task.Task, []day.Key)
	Delete(d day.Key, id string) []day.Key
	Toggle(d day.Key, id string) []day.Key
	Rename(d day.Key, id, text string) bool
	Move(from, to day.Key, id string) []day.Key
	ClearCompleted() []day.Key
	ClearAll() []day.Key
}

// Confirmer asks the user a blocking yes/no question.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

type route struct {
	typ    Type
	action Action
}

type handler func(r *Router, ev Event, res *Result)

var routes = map[route]handler{
	{KeyDown, ActionAdd}:          (*Router).submitNew,
	{KeyDown, ActionRename}:       (*Router).commitOnEnter,
	{Blur, ActionRename}:          (*Router).rename,
	{Click, ActionToggle}:         (*Router).toggle,
	{Click, ActionDelete}:         (*Router).delete,
	{Click, ActionClearCompleted}: (*Router).clearCompleted,
	{Click, ActionClearAll}:       (*Router).clearAll,
	{DragStart, ActionDrag}:       (*Router).dragStart,
	{DragOver, ActionDropZone}:    (*Router).dragOver,
	{DragEnter, ActionDropZone}:   (*Router).dragEnter,
	{DragLeave, ActionDropZone}:   (*Router).dragLeave,
	{Drop, ActionDropZone}:        (*Router).drop,
	{DragEnd, ActionDrag}:         (*Router).dragEnd,
}

// Router dispatches events. It is safe for concurrent use; events are
// handled one at a time.
type Router struct {
	store   Mutator
	confirm Confirmer
	log     *zap.Logger

	mu   sync.Mutex
	drag Drag
}

// Option configures a Router.
type Option func(*Router)

func WithConfirmer(c Confirmer) Option {
	return func(r *Router) { r.confirm = c }
}

func WithLogger(l *zap.Logger) Option {
	return func(r *Router) { r.log = logging.OrNop(l) }
}

func New(store Mutator, opts ...Option) *Router {
	r := &Router{store: store, log: zap.NewNop()}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Dispatch handles one event. Events without a route are ignored.
func (r *Router) Dispatch(ev Event) Result {
	r.mu.Lock()
	defer r.mu.Unlock()

	var res Result
	if h, ok := routes[route{ev.Type, ev.Action}]; ok {
		res.Handled = true
		h(r, ev, &res)
	} else {
		r.log.Debug("ignored event", zap.String("type", string(ev.Type)), zap.String("action", string(ev.Action)))
	}
	res.DropTargets = r.drag.Targets()
	return res
}

// Routed reports whether the dispatch table has a handler for ev.
func Routed(ev Event) bool {
	_, ok := routes[route{ev.Type, ev.Action}]
	return ok
}

// DragState reports the drag machine phase and token.
func (r *Router) DragState() (DragState, Token) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tok, _ := r.drag.Token()
	return r.drag.State(), tok
}

func (r *Router) submitNew(ev Event, res *Result) {
	if ev.Key != EnterKey {
		return
	}
	if t, redraw := r.store.Add(ev.Day, ev.Value); t != nil {
		res.Redraw = redraw
		res.ClearInput = true
	}
}

// commitOnEnter makes Enter leave the editor instead of inserting a newline;
// the blur that follows carries the rename.
func (r *Router) commitOnEnter(ev Event, res *Result) {
	if ev.Key != EnterKey {
		return
	}
	res.PreventDefault = true
	res.Blur = true
}

func (r *Router) rename(ev Event, res *Result) {
	if r.store.Rename(ev.Day, ev.TaskID, ev.Value) {
		return
	}
	// Put the stored text back over a rejected edit.
	if ev.Day.Valid() {
		res.Redraw = []day.Key{ev.Day}
	}
}

func (r *Router) toggle(ev Event, res *Result) {
	res.Redraw = r.store.Toggle(ev.Day, ev.TaskID)
}

func (r *Router) delete(ev Event, res *Result) {
	res.Redraw = r.store.Delete(ev.Day, ev.TaskID)
}

func (r *Router) clearCompleted(_ Event, res *Result) {
	res.Redraw = r.store.ClearCompleted()
}

func (r *Router) clearAll(ev Event, res *Result) {
	if !ev.Confirmed && (r.confirm == nil || !r.confirm.Confirm(ClearAllPrompt)) {
		r.log.Debug("clear all not confirmed")
		return
	}
	res.Redraw = r.store.ClearAll()
}

func (r *Router) dragStart(ev Event, res *Result) {
	if ev.TaskID == "" || !ev.Day.Valid() {
		return
	}
	if r.drag.Start(Token{TaskID: ev.TaskID, Source: ev.Day}) {
		r.log.Debug("drag replaced an in-flight drag", zap.String("id", ev.TaskID))
	}
}

func (r *Router) dragOver(_ Event, res *Result) {
	res.PreventDefault = true
}

func (r *Router) dragEnter(ev Event, _ *Result) {
	r.drag.Enter(ev.Day)
}

func (r *Router) dragLeave(ev Event, _ *Result) {
	r.drag.Leave(ev.Day)
}

func (r *Router) drop(ev Event, res *Result) {
	res.PreventDefault = true
	tok, ok := r.drag.Drop()
	if !ok {
		return
	}
	res.Redraw = r.store.Move(tok.Source, ev.Day, tok.TaskID)
}

func (r *Router) dragEnd(_ Event, _ *Result) {
	r.drag.End()
}
