/*
SPDX-License-Identifier: Apache-2.0

Copyright 2024 The Raytools Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package dom

// Common event types.
const (
	EventClick  = "click"
	EventChange = "change"
)

// Listener handles an event delivered to an element.
type Listener func(ev *Event)

// Event is dispatched at a target element and bubbles up through its
// ancestors until a listener stops propagation.
type Event struct {
	Type          string
	Target        *Element
	CurrentTarget *Element

	propagationStopped bool
	defaultPrevented   bool
}

// NewEvent creates an undispatched event of the given type.
func NewEvent(eventType string) *Event {
	return &Event{Type: eventType}
}

// StopPropagation prevents the event from reaching further ancestors.
// Remaining listeners on the current element still run.
func (ev *Event) StopPropagation() {
	ev.propagationStopped = true
}

// PropagationStopped reports whether StopPropagation was called.
func (ev *Event) PropagationStopped() bool {
	return ev.propagationStopped
}

// PreventDefault marks the default action as cancelled.
func (ev *Event) PreventDefault() {
	ev.defaultPrevented = true
}

// DefaultPrevented reports whether PreventDefault was called.
func (ev *Event) DefaultPrevented() bool {
	return ev.defaultPrevented
}

// AddEventListener registers fn for events of the given type on e.
func (e *Element) AddEventListener(eventType string, fn Listener) {
	if fn == nil {
		return
	}
	if e.listeners == nil {
		e.listeners = make(map[string][]Listener)
	}
	e.listeners[eventType] = append(e.listeners[eventType], fn)
}

// HasListener reports whether e has at least one listener for eventType.
func (e *Element) HasListener(eventType string) bool {
	return len(e.listeners[eventType]) > 0
}

// Dispatch delivers ev to e and then to each ancestor in turn. The
// propagation path is fixed before the first listener runs, so listeners
// that rebuild the tree do not change where the event travels.
func (e *Element) Dispatch(ev *Event) *Event {
	ev.Target = e
	var path []*Element
	for node := e; node != nil; node = node.parent {
		path = append(path, node)
	}
	for _, node := range path {
		ev.CurrentTarget = node
		for _, fn := range append([]Listener(nil), node.listeners[ev.Type]...) {
			fn(ev)
		}
		if ev.propagationStopped {
			break
		}
	}
	ev.CurrentTarget = nil
	return ev
}

// Click dispatches a click event at e.
func (e *Element) Click() *Event {
	return e.Dispatch(NewEvent(EventClick))
}
