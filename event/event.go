// Package event defines the contract implemented by generated variant
// types. The host dispatch runtime depends on these interfaces; the
// generator only emits types that satisfy them.
package event

// Entity identifies the entity an entity event concerns.
type Entity uint64

// Event is implemented by every generated variant type.
type Event interface {
	// EventName returns "Enum.Variant".
	EventName() string
}

// EntityEvent is an event delivered to a specific entity.
type EntityEvent interface {
	Event
	EventTarget() Entity
}

// Unwrapper gives single-value access to the designated field of an event.
// SetValue needs a pointer receiver, so *T implements Unwrapper, T only
// the Value half.
type Unwrapper[V any] interface {
	Value() V
	SetValue(v V)
}

// Hierarchy is the view of the entity graph a Relationship walks.
type Hierarchy interface {
	Parent(child Entity) (Entity, bool)
}

// Relationship selects the next entity an event propagates to.
type Relationship interface {
	Next(h Hierarchy, from Entity) (Entity, bool)
}

// Propagating is implemented by entity events that carry a propagation
// relationship. When AutoPropagate is false an observer must continue
// delivery explicitly at every step.
type Propagating interface {
	Traversal() Relationship
	AutoPropagate() bool
}

// ChildOf is the built-in hierarchy relationship: events travel from a
// child to its parent.
type ChildOf struct{}

// Next returns the parent of from.
func (ChildOf) Next(h Hierarchy, from Entity) (Entity, bool) {
	if h == nil {
		return 0, false
	}

	return h.Parent(from)
}

// Path lists the entities an event visits after target when following rel
// through h. Cycles stop the walk at the first repeated entity.
func Path(rel Relationship, h Hierarchy, target Entity) []Entity {
	if rel == nil {
		return nil
	}

	seen := map[Entity]struct{}{target: {}}

	var path []Entity

	for cur := target; ; {
		next, ok := rel.Next(h, cur)
		if !ok {
			return path
		}

		if _, dup := seen[next]; dup {
			return path
		}

		seen[next] = struct{}{}
		path = append(path, next)
		cur = next
	}
}
