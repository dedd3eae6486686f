package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type parents map[Entity]Entity

func (p parents) Parent(child Entity) (Entity, bool) {
	e, ok := p[child]
	return e, ok
}

type skipOne struct{}

func (skipOne) Next(h Hierarchy, from Entity) (Entity, bool) {
	p, ok := h.Parent(from)
	if !ok {
		return 0, false
	}

	return h.Parent(p)
}

func TestChildOf_Next(t *testing.T) {
	h := parents{3: 2, 2: 1}

	next, ok := ChildOf{}.Next(h, 3)
	assert.True(t, ok)
	assert.Equal(t, Entity(2), next)

	_, ok = ChildOf{}.Next(h, 1)
	assert.False(t, ok)

	_, ok = ChildOf{}.Next(nil, 1)
	assert.False(t, ok)
}

func TestPath(t *testing.T) {
	h := parents{4: 3, 3: 2, 2: 1}

	assert.Equal(t, []Entity{3, 2, 1}, Path(ChildOf{}, h, 4))
	assert.Equal(t, []Entity{2}, Path(skipOne{}, h, 4))
	assert.Nil(t, Path(ChildOf{}, h, 1))
	assert.Nil(t, Path(nil, h, 4))
}

func TestPath_StopsOnCycle(t *testing.T) {
	h := parents{1: 2, 2: 3, 3: 1}

	assert.Equal(t, []Entity{2, 3}, Path(ChildOf{}, h, 1))
}
