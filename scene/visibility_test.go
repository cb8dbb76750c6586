package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brushfix/brushfix/geo"
)

func TestPruneInvisibleRemovesHiddenSolidsAndEntities(t *testing.T) {
	sc := &Scene{
		VisGroups: []VisGroup{
			{Index: 1, Name: "visible", Visible: true},
			{Index: 2, Name: "hidden", Visible: false},
		},
		Root: Group{
			Solids: []geo.Solid{
				{Visgroup: 1, Index: 1},
				{Visgroup: 2, Index: 2},
			},
			Entities: []Entity{
				{Classname: "light", Visgroup: 1, Index: 1},
				{Classname: "light", Visgroup: 2, Index: 2},
			},
			Groups: []Group{
				{Visgroup: 2, Solids: []geo.Solid{{Visgroup: 0, Index: 3}}},
			},
		},
	}

	PruneInvisible(sc)

	if assert.Len(t, sc.Root.Solids, 1) {
		assert.Equal(t, 1, sc.Root.Solids[0].Index)
	}
	if assert.Len(t, sc.Root.Entities, 1) {
		assert.Equal(t, 1, sc.Root.Entities[0].Index)
	}
	assert.Empty(t, sc.Root.Groups, "a group itself tagged with a hidden visgroup should be pruned entirely")
}

func TestVisGroupVisibleDefaultsTrueForGroupZero(t *testing.T) {
	sc := &Scene{VisGroups: []VisGroup{{Index: 1, Visible: false}}}
	assert.True(t, sc.VisGroupVisible(0))
	assert.False(t, sc.VisGroupVisible(1))
	assert.True(t, sc.VisGroupVisible(99), "an index absent from the table is treated as visible")
}
