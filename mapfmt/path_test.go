package mapfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brushfix/brushfix/geo"
	"github.com/brushfix/brushfix/scene"
)

func threeCorners() []PathCorner {
	return []PathCorner{
		{Origin: geo.NewVector(0, 0, 0)},
		{Origin: geo.NewVector(1, 0, 0)},
		{Origin: geo.NewVector(2, 0, 0)},
	}
}

func targetOf(t *testing.T, entities []scene.Entity, name string) (string, bool) {
	t.Helper()
	for _, e := range entities {
		if e.Value("targetname") == name {
			return e.Value("target"), e.Value("target") != ""
		}
	}
	t.Fatalf("no entity named %q", name)
	return "", false
}

func TestExpandPathOneWayChainsForwardOnly(t *testing.T) {
	entities := ExpandPath("path", PathOneWay, threeCorners())
	require.Len(t, entities, 3)

	target, ok := targetOf(t, entities, "path_1")
	assert.True(t, ok)
	assert.Equal(t, "path_2", target)

	target, ok = targetOf(t, entities, "path_2")
	assert.True(t, ok)
	assert.Equal(t, "path_3", target)

	_, ok = targetOf(t, entities, "path_3")
	assert.False(t, ok, "the last corner of a one-way path has no target")
}

func TestExpandPathCircularClosesLoop(t *testing.T) {
	entities := ExpandPath("path", PathCircular, threeCorners())
	require.Len(t, entities, 3)

	target, _ := targetOf(t, entities, "path_3")
	assert.Equal(t, "path_1", target, "the last corner should target the first, closing the loop")
}

// TestExpandPathPingPongIsATraceableBackAndForthChain covers the testable
// property that a ping-pong path alternates direction as a real
// target/targetname graph: following targets from the first corner should
// visit every corner, reach the last, then come back through the
// interior corners, and finally return to the first.
func TestExpandPathPingPongIsATraceableBackAndForthChain(t *testing.T) {
	corners := append(threeCorners(), PathCorner{Origin: geo.NewVector(3, 0, 0)})
	entities := ExpandPath("path", PathPingPong, corners)
	require.Len(t, entities, 2*len(corners)-2)

	byName := map[string]scene.Entity{}
	for _, e := range entities {
		byName[e.Value("targetname")] = e
	}

	var visited []string
	cur := "path_1"
	for i := 0; i <= len(entities); i++ {
		visited = append(visited, cur)
		e, ok := byName[cur]
		require.True(t, ok, "dangling target %q", cur)
		next := e.Value("target")
		if next == "" {
			break
		}
		cur = next
	}

	// Forward leg visits every corner in order, then the backward leg
	// revisits the interior corners before returning to the start.
	assert.Equal(t, []string{"path_1", "path_2", "path_3", "path_4", "path_b2", "path_b1", "path_1"}, visited)
}

func TestExpandPathSingleCorner(t *testing.T) {
	entities := ExpandPath("path", PathPingPong, []PathCorner{{Origin: geo.NewVector(0, 0, 0)}})
	require.Len(t, entities, 1)
	assert.Equal(t, "path_1", entities[0].Value("targetname"))
}

func TestExpandPathEmpty(t *testing.T) {
	assert.Nil(t, ExpandPath("path", PathOneWay, nil))
}
