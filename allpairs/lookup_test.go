package allpairs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/campusnav/allpairs"
	"github.com/katalvlaran/campusnav/dijkstra"
	"github.com/katalvlaran/campusnav/mapdata"
)

// quad is a small named campus with one shadowed name.
func quad() *mapdata.RawMap {
	return new(mapdata.RawMap).
		AddNode("lib", "Library").
		AddNode("gym", "Gym").
		AddNode("caf", "Cafeteria").
		AddNode("cafe2", "Cafeteria").
		AddNode("gate", "").
		AddLink("lib", "gym", 120).
		AddLink("gym", "caf", 80).
		AddLink("lib", "caf", 250).
		AddLink("caf", "lib", 250)
}

func TestResult_Resolve(t *testing.T) {
	res := precompute(t, quad())

	id, err := res.Resolve("Gym")
	require.NoError(t, err)
	assert.Equal(t, 2, id)

	_, err = res.Resolve("Cafeteria")
	assert.ErrorIs(t, err, allpairs.ErrAmbiguousLocation)

	_, err = res.Resolve("Observatory")
	assert.ErrorIs(t, err, allpairs.ErrUnknownLocation)

	id, err = res.Resolve("unnamed_5")
	require.NoError(t, err)
	assert.Equal(t, 5, id)
}

func TestResult_Distance(t *testing.T) {
	res := precompute(t, quad())

	d, err := res.Distance("Library", "Gym")
	require.NoError(t, err)
	assert.Equal(t, 120.0, d)

	d, err = res.DistanceByID(1, 3)
	require.NoError(t, err)
	assert.Equal(t, 200.0, d)

	_, err = res.Distance("Gym", "unnamed_5")
	assert.ErrorIs(t, err, allpairs.ErrRouteUnavailable)

	_, err = res.DistanceByID(1, 99)
	assert.ErrorIs(t, err, allpairs.ErrUnknownLocation)
	_, err = res.DistanceByID(0, 1)
	assert.ErrorIs(t, err, allpairs.ErrUnknownLocation)
}

func TestResult_Route(t *testing.T) {
	res := precompute(t, quad(), allpairs.WithPaths())

	nodes, d, err := res.Route("Library", "Gym")
	require.NoError(t, err)
	assert.Equal(t, 120.0, d)
	require.Len(t, nodes, 2)
	assert.Equal(t, "Library", nodes[0].Name)

	nodes, d, err = res.RouteByID(1, 3)
	require.NoError(t, err)
	assert.Equal(t, 200.0, d)
	assert.Equal(t, []mapdata.ExternalID{"lib", "gym", "caf"},
		[]mapdata.ExternalID{nodes[0].External, nodes[1].External, nodes[2].External})

	nodes, d, err = res.RouteByID(5, 5)
	require.NoError(t, err)
	assert.Equal(t, 0.0, d)
	assert.Len(t, nodes, 1)

	_, _, err = res.Route("Gym", "unnamed_5")
	assert.ErrorIs(t, err, allpairs.ErrRouteUnavailable)
}

func TestResult_RouteWithoutPaths(t *testing.T) {
	res := precompute(t, quad())

	_, _, err := res.Route("Library", "Gym")
	assert.ErrorIs(t, err, allpairs.ErrPathsNotRetained)
}

func TestResult_Node(t *testing.T) {
	res := precompute(t, quad())

	n, err := res.Node(4)
	require.NoError(t, err)
	assert.Equal(t, mapdata.ExternalID("cafe2"), n.External)

	_, err = res.Node(6)
	assert.ErrorIs(t, err, allpairs.ErrUnknownLocation)
}

func TestResult_Verify(t *testing.T) {
	res := precompute(t, quad())
	require.NoError(t, res.Verify())

	// Lengthen one stored distance past what an edge allows.
	res.ShortestPaths[1][3] = 999
	// Drop a row and give another source a non-zero self distance.
	delete(res.ShortestPaths, 5)
	res.ShortestPaths[2][2] = 1
	res.ShortestPaths[9] = dijkstra.Distances{9: 0}

	err := res.Verify()
	require.Error(t, err)
	assert.ErrorIs(t, err, allpairs.ErrInconsistentTable)
	assert.Contains(t, err.Error(), "d(1,3)=999")
	assert.Contains(t, err.Error(), "no row for source 5")
	assert.Contains(t, err.Error(), "d(2,2)=1, want 0")
	assert.Contains(t, err.Error(), "row for unknown source 9")
}

func TestResult_VerifyMissingNeighbor(t *testing.T) {
	res := precompute(t, quad())
	delete(res.ShortestPaths[1], 2)

	err := res.Verify()
	assert.ErrorIs(t, err, allpairs.ErrInconsistentTable)
}
