package brep

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/battkit/cellplate/internal/model"
)

func TestMeshPlainBox(t *testing.T) {
	s, err := NewExtrusion(RectProfile(40, 20), 10)
	require.NoError(t, err)

	m := s.Mesh()
	// Bottom, top, and one quad per footprint edge.
	require.Len(t, m.Faces, 6)

	bottom, top := m.Faces[0], m.Faces[1]
	assert.Empty(t, bottom.Holes)
	assert.Empty(t, top.Holes)
	for _, p := range bottom.Outer {
		assert.Equal(t, 0.0, p.Z)
	}
	for _, p := range top.Outer {
		assert.Equal(t, 10.0, p.Z)
	}
}

func TestMeshThroughCut(t *testing.T) {
	s, err := NewExtrusion(RectProfile(60, 60), 10)
	require.NoError(t, err)
	require.NoError(t, s.CutCylinders([]model.Point2D{{X: 0, Y: 0}}, 9))

	m := s.Mesh()
	// 6 box faces plus the bore wall quads.
	require.Len(t, m.Faces, 6+CircleSegments)

	assert.Len(t, m.Faces[0].Holes, 1, "bottom face opens at the bore")
	assert.Len(t, m.Faces[1].Holes, 1, "top face opens at the bore")
	assert.Len(t, m.Faces[0].Holes[0], CircleSegments)
}

func TestMeshLedgeAndRecess(t *testing.T) {
	s, err := NewExtrusion(RectProfile(60, 60), 10)
	require.NoError(t, err)
	center := model.Point2D{X: 0, Y: 0}
	require.NoError(t, s.CutCylinders([]model.Point2D{center}, 9))
	require.NoError(t, s.CutCounterbores([]model.Point2D{center}, 3.5, 1))
	require.NoError(t, s.GlueRings([]model.Point2D{center}, 9, 7, 2))

	m := s.Mesh()
	// Box faces, ledge inner wall, ledge annulus, main bore wall. The
	// attached counterbore is narrower than the bore and adds nothing.
	require.Len(t, m.Faces, 6+CircleSegments+1+CircleSegments)

	// The bottom opening narrows to the ledge's inner radius.
	innerLoop := m.Faces[0].Holes[0]
	dx := innerLoop[0].X - center.X
	dy := innerLoop[0].Y - center.Y
	assert.InDelta(t, 49, dx*dx+dy*dy, 1e-9, "bottom opening radius must be 7")
}

func TestMeshWideRecessShoulder(t *testing.T) {
	s, err := NewExtrusion(RectProfile(60, 60), 10)
	require.NoError(t, err)
	center := model.Point2D{X: 0, Y: 0}
	require.NoError(t, s.CutCylinders([]model.Point2D{center}, 2))
	require.NoError(t, s.CutCounterbores([]model.Point2D{center}, 3.5, 1))

	m := s.Mesh()
	// Box faces, recess shoulder annulus, recess wall, main bore wall.
	require.Len(t, m.Faces, 6+1+CircleSegments+CircleSegments)

	// The top opening widens to the recess radius.
	topLoop := m.Faces[1].Holes[0]
	dx := topLoop[0].X - center.X
	dy := topLoop[0].Y - center.Y
	assert.InDelta(t, 3.5*3.5, dx*dx+dy*dy, 1e-9, "top opening radius must be 3.5")
}

func TestMeshStandaloneCounterbore(t *testing.T) {
	s, err := NewExtrusion(RectProfile(60, 60), 10)
	require.NoError(t, err)
	require.NoError(t, s.CutCounterbores([]model.Point2D{{X: 10, Y: 10}}, 3.5, 1))

	m := s.Mesh()
	// Box faces, recess wall quads, and the flat floor disc.
	require.Len(t, m.Faces, 6+CircleSegments+1)
	assert.Len(t, m.Faces[1].Holes, 1, "top face opens at the recess")
	assert.Empty(t, m.Faces[0].Holes, "bottom face stays solid")
}

func TestMeshFilletBands(t *testing.T) {
	s, err := NewExtrusion(RectProfile(60, 60), 10)
	require.NoError(t, err)
	require.NoError(t, s.CutCylinders([]model.Point2D{{X: 0, Y: 0}}, 2))

	plain := len(s.Mesh().Faces)

	edges := s.EdgesNearest(model.Point3D{X: 0, Y: 0, Z: 10})
	require.NoError(t, s.Fillet(edges, 0.5))

	filleted := s.Mesh()
	// The top rim fillet adds filletSteps bands of wall quads.
	require.Len(t, filleted.Faces, plain+filletSteps*CircleSegments)

	// The top face opening widens by the fillet radius.
	topLoop := filleted.Faces[1].Holes[0]
	dx, dy := topLoop[0].X, topLoop[0].Y
	assert.InDelta(t, 2.5*2.5, dx*dx+dy*dy, 1e-9)
}

func TestRoundedRectProfile(t *testing.T) {
	rr := RoundedRectProfile(40, 20, 5)
	require.Len(t, rr, 4*(CornerSegments+1))
	assert.Greater(t, rr.Area(), 0.0, "profile must wind counter-clockwise")

	// Area is the rectangle minus the four corner squares plus the
	// quarter discs: w*l - r^2*(4 - pi). The tessellated arcs sit
	// slightly inside the true circle.
	want := 40*20 - 25*(4-math.Pi)
	assert.InDelta(t, want, rr.Area(), 0.2)
	assert.Less(t, rr.Area(), 800.0)

	min, max := rr.BoundingBox()
	assert.InDelta(t, -20, min.X, 1e-9)
	assert.InDelta(t, 20, max.X, 1e-9)
	assert.InDelta(t, -10, min.Y, 1e-9)
	assert.InDelta(t, 10, max.Y, 1e-9)
}

func TestRoundedRectProfileClampsRadius(t *testing.T) {
	// Radius above half the short side clamps; the short side ends fully
	// semicircular.
	rr := RoundedRectProfile(40, 20, 50)
	min, max := rr.BoundingBox()
	assert.InDelta(t, 20, max.X-min.X, 1e-9, "width preserved")
	assert.InDelta(t, 20, max.Y-min.Y, 1e-9, "length preserved")
}

func TestRoundedRectProfileZeroRadiusFallsBack(t *testing.T) {
	rr := RoundedRectProfile(40, 20, 0)
	require.Len(t, rr, 4)
}

func TestCircleProfileWinding(t *testing.T) {
	c := CircleProfile(model.Point2D{X: 1, Y: 2}, 3, CircleSegments)
	require.Len(t, c, CircleSegments)
	assert.Greater(t, c.Area(), 0.0)
}
