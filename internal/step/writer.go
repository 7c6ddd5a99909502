// Package step serializes plate solids to STEP files under the AP214
// (AUTOMOTIVE_DESIGN) schema as faceted boundary representations.
package step

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/battkit/cellplate/internal/brep"
	"github.com/battkit/cellplate/internal/model"
)

const schemaName = "AUTOMOTIVE_DESIGN { 1 0 10303 214 1 1 1 1 }"

// writer accumulates numbered STEP entities.
type writer struct {
	b      strings.Builder
	next   int
	points map[model.Point3D]int
}

// entity appends one numbered entity line and returns its id.
func (w *writer) entity(body string) int {
	w.next++
	fmt.Fprintf(&w.b, "#%d=%s;\n", w.next, body)
	return w.next
}

// point returns the id of a CARTESIAN_POINT, reusing ids for coordinates
// already emitted.
func (w *writer) point(p model.Point3D) int {
	if id, ok := w.points[p]; ok {
		return id
	}
	id := w.entity(fmt.Sprintf("CARTESIAN_POINT('',(%s,%s,%s))", real3(p.X), real3(p.Y), real3(p.Z)))
	w.points[p] = id
	return id
}

// real3 formats a coordinate with a fixed precision so identical inputs
// always serialize to identical bytes.
func real3(v float64) string {
	s := fmt.Sprintf("%.6f", v)
	if s == "-0.000000" {
		s = "0.000000"
	}
	return s
}

// Write serializes the solid to w as an AP214 STEP file. The header's
// timestamp field is left empty so repeated runs with identical inputs
// produce byte-identical output.
func Write(out io.Writer, solid *brep.Solid, productName string) error {
	mesh := solid.Mesh()
	if len(mesh.Faces) == 0 {
		return fmt.Errorf("solid has no faces to serialize")
	}

	w := &writer{points: make(map[model.Point3D]int)}

	appCtx := w.entity("APPLICATION_CONTEXT('automotive design')")
	w.entity(fmt.Sprintf("APPLICATION_PROTOCOL_DEFINITION('international standard','automotive_design',2010,#%d)", appCtx))
	prodCtx := w.entity(fmt.Sprintf("PRODUCT_CONTEXT('',#%d,'mechanical')", appCtx))
	product := w.entity(fmt.Sprintf("PRODUCT('%s','%s','',(#%d))", productName, productName, prodCtx))
	formation := w.entity(fmt.Sprintf("PRODUCT_DEFINITION_FORMATION('','',#%d)", product))
	defCtx := w.entity(fmt.Sprintf("PRODUCT_DEFINITION_CONTEXT('part definition',#%d,'design')", appCtx))
	definition := w.entity(fmt.Sprintf("PRODUCT_DEFINITION('design','',#%d,#%d)", formation, defCtx))
	defShape := w.entity(fmt.Sprintf("PRODUCT_DEFINITION_SHAPE('','',#%d)", definition))

	mm := w.entity("(LENGTH_UNIT()NAMED_UNIT(*)SI_UNIT(.MILLI.,.METRE.))")
	rad := w.entity("(NAMED_UNIT(*)PLANE_ANGLE_UNIT()SI_UNIT($,.RADIAN.))")
	sr := w.entity("(NAMED_UNIT(*)SI_UNIT($,.STERADIAN.)SOLID_ANGLE_UNIT())")
	uncertainty := w.entity(fmt.Sprintf("UNCERTAINTY_MEASURE_WITH_UNIT(LENGTH_MEASURE(0.000001),#%d,'distance_accuracy_value','')", mm))
	geomCtx := w.entity(fmt.Sprintf(
		"(GEOMETRIC_REPRESENTATION_CONTEXT(3)GLOBAL_UNCERTAINTY_ASSIGNED_CONTEXT((#%d))GLOBAL_UNIT_ASSIGNED_CONTEXT((#%d,#%d,#%d))REPRESENTATION_CONTEXT('',''))",
		uncertainty, mm, rad, sr))

	faceIDs := make([]int, 0, len(mesh.Faces))
	for _, face := range mesh.Faces {
		faceIDs = append(faceIDs, w.face(face))
	}

	var refs strings.Builder
	for i, id := range faceIDs {
		if i > 0 {
			refs.WriteString(",")
		}
		fmt.Fprintf(&refs, "#%d", id)
	}
	shell := w.entity(fmt.Sprintf("CLOSED_SHELL('',(%s))", refs.String()))
	solidID := w.entity(fmt.Sprintf("FACETED_BREP('',#%d)", shell))

	origin := w.point(model.Point3D{})
	axisZ := w.entity("DIRECTION('',(0.000000,0.000000,1.000000))")
	axisX := w.entity("DIRECTION('',(1.000000,0.000000,0.000000))")
	placement := w.entity(fmt.Sprintf("AXIS2_PLACEMENT_3D('',#%d,#%d,#%d)", origin, axisZ, axisX))
	shapeRep := w.entity(fmt.Sprintf("FACETED_BREP_SHAPE_REPRESENTATION('',(#%d,#%d),#%d)", placement, solidID, geomCtx))
	w.entity(fmt.Sprintf("SHAPE_DEFINITION_REPRESENTATION(#%d,#%d)", defShape, shapeRep))

	var file strings.Builder
	file.WriteString("ISO-10303-21;\n")
	file.WriteString("HEADER;\n")
	file.WriteString("FILE_DESCRIPTION((''),'2;1');\n")
	fmt.Fprintf(&file, "FILE_NAME('%s','',(''),(''),'','','');\n", productName)
	fmt.Fprintf(&file, "FILE_SCHEMA(('%s'));\n", schemaName)
	file.WriteString("ENDSEC;\n")
	file.WriteString("DATA;\n")
	file.WriteString(w.b.String())
	file.WriteString("ENDSEC;\n")
	file.WriteString("END-ISO-10303-21;\n")

	_, err := io.WriteString(out, file.String())
	return err
}

// face emits the loops, plane, and FACE_SURFACE for one facet.
func (w *writer) face(face brep.Face) int {
	outer := w.polyLoop(face.Outer)
	bounds := []int{w.entity(fmt.Sprintf("FACE_OUTER_BOUND('',#%d,.T.)", outer))}
	for _, hole := range face.Holes {
		loop := w.polyLoop(hole)
		bounds = append(bounds, w.entity(fmt.Sprintf("FACE_BOUND('',#%d,.T.)", loop)))
	}

	plane := w.plane(face.Outer)

	var refs strings.Builder
	for i, id := range bounds {
		if i > 0 {
			refs.WriteString(",")
		}
		fmt.Fprintf(&refs, "#%d", id)
	}
	return w.entity(fmt.Sprintf("FACE_SURFACE('',(%s),#%d,.T.)", refs.String(), plane))
}

// polyLoop emits a POLY_LOOP over the loop's points.
func (w *writer) polyLoop(loop brep.Loop) int {
	var refs strings.Builder
	for i, p := range loop {
		if i > 0 {
			refs.WriteString(",")
		}
		fmt.Fprintf(&refs, "#%d", w.point(p))
	}
	return w.entity(fmt.Sprintf("POLY_LOOP((%s))", refs.String()))
}

// plane emits the supporting plane of a facet, with its normal from
// Newell's method over the outer loop and its reference direction along
// the first edge.
func (w *writer) plane(loop brep.Loop) int {
	nx, ny, nz := newellNormal(loop)

	rx := loop[1].X - loop[0].X
	ry := loop[1].Y - loop[0].Y
	rz := loop[1].Z - loop[0].Z
	rlen := math.Sqrt(rx*rx + ry*ry + rz*rz)
	if rlen > 1e-12 {
		rx, ry, rz = rx/rlen, ry/rlen, rz/rlen
	} else {
		rx, ry, rz = 1, 0, 0
	}

	origin := w.point(loop[0])
	normal := w.entity(fmt.Sprintf("DIRECTION('',(%s,%s,%s))", real3(nx), real3(ny), real3(nz)))
	ref := w.entity(fmt.Sprintf("DIRECTION('',(%s,%s,%s))", real3(rx), real3(ry), real3(rz)))
	placement := w.entity(fmt.Sprintf("AXIS2_PLACEMENT_3D('',#%d,#%d,#%d)", origin, normal, ref))
	return w.entity(fmt.Sprintf("PLANE('',#%d)", placement))
}

// newellNormal computes the unit normal of a 3D polygon.
func newellNormal(loop brep.Loop) (nx, ny, nz float64) {
	n := len(loop)
	for i := 0; i < n; i++ {
		a := loop[i]
		b := loop[(i+1)%n]
		nx += (a.Y - b.Y) * (a.Z + b.Z)
		ny += (a.Z - b.Z) * (a.X + b.X)
		nz += (a.X - b.X) * (a.Y + b.Y)
	}
	length := math.Sqrt(nx*nx + ny*ny + nz*nz)
	if length < 1e-12 {
		return 0, 0, 1
	}
	return nx / length, ny / length, nz / length
}

// WriteFile serializes the solid to a STEP file at path.
func WriteFile(path string, solid *brep.Solid, productName string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, solid, productName); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
