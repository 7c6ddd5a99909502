package step

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/battkit/cellplate/internal/brep"
	"github.com/battkit/cellplate/internal/model"
)

func buildTestSolid(t *testing.T) *brep.Solid {
	t.Helper()
	s, err := brep.NewExtrusion(brep.RectProfile(60, 60), 10)
	if err != nil {
		t.Fatalf("extrusion: %v", err)
	}
	if err := s.CutCylinders([]model.Point2D{{X: 0, Y: 0}}, 9); err != nil {
		t.Fatalf("cut: %v", err)
	}
	return s
}

func TestWriteStructure(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, buildTestSolid(t), "grid_layout.step"); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "ISO-10303-21;\n") {
		t.Error("missing ISO-10303-21 preamble")
	}
	if !strings.HasSuffix(out, "END-ISO-10303-21;\n") {
		t.Error("missing END-ISO-10303-21 terminator")
	}
	if got := strings.Count(out, "ENDSEC;"); got != 2 {
		t.Errorf("expected 2 ENDSEC markers, got %d", got)
	}

	for _, marker := range []string{
		"FILE_SCHEMA(('AUTOMOTIVE_DESIGN { 1 0 10303 214 1 1 1 1 }'));",
		"FILE_NAME('grid_layout.step','',(''),(''),'','','');",
		"CLOSED_SHELL(",
		"FACETED_BREP(",
		"SHAPE_DEFINITION_REPRESENTATION(",
		"PRODUCT('grid_layout.step'",
		"SI_UNIT(.MILLI.,.METRE.)",
		"#1=APPLICATION_CONTEXT('automotive design');",
	} {
		if !strings.Contains(out, marker) {
			t.Errorf("output missing %q", marker)
		}
	}
}

func TestWriteDeterministic(t *testing.T) {
	var first, second bytes.Buffer
	if err := Write(&first, buildTestSolid(t), "plate"); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := Write(&second, buildTestSolid(t), "plate"); err != nil {
		t.Fatalf("second write: %v", err)
	}
	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Error("identical solids must serialize to identical bytes")
	}
}

func TestWriteOneFacePerMeshFace(t *testing.T) {
	solid := buildTestSolid(t)
	var buf bytes.Buffer
	if err := Write(&buf, solid, "plate"); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}

	want := len(solid.Mesh().Faces)
	if got := strings.Count(buf.String(), "FACE_SURFACE("); got != want {
		t.Errorf("expected %d FACE_SURFACE entities, got %d", want, got)
	}
}

func TestWriteNegativeZeroNormalized(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, buildTestSolid(t), "plate"); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	if strings.Contains(buf.String(), "-0.000000") {
		t.Error("negative zero must serialize as 0.000000")
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid_layout.step")
	if err := WriteFile(path, buildTestSolid(t), "grid_layout.step"); err != nil {
		t.Fatalf("WriteFile returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("expected non-empty STEP file")
	}
	if !strings.Contains(string(data), "FACETED_BREP(") {
		t.Error("file missing FACETED_BREP entity")
	}
}
