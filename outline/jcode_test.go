package outline

import (
	"bytes"
	"image"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/JoshPattman/jcode"
)

func TestToJCode(t *testing.T) {
	points := []SizedPoint{{X: 0, Y: 10, Size: 3}, {X: 10, Y: 10, Size: 4}, {X: 10, Y: 0, Size: 5}}
	cfg := DefaultPlotConfig()
	code := ToJCode(points, image.Rect(0, 0, 10, 10), cfg)
	// Speed, first waypoint, delay, pen down, 2 waypoints, closing waypoint, delay, pen up
	if len(code) != 9 {
		t.Fatalf("Expected 9 instructions, got %d: %v", len(code), code)
	}
	if speed, ok := code[0].(jcode.Speed); !ok || speed.Speed != cfg.Speed {
		t.Errorf("Expected speed instruction first, got %v", code[0])
	}
	first, ok := code[1].(jcode.Waypoint)
	if !ok {
		t.Fatalf("Expected waypoint, got %v", code[1])
	}
	// Bottom-left pixel maps to left edge at plotter y start
	if math.Abs(first.XPos-(-4)) > eps || math.Abs(first.YPos-8) > eps {
		t.Errorf("Unexpected first waypoint: %+v", first)
	}
	if pen, ok := code[3].(jcode.Pen); !ok || pen.Mode != jcode.PenDown {
		t.Errorf("Expected pen down, got %v", code[3])
	}
	if closing, ok := code[6].(jcode.Waypoint); !ok || closing != first {
		t.Errorf("Expected stroke to close at the first waypoint, got %v", code[6])
	}
	if pen, ok := code[8].(jcode.Pen); !ok || pen.Mode != jcode.PenUp {
		t.Errorf("Expected pen up last, got %v", code[8])
	}

	var buf bytes.Buffer
	if err := WriteJCode(&buf, code); err != nil {
		t.Fatal(err)
	}
	if buf.Len() == 0 {
		t.Error("Expected encoded JCode")
	}
}

func TestToJCodeEmpty(t *testing.T) {
	code := ToJCode(nil, image.Rect(0, 0, 10, 10), DefaultPlotConfig())
	if len(code) != 1 {
		t.Errorf("Expected only speed instruction, got %v", code)
	}
}

func TestSaveJCode(t *testing.T) {
	res := &Result{
		Simplified: []SizedPoint{{X: 0, Y: 10, Size: 3}, {X: 10, Y: 10, Size: 4}, {X: 10, Y: 0, Size: 5}},
	}
	bounds := image.Rect(0, 0, 10, 10)
	path := filepath.Join(t.TempDir(), "outline.jcode")
	if err := SaveJCode(path, res, bounds, DefaultPlotConfig()); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var expected bytes.Buffer
	if err := WriteJCode(&expected, ToJCode(res.Simplified, bounds, DefaultPlotConfig())); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, expected.Bytes()) {
		t.Errorf("Saved JCode differs from encoded one:\n%s\nexpected:\n%s", data, expected.Bytes())
	}

	missing := filepath.Join(t.TempDir(), "missing-dir", "outline.jcode")
	if err := SaveJCode(missing, res, bounds, DefaultPlotConfig()); err == nil {
		t.Error("Expected error for missing directory")
	}
}
