// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"go3ds/math/vec"
	"go3ds/mesh"
	"go3ds/model"
	"go3ds/node"
	"go3ds/track"
)

func testScene() *model.File {
	f := model.New()
	m := mesh.New("box")
	m.Points = []vec.Vec3{{X: -1}, {X: 1, Y: 2}}
	f.InsertMesh(m, -1)
	parent := node.New(node.ObjectNode, "box")
	parent.Data.(*node.ObjectData).Pos.Insert(track.Lin3Key{Value: vec.Vec3{X: 2}})
	f.Nodes.Add(parent)
	child := node.New(node.CameraNode, "cam")
	child.ID = 1
	child.ParentID = 0
	f.Nodes.Add(child)
	f.Nodes.Link()
	return f
}

func TestLoadConfigFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "config.yaml")
	data := "log_level: debug\noutput: json\nframe_step: 0.5\n"
	if err := os.WriteFile(name, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	c := loadConfigFile(name)
	if c.LogLevel != "debug" || c.Output != "json" || c.FrameStep == nil || *c.FrameStep != 0.5 || c.Pak != "" {
		t.Errorf("loadConfigFile = %+v", c)
	}
	if c := loadConfigFile(filepath.Join(t.TempDir(), "missing.yaml")); c != (Config{}) {
		t.Errorf("missing file gives %+v", c)
	}
}

func TestDescribe(t *testing.T) {
	s := describe(testScene())
	if len(s.Meshes) != 1 || s.Meshes[0].Points != 2 {
		t.Errorf("Meshes = %+v", s.Meshes)
	}
	if len(s.Nodes) != 1 || len(s.Nodes[0].Children) != 1 || s.Nodes[0].Children[0].Name != "cam" {
		t.Errorf("Nodes = %+v", s.Nodes)
	}
	if len(s.Bounds) != 2 || s.Bounds[1] != [3]float32{1, 2, 0} {
		t.Errorf("Bounds = %v", s.Bounds)
	}
	var buf bytes.Buffer
	if err := s.text(&buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `camera "cam" id 1`) {
		t.Errorf("text output:\n%s", buf.String())
	}
}

func TestEvaluate(t *testing.T) {
	r, err := evaluate(testScene(), 0, "cam")
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if len(r.Nodes) != 1 || r.Nodes[0].World[3] != [4]float32{2, 0, 0, 1} {
		t.Errorf("evaluate(cam) = %+v", r.Nodes)
	}
	if _, err := evaluate(testScene(), 0, "nope"); err == nil {
		t.Errorf("evaluate(nope) succeeded")
	}
}

func TestReport(t *testing.T) {
	defer func(o string) { output = o }(output)
	r, _ := evaluate(testScene(), 0, "")

	output = "json"
	var buf bytes.Buffer
	if err := report(&buf, r, r.text); err != nil {
		t.Fatal(err)
	}
	var fromJSON evalReport
	if err := json.Unmarshal(buf.Bytes(), &fromJSON); err != nil {
		t.Fatalf("json output: %v", err)
	}
	if len(fromJSON.Nodes) != 2 || fromJSON.Nodes[0].Name != "box" {
		t.Errorf("json output = %+v", fromJSON)
	}

	output = "yaml"
	buf.Reset()
	if err := report(&buf, r, r.text); err != nil {
		t.Fatal(err)
	}
	var fromYAML evalReport
	if err := yaml.Unmarshal(buf.Bytes(), &fromYAML); err != nil {
		t.Fatalf("yaml output: %v", err)
	}
	if len(fromYAML.Nodes) != 2 || fromYAML.Nodes[1].Kind != "camera" {
		t.Errorf("yaml output = %+v", fromYAML)
	}

	output = "xml"
	if err := report(&buf, r, r.text); err == nil {
		t.Errorf("report with xml succeeded")
	}
}
