package diagram

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

func TestBuiltin(t *testing.T) {
	s, err := Builtin()
	if err != nil {
		t.Fatalf("Builtin failed: %v", err)
	}

	nodes, edges := s.Len()
	if nodes != 10 {
		t.Errorf("expected 10 nodes, got %d", nodes)
	}
	if edges != 10 {
		t.Errorf("expected 10 edges, got %d", edges)
	}

	all := s.Nodes()
	if all[0].ID != "llm-1" || all[len(all)-1].ID != "app-3" {
		t.Errorf("unexpected load order: first %q, last %q", all[0].ID, all[len(all)-1].ID)
	}

	n, ok := s.Node("llm-2")
	if !ok {
		t.Fatal("llm-2 not found")
	}
	if n.Title != "Attention Layers" {
		t.Errorf("expected 'Attention Layers', got %q", n.Title)
	}
	if n.Position != (Position{X: 100, Y: 200}) {
		t.Errorf("unexpected position %+v", n.Position)
	}

	e, ok := s.Edge("e-rag-3-llm-1")
	if !ok {
		t.Fatal("e-rag-3-llm-1 not found")
	}
	if e.Style != RouteStep {
		t.Errorf("expected step style, got %q", e.Style)
	}

	if len(s.Categories()) != 3 {
		t.Errorf("expected 3 categories, got %d", len(s.Categories()))
	}
}

func TestLoadFromFS_TOMLAndHCL(t *testing.T) {
	s, err := LoadFromFS(os.DirFS("testdata"), "valid")
	if err != nil {
		t.Fatalf("LoadFromFS failed: %v", err)
	}

	nodes, edges := s.Len()
	if nodes != 4 || edges != 2 {
		t.Fatalf("expected 4 nodes / 2 edges, got %d / %d", nodes, edges)
	}

	a, _ := s.Node("A")
	if a.Details != "alpha details" {
		t.Errorf("expected TOML details, got %q", a.Details)
	}

	d, ok := s.Node("D")
	if !ok {
		t.Fatal("HCL node D not loaded")
	}
	if d.Category != CategoryApplication || d.Position != (Position{X: 300, Y: 50}) {
		t.Errorf("unexpected HCL node %+v", d)
	}

	e, _ := s.Edge("e-c-d")
	if e.Style != RouteStep {
		t.Errorf("expected HCL edge style step, got %q", e.Style)
	}
	ab, _ := s.Edge("e-a-b")
	if ab.Label != "feeds" {
		t.Errorf("expected label 'feeds', got %q", ab.Label)
	}
}

func TestLoadFromFS_MissingNodeFailsLoad(t *testing.T) {
	_, err := LoadFromFS(os.DirFS("testdata"), "broken")
	if err == nil {
		t.Fatal("expected configuration error")
	}

	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *ConfigError, got %T: %v", err, err)
	}
	if cfgErr.EdgeID != "e-x-y" || cfgErr.NodeID != "Y" {
		t.Errorf("expected e-x-y / Y, got %q / %q", cfgErr.EdgeID, cfgErr.NodeID)
	}
	if cfgErr.File != "edges.toml" {
		t.Errorf("expected file edges.toml, got %q", cfgErr.File)
	}
}

func TestLoadFromFS_DuplicateAcrossFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"d/1.toml": {Data: []byte("[[nodes]]\nid = \"A\"\ncategory = \"model-internal\"\n")},
		"d/2.hcl": {Data: []byte(`node "A" {
  category = "model-internal"
  x        = 0
  y        = 0
  title    = "again"
}
`)},
	}

	_, err := LoadFromFS(fsys, "d")
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *ConfigError, got %v", err)
	}
	if cfgErr.Kind != KindDuplicateNode || cfgErr.File != "2.hcl" {
		t.Errorf("expected duplicate-node in 2.hcl, got %s in %s", cfgErr.Kind, cfgErr.File)
	}
}

func TestLoadFromFS_ParseErrors(t *testing.T) {
	tests := []struct {
		name string
		file string
		data string
	}{
		{"bad toml", "bad.toml", "[[nodes]\nid = "},
		{"bad hcl", "bad.hcl", "node \"A\" {\n  category = \n"},
		{"hcl missing attr", "bad.hcl", "edge \"e\" {\n  source = \"A\"\n}\n"},
	}

	for _, tt := range tests {
		fsys := fstest.MapFS{"d/" + tt.file: {Data: []byte(tt.data)}}
		_, err := LoadFromFS(fsys, "d")
		if err == nil {
			t.Errorf("%s: expected error", tt.name)
			continue
		}
		var cfgErr *ConfigError
		if errors.As(err, &cfgErr) {
			t.Errorf("%s: parse failures should not be ConfigErrors", tt.name)
		}
	}
}

func TestLoadFromFS_InvalidDir(t *testing.T) {
	_, err := LoadFromFS(os.DirFS("testdata"), "nonexistent")
	if err == nil {
		t.Error("expected error for nonexistent directory")
	}
}

func TestLoadBuiltin_Overlay(t *testing.T) {
	s, err := LoadBuiltin(filepath.Join("testdata", "overlay"))
	if err != nil {
		t.Fatalf("LoadBuiltin failed: %v", err)
	}

	nodes, edges := s.Len()
	if nodes != 11 || edges != 11 {
		t.Errorf("expected 11 nodes / 11 edges, got %d / %d", nodes, edges)
	}

	n, _ := s.Node("llm-4")
	if n.Title != "Unembedding" {
		t.Errorf("overlay should replace llm-4, got title %q", n.Title)
	}
	// Replaced nodes keep their slot.
	if s.Nodes()[3].ID != "llm-4" {
		t.Errorf("expected llm-4 at index 3, got %q", s.Nodes()[3].ID)
	}
	if s.Nodes()[nodes-1].ID != "llm-5" {
		t.Errorf("expected new node appended, got %q", s.Nodes()[nodes-1].ID)
	}
}

func TestLoadBuiltin_MissingOverlayDir(t *testing.T) {
	s, err := LoadBuiltin(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("missing overlay dir should be fine: %v", err)
	}
	if nodes, _ := s.Len(); nodes != 10 {
		t.Errorf("expected 10 nodes, got %d", nodes)
	}
}

func TestLoadBuiltin_BrokenOverlay(t *testing.T) {
	dir := t.TempDir()
	data := "[[edges]]\nid = \"e-dangling\"\nsource = \"llm-1\"\ntarget = \"ghost\"\n"
	if err := os.WriteFile(filepath.Join(dir, "bad.toml"), []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadBuiltin(dir)
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *ConfigError, got %v", err)
	}
	if cfgErr.NodeID != "ghost" {
		t.Errorf("expected missing node ghost, got %q", cfgErr.NodeID)
	}
}

func TestLoadBuiltin_DuplicateIDsInOverlay(t *testing.T) {
	dir := t.TempDir()
	data := `
[[nodes]]
id = "new-1"
category = "model-internal"
title = "A"

[[nodes]]
id = "new-1"
category = "model-internal"
title = "B"

[[edges]]
id = "e-dup"
source = "llm-1"
target = "new-1"

[[edges]]
id = "e-dup"
source = "llm-2"
target = "llm-3"
`
	if err := os.WriteFile(filepath.Join(dir, "x.toml"), []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadBuiltin(dir)
	if err == nil {
		t.Fatalf("expected duplicate ids to fail the load, got store with node %+v", s.Nodes()[len(s.Nodes())-1])
	}

	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		t.Fatalf("expected joined errors, got %T: %v", err, err)
	}
	kinds := make(map[ErrorKind]string)
	for _, e := range joined.Unwrap() {
		var cfgErr *ConfigError
		if !errors.As(e, &cfgErr) {
			t.Fatalf("expected *ConfigError, got %v", e)
		}
		if cfgErr.File != "x.toml" {
			t.Errorf("expected file x.toml, got %q", cfgErr.File)
		}
		kinds[cfgErr.Kind] = cfgErr.NodeID + cfgErr.EdgeID
	}
	if kinds[KindDuplicateNode] != "new-1" {
		t.Errorf("expected duplicate node new-1, got %v", kinds)
	}
	if kinds[KindDuplicateEdge] != "e-dup" {
		t.Errorf("expected duplicate edge e-dup, got %v", kinds)
	}

	// The same directory loaded on its own is rejected the same way.
	if _, err := LoadFromFS(os.DirFS(dir), "."); err == nil {
		t.Error("LoadFromFS should reject the duplicates too")
	}
}
