package diagram

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

//go:embed data/*.toml
var builtinFS embed.FS

type tomlFile struct {
	Nodes []tomlNode `toml:"nodes"`
	Edges []tomlEdge `toml:"edges"`
}

type tomlNode struct {
	ID          string  `toml:"id"`
	Category    string  `toml:"category"`
	X           float64 `toml:"x"`
	Y           float64 `toml:"y"`
	Title       string  `toml:"title"`
	Description string  `toml:"description"`
	Details     string  `toml:"details"`
}

type tomlEdge struct {
	ID     string `toml:"id"`
	Source string `toml:"source"`
	Target string `toml:"target"`
	Label  string `toml:"label"`
	Style  string `toml:"style"`
}

// Builtin loads the diagram compiled into the binary.
func Builtin() (*Store, error) {
	return LoadFromFS(builtinFS, "data")
}

// LoadBuiltin loads the compiled-in diagram and applies overlay files from
// overlayDir on top of it.
func LoadBuiltin(overlayDir string) (*Store, error) {
	return LoadAll(builtinFS, "data", overlayDir)
}

// LoadFromFS loads and validates every .toml and .hcl file in dir.
func LoadFromFS(fsys fs.FS, dir string) (*Store, error) {
	doc, err := readDocument(fsys, dir)
	if err != nil {
		return nil, err
	}
	return build(doc)
}

// LoadAll merges a base diagram with overlay files from overlayDir. Overlay
// elements replace base elements with the same id; new ids are appended.
// A missing overlay directory is not an error. Ids repeated within the
// overlay are reported as duplicates rather than merged.
func LoadAll(fsys fs.FS, dir, overlayDir string) (*Store, error) {
	doc, err := readDocument(fsys, dir)
	if err != nil {
		return nil, err
	}

	if overlayDir != "" {
		if info, statErr := os.Stat(overlayDir); statErr == nil && info.IsDir() {
			extra, err := readDocument(os.DirFS(overlayDir), ".")
			if err != nil {
				return nil, fmt.Errorf("overlay %s: %w", overlayDir, err)
			}
			if dups := extra.duplicates(); len(dups) > 0 {
				return nil, errors.Join(dups...)
			}
			doc.overlay(extra)
		}
	}

	return build(doc)
}

func readDocument(fsys fs.FS, dir string) (*document, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("reading diagram dir: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(path.Ext(entry.Name())) {
		case ".toml", ".hcl":
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	doc := &document{}
	for _, name := range names {
		data, err := fs.ReadFile(fsys, path.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		if strings.EqualFold(path.Ext(name), ".hcl") {
			err = decodeHCL(doc, name, data)
		} else {
			err = decodeTOML(doc, name, data)
		}
		if err != nil {
			return nil, err
		}
	}
	return doc, nil
}

func decodeTOML(doc *document, name string, data []byte) error {
	var f tomlFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}
	for _, n := range f.Nodes {
		doc.addNode(Node{
			ID:          n.ID,
			Category:    Category(n.Category),
			Position:    Position{X: n.X, Y: n.Y},
			Title:       n.Title,
			Description: n.Description,
			Details:     n.Details,
		}, name)
	}
	for _, e := range f.Edges {
		doc.addEdge(Edge{
			ID:     e.ID,
			Source: e.Source,
			Target: e.Target,
			Label:  e.Label,
			Style:  RouteStyle(e.Style),
		}, name)
	}
	return nil
}
