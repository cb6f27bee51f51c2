package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the manifest file looked up in a project root.
const FileName = "axiom.yaml"

// DefaultEntry is the entry file used when the manifest names none.
const DefaultEntry = "src/main.axi"

// SourceExt is the extension every Axiom source file must carry.
const SourceExt = ".axi"

type Manifest struct {
	Path    string  `yaml:"-"`
	Package Package `yaml:"package"`
	Entry   string  `yaml:"entry,omitempty"`
}

type Package struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version,omitempty"`
}

// Default returns the manifest assumed for a project directory without
// an axiom.yaml.
func Default(dir string) *Manifest {
	return &Manifest{
		Package: Package{Name: filepath.Base(dir), Version: "0.0.0"},
		Entry:   DefaultEntry,
	}
}

func Load(path string) (*Manifest, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: resolve %s: %w", path, err)
	}
	f, err := os.Open(abs)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m := &Manifest{}
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(m); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("manifest: parse %s: %w", abs, err)
	}
	m.Path = abs
	if err := m.normalize(); err != nil {
		return nil, fmt.Errorf("manifest: %s: %w", abs, err)
	}
	return m, nil
}

// Write encodes m to path, or to m.Path when path is empty.
func Write(m *Manifest, path string) error {
	if m == nil {
		return fmt.Errorf("manifest: nil manifest")
	}
	if path == "" {
		path = m.Path
	}
	if path == "" {
		return fmt.Errorf("manifest: missing path")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("manifest: resolve %s: %w", path, err)
	}
	m.Path = abs
	if err := m.normalize(); err != nil {
		return fmt.Errorf("manifest: %s: %w", abs, err)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("manifest: marshal %s: %w", abs, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("manifest: encoder close: %w", err)
	}
	if err := os.WriteFile(abs, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("manifest: write %s: %w", abs, err)
	}
	return nil
}

// Root is the directory holding the manifest.
func (m *Manifest) Root() string {
	if m.Path == "" {
		return ""
	}
	return filepath.Dir(m.Path)
}

func (m *Manifest) normalize() error {
	m.Package.Name = strings.TrimSpace(m.Package.Name)
	m.Package.Version = strings.TrimSpace(m.Package.Version)
	m.Entry = strings.TrimSpace(m.Entry)
	if m.Package.Name == "" && m.Path != "" {
		m.Package.Name = filepath.Base(filepath.Dir(m.Path))
	}
	if m.Entry == "" {
		m.Entry = DefaultEntry
	}
	if filepath.Ext(m.Entry) != SourceExt {
		return fmt.Errorf("entry %q must use the %s extension", m.Entry, SourceExt)
	}
	return nil
}
