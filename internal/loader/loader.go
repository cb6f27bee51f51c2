package loader

import (
	"fmt"
	"os"
	"path/filepath"

	"axiomlang/internal/diag"
	"axiomlang/internal/interp"
	"axiomlang/internal/manifest"
	"axiomlang/internal/parser"
	"axiomlang/internal/source"
	"axiomlang/internal/typecheck"
)

// Target is a resolved program to build: either a project (root with an
// optional manifest) or a single .axi file.
type Target struct {
	Root      string
	Manifest  *manifest.Manifest
	EntryPath string
	// DisplayName is the file name used in diagnostics.
	DisplayName string
}

type BuildResult struct {
	Program  *typecheck.CheckedProgram
	Value    interp.Value
	HasValue bool
}

// InitPackage scaffolds a project in dir. Existing files are left alone.
func InitPackage(dir string) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Join(abs, "src"), 0o755); err != nil {
		return err
	}

	manifestPath := filepath.Join(abs, manifest.FileName)
	if _, err := os.Stat(manifestPath); os.IsNotExist(err) {
		m := manifest.Default(abs)
		m.Package.Version = "0.1.0"
		if err := manifest.Write(m, manifestPath); err != nil {
			return err
		}
	}

	mainPath := filepath.Join(abs, filepath.FromSlash(manifest.DefaultEntry))
	if _, err := os.Stat(mainPath); os.IsNotExist(err) {
		content := `# Each ` + "`now`" + ` reads the clock and advances it by one.
let start = now
let t = now
t
`
		if err := os.WriteFile(mainPath, []byte(content), 0o644); err != nil {
			return err
		}
	}
	return nil
}

// Resolve turns a command-line path into a build target. A path ending in
// .axi is run directly; anything else is treated as a project directory.
func Resolve(path string) (*Target, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		if filepath.Ext(abs) != manifest.SourceExt {
			return nil, fmt.Errorf("invalid file type: %s (Axiom programs must use the %s extension)", path, manifest.SourceExt)
		}
		return &Target{Root: filepath.Dir(abs), EntryPath: abs, DisplayName: filepath.Base(abs)}, nil
	}

	root, maniPath := findPackageRoot(abs)
	var mani *manifest.Manifest
	if maniPath != "" {
		mani, err = manifest.Load(maniPath)
		if err != nil {
			return nil, err
		}
	} else {
		mani = manifest.Default(root)
	}
	entry := filepath.Join(root, filepath.FromSlash(mani.Entry))
	if _, err := os.Stat(entry); err != nil {
		return nil, fmt.Errorf("missing %s in %s", mani.Entry, root)
	}
	return &Target{Root: root, Manifest: mani, EntryPath: entry, DisplayName: filepath.ToSlash(mani.Entry)}, nil
}

// ReadSource loads the target's entry file.
func ReadSource(t *Target) (*source.File, error) {
	b, err := os.ReadFile(t.EntryPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", t.EntryPath, err)
	}
	return source.NewFile(t.DisplayName, string(b)), nil
}

// Build scans, parses and type-checks file.
func Build(file *source.File) (*BuildResult, *diag.Diagnostic) {
	prog, d := parser.Parse(file)
	if d != nil {
		return nil, d
	}
	checked, d := typecheck.Check(prog)
	if d != nil {
		return nil, d
	}
	return &BuildResult{Program: checked}, nil
}

// Run builds file and evaluates it. Evaluation never starts on a program
// that failed to build.
func Run(file *source.File) (*BuildResult, *diag.Diagnostic) {
	res, d := Build(file)
	if d != nil {
		return nil, d
	}
	v, ok, d := interp.Run(res.Program)
	if d != nil {
		return nil, d
	}
	res.Value, res.HasValue = v, ok
	return res, nil
}

// RunSource runs in-memory source text.
func RunSource(name, text string) (*BuildResult, *diag.Diagnostic) {
	return Run(source.NewFile(name, text))
}

func findPackageRoot(abs string) (root string, manifestPath string) {
	cur := abs
	for {
		mp := filepath.Join(cur, manifest.FileName)
		if _, err := os.Stat(mp); err == nil {
			return cur, mp
		}
		// fallback: directory with src/main.axi
		if _, err := os.Stat(filepath.Join(cur, filepath.FromSlash(manifest.DefaultEntry))); err == nil {
			return cur, ""
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			break
		}
		cur = parent
	}
	return abs, ""
}
