package manifest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadBasic(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, FileName)
	if err := os.WriteFile(p, []byte(`
package:
  name: clock
  version: 0.1.0
entry: src/app.axi
`), 0o644); err != nil {
		t.Fatal(err)
	}
	m, err := Load(p)
	if err != nil {
		t.Fatal(err)
	}
	if m.Package.Name != "clock" || m.Package.Version != "0.1.0" {
		t.Fatalf("package: %+v", m.Package)
	}
	if m.Entry != "src/app.axi" {
		t.Fatalf("entry: %q", m.Entry)
	}
	if m.Root() != dir {
		t.Fatalf("root: %q, want %q", m.Root(), dir)
	}
}

func TestLoadDefaults(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "demo")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	p := filepath.Join(dir, FileName)
	if err := os.WriteFile(p, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	m, err := Load(p)
	if err != nil {
		t.Fatal(err)
	}
	if m.Package.Name != "demo" {
		t.Fatalf("name: %q", m.Package.Name)
	}
	if m.Entry != DefaultEntry {
		t.Fatalf("entry: %q", m.Entry)
	}
}

func TestLoadRejects(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{name: "unknown_field", body: "package:\n  name: x\nbogus: 1\n", want: "bogus"},
		{name: "bad_entry_ext", body: "entry: src/main.txt\n", want: "must use the .axi extension"},
		{name: "malformed", body: "package: [\n", want: "manifest: parse"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := filepath.Join(t.TempDir(), FileName)
			if err := os.WriteFile(p, []byte(tc.body), 0o644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(p)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestWriteRoundTrip(t *testing.T) {
	p := filepath.Join(t.TempDir(), FileName)
	in := &Manifest{Package: Package{Name: "rt", Version: "1.2.3"}, Entry: "src/lib.axi"}
	if err := Write(in, p); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "package:\n  name: rt\n") {
		t.Fatalf("expected two-space indentation, got:\n%s", b)
	}
	out, err := Load(p)
	if err != nil {
		t.Fatal(err)
	}
	if out.Package != in.Package || out.Entry != in.Entry {
		t.Fatalf("round trip: got %+v, want %+v", out, in)
	}
}

func TestWriteRequiresPath(t *testing.T) {
	if err := Write(&Manifest{}, ""); err == nil {
		t.Fatalf("expected error for missing path")
	}
}
