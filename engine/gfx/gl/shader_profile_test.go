//go:build profile

package glbackend

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/hubastard/lighting/engine/profiler"
)

func TestBuildRecordsScopes(t *testing.T) {
	profiler.Init(256)
	dir := t.TempDir()
	p, err := NewProgram(newFakeDriver(),
		writeShader(t, dir, "pass.vert", passVS),
		writeShader(t, dir, "solid.frag", solidFS))
	if err != nil {
		t.Fatal(err)
	}
	p.Delete()

	path := filepath.Join(dir, "trace.json")
	if err := profiler.Dump(path); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"Program.New", "Program.read", "Program.compile", "Program.link"} {
		if !bytes.Contains(b, []byte(`"`+name+`"`)) {
			t.Errorf("trace has no %s scope", name)
		}
	}
}
