package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadMergedProfileOverridesDefault(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "default.yaml"), `
version: "1"
generator:
  algo: xorshift
  seed: 7
server:
  addr: ":8080"
`)
	writeFile(t, filepath.Join(dir, "profiles", "bbs.yaml"), `
generator:
  algo: bbs
  bbs_modulus: 253
`)

	l := NewLoader(dir)
	raw, err := l.LoadMerged("bbs")
	if err != nil {
		t.Fatal(err)
	}
	if raw.Generator.Algo != "bbs" {
		t.Fatalf("algo not overridden: %q", raw.Generator.Algo)
	}
	if raw.Generator.Seed == nil || *raw.Generator.Seed != 7 {
		t.Fatalf("default seed lost in merge: %+v", raw.Generator.Seed)
	}
	if raw.Generator.BBSModulus == nil || *raw.Generator.BBSModulus != 253 {
		t.Fatalf("profile bbs_modulus lost: %+v", raw.Generator.BBSModulus)
	}
	if raw.Server == nil || raw.Server.Addr == nil || *raw.Server.Addr != ":8080" {
		t.Fatalf("default server addr lost: %+v", raw.Server)
	}
}

func TestLoadMergedMissingProfileFallsBack(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "default.yaml"), `
generator:
  algo: lcg32
`)
	l := NewLoader(dir)
	raw, err := l.LoadMerged("nope")
	if err != nil {
		t.Fatal(err)
	}
	if raw.Generator.Algo != "lcg32" {
		t.Fatalf("expected default algo, got %q", raw.Generator.Algo)
	}
}

func TestCacheAndInvalidate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "default.yaml")
	writeFile(t, path, "generator:\n  algo: xorshift\n")

	l := NewLoader(dir)
	if _, err := l.LoadMerged(""); err != nil {
		t.Fatal(err)
	}

	// cached result survives a file rewrite until Invalidate
	writeFile(t, path, "generator:\n  algo: bbs\n")
	raw, err := l.LoadMerged("")
	if err != nil {
		t.Fatal(err)
	}
	if raw.Generator.Algo != "xorshift" {
		t.Fatalf("expected cached config, got %q", raw.Generator.Algo)
	}

	l.Invalidate()
	raw, err = l.LoadMerged("")
	if err != nil {
		t.Fatal(err)
	}
	if raw.Generator.Algo != "bbs" {
		t.Fatalf("expected reloaded config, got %q", raw.Generator.Algo)
	}
}

func TestNormalizeDefaultsAndValidation(t *testing.T) {
	p, err := Normalize(RawConfig{})
	if err != nil {
		t.Fatal(err)
	}
	if p.Algo != AlgoXorShift || p.Seed != 1 || p.Addr != ":8080" {
		t.Fatalf("unexpected defaults: %+v", p)
	}

	if _, err := Normalize(RawConfig{Generator: GeneratorCfg{Algo: "mersenne"}}); !errors.Is(err, ErrUnknownAlgo) {
		t.Fatalf("unknown algo must be rejected, got %v", err)
	}
}

func TestBuildProducesWorkingGenerators(t *testing.T) {
	for _, algo := range []string{AlgoXorShift, AlgoLCG32, AlgoBBS} {
		g, err := Build(Params{Algo: algo, Seed: 5})
		if err != nil {
			t.Fatalf("%s: %v", algo, err)
		}
		u := g.NextUnit()
		if u < 0 || u >= 1 {
			t.Fatalf("%s: unit draw out of range: %v", algo, u)
		}
	}
}
