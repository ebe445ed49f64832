package registry

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileYieldsEmpty(t *testing.T) {
	reg, err := Load(filepath.Join(t.TempDir(), "projects.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if reg.Version != 1 || len(reg.Projects) != 0 {
		t.Errorf("reg = %+v, want empty v1 registry", reg)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "projects.json")
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	reg := &Registry{Version: 1}
	if !reg.Add("/home/dev/proj", "AGENTS.md", now) {
		t.Fatal("Add returned false for a new root")
	}

	if err := Save(path, reg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded.Projects) != 1 {
		t.Fatalf("Projects = %+v", loaded.Projects)
	}
	p := loaded.Projects[0]
	if p.Root != "/home/dev/proj" || p.Canonical != "AGENTS.md" || !p.RegisteredAt.Equal(now) {
		t.Errorf("project = %+v", p)
	}
}

func TestAddDuplicate(t *testing.T) {
	reg := &Registry{Version: 1}
	now := time.Now()

	reg.Add("/proj", "", now)
	if reg.Add("/proj", "", now) {
		t.Error("duplicate Add should return false")
	}
	if len(reg.Projects) != 1 {
		t.Errorf("Projects = %+v", reg.Projects)
	}
}

func TestRemove(t *testing.T) {
	reg := &Registry{Version: 1}
	reg.Add("/a", "", time.Now())
	reg.Add("/b", "", time.Now())

	if !reg.Remove("/a") {
		t.Error("Remove returned false for a registered root")
	}
	if reg.Remove("/a") {
		t.Error("Remove returned true for an absent root")
	}
	if len(reg.Projects) != 1 || reg.Projects[0].Root != "/b" {
		t.Errorf("Projects = %+v", reg.Projects)
	}
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for corrupt registry")
	}
}
