package main

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-scenes/internal/config"
	"github.com/vovakirdan/tui-scenes/internal/core"
	"github.com/vovakirdan/tui-scenes/internal/engine"
	"github.com/vovakirdan/tui-scenes/internal/registry"
	"github.com/vovakirdan/tui-scenes/internal/storage"
)

func TestAllScenesRegistered(t *testing.T) {
	var ids []string
	for _, s := range registry.List() {
		ids = append(ids, s.ID)
		if s.Title == "" {
			t.Errorf("Scene %s has no title", s.ID)
		}
	}

	want := []string{"fields", "mems", "orbit", "ufo", "vacuum", "xmas"}
	if !reflect.DeepEqual(ids, want) {
		t.Errorf("Registered scenes = %v, want %v", ids, want)
	}
}

func TestEverySceneBuildsAndRuns(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.Seed = 7

	for _, s := range registry.List() {
		t.Run(s.ID, func(t *testing.T) {
			sc, world, err := buildScene(s.ID, "", cfg)
			if err != nil {
				t.Fatalf("buildScene() failed: %v", err)
			}
			if sc.ID() != s.ID || world.Name != s.ID {
				t.Errorf("Built %s/%s, want %s", sc.ID(), world.Name, s.ID)
			}

			r := engine.NewRunner(world, nil)
			for i := 0; i < 100; i++ {
				r.Step()
			}
			if st := r.Stats(); st.Failures != 0 {
				t.Errorf("%d updates skipped in 100 ticks", st.Failures)
			}
		})
	}
}

func TestBuildSceneBadConfigPath(t *testing.T) {
	if _, _, err := buildScene("mems", "/nonexistent/mems.yaml", core.DefaultConfig()); err == nil {
		t.Error("Expected error for missing config file")
	}
}

func TestBuildSceneInvalidConfigValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vacuum.yaml")
	if err := os.WriteFile(path, []byte("particles:\n  count: -1\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, _, err := buildScene("vacuum", path, core.DefaultConfig())
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("buildScene() error = %v, want ErrInvalidConfig", err)
	}
}

func TestEndReason(t *testing.T) {
	tests := []struct {
		name  string
		ticks uint64
		limit uint64
		err   error
		want  string
	}{
		{"interrupted", 50, 0, nil, storage.EndQuit},
		{"limit reached", 100, 100, nil, storage.EndLimit},
		{"stopped early", 40, 100, nil, storage.EndQuit},
		{"sink failed", 100, 100, errors.New("broken pipe"), storage.EndError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := endReason(engine.Stats{Ticks: tt.ticks}, tt.limit, tt.err)
			if got != tt.want {
				t.Errorf("endReason() = %q, want %q", got, tt.want)
			}
		})
	}
}
