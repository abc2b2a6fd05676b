package assets

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestLoadAllRunsTasksConcurrently(t *testing.T) {
	// Every task must be outstanding at the same time: each one blocks until
	// all four have started, so sequential execution would deadlock. The
	// timeout turns that deadlock into a failure instead of a hang.
	const n = 4
	var mu sync.Mutex
	started := 0
	allStarted := make(chan struct{})

	task := func(context.Context) error {
		mu.Lock()
		started++
		if started == n {
			close(allStarted)
		}
		mu.Unlock()

		select {
		case <-allStarted:
			return nil
		case <-time.After(2 * time.Second):
			return errors.New("tasks did not overlap")
		}
	}

	tasks := make([]func(context.Context) error, n)
	for i := range tasks {
		tasks[i] = task
	}

	if err := loadAll(context.Background(), tasks...); err != nil {
		t.Fatalf("Expected concurrent start, got %v", err)
	}
}

func TestLoadAllPropagatesFirstError(t *testing.T) {
	boom := errors.New("decode failed")

	canceled := false
	err := loadAll(context.Background(),
		func(context.Context) error { return boom },
		func(ctx context.Context) error {
			// Sibling should observe cancellation rather than run forever
			select {
			case <-ctx.Done():
				canceled = true
				return ctx.Err()
			case <-time.After(2 * time.Second):
				return nil
			}
		},
	)

	if !errors.Is(err, boom) {
		t.Fatalf("Expected %v, got %v", boom, err)
	}
	if !canceled {
		t.Errorf("Expected sibling task to observe cancellation")
	}
}

func TestLoadAllHonorsCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ran := false
	err := loadAll(ctx, func(context.Context) error {
		ran = true
		return nil
	})

	if err == nil {
		t.Fatalf("Expected context error, got nil")
	}
	if ran {
		t.Errorf("Expected task skipped under dead context")
	}
}

func TestLoadBundleReportsMissingAssets(t *testing.T) {
	_, err := LoadBundle(context.Background(), t.TempDir())
	if err == nil {
		t.Fatalf("Expected error for empty asset dir")
	}
	if !strings.Contains(err.Error(), "load assets") {
		t.Errorf("Expected wrapped load error, got %v", err)
	}
}

func TestMeshDataVertexCount(t *testing.T) {
	m := &MeshData{Vertices: make([]float32, 8*12)}
	if got := m.VertexCount(); got != 12 {
		t.Errorf("Expected 12 vertices, got %d", got)
	}
}
