package assets

import (
	"context"
	"fmt"
	"path/filepath"

	"golang.org/x/sync/errgroup"
)

// Default asset locations relative to the assets directory
const (
	EnvironmentFile = "env/studio.exr"
	WallFile        = "models/wall.gltf"
	CameraFile      = "models/camera.gltf"
	CursorFile      = "models/cursor.gltf"
)

// MeshData is decoded geometry ready for GPU upload: interleaved
// position(3) normal(3) uv(2) vertices plus a triangle index list.
type MeshData struct {
	Vertices []float32
	Indices  []uint32
}

// VertexCount returns the number of vertices in the interleaved buffer.
func (m *MeshData) VertexCount() int {
	return len(m.Vertices) / 8
}

// EnvironmentMap is a decoded equirectangular HDR image, RGB float32 rows
// top to bottom.
type EnvironmentMap struct {
	Width  int
	Height int
	Pixels []float32
}

// Bundle holds everything the scene needs before the first frame.
type Bundle struct {
	Env     *EnvironmentMap
	Wall    *MeshData
	CamBase *MeshData
	CamHead *MeshData
	Cursor  *MeshData
}

// LoadBundle decodes all assets concurrently and blocks until every load has
// finished. The four loads fan out together and join on one barrier; the
// first failure cancels the rest and is returned wrapped. There is no retry
// and no partial bundle.
//
// Only CPU-side decoding happens here. GL uploads stay on the main thread
// after LoadBundle returns.
func LoadBundle(ctx context.Context, dir string) (*Bundle, error) {
	b := &Bundle{}

	err := loadAll(ctx,
		func(context.Context) error {
			env, err := loadEnvironment(filepath.Join(dir, EnvironmentFile))
			if err != nil {
				return fmt.Errorf("environment map: %w", err)
			}
			b.Env = env
			return nil
		},
		func(context.Context) error {
			mesh, err := loadMesh(filepath.Join(dir, WallFile))
			if err != nil {
				return fmt.Errorf("wall mesh: %w", err)
			}
			b.Wall = mesh
			return nil
		},
		func(context.Context) error {
			base, head, err := loadCameraMeshes(filepath.Join(dir, CameraFile))
			if err != nil {
				return fmt.Errorf("camera meshes: %w", err)
			}
			b.CamBase, b.CamHead = base, head
			return nil
		},
		func(context.Context) error {
			mesh, err := loadMesh(filepath.Join(dir, CursorFile))
			if err != nil {
				return fmt.Errorf("cursor mesh: %w", err)
			}
			b.Cursor = mesh
			return nil
		},
	)
	if err != nil {
		return nil, fmt.Errorf("load assets: %w", err)
	}
	return b, nil
}

// loadAll starts every task at once and waits for all of them. The first
// error cancels the shared context and is the one returned.
func loadAll(ctx context.Context, tasks ...func(context.Context) error) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, task := range tasks {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return task(ctx)
		})
	}
	return g.Wait()
}
