// Package world builds the winter scene and turns it into draw commands
// each frame.
package world

import (
	"fmt"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/snowmen/internal/config"
	"github.com/Faultbox/snowmen/internal/engine/camera"
	"github.com/Faultbox/snowmen/internal/engine/drawlist"
	"github.com/Faultbox/snowmen/internal/engine/mesh"
	"github.com/Faultbox/snowmen/internal/engine/model"
	"github.com/Faultbox/snowmen/internal/engine/shadow"
	"github.com/Faultbox/snowmen/internal/engine/terrain"
	"github.com/Faultbox/snowmen/internal/engine/texture"
	"github.com/Faultbox/snowmen/internal/engine/water"
	"github.com/Faultbox/snowmen/internal/game/entity"
	"github.com/Faultbox/snowmen/internal/logger"
	"github.com/Faultbox/snowmen/pkg/math"
)

// World is the whole scene: meshes, actors, camera and the GPU handles the
// meshes were uploaded to.
type World struct {
	cfg  config.SceneConfig
	log  *zap.Logger
	Seed uint64

	Pond     *water.Pond
	shore    *mesh.Buffer
	hills    *mesh.Buffer
	snowball *mesh.Buffer
	tree     *mesh.Buffer
	hat      *mesh.Buffer
	arm      *mesh.Buffer
	skate    *mesh.Buffer
	carrot   *mesh.Buffer

	Actors    *entity.Registry
	Camera    *camera.AutoOrbit
	Projector shadow.Projector

	// Phase drives every snowman. It advances each frame and wraps at one
	// turn.
	Phase float64

	handles  map[string]drawlist.MeshHandles
	textures map[texture.Name]drawlist.Handle
}

// New generates the scene. A zero seed is replaced by one derived from the
// clock; the seed used is kept in World.Seed.
func New(cfg config.SceneConfig) (*World, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	w := &World{
		cfg:       cfg,
		log:       logger.Named("world"),
		Seed:      seed,
		Camera:    camera.NewAutoOrbit(),
		Projector: shadow.NewProjector(shadow.Light, terrain.ShoreHeight),
	}
	rng := rand.New(rand.NewPCG(seed, seed>>1|1))

	var err error
	pond := water.DefaultPondParams()
	pond.Resolution = cfg.PondResolution
	if w.Pond, err = water.BuildPond(pond); err != nil {
		return nil, fmt.Errorf("building pond: %w", err)
	}
	boundary := w.Pond.Boundary()
	if w.shore, err = terrain.BuildShore(boundary, terrain.DefaultShoreParams()); err != nil {
		return nil, fmt.Errorf("building shore: %w", err)
	}
	if w.hills, err = terrain.BuildHills(boundary, terrain.DefaultHillsParams()); err != nil {
		return nil, fmt.Errorf("building hills: %w", err)
	}
	if w.snowball, err = model.BuildSnowball(cfg.SnowballDepth); err != nil {
		return nil, fmt.Errorf("building snowball: %w", err)
	}

	tree := model.DefaultTreeParams()
	tree.Skirts = cfg.TreeSkirts
	tree.SkirtVertices = cfg.TreeSkirtVertices
	tree.TrunkSlices = cfg.TreeTrunkSlices
	if w.tree, err = model.BuildTree(tree, rng); err != nil {
		return nil, fmt.Errorf("building tree: %w", err)
	}
	if w.hat, err = model.BuildHat(cfg.HatSlices); err != nil {
		return nil, fmt.Errorf("building hat: %w", err)
	}
	w.arm = model.BuildArm()
	w.skate = model.BuildSkate()
	w.carrot = model.BuildCarrot()

	if w.Actors, err = entity.NewRegistry(cfg.Snowmen, boundary, rng); err != nil {
		return nil, fmt.Errorf("creating actors: %w", err)
	}
	w.Actors.Update(w.Phase)

	w.log.Info("scene generated",
		zap.Uint64("seed", seed),
		zap.Int("snowmen", len(w.Actors.Snowmen)),
		zap.Int("trees", len(w.Actors.Trees)))
	return w, nil
}

// Meshes returns every generated mesh in upload order.
func (w *World) Meshes() []*mesh.Buffer {
	return []*mesh.Buffer{
		w.Pond.Mesh, w.shore, w.hills, w.snowball, w.tree,
		w.hat, w.arm, w.skate, w.carrot,
	}
}

// Upload sends every mesh and texture to the GPU.
func (w *World) Upload(u drawlist.Uploader, tex texture.Set) error {
	if err := tex.Validate(); err != nil {
		return err
	}

	w.handles = make(map[string]drawlist.MeshHandles)
	for _, m := range w.Meshes() {
		h, err := drawlist.UploadMesh(u, m)
		if err != nil {
			return fmt.Errorf("uploading %s: %w", m.Name, err)
		}
		w.handles[m.Name] = h
	}

	w.textures = make(map[texture.Name]drawlist.Handle)
	for _, n := range texture.Names {
		h, err := u.CreateTexture(string(n), tex[n])
		if err != nil {
			return fmt.Errorf("creating texture %s: %w", n, err)
		}
		w.textures[n] = h
	}
	w.log.Debug("scene uploaded",
		zap.Int("meshes", len(w.handles)),
		zap.Int("textures", len(w.textures)))
	return nil
}

// Update advances the scene by one frame.
func (w *World) Update() {
	w.Phase = math.WrapPhase(w.Phase + entity.PhaseStep*w.cfg.Speed)
	w.Camera.Advance(w.cfg.Speed)
	w.Actors.Update(w.Phase)
}

// Close releases everything Upload created.
func (w *World) Close(r drawlist.Releaser) error {
	var handles []drawlist.Handle
	for _, h := range w.handles {
		handles = append(handles, h.All()...)
	}
	for _, h := range w.textures {
		handles = append(handles, h)
	}
	w.handles, w.textures = nil, nil
	if len(handles) == 0 {
		return nil
	}
	return r.Release(handles...)
}
