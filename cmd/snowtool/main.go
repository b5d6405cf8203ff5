// snowtool is a CLI utility for inspecting the generated winter scene
// without opening a window.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/Faultbox/snowmen/internal/config"
	"github.com/Faultbox/snowmen/internal/engine/drawlist"
	"github.com/Faultbox/snowmen/internal/engine/mesh"
	"github.com/Faultbox/snowmen/internal/engine/texture"
	"github.com/Faultbox/snowmen/internal/game/world"
)

func main() {
	if len(os.Args) < 2 {
		printUsage(os.Stderr)
		os.Exit(1)
	}

	if err := run(os.Args[1], os.Args[2:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(command string, args []string, out io.Writer) error {
	switch command {
	case "stats":
		return cmdStats(args, out)
	case "obj":
		return cmdOBJ(args, out)
	case "trace":
		return cmdTrace(args, out)
	case "textures", "tex":
		return cmdTextures(args, out)
	case "help", "-h", "--help":
		printUsage(out)
		return nil
	default:
		printUsage(os.Stderr)
		return fmt.Errorf("unknown command: %s", command)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `snowtool - winter scene inspection utility

Usage:
  snowtool <command> [options]

Commands:
  stats [-seed N]                    Show mesh and actor counts
  obj [-seed N] [-o file.obj]        Export every mesh as Wavefront OBJ
  trace [-seed N] [-frames N]        Print the draw commands of one frame
  textures [-size N] <dir>           Write the painted textures as PNG

Examples:
  snowtool stats -seed 7
  snowtool obj -o scene.obj
  snowtool trace -frames 100 | grep shadow
  snowtool textures -size 512 ./textures`)
}

// sceneFlags registers the flags shared by commands that build a scene.
func sceneFlags(fs *flag.FlagSet) *config.SceneConfig {
	cfg := config.Default().Scene
	fs.Uint64Var(&cfg.Seed, "seed", 1, "Random seed for the scene layout")
	fs.IntVar(&cfg.Snowmen, "snowmen", cfg.Snowmen, "Number of snowmen")
	fs.IntVar(&cfg.SnowballDepth, "depth", cfg.SnowballDepth, "Snowball subdivision depth")
	return &cfg
}

func buildWorld(cfg *config.SceneConfig) (*world.World, error) {
	full := config.Default()
	full.Scene = *cfg
	if err := full.Validate(); err != nil {
		return nil, err
	}
	return world.New(*cfg)
}

func cmdStats(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("stats", flag.ContinueOnError)
	cfg := sceneFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	w, err := buildWorld(cfg)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Seed:    %d\n", w.Seed)
	fmt.Fprintf(out, "Actors:  %s\n", w.Actors)
	fmt.Fprintln(out)

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "MESH\tVERTICES\tTRIANGLES\tOUTLINE\tRANGES")
	var verts, tris int
	for _, m := range w.Meshes() {
		names := make([]string, len(m.Ranges))
		for i, r := range m.Ranges {
			names[i] = r.Name
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%v\t%s\n",
			m.Name, m.VertexCount(), m.TriangleCount(), m.OutlineVertices != nil, strings.Join(names, ","))
		verts += m.VertexCount()
		tris += m.TriangleCount()
	}
	fmt.Fprintf(tw, "total\t%d\t%d\t\t\n", verts, tris)
	return tw.Flush()
}

func cmdOBJ(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("obj", flag.ContinueOnError)
	cfg := sceneFlags(fs)
	output := fs.String("o", "", "Output file (default stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	w, err := buildWorld(cfg)
	if err != nil {
		return err
	}

	if *output == "" {
		return mesh.WriteOBJ(out, w.Meshes()...)
	}
	f, err := os.Create(*output)
	if err != nil {
		return err
	}
	if err := mesh.WriteOBJ(f, w.Meshes()...); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(out, "Wrote %d meshes to %s\n", len(w.Meshes()), *output)
	return nil
}

func cmdTrace(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("trace", flag.ContinueOnError)
	cfg := sceneFlags(fs)
	frames := fs.Int("frames", 0, "Frames to advance before tracing")
	aspect := fs.Float64("aspect", 16.0/9, "Viewport aspect ratio")
	if err := fs.Parse(args); err != nil {
		return err
	}

	w, err := buildWorld(cfg)
	if err != nil {
		return err
	}
	tex, err := texture.Paint(16, cfg.TreeSkirtVertices)
	if err != nil {
		return err
	}
	rec := drawlist.NewRecorder()
	if err := w.Upload(rec, tex); err != nil {
		return err
	}
	defer w.Close(rec)

	for i := 0; i < *frames; i++ {
		w.Update()
	}
	w.Render(rec, float32(*aspect))
	return rec.WriteTrace(out)
}

func cmdTextures(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("textures", flag.ContinueOnError)
	size := fs.Int("size", config.Default().Textures.Size, "Texture edge length in pixels")
	edges := fs.Int("edges", config.Default().Scene.TreeSkirtVertices, "Ink edges on the tree texture")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("usage: snowtool textures [-size N] <dir>")
	}
	dir := fs.Arg(0)

	tex, err := texture.Paint(*size, *edges)
	if err != nil {
		return err
	}
	if err := texture.SaveDir(dir, tex); err != nil {
		return err
	}
	for _, n := range tex.Sorted() {
		fmt.Fprintf(out, "  %s\n", filepath.Join(dir, string(n)+".png"))
	}
	return nil
}
