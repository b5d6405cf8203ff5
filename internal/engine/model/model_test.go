package model

import (
	"testing"

	"github.com/Faultbox/snowmen/internal/engine/mesh"
)

type fixedRand float64

func (f fixedRand) Float64() float64 { return float64(f) }

func TestSnowballVertexCount(t *testing.T) {
	tests := []struct {
		depth int
		want  int
	}{
		{0, 12},
		{1, 48},
		{2, 192},
		{3, 768},
		{4, 3072},
	}

	for _, tt := range tests {
		b, err := BuildSnowball(tt.depth)
		if err != nil {
			t.Fatalf("BuildSnowball(%d) failed: %v", tt.depth, err)
		}
		if got := b.VertexCount(); got != tt.want {
			t.Errorf("depth %d: vertex count = %d, want %d", tt.depth, got, tt.want)
		}
		if got := SnowballVertexCount(tt.depth); got != tt.want {
			t.Errorf("SnowballVertexCount(%d) = %d, want %d", tt.depth, got, tt.want)
		}
	}
}

func TestSnowballOnUnitSphere(t *testing.T) {
	b, err := BuildSnowball(DefaultSnowballDepth)
	if err != nil {
		t.Fatalf("BuildSnowball failed: %v", err)
	}
	for i, v := range b.Vertices {
		if l := v.Length(); l < 0.9999 || l > 1.0001 {
			t.Fatalf("vertex %d at distance %v from center", i, l)
		}
	}
	for i, tc := range b.TexCoords {
		if tc.X < 0 || tc.X > 1 || tc.Y < 0 || tc.Y > 1 {
			t.Fatalf("texcoord %d = %v outside [0,1]²", i, tc)
		}
	}
	if err := b.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestSnowballSeedOrder(t *testing.T) {
	b, err := BuildSnowball(0)
	if err != nil {
		t.Fatalf("BuildSnowball failed: %v", err)
	}
	// The face triangle comes first, the bottom second.
	if b.Vertices[0] != snowballSeeds[0] || b.Vertices[3] != snowballSeeds[3] {
		t.Errorf("unexpected seed order: %v", b.Vertices[:6])
	}
	if b.TexCoords[4] != snowballTexSeeds[3] {
		t.Errorf("bottom triangle texcoord = %v, want %v", b.TexCoords[4], snowballTexSeeds[3])
	}
}

func TestSnowballNegativeDepth(t *testing.T) {
	if _, err := BuildSnowball(-1); err == nil {
		t.Error("expected error for negative depth")
	}
}

func TestBuildTree(t *testing.T) {
	p := DefaultTreeParams()
	b, err := BuildTree(p, fixedRand(0.25))
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}

	fan := p.SkirtVertices + 2
	want := p.Skirts*fan + 2*p.TrunkSlices + 2
	if got := b.VertexCount(); got != want {
		t.Errorf("vertex count = %d, want %d", got, want)
	}
	if err := b.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
	if len(b.OutlineVertices) != len(b.Vertices) || len(b.TexCoords) != len(b.Vertices) {
		t.Error("outline and texcoords must run parallel to vertices")
	}

	for j := 0; j < p.Skirts; j++ {
		r := b.MustRange(SkirtRangeName(j))
		first, last := b.Vertices[r.Offset+1], b.Vertices[r.Offset+r.Count-1]
		if first != last {
			t.Errorf("skirt %d does not close: %v vs %v", j, first, last)
		}
		// Tips climb with every skirt.
		if j > 0 && b.Vertices[r.Offset].Y <= b.Vertices[r.Offset-fan].Y {
			t.Errorf("skirt %d tip is not above skirt %d", j, j-1)
		}
	}

	trunk := b.MustRange("trunk")
	if trunk.Primitive != mesh.TriangleStrip || trunk.Count != 2*p.TrunkSlices+2 {
		t.Errorf("trunk range = %+v", trunk)
	}
	low := b.Vertices[trunk.Offset]
	if o := b.OutlineVertices[trunk.Offset]; o.X != low.X*1.3 {
		t.Errorf("trunk outline x = %v, want %v", o.X, low.X*1.3)
	}
}

func TestBuildTreeDeterministic(t *testing.T) {
	a, _ := BuildTree(DefaultTreeParams(), fixedRand(0.5))
	b, _ := BuildTree(DefaultTreeParams(), fixedRand(0.5))
	for i := range a.Vertices {
		if a.Vertices[i] != b.Vertices[i] {
			t.Fatalf("vertex %d differs for the same random source", i)
		}
	}
}

func TestBuildTreeInvalid(t *testing.T) {
	p := DefaultTreeParams()
	p.SkirtVertices = 2
	if _, err := BuildTree(p, fixedRand(0)); err == nil {
		t.Error("expected error for two skirt vertices")
	}
}

func TestBuildHat(t *testing.T) {
	b, err := BuildHat(DefaultHatSlices)
	if err != nil {
		t.Fatalf("BuildHat failed: %v", err)
	}
	if got := b.VertexCount(); got != 4*DefaultHatSlices {
		t.Errorf("vertex count = %d, want %d", got, 4*DefaultHatSlices)
	}
	if got := len(b.Indices); got != 7*DefaultHatSlices+4 {
		t.Errorf("index count = %d, want %d", got, 7*DefaultHatSlices+4)
	}
	if err := b.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
	for _, name := range HatRanges {
		if _, ok := b.Range(name); !ok {
			t.Errorf("missing range %s", name)
		}
	}

	side := b.MustRange(HatBrimSide)
	if side.Count != 2*DefaultHatSlices+2 {
		t.Errorf("brim side count = %d, want %d", side.Count, 2*DefaultHatSlices+2)
	}
	if _, err := BuildHat(2); err == nil {
		t.Error("expected error for two slices")
	}
}

func TestFixedMeshes(t *testing.T) {
	tests := []struct {
		name     string
		build    func() *mesh.Buffer
		vertices int
		indices  int
		outlined bool
	}{
		{"arm", BuildArm, 48, 102, true},
		{"skate", BuildSkate, 26, 54, false},
		{"carrot", BuildCarrot, 17, 36, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.build()
			if got := b.VertexCount(); got != tt.vertices {
				t.Errorf("vertex count = %d, want %d", got, tt.vertices)
			}
			if got := len(b.Indices); got != tt.indices {
				t.Errorf("index count = %d, want %d", got, tt.indices)
			}
			if got := b.OutlineVertices != nil; got != tt.outlined {
				t.Errorf("has outline = %v, want %v", got, tt.outlined)
			}
			if err := b.Validate(); err != nil {
				t.Errorf("Validate() = %v", err)
			}
			if b.TriangleCount() == 0 {
				t.Error("mesh produces no triangles")
			}
		})
	}
}

func TestArmRanges(t *testing.T) {
	b := BuildArm()
	limb := b.MustRange(ArmLimb)
	shoulder := b.MustRange(ArmShoulderCap)
	if limb.Count+shoulder.Count != len(b.Indices) {
		t.Errorf("limb and cap should cover all %d indices", len(b.Indices))
	}
	for i, name := range ArmFingers {
		r := b.MustRange(name)
		if r.Source != mesh.Arrays || r.Offset != 24+8*i || r.Count != 8 {
			t.Errorf("%s = %+v", name, r)
		}
	}
}
