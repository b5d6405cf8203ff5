package entity

import (
	gomath "math"
	"math/rand/v2"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/Faultbox/snowmen/internal/engine/terrain"
	"github.com/Faultbox/snowmen/pkg/math"
)

type zeroRand struct{}

func (zeroRand) Float64() float64 { return 0 }

func ring(n int, radius float32) []math.Vec3 {
	out := make([]math.Vec3, n)
	for i := range out {
		out[i] = math.Polar(float64(radius), math.Tau*float64(i)/float64(n))
	}
	return out
}

func TestSnowmanUpdate(t *testing.T) {
	Convey("Given a snowman with no offsets and three minor loops", t, func() {
		s := Snowman{MinorLoopCount: 3}

		Convey("At phase zero it stands on the +Z axis, upright", func() {
			s.Update(0)
			So(s.Pose.Position.X, ShouldAlmostEqual, 0, 1e-5)
			So(s.Pose.Position.Y, ShouldAlmostEqual, 10, 1e-5)
			So(s.Pose.Tilt, ShouldAlmostEqual, 0, 1e-9)
			So(s.Pose.Heading, ShouldAlmostEqual, 60, 1e-9)
		})

		Convey("Its radius stays within the travel band", func() {
			for i := 0; i < 200; i++ {
				s.Update(float64(i) * 0.05)
				r := float64(s.Pose.Position.Length())
				So(r, ShouldBeBetweenOrEqual, TravelRadius-TravelVariation-1e-4, TravelRadius+TravelVariation+1e-4)
				So(gomath.Abs(s.Pose.Tilt), ShouldBeLessThanOrEqualTo, gomath.Abs(TiltFactor)+1e-9)
			}
		})

		Convey("The pose depends only on the phase", func() {
			s.Update(1.3)
			first := s.Pose
			s.Update(4.2)
			s.Update(1.3)
			So(s.Pose, ShouldResemble, first)
		})
	})
}

func TestNewSnowmen(t *testing.T) {
	Convey("Given nine snowmen from a seeded source", t, func() {
		snowmen, err := NewSnowmen(9, rand.New(rand.NewPCG(1, 2)))
		So(err, ShouldBeNil)
		So(snowmen, ShouldHaveLength, 9)

		Convey("Phase offsets are evenly spaced", func() {
			for i, s := range snowmen {
				So(s.PhaseOffset, ShouldAlmostEqual, math.Tau*float64(i)/9, 1e-12)
			}
		})

		Convey("Each one wears a different hat", func() {
			for i, s := range snowmen {
				So(s.HatColor, ShouldEqual, HatColors[i])
			}
		})

		Convey("Random parameters fall in their ranges", func() {
			for _, s := range snowmen {
				So(s.MinorLoopCount, ShouldBeBetweenOrEqual, 3, 4)
				So(s.MinorPhaseOffset, ShouldBeBetweenOrEqual, 0, math.Tau)
				So(s.BaseRotation, ShouldBeBetweenOrEqual, 0, 360)
			}
		})

		Convey("The same seed gives the same snowmen", func() {
			again, err := NewSnowmen(9, rand.New(rand.NewPCG(1, 2)))
			So(err, ShouldBeNil)
			So(again, ShouldResemble, snowmen)
		})
	})

	Convey("Hat colors cycle past the palette", t, func() {
		snowmen, err := NewSnowmen(len(HatColors)+2, zeroRand{})
		So(err, ShouldBeNil)
		So(snowmen[len(HatColors)].HatColor, ShouldEqual, HatColors[0])
		So(snowmen[len(HatColors)+1].HatColor, ShouldEqual, HatColors[1])
	})

	Convey("Zero snowmen is rejected", t, func() {
		_, err := NewSnowmen(0, zeroRand{})
		So(err, ShouldNotBeNil)
	})
}

func TestPlaceTrees(t *testing.T) {
	Convey("Given a circular pond boundary", t, func() {
		boundary := ring(160, 40)

		trees, err := PlaceTrees(boundary, zeroRand{})
		So(err, ShouldBeNil)

		Convey("The grouping rule plants the fixed number of trees", func() {
			So(trees, ShouldHaveLength, TreeCount)
		})

		Convey("Trees stand on the shore outside the pond", func() {
			for _, tr := range trees {
				So(tr.Location.Y, ShouldEqual, float32(terrain.ShoreHeight))
				So(tr.Location.XZ().Length(), ShouldBeGreaterThan, float32(40))
			}
		})

		Convey("The first anchor sits on the +Z axis between the pond and the hills", func() {
			So(trees[0].Location.X, ShouldAlmostEqual, 0, 1e-4)
			So(trees[0].Location.Z, ShouldAlmostEqual, 40*0.85+150*0.15, 1e-3)
			So(trees[0].Height, ShouldEqual, float32(8))
			So(trees[0].SkirtRadius, ShouldEqual, float32(3))
		})

		Convey("Group one has an anchor, a near tree and a far tree", func() {
			So(trees[1].Height, ShouldEqual, float32(8))
			So(trees[2].Height, ShouldEqual, float32(12))
			So(trees[3].Height, ShouldEqual, float32(14))
		})
	})

	Convey("A boundary shorter than the group count is rejected", t, func() {
		_, err := PlaceTrees(ring(5, 10), zeroRand{})
		So(err, ShouldNotBeNil)
	})
}

func TestRegistry(t *testing.T) {
	Convey("Given a registry", t, func() {
		reg, err := NewRegistry(4, ring(48, 30), rand.New(rand.NewPCG(7, 7)))
		So(err, ShouldBeNil)
		So(reg.Snowmen, ShouldHaveLength, 4)
		So(reg.Trees, ShouldHaveLength, TreeCount)
		So(reg.String(), ShouldEqual, "4 snowmen, 27 trees")

		Convey("Update moves every snowman", func() {
			before := reg.Snowmen[2].Pose
			reg.Update(0.5)
			So(reg.Snowmen[2].Pose, ShouldNotResemble, before)
		})
	})
}
