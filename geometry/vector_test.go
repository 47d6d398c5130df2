package geometry

import (
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestVector2(t *testing.T) {
	Convey("Given two vectors", t, func() {
		a := Vector2{X: 3, Y: 4}
		b := Vector2{X: 0, Y: 0}

		Convey("Magnitude is the Euclidean length", func() {
			So(a.Magnitude(), ShouldEqual, float32(5))
		})

		Convey("Distance matches Magnitude of the difference", func() {
			So(a.Distance(b), ShouldEqual, float32(5))
		})

		Convey("Angle of the +x axis is zero", func() {
			So(Vector2{X: 1, Y: 0}.Angle(), ShouldEqual, float32(0))
		})

		Convey("Angle of the +y axis is pi/2", func() {
			So(Vector2{X: 0, Y: 1}.Angle(), ShouldAlmostEqual, float32(math.Pi/2), 0.0001)
		})
	})
}

func TestRotation2(t *testing.T) {
	Convey("A zero rotation leaves a vector unchanged", t, func() {
		r := NewRotation2(0)
		v := Vector2{X: 1, Y: 0}
		rotated := r.Apply(v)
		So(rotated.X, ShouldAlmostEqual, 1, 0.0001)
		So(rotated.Y, ShouldAlmostEqual, 0, 0.0001)
	})

	Convey("A pi/2 rotation carries +x to +y", t, func() {
		r := NewRotation2(float32(math.Pi / 2))
		v := Vector2{X: 1, Y: 0}
		rotated := r.Apply(v)
		So(rotated.X, ShouldAlmostEqual, 0, 0.0001)
		So(rotated.Y, ShouldAlmostEqual, 1, 0.0001)
	})

	Convey("RotationBetween recovers the angle of a vector", t, func() {
		r := RotationBetween(Vector2{X: 0, Y: 1})
		So(r.Angle, ShouldAlmostEqual, float32(math.Pi/2), 0.0001)
	})
}

func TestAABB(t *testing.T) {
	Convey("Given a bounding box", t, func() {
		box := AABB{XMin: 0, XMax: 10, YMin: 0, YMax: 10}

		Convey("A point inside is contained", func() {
			So(box.Contains(Vector2{X: 5, Y: 5}), ShouldBeTrue)
		})

		Convey("A point outside is not contained", func() {
			So(box.Contains(Vector2{X: 11, Y: 5}), ShouldBeFalse)
		})

		Convey("Boundary points are contained (closed box)", func() {
			So(box.Contains(Vector2{X: 0, Y: 10}), ShouldBeTrue)
		})
	})
}
