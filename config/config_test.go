package config

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"flocksim/simulation"
)

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	Convey("Given a path that does not exist", t, func() {
		params, err := Load("/nonexistent/path/config.yaml")

		Convey("Load succeeds and returns the built-in defaults", func() {
			So(err, ShouldBeNil)
			So(params, ShouldResemble, simulation.DefaultParameters())
		})
	})
}

func TestApplyOverrides(t *testing.T) {
	Convey("Given partial overrides", t, func() {
		params := simulation.DefaultParameters()
		walkingSpeed := float32(0.5)

		applyOverrides(&params, fileParameters{WalkingSpeed: &walkingSpeed})

		Convey("Only the named field changes", func() {
			So(params.WalkingSpeed, ShouldEqual, float32(0.5))
			So(params.RunningSpeed, ShouldEqual, simulation.DefaultParameters().RunningSpeed)
		})
	})
}
