package entity

import (
	"testing"

	"github.com/milk9111/noria/ecs"
	"github.com/milk9111/noria/ecs/component"
	"github.com/milk9111/noria/ecs/system"
	"github.com/milk9111/noria/prefabs"
	. "github.com/smartystreets/goconvey/convey"
)

func TestBuildScene(t *testing.T) {
	Convey("Given the feria scene", t, func() {
		spec, err := prefabs.LoadScene("feria")
		So(err, ShouldBeNil)
		w := ecs.NewWorld()

		Convey("Building it creates every entity and the camera", func() {
			built, err := BuildScene(w, spec, system.NewOrbitScripts())
			So(err, ShouldBeNil)
			So(len(built.Order), ShouldEqual, len(spec.Entities))
			So(len(ecs.Entities(w)), ShouldEqual, len(spec.Entities)+1)

			rig, ok := ecs.Get(w, built.Camera, component.CameraRigComponent.Kind())
			So(ok, ShouldBeTrue)
			So(rig.Mode, ShouldEqual, component.CameraBoot1)

			e, ok := system.FindEntity(w, "Gallina")
			So(ok, ShouldBeTrue)
			So(e, ShouldEqual, built.Entities["Gallina"])
		})

		Convey("A failing entity leaves the world empty", func() {
			spec.Entities = append(spec.Entities, prefabs.EntitySpec{Name: "Roto", Kind: "dragon"})
			built, err := BuildScene(w, spec, system.NewOrbitScripts())
			So(err, ShouldNotBeNil)
			So(built, ShouldBeNil)
			So(ecs.Entities(w), ShouldBeEmpty)
		})

		Convey("A rig pointing outside the scene is rejected", func() {
			spec.Camera.FocusB = "Nadie"
			_, err := BuildScene(w, spec, system.NewOrbitScripts())
			So(err, ShouldWrap, prefabs.ErrInvalidScene)
			So(ecs.Entities(w), ShouldBeEmpty)
		})
	})
}
