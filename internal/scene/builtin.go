package scene

import (
	"fmt"
	"sort"

	"mc-raytracer/internal/hittable"
	"mc-raytracer/internal/material"
	"mc-raytracer/internal/mathutil"
	"mc-raytracer/internal/texture"
)

// DefaultName is the scene rendered when none is configured.
const DefaultName = "default"

var builtins = map[string]func() *Scene{
	"default":   defaultScene,
	"materials": materialsScene,
	"checker":   checkerScene,
	"noise":     noiseScene,
	"lights":    lightsScene,
	"motion":    motionScene,
	"focus":     focusScene,
	"triangles": trianglesScene,
}

// Names lists the built-in scenes in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Builtin returns a freshly built copy of the named scene.
func Builtin(name string) (*Scene, error) {
	build, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("scene: unknown built-in %q (have %v)", name, Names())
	}
	s := build()
	s.Name = name
	return s, nil
}

func v3(x, y, z float64) mathutil.Vec3 { return mathutil.Vec3{x, y, z} }

// defaultScene is a small sphere resting on a huge one, both using the
// reference 50% hemisphere diffuse.
func defaultScene() *Scene {
	diffuse := material.NewHemisphere(nil)
	return &Scene{World: hittable.NewList(
		hittable.NewSphere(v3(0, -100.5, -1), 100, diffuse),
		hittable.NewSphere(v3(0, 0, -1), 0.5, diffuse),
	)}
}

func materialsScene() *Scene {
	ground := material.NewLambertian(v3(0.8, 0.8, 0.0))
	center := material.NewLambertian(v3(0.1, 0.2, 0.5))
	glass := material.NewDielectric(1.50)
	bubble := material.NewDielectric(1.00 / 1.50)
	gold := material.NewMetal(v3(0.8, 0.6, 0.2), 1.0)

	return &Scene{World: hittable.NewList(
		hittable.NewSphere(v3(0, -100.5, -1), 100, ground),
		hittable.NewSphere(v3(0, 0, -1.2), 0.5, center),
		hittable.NewSphere(v3(-1, 0, -1), 0.5, glass),
		hittable.NewSphere(v3(-1, 0, -1), 0.4, bubble),
		hittable.NewSphere(v3(1, 0, -1), 0.5, gold),
	)}
}

// focusScene is the materials scene through a wide aperture focused on the
// center sphere, with a small red marker in the blurred foreground.
func focusScene() *Scene {
	s := materialsScene()
	s.World.Add(hittable.NewSphere(v3(-0.3, -0.35, -0.2), 0.15,
		material.NewHemisphere(texture.NewSolidRGB(0.9, 0.2, 0.2))))
	s.View = View{
		LookFrom:     v3(-2, 2, 1),
		LookAt:       v3(0, 0, -1),
		VUp:          v3(0, 1, 0),
		VFov:         20,
		DefocusAngle: 10,
		FocusDist:    3.4,
	}
	return s
}

func farView() View {
	return View{
		LookFrom: v3(13, 2, 3),
		VUp:      v3(0, 1, 0),
		VFov:     20,
	}
}

func checkerScene() *Scene {
	checker := material.NewTexturedLambertian(
		texture.NewCheckerColors(0.32, v3(0.2, 0.3, 0.1), v3(0.9, 0.9, 0.9)))
	return &Scene{
		World: hittable.NewList(
			hittable.NewSphere(v3(0, -10, 0), 10, checker),
			hittable.NewSphere(v3(0, 10, 0), 10, checker),
		),
		View: farView(),
	}
}

func noiseScene() *Scene {
	marble := material.NewTexturedLambertian(texture.NewNoise(4, 1))
	return &Scene{
		World: hittable.NewList(
			hittable.NewSphere(v3(0, -1000, 0), 1000, marble),
			hittable.NewSphere(v3(0, 2, 0), 2, marble),
		),
		View: farView(),
	}
}

func lightsScene() *Scene {
	marble := material.NewTexturedLambertian(texture.NewNoise(4, 1))
	light := material.NewDiffuseLight(v3(4, 4, 4))
	return &Scene{
		World: hittable.NewList(
			hittable.NewSphere(v3(0, -1000, 0), 1000, marble),
			hittable.NewSphere(v3(0, 2, 0), 2, marble),
			hittable.NewQuad(v3(3, 1, -2), v3(2, 0, 0), v3(0, 2, 0), light),
			hittable.NewSphere(v3(0, 7, 0), 2, light),
		),
		View: View{LookFrom: v3(26, 3, 6), LookAt: v3(0, 2, 0), VUp: v3(0, 1, 0), VFov: 20},
	}
}

func motionScene() *Scene {
	ground := material.NewTexturedLambertian(
		texture.NewCheckerColors(0.32, v3(0.2, 0.3, 0.1), v3(0.9, 0.9, 0.9)))
	red := material.NewLambertian(v3(0.7, 0.1, 0.1))
	return &Scene{
		World: hittable.NewList(
			hittable.NewSphere(v3(0, -100.5, -1), 100, ground),
			hittable.NewMovingSphere(v3(-0.6, 0, -1.5), v3(-0.6, 0.3, -1.5), 0.4, red),
			hittable.NewSphere(v3(0.6, 0, -1.5), 0.4, material.NewMetal(v3(0.8, 0.8, 0.8), 0)),
		),
		View: View{ShutterOpen: 0, ShutterClose: 1},
	}
}

// trianglesScene is a square pyramid built from four triangles.
func trianglesScene() *Scene {
	stone := material.NewLambertian(v3(0.65, 0.55, 0.4))
	base := [4]mathutil.Vec3{v3(-0.6, -0.5, -0.6), v3(0.6, -0.5, -0.6), v3(0.6, -0.5, -1.8), v3(-0.6, -0.5, -1.8)}
	apex := v3(0, 0.6, -1.2)

	world := hittable.NewList(hittable.NewSphere(v3(0, -100.5, -1), 100, material.NewHemisphere(nil)))
	for i := range base {
		world.Add(hittable.NewTriangle(base[i], base[(i+1)%4], apex, stone))
	}
	return &Scene{World: world}
}
