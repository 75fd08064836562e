package scene

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"mc-raytracer/internal/hittable"
	"mc-raytracer/internal/material"
	"mc-raytracer/internal/mathutil"
	"mc-raytracer/internal/texture"
)

type textureSpec struct {
	Type  string        `json:"type"` // solid, checker, image, noise
	Color mathutil.Vec3 `json:"color"`
	Scale float64       `json:"scale"`
	Even  mathutil.Vec3 `json:"even"`
	Odd   mathutil.Vec3 `json:"odd"`
	Path  string        `json:"path"`
	Seed  int64         `json:"seed"`
}

type materialSpec struct {
	Type    string         `json:"type"` // hemisphere, lambertian, metal, dielectric, light
	Color   *mathutil.Vec3 `json:"color"`
	Texture string         `json:"texture"`
	Fuzz    float64        `json:"fuzz"`
	IOR     float64        `json:"ior"`
}

type objectSpec struct {
	Type     string         `json:"type"` // sphere, triangle, quad
	Material string         `json:"material"`
	Center   mathutil.Vec3  `json:"center"`
	Center1  *mathutil.Vec3 `json:"center1"`
	Radius   float64        `json:"radius"`
	A        mathutil.Vec3  `json:"a"`
	B        mathutil.Vec3  `json:"b"`
	C        mathutil.Vec3  `json:"c"`
	Q        mathutil.Vec3  `json:"q"`
	U        mathutil.Vec3  `json:"u"`
	V        mathutil.Vec3  `json:"v"`
}

type fileSpec struct {
	Name      string                  `json:"name"`
	Camera    View                    `json:"camera"`
	Textures  map[string]textureSpec  `json:"textures"`
	Materials map[string]materialSpec `json:"materials"`
	Objects   []objectSpec            `json:"objects"`
}

// Load reads a JSON scene file. Relative image paths are resolved against
// the file's directory. res may be nil.
func Load(path string, res texture.Resolver) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: read %s: %w", path, err)
	}
	s, err := Parse(data, filepath.Dir(path), res)
	if err != nil {
		return nil, fmt.Errorf("scene: %s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = trimExt(filepath.Base(path))
	}
	return s, nil
}

func trimExt(name string) string {
	return name[:len(name)-len(filepath.Ext(name))]
}

// Parse builds a scene from JSON. Unknown fields are rejected.
func Parse(data []byte, baseDir string, res texture.Resolver) (*Scene, error) {
	var spec fileSpec
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&spec); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if res == nil {
		res = texture.NewCache(nil)
	}

	b := builder{baseDir: baseDir, res: res}
	textures := make(map[string]texture.Texture, len(spec.Textures))
	for name, ts := range spec.Textures {
		tex, err := b.texture(ts)
		if err != nil {
			return nil, fmt.Errorf("texture %q: %w", name, err)
		}
		textures[name] = tex
	}

	materials := make(map[string]hittable.Material, len(spec.Materials))
	for name, ms := range spec.Materials {
		mat, err := buildMaterial(ms, textures)
		if err != nil {
			return nil, fmt.Errorf("material %q: %w", name, err)
		}
		materials[name] = mat
	}

	world := hittable.NewList()
	for i, o := range spec.Objects {
		var mat hittable.Material
		if o.Material != "" {
			m, ok := materials[o.Material]
			if !ok {
				return nil, fmt.Errorf("object %d: unknown material %q", i, o.Material)
			}
			mat = m
		}
		obj, err := buildObject(o, mat)
		if err != nil {
			return nil, fmt.Errorf("object %d: %w", i, err)
		}
		world.Add(obj)
	}

	return &Scene{Name: spec.Name, World: world, View: spec.Camera}, nil
}

type builder struct {
	baseDir string
	res     texture.Resolver
}

func (b builder) texture(ts textureSpec) (texture.Texture, error) {
	switch ts.Type {
	case "solid":
		return texture.NewSolidColor(ts.Color), nil
	case "checker":
		if !(ts.Scale > 0) {
			return nil, fmt.Errorf("checker scale %v must be positive", ts.Scale)
		}
		return texture.NewCheckerColors(ts.Scale, ts.Even, ts.Odd), nil
	case "image":
		if ts.Path == "" {
			return nil, fmt.Errorf("image texture needs a path")
		}
		path := ts.Path
		if !filepath.IsAbs(path) {
			path = filepath.Join(b.baseDir, path)
		}
		img, err := b.res.Resolve(path)
		if err != nil {
			return nil, err
		}
		return img, nil
	case "noise":
		scale := ts.Scale
		if scale == 0 {
			scale = 1
		}
		return texture.NewNoise(scale, ts.Seed), nil
	}
	return nil, fmt.Errorf("unknown texture type %q", ts.Type)
}

func buildMaterial(ms materialSpec, textures map[string]texture.Texture) (hittable.Material, error) {
	var tex texture.Texture
	switch {
	case ms.Texture != "":
		t, ok := textures[ms.Texture]
		if !ok {
			return nil, fmt.Errorf("unknown texture %q", ms.Texture)
		}
		tex = t
	case ms.Color != nil:
		tex = texture.NewSolidColor(*ms.Color)
	}

	switch ms.Type {
	case "hemisphere":
		return material.NewHemisphere(tex), nil
	case "lambertian":
		if tex == nil {
			return nil, fmt.Errorf("lambertian needs a color or texture")
		}
		return material.NewTexturedLambertian(tex), nil
	case "metal":
		if ms.Color == nil {
			return nil, fmt.Errorf("metal needs a color")
		}
		return material.NewMetal(*ms.Color, ms.Fuzz), nil
	case "dielectric":
		if !(ms.IOR > 0) {
			return nil, fmt.Errorf("dielectric ior %v must be positive", ms.IOR)
		}
		return material.NewDielectric(ms.IOR), nil
	case "light":
		if tex == nil {
			return nil, fmt.Errorf("light needs a color or texture")
		}
		return &material.DiffuseLight{Emit: tex}, nil
	}
	return nil, fmt.Errorf("unknown material type %q", ms.Type)
}

// buildObject rejects malformed geometry here; the primitives themselves
// would only report no hit.
func buildObject(o objectSpec, mat hittable.Material) (hittable.Hittable, error) {
	switch o.Type {
	case "sphere":
		if !(o.Radius > 0) {
			return nil, fmt.Errorf("sphere radius %v must be positive", o.Radius)
		}
		if o.Center1 != nil {
			return hittable.NewMovingSphere(o.Center, *o.Center1, o.Radius, mat), nil
		}
		return hittable.NewSphere(o.Center, o.Radius, mat), nil
	case "triangle":
		tri := hittable.NewTriangle(o.A, o.B, o.C, mat)
		if tri.Degenerate() {
			return nil, fmt.Errorf("degenerate triangle")
		}
		return tri, nil
	case "quad":
		quad := hittable.NewQuad(o.Q, o.U, o.V, mat)
		if quad.Degenerate() {
			return nil, fmt.Errorf("degenerate quad")
		}
		return quad, nil
	}
	return nil, fmt.Errorf("unknown object type %q", o.Type)
}
