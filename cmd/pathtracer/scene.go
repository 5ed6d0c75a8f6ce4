package main

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// buildDefaultScene assembles a Cornell-box-style test scene: five colored
// walls, a ceiling-mounted emissive patch, a diffuse sphere, and a mirror
// sphere. Scene authoring (file formats, loaders) is out of scope; this
// is just the process's built-in default content.
func buildDefaultScene() (*scene.Scene, error) {
	sc := scene.NewScene()

	wallThickness := 0.1
	add := func(box geometry.Box, mat material.Material) error {
		_, err := sc.Add(scene.NewBoxObject(box, mat))
		return err
	}

	white := material.Material{Albedo: core.NewVec3(0.73, 0.73, 0.73), Roughness: 1, Reflectance: 0.5}
	red := material.Material{Albedo: core.NewVec3(0.65, 0.05, 0.05), Roughness: 1, Reflectance: 0.5}
	green := material.Material{Albedo: core.NewVec3(0.12, 0.45, 0.15), Roughness: 1, Reflectance: 0.5}
	light := material.Material{Albedo: core.NewVec3(1, 1, 1), EmissionColor: core.NewVec3(1, 1, 1), EmissionPower: 15}

	const size = 5.0

	if err := add(geometry.NewBox(core.NewVec3(-size/2-wallThickness, -size/2, -size/2), core.NewVec3(wallThickness, size, size)), red); err != nil {
		return nil, err
	}
	if err := add(geometry.NewBox(core.NewVec3(size/2, -size/2, -size/2), core.NewVec3(wallThickness, size, size)), green); err != nil {
		return nil, err
	}
	if err := add(geometry.NewBox(core.NewVec3(-size/2, -size/2-wallThickness, -size/2), core.NewVec3(size, wallThickness, size)), white); err != nil {
		return nil, err
	}
	if err := add(geometry.NewBox(core.NewVec3(-size/2, size/2, -size/2), core.NewVec3(size, wallThickness, size)), white); err != nil {
		return nil, err
	}
	if err := add(geometry.NewBox(core.NewVec3(-size/2, -size/2, size/2), core.NewVec3(size, size, wallThickness)), white); err != nil {
		return nil, err
	}
	if err := add(geometry.NewBox(core.NewVec3(-0.75, size/2-0.02, -0.75), core.NewVec3(1.5, 0.02, 1.5)), light); err != nil {
		return nil, err
	}

	diffuseSphere := material.Material{Albedo: core.NewVec3(0.5, 0.5, 0.5), Roughness: 1, Reflectance: 0.5}
	if _, err := sc.Add(scene.NewSphereObject(geometry.NewSphere(core.NewVec3(-1.1, -size/2+1, -0.3), 1), diffuseSphere)); err != nil {
		return nil, err
	}

	mirrorSphere := material.Material{Albedo: core.NewVec3(1, 1, 1), Roughness: 0, Metallic: 1}
	if _, err := sc.Add(scene.NewSphereObject(geometry.NewSphere(core.NewVec3(1.2, -size/2+1, 0.8), 1), mirrorSphere)); err != nil {
		return nil, err
	}

	return sc, nil
}
