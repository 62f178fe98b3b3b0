package main

import (
	"github.com/seqsense/partviewer/config"
	"github.com/seqsense/partviewer/frame"
	"github.com/seqsense/partviewer/gl"
)

type renderer struct {
	program    *gl.Program
	meshes     []*gl.Mesh
	clearColor [4]float32
}

func newRenderer(program *gl.Program, meshes []*gl.Mesh, cfg *config.Config) *renderer {
	program.Use()
	program.SetVec3("light.position", cfg.Light.Position)
	program.SetVec3("light.ambient", cfg.Light.Ambient)
	program.SetVec3("light.diffuse", cfg.Light.Diffuse)
	program.SetVec3("light.specular", cfg.Light.Specular)
	program.SetVec3("material.ambient", cfg.Material.Ambient)
	program.SetVec3("material.diffuse", cfg.Material.Diffuse)
	program.SetVec3("material.specular", cfg.Material.Specular)
	program.SetFloat("material.shininess", cfg.Material.Shininess)

	return &renderer{
		program:    program,
		meshes:     meshes,
		clearColor: cfg.ClearColor,
	}
}

func (r *renderer) Render(f *frame.Frame) {
	c := r.clearColor
	gl.Clear(c[0], c[1], c[2], c[3])

	r.program.Use()
	r.program.SetVec3("viewPos", f.Eye)
	r.program.SetMat4("projection", f.Projection)
	r.program.SetMat4("view", f.View)
	for i, m := range r.meshes {
		r.program.SetMat4("model", f.World[i])
		m.Draw()
	}
}
