package app

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/vrpbooth/internal/scene"
	"github.com/philipparndt/vrpbooth/pkg/geometry"
)

// panelFace is a textured face queued until the opaque pass is done, so
// transparent label pixels blend over the geometry behind them
type panelFace struct {
	texture rl.Texture2D
	face    scene.Face
}

func vec3(v geometry.Vector3) rl.Vector3 {
	return rl.Vector3{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}

func rlColor(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

// drawScene draws every visible node of the booth
func (app *App) drawScene() {
	app.Render.panels = app.Render.panels[:0]
	app.drawNode(app.Session.Booth.Root)

	for _, p := range app.Render.panels {
		rl.SetMaterialTexture(&app.Render.material, rl.MapDiffuse, p.texture)
		rl.DrawMesh(app.Render.quad, app.Render.material, quadTransform(p.face))
	}
}

func (app *App) drawNode(n *scene.Node) {
	if !n.Visible {
		return
	}
	for _, mesh := range n.Meshes() {
		app.drawMesh(mesh)
	}
	for _, c := range n.Children() {
		app.drawNode(c)
	}
}

// drawMesh draws a box with flat, baked lighting per face. Panel meshes get
// their texture on the front face instead of the material colour.
func (app *App) drawMesh(mesh *scene.Mesh) {
	if len(mesh.Materials) == 0 || mesh.Materials[0] == nil {
		return
	}
	mat := mesh.Materials[0]

	for _, f := range mesh.Faces() {
		if f.Front && mesh.Panel != "" {
			if pt, ok := app.Render.textures[mesh.Panel]; ok {
				app.Render.panels = append(app.Render.panels, panelFace{texture: pt.texture, face: f})
				continue
			}
		}
		c := mat.Lit(scene.Diffuse(f.Normal))
		if c.A == 0 {
			continue
		}
		v := f.Corners
		rl.DrawTriangle3D(vec3(v[0]), vec3(v[1]), vec3(v[2]), rlColor(c))
		rl.DrawTriangle3D(vec3(v[0]), vec3(v[2]), vec3(v[3]), rlColor(c))
	}
}
