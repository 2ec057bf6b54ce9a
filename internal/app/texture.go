package app

import (
	"image"
	"unsafe"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/vrpbooth/internal/scene"
)

// panelTexture is the GPU copy of a painted panel image
type panelTexture struct {
	texture rl.Texture2D
	rev     uint64
}

// syncTextures uploads panel images whose revision changed since the last
// frame. Animated panels are re-uploaded every frame they repaint.
func (app *App) syncTextures() {
	for key, tex := range app.Session.Booth.Textures {
		if tex.Image == nil {
			continue
		}
		pt, ok := app.Render.textures[key]
		if ok && pt.rev == tex.Rev {
			continue
		}
		if ok {
			rl.UnloadTexture(pt.texture)
		} else {
			pt = &panelTexture{}
			app.Render.textures[key] = pt
		}
		pt.texture = uploadImage(tex.Image)
		pt.rev = tex.Rev
	}
}

func uploadImage(img *image.RGBA) rl.Texture2D {
	b := img.Bounds()
	texture := rl.LoadTextureFromImage(&rl.Image{
		Data:    unsafe.Pointer(&img.Pix[0]),
		Width:   int32(b.Dx()),
		Height:  int32(b.Dy()),
		Mipmaps: 1,
		Format:  rl.UncompressedR8g8b8a8,
	})
	rl.SetTextureFilter(texture, rl.FilterBilinear)
	return texture
}

func (app *App) unloadTextures() {
	for _, pt := range app.Render.textures {
		rl.UnloadTexture(pt.texture)
	}
	app.Render.textures = make(map[string]*panelTexture)
}

// createQuadMesh creates a unit quad centered at the origin facing +Z
func createQuadMesh() rl.Mesh {
	vertices := []float32{
		-0.5, -0.5, 0, // Bottom-left
		0.5, -0.5, 0, // Bottom-right
		0.5, 0.5, 0, // Top-right
		-0.5, 0.5, 0, // Top-left
	}

	texcoords := []float32{
		0, 1, // Bottom-left
		1, 1, // Bottom-right
		1, 0, // Top-right
		0, 0, // Top-left
	}

	normals := []float32{
		0, 0, 1,
		0, 0, 1,
		0, 0, 1,
		0, 0, 1,
	}

	// Two triangles: 0,1,2 and 0,2,3
	indices := []uint16{
		0, 1, 2,
		0, 2, 3,
	}

	mesh := rl.Mesh{
		VertexCount:   4,
		TriangleCount: 2,
		Vertices:      &vertices[0],
		Texcoords:     &texcoords[0],
		Normals:       &normals[0],
		Indices:       &indices[0],
	}

	rl.UploadMesh(&mesh, false)
	return mesh
}

// panelOffset lifts the textured quad off the box face it covers
const panelOffset = 0.002

// quadTransform maps the unit quad onto a box face
func quadTransform(f scene.Face) rl.Matrix {
	c := f.Corners
	x := c[1].Sub(c[0])
	y := c[3].Sub(c[0])
	n := f.Normal
	center := c[0].Add(c[2]).Mul(0.5).AddScaled(n, panelOffset)

	return rl.Matrix{
		M0: float32(x.X), M4: float32(y.X), M8: float32(n.X), M12: float32(center.X),
		M1: float32(x.Y), M5: float32(y.Y), M9: float32(n.Y), M13: float32(center.Y),
		M2: float32(x.Z), M6: float32(y.Z), M10: float32(n.Z), M14: float32(center.Z),
		M15: 1,
	}
}
