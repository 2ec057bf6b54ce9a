// Package scene holds the minimal scene graph the booth is assembled from:
// named nodes with a yaw-only transform, and box meshes carrying materials.
package scene

import (
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/vrpbooth/pkg/geometry"
)

var meshCount atomic.Uint64

// Mesh is a box-shaped piece of geometry in its node's local space
type Mesh struct {
	id        uint64
	Name      string
	Box       geometry.BoundingBox
	Materials []*Material
	// Panel marks the mesh that shows a painted panel image
	Panel string
	node  *Node
}

// NewBox creates a box mesh centred at center with the given size
func NewBox(name string, center, size geometry.Vector3, materials ...*Material) *Mesh {
	return &Mesh{
		id:        meshCount.Add(1),
		Name:      name,
		Box:       geometry.BoxAt(center, size),
		Materials: materials,
	}
}

// ID returns the stable identifier of the mesh
func (m *Mesh) ID() uint64 { return m.id }

// Node returns the node the mesh is attached to
func (m *Mesh) Node() *Node { return m.node }

// WorldMatrix returns the mesh's local-to-world transform
func (m *Mesh) WorldMatrix() mgl64.Mat4 {
	if m.node == nil {
		return mgl64.Ident4()
	}
	return m.node.WorldMatrix()
}

// Node is a named element of the scene graph
type Node struct {
	Name     string
	Position geometry.Vector3
	Yaw      float64
	Scale    geometry.Vector3
	Visible  bool

	parent   *Node
	children []*Node
	meshes   []*Mesh
}

// NewNode creates a visible node at the origin with unit scale
func NewNode(name string) *Node {
	return &Node{
		Name:    name,
		Scale:   geometry.NewVector3(1, 1, 1),
		Visible: true,
	}
}

// Add attaches children to the node
func (n *Node) Add(children ...*Node) *Node {
	for _, c := range children {
		c.parent = n
		n.children = append(n.children, c)
	}
	return n
}

// AddMesh attaches meshes to the node
func (n *Node) AddMesh(meshes ...*Mesh) *Node {
	for _, m := range meshes {
		m.node = n
		n.meshes = append(n.meshes, m)
	}
	return n
}

// Parent returns the parent node, or nil for a root
func (n *Node) Parent() *Node { return n.parent }

// Children returns the direct children
func (n *Node) Children() []*Node { return n.children }

// Meshes returns the meshes directly attached to the node
func (n *Node) Meshes() []*Mesh { return n.meshes }

// LocalMatrix returns translation * rotationY * scale
func (n *Node) LocalMatrix() mgl64.Mat4 {
	t := mgl64.Translate3D(n.Position.X, n.Position.Y, n.Position.Z)
	r := mgl64.HomogRotate3DY(n.Yaw)
	s := mgl64.Scale3D(n.Scale.X, n.Scale.Y, n.Scale.Z)
	return t.Mul4(r).Mul4(s)
}

// WorldMatrix returns the node's local-to-world transform
func (n *Node) WorldMatrix() mgl64.Mat4 {
	if n.parent == nil {
		return n.LocalMatrix()
	}
	return n.parent.WorldMatrix().Mul4(n.LocalMatrix())
}

// WorldPosition returns the node origin in world space
func (n *Node) WorldPosition() geometry.Vector3 {
	m := n.WorldMatrix()
	return geometry.NewVector3(m.At(0, 3), m.At(1, 3), m.At(2, 3))
}

// WorldYaw returns the accumulated rotation about the world up axis
func (n *Node) WorldYaw() float64 {
	yaw := n.Yaw
	for p := n.parent; p != nil; p = p.parent {
		yaw += p.Yaw
	}
	return yaw
}

// Walk visits the node and all descendants depth first
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.children {
		c.Walk(fn)
	}
}

// EachMesh visits every mesh in the subtree
func (n *Node) EachMesh(fn func(*Mesh)) {
	n.Walk(func(node *Node) {
		for _, m := range node.meshes {
			fn(m)
		}
	})
}

// EachMaterial visits every material of every mesh in the subtree. A material
// shared by several meshes is visited once per use.
func (n *Node) EachMaterial(fn func(*Material)) {
	n.EachMesh(func(m *Mesh) {
		for _, mat := range m.Materials {
			if mat != nil {
				fn(mat)
			}
		}
	})
}

// TransformPoint maps a point from the mesh's local space to world space
func TransformPoint(m mgl64.Mat4, p geometry.Vector3) geometry.Vector3 {
	v := m.Mul4x1(mgl64.Vec4{p.X, p.Y, p.Z, 1})
	return geometry.NewVector3(v[0], v[1], v[2])
}

// TransformDirection maps a direction (w=0) by m
func TransformDirection(m mgl64.Mat4, d geometry.Vector3) geometry.Vector3 {
	v := m.Mul4x1(mgl64.Vec4{d.X, d.Y, d.Z, 0})
	return geometry.NewVector3(v[0], v[1], v[2])
}

// WorldBounds returns the world-space box enclosing the transformed mesh
func (m *Mesh) WorldBounds() geometry.BoundingBox {
	world := m.WorldMatrix()
	b := geometry.NewBoundingBox()
	for _, c := range m.Box.Corners() {
		b.Extend(TransformPoint(world, c))
	}
	return b
}
