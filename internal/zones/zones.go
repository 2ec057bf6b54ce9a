package zones

import (
	"math"

	"github.com/philipparndt/vrpbooth/internal/interaction"
	"github.com/philipparndt/vrpbooth/internal/scene"
	"github.com/philipparndt/vrpbooth/pkg/geometry"
)

// Texture keys referenced by Mesh.Panel
const (
	PanelStand        = "stand"
	PanelRoutes       = "routes"
	PanelAI           = "ai"
	PanelDashboard    = "dashboard"
	PanelInfographics = "infographics"
	PanelQR           = "qr"
	PanelAppUI        = "app-ui"
)

func labelKey(zone string) string { return "label/" + zone }

var v = geometry.NewVector3

func box(name string, center, size geometry.Vector3, mat *scene.Material) *scene.Mesh {
	return scene.NewBox(name, center, size, mat)
}

// screen is a thin box showing a painted texture on its front face
func screen(name, panel string, center, size geometry.Vector3) *scene.Mesh {
	m := scene.NewBox(name, center, size, scene.NewMaterial(White))
	m.Panel = panel
	return m
}

func zoneNode(name string, pos geometry.Vector3, yaw float64) *scene.Node {
	n := scene.NewNode(name)
	n.Position = pos
	n.Yaw = yaw
	return n
}

func pedestalMaterial() *scene.Material {
	return scene.NewMaterial(Slate)
}

func label(zone string, center geometry.Vector3, width float64) *scene.Mesh {
	return screen(zone+"Label", labelKey(zone), center, v(width, 0.4, 0.01))
}

// mainStand is the back wall of the booth with the headline screen
func mainStand() *interaction.Zone {
	n := zoneNode(interaction.MainStand, v(0, 0, -2), 0)

	accent := scene.NewEmissiveMaterial(Violet, Violet, 0.8)
	n.AddMesh(
		box("BackPanel", v(0, 2, 0), v(8, 4, 0.2), scene.NewEmissiveMaterial(Ink, Violet, 0.1)),
		box("TopFrame", v(0, 4, 0), v(8.2, 0.1, 0.1), accent),
		box("LeftFrame", v(-4, 2, 0), v(0.1, 4.2, 0.1), accent),
		box("RightFrame", v(4, 2, 0), v(0.1, 4.2, 0.1), accent),
		screen("MainContent", PanelStand, v(0, 2, 0.11), v(7.8, 3.9, 0.01)),
		box("Base", v(0, 0.15, 0), v(8.5, 0.3, 1), pedestalMaterial()),
	)
	return &interaction.Zone{Node: n}
}

func routesZone(route *RouteMap) *interaction.Zone {
	n := zoneNode(interaction.RoutesZone, v(-8, 0, 0), math.Pi*0.25)

	n.AddMesh(
		box("Pedestal", v(0, 0.7, 0), v(1.3, 1.4, 1.3), scene.NewEmissiveMaterial(Slate, Violet, 0.1)),
		box("Platform", v(0, 1.45, 0), v(1.4, 0.1, 1.4), scene.NewEmissiveMaterial(Violet, Violet, 0.3)),
		box("PhoneBody", v(0, 2.3, 0), v(0.4, 0.8, 0.08), scene.NewMaterial(Navy)),
		box("PhoneFrame", v(0, 2.3, 0.045), v(0.42, 0.82, 0.01), scene.NewEmissiveMaterial(Violet, Violet, 0.3)),
		screen("MapScreen", PanelRoutes, v(0, 2.3, 0.055), v(0.38, 0.76, 0.005)),
		label(interaction.RoutesZone, v(0, 3.5, 0), 3),
	)
	return &interaction.Zone{Node: n, Data: &interaction.RoutesData{Panel: route}}
}

func aiZone() *interaction.Zone {
	n := zoneNode(interaction.AIZone, v(6, 0, 1), -math.Pi*0.2)

	n.AddMesh(
		box("Pedestal", v(0, 0.75, 0), v(1.2, 1.5, 1.2), scene.NewEmissiveMaterial(Slate, Lavender, 0.1)),
		box("Frame", v(0, 2.5, -0.03), v(1.6, 1.6, 0.05), scene.NewEmissiveMaterial(Lavender, Lavender, 0.3)),
		screen("AIPanel", PanelAI, v(0, 2.5, 0), v(1.5, 1.5, 0.01)),
		label(interaction.AIZone, v(0, 3.5, 0), 3),
	)
	return &interaction.Zone{Node: n}
}

// dashboardZone returns the zone and the node its screen scales on
func dashboardZone() (*interaction.Zone, *scene.Node) {
	n := zoneNode(interaction.DashboardZone, v(-6.5, 0, 3.5), math.Pi*0.25)

	display := scene.NewNode("DashboardScreen")
	display.Position = v(0, 2.6, 0)
	display.AddMesh(screen("Dashboard", PanelDashboard, geometry.Vector3{}, v(2, 1.25, 0.01)))

	n.AddMesh(
		box("Pedestal", v(0, 0.75, 0), v(1.2, 1.5, 1.2), pedestalMaterial()),
		box("Frame", v(0, 2.6, -0.03), v(2.1, 1.3, 0.05), scene.NewEmissiveMaterial(Cyan, Cyan, 0.3)),
		label(interaction.DashboardZone, v(0, 3.9, 0.1), 3.5),
	)
	n.Add(display)
	return &interaction.Zone{Node: n, Data: &interaction.DashboardData{}}, display
}

func infographicsZone() *interaction.Zone {
	n := zoneNode(interaction.InfographicsZone, v(6.5, 0, 3.5), -math.Pi*0.25)

	n.AddMesh(
		box("Pedestal", v(0, 0.75, 0), v(1.2, 1.5, 1.2), pedestalMaterial()),
		box("Frame", v(0, 2.75, -0.03), v(1.6, 2.35, 0.05), scene.NewEmissiveMaterial(Emerald, Emerald, 0.3)),
		screen("InfoPanel", PanelInfographics, v(0, 2.75, 0), v(1.5, 2.25, 0.01)),
		label(interaction.InfographicsZone, v(0, 4.15, 0), 2.5),
	)
	return &interaction.Zone{Node: n}
}

// contactsZone returns the zone and the node the QR panel scales on
func contactsZone() (*interaction.Zone, *scene.Node) {
	n := zoneNode(interaction.ContactsZone, v(-6.5, 0, 5.5), math.Pi*0.28)

	qr := scene.NewNode("QRPanel")
	qr.Position = v(0, 2.6, 0)
	qr.AddMesh(screen("QRCode", PanelQR, geometry.Vector3{}, v(1.2, 1.2, 0.01)))

	n.AddMesh(
		box("Pedestal", v(0, 0.75, 0), v(1.2, 1.5, 1.2), pedestalMaterial()),
		box("Frame", v(0, 2.6, -0.03), v(1.3, 1.3, 0.05), scene.NewEmissiveMaterial(Violet, Violet, 0.5)),
		label(interaction.ContactsZone, v(0, 3.9, 0.1), 3),
		screen("SubLabel", labelKey(interaction.ContactsZone)+"/sub", v(0, 1.75, 0.1), v(2, 0.3, 0.01)),
	)
	n.Add(qr)
	return &interaction.Zone{Node: n, Data: &interaction.ContactsData{}}, qr
}

func appUIZone() *interaction.Zone {
	n := zoneNode(interaction.AppUIZone, v(8, 0, 7), -math.Pi*0.35)

	n.AddMesh(
		box("Pedestal", v(0, 0.7, 0), v(1.3, 1.4, 1.3), scene.NewEmissiveMaterial(Slate, Cyan, 0.1)),
		box("Platform", v(0, 1.45, 0), v(1.4, 0.1, 1.4), scene.NewEmissiveMaterial(Cyan, Cyan, 0.3)),
		box("Frame", v(0, 2.9, -0.03), v(1.3, 2.8, 0.05), scene.NewEmissiveMaterial(Cyan, Cyan, 0.4)),
		screen("AppScreen", PanelAppUI, v(0, 2.9, 0), v(1.2, 2.6, 0.01)),
		label(interaction.AppUIZone, v(0, 4.5, 0), 2.5),
	)
	return &interaction.Zone{Node: n}
}

// hall is the exhibition space around the booth. None of it is clickable.
func hall() *scene.Node {
	n := scene.NewNode("ExhibitionHall")

	shell := scene.NewEmissiveMaterial(HallBlue, Navy, 0.25)
	n.AddMesh(
		box("Floor", v(0, -0.05, 3), v(24, 0.1, 18), scene.NewMaterial(Navy)),
		box("FloorInset", v(0, 0.01, 3), v(18, 0.02, 12), scene.NewEmissiveMaterial(Navy, Violet, 0.2)),
		box("BackWall", v(0, 5, -6), v(24, 10, 0.2), shell),
		box("FrontWall", v(0, 5, 12), v(24, 10, 0.2), shell),
		box("LeftWall", v(-12, 5, 3), v(0.2, 10, 18), shell),
		box("RightWall", v(12, 5, 3), v(0.2, 10, 18), shell),
	)

	column := scene.NewMaterial(Charcoal)
	band := scene.NewEmissiveMaterial(Graphite, Cyan, 0.35)
	for _, p := range []geometry.Vector3{v(-10, 2.5, -4), v(10, 2.5, -4), v(-10, 2.5, 10), v(10, 2.5, 10)} {
		n.AddMesh(
			box("Column", p, v(0.8, 5, 0.8), column),
			box("ColumnBand", p.Add(v(0, 2, 0)), v(0.9, 0.12, 0.9), band),
		)
	}

	strip := scene.NewEmissiveMaterial(Sky, Sky, 0.7)
	for _, z := range []float64{-2, 3, 8} {
		s := scene.NewNode("CeilingStrip")
		s.Position = v(0, 9.4, z)
		s.Yaw = math.Pi / 2
		s.AddMesh(box("Strip", geometry.Vector3{}, v(12, 0.08, 0.12), strip))
		n.Add(s)
	}
	return n
}

// truck is the decorative delivery truck in front of the stand
func truck() *scene.Node {
	n := zoneNode("Truck", v(-2, 0, 2), math.Pi*0.15)

	body := scene.NewMaterial(White)
	glass := scene.NewEmissiveMaterial(Navy, Sky, 0.2)
	wheel := scene.NewMaterial(Charcoal)
	n.AddMesh(
		box("Cabin", v(0, 0.6, 0.8), v(1.3, 0.8, 1), body),
		box("CabinTop", v(0, 1.25, 0.95), v(1.3, 0.5, 0.7), body),
		box("Windshield", v(0, 1.05, 1.28), v(1.32, 0.55, 0.05), glass),
		box("Cargo", v(0, 0.97, -0.75), v(1.45, 1.25, 2.1), scene.NewEmissiveMaterial(Violet, Violet, 0.15)),
		box("Stripe", v(0, 0.55, -0.75), v(1.47, 0.08, 2.12), scene.NewEmissiveMaterial(Cyan, Cyan, 0.5)),
	)
	for _, p := range []geometry.Vector3{v(-0.65, 0.25, 0.8), v(0.65, 0.25, 0.8), v(-0.65, 0.25, -1.2), v(0.65, 0.25, -1.2)} {
		n.AddMesh(box("Wheel", p, v(0.2, 0.5, 0.5), wheel))
	}
	return n
}
