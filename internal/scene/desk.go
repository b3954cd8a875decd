package scene

import "github.com/go-gl/mathgl/mgl32"

func v3(x, y, z float32) mgl32.Vec3 { return mgl32.Vec3{x, y, z} }

// textured uses the same tag for texture and material.
func textured(name string, shape Shape, tag string, uv mgl32.Vec2, scale, rot, pos mgl32.Vec3) DrawCall {
	return DrawCall{
		Name:     name,
		Shape:    shape,
		Scale:    scale,
		Rotation: rot,
		Position: pos,
		Texture:  tag,
		Material: tag,
		UVScale:  uv,
	}
}

func colored(name string, shape Shape, color mgl32.Vec4, scale, rot, pos mgl32.Vec3) DrawCall {
	return DrawCall{
		Name:     name,
		Shape:    shape,
		Scale:    scale,
		Rotation: rot,
		Position: pos,
		Color:    color,
		UVScale:  mgl32.Vec2{1, 1},
	}
}

var (
	uv1  = mgl32.Vec2{1, 1}
	uv2  = mgl32.Vec2{2, 2}
	uv42 = mgl32.Vec2{4, 2}
	none = mgl32.Vec3{}
)

// stems are the grass blades rising from the plant pot: X/Z rotation and
// position, all sharing one scale.
var stems = []struct{ rot, pos mgl32.Vec3 }{
	{none, v3(-0.42, 0.82, -0.70)},
	{v3(-15, 0, 30), v3(-0.36, 0.82, -0.67)},
	{v3(-10, 0, 5), v3(-0.38, 0.82, -0.72)},
	{v3(0, 0, -25), v3(-0.45, 0.82, -0.68)},
	{v3(10, 0, 20), v3(-0.39, 0.82, -0.66)},
	{v3(-11, 0, -27.7), v3(-0.37, 0.82, -0.70)},
	{v3(-12, 0, -27.7), v3(-0.39, 0.82, -0.66)},
	{v3(-10.8, 0, -6.9), v3(-0.44, 0.82, -0.66)},
	{v3(8.3, 0, 21.7), v3(-0.47, 0.82, -0.70)},
	{v3(-12.4, 0, 4), v3(-0.45, 0.82, -0.74)},
	{v3(5.7, 0, 25.1), v3(-0.39, 0.82, -0.74)},
	{v3(-12, 0, -35.1), v3(-0.35, 0.82, -0.68)},
	{v3(14, 0, 32.1), v3(-0.49, 0.82, -0.73)},
	{v3(-8, 0, 40), v3(-0.38, 0.82, -0.77)},
}

// buds are the leaf clusters at the top of the stems.
var buds = []struct{ rot, pos mgl32.Vec3 }{
	{v3(-12, 0, -35), v3(-0.60, 1.36, -0.84)},
	{v3(15, 0, 20), v3(-0.30, 1.36, -0.56)},
	{v3(-8, 0, 40), v3(-0.20, 1.36, -0.92)},
	{v3(-10, 0, 20), v3(-0.72, 1.36, -0.82)},
	{v3(0, 0, 40), v3(-0.42, 1.36, -0.50)},
	{v3(8, 0, 30), v3(-0.10, 1.36, -0.75)},
	{v3(-5, 0, 0), v3(-0.42, 1.36, -0.92)},
	{v3(5, 0, 0), v3(-0.42, 1.36, -0.45)},
	{v3(0, 0, -15), v3(-0.82, 1.36, -0.70)},
	{v3(0, 0, 15), v3(-0.02, 1.36, -0.70)},
	{v3(-8, 0, 0), v3(-0.42, 1.28, -0.82)},
	{v3(0, 0, -10), v3(-0.72, 1.36, -0.90)},
	{v3(0, 0, 10), v3(-0.12, 1.36, -0.50)},
	{v3(0, 0, -20), v3(-0.82, 1.36, -0.48)},
}

// potLegs ring the pot base.
var potLegs = []mgl32.Vec3{
	v3(-0.21, 0.19, -0.70),
	v3(-0.42, 0.19, -0.49),
	v3(-0.63, 0.19, -0.70),
	v3(-0.42, 0.19, -0.91),
	v3(-0.31, 0.19, -0.59),
	v3(-0.53, 0.19, -0.59),
	v3(-0.31, 0.19, -0.81),
	v3(-0.53, 0.19, -0.81),
}

// DeskScene returns the draw list of the desk, in draw order.
func DeskScene() []DrawCall {
	calls := []DrawCall{
		textured("table top", PlaneShape, "wood", uv1, v3(2, 1, 2), none, v3(0, 0, 0.2)),

		// Saucer and cup
		textured("saucer", CylinderShape, "marble1", uv1, v3(0.3, 0.015, 0.3), none, v3(0, 0.01, 0)),
		textured("saucer center", HalfSphereShape, "marble1", uv1, v3(0.12, 0.008, 0.12), none, v3(0, 0.035, 0)),
		textured("cup", TaperedCylinderShape, "marble1", uv1, v3(0.18, 0.27, 0.18), v3(180, 0, 0), v3(0, 0.30, 0)),
		colored("coffee", CylinderShape, mgl32.Vec4{0.1, 0.05, 0.01, 1}, v3(0.16, 0.005, 0.16), none, v3(0, 0.30, 0)),
		textured("handle front", HalfTorusShape, "marble1", uv1, v3(0.06, 0.06, 0.025), v3(0, 0, 90), v3(-0.20, 0.215, 0)),
		textured("handle back", HalfTorusShape, "marble1", uv1, v3(0.06, 0.06, 0.025), v3(180, 0, 90), v3(-0.20, 0.215, 0)),

		// Books
		textured("book 1", BoxShape, "leather1", uv42, v3(0.5, 0.07, 0.4), v3(0, 90, 0), v3(0.52, 0.035, 0.09)),
		textured("book 1 pages", PlaneShape, "paper", uv42, v3(0.27, 0.001, 0.16), v3(0, 90, 0), v3(0.47, 0.035, 0.08)),
		textured("book 2", BoxShape, "leather2", uv42, v3(0.5, 0.09, 0.4), v3(0, 90, 0), v3(0.52, 0.12, 0.09)),
		textured("book 2 pages", PlaneShape, "paper2", uv42, v3(0.26, 0.014, 0.21), v3(0, 90, 0), v3(0.52, 0.12, 0.09)),
		textured("book 3", BoxShape, "leather3", uv42, v3(0.4, 0.04, 0.3), v3(0, 90, 0), v3(0.52, 0.17, 0.09)),

		// Picture frame
		textured("picture", BoxShape, "paper", uv2, v3(0.25, 0.01, 0.89), v3(90, -45, 0), v3(0.52, 0.46, 0.09)),
		textured("frame", BoxShape, "wood", uv2, v3(0.27, 0.01, 0.92), v3(90, -45, 0), v3(0.53, 0.48, 0.09)),
		textured("frame inner", BoxShape, "wood", uv2, v3(0.27, 0.01, 0.90), v3(90, -45, 0), v3(0.53, 0.48, 0.09)),

		// Plant pot
		textured("pot", TaperedCylinderShape, "marble1", uv2, v3(0.3, 0.65, 0.3), none, v3(-0.42, 0.01, -0.70)),
	}

	for _, pos := range potLegs {
		calls = append(calls, textured("pot leg", CylinderShape, "marble2", uv2, v3(0.06, 0.45, 0.06), none, pos))
	}

	calls = append(calls,
		colored("pot rim shadow", CylinderShape, mgl32.Vec4{0, 0, 0, 1}, v3(0.26, 0.008, 0.26), none, v3(-0.42, 0.625, -0.70)),
		textured("pot rim", CylinderShape, "marble1", uv2, v3(0.26, 0.008, 0.26), none, v3(-0.42, 0.635, -0.70)),
		textured("pot collar", CylinderShape, "marble2", uv2, v3(0.24, 0.10, 0.24), none, v3(-0.42, 0.645, -0.70)),
		textured("soil", HalfSphereShape, "ground", uv2, v3(0.22, 0.10, 0.22), none, v3(-0.42, 0.755, -0.70)),
	)

	for i, s := range stems {
		calls = append(calls, textured("stem", CylinderShape, "grass1", uv2, v3(0.005, 0.68, 0.005), s.rot, s.pos))
		if i == 0 {
			calls = append(calls, textured("top bud", SphereShape, "grass2", uv2, v3(0.05, 0.08, 0.05), none, v3(-0.42, 1.54, -0.70)))
		}
	}
	for _, b := range buds {
		calls = append(calls, textured("bud", SphereShape, "grass2", uv2, v3(0.07, 0.07, 0.07), b.rot, b.pos))
	}

	calls = append(calls,
		// Stacked books
		textured("stack bottom", BoxShape, "leather3", uv2, v3(0.45, 0.05, 0.65), v3(0, 100, 0), v3(-0.75, 0.01, -0.15)),
		textured("stack note", PlaneShape, "paper", uv1, v3(0.35, 0.002, 0.20), v3(0, 10, 0), v3(-0.75, 0.01, -0.15)),
		textured("stack middle", BoxShape, "pattern", uv2, v3(0.32, 0.045, 0.62), v3(0, 100, 0), v3(-0.75, 0.065, -0.15)),
		textured("stack top", BoxShape, "fabric", uv2, v3(0.30, 0.04, 0.60), v3(0, 100, 0), v3(-0.75, 0.12, -0.15)),
		textured("stack top pages", PlaneShape, "paper2", uv2, v3(0.14, 0.004, 0.32), v3(0, 100, 0), v3(-0.75, 0.125, -0.15)),
		textured("pencil", CylinderShape, "wood2", uv2, v3(0.005, 0.68, 0.005), v3(90, 100, 0), v3(-1.05, 0.16, 0.02)),

		colored("backdrop", PlaneShape, mgl32.Vec4{1, 1, 1, 1}, v3(20, 1, 10), none, none),
	)
	return calls
}
