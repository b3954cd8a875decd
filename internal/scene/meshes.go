package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// FloatsPerVertex is the interleaved layout: position(3), uv(2), normal(3).
const FloatsPerVertex = 8

type Shape int

const (
	PlaneShape Shape = iota
	BoxShape
	CylinderShape
	TaperedCylinderShape
	SphereShape
	HalfSphereShape
	TorusShape
	HalfTorusShape
)

func (s Shape) String() string {
	switch s {
	case PlaneShape:
		return "plane"
	case BoxShape:
		return "box"
	case CylinderShape:
		return "cylinder"
	case TaperedCylinderShape:
		return "tapered cylinder"
	case SphereShape:
		return "sphere"
	case HalfSphereShape:
		return "half sphere"
	case TorusShape:
		return "torus"
	case HalfTorusShape:
		return "half torus"
	default:
		return "unknown"
	}
}

const (
	circleSegments = 36
	sphereStacks   = 18
	torusTubeSegs  = 16
	// Torus ring radius and tube radius before scaling.
	torusMajorRadius = 1.0
	torusMinorRadius = 0.2
	taperedTopRadius = 0.5
)

// MeshData is indexed triangle geometry in FloatsPerVertex layout. Triangles
// wind counter-clockwise seen from the side their normals face.
type MeshData struct {
	Vertices []float32
	Indices  []uint32
}

func (m *MeshData) VertexCount() int {
	return len(m.Vertices) / FloatsPerVertex
}

func (m *MeshData) Position(i int) mgl32.Vec3 {
	v := m.Vertices[i*FloatsPerVertex:]
	return mgl32.Vec3{v[0], v[1], v[2]}
}

func (m *MeshData) UV(i int) mgl32.Vec2 {
	v := m.Vertices[i*FloatsPerVertex:]
	return mgl32.Vec2{v[3], v[4]}
}

func (m *MeshData) Normal(i int) mgl32.Vec3 {
	v := m.Vertices[i*FloatsPerVertex:]
	return mgl32.Vec3{v[5], v[6], v[7]}
}

func (m *MeshData) addVertex(p mgl32.Vec3, uv mgl32.Vec2, n mgl32.Vec3) uint32 {
	idx := uint32(m.VertexCount())
	m.Vertices = append(m.Vertices, p[0], p[1], p[2], uv[0], uv[1], n[0], n[1], n[2])
	return idx
}

func (m *MeshData) addTriangle(a, b, c uint32) {
	m.Indices = append(m.Indices, a, b, c)
}

// addQuad adds the square centered on c spanned by +-u and +-v, facing u×v.
func (m *MeshData) addQuad(c, u, v mgl32.Vec3, uvScale mgl32.Vec2) {
	n := u.Cross(v).Normalize()
	i0 := m.addVertex(c.Sub(u).Sub(v), mgl32.Vec2{0, 0}, n)
	i1 := m.addVertex(c.Add(u).Sub(v), mgl32.Vec2{uvScale[0], 0}, n)
	i2 := m.addVertex(c.Add(u).Add(v), mgl32.Vec2{uvScale[0], uvScale[1]}, n)
	i3 := m.addVertex(c.Sub(u).Add(v), mgl32.Vec2{0, uvScale[1]}, n)
	m.addTriangle(i0, i1, i2)
	m.addTriangle(i0, i2, i3)
}

// NewPlane is the 2x2 square in the XZ plane facing +Y.
func NewPlane() *MeshData {
	m := &MeshData{}
	m.addQuad(mgl32.Vec3{}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec2{1, 1})
	return m
}

// NewBox is the unit cube centered on the origin.
func NewBox() *MeshData {
	m := &MeshData{}
	faces := []struct{ n, u, v mgl32.Vec3 }{
		{mgl32.Vec3{0.5, 0, 0}, mgl32.Vec3{0, 0, -0.5}, mgl32.Vec3{0, 0.5, 0}},
		{mgl32.Vec3{-0.5, 0, 0}, mgl32.Vec3{0, 0, 0.5}, mgl32.Vec3{0, 0.5, 0}},
		{mgl32.Vec3{0, 0.5, 0}, mgl32.Vec3{0.5, 0, 0}, mgl32.Vec3{0, 0, -0.5}},
		{mgl32.Vec3{0, -0.5, 0}, mgl32.Vec3{0.5, 0, 0}, mgl32.Vec3{0, 0, 0.5}},
		{mgl32.Vec3{0, 0, 0.5}, mgl32.Vec3{0.5, 0, 0}, mgl32.Vec3{0, 0.5, 0}},
		{mgl32.Vec3{0, 0, -0.5}, mgl32.Vec3{-0.5, 0, 0}, mgl32.Vec3{0, 0.5, 0}},
	}
	for _, f := range faces {
		m.addQuad(f.n, f.u, f.v, mgl32.Vec2{1, 1})
	}
	return m
}

// NewFrustum is a capped cone section from y=0 (radius bottom) to y=1
// (radius top). A zero radius drops that cap.
func NewFrustum(bottom, top float32, segments int) *MeshData {
	m := &MeshData{}
	slope := bottom - top

	var lower, upper []uint32
	for i := 0; i <= segments; i++ {
		frac := float32(i) / float32(segments)
		theta := float64(frac) * 2 * math.Pi
		cos, sin := float32(math.Cos(theta)), float32(math.Sin(theta))
		n := mgl32.Vec3{cos, slope, sin}.Normalize()
		lower = append(lower, m.addVertex(mgl32.Vec3{bottom * cos, 0, bottom * sin}, mgl32.Vec2{frac, 0}, n))
		upper = append(upper, m.addVertex(mgl32.Vec3{top * cos, 1, top * sin}, mgl32.Vec2{frac, 1}, n))
	}
	for i := 0; i < segments; i++ {
		m.addTriangle(lower[i], upper[i], lower[i+1])
		m.addTriangle(lower[i+1], upper[i], upper[i+1])
	}

	if top > 0 {
		m.addCap(top, 1, segments, true)
	}
	if bottom > 0 {
		m.addCap(bottom, 0, segments, false)
	}
	return m
}

func (m *MeshData) addCap(radius, y float32, segments int, up bool) {
	n := mgl32.Vec3{0, -1, 0}
	if up {
		n = mgl32.Vec3{0, 1, 0}
	}
	center := m.addVertex(mgl32.Vec3{0, y, 0}, mgl32.Vec2{0.5, 0.5}, n)
	ring := make([]uint32, segments)
	for i := range ring {
		theta := float64(i) / float64(segments) * 2 * math.Pi
		cos, sin := float32(math.Cos(theta)), float32(math.Sin(theta))
		ring[i] = m.addVertex(mgl32.Vec3{radius * cos, y, radius * sin}, mgl32.Vec2{0.5 + 0.5*cos, 0.5 + 0.5*sin}, n)
	}
	for i := range ring {
		a, b := ring[i], ring[(i+1)%segments]
		if up {
			m.addTriangle(center, b, a)
		} else {
			m.addTriangle(center, a, b)
		}
	}
}

func NewCylinder() *MeshData {
	return NewFrustum(1, 1, circleSegments)
}

func NewTaperedCylinder() *MeshData {
	return NewFrustum(1, taperedTopRadius, circleSegments)
}

// newSphere builds the unit sphere. maxPhi limits it to a cap from the north
// pole; math.Pi is the whole sphere.
func newSphere(stacks, slices int, maxPhi float64) *MeshData {
	m := &MeshData{}
	row := slices + 1
	for i := 0; i <= stacks; i++ {
		phi := float64(i) / float64(stacks) * maxPhi
		for j := 0; j <= slices; j++ {
			theta := float64(j) / float64(slices) * 2 * math.Pi
			p := mgl32.Vec3{
				float32(math.Sin(phi) * math.Cos(theta)),
				float32(math.Cos(phi)),
				float32(math.Sin(phi) * math.Sin(theta)),
			}
			uv := mgl32.Vec2{float32(j) / float32(slices), 1 - float32(phi/math.Pi)}
			m.addVertex(p, uv, p.Normalize())
		}
	}
	for i := 0; i < stacks; i++ {
		for j := 0; j < slices; j++ {
			a := uint32(i*row + j)
			b := a + uint32(row)
			m.addTriangle(b, a, b+1)
			m.addTriangle(b+1, a, a+1)
		}
	}
	return m
}

func NewSphere() *MeshData {
	return newSphere(sphereStacks, circleSegments, math.Pi)
}

// NewHalfSphere is the upper hemisphere closed at y=0.
func NewHalfSphere() *MeshData {
	m := newSphere(sphereStacks/2, circleSegments, math.Pi/2)
	m.addCap(1, 0, circleSegments, false)
	return m
}

// newTorus sweeps a tube around the Z axis by sweep radians, starting at +X.
func newTorus(sweep float64, segments int) *MeshData {
	m := &MeshData{}
	row := torusTubeSegs + 1
	for i := 0; i <= segments; i++ {
		theta := float64(i) / float64(segments) * sweep
		ct, st := math.Cos(theta), math.Sin(theta)
		for j := 0; j <= torusTubeSegs; j++ {
			phi := float64(j) / float64(torusTubeSegs) * 2 * math.Pi
			cp, sp := math.Cos(phi), math.Sin(phi)
			n := mgl32.Vec3{float32(cp * ct), float32(cp * st), float32(sp)}
			ring := torusMajorRadius + torusMinorRadius*cp
			p := mgl32.Vec3{float32(ring * ct), float32(ring * st), float32(torusMinorRadius * sp)}
			uv := mgl32.Vec2{float32(i) / float32(segments), float32(j) / float32(torusTubeSegs)}
			m.addVertex(p, uv, n)
		}
	}
	for i := 0; i < segments; i++ {
		for j := 0; j < torusTubeSegs; j++ {
			a := uint32(i*row + j)
			aTheta := a + uint32(row)
			m.addTriangle(a, aTheta, a+1)
			m.addTriangle(aTheta, aTheta+1, a+1)
		}
	}
	return m
}

func NewTorus() *MeshData {
	return newTorus(2*math.Pi, circleSegments)
}

func NewHalfTorus() *MeshData {
	return newTorus(math.Pi, circleSegments/2)
}

// Generate builds the geometry for a shape.
func Generate(s Shape) *MeshData {
	switch s {
	case PlaneShape:
		return NewPlane()
	case BoxShape:
		return NewBox()
	case CylinderShape:
		return NewCylinder()
	case TaperedCylinderShape:
		return NewTaperedCylinder()
	case SphereShape:
		return NewSphere()
	case HalfSphereShape:
		return NewHalfSphere()
	case TorusShape:
		return NewTorus()
	case HalfTorusShape:
		return NewHalfTorus()
	default:
		return nil
	}
}
