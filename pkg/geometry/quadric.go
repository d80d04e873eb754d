package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Quadric represents the general quadric surface
//
//	Ax² + By² + Cz² + Dxy + Exz + Fyz + Gx + Hy + Iz + J = 0
//
// clipped to an axis-aligned box anchored at Reference. A zero Length, Width
// or Height leaves the surface unbounded along x, y or z respectively.
type Quadric struct {
	A, B, C, D, E, F, G, H, I, J float64

	Reference core.Vec3 // Minimum corner of the clipping box
	Length    float64   // Extent along x
	Width     float64   // Extent along y
	Height    float64   // Extent along z
	Material
}

// QuadricCoefficients lists the ten surface coefficients A through J
type QuadricCoefficients [10]float64

// NewQuadric creates a new general quadric surface
func NewQuadric(coeffs QuadricCoefficients, reference core.Vec3, length, width, height float64, material Material) *Quadric {
	return &Quadric{
		A: coeffs[0], B: coeffs[1], C: coeffs[2], D: coeffs[3], E: coeffs[4],
		F: coeffs[5], G: coeffs[6], H: coeffs[7], I: coeffs[8], J: coeffs[9],
		Reference: reference,
		Length:    length,
		Width:     width,
		Height:    height,
		Material:  material,
	}
}

// Intersect substitutes the ray into the surface equation and returns the smallest
// positive root whose point lies within the clipping box
func (q *Quadric) Intersect(ray core.Ray) float64 {
	o := ray.Origin
	d := ray.Direction

	a := q.A*d.X*d.X + q.B*d.Y*d.Y + q.C*d.Z*d.Z +
		q.D*d.X*d.Y + q.E*d.X*d.Z + q.F*d.Y*d.Z

	b := 2*(q.A*d.X*o.X+q.B*d.Y*o.Y+q.C*d.Z*o.Z) +
		q.D*(d.X*o.Y+d.Y*o.X) + q.E*(d.X*o.Z+d.Z*o.X) + q.F*(d.Y*o.Z+d.Z*o.Y) +
		q.G*d.X + q.H*d.Y + q.I*d.Z

	c := q.A*o.X*o.X + q.B*o.Y*o.Y + q.C*o.Z*o.Z +
		q.D*o.X*o.Y + q.E*o.X*o.Z + q.F*o.Y*o.Z +
		q.G*o.X + q.H*o.Y + q.I*o.Z + q.J

	// Degenerate quadratic: the ray runs parallel to the surface's quadratic part,
	// leaving the linear equation bt + c = 0
	if math.Abs(a) < core.Epsilon {
		if math.Abs(b) < core.Epsilon {
			return core.NoHit
		}
		return q.acceptRoot(ray, -c/b)
	}

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return core.NoHit
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)
	if t1 > t2 {
		t1, t2 = t2, t1
	}

	if t := q.acceptRoot(ray, t1); t > 0 {
		return t
	}
	return q.acceptRoot(ray, t2)
}

// acceptRoot returns t if it is a forward hit inside the clipping box
func (q *Quadric) acceptRoot(ray core.Ray, t float64) float64 {
	if t <= 0 || !q.withinBounds(ray.At(t)) {
		return core.NoHit
	}
	return t
}

// withinBounds reports whether a point lies inside the clipping box
func (q *Quadric) withinBounds(p core.Vec3) bool {
	if q.Length != 0 && (p.X < q.Reference.X || p.X > q.Reference.X+q.Length) {
		return false
	}
	if q.Width != 0 && (p.Y < q.Reference.Y || p.Y > q.Reference.Y+q.Width) {
		return false
	}
	if q.Height != 0 && (p.Z < q.Reference.Z || p.Z > q.Reference.Z+q.Height) {
		return false
	}
	return true
}

// NormalAt returns the normalized gradient of the surface equation
func (q *Quadric) NormalAt(point core.Vec3) core.Vec3 {
	x, y, z := point.X, point.Y, point.Z
	return core.NewVec3(
		2*q.A*x+q.D*y+q.E*z+q.G,
		2*q.B*y+q.D*x+q.F*z+q.H,
		2*q.C*z+q.E*x+q.F*y+q.I,
	).Normalize()
}
