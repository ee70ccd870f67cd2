package geom

import "fmt"

func errInvalidRing(reason string) error {
	return fmt.Errorf("geom: invalid LinearRing: %s", reason)
}

// Kind tags the concrete variant of a Geometry value.
type Kind int

const (
	KindPoint Kind = iota
	KindLineString
	KindLinearRing
	KindPolygon
	KindMultiPoint
	KindMultiLineString
	KindMultiPolygon
	KindGeometryCollection
)

// String returns the WKT type keyword for the kind.
func (k Kind) String() string {
	switch k {
	case KindPoint:
		return "POINT"
	case KindLineString:
		return "LINESTRING"
	case KindLinearRing:
		return "LINEARRING"
	case KindPolygon:
		return "POLYGON"
	case KindMultiPoint:
		return "MULTIPOINT"
	case KindMultiLineString:
		return "MULTILINESTRING"
	case KindMultiPolygon:
		return "MULTIPOLYGON"
	case KindGeometryCollection:
		return "GEOMETRYCOLLECTION"
	default:
		return "UNKNOWN"
	}
}

// Geometry is the capability interface every geometry variant implements,
// the "tagged variant with a capability interface" from the design notes:
// callers switch on Kind() rather than relying on virtual dispatch.
type Geometry interface {
	Kind() Kind
	// Coordinates returns every coordinate contributed by this geometry,
	// in a deterministic per-kind order (see each type's doc comment).
	Coordinates() []Coordinate
	// Envelope returns the axis-aligned bounding box of the geometry.
	Envelope() Box
	// IsCollection reports whether this value contains child geometries
	// (Multi*/GeometryCollection) rather than being a leaf primitive.
	IsCollection() bool
}

// Point is a single coordinate.
type Point struct {
	C Coordinate
}

func NewPoint(c Coordinate) Point                { return Point{C: c} }
func (p Point) Kind() Kind                       { return KindPoint }
func (p Point) Coordinates() []Coordinate        { return []Coordinate{p.C} }
func (p Point) Envelope() Box                    { return EmptyBox().ExtendCoordinate(p.C) }
func (p Point) IsCollection() bool               { return false }

// LineString is an open coordinate sequence of at least 2 points.
type LineString struct {
	Coords CoordinateSequence
}

// NewLineString constructs a LineString. It panics if fewer than 2
// coordinates are given, per the §3 invariant.
func NewLineString(cs CoordinateSequence) LineString {
	if len(cs) < 2 {
		panic("geom: LineString requires at least 2 coordinates")
	}
	return LineString{Coords: cs}
}

func (l LineString) Kind() Kind                { return KindLineString }
func (l LineString) Coordinates() []Coordinate { return []Coordinate(l.Coords) }
func (l LineString) Envelope() Box             { return boxFromSequence(l.Coords) }
func (l LineString) IsCollection() bool        { return false }

// LinearRing is a closed coordinate sequence of at least 4 points with the
// first coordinate equal to the last.
type LinearRing struct {
	Coords CoordinateSequence
}

// NewLinearRing constructs a LinearRing, panicking if the §3 invariants
// (>= 4 coordinates, closed) are violated.
func NewLinearRing(cs CoordinateSequence) LinearRing {
	if len(cs) < 4 {
		panic("geom: LinearRing requires at least 4 coordinates")
	}
	if !cs[0].Equal(cs[len(cs)-1]) {
		panic("geom: LinearRing must be closed (first == last)")
	}
	return LinearRing{Coords: cs}
}

// NewLinearRingSafe is NewLinearRing without the panic, for callers
// (such as the polygonizer) assembling rings from computed data whose
// validity they would rather report as an error than assert.
func NewLinearRingSafe(cs CoordinateSequence) (LinearRing, error) {
	if len(cs) < 4 {
		return LinearRing{}, errInvalidRing("requires at least 4 coordinates")
	}
	if !cs[0].Equal(cs[len(cs)-1]) {
		return LinearRing{}, errInvalidRing("must be closed (first == last)")
	}
	return LinearRing{Coords: cs}, nil
}

func (r LinearRing) Kind() Kind                { return KindLinearRing }
func (r LinearRing) Coordinates() []Coordinate { return []Coordinate(r.Coords) }
func (r LinearRing) Envelope() Box             { return boxFromSequence(r.Coords) }
func (r LinearRing) IsCollection() bool        { return false }

// SignedArea returns the signed area of the ring via the shoelace
// formula; positive indicates counter-clockwise winding.
func (r LinearRing) SignedArea() float64 {
	var sum float64
	cs := r.Coords
	n := len(cs)
	for i := 0; i < n-1; i++ {
		sum += cs[i].X*cs[i+1].Y - cs[i+1].X*cs[i].Y
	}
	return sum / 2
}

// IsCCW reports whether the ring winds counter-clockwise.
func (r LinearRing) IsCCW() bool { return r.SignedArea() > 0 }

// Polygon is one shell ring plus zero or more hole rings. Holes must wind
// opposite to the shell and lie inside it (an invariant this package does
// not verify at construction time; the polygonizer is the code path that
// establishes it).
type Polygon struct {
	Shell LinearRing
	Holes []LinearRing
}

func NewPolygon(shell LinearRing, holes []LinearRing) Polygon {
	return Polygon{Shell: shell, Holes: holes}
}

func (p Polygon) Kind() Kind { return KindPolygon }

func (p Polygon) Coordinates() []Coordinate {
	out := append([]Coordinate{}, p.Shell.Coords...)
	for _, h := range p.Holes {
		out = append(out, h.Coords...)
	}
	return out
}

func (p Polygon) Envelope() Box      { return p.Shell.Envelope() }
func (p Polygon) IsCollection() bool { return false }

// multiBase factors the shared behavior of the Multi* collection types.
type multiBase[T Geometry] struct {
	Elems []T
}

func (m multiBase[T]) Coordinates() []Coordinate {
	var out []Coordinate
	for _, e := range m.Elems {
		out = append(out, e.Coordinates()...)
	}
	return out
}

func (m multiBase[T]) Envelope() Box {
	box := EmptyBox()
	for _, e := range m.Elems {
		box = box.Union(e.Envelope())
	}
	return box
}

func (m multiBase[T]) IsCollection() bool { return true }

// MultiPoint is a heterogeneous-free collection of Points.
type MultiPoint struct{ multiBase[Point] }

func NewMultiPoint(pts []Point) MultiPoint { return MultiPoint{multiBase[Point]{Elems: pts}} }
func (m MultiPoint) Kind() Kind            { return KindMultiPoint }

// MultiLineString is a collection of LineStrings.
type MultiLineString struct{ multiBase[LineString] }

func NewMultiLineString(ls []LineString) MultiLineString {
	return MultiLineString{multiBase[LineString]{Elems: ls}}
}
func (m MultiLineString) Kind() Kind { return KindMultiLineString }

// MultiPolygon is a collection of Polygons.
type MultiPolygon struct{ multiBase[Polygon] }

func NewMultiPolygon(ps []Polygon) MultiPolygon {
	return MultiPolygon{multiBase[Polygon]{Elems: ps}}
}
func (m MultiPolygon) Kind() Kind { return KindMultiPolygon }

// GeometryCollection is a heterogeneous, possibly nested collection.
type GeometryCollection struct {
	Elems []Geometry
}

func NewGeometryCollection(elems []Geometry) GeometryCollection {
	return GeometryCollection{Elems: elems}
}

func (g GeometryCollection) Kind() Kind { return KindGeometryCollection }

func (g GeometryCollection) Coordinates() []Coordinate {
	var out []Coordinate
	for _, e := range g.Elems {
		out = append(out, e.Coordinates()...)
	}
	return out
}

func (g GeometryCollection) Envelope() Box {
	box := EmptyBox()
	for _, e := range g.Elems {
		box = box.Union(e.Envelope())
	}
	return box
}

func (g GeometryCollection) IsCollection() bool { return true }
