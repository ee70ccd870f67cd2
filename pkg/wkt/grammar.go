// Package wkt implements the Well-Known Text subset described in the
// external interfaces design: POINT, LINESTRING, POLYGON, MULTIPOINT,
// MULTILINESTRING, MULTIPOLYGON, GEOMETRYCOLLECTION and their Z-tagged
// 3D variants, plus a writer that emits trimmed numerics.
//
// Parsing is grammar-driven with participle rather than hand-rolled
// recursive descent: each WKT production maps directly onto a Go struct
// with an EBNF-flavored struct tag, the same style used for the graph
// expression grammar this package borrows its shape from.
package wkt

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var wktLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Number", Pattern: `[-+]?(\d+\.\d*|\.\d+|\d+)([eE][-+]?\d+)?`},
	{Name: "Ident", Pattern: `[A-Za-z][A-Za-z0-9_]*`},
	{Name: "Punct", Pattern: `[(),]`},
	{Name: "whitespace", Pattern: `\s+`},
})

// coordNode captures one WKT coordinate: two or three numbers separated
// by whitespace. Z is nil for a 2D coordinate.
type coordNode struct {
	X float64  `@Number`
	Y float64  `@Number`
	Z *float64 `@Number?`
}

// coordSeqNode captures a parenthesized, comma-separated coordinate
// list: the shape shared by a LineString body, a Polygon ring, and a
// single MultiPoint element.
type coordSeqNode struct {
	Coords []*coordNode `"(" @@ ("," @@)* ")"`
}

type pointNode struct {
	Z     bool       `"POINT" ( @"Z" )?`
	Coord *coordNode `"(" @@ ")"`
}

type lineStringNode struct {
	Z   bool          `"LINESTRING" ( @"Z" )?`
	Seq *coordSeqNode `@@`
}

type polygonNode struct {
	Z     bool            `"POLYGON" ( @"Z" )?`
	Rings []*coordSeqNode `"(" @@ ("," @@)* ")"`
}

type multiPointNode struct {
	Z      bool            `"MULTIPOINT" ( @"Z" )?`
	Points []*coordSeqNode `"(" @@ ("," @@)* ")"`
}

type multiLineStringNode struct {
	Z     bool            `"MULTILINESTRING" ( @"Z" )?`
	Lines []*coordSeqNode `"(" @@ ("," @@)* ")"`
}

type polygonRingsNode struct {
	Rings []*coordSeqNode `"(" @@ ("," @@)* ")"`
}

type multiPolygonNode struct {
	Z        bool                `"MULTIPOLYGON" ( @"Z" )?`
	Polygons []*polygonRingsNode `"(" @@ ("," @@)* ")"`
}

// geometryNode is the union production: exactly one alternative matches.
type geometryNode struct {
	Point              *pointNode              `  @@`
	LineString         *lineStringNode         `| @@`
	Polygon            *polygonNode            `| @@`
	MultiPoint         *multiPointNode         `| @@`
	MultiLineString    *multiLineStringNode    `| @@`
	MultiPolygon       *multiPolygonNode       `| @@`
	GeometryCollection *geometryCollectionNode `| @@`
}

type geometryCollectionNode struct {
	Geoms []*geometryNode `"GEOMETRYCOLLECTION" "(" @@ ("," @@)* ")"`
}

var wktParser = participle.MustBuild[geometryNode](
	participle.Lexer(wktLexer),
	participle.Elide("whitespace"),
	participle.UseLookahead(2),
)
