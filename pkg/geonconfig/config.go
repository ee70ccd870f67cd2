// Package geonconfig holds the per-invocation options every geoncore
// command validates before touching a geometry: noding tolerance and
// policy, snap strategy, and wire format. Options are plain structs,
// loadable from an optional TOML file and always overridable by flags,
// following the same per-invocation, no-persisted-state model the rest
// of the toolkit uses.
package geonconfig

import (
	"github.com/BurntSushi/toml"

	"github.com/geoncore/geoncore/pkg/geonerrors"
	"github.com/geoncore/geoncore/pkg/noding"
	"github.com/geoncore/geoncore/pkg/snap"
)

// Format is a wire format for geometry/graph I/O.
type Format string

const (
	FormatWKT Format = "wkt"
	FormatTGF Format = "tgf"
)

// NodingPolicy selects which Noder implementation an operation uses.
type NodingPolicy string

const (
	NodingExact NodingPolicy = "exact"
	NodingSnap  NodingPolicy = "snap"
)

// Options is the full set of per-invocation knobs. Zero value is
// invalid; call ValidateAndSetDefaults before use.
type Options struct {
	Tolerance    float64          `toml:"tolerance"`
	Noding       NodingPolicy     `toml:"noding"`
	SnapStrategy snap.Strategy    `toml:"snap_strategy"`
	Format       Format           `toml:"format"`
	MaxPasses    int              `toml:"max_passes"`
	Verbose      bool             `toml:"-"`
}

// Default returns the toolkit's baseline options: exact noding, no
// tolerance, WKT in and out.
func Default() Options {
	o := Options{}
	_ = o.ValidateAndSetDefaults()
	return o
}

// ValidateAndSetDefaults fills in every unset field and rejects
// combinations that cannot be satisfied, such as a negative tolerance.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Tolerance < 0 {
		return geonerrors.New(geonerrors.ErrCodeInvalidGeometry, "tolerance must be >= 0, got %v", o.Tolerance)
	}
	if o.Noding == "" {
		if o.Tolerance > 0 {
			o.Noding = NodingSnap
		} else {
			o.Noding = NodingExact
		}
	}
	if o.Noding == NodingSnap && o.Tolerance <= 0 {
		return geonerrors.New(geonerrors.ErrCodeInvalidGeometry, "snap noding requires tolerance > 0")
	}
	if o.SnapStrategy == "" {
		o.SnapStrategy = snap.StrategyGrid
	}
	if o.Format == "" {
		o.Format = FormatWKT
	}
	if o.MaxPasses <= 0 {
		o.MaxPasses = noding.MaxPasses
	}
	return nil
}

// Noder builds the Noder implementation these options describe.
func (o Options) Noder() noding.Noder {
	if o.Noding == NodingSnap {
		return noding.SnappingNoder{Epsilon: o.Tolerance, MaxPasses: o.MaxPasses}
	}
	return noding.ExactNoder{MaxPasses: o.MaxPasses}
}

// Load reads Options from a TOML file at path and validates the result.
func Load(path string) (Options, error) {
	var o Options
	if _, err := toml.DecodeFile(path, &o); err != nil {
		return Options{}, geonerrors.Wrap(geonerrors.ErrCodeIO, err, "loading config %q", path)
	}
	if err := o.ValidateAndSetDefaults(); err != nil {
		return Options{}, err
	}
	return o, nil
}
