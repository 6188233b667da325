package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/linework/core"
	"github.com/katalvlaran/linework/distribute"
	"github.com/katalvlaran/linework/extrude"
)

// ErrUnknownConfigKey is returned when a config file sets a key no command reads.
var ErrUnknownConfigKey = errors.New("cli: unknown config key")

// Config mirrors the TOML config file. Absent keys keep their defaults.
//
//	[map]
//	stitch_epsilon = 1e-6
//	loops = false
//
//	[distribute]
//	kind = 2014
//	count = 8
//
//	[extrude]
//	distance = 64
//	copy = false
//	angle = 0
//	arc_angle = 0
//	radial_vertex_select = false
type Config struct {
	Map        MapConfig        `toml:"map"`
	Distribute DistributeConfig `toml:"distribute"`
	Extrude    ExtrudeConfig    `toml:"extrude"`
}

// MapConfig controls how map documents are loaded.
type MapConfig struct {
	StitchEpsilon float64 `toml:"stitch_epsilon"`
	Loops         bool    `toml:"loops"`
}

// DistributeConfig holds distribute defaults.
type DistributeConfig struct {
	Kind  int `toml:"kind"`
	Count int `toml:"count"`
}

// ExtrudeConfig holds extrude defaults.
type ExtrudeConfig struct {
	Distance           float64 `toml:"distance"`
	Copy               bool    `toml:"copy"`
	Angle              float64 `toml:"angle"`
	ArcAngle           float64 `toml:"arc_angle"`
	RadialVertexSelect bool    `toml:"radial_vertex_select"`
}

// DefaultConfig returns the library defaults.
func DefaultConfig() Config {
	d := distribute.DefaultOptions()
	e := extrude.DefaultOptions()

	return Config{
		Map:        MapConfig{StitchEpsilon: core.DefaultStitchEpsilon},
		Distribute: DistributeConfig{Kind: d.Kind, Count: d.Count},
		Extrude: ExtrudeConfig{
			Distance:           e.Distance,
			Copy:               e.Copy,
			Angle:              e.Angle,
			ArcAngle:           e.ArcAngle,
			RadialVertexSelect: e.RadialVertexSelect,
		},
	}
}

// LoadConfig decodes the TOML file at path over DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("%w in %s: %s", ErrUnknownConfigKey, path, strings.Join(keys, ", "))
	}

	return cfg, nil
}

// MapOptions converts the [map] table to store options.
func (m MapConfig) MapOptions() []core.MapOption {
	opts := []core.MapOption{core.WithStitchEpsilon(m.StitchEpsilon)}
	if m.Loops {
		opts = append(opts, core.WithLoops())
	}

	return opts
}

// distributeFlags are the command-line overrides for DistributeConfig.
type distributeFlags struct {
	kind  int
	count int
}

func (f *distributeFlags) register(fs *pflag.FlagSet) {
	fs.IntVar(&f.kind, "kind", distribute.DefaultKind, "marker kind")
	fs.IntVarP(&f.count, "count", "n", distribute.DefaultCount, "number of markers")
}

// options merges cfg with the flags the user actually set.
func (f *distributeFlags) options(fs *pflag.FlagSet, cfg DistributeConfig) []distribute.Option {
	if fs.Changed("kind") {
		cfg.Kind = f.kind
	}
	if fs.Changed("count") {
		cfg.Count = f.count
	}

	return []distribute.Option{distribute.WithKind(cfg.Kind), distribute.WithCount(cfg.Count)}
}

// extrudeFlags are the command-line overrides for ExtrudeConfig.
type extrudeFlags struct {
	distance float64
	copy     bool
	angle    float64
	arcAngle float64
	radial   bool
}

func (f *extrudeFlags) register(fs *pflag.FlagSet) {
	fs.Float64VarP(&f.distance, "distance", "d", extrude.DefaultDistance, "signed extrusion distance")
	fs.BoolVar(&f.copy, "copy", false, "copy the selection and stitch it to the original")
	fs.Float64Var(&f.angle, "angle", 0, "direction rotation in degrees")
	fs.Float64Var(&f.arcAngle, "arc-angle", 0, "signed arc angle in degrees spanned by each section")
	fs.BoolVar(&f.radial, "radial", false, "use an isolated selected vertex as radial origin")
}

func (f *extrudeFlags) options(fs *pflag.FlagSet, cfg ExtrudeConfig) extrude.Options {
	if fs.Changed("distance") {
		cfg.Distance = f.distance
	}
	if fs.Changed("copy") {
		cfg.Copy = f.copy
	}
	if fs.Changed("angle") {
		cfg.Angle = f.angle
	}
	if fs.Changed("arc-angle") {
		cfg.ArcAngle = f.arcAngle
	}
	if fs.Changed("radial") {
		cfg.RadialVertexSelect = f.radial
	}

	return extrude.Options{
		Distance:           cfg.Distance,
		Copy:               cfg.Copy,
		Angle:              cfg.Angle,
		ArcAngle:           cfg.ArcAngle,
		RadialVertexSelect: cfg.RadialVertexSelect,
	}
}

// apply turns resolved options back into functional options.
func apply(o extrude.Options) []extrude.Option {
	return []extrude.Option{
		extrude.WithDistance(o.Distance),
		extrude.WithCopy(o.Copy),
		extrude.WithAngle(o.Angle),
		extrude.WithArcAngle(o.ArcAngle),
		extrude.WithRadialVertexSelect(o.RadialVertexSelect),
	}
}
