package surface

import (
	"fmt"
	"sort"

	"github.com/atomforge/atomforge/citation"
	"github.com/atomforge/atomforge/lattice"
	"github.com/atomforge/atomforge/structure"
)

// Builder dispatches named surface generators and records attribution.
// The zero value is not usable; construct with NewBuilder.
type Builder struct {
	citations  *citation.Registry
	generators map[string]Generator
}

// BuilderOption configures a Builder at construction time.
type BuilderOption func(*Builder)

// WithCitations redirects attribution records to r instead of the
// process-wide default registry.
func WithCitations(r *citation.Registry) BuilderOption {
	return func(b *Builder) { b.citations = r }
}

// WithGenerator registers gen under name, adding to or overriding the
// built-in generator table.
func WithGenerator(name string, gen Generator) BuilderOption {
	return func(b *Builder) { b.generators[name] = gen }
}

// NewBuilder returns a Builder with the built-in generator table and the
// default citation registry, then applies opts.
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{
		citations:  citation.Default(),
		generators: defaultGenerators(),
	}
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Names returns the registered surface types, sorted.
func (b *Builder) Names() []string {
	names := make([]string, 0, len(b.generators))
	for name := range b.generators {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Surface builds the named surface type for a species symbol. A nil
// opts selects DefaultOptions. Unknown types fail with
// ErrUnknownSurfaceType naming the type; nothing is registered in the
// citation registry on any failure.
func (b *Builder) Surface(symbol, surfaceType string, opts *Options) (*structure.Structure, error) {
	cfg := DefaultOptions()
	if opts != nil {
		cfg = *opts
	}
	gen, ok := b.generators[surfaceType]
	if !ok {
		return nil, fmt.Errorf("surface: surface type %q: %w", surfaceType, ErrUnknownSurfaceType)
	}

	slab, err := gen(GenParams{
		Symbol:          symbol,
		Size:            cfg.Size,
		LatticeConstant: cfg.LatticeConstant,
		C:               cfg.C,
		Thickness:       cfg.Thickness,
		Kind:            cfg.Kind,
		Root:            cfg.Root,
		Orthogonal:      cfg.Orthogonal,
		Vacuum:          cfg.Vacuum,
		Centered:        cfg.Center,
	})
	if err != nil {
		return nil, err
	}

	if !cfg.Center {
		cell := slab.Cell()
		cell[2][2] = slab.MaxZ() + cfg.Vacuum
		slab.SetCell(cell)
	}
	slab.SetPBC(cfg.PBC)
	b.citations.Add(lattice.Publication())

	return slab, nil
}

// SurfaceHKL cuts a slab with surface normal (h k l) out of bulk, then
// applies the vacuum policy: cell height MaxZ + Vacuum, with the slab
// shifted to the cell midplane when Center is set. Size, C, Thickness,
// Kind, Root and Orthogonal in opts are ignored here; layers counts
// repeats of the re-based surface cell.
func (b *Builder) SurfaceHKL(bulk *structure.Structure, hkl [3]int, layers int, opts *Options) (*structure.Structure, error) {
	cfg := DefaultOptions()
	if opts != nil {
		cfg = *opts
	}

	slab, err := lattice.SurfaceHKL(bulk, hkl, layers)
	if err != nil {
		return nil, err
	}

	zMax := slab.MaxZ()
	cell := slab.Cell()
	cell[2][2] = zMax + cfg.Vacuum
	slab.SetCell(cell)
	if cfg.Center {
		slab.Translate([3]float64{
			0.5 * cell[2][0],
			0.5 * cell[2][1],
			0.5*cell[2][2] - zMax/2,
		})
	}
	slab.SetPBC(cfg.PBC)
	b.citations.Add(lattice.Publication())

	return slab, nil
}

var defaultBuilder = NewBuilder()

// Surface builds a named surface type with the package default Builder.
func Surface(symbol, surfaceType string, opts *Options) (*structure.Structure, error) {
	return defaultBuilder.Surface(symbol, surfaceType, opts)
}

// SurfaceHKL cuts an arbitrary-index slab with the package default
// Builder.
func SurfaceHKL(bulk *structure.Structure, hkl [3]int, layers int, opts *Options) (*structure.Structure, error) {
	return defaultBuilder.SurfaceHKL(bulk, hkl, layers, opts)
}
