// Released under an MIT license. See LICENSE.

// Package catalog provides the registry of primitive operations.
//
// Declarations are read from YAML. Each declaration is paired by name with
// an implementation and the pair is checked once, when the catalog is
// loaded. A catalog never changes after it is loaded.
package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/michaelmacinnis/prim/internal/engine/primitive"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// T (catalog) maps primitive names to their constructors.
type T struct {
	constructors map[string]*primitive.Constructor
}

type catalog = T

// Load reads the declarations in decls and pairs each with its
// implementation in impls. Every defect found is reported.
func Load(log *zap.SugaredLogger, decls []byte, impls map[string]primitive.Factory) (*catalog, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	annotations, err := parse(decls)
	if err != nil {
		return nil, err
	}

	c := &catalog{constructors: make(map[string]*primitive.Constructor, len(annotations))}

	for _, a := range annotations {
		if _, dup := c.constructors[a.Name]; dup {
			err = multierr.Append(err, fmt.Errorf("%s: declared more than once", a.Name))

			continue
		}

		d, derr := primitive.Describe(a)
		if derr != nil {
			err = multierr.Append(err, derr)

			continue
		}

		f, ok := impls[a.Name]
		if !ok {
			err = multierr.Append(err, fmt.Errorf("%s: no implementation", a.Name))

			continue
		}

		p, perr := primitive.New(d, f)
		if perr != nil {
			err = multierr.Append(err, perr)

			continue
		}

		c.constructors[a.Name] = p

		log.Debugw("registered primitive",
			"name", a.Name,
			"signature", p.Signature().String(),
			"arity", p.Arity(),
		)
	}

	for _, name := range sorted(impls) {
		if !declared(annotations, name) {
			err = multierr.Append(err, fmt.Errorf("%s: implemented but not declared", name))
		}
	}

	if err != nil {
		return nil, err
	}

	log.Infow("catalog loaded", "primitives", len(c.constructors))

	return c, nil
}

// MustLoad is Load for catalogs built into the program. It panics on error.
func MustLoad(log *zap.SugaredLogger, decls []byte, impls map[string]primitive.Factory) *catalog {
	c, err := Load(log, decls, impls)
	if err != nil {
		panic(err.Error())
	}

	return c
}

// Lookup returns the constructor for the primitive name.
func (c *catalog) Lookup(name string) (*primitive.Constructor, bool) {
	p, ok := c.constructors[name]

	return p, ok
}

// Names returns the names of all registered primitives in order.
func (c *catalog) Names() []string {
	names := make([]string, 0, len(c.constructors))
	for name := range c.constructors {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

func declared(as []primitive.Annotation, name string) bool {
	for _, a := range as {
		if a.Name == name {
			return true
		}
	}

	return false
}

func parse(decls []byte) ([]primitive.Annotation, error) {
	dec := yaml.NewDecoder(bytes.NewReader(decls))
	dec.KnownFields(true)

	var doc struct {
		Primitives []primitive.Annotation `yaml:"primitives"`
	}

	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("declarations: %w", err)
	}

	return doc.Primitives, nil
}

func sorted(impls map[string]primitive.Factory) []string {
	names := make([]string, 0, len(impls))
	for name := range impls {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
