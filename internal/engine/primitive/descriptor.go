// Released under an MIT license. See LICENSE.

package primitive

import (
	"fmt"
	"sort"
	"strings"
)

// Annotation is the static declaration of a primitive, as written in the
// catalog's declaration file.
type Annotation struct {
	Name                  string `yaml:"name"`
	NeedsSelf             bool   `yaml:"needs_self"`
	Unsafe                bool   `yaml:"unsafe"`
	LowerFixnumParameters []int  `yaml:"lower_fixnum_parameters"`
}

// Descriptor is the immutable metadata for one registered primitive.
type Descriptor struct {
	lowered   map[int]struct{}
	name      string
	needsSelf bool
	unsafe    bool
}

// Describe creates a descriptor from the annotation a.
// Lowered positions are counted after the receiver is excluded.
func Describe(a Annotation) (*Descriptor, error) {
	if a.Name == "" {
		return nil, fmt.Errorf("primitive declared without a name")
	}

	d := &Descriptor{
		lowered:   make(map[int]struct{}, len(a.LowerFixnumParameters)),
		name:      a.Name,
		needsSelf: a.NeedsSelf,
		unsafe:    a.Unsafe,
	}

	for _, n := range a.LowerFixnumParameters {
		if n < 0 {
			return nil, fmt.Errorf("%s: negative lowered position %d", a.Name, n)
		}

		if _, dup := d.lowered[n]; dup {
			return nil, fmt.Errorf("%s: lowered position %d listed twice", a.Name, n)
		}

		d.lowered[n] = struct{}{}
	}

	return d, nil
}

// Lowered returns the lowered positions in ascending order.
func (d *Descriptor) Lowered() []int {
	ns := make([]int, 0, len(d.lowered))
	for n := range d.lowered {
		ns = append(ns, n)
	}

	sort.Ints(ns)

	return ns
}

// Lowers returns true if position n is lowered.
func (d *Descriptor) Lowers(n int) bool {
	_, ok := d.lowered[n]

	return ok
}

// Name returns the primitive's name.
func (d *Descriptor) Name() string {
	return d.name
}

// NeedsSelf returns true if the primitive takes the receiver as its first argument.
func (d *Descriptor) NeedsSelf() bool {
	return d.needsSelf
}

// Unsafe returns true if the primitive is gated by the unsafe-operations policy.
func (d *Descriptor) Unsafe() bool {
	return d.unsafe
}

func (d *Descriptor) String() string {
	flags := []string{}

	if d.needsSelf {
		flags = append(flags, "self")
	}

	if d.unsafe {
		flags = append(flags, "unsafe")
	}

	if l := d.Lowered(); len(l) > 0 {
		flags = append(flags, fmt.Sprintf("lower%v", l))
	}

	return d.name + " [" + strings.Join(flags, " ") + "]"
}
