package picture

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Op is a named whole-picture operation.
type Op func(p *Picture) error

// DefaultEdgeDistance is used by "edge_detection" when no distance is given.
const DefaultEdgeDistance = 15

func simple(fn func(*Picture)) Op {
	return func(p *Picture) error {
		fn(p)
		return nil
	}
}

var operations = map[string]Op{
	"zero_blue":                       simple((*Picture).ZeroBlue),
	"keep_only_blue":                  simple((*Picture).KeepOnlyBlue),
	"negate":                          simple((*Picture).Negate),
	"grayscale":                       simple((*Picture).Grayscale),
	"mirror_vertical":                 simple((*Picture).MirrorVertical),
	"mirror_vertical_right_to_left":   simple((*Picture).MirrorVerticalRightToLeft),
	"mirror_horizontal_top_to_bottom": simple((*Picture).MirrorHorizontalTopToBottom),
	"mirror_horizontal_bottom_to_top": simple((*Picture).MirrorHorizontalBottomToTop),
	"mirror_temple":                   (*Picture).MirrorTemple,
	"edge_detection":                  edgeDetection(DefaultEdgeDistance),
}

func edgeDetection(dist int) Op {
	return func(p *Picture) error {
		p.EdgeDetection(dist)
		return nil
	}
}

// OperationNames lists the registered operation names in sorted order.
func OperationNames() []string {
	names := make([]string, 0, len(operations))
	for name := range operations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup resolves an operation name. "edge_detection" accepts an optional
// distance argument written as "edge_detection:<n>".
func Lookup(name string) (Op, error) {
	base, arg, hasArg := strings.Cut(name, ":")
	if hasArg {
		if base != "edge_detection" {
			return nil, fmt.Errorf("%w: %q takes no argument", ErrUnknownOperation, base)
		}
		dist, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("%w: bad edge distance %q", ErrUnknownOperation, arg)
		}
		return edgeDetection(dist), nil
	}

	op, ok := operations[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, name)
	}
	return op, nil
}

// Apply runs the named operations on p in order. All names are resolved
// before the first one runs, so an unknown name leaves p untouched.
func (p *Picture) Apply(names ...string) error {
	ops := make([]Op, len(names))
	for i, name := range names {
		op, err := Lookup(name)
		if err != nil {
			return err
		}
		ops[i] = op
	}
	for i, op := range ops {
		if err := op(p); err != nil {
			return fmt.Errorf("%s: %w", names[i], err)
		}
	}
	return nil
}
