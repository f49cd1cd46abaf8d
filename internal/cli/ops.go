package cli

import (
	"math"
	"slices"
	"strings"
)

// Element-wise operators accepted by --op and zip.op.
const (
	opAdd = "add"
	opSub = "sub"
	opMul = "mul"
	opMin = "min"
	opMax = "max"
)

var combiners = map[string]func(x, y float64) float64{
	opAdd: func(x, y float64) float64 { return x + y },
	opSub: func(x, y float64) float64 { return x - y },
	opMul: func(x, y float64) float64 { return x * y },
	opMin: math.Min,
	opMax: math.Max,
}

// opNames lists the operator names in a stable order for messages.
func opNames() string {
	names := make([]string, 0, len(combiners))
	for name := range combiners {
		names = append(names, name)
	}
	slices.Sort(names)
	return strings.Join(names, ", ")
}
