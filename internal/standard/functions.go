package standard

import (
	d "github.com/specialistvlad/shadegrid/internal/descriptor"
)

// node pairs a function descriptor with its UI string table.
type node struct {
	fn      *d.FunctionDescriptor
	strings map[string]string
	hints   map[string]float64
}

func add() node {
	return node{
		fn: d.NewFunction(1, "Add", "Out = A + B;",
			d.NewParameter("A", d.TypeVector, d.In),
			d.NewParameter("B", d.TypeVector, d.In),
			d.NewParameter("Out", d.TypeVector, d.Out),
		),
		strings: map[string]string{
			"Category":               "Math, Basic",
			"Name.Synonyms":          "Addition, Sum, +, plus",
			"Tooltip":                "returns the sum of A and B",
			"Parameters.A.Tooltip":   "Input A",
			"Parameters.B.Tooltip":   "Input B",
			"Parameters.Out.Tooltip": "A + B",
		},
	}
}

func squareRoot() node {
	return node{
		fn: d.NewFunction(1, "SquareRoot", "Out = sqrt(In);",
			d.NewParameter("In", d.TypeVector, d.In),
			d.NewParameter("Out", d.TypeVector, d.Out),
		),
		strings: map[string]string{
			"Name.Synonyms":          "sqrt",
			"Tooltip":                "returns the square root of the input",
			"Parameters.In.Tooltip":  "input value",
			"Parameters.Out.Tooltip": "the square root of the input",
			"Category":               "Math, Basic",
			"DisplayName":            "Square Root",
		},
	}
}

func floor() node {
	return node{
		fn: d.NewFunction(1, "Floor", "Out = floor(In);",
			d.NewParameter("In", d.TypeVector, d.In),
			d.NewParameter("Out", d.TypeVector, d.Out),
		),
		strings: map[string]string{
			"Name.Synonyms":          "down",
			"Tooltip":                "rounds the input down to the nearest whole number",
			"Parameters.In.Tooltip":  "input value",
			"Parameters.Out.Tooltip": "the input rounded down to the nearest whole number",
			"Category":               "Math, Round",
		},
	}
}

func degreesToRadians() node {
	return node{
		fn: d.NewFunction(1, "DegreesToRadians", "Out = radians(In);",
			d.NewParameter("In", d.TypeVector, d.In),
			d.NewParameter("Out", d.TypeVector, d.Out),
		),
		strings: map[string]string{
			"Name.Synonyms":          "degtorad, radians, convert",
			"Tooltip":                "converts degrees to radians",
			"Parameters.In.Tooltip":  "a value in degrees",
			"Parameters.Out.Tooltip": "the input converted to radians",
			"Category":               "Math, Trigonometry",
			"DisplayName":            "Degrees To Radians",
		},
	}
}

func sine() node {
	return node{
		fn: d.NewFunction(1, "Sine", "Out = sin(In);",
			d.NewParameter("In", d.TypeVector, d.In),
			d.NewParameter("Out", d.TypeVector, d.Out),
		),
		strings: map[string]string{
			"Tooltip":                "returns the sine of the input",
			"Parameters.In.Tooltip":  "input value",
			"Parameters.Out.Tooltip": "the sine of the input",
			"Category":               "Math, Trigonometry",
		},
	}
}

func sphereMask() node {
	return node{
		fn: d.NewFunction(1, "SphereMask",
			"Out = 1 - saturate((distance(Coords, Center) - Radius) / (1 - Hardness));",
			d.NewParameter("Coords", d.TypeVector, d.In),
			d.NewParameter("Center", d.TypeVector, d.In, 0.5, 0.5, 0.5, 0.5),
			d.NewParameter("Radius", d.TypeFloat, d.In, 0.1),
			d.NewParameter("Hardness", d.TypeFloat, d.In, 0.8),
			d.NewParameter("Out", d.TypeVector, d.Out),
		),
		strings: map[string]string{
			"Category":                    "Math, Vector",
			"DisplayName":                 "Sphere Mask",
			"Tooltip":                     "creates a spherical volume mask originating at the given position",
			"Parameters.Coords.Tooltip":   "coordinate space input",
			"Parameters.Center.Tooltip":   "coordinates of the sphere origin",
			"Parameters.Radius.Tooltip":   "radius of the sphere",
			"Parameters.Hardness.Tooltip": "soften falloff of the sphere",
			"Parameters.Out.Tooltip":      "a spherical volume mask originating at the given position",
		},
	}
}

func all() node {
	return node{
		fn: d.NewFunction(1, "All", "Out = all(In);",
			d.NewParameter("In", d.TypeVector, d.In),
			d.NewParameter("Out", d.TypeBool, d.Out),
		),
		strings: map[string]string{
			"Tooltip":                "returns true if all components of the input In are non-zero",
			"Parameters.In.Tooltip":  "input value",
			"Parameters.Out.Tooltip": "true if all input components are non-zero",
			"Category":               "Utility, Logic",
		},
		hints: map[string]float64{
			"Preview.Exists": 0,
		},
	}
}
