// Package manifest loads user-supplied definitions from HCL files.
//
// A manifest file may contain any number of these top-level blocks:
//
//	function "Lerp" {
//	  version = 1
//	  body    = "Out = lerp(A, B, T);"
//
//	  parameter "A" {
//	    type    = vector
//	    default = [0, 0, 0, 0]
//	  }
//	  parameter "Out" {
//	    type      = vector
//	    direction = out
//	  }
//
//	  ui {
//	    display_name       = "Lerp"
//	    category           = ["Math", "Interpolation"]
//	    synonyms           = ["mix"]
//	    parameter_tooltips = { A = "start value" }
//	  }
//	}
//
//	context "SurfaceContext" {
//	  version = 1
//	  entry "Albedo" {
//	    primitive = float
//	    precision = "fixed"
//	    length    = 3
//	  }
//	}
//
//	shape "lamp" {
//	  outline "outer" {
//	    points = [[0, 0], [100, 0], [100, 100], [0, 100]]
//	  }
//	  outline "cutout" {
//	    first_left = "outer"
//	    hole       = true
//	    points     = [[40, 40], [60, 40], [60, 60], [40, 60]]
//	  }
//	}
//
// Functions and contexts become registry candidates in file order; shapes are
// returned separately for the light-shape builder.
package manifest
