// Package hcl is the KuiLang source front end. KuiLang files (.kui) are
// written in HCL native syntax; this package parses them with hashicorp/hcl
// and translates the result into the format-agnostic syntax tree of the ast
// package.
//
// Declarations and statements are blocks, expressions are HCL expressions:
//
//	type "Point" {
//	  field "x" { type = number }
//	  method "length" {
//	    returns = number
//	    param "unit" { type = number }
//	    body {
//	      if {
//	        condition = unit > 0
//	        return { value = unit::scale(2) }
//	      }
//	      return { value = 0 }
//	    }
//	  }
//	}
//
// A namespaced call `recv::name(args)` is a method call on the variable recv.
// Problems are reported as hcl.Diagnostics; a program is only returned when
// there are no errors.
package hcl
