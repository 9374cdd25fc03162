// Package hclutil holds small helpers on top of hashicorp/hcl shared by the
// source front end and the built-in manifest decoder.
package hclutil
