//go:build tools
// +build tools

// Package tools declares tool dependencies for this module.
//
// These imports are not used at runtime. They keep go generate tools such as
// mockgen tracked in go.mod.
package call_lab

import (
	_ "go.uber.org/mock/mockgen"
)
