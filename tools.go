//go:build tools
// +build tools

// Package tools declares tool dependencies for this module.
//
// mockgen is invoked through `go generate` to build mocks/ from the repository
// and service interfaces; importing it here keeps it pinned in go.mod.
package address_book

import (
	_ "go.uber.org/mock/mockgen"
)
