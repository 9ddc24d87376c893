//go:build tools
// +build tools

// Package tools pins the code generators used by go:generate so that
// regenerating mocks works on a fresh checkout.
package presence_lab

import (
	_ "go.uber.org/mock/mockgen"
)
