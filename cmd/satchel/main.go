// Package main provides the satchel CLI, the transport stand-in over the
// relational core. See docs/ARCHITECTURE.md § CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

// Exit codes: 1 for user errors (bad input, missing entities), 2 for
// system errors (store failures).
const (
	exitUserError = 1
	exitSysError  = 2
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	for _, userErr := range []error{
		types.ErrNotFound, types.ErrInvalidID, types.ErrValidation,
		types.ErrInvalidStatus, types.ErrInvalidTransition,
		types.ErrInvalidItemType, types.ErrInvalidFilter,
		types.ErrDefaultProtected,
	} {
		if errors.Is(err, userErr) {
			return exitUserError
		}
	}
	return exitSysError
}
