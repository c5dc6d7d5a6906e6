// Package main is the entry point for the dotnetpath CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/Hackerago/dotnetpath/cmd/dotnetpath/commands"
	dnperrors "github.com/Hackerago/dotnetpath/internal/errors"
)

func main() {
	err := commands.Execute()
	if err == nil {
		return
	}

	var exitErr *dnperrors.ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Err != nil {
			fmt.Fprintln(os.Stderr, "Error:", exitErr.Err)
		}
		if exitErr.Suggestion != "" {
			fmt.Fprintln(os.Stderr, "Suggestion:", exitErr.Suggestion)
		}
		os.Exit(exitErr.Code)
	}

	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(dnperrors.ExitUser)
}
