package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// parseIDArg parses a positional id argument, exiting with a user
// error when it is not an integer.
func parseIDArg(arg string) int {
	id, err := strconv.Atoi(arg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid id %q\n", arg)
		os.Exit(exitUserError)
	}
	return id
}
