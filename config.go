package main

import "github.com/pkg/errors"

// Config holds the settings of one minidom run.
type Config struct {
	// Input is the blueprint path. Empty or "-" reads standard input.
	Input string
	// Query is a selector run against the built document.
	Query string
	// All prints every match instead of the first.
	All   bool
	Debug bool
}

// Validate reports flag combinations that make no sense.
func (c *Config) Validate() error {
	if c.All && c.Query == "" {
		return errors.New("--all needs --query")
	}
	return nil
}

func (c *Config) stdin() bool {
	return c.Input == "" || c.Input == "-"
}
