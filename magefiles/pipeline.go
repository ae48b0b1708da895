//go:build mage

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// envOr returns the environment value for key, or fallback when unset.
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Tag builds the CLI and tags $LITSCORE_TAG_INPUT (default input.bib) into
// $LITSCORE_TAG_OUTPUT (default output.bib).
func Tag() error {
	mg.Deps(Build)
	return sh.RunV(binPath, "tag",
		"--input", envOr("LITSCORE_TAG_INPUT", "input.bib"),
		"--output", envOr("LITSCORE_TAG_OUTPUT", "output.bib"))
}

// Score builds the CLI, tags the bibliography, and reports the score
// distribution of the tagged file with a density chart in density.png.
func Score() error {
	mg.SerialDeps(Build, Tag)
	return sh.RunV(binPath, "score",
		"--input", envOr("LITSCORE_TAG_OUTPUT", "output.bib"),
		"--format", "table",
		"--plot", envOr("LITSCORE_REPORT_PLOT", "density.png"))
}

// Taxonomy builds the CLI and validates the active taxonomy.
func Taxonomy() error {
	mg.Deps(Build)
	return sh.RunV(binPath, "taxonomy", "--validate")
}
