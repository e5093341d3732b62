// colorcraft - colour palette extraction and analysis
//
// colorcraft extracts dominant colours from images, analyses palettes for
// harmony and WCAG contrast, and suggests companion colours.
//
// Copyright (c) 2025 The colorcraft Authors
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/colorcraft/colorcraft/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
