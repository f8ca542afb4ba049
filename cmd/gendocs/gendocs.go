// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package gendocs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
	"k8s.io/klog/v2"
)

// DefaultDestination is the reference section of the docs content tree
const DefaultDestination = "docs/reference"

type genDocsCmdFlags struct {
	format      string
	destination string
}

// NewGenCmdDocs generates the command reference as pages of the docs site
// or as man pages
func NewGenCmdDocs() *cobra.Command {
	flags := &genDocsCmdFlags{}
	command := &cobra.Command{
		Use:   "gen-cmd-docs",
		Short: "Generate the command reference",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			root := cmd.Root()
			root.DisableAutoGenTag = true
			destination := filepath.Clean(flags.destination)
			if err := os.MkdirAll(destination, os.ModePerm); err != nil {
				return err
			}
			var err error
			switch flags.format {
			case "md":
				err = doc.GenMarkdownTreeCustom(root, destination, frontmatter, cleanURL)
			case "man":
				err = doc.GenManTree(root, &doc.GenManHeader{
					Title:   "SITEDESC",
					Manual:  "sitedesc Command Reference",
					Section: "1",
				}, destination)
			default:
				return fmt.Errorf("unknown format %q, must be one of [md man]", flags.format)
			}
			if err != nil {
				return fmt.Errorf("failed to generate command reference: %w", err)
			}
			klog.Infof("Command reference written to %s", destination)
			return nil
		},
	}
	command.Flags().StringVarP(&flags.format, "format", "f", "md",
		"Generated documentation format. Must be one of: `md` (site pages) or `man` (man pages).")
	command.Flags().StringVarP(&flags.destination, "destination", "d", DefaultDestination,
		"Directory the reference is written to. It is created if missing.")
	return command
}

// frontmatter titles each page with its command path, e.g. "sitedesc render"
// for sitedesc_render.md
func frontmatter(filename string) string {
	name := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	return fmt.Sprintf("---\ntitle: %s\n---\n\n", strings.ReplaceAll(name, "_", " "))
}

// cleanURL links sibling pages by route, without the .md suffix
func cleanURL(name string) string {
	return strings.TrimSuffix(name, ".md")
}
