// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"flag"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func bind(vip *viper.Viper, command *cobra.Command, name string) {
	_ = vip.BindPFlag(name, command.Flags().Lookup(name))
}

func configureDescriptorFlag(vip *viper.Viper, command *cobra.Command) {
	command.Flags().String("descriptor", "",
		"Use the descriptor in this file (.json, .yaml, .yml, .mjs) instead of the built-in one.")
	bind(vip, command, "descriptor")
}

func configureRenderFlags(vip *viper.Viper, command *cobra.Command) {
	command.Flags().String("format", "mjs",
		"Output format. One of: json, yaml, mjs.")
	bind(vip, command, "format")

	command.Flags().StringP("destination", "d", ".vitepress",
		"Directory the descriptor file is written to.")
	bind(vip, command, "destination")

	command.Flags().String("name", "config",
		"File name of the descriptor without extension.")
	bind(vip, command, "name")

	command.Flags().Bool("dry-run", false,
		"Prints the projected file hierarchy to the standard output instead of writing files.")
	bind(vip, command, "dry-run")

	configureDescriptorFlag(vip, command)
}

func configurePrintFlags(vip *viper.Viper, command *cobra.Command) {
	command.Flags().String("format", "yaml",
		"Output format. One of: json, yaml, mjs.")
	bind(vip, command, "format")

	configureDescriptorFlag(vip, command)
}

func configureValidateFlags(vip *viper.Viper, command *cobra.Command) {
	configureDescriptorFlag(vip, command)

	command.Flags().String("content-dir", "",
		"If specified, internal link targets are resolved against the markdown pages in this directory.")
	bind(vip, command, "content-dir")

	command.Flags().Bool("check-external", false,
		"Check that absolute link destinations are reachable.")
	bind(vip, command, "check-external")

	command.Flags().Int("validation-workers", 10,
		"Number of parallel workers to validate the external links.")
	bind(vip, command, "validation-workers")

	command.Flags().Bool("fail-fast", false,
		"Fail-fast vs fault tolerant operation.")
	bind(vip, command, "fail-fast")

	command.Flags().StringSlice("hosts-to-report", []string{},
		"When a link has a host from the given array it will get reported.")
	bind(vip, command, "hosts-to-report")

	command.Flags().String("cache-dir", defaultCacheDir(),
		"Cache directory for HTTP responses of link checks. Empty disables caching.")
	bind(vip, command, "cache-dir")

	command.Flags().String("github-oauth-token", "",
		"GitHub personal token used when verifying GitHub repository links.")
	bind(vip, command, "github-oauth-token")
}

// AddFlags adds go flags to rootCmd
func AddFlags(rootCmd *cobra.Command) {
	flag.CommandLine.VisitAll(func(gf *flag.Flag) {
		rootCmd.PersistentFlags().AddGoFlag(gf)
	})
}
