// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"context"
	"flag"

	"github.com/plugin-studio/sitedesc/cmd/gendocs"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"
)

// NewCommand creates a new root command and propagates
// the context to the Run callback closures of its subcommands
func NewCommand(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sitedesc",
		Short: "Render and check the documentation site descriptor",
		Long: `sitedesc holds the configuration of the documentation site: navigation,
sidebar, search, footer and locale. It writes the descriptor for the static
site generator and checks that its links resolve.`,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().String("config", "",
		"Config file (default is $HOME/.sitedesc/config.yaml).")

	cmd.AddCommand(newRenderCmd(ctx))
	cmd.AddCommand(newPrintCmd())
	cmd.AddCommand(newValidateCmd(ctx))
	cmd.AddCommand(NewVersionCmd())
	cmd.AddCommand(newCompletionCmd())
	cmd.AddCommand(gendocs.NewGenCmdDocs())

	if flag.CommandLine.Lookup("v") == nil {
		klog.InitFlags(nil)
	}
	AddFlags(cmd)

	return cmd
}

// newSubcommand wires a fresh viper instance to a subcommand, so that
// flags with the same name on different subcommands do not collide
func newSubcommand(use, short string, configure func(*viper.Viper, *cobra.Command), run func(*cobra.Command, *viper.Viper) error) *cobra.Command {
	vip := viper.New()
	command := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			cfgFile, err := cmd.Flags().GetString("config")
			if err != nil {
				return err
			}
			if err := initConfig(vip, cfgFile); err != nil {
				return err
			}
			return run(cmd, vip)
		},
	}
	configure(vip, command)
	return command
}

func newRenderCmd(ctx context.Context) *cobra.Command {
	return newSubcommand("render", "Write the descriptor file for the site generator", configureRenderFlags,
		func(cmd *cobra.Command, vip *viper.Viper) error {
			var o renderOptions
			if err := vip.Unmarshal(&o); err != nil {
				return err
			}
			return render(ctx, o, cmd.OutOrStdout())
		})
}

func newPrintCmd() *cobra.Command {
	return newSubcommand("print", "Print the descriptor to the standard output", configurePrintFlags,
		func(cmd *cobra.Command, vip *viper.Viper) error {
			var o printOptions
			if err := vip.Unmarshal(&o); err != nil {
				return err
			}
			return printDescriptor(o, cmd.OutOrStdout())
		})
}

func newValidateCmd(ctx context.Context) *cobra.Command {
	return newSubcommand("validate", "Check the descriptor structure and its link targets", configureValidateFlags,
		func(cmd *cobra.Command, vip *viper.Viper) error {
			var o validateOptions
			if err := vip.Unmarshal(&o); err != nil {
				return err
			}
			return validate(ctx, o)
		})
}
