// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

// renderOptions are the parameters of the render command
type renderOptions struct {
	Format      string `mapstructure:"format"`
	Destination string `mapstructure:"destination"`
	Name        string `mapstructure:"name"`
	DryRun      bool   `mapstructure:"dry-run"`
	Descriptor  string `mapstructure:"descriptor"`
}

// printOptions are the parameters of the print command
type printOptions struct {
	Format     string `mapstructure:"format"`
	Descriptor string `mapstructure:"descriptor"`
}

// validateOptions are the parameters of the validate command
type validateOptions struct {
	Descriptor        string   `mapstructure:"descriptor"`
	ContentDir        string   `mapstructure:"content-dir"`
	CheckExternal     bool     `mapstructure:"check-external"`
	ValidationWorkers int      `mapstructure:"validation-workers"`
	FailFast          bool     `mapstructure:"fail-fast"`
	HostsToReport     []string `mapstructure:"hosts-to-report"`
	CacheDir          string   `mapstructure:"cache-dir"`
	GitHubOAuthToken  string   `mapstructure:"github-oauth-token"`
}
