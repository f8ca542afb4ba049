// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/go-github/v43/github"
	"github.com/hashicorp/go-multierror"
	"github.com/plugin-studio/sitedesc/pkg/httpclient"
	"github.com/plugin-studio/sitedesc/pkg/linkvalidator"
	"github.com/plugin-studio/sitedesc/pkg/pages"
	"github.com/plugin-studio/sitedesc/pkg/site"
	"github.com/plugin-studio/sitedesc/pkg/writers"
	"k8s.io/klog/v2"
)

// loadDescriptor returns the built-in descriptor, or the one stored in path
func loadDescriptor(path string) (*site.Descriptor, error) {
	if path == "" {
		return site.Default(), nil
	}
	klog.Infof("Descriptor: %s", path)
	return site.ParseFile(path)
}

func render(ctx context.Context, o renderOptions, out io.Writer) error {
	d, err := loadDescriptor(o.Descriptor)
	if err != nil {
		return err
	}
	if err := site.Validate(d); err != nil {
		return fmt.Errorf("invalid descriptor: %w", err)
	}
	format := site.Format(o.Format)
	b, err := site.Marshal(d, format)
	if err != nil {
		return err
	}
	name := fmt.Sprintf("%s.%s", o.Name, format.Extension())
	if o.DryRun {
		dryRun := writers.NewDryRunWritersFactory(out)
		if err := dryRun.GetWriter(o.Destination).Write(name, "", b); err != nil {
			return err
		}
		return dryRun.Flush()
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	w := &writers.FSWriter{Root: o.Destination}
	if err := w.Write(name, "", b); err != nil {
		return err
	}
	klog.Infof("Descriptor written to %s", filepath.Join(o.Destination, name))
	return nil
}

func printDescriptor(o printOptions, out io.Writer) error {
	d, err := loadDescriptor(o.Descriptor)
	if err != nil {
		return err
	}
	b, err := site.Marshal(d, site.Format(o.Format))
	if err != nil {
		return err
	}
	_, err = out.Write(b)
	return err
}

func validate(ctx context.Context, o validateOptions) error {
	d, err := loadDescriptor(o.Descriptor)
	if err != nil {
		return err
	}
	if err := site.Validate(d); err != nil {
		return fmt.Errorf("invalid descriptor: %w", err)
	}
	links := site.Links(d)
	var errs *multierror.Error
	if o.ContentDir != "" {
		if fi, err := os.Stat(o.ContentDir); err != nil {
			return err
		} else if !fi.IsDir() {
			return fmt.Errorf("content dir %s is not a directory", o.ContentDir)
		}
		klog.Infof("Content dir: %s", o.ContentDir)
		resolver := &pages.Resolver{Root: os.DirFS(o.ContentDir)}
		errs = multierror.Append(errs, resolver.Check(links))
	}
	if o.CheckExternal {
		v, err := newLinkValidator(ctx, o)
		if err != nil {
			return err
		}
		errs = multierror.Append(errs, v.Check(ctx, links, o.ValidationWorkers, o.FailFast))
	}
	if err := errs.ErrorOrNil(); err != nil {
		return err
	}
	klog.Infof("Descriptor is valid: %d links checked", len(links))
	return nil
}

// newLinkValidator builds the external link validator. The GitHub token is
// only sent to the GitHub API, never to the checked hosts.
func newLinkValidator(ctx context.Context, o validateOptions) (*linkvalidator.Validator, error) {
	var linksCache, githubCache string
	if o.CacheDir != "" {
		linksCache = filepath.Join(o.CacheDir, "links")
		githubCache = filepath.Join(o.CacheDir, "github.com")
	}
	client := httpclient.New(ctx, httpclient.Options{CacheDir: linksCache})
	ghClient := github.NewClient(httpclient.New(ctx, httpclient.Options{
		AccessToken: o.GitHubOAuthToken,
		CacheDir:    githubCache,
	}))
	if o.GitHubOAuthToken == "" {
		klog.Infof("using unauthenticated github access")
	}
	return linkvalidator.NewValidator(client, ghClient.Repositories, o.HostsToReport)
}
