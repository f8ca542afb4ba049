// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package httpclient

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

import (
	"context"
	"net/http"
	"path/filepath"

	"github.com/gregjones/httpcache"
	"github.com/gregjones/httpcache/diskcache"
	"github.com/peterbourgon/diskv"
	"golang.org/x/oauth2"
)

//counterfeiter:generate . Client
type Client interface {
	Do(req *http.Request) (resp *http.Response, err error)
}

// Options configure the client built by New
type Options struct {
	// AccessToken authorizes the requests with a bearer token when set
	AccessToken string
	// CacheDir keeps responses on disk between runs when set
	CacheDir string
}

// New builds an http.Client from options. Responses served from the cache
// carry the httpcache.XFromCache header.
func New(ctx context.Context, o Options) *http.Client {
	base := http.DefaultTransport
	if len(o.AccessToken) > 0 {
		// if token provided replace base RoundTripper
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: o.AccessToken})
		base = oauth2.NewClient(ctx, ts).Transport
	}
	if o.CacheDir == "" {
		return &http.Client{Transport: base}
	}
	flatTransform := func(s string) []string { return []string{} }
	d := diskv.New(diskv.Options{
		BasePath:     filepath.Join(o.CacheDir, "diskv"),
		Transform:    flatTransform,
		CacheSizeMax: 100 * 1024 * 1024,
	})
	cacheTransport := &httpcache.Transport{
		Transport:           base,
		Cache:               diskcache.NewWithDiskv(d),
		MarkCachedResponses: true,
	}
	return cacheTransport.Client()
}
