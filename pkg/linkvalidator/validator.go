// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package linkvalidator

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/go-github/v43/github"
	"github.com/plugin-studio/sitedesc/pkg/httpclient"
	"github.com/plugin-studio/sitedesc/pkg/jobs"
	"github.com/plugin-studio/sitedesc/pkg/site"
	"k8s.io/klog/v2"
)

const (
	requestTimeout = 5 * time.Second
	maxRetryAfter  = 5 * time.Minute
)

// retryIntervals are the waits between requests answered with HTTP 429
var retryIntervals = []time.Duration{time.Second, 5 * time.Second, 10 * time.Second, 20 * time.Second}

// RepositoryGetter reads GitHub repositories. It is satisfied by
// *github.RepositoriesService.
//
//counterfeiter:generate . RepositoryGetter
type RepositoryGetter interface {
	Get(ctx context.Context, owner, repo string) (*github.Repository, *github.Response, error)
}

// Validator checks that absolute link destinations are reachable
type Validator struct {
	client        httpclient.Client
	repositories  RepositoryGetter
	validated     *linkSet
	hostsToReport []string
	// Sleep waits between retries on HTTP 429
	Sleep func(time.Duration)
}

// NewValidator creates a Validator. repositories is optional; when set, links
// to github.com repositories are verified through the GitHub API.
func NewValidator(client httpclient.Client, repositories RepositoryGetter, hostsToReport []string) (*Validator, error) {
	if client == nil || reflect.ValueOf(client).IsNil() {
		return nil, errors.New("invalid argument: http client is nil")
	}
	if repositories != nil && reflect.ValueOf(repositories).IsNil() {
		repositories = nil
	}
	return &Validator{
		client:        client,
		repositories:  repositories,
		validated:     &linkSet{set: make(map[string]struct{})},
		hostsToReport: hostsToReport,
		Sleep:         time.Sleep,
	}, nil
}

// Check validates all absolute links with parallel workers
func (v *Validator) Check(ctx context.Context, links []site.Link, workers int, failFast bool) error {
	var tasks []interface{}
	for _, l := range links {
		if !l.IsInternal() {
			tasks = append(tasks, l)
		}
	}
	klog.Infof("validating %d external links", len(tasks))
	job := &jobs.Job{
		MaxWorkers: workers,
		FailFast:   failFast,
		Worker: jobs.WorkerFunc(func(ctx context.Context, task interface{}) error {
			return v.Validate(ctx, task.(site.Link))
		}),
	}
	return job.Dispatch(ctx, tasks)
}

// Validate validates a link. Unreachable destinations are logged, not returned:
// only malformed links, hosts to report and missing GitHub repositories fail.
func (v *Validator) Validate(ctx context.Context, link site.Link) error {
	linkURL, err := url.Parse(strings.TrimSuffix(link.Destination, "/"))
	if err != nil {
		return fmt.Errorf("error when parsing link in %s : %w", link.Location, err)
	}
	if linkURL.Scheme != "http" && linkURL.Scheme != "https" {
		return nil
	}
	// ignore sample hosts e.g. localhost
	host := linkURL.Hostname()
	if host == "localhost" || host == "127.0.0.1" {
		return nil
	}
	for _, h := range v.hostsToReport {
		if h == linkURL.Host {
			return fmt.Errorf("%s has link %s with host to report", link.Location, link.Destination)
		}
	}
	// unify links destination by excluding query, fragment & user info
	u := &url.URL{
		Scheme: linkURL.Scheme,
		Host:   linkURL.Host,
		Path:   linkURL.Path,
	}
	unifiedURL := u.String()
	if v.validated.exist(unifiedURL) {
		return nil
	}
	if owner, repo, ok := githubRepository(linkURL); ok && v.repositories != nil {
		if err := v.validateRepository(ctx, owner, repo, link); err != nil {
			return err
		}
		v.validated.add(unifiedURL)
		return nil
	}

	code, err := v.reach(ctx, linkURL.String())
	switch {
	case err != nil:
		klog.Warningf("failed to validate absolute link for %s from %s: %v\n", link.Destination, link.Location, err)
	case failed(code):
		klog.Warningf("%s: %s answered HTTP Status %d %s\n", link.Location, link.Destination, code, http.StatusText(code))
	}
	v.validated.add(unifiedURL)
	return nil
}

func (v *Validator) validateRepository(ctx context.Context, owner, repo string, link site.Link) error {
	_, resp, err := v.repositories.Get(ctx, owner, repo)
	if resp != nil && resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s: repository %s/%s does not exist", link.Location, owner, repo)
	}
	if err != nil {
		klog.Warningf("failed to get repository %s/%s for %s: %v\n", owner, repo, link.Location, err)
	}
	return nil
}

// githubRepository extracts owner and repository from github.com/<owner>/<repo> URLs
func githubRepository(u *url.URL) (string, string, bool) {
	if u.Hostname() != "github.com" {
		return "", "", false
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], strings.TrimSuffix(parts[1], ".git"), true
}

// failed reports error codes other than authorization errors. Those mean the
// destination exists but needs credentials.
func failed(code int) bool {
	return code >= 400 && code != http.StatusForbidden && code != http.StatusUnauthorized
}

// reach requests dest with HEAD and falls back to GET for servers that reject
// HEAD. It returns the last status code.
func (v *Validator) reach(ctx context.Context, dest string) (int, error) {
	var code int
	for _, method := range []string{http.MethodHead, http.MethodGet} {
		var err error
		if code, err = v.send(ctx, method, dest); err != nil || !failed(code) {
			return code, err
		}
	}
	return code, nil
}

// send repeats a request while the server answers HTTP 429, at most once per
// retry interval
func (v *Validator) send(ctx context.Context, method, dest string) (int, error) {
	for attempt := 0; ; attempt++ {
		code, header, err := v.do(ctx, method, dest)
		if err != nil {
			return 0, err
		}
		if code != http.StatusTooManyRequests || attempt == len(retryIntervals)-1 {
			return code, nil
		}
		jitter := time.Duration(rand.Intn(attempt+1)) * time.Second
		wait := retryAfter(header, retryIntervals[attempt]+jitter)
		klog.V(4).Infof("%s %s: too many requests, retrying in %s", method, dest, wait)
		v.Sleep(wait)
	}
}

func (v *Validator) do(ctx context.Context, method, dest string) (int, http.Header, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, method, dest, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to prepare %s validation request: %w", method, err)
	}
	resp, err := v.client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	resp.Body.Close()
	return resp.StatusCode, resp.Header, nil
}

// retryAfter reads a Retry-After header given in seconds
func retryAfter(h http.Header, fallback time.Duration) time.Duration {
	s, err := strconv.Atoi(h.Get("Retry-After"))
	if err != nil || s < 0 {
		return fallback
	}
	if d := time.Duration(s) * time.Second; d <= maxRetryAfter {
		return d
	}
	return fallback
}

// linkSet holds link destinations that have been validated
// used to avoid redundant checks & HTTP Status 429
type linkSet struct {
	set map[string]struct{}
	mux sync.RWMutex
}

func (l *linkSet) exist(dest string) bool {
	l.mux.RLock()
	defer l.mux.RUnlock()
	_, ok := l.set[dest]
	return ok
}

func (l *linkSet) add(dest string) {
	l.mux.Lock()
	defer l.mux.Unlock()
	l.set[dest] = struct{}{}
}
