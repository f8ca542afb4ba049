// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package pages

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/plugin-studio/sitedesc/pkg/site"
	"k8s.io/klog/v2"
)

// ErrPageNotFound signals an internal link without a markdown page behind it
var ErrPageNotFound = errors.New("page not found")

// Page is a markdown file a link target resolves to
type Page struct {
	// Path of the file relative to the content root
	Path string
	// Title from the frontmatter, or the first level 1 heading
	Title string
}

// Resolver maps internal link targets to the markdown files of a content tree
type Resolver struct {
	Root fs.FS
}

// Candidates lists the files a target may be served from, most specific first.
// Targets escaping the content root have none.
func Candidates(target string) []string {
	if i := strings.IndexAny(target, "?#"); i >= 0 {
		target = target[:i]
	}
	p := strings.TrimPrefix(target, "/")
	if p == "" || strings.HasSuffix(p, "/") {
		c := path.Join(p, "index.md")
		if escapes(c) {
			return nil
		}
		return []string{c}
	}
	p = path.Clean(strings.TrimSuffix(p, ".html"))
	if escapes(p) {
		return nil
	}
	if strings.HasSuffix(p, ".md") {
		return []string{p}
	}
	return []string{p + ".md", path.Join(p, "index.md")}
}

func escapes(p string) bool {
	return p == ".." || strings.HasPrefix(p, "../")
}

// Resolve finds and parses the page served for target
func (r *Resolver) Resolve(target string) (*Page, error) {
	for _, c := range Candidates(target) {
		b, err := fs.ReadFile(r.Root, c)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		fm, heading, err := parse(b)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", c, err)
		}
		p := &Page{Path: c, Title: heading}
		if t, ok := fm["title"].(string); ok && t != "" {
			p.Title = t
		}
		return p, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrPageNotFound, target)
}

// Check resolves every internal link and reports the ones without a page.
// External links are skipped.
func (r *Resolver) Check(links []site.Link) error {
	var errs *multierror.Error
	for _, l := range links {
		if !l.IsInternal() {
			continue
		}
		p, err := r.Resolve(l.Destination)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("%s: %w", l.Location, err))
			continue
		}
		klog.V(6).Infof("%s -> %s", l.Destination, p.Path)
		if p.Title != "" && p.Title != l.Text {
			klog.V(2).Infof("%s: label %q differs from page title %q in %s", l.Location, l.Text, p.Title, p.Path)
		}
	}
	return errs.ErrorOrNil()
}
