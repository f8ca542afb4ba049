// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package site

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// loose BCP 47 shape: primary language subtag followed by optional subtags
var langRgx = regexp.MustCompile(`^[a-zA-Z]{2,8}(-[a-zA-Z0-9]{1,8})*$`)

var linkSchemes = map[string]struct{}{
	"http":   {},
	"https":  {},
	"mailto": {},
}

// Link is a link target together with where it appears in the descriptor
type Link struct {
	// Location is the field path, e.g. themeConfig.sidebar[1].items[0].link
	Location string
	// Text is the label rendered for the link
	Text string
	// Destination is the target path or URL
	Destination string
}

// IsInternal reports a root-relative target served by the site itself
func (l Link) IsInternal() bool {
	return strings.HasPrefix(l.Destination, "/") && !strings.HasPrefix(l.Destination, "//")
}

// Links lists every link target of the descriptor in display order:
// navigation bar, sidebar and then social links
func Links(d *Descriptor) []Link {
	var links []Link
	for i, n := range d.ThemeConfig.Nav {
		links = append(links, Link{
			Location:    fmt.Sprintf("themeConfig.nav[%d].link", i),
			Text:        n.Text,
			Destination: n.Link,
		})
	}
	for i, g := range d.ThemeConfig.Sidebar {
		for j, n := range g.Items {
			links = append(links, Link{
				Location:    fmt.Sprintf("themeConfig.sidebar[%d].items[%d].link", i, j),
				Text:        n.Text,
				Destination: n.Link,
			})
		}
	}
	for i, s := range d.ThemeConfig.SocialLinks {
		links = append(links, Link{
			Location:    fmt.Sprintf("themeConfig.socialLinks[%d].link", i),
			Text:        string(s.Icon),
			Destination: s.Link,
		})
	}
	return links
}

// Validate checks the descriptor structure and returns all violations
// at once
func Validate(d *Descriptor) error {
	var errs *multierror.Error
	if d == nil {
		return fmt.Errorf("descriptor is nil")
	}
	if strings.TrimSpace(d.Title) == "" {
		errs = multierror.Append(errs, fmt.Errorf("title: must not be empty"))
	}
	if !langRgx.MatchString(d.Lang) {
		errs = multierror.Append(errs, fmt.Errorf("lang: %q is not a language tag", d.Lang))
	}
	if !d.Dir.Valid() {
		errs = multierror.Append(errs, fmt.Errorf("dir: %q is neither %s nor %s", d.Dir, LTR, RTL))
	}
	tc := d.ThemeConfig
	if !tc.Search.Provider.Valid() {
		errs = multierror.Append(errs, fmt.Errorf("themeConfig.search.provider: unknown provider %q", tc.Search.Provider))
	}
	headings := make(map[string]int)
	for i, g := range tc.Sidebar {
		if strings.TrimSpace(g.Text) == "" {
			errs = multierror.Append(errs, fmt.Errorf("themeConfig.sidebar[%d].text: must not be empty", i))
		} else if prev, ok := headings[g.Text]; ok {
			errs = multierror.Append(errs, fmt.Errorf("themeConfig.sidebar[%d].text: %q duplicates themeConfig.sidebar[%d]", i, g.Text, prev))
		} else {
			headings[g.Text] = i
		}
		if len(g.Items) == 0 {
			errs = multierror.Append(errs, fmt.Errorf("themeConfig.sidebar[%d].items: group %q has no entries", i, g.Text))
		}
	}
	for i, s := range tc.SocialLinks {
		if !s.Icon.Valid() {
			errs = multierror.Append(errs, fmt.Errorf("themeConfig.socialLinks[%d].icon: unknown icon %q", i, s.Icon))
		}
	}
	for _, l := range Links(d) {
		if err := validateDestination(l); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	fo := tc.LastUpdated.FormatOptions
	if !fo.DateStyle.Valid() {
		errs = multierror.Append(errs, fmt.Errorf("themeConfig.lastUpdated.formatOptions.dateStyle: unknown style %q", fo.DateStyle))
	}
	if !fo.TimeStyle.Valid() {
		errs = multierror.Append(errs, fmt.Errorf("themeConfig.lastUpdated.formatOptions.timeStyle: unknown style %q", fo.TimeStyle))
	}
	for i, lvl := range tc.Outline.Level {
		if lvl < 1 || lvl > 6 {
			errs = multierror.Append(errs, fmt.Errorf("themeConfig.outline.level[%d]: heading level %d out of range 1-6", i, lvl))
		}
	}
	return errs.ErrorOrNil()
}

func validateDestination(l Link) error {
	if l.Destination == "" {
		return fmt.Errorf("%s: %q has an empty link", l.Location, l.Text)
	}
	social := strings.HasPrefix(l.Location, "themeConfig.socialLinks")
	if l.IsInternal() {
		if social {
			return fmt.Errorf("%s: social link %q must be an absolute URL", l.Location, l.Destination)
		}
		return nil
	}
	u, err := url.Parse(l.Destination)
	if err != nil {
		return fmt.Errorf("%s: %w", l.Location, err)
	}
	if _, ok := linkSchemes[u.Scheme]; !ok {
		return fmt.Errorf("%s: %q is neither root-relative nor an absolute URL", l.Location, l.Destination)
	}
	if u.Scheme != "mailto" && u.Host == "" {
		return fmt.Errorf("%s: %q has no host", l.Location, l.Destination)
	}
	if social && u.Scheme == "mailto" {
		return fmt.Errorf("%s: social link %q must be an http(s) URL", l.Location, l.Destination)
	}
	return nil
}
