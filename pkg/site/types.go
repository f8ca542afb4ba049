// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package site

// Descriptor is the site configuration handed to the static site generator.
// It is constructed once and only read afterwards.
type Descriptor struct {
	Title       string        `json:"title" yaml:"title"`
	Description string        `json:"description" yaml:"description"`
	Lang        string        `json:"lang" yaml:"lang"`
	Dir         TextDirection `json:"dir" yaml:"dir"`
	ThemeConfig ThemeConfig   `json:"themeConfig" yaml:"themeConfig"`
}

// ThemeConfig groups everything the default theme of the generator renders
type ThemeConfig struct {
	Nav         []NavItem      `json:"nav" yaml:"nav"`
	Sidebar     []SidebarGroup `json:"sidebar" yaml:"sidebar"`
	Search      Search         `json:"search" yaml:"search"`
	SocialLinks []SocialLink   `json:"socialLinks,omitempty" yaml:"socialLinks,omitempty"`
	Footer      Footer         `json:"footer" yaml:"footer"`
	DocFooter   DocFooter      `json:"docFooter" yaml:"docFooter"`
	Outline     Outline        `json:"outline" yaml:"outline"`
	LastUpdated LastUpdated    `json:"lastUpdated" yaml:"lastUpdated"`
}

// NavItem is a labelled link. The position in its slice is the display order.
type NavItem struct {
	Text string `json:"text" yaml:"text"`
	Link string `json:"link" yaml:"link"`
}

// SidebarGroup is a heading with the ordered entries rendered below it
type SidebarGroup struct {
	Text string `json:"text" yaml:"text"`
	// Collapsed makes the group collapsible. Nil leaves it always expanded.
	Collapsed *bool     `json:"collapsed,omitempty" yaml:"collapsed,omitempty"`
	Items     []NavItem `json:"items" yaml:"items"`
}

// Search selects the search backend
type Search struct {
	Provider SearchProvider `json:"provider" yaml:"provider"`
}

// SocialLink is an icon linking to an external profile or repository
type SocialLink struct {
	Icon SocialIcon `json:"icon" yaml:"icon"`
	Link string     `json:"link" yaml:"link"`
}

// Footer is the text shown at the bottom of every page
type Footer struct {
	Message   string `json:"message" yaml:"message"`
	Copyright string `json:"copyright" yaml:"copyright"`
}

// DocFooter holds the labels of the previous/next page controls
type DocFooter struct {
	Prev string `json:"prev" yaml:"prev"`
	Next string `json:"next" yaml:"next"`
}

// Outline configures the table of contents generated from page headings
type Outline struct {
	Label string `json:"label" yaml:"label"`
	// Level restricts the heading levels, e.g. [2, 3]. Empty keeps the default.
	Level []int `json:"level,omitempty" yaml:"level,omitempty"`
}

// LastUpdated configures the last-updated timestamp of a page
type LastUpdated struct {
	Text          string        `json:"text" yaml:"text"`
	FormatOptions FormatOptions `json:"formatOptions" yaml:"formatOptions"`
}

// FormatOptions are the Intl.DateTimeFormat options applied to the timestamp
type FormatOptions struct {
	DateStyle DateTimeStyle `json:"dateStyle,omitempty" yaml:"dateStyle,omitempty"`
	TimeStyle DateTimeStyle `json:"timeStyle,omitempty" yaml:"timeStyle,omitempty"`
}

// SearchProvider names a search backend
type SearchProvider string

const (
	// SearchLocal builds an in-browser index at build time
	SearchLocal SearchProvider = "local"
	// SearchAlgolia delegates to a hosted Algolia DocSearch index
	SearchAlgolia SearchProvider = "algolia"
)

// Valid reports whether p is a known provider
func (p SearchProvider) Valid() bool {
	return p == SearchLocal || p == SearchAlgolia
}

// SocialIcon names one of the icons bundled with the theme
type SocialIcon string

// Icons bundled with the theme
const (
	IconGitHub   SocialIcon = "github"
	IconDiscord  SocialIcon = "discord"
	IconX        SocialIcon = "x"
	IconMastodon SocialIcon = "mastodon"
	IconLinkedIn SocialIcon = "linkedin"
	IconYouTube  SocialIcon = "youtube"
	IconNpm      SocialIcon = "npm"
	IconSlack    SocialIcon = "slack"
)

var socialIcons = map[SocialIcon]struct{}{
	IconGitHub:   {},
	IconDiscord:  {},
	IconX:        {},
	IconMastodon: {},
	IconLinkedIn: {},
	IconYouTube:  {},
	IconNpm:      {},
	IconSlack:    {},
}

// Valid reports whether i is a bundled icon
func (i SocialIcon) Valid() bool {
	_, ok := socialIcons[i]
	return ok
}

// TextDirection is the writing direction of the site language
type TextDirection string

const (
	// LTR left to right
	LTR TextDirection = "ltr"
	// RTL right to left
	RTL TextDirection = "rtl"
)

// Valid reports whether d is ltr or rtl
func (d TextDirection) Valid() bool {
	return d == LTR || d == RTL
}

// DateTimeStyle is the granularity of a formatted date or time
type DateTimeStyle string

// Granularities accepted by Intl.DateTimeFormat
const (
	StyleFull   DateTimeStyle = "full"
	StyleLong   DateTimeStyle = "long"
	StyleMedium DateTimeStyle = "medium"
	StyleShort  DateTimeStyle = "short"
)

// Valid reports whether s is a known granularity. The empty style is valid
// and leaves the choice to the generator.
func (s DateTimeStyle) Valid() bool {
	switch s {
	case "", StyleFull, StyleLong, StyleMedium, StyleShort:
		return true
	}
	return false
}
