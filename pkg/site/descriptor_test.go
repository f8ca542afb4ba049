// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package site_test

import (
	"net/url"
	"strings"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/plugin-studio/sitedesc/pkg/site"
)

var _ = Describe("Default descriptor", func() {
	var d *site.Descriptor

	BeforeEach(func() {
		d = site.Default()
	})

	It("is structurally valid", func() {
		Expect(site.Validate(d)).To(Succeed())
	})
	It("has root-relative or absolute navigation targets", func() {
		Expect(d.ThemeConfig.Nav).NotTo(BeEmpty())
		for _, n := range d.ThemeConfig.Nav {
			Expect(n.Link).NotTo(BeEmpty())
			if !strings.HasPrefix(n.Link, "/") {
				u, err := url.Parse(n.Link)
				Expect(err).NotTo(HaveOccurred())
				Expect(u.Scheme).NotTo(BeEmpty())
			}
		}
	})
	It("has the sidebar groups in display order", func() {
		var headings []string
		for _, g := range d.ThemeConfig.Sidebar {
			headings = append(headings, g.Text)
		}
		Expect(headings).To(Equal([]string{"Getting Started", "Guides", "Development", "Support"}))
	})
	It("lists the guides in order", func() {
		Expect(d.ThemeConfig.Sidebar[1].Items).To(Equal([]site.NavItem{
			{Text: "System Architecture", Link: "/guide/architecture"},
			{Text: "Chat Interface", Link: "/guide/chat-interface"},
			{Text: "Plugin Generation", Link: "/guide/plugin-generation"},
			{Text: "Installation & Management", Link: "/guide/installation-management"},
		}))
	})
	It("uses local search", func() {
		Expect(d.ThemeConfig.Search.Provider).To(Equal(site.SearchLocal))
	})
	It("is an en-US left to right site", func() {
		Expect(d.Lang).To(Equal("en-US"))
		Expect(d.Dir).To(Equal(site.LTR))
	})
	It("returns independent copies", func() {
		d.ThemeConfig.Sidebar[0].Text = "changed"
		d.ThemeConfig.Nav = append(d.ThemeConfig.Nav, site.NavItem{Text: "x", Link: "/x"})
		other := site.Default()
		Expect(other.ThemeConfig.Sidebar[0].Text).To(Equal("Getting Started"))
		Expect(other.ThemeConfig.Nav).To(HaveLen(4))
	})
})
