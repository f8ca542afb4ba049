// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package site

// Default returns the site descriptor. Every call returns an independent
// copy, so callers cannot change what other callers observe.
func Default() *Descriptor {
	return &Descriptor{
		Title:       "Plugin Studio",
		Description: "Generate, install and manage plugins from a conversational interface",
		Lang:        "en-US",
		Dir:         LTR,
		ThemeConfig: ThemeConfig{
			Nav: []NavItem{
				{Text: "Home", Link: "/"},
				{Text: "Guide", Link: "/guide/getting-started"},
				{Text: "Development", Link: "/development/setup"},
				{Text: "Support", Link: "/support/faq"},
			},
			Sidebar: []SidebarGroup{
				{
					Text: "Getting Started",
					Items: []NavItem{
						{Text: "Introduction", Link: "/guide/getting-started"},
						{Text: "Quick Start", Link: "/guide/quick-start"},
						{Text: "Configuration", Link: "/guide/configuration"},
					},
				},
				{
					Text: "Guides",
					Items: []NavItem{
						{Text: "System Architecture", Link: "/guide/architecture"},
						{Text: "Chat Interface", Link: "/guide/chat-interface"},
						{Text: "Plugin Generation", Link: "/guide/plugin-generation"},
						{Text: "Installation & Management", Link: "/guide/installation-management"},
					},
				},
				{
					Text: "Development",
					Items: []NavItem{
						{Text: "Development Setup", Link: "/development/setup"},
						{Text: "Contributing", Link: "/development/contributing"},
						{Text: "Testing", Link: "/development/testing"},
					},
				},
				{
					Text: "Support",
					Items: []NavItem{
						{Text: "FAQ", Link: "/support/faq"},
						{Text: "Troubleshooting", Link: "/support/troubleshooting"},
					},
				},
			},
			Search: Search{Provider: SearchLocal},
			SocialLinks: []SocialLink{
				{Icon: IconGitHub, Link: "https://github.com/plugin-studio/plugin-studio"},
			},
			Footer: Footer{
				Message:   "Released under the MIT License.",
				Copyright: "Copyright © 2024-present Plugin Studio Contributors",
			},
			DocFooter: DocFooter{
				Prev: "Previous page",
				Next: "Next page",
			},
			Outline: Outline{
				Label: "On this page",
			},
			LastUpdated: LastUpdated{
				Text: "Last updated",
				FormatOptions: FormatOptions{
					DateStyle: StyleFull,
					TimeStyle: StyleMedium,
				},
			},
		},
	}
}
