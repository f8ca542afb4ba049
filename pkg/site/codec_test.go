// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package site_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
	"github.com/plugin-studio/sitedesc/pkg/site"
	"k8s.io/utils/pointer"
)

var _ = Describe("Codec", func() {
	DescribeTable("round trip",
		func(format site.Format) {
			in := site.Default()
			in.ThemeConfig.Sidebar[3].Collapsed = pointer.BoolPtr(true)
			in.ThemeConfig.Outline.Level = []int{2, 3}
			b, err := site.Marshal(in, format)
			Expect(err).NotTo(HaveOccurred())
			out, err := site.Parse(b, format)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal(in))
		},
		Entry("json", site.FormatJSON),
		Entry("yaml", site.FormatYAML),
		Entry("module", site.FormatModule),
	)

	It("writes the generator field names", func() {
		b, err := site.Marshal(site.Default(), site.FormatJSON)
		Expect(err).NotTo(HaveOccurred())
		s := string(b)
		Expect(s).To(ContainSubstring(`"themeConfig"`))
		Expect(s).To(ContainSubstring(`"provider": "local"`))
		Expect(s).To(ContainSubstring(`"docFooter"`))
		Expect(s).To(ContainSubstring(`"dateStyle": "full"`))
		Expect(s).NotTo(ContainSubstring(`"collapsed"`))
	})

	It("exports the module as default", func() {
		b, err := site.Marshal(site.Default(), site.FormatModule)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(b)).To(HavePrefix("export default {"))
	})

	It("accepts a trailing semicolon in modules", func() {
		d, err := site.Parse([]byte(`export default {"title": "t", "lang": "en", "dir": "ltr"};`), site.FormatModule)
		Expect(err).NotTo(HaveOccurred())
		Expect(d.Title).To(Equal("t"))
	})

	It("rejects modules without a default export", func() {
		_, err := site.Parse([]byte(`{"title": "t"}`), site.FormatModule)
		Expect(err).To(HaveOccurred())
	})

	It("rejects unknown fields", func() {
		_, err := site.Parse([]byte(`{"title": "t", "base": "/docs/"}`), site.FormatJSON)
		Expect(err).To(HaveOccurred())
		_, err = site.Parse([]byte("title: t\nbase: /docs/\n"), site.FormatYAML)
		Expect(err).To(HaveOccurred())
	})

	DescribeTable("rejects content after the descriptor",
		func(in string, format site.Format) {
			_, err := site.Parse([]byte(in), format)
			Expect(err).To(MatchError(site.ErrTrailingContent))
		},
		Entry("module followed by a statement", `export default {"title": "t"}; console.log("x")`, site.FormatModule),
		Entry("module with two exports", "export default {\"title\": \"t\"}\nexport default {\"title\": \"u\"}", site.FormatModule),
		Entry("json with two objects", `{"title":"t"} {"title":"u"}`, site.FormatJSON),
		Entry("json followed by garbage", `{"title":"t"} x`, site.FormatJSON),
		Entry("yaml with two documents", "title: t\n---\ntitle: u\n", site.FormatYAML),
	)

	It("accepts trailing whitespace", func() {
		d, err := site.Parse([]byte("{\"title\": \"t\"}\n\n"), site.FormatJSON)
		Expect(err).NotTo(HaveOccurred())
		Expect(d.Title).To(Equal("t"))
		d, err = site.Parse([]byte("title: t\n\n"), site.FormatYAML)
		Expect(err).NotTo(HaveOccurred())
		Expect(d.Title).To(Equal("t"))
	})

	It("rejects unsupported formats", func() {
		_, err := site.Marshal(site.Default(), site.Format("toml"))
		Expect(err).To(MatchError(site.ErrUnsupportedFormat))
		_, err = site.Parse(nil, site.Format("toml"))
		Expect(err).To(MatchError(site.ErrUnsupportedFormat))
	})

	Describe("ParseFile", func() {
		var dir string
		BeforeEach(func() {
			var err error
			dir, err = os.MkdirTemp("", "sitedesc")
			Expect(err).NotTo(HaveOccurred())
		})
		AfterEach(func() {
			Expect(os.RemoveAll(dir)).To(Succeed())
		})
		It("picks the format from the extension", func() {
			b, err := site.Marshal(site.Default(), site.FormatYAML)
			Expect(err).NotTo(HaveOccurred())
			file := filepath.Join(dir, "config.yml")
			Expect(os.WriteFile(file, b, 0644)).To(Succeed())
			d, err := site.ParseFile(file)
			Expect(err).NotTo(HaveOccurred())
			Expect(d).To(Equal(site.Default()))
		})
		It("fails on unknown extensions", func() {
			_, err := site.ParseFile(filepath.Join(dir, "config.toml"))
			Expect(err).To(MatchError(site.ErrUnsupportedFormat))
		})
		It("fails on missing files", func() {
			_, err := site.ParseFile(filepath.Join(dir, "config.json"))
			Expect(err).To(HaveOccurred())
		})
	})
})

var _ = Describe("JSON output", func() {
	It("does not escape ampersands", func() {
		b, err := site.Marshal(site.Default(), site.FormatJSON)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(b)).To(ContainSubstring(`"Installation & Management"`))
	})
})
