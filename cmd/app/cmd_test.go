// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/plugin-studio/sitedesc/cmd/app"
	"github.com/plugin-studio/sitedesc/pkg/pages"
	"github.com/plugin-studio/sitedesc/pkg/site"
	"github.com/plugin-studio/sitedesc/pkg/version"
)

var _ = Describe("sitedesc", func() {
	var (
		dir     string
		home    string
		oldHome string
		out     *bytes.Buffer
		args    []string
		err     error
	)
	BeforeEach(func() {
		dir, err = os.MkdirTemp("", "sitedesc")
		Expect(err).NotTo(HaveOccurred())
		home = filepath.Join(dir, "home")
		Expect(os.Mkdir(home, 0755)).To(Succeed())
		oldHome = os.Getenv("HOME")
		Expect(os.Setenv("HOME", home)).To(Succeed())
		out = &bytes.Buffer{}
	})
	AfterEach(func() {
		Expect(os.Setenv("HOME", oldHome)).To(Succeed())
		Expect(os.RemoveAll(dir)).To(Succeed())
	})
	JustBeforeEach(func() {
		cmd := app.NewCommand(context.Background())
		cmd.SetArgs(args)
		cmd.SetOut(out)
		cmd.SetErr(&bytes.Buffer{})
		err = cmd.Execute()
	})

	Describe("render", func() {
		BeforeEach(func() {
			args = []string{"render", "-d", filepath.Join(dir, ".vitepress")}
		})
		It("writes the generator module", func() {
			Expect(err).NotTo(HaveOccurred())
			d, err := site.ParseFile(filepath.Join(dir, ".vitepress", "config.mjs"))
			Expect(err).NotTo(HaveOccurred())
			Expect(d).To(Equal(site.Default()))
		})
		Context("in json", func() {
			BeforeEach(func() {
				args = append(args, "--format", "json", "--name", "site")
			})
			It("writes a json file", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(filepath.Join(dir, ".vitepress", "site.json")).To(BeAnExistingFile())
			})
		})
		Context("in an unknown format", func() {
			BeforeEach(func() {
				args = append(args, "--format", "toml")
			})
			It("fails", func() {
				Expect(err).To(MatchError(site.ErrUnsupportedFormat))
			})
		})
		Context("dry run", func() {
			BeforeEach(func() {
				args = append(args, "--dry-run")
			})
			It("prints the projected file instead of writing it", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(out.String()).To(ContainSubstring("config.mjs ("))
				Expect(filepath.Join(dir, ".vitepress", "config.mjs")).NotTo(BeAnExistingFile())
			})
		})
		Context("with an invalid descriptor file", func() {
			BeforeEach(func() {
				d := site.Default()
				d.ThemeConfig.Search.Provider = "solr"
				b, err := site.Marshal(d, site.FormatYAML)
				Expect(err).NotTo(HaveOccurred())
				file := filepath.Join(dir, "descriptor.yaml")
				Expect(os.WriteFile(file, b, 0644)).To(Succeed())
				args = append(args, "--descriptor", file)
			})
			It("refuses to write", func() {
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("themeConfig.search.provider"))
				Expect(filepath.Join(dir, ".vitepress", "config.mjs")).NotTo(BeAnExistingFile())
			})
		})
		Context("with a config file", func() {
			BeforeEach(func() {
				cfg := filepath.Join(dir, "config.yaml")
				Expect(os.WriteFile(cfg, []byte("format: json\nname: from-config\n"), 0644)).To(Succeed())
				args = append(args, "--config", cfg)
			})
			It("takes the options from the file", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(filepath.Join(dir, ".vitepress", "from-config.json")).To(BeAnExistingFile())
			})
			Context("and an environment override", func() {
				BeforeEach(func() {
					Expect(os.Setenv("SITEDESC_FORMAT", "yaml")).To(Succeed())
				})
				AfterEach(func() {
					Expect(os.Unsetenv("SITEDESC_FORMAT")).To(Succeed())
				})
				It("prefers the environment", func() {
					Expect(err).NotTo(HaveOccurred())
					Expect(filepath.Join(dir, ".vitepress", "from-config.yaml")).To(BeAnExistingFile())
				})
			})
		})
		Context("with a missing config file", func() {
			BeforeEach(func() {
				args = append(args, "--config", filepath.Join(dir, "missing.yaml"))
			})
			It("fails", func() {
				Expect(err).To(HaveOccurred())
			})
		})
		Context("with the default config file", func() {
			BeforeEach(func() {
				Expect(os.MkdirAll(filepath.Join(home, app.SitedescHomeDir), 0755)).To(Succeed())
				Expect(os.WriteFile(filepath.Join(home, app.SitedescHomeDir, "config.yaml"), []byte("name: home\n"), 0644)).To(Succeed())
			})
			It("reads it", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(filepath.Join(dir, ".vitepress", "home.mjs")).To(BeAnExistingFile())
			})
		})
	})

	Describe("print", func() {
		BeforeEach(func() {
			args = []string{"print"}
		})
		It("prints yaml", func() {
			Expect(err).NotTo(HaveOccurred())
			want, err := site.Marshal(site.Default(), site.FormatYAML)
			Expect(err).NotTo(HaveOccurred())
			Expect(out.String()).To(Equal(string(want)))
		})
	})

	Describe("validate", func() {
		var content string
		BeforeEach(func() {
			content = filepath.Join(dir, "docs")
			for _, l := range site.Links(site.Default()) {
				if !l.IsInternal() {
					continue
				}
				file := filepath.Join(content, filepath.FromSlash(pages.Candidates(l.Destination)[0]))
				Expect(os.MkdirAll(filepath.Dir(file), 0755)).To(Succeed())
				Expect(os.WriteFile(file, []byte("# "+l.Text+"\n"), 0644)).To(Succeed())
			}
			args = []string{"validate", "--content-dir", content}
		})
		It("accepts a complete content tree", func() {
			Expect(err).NotTo(HaveOccurred())
		})
		Context("with a missing page", func() {
			BeforeEach(func() {
				Expect(os.Remove(filepath.Join(content, "guide", "chat-interface.md"))).To(Succeed())
			})
			It("reports the link", func() {
				Expect(err).To(MatchError(pages.ErrPageNotFound))
				Expect(err.Error()).To(ContainSubstring("themeConfig.sidebar[1].items[1].link"))
			})
		})
		Context("with a content dir that is a file", func() {
			BeforeEach(func() {
				args = []string{"validate", "--content-dir", filepath.Join(content, "index.md")}
			})
			It("fails", func() {
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("not a directory"))
			})
		})
	})

	Describe("gen-cmd-docs", func() {
		var reference string
		BeforeEach(func() {
			reference = filepath.Join(dir, "docs", "reference")
			args = []string{"gen-cmd-docs", "-d", reference}
		})
		It("writes a titled page per command", func() {
			Expect(err).NotTo(HaveOccurred())
			b, err := os.ReadFile(filepath.Join(reference, "sitedesc_render.md"))
			Expect(err).NotTo(HaveOccurred())
			Expect(string(b)).To(HavePrefix("---\ntitle: sitedesc render\n---\n"))
			Expect(string(b)).To(ContainSubstring("](sitedesc)"))
			Expect(string(b)).NotTo(ContainSubstring("](sitedesc.md)"))
		})
		It("writes pages the resolver can title", func() {
			Expect(err).NotTo(HaveOccurred())
			p, err := (&pages.Resolver{Root: os.DirFS(reference)}).Resolve("/sitedesc_validate")
			Expect(err).NotTo(HaveOccurred())
			Expect(p.Title).To(Equal("sitedesc validate"))
		})
		Context("as man pages", func() {
			BeforeEach(func() {
				args = append(args, "-f", "man")
			})
			It("writes section 1 pages", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(filepath.Join(reference, "sitedesc-render.1")).To(BeAnExistingFile())
			})
		})
		Context("in an unknown format", func() {
			BeforeEach(func() {
				args = append(args, "-f", "pdf")
			})
			It("fails", func() {
				Expect(err).To(MatchError(ContainSubstring("unknown format")))
			})
		})
	})

	Describe("completion", func() {
		BeforeEach(func() {
			args = []string{"completion", "bash"}
		})
		It("prints the bash script", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(out.String()).To(ContainSubstring("bash completion for sitedesc"))
		})
		Context("for zsh", func() {
			BeforeEach(func() {
				args = []string{"completion", "zsh"}
			})
			It("prints the zsh script", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(out.String()).To(ContainSubstring("#compdef _sitedesc sitedesc"))
			})
		})
		Context("for an unknown shell", func() {
			BeforeEach(func() {
				args = []string{"completion", "tcsh"}
			})
			It("fails", func() {
				Expect(err).To(HaveOccurred())
			})
		})
	})

	Describe("version", func() {
		BeforeEach(func() {
			args = []string{"version"}
		})
		It("prints the version", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(out.String()).To(Equal(version.Version + "\n"))
		})
	})
})
