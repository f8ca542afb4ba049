// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package version

// Version is set during compile time via -ldflags "-X github.com/plugin-studio/sitedesc/pkg/version.Version=<tag>".
// Development builds keep the placeholder.
var Version = "binary was not built properly"
