// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

//go:build tools
// +build tools

// Package tools pins the code generators run by go generate, e.g. the
// counterfeiter fakes in pkg/httpclient and pkg/linkvalidator.
package tools

import (
	_ "github.com/maxbrunsfeld/counterfeiter/v6"
)
