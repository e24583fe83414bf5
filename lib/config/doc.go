// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for the scrub
// command.
//
// Configuration comes from a single file named by either the
// SCRUB_CONFIG environment variable (via [Load]) or a --config flag
// (via [LoadFile]). When neither is given the command runs on
// [Default]. There is no file discovery.
//
// The file may contain development and production sections that
// override base values when [Config].Environment matches. Production
// defaults to warn-level JSON logs.
//
// Only log.output is variable-expanded: ${HOME} and ${VAR:-default}.
//
// The library packages (lib/secret, lib/random) take no configuration;
// this package only feeds the command's logger, secret size limit, and
// filler text generator.
package config
