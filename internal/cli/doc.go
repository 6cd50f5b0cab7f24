// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli implements the twconfig command runtime.
//
// It wires the document sources, services, terminal views, HTTP server and
// background workers into a single process lifecycle selected by the run
// mode.
package cli
