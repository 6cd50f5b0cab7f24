// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import "context"

// Runner defines the minimal lifecycle contract for runnable applications.
type Runner interface {
	// Run executes the selected mode and blocks until it finishes or ctx is
	// cancelled.
	Run(ctx context.Context) error
}
