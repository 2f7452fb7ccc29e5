// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"fmt"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// suggestThreshold is the minimum similarity for a did-you-mean suggestion.
const suggestThreshold = 0.5

// suggest returns the name most similar to the given one,
// or "" if none is similar enough.
func suggest(name string, names []string) string {
	lev := metrics.NewLevenshtein()
	best, bestSim := "", suggestThreshold
	for _, nm := range names {
		if sim := strutil.Similarity(name, nm, lev); sim >= bestSim {
			best, bestSim = nm, sim
		}
	}
	return best
}

// notFound returns an [ErrColumnNotFound] error for the given name,
// with a suggestion from the given column names when one is close.
func notFound(fn, name string, names []string) error {
	if s := suggest(name, names); s != "" {
		return fmt.Errorf("frame.Table %s: column %q not found (did you mean %q?): %w", fn, name, s, ErrColumnNotFound)
	}
	return fmt.Errorf("frame.Table %s: column %q not found: %w", fn, name, ErrColumnNotFound)
}
