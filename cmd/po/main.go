// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command po inspects delimited data files as tables:
// their shape and dtypes, and sub-tables selected by
// index expressions such as "1:3, 'a':'c'".
package main

import (
	"os"

	"github.com/podata/po/base/errors"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		errors.Log(err)
		os.Exit(1)
	}
}
