// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"os"
)

func main() {
	o := newOptions(os.Stdout, os.Stderr)
	cmd := newRootCmd(o)
	if err := cmd.Execute(); err != nil {
		o.log.Error(err)
		os.Exit(1)
	}
	if o.helped {
		os.Exit(1)
	}
}
