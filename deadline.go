// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package d3x

import (
	"time"

	"github.com/go-air/d3x/inter"
)

type at time.Time

func (a at) Expired() bool {
	return !time.Now().Before(time.Time(a))
}

// Timeout returns a deadline expiring d from now.  A non-positive d
// returns nil, which never expires.
func Timeout(d time.Duration) inter.Deadline {
	if d <= 0 {
		return nil
	}
	return at(time.Now().Add(d))
}
