// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package gen contains generators for common
// families of sets, built as reduced diagrams.
//
// Package gen also supplies a random searcher, which returns
// random results within a random period of time.
package gen
