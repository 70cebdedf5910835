// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package bench

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// DefaultExts are the extensions of the files selected by default.
var DefaultExts = []string{".zdd", ".txt"}

type walk struct {
	root    string
	pattern string
	exts    []string
	Collect []string
}

// Walk lists the entries of w.root.  A symlinked root is followed.
func (w *walk) Walk() error {
	ds, e := os.ReadDir(w.root)
	if e != nil {
		return e
	}
	for _, d := range ds {
		p := filepath.Join(w.root, d.Name())
		if !w.regular(p, d) || !w.ext(p) {
			continue
		}
		if w.pattern != "" {
			matched, e := filepath.Match(w.pattern, d.Name())
			if e != nil {
				return errors.Wrapf(e, "pattern %q", w.pattern)
			}
			if !matched {
				continue
			}
		}
		w.Collect = append(w.Collect, p)
	}
	return nil
}

func (w *walk) regular(p string, d fs.DirEntry) bool {
	if d.Type().IsRegular() {
		return true
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	st, e := os.Stat(p)
	return e == nil && st.Mode().IsRegular()
}

func (w *walk) ext(p string) bool {
	x := filepath.Ext(p)
	for _, y := range w.exts {
		if x == y {
			return true
		}
	}
	return false
}

// Select returns the regular files directly in dir with one of the
// extensions exts, in lexical order.  Subdirectories are not descended.
// If exts is empty, DefaultExts is used.
func Select(dir string, exts ...string) ([]string, error) {
	return MatchSelect("", dir, exts...)
}

// MatchSelect is like Select but also filters the file names with
// filepath.Match using pattern.
func MatchSelect(pattern, dir string, exts ...string) ([]string, error) {
	if len(exts) == 0 {
		exts = DefaultExts
	}
	st, e := os.Stat(dir)
	if e != nil {
		return nil, errors.Wrap(e, "cannot open directory")
	}
	if !st.IsDir() {
		return nil, errors.Errorf("%s is not a directory", dir)
	}
	w := &walk{root: dir, pattern: pattern, exts: exts}
	if e := w.Walk(); e != nil {
		return nil, errors.Wrapf(e, "couldn't walk %s", dir)
	}
	return w.Collect, nil
}
