// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package bench

import (
	"encoding/json"
	"os"
	"strings"
	"time"

	"github.com/ghodss/yaml"
	"github.com/pkg/errors"

	"github.com/go-air/d3x"
)

// Duration is a time.Duration read from either a duration string such
// as "30s" or a number of seconds.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if e := json.Unmarshal(b, &s); e == nil {
		v, e := time.ParseDuration(s)
		if e != nil {
			return e
		}
		d.Duration = v
		return nil
	}
	var f float64
	if e := json.Unmarshal(b, &f); e != nil {
		return errors.Errorf("invalid duration %s", b)
	}
	d.Duration = time.Duration(f * float64(time.Second))
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// Config holds the batch settings which may be read from a YAML file.
type Config struct {
	// Timeout bounds the search time of each file; zero means none.
	Timeout Duration `json:"timeout"`
	Memo    bool     `json:"memo"`
	Collect bool     `json:"collect"`
	// Poll is the number of search tree nodes between deadline polls.
	Poll int `json:"poll"`
	// Jobs is the number of files searched at once.
	Jobs    int      `json:"jobs"`
	Exts    []string `json:"exts"`
	Pattern string   `json:"pattern,omitempty"`
}

// DefaultConfig returns the configuration used without a config file.
func DefaultConfig() *Config {
	opts := d3x.DefaultOptions()
	return &Config{
		Memo:    opts.Memoize,
		Collect: opts.Collect,
		Poll:    opts.PollEvery,
		Jobs:    1,
		Exts:    append([]string(nil), DefaultExts...)}
}

// ReadConfig reads the YAML file at path over the defaults.  The result
// is not checked, so that settings given elsewhere may still fix it.
func ReadConfig(path string) (*Config, error) {
	data, e := os.ReadFile(path)
	if e != nil {
		return nil, errors.Wrap(e, "read config")
	}
	c := DefaultConfig()
	if e := c.Parse(data); e != nil {
		return nil, errors.Wrapf(e, "config %s", path)
	}
	return c, nil
}

// Parse decodes YAML data into c.  Keys absent from data keep their
// value.
func (c *Config) Parse(data []byte) error {
	return yaml.Unmarshal(data, c)
}

// Check reports settings which cannot be used.
func (c *Config) Check() error {
	if c.Timeout.Duration < 0 {
		return errors.Errorf("negative timeout %s", c.Timeout)
	}
	if c.Poll < 1 {
		return errors.Errorf("poll must be positive, got %d", c.Poll)
	}
	if c.Jobs < 1 {
		return errors.Errorf("jobs must be positive, got %d", c.Jobs)
	}
	for _, x := range c.Exts {
		if !strings.HasPrefix(x, ".") {
			return errors.Errorf("extension %q does not start with '.'", x)
		}
	}
	return nil
}

// Options returns the search options of c.
func (c *Config) Options() d3x.Options {
	opts := d3x.DefaultOptions()
	opts.Memoize = c.Memo
	opts.Collect = c.Collect
	opts.PollEvery = c.Poll
	return opts
}

// Marshal encodes c as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
