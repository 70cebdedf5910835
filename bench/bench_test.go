// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package bench

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-air/d3x"
	"github.com/go-air/d3x/gen"
	"github.com/go-air/d3x/inter"
)

func writeDiagram(t *testing.T, dir, name string, g func(b inter.Builder)) string {
	t.Helper()
	b := d3x.NewBuilder()
	g(b)
	var buf bytes.Buffer
	require.NoError(t, b.Diagram().Write(&buf))
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, buf.Bytes(), 0644))
	return p
}

func writeText(t *testing.T, dir, name, text string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(text), 0644))
	return p
}

func readRows(t *testing.T, buf *bytes.Buffer) [][]string {
	t.Helper()
	recs, e := csv.NewReader(buf).ReadAll()
	require.NoError(t, e)
	require.NotEmpty(t, recs)
	require.Equal(t, Header, recs[0])
	return recs[1:]
}

func run(t *testing.T, b *Batch) [][]string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, b.Run(context.Background(), NewCSVWriter(&buf)))
	return readRows(t, &buf)
}

func TestBatchContinuesAfterFailure(t *testing.T) {
	dir := t.TempDir()
	writeText(t, dir, "bad.zdd", "x 1 T 0 T 1\n")
	writeDiagram(t, dir, "good.zdd", func(b inter.Builder) { gen.Singletons(b, 2) })
	writeText(t, dir, "invalid.txt", "10 1 N 99 T 1\n")

	paths, e := Select(dir)
	require.NoError(t, e)
	require.Len(t, paths, 3)

	reg := prometheus.NewRegistry()
	m, e := NewMetrics(reg)
	require.NoError(t, e)
	var con bytes.Buffer
	b := NewBatch(paths, DefaultConfig())
	b.Metrics = m
	b.Console = NewConsole(&con, len(paths))
	rows := run(t, b)

	require.Len(t, rows, 3)
	assert.Equal(t, []string{"bad.zdd", "-", "-", "-", "-", "FAILED"}, rows[0])
	assert.Equal(t, []string{"good.zdd", "5", "2", "5"}, rows[1][:4])
	assert.Equal(t, "SUCCESS", rows[1][5])
	_, e = strconv.ParseFloat(rows[1][4], 64)
	assert.NoError(t, e)
	assert.Equal(t, []string{"invalid.txt", "-", "-", "-", "-", "FAILED"}, rows[2])

	var fe *d3x.FormatError
	assert.True(t, errors.As(b.InstRuns[0].Err, &fe))
	var ve *d3x.ValidationError
	assert.True(t, errors.As(b.InstRuns[2].Err, &ve))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Files.WithLabelValues("FAILED")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Files.WithLabelValues("SUCCESS")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.Files.WithLabelValues("TIMEOUT")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Solutions))
	assert.Equal(t, 5.0, testutil.ToFloat64(m.Nodes))

	out := con.String()
	assert.Contains(t, out, "Processing 3 files...\n")
	assert.Contains(t, out, "Processing [1/3]: bad.zdd...\n  -> FAILED: ")
	assert.Contains(t, out, "Processing [2/3]: good.zdd...\n  -> SUCCESS: 2 solutions, ")

	s := Summarize(b.InstRuns)
	assert.Equal(t, 3, s.Files)
	assert.Equal(t, 1, s.Success)
	assert.Equal(t, 2, s.Failed)
	assert.Equal(t, int64(2), s.Solutions)
	assert.Equal(t, 2, s.MaxVars)
}

func TestInstRunVars(t *testing.T) {
	dir := t.TempDir()
	good := writeDiagram(t, dir, "k.zdd", func(b inter.Builder) { gen.KSubsets(b, 7, 3) })
	bad := writeText(t, dir, "bad.zdd", "1 2 T 0\n")
	invalid := writeText(t, dir, "invalid.zdd", "10 4 N 99 T 1\n11 6 N 10 T 1\n")
	var con bytes.Buffer
	c := NewConsole(&con, 3)

	ir, e := NewInstRun(context.Background(), 0, good, nil, d3x.DefaultOptions(), 0)
	require.NoError(t, e)
	assert.Equal(t, Success, ir.Status)
	assert.Equal(t, 7, ir.Vars)
	c.Report(ir)
	assert.Contains(t, con.String(), "  -> SUCCESS: 35 solutions, ")
	assert.Contains(t, con.String(), ", 7 vars\n")

	ir, e = NewInstRun(context.Background(), 1, bad, nil, d3x.DefaultOptions(), 0)
	require.NoError(t, e)
	assert.Equal(t, Failed, ir.Status)
	assert.Equal(t, 0, ir.Vars)

	ir, e = NewInstRun(context.Background(), 2, invalid, nil, d3x.DefaultOptions(), 0)
	require.NoError(t, e)
	assert.Equal(t, Failed, ir.Status)
	assert.Equal(t, 2, ir.Vars)
}

func TestBatchEmpty(t *testing.T) {
	paths, e := Select(t.TempDir())
	require.NoError(t, e)
	assert.Empty(t, paths)
	var buf bytes.Buffer
	b := NewBatch(paths, DefaultConfig())
	require.NoError(t, b.Run(context.Background(), NewCSVWriter(&buf)))
	assert.Equal(t, "Filename,Nodes,sols,Updates,Time(s),Status\n", buf.String())
}

func TestBatchOrder(t *testing.T) {
	dir := t.TempDir()
	for i := 1; i <= 8; i++ {
		n := i
		writeDiagram(t, dir, "p"+strconv.Itoa(i)+".zdd", func(b inter.Builder) { gen.PowerSet(b, n) })
	}
	paths, e := Select(dir)
	require.NoError(t, e)
	cfg := DefaultConfig()
	cfg.Jobs = 4
	b := NewBatch(paths, cfg)
	rows := run(t, b)
	require.Len(t, rows, 8)
	for i, row := range rows {
		assert.Equal(t, "p"+strconv.Itoa(i+1)+".zdd", row[0])
		assert.Equal(t, strconv.Itoa(1<<(i+1)), row[2])
		assert.Equal(t, "SUCCESS", row[5])
	}
}

func TestBatchTimeout(t *testing.T) {
	b := &Batch{
		Paths:   []string{"slow.zdd"},
		Options: d3x.DefaultOptions(),
		Timeout: 5 * time.Millisecond,
		Open: func(string, d3x.Options) (inter.Searcher, int, error) {
			return gen.RandSearcher(time.Hour), 0, nil
		}}
	rows := run(t, b)
	require.Len(t, rows, 1)
	assert.Equal(t, "TIMEOUT", rows[0][5])
	assert.NotEqual(t, "-", rows[0][1])
	assert.True(t, b.InstRuns[0].Result.TimedOut)
	assert.GreaterOrEqual(t, b.InstRuns[0].Dur, 5*time.Millisecond)
}

type brokenSearcher struct{}

func (brokenSearcher) Search(inter.Deadline) (inter.Result, error) {
	return inter.Result{}, &d3x.InvariantError{Msg: "broken"}
}

func TestBatchFatal(t *testing.T) {
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	b := &Batch{
		Paths: []string{"a.zdd"},
		Log:   log,
		Open: func(string, d3x.Options) (inter.Searcher, int, error) {
			return brokenSearcher{}, 0, nil
		}}
	var buf bytes.Buffer
	e := b.Run(context.Background(), NewCSVWriter(&buf))
	require.Error(t, e)
	assert.True(t, d3x.IsFatal(e))
	rows := readRows(t, &buf)
	require.Len(t, rows, 1)
	assert.Equal(t, "FAILED", rows[0][5])
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "a.zdd", hook.LastEntry().Data["file"])
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
}

func TestInstRunCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	open := func(string, d3x.Options) (inter.Searcher, int, error) {
		return gen.RandSearcher(time.Hour), 0, nil
	}
	ir, e := NewInstRun(ctx, 0, "x.zdd", open, d3x.DefaultOptions(), 0)
	require.NoError(t, e)
	assert.Equal(t, Timeout, ir.Status)
}

func TestSelect(t *testing.T) {
	dir := t.TempDir()
	for _, f := range []string{"b.txt", "a.zdd", "c.cnf", "d.zdd.gz", "e"} {
		writeText(t, dir, f, "")
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0755))
	writeText(t, filepath.Join(dir, "sub"), "f.zdd", "")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "g.zdd"), 0755))

	paths, e := Select(dir)
	require.NoError(t, e)
	assert.Equal(t, []string{filepath.Join(dir, "a.zdd"), filepath.Join(dir, "b.txt")}, paths)

	paths, e = Select(dir, ".cnf")
	require.NoError(t, e)
	assert.Equal(t, []string{filepath.Join(dir, "c.cnf")}, paths)

	paths, e = MatchSelect("b*", dir)
	require.NoError(t, e)
	assert.Equal(t, []string{filepath.Join(dir, "b.txt")}, paths)

	_, e = Select(filepath.Join(dir, "missing"))
	assert.Error(t, e)
	_, e = Select(filepath.Join(dir, "a.zdd"))
	assert.Error(t, e)
}

func TestSelectSymlinkedDir(t *testing.T) {
	dir := t.TempDir()
	writeText(t, dir, "a.zdd", "")
	writeText(t, dir, "b.txt", "")
	link := filepath.Join(t.TempDir(), "suite")
	if e := os.Symlink(dir, link); e != nil {
		t.Skipf("symlinks unsupported: %v", e)
	}
	require.NoError(t, os.Symlink(filepath.Join(dir, "a.zdd"), filepath.Join(dir, "c.zdd")))

	paths, e := Select(link)
	require.NoError(t, e)
	assert.Equal(t, []string{
		filepath.Join(link, "a.zdd"),
		filepath.Join(link, "b.txt"),
		filepath.Join(link, "c.zdd")}, paths)
}

func TestStopwatch(t *testing.T) {
	w := NewStopwatch(0)
	assert.Equal(t, time.Duration(0), w.Elapsed())
	w.Start()
	time.Sleep(2 * time.Millisecond)
	w.Stop()
	d := w.Elapsed()
	assert.GreaterOrEqual(t, d, 2*time.Millisecond)
	assert.Equal(t, d, w.Elapsed())
	assert.False(t, w.TimeBoundBroken())

	w.SetTimeBound(time.Millisecond)
	assert.Equal(t, time.Millisecond, w.TimeBound())
	assert.True(t, w.Expired())

	w.Start()
	time.Sleep(time.Millisecond)
	w.Stop()
	assert.Greater(t, w.Elapsed(), d)

	w.Reset()
	assert.Equal(t, time.Duration(0), w.Elapsed())
	assert.False(t, w.TimeBoundBroken())
	assert.Equal(t, time.Millisecond, w.TimeBound())
}

func TestConfig(t *testing.T) {
	c := DefaultConfig()
	require.NoError(t, c.Parse([]byte("timeout: 2s\njobs: 4\nexts: [.zdd]\n")))
	assert.Equal(t, 2*time.Second, c.Timeout.Duration)
	assert.Equal(t, 4, c.Jobs)
	assert.Equal(t, []string{".zdd"}, c.Exts)
	assert.True(t, c.Memo)
	assert.True(t, c.Options().Memoize)

	c = DefaultConfig()
	require.NoError(t, c.Parse([]byte("timeout: 1.5\nmemo: false\n")))
	assert.Equal(t, 1500*time.Millisecond, c.Timeout.Duration)
	assert.False(t, c.Options().Memoize)

	require.NoError(t, DefaultConfig().Check())
	for _, bad := range []string{"jobs: 0\n", "poll: -1\n", "exts: [zdd]\n", "timeout: soon\n", "timeout: -1s\n"} {
		c := DefaultConfig()
		e := c.Parse([]byte(bad))
		if e == nil {
			e = c.Check()
		}
		assert.Error(t, e, bad)
	}

	p := filepath.Join(t.TempDir(), "c.yaml")
	data, e := c.Marshal()
	require.NoError(t, e)
	require.NoError(t, os.WriteFile(p, data, 0644))
	o, e := ReadConfig(p)
	require.NoError(t, e)
	assert.Equal(t, c, o)
}
