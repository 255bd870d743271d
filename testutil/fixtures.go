/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package testutil provides fixtures and golden files for stepex tests.
package testutil

import (
	"flag"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"bennypowers.dev/stepex/internal/mapfs"
)

var updateGolden = flag.Bool("update", false, "update golden files with actual output")

// testdata returns the first testdata directory found walking up from the
// package under test, which may be nested up to three levels below the
// module root.
func testdata(t *testing.T) string {
	t.Helper()
	dir := "testdata"
	for range 4 {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
		dir = filepath.Join("..", dir)
	}
	t.Fatal("no testdata directory found")
	return ""
}

// NewFixtureFS copies testdata/<fixtureDir> into an in-memory filesystem
// rooted at rootPath.
func NewFixtureFS(t *testing.T, fixtureDir, rootPath string) *mapfs.MapFileSystem {
	t.Helper()
	src := filepath.Join(testdata(t), fixtureDir)
	mfs := mapfs.New()
	err := filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		mfs.AddFile(filepath.ToSlash(filepath.Join(rootPath, rel)), string(content), 0o644)
		return nil
	})
	if err != nil {
		t.Fatalf("loading fixtures from %s: %v", src, err)
	}
	return mfs
}

// LoadFixtureFile reads testdata/<name>.
func LoadFixtureFile(t *testing.T, name string) []byte {
	t.Helper()
	content, err := os.ReadFile(filepath.Join(testdata(t), name))
	if err != nil {
		t.Fatalf("reading fixture: %v", err)
	}
	return content
}

// Golden compares actual with testdata/<name>. With -update it rewrites the
// golden file instead.
func Golden(t *testing.T, name string, actual []byte) {
	t.Helper()
	path := filepath.Join(testdata(t), name)
	if *updateGolden {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, actual, 0o644); err != nil {
			t.Fatal(err)
		}
		t.Logf("updated %s", path)
		return
	}
	want, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading golden file (run with -update to create it): %v", err)
	}
	if diff := cmp.Diff(string(want), string(actual)); diff != "" {
		t.Errorf("%s mismatch (-want +got):\n%s", name, diff)
	}
}
