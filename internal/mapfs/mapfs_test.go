/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package mapfs_test

import (
	"io/fs"
	"testing"

	"bennypowers.dev/stepex/internal/mapfs"
)

func TestMapFileSystem(t *testing.T) {
	m := mapfs.New()
	m.AddFile("/project/features/a.steps.yaml", "steps: []", 0o644)

	data, err := m.ReadFile("project/features/a.steps.yaml")
	if err != nil || string(data) != "steps: []" {
		t.Errorf("ReadFile() = %q, %v", data, err)
	}

	tests := []struct {
		path string
		want bool
	}{
		{"/", true},
		{"/project", true},
		{"/project/features", true},
		{"/project/features/a.steps.yaml", true},
		{"/project/feat", false},
		{"/elsewhere", false},
	}
	for _, tt := range tests {
		if got := m.Exists(tt.path); got != tt.want {
			t.Errorf("Exists(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}

	info, err := m.Stat("/project/features")
	if err != nil || !info.IsDir() {
		t.Errorf("Stat(dir) = %v, %v", info, err)
	}

	var walked []string
	err = fs.WalkDir(m, "project", func(p string, d fs.DirEntry, err error) error {
		if err == nil && !d.IsDir() {
			walked = append(walked, p)
		}
		return err
	})
	if err != nil || len(walked) != 1 || walked[0] != "project/features/a.steps.yaml" {
		t.Errorf("WalkDir() = %v, %v", walked, err)
	}
}
