package log

import (
	qt "github.com/frankban/quicktest"
	"go.uber.org/zap"
	"os"
	"path/filepath"
	"testing"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

func TestLevelFromString(t *testing.T) {
	c := qt.New(t)
	c.Assert(levelFromString("debug"), qt.Equals, zap.DebugLevel)
	c.Assert(levelFromString("error"), qt.Equals, zap.ErrorLevel)
	c.Assert(levelFromString("loud"), qt.Equals, zap.InfoLevel)
}

func TestInit(t *testing.T) {
	c := qt.New(t)
	path := filepath.Join(t.TempDir(), "crackme.log")
	Init("info", path)
	c.Cleanup(func() { Init("error", "stderr") })

	Debugf("hidden %d", 1)
	Infof("shown %d", 2)
	Logger().Warnw("structured", "chunk", 3)
	c.Assert(Logger().Sync(), qt.IsNil)

	b, err := os.ReadFile(path)
	c.Assert(err, qt.IsNil)
	out := string(b)
	c.Assert(out, qt.Not(qt.Contains), "hidden 1")
	c.Assert(out, qt.Contains, "INFO")
	c.Assert(out, qt.Contains, "shown 2")
	c.Assert(out, qt.Contains, "structured")
	c.Assert(out, qt.Contains, `{"chunk": 3}`)
}
