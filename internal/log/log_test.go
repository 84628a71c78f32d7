package log

import (
	"bytes"
	"testing"
)

func TestWriterLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriterLogger(&buf, LevelWarn)
	l.Debugf("hidden %d", 1)
	l.Info("hidden")
	l.Warnf("k=%d d=%d", 4, 1)
	l.Error("boom", "!")

	want := "WARN: k=4 d=1\nERROR: boom!\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	prev := logger
	defer SetLogger(prev)

	SetLogger(NewWriterLogger(&buf, LevelDebug))
	Debugf("windows=%d\n", 27)
	Infof("ok")

	if got, want := buf.String(), "DEBUG: windows=27\nINFO: ok\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}
