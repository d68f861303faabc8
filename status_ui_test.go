package main

import (
	"strings"
	"testing"

	"github.com/milk9111/spritemarker/session"
)

func TestStateLine(t *testing.T) {
	ctrl := session.New(testFrames(), "", session.DefaultLayout())
	if got := stateLine(ctrl); !strings.HasPrefix(got, "Browsing") {
		t.Fatalf("browsing line = %q", got)
	}

	e := newEditor(ctrl, nil)
	e.handle(inputFrame{Cursor: cellCenter(e, 1), Click: true}, 0)
	got := stateLine(ctrl)
	if !strings.Contains(got, "Editing #1 crate.png as Object") {
		t.Fatalf("editing line = %q", got)
	}
}
