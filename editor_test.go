package main

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/milk9111/spritemarker/geom"
	"github.com/milk9111/spritemarker/marker"
	"github.com/milk9111/spritemarker/session"
)

func testFrames() marker.Collection {
	return marker.Collection{
		{SourceRect: geom.NewRect(0, 0, 32, 32), Tag: marker.Ground(), Name: "grass.png", Index: 0},
		{SourceRect: geom.NewRect(32, 0, 32, 32), Tag: marker.Object(), Name: "crate.png", Index: 1},
	}
}

func cellCenter(e *editor, index int) geom.Point {
	return geom.Center(e.ctrl.Placements()[index].Rect)
}

func TestEditorSaveShortcut(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet-marked.json")
	e := newEditor(session.New(testFrames(), path, session.DefaultLayout()), nil)

	e.handle(inputFrame{Cursor: cellCenter(e, 1), Click: true}, 0)
	e.handle(inputFrame{Save: true}, 0)

	if e.ctrl.State() != session.StateBrowsing {
		t.Fatalf("save should commit the open edit")
	}
	if !e.notice.Visible() || e.notice.isErr || !strings.Contains(e.notice.text, "sheet-marked.json") {
		t.Fatalf("unexpected notice %+v", e.notice)
	}
	saved, err := marker.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !saved.Equal(e.ctrl.Frames()) {
		t.Fatalf("saved collection differs")
	}
}

func TestEditorSaveFailureNotice(t *testing.T) {
	e := newEditor(session.New(testFrames(), t.TempDir(), session.DefaultLayout()), nil)
	e.handle(inputFrame{Save: true}, 0)
	if !e.notice.Visible() || !e.notice.isErr {
		t.Fatalf("failed save should raise an error notice, got %+v", e.notice)
	}
}

func TestEditorEscapeCommits(t *testing.T) {
	e := newEditor(session.New(testFrames(), "", session.DefaultLayout()), nil)
	e.handle(inputFrame{Cursor: cellCenter(e, 0), Click: true}, 0)
	if e.ctrl.State() != session.StateEditing {
		t.Fatalf("click should open the frame")
	}
	e.handle(inputFrame{Escape: true}, 0)
	if e.ctrl.State() != session.StateBrowsing {
		t.Fatalf("escape should close the selection")
	}
}

func TestEditorHoverFrozenWhileHeld(t *testing.T) {
	e := newEditor(session.New(testFrames(), "", session.DefaultLayout()), nil)
	e.handle(inputFrame{Cursor: cellCenter(e, 0)}, 0)
	e.handle(inputFrame{Cursor: cellCenter(e, 1), Held: true}, 0)
	if h, ok := e.ctrl.Hovered(); !ok || h.Index != 0 {
		t.Fatalf("hover should not move while a button is held, got %+v %v", h, ok)
	}
	e.handle(inputFrame{Cursor: cellCenter(e, 1)}, 0)
	if h, ok := e.ctrl.Hovered(); !ok || h.Index != 1 {
		t.Fatalf("hover should follow the cursor again, got %+v %v", h, ok)
	}
}

func TestEditorCopy(t *testing.T) {
	var copied []string
	copyText := func(s string) error {
		copied = append(copied, s)
		return nil
	}
	e := newEditor(session.New(testFrames(), "", session.DefaultLayout()), copyText)

	e.handle(inputFrame{Cursor: geom.Point{X: 1, Y: 1}, Copy: true}, 0)
	if len(copied) != 0 {
		t.Fatalf("nothing focused, nothing copied: %v", copied)
	}

	e.handle(inputFrame{Cursor: cellCenter(e, 1), Copy: true}, 0)
	e.handle(inputFrame{Cursor: cellCenter(e, 0), Click: true}, 0)
	e.handle(inputFrame{Cursor: geom.Point{X: 1, Y: 1}, Copy: true}, 0)
	if len(copied) != 2 || copied[0] != "crate.png" || copied[1] != "grass.png" {
		t.Fatalf("copied = %v", copied)
	}
}

func TestEditorCopyFailure(t *testing.T) {
	e := newEditor(session.New(testFrames(), "", session.DefaultLayout()), func(string) error {
		return errors.New("no display")
	})
	e.handle(inputFrame{Cursor: cellCenter(e, 0), Copy: true}, 0)
	if !e.notice.isErr {
		t.Fatalf("copy failure should raise an error notice")
	}

	e = newEditor(session.New(testFrames(), "", session.DefaultLayout()), nil)
	e.handle(inputFrame{Cursor: cellCenter(e, 0), Copy: true}, 0)
	if !e.notice.isErr {
		t.Fatalf("missing clipboard should raise an error notice")
	}
}

func TestEditorWheel(t *testing.T) {
	l := session.DefaultLayout()
	e := newEditor(session.New(testFrames(), "", l), nil)
	e.handle(inputFrame{WheelY: -1}, 0)
	if e.ctrl.Scroll() != -l.ScrollStep {
		t.Fatalf("scroll = %v", e.ctrl.Scroll())
	}
}
