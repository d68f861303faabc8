package main

import (
	"fmt"
	"path/filepath"

	"github.com/milk9111/spritemarker/session"
	"github.com/sirupsen/logrus"
)

// editor applies input to a session and reports the outcome to the user.
// It holds no ebiten state so it can run headless.
type editor struct {
	ctrl   *session.Controller
	notice notice

	// copyText puts text on the system clipboard; nil when unavailable.
	copyText func(text string) error
}

func newEditor(ctrl *session.Controller, copyText func(string) error) *editor {
	e := &editor{ctrl: ctrl, copyText: copyText}
	ctrl.SetSaveHandler(e.saved)
	return e
}

func (e *editor) saved(path string, err error) {
	if err != nil {
		logrus.WithError(err).WithField("path", path).Error("save failed")
		e.notice.Show(fmt.Sprintf("Save failed: %v", err), true)
		return
	}
	e.notice.Show("Saved "+filepath.Base(path), false)
}

// handle applies one tick of input. Save failures are already reported
// through the notice, so they are not returned.
func (e *editor) handle(in inputFrame, dt float32) {
	if !in.Held {
		e.ctrl.Hover(in.Cursor)
	}
	if in.Click {
		// Errors reach the user through the save handler.
		_ = e.ctrl.Click(in.Cursor)
	}
	if in.WheelY != 0 {
		e.ctrl.Wheel(in.WheelY)
	}
	if in.Escape {
		e.ctrl.Close()
	}
	if in.Save {
		_ = e.ctrl.CommitAndSave()
	}
	if in.Copy {
		e.copyName()
	}
	e.notice.Update(dt)
}

// focusName is the name of the selected frame, or the hovered one.
func (e *editor) focusName() (string, bool) {
	if sel, ok := e.ctrl.Selected(); ok {
		return e.ctrl.Frame(sel.Index).Name, true
	}
	if h, ok := e.ctrl.Hovered(); ok {
		return e.ctrl.Frame(h.Index).Name, true
	}
	return "", false
}

func (e *editor) copyName() {
	name, ok := e.focusName()
	if !ok {
		return
	}
	if e.copyText == nil {
		e.notice.Show("Clipboard unavailable", true)
		return
	}
	if err := e.copyText(name); err != nil {
		logrus.WithError(err).Warn("copy to clipboard")
		e.notice.Show("Copy failed", true)
		return
	}
	logrus.WithField("frame", name).Debug("copied frame name")
	e.notice.Show("Copied "+name, false)
}
