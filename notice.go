package main

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const noticeDuration = 2.5

// notice is a transient one-line message that fades out.
type notice struct {
	text  string
	isErr bool
	alpha float32
	tween *gween.Tween
}

func (n *notice) Show(text string, isErr bool) {
	n.text = text
	n.isErr = isErr
	n.alpha = 1
	n.tween = gween.New(1, 0, noticeDuration, ease.InQuad)
}

// Update advances the fade by dt seconds.
func (n *notice) Update(dt float32) {
	if n.tween == nil {
		return
	}
	alpha, done := n.tween.Update(dt)
	n.alpha = alpha
	if done {
		n.alpha = 0
		n.tween = nil
		n.text = ""
	}
}

func (n *notice) Visible() bool { return n.text != "" && n.alpha > 0 }
