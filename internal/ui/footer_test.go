package ui

import (
	"strings"
	"testing"
)

func TestFooter_SetFlash(t *testing.T) {
	footer := NewFooter()
	footer.SetWidth(80)
	footer.SetFlash("Failed to create room", FlashError)

	if !footer.HasFlash() {
		t.Error("HasFlash() should be true after SetFlash")
	}
	if view := footer.View(); !strings.Contains(view, "Failed to create room") {
		t.Error("View() should contain the flash text")
	}
}

func TestFooter_ClearFlash_MatchingSeq(t *testing.T) {
	footer := NewFooter()
	footer.SetFlash("message", FlashInfo)

	footer.ClearFlash(footer.FlashSeq())
	if footer.HasFlash() {
		t.Error("flash should be cleared by its own timeout")
	}
}

func TestFooter_ClearFlash_StaleSeq(t *testing.T) {
	footer := NewFooter()
	footer.SetFlash("first", FlashInfo)
	stale := footer.FlashSeq()
	footer.SetFlash("second", FlashError)

	// The first flash's timeout must not dismiss the newer flash
	footer.ClearFlash(stale)
	if !footer.HasFlash() {
		t.Error("a stale timeout should not clear a newer flash")
	}
}

func TestFooter_BindingsByContext(t *testing.T) {
	footer := NewFooter()
	footer.SetWidth(120)

	footer.SetContext(false, false)
	if view := footer.View(); !strings.Contains(view, "next field") {
		t.Error("lobby footer should show field navigation bindings")
	}

	footer.SetContext(true, false)
	if view := footer.View(); !strings.Contains(view, "leave room") {
		t.Error("room footer should show the leave binding")
	}
}
