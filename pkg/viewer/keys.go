package viewer

import "fyne.io/fyne/v2"

// keyCodes maps fyne key names to the browser-style codes the session expects
var keyCodes = map[fyne.KeyName]string{
	fyne.KeyW:     "KeyW",
	fyne.KeyA:     "KeyA",
	fyne.KeyS:     "KeyS",
	fyne.KeyD:     "KeyD",
	fyne.KeyUp:    "ArrowUp",
	fyne.KeyDown:  "ArrowDown",
	fyne.KeyLeft:  "ArrowLeft",
	fyne.KeyRight: "ArrowRight",
}

// KeyDown forwards a key press; wire it to desktop.Canvas.SetOnKeyDown
func (v *BoothView) KeyDown(ev *fyne.KeyEvent) {
	if code, ok := keyCodes[ev.Name]; ok {
		v.session.KeyDown(code)
	}
}

// KeyUp forwards a key release; wire it to desktop.Canvas.SetOnKeyUp
func (v *BoothView) KeyUp(ev *fyne.KeyEvent) {
	if code, ok := keyCodes[ev.Name]; ok {
		v.session.KeyUp(code)
	}
}
