package camera

// Keys holds the movement keys that are currently held down
type Keys struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
}

// keyBindings maps browser-style key codes to movement flags
var keyBindings = map[string]func(k *Keys) *bool{
	"KeyW":       func(k *Keys) *bool { return &k.Forward },
	"ArrowUp":    func(k *Keys) *bool { return &k.Forward },
	"KeyS":       func(k *Keys) *bool { return &k.Backward },
	"ArrowDown":  func(k *Keys) *bool { return &k.Backward },
	"KeyA":       func(k *Keys) *bool { return &k.Left },
	"ArrowLeft":  func(k *Keys) *bool { return &k.Left },
	"KeyD":       func(k *Keys) *bool { return &k.Right },
	"ArrowRight": func(k *Keys) *bool { return &k.Right },
}

// MovementCodes lists every key code that moves the camera
func MovementCodes() []string {
	return []string{"KeyW", "ArrowUp", "KeyS", "ArrowDown", "KeyA", "ArrowLeft", "KeyD", "ArrowRight"}
}

// Press records a key-down event. Unknown codes are ignored.
func (k *Keys) Press(code string) {
	if flag, ok := keyBindings[code]; ok {
		*flag(k) = true
	}
}

// Release records a key-up event
func (k *Keys) Release(code string) {
	if flag, ok := keyBindings[code]; ok {
		*flag(k) = false
	}
}

// Any reports whether any movement key is held
func (k Keys) Any() bool {
	return k.Forward || k.Backward || k.Left || k.Right
}
