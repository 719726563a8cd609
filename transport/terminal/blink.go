package terminal

// blink counts down a fixed number of on/off toggles driven by the view ticker.
type blink struct {
	remaining int
	on        bool
}

func (that *blink) start(count int) {
	that.remaining = count
	that.on = true
}

func (that *blink) stop() {
	that.remaining = 0
	that.on = false
}

func (that *blink) active() bool {
	return that.remaining > 0
}

// step - advances one toggle, reports whether anything changed.
func (that *blink) step() bool {
	if that.remaining == 0 {
		return false
	}

	that.remaining--
	if that.remaining == 0 {
		that.on = false
		return true
	}

	that.on = !that.on

	return true
}
