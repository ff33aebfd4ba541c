package chip8

// Keypad is the input collaborator. Keys are the logical codes 0x0-0xF, the
// mapping from physical keys is the implementation's concern.
type Keypad interface {
	// Held reports whether the key is currently pressed.
	Held(key uint8) bool
	// Released reports whether the key was let go since the previous snapshot.
	Released(key uint8) bool
	// Snapshot returns the held state of all keys.
	Snapshot() [KeyCount]bool
}

// KeyState is a Keypad backed by plain arrays. Frontends feed it with Press
// and Release and call Latch once per frame to forget the released edges.
type KeyState struct {
	held     [KeyCount]bool
	released [KeyCount]bool
}

var _ Keypad = (*KeyState)(nil)

func (k *KeyState) Press(key uint8) {
	k.held[key&0xF] = true
}

func (k *KeyState) Release(key uint8) {
	key &= 0xF
	if k.held[key] {
		k.released[key] = true
	}
	k.held[key] = false
}

// Set presses or releases the key depending on down.
func (k *KeyState) Set(key uint8, down bool) {
	if down {
		k.Press(key)
	} else {
		k.Release(key)
	}
}

// Latch clears the just-released flags.
func (k *KeyState) Latch() {
	k.released = [KeyCount]bool{}
}

func (k *KeyState) Held(key uint8) bool {
	return k.held[key&0xF]
}

func (k *KeyState) Released(key uint8) bool {
	return k.released[key&0xF]
}

func (k *KeyState) Snapshot() [KeyCount]bool {
	return k.held
}

// NoKeys is a Keypad with nothing pressed.
type NoKeys struct{}

func (NoKeys) Held(uint8) bool { return false }

func (NoKeys) Released(uint8) bool { return false }

func (NoKeys) Snapshot() [KeyCount]bool { return [KeyCount]bool{} }
