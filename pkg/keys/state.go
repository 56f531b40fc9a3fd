package keys

// Transition reports a binding changing between inactive and active.
type Transition struct {
	Name   string
	Active bool
}

type binding struct {
	name  string
	chord Chord
}

// State tracks which keys are currently held and which registered
// bindings are active. It is not safe for concurrent use; the relay
// loop owns it.
type State struct {
	bindings []binding
	held     map[uint16]bool
	active   map[string]bool
}

// NewState creates an empty key state tracker.
func NewState() *State {
	return &State{
		held:   make(map[uint16]bool),
		active: make(map[string]bool),
	}
}

// Register adds a named chord. Registration order determines the order
// in which transitions are reported.
func (s *State) Register(name string, c Chord) {
	s.bindings = append(s.bindings, binding{name: name, chord: c})
}

// Handle processes one key event and returns the binding transitions it
// caused, in registration order.
//
// A chord becomes active when its trigger key goes down while all
// required modifiers are held. It becomes inactive when the trigger or
// a required modifier is released. Transitions are only reported once
// per state change, so holding a key does not re-fire its binding.
func (s *State) Handle(code uint16, pressed bool) []Transition {
	if pressed {
		s.held[code] = true
	} else {
		delete(s.held, code)
	}

	var transitions []Transition
	for _, b := range s.bindings {
		now := s.chordSatisfied(b.chord)
		if pressed && code != b.chord.Trigger {
			// A chord only fires on its trigger going down. A modifier
			// arriving late must not activate an already-held trigger.
			now = now && s.active[b.name]
		}
		if now != s.active[b.name] {
			s.active[b.name] = now
			transitions = append(transitions, Transition{Name: b.name, Active: now})
		}
	}

	return transitions
}

func (s *State) chordSatisfied(c Chord) bool {
	if !s.held[c.Trigger] {
		return false
	}
	for _, m := range c.Modifiers {
		if !s.anyHeld(modifierCodes[m]) {
			return false
		}
	}
	return true
}

func (s *State) anyHeld(codes []uint16) bool {
	for _, code := range codes {
		if s.held[code] {
			return true
		}
	}
	return false
}
