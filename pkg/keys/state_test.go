package keys

import (
	"reflect"
	"testing"
)

func mustChord(t *testing.T, binding string) Chord {
	t.Helper()
	c, err := ParseChord(binding)
	if err != nil {
		t.Fatalf("ParseChord(%q): %s", binding, err)
	}
	return c
}

func TestState_SimpleKey(t *testing.T) {
	t.Parallel()

	s := NewState()
	s.Register("split", mustChord(t, "NumPad1"))

	got := s.Handle(79, true)
	want := []Transition{{Name: "split", Active: true}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("press: Handle() = %v, want %v", got, want)
	}

	got = s.Handle(79, false)
	want = []Transition{{Name: "split", Active: false}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("release: Handle() = %v, want %v", got, want)
	}
}

func TestState_RefiresAfterRelease(t *testing.T) {
	t.Parallel()

	s := NewState()
	s.Register("split", mustChord(t, "Space"))

	s.Handle(57, true)
	s.Handle(57, false)

	got := s.Handle(57, true)
	if len(got) != 1 || !got[0].Active {
		t.Errorf("second press should re-fire, got %v", got)
	}
}

func TestState_UnrelatedKey(t *testing.T) {
	t.Parallel()

	s := NewState()
	s.Register("split", mustChord(t, "NumPad1"))

	if got := s.Handle(30, true); got != nil {
		t.Errorf("unrelated key caused transitions: %v", got)
	}
}

func TestState_ChordRequiresModifier(t *testing.T) {
	t.Parallel()

	s := NewState()
	s.Register("skip", mustChord(t, "NumPad8, Control"))

	// Trigger without modifier: nothing. NumPad8 is evdev code 72.
	if got := s.Handle(72, true); got != nil {
		t.Fatalf("trigger without modifier fired: %v", got)
	}
	s.Handle(72, false)

	// Modifier held, then trigger: fires.
	s.Handle(29, true) // left ctrl
	got := s.Handle(72, true)
	want := []Transition{{Name: "skip", Active: true}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("chord press: Handle() = %v, want %v", got, want)
	}

	// Releasing the modifier deactivates the chord.
	got = s.Handle(29, false)
	want = []Transition{{Name: "skip", Active: false}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("modifier release: Handle() = %v, want %v", got, want)
	}
}

func TestState_EitherModifierSideSatisfies(t *testing.T) {
	t.Parallel()

	s := NewState()
	s.Register("skip", mustChord(t, "NumPad8, Control"))

	s.Handle(97, true) // right ctrl
	got := s.Handle(72, true)
	if len(got) != 1 || !got[0].Active {
		t.Errorf("right ctrl should satisfy Control, got %v", got)
	}
}

func TestState_LateModifierDoesNotFire(t *testing.T) {
	t.Parallel()

	s := NewState()
	s.Register("skip", mustChord(t, "NumPad8, Control"))

	// Trigger first, then modifier: the chord must not activate,
	// the trigger press predates the full chord.
	s.Handle(72, true)
	if got := s.Handle(29, true); got != nil {
		t.Errorf("late modifier activated chord: %v", got)
	}
}

func TestState_HoldDoesNotRefire(t *testing.T) {
	t.Parallel()

	s := NewState()
	s.Register("split", mustChord(t, "Space"))

	s.Handle(57, true)
	if got := s.Handle(57, true); got != nil {
		t.Errorf("repeated press state re-fired: %v", got)
	}
}

func TestState_RegistrationOrder(t *testing.T) {
	t.Parallel()

	s := NewState()
	// Two bindings on the same trigger; both fire, in registration order.
	s.Register("first", mustChord(t, "Space"))
	s.Register("second", mustChord(t, "Space"))

	got := s.Handle(57, true)
	want := []Transition{
		{Name: "first", Active: true},
		{Name: "second", Active: true},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Handle() = %v, want %v", got, want)
	}
}
