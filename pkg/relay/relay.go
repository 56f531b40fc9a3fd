// Package relay matches incoming key events against the configured
// hotkey chords and drives the timer server accordingly.
package relay

import (
	"context"
	"fmt"

	"livesplit-hotkeys/pkg/config"
	"livesplit-hotkeys/pkg/input"
	"livesplit-hotkeys/pkg/keys"
	"livesplit-hotkeys/pkg/settings"
)

// Sender is the subset of the livesplit client the relay drives.
type Sender interface {
	StartOrSplit() error
	Reset() error
	SkipSplit() error
	UndoSplit() error
	Pause() error
	Resume() error
	SetComparison(name string) error
}

// Relay consumes key events and sends timer commands for activated
// hotkeys. It owns all hotkey state: held keys, the pause toggle, the
// comparison cycle position and the global hotkeys switch.
type Relay struct {
	cfg    *config.Config
	sender Sender
	state  *keys.State

	comparisons []string
	compIndex   int

	paused  bool
	enabled bool

	// lastSeen dedupes repeated identical states: the same physical key
	// can arrive from multiple devices, and some keyboards emit the
	// press state more than once.
	lastSeen map[uint16]bool
}

// New builds a relay from the settings file content. Bindings that are
// present but unparseable are a startup error; unbound actions are
// skipped.
func New(cfg *config.Config, sender Sender, s *settings.Settings) (*Relay, error) {
	r := &Relay{
		cfg:      cfg,
		sender:   sender,
		state:    keys.NewState(),
		enabled:  s.GlobalHotkeysEnabled,
		lastSeen: make(map[uint16]bool),
	}

	bound := 0
	for _, action := range settings.Actions {
		binding, ok := s.Bindings[action]
		if !ok || binding == "" {
			continue
		}

		chord, err := keys.ParseChord(binding)
		if err != nil {
			return nil, fmt.Errorf("binding %s (%q): %s", action, binding, err)
		}

		r.state.Register(string(action), chord)
		cfg.Logger.VerboseMsg("Hotkey %s bound to %s\n", action, chord)
		bound++
	}

	if bound == 0 {
		return nil, fmt.Errorf("profile %q has no usable hotkey bindings", s.Profile)
	}

	r.comparisons = s.EnabledComparisons()
	r.compIndex = 0
	for i, name := range r.comparisons {
		if name == s.LastComparison {
			r.compIndex = i
			break
		}
	}

	return r, nil
}

// Run consumes events until the channel closes or the context is
// cancelled. Send failures terminate the run.
func (r *Relay) Run(ctx context.Context, events <-chan input.Event) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if err := r.handle(ev); err != nil {
				return err
			}
		}
	}
}

func (r *Relay) handle(ev input.Event) error {
	if seen, ok := r.lastSeen[ev.Code]; ok && seen == ev.Pressed {
		return nil // duplicate state, e.g. the same key from two devices
	}
	r.lastSeen[ev.Code] = ev.Pressed

	r.cfg.Logger.DebugMsg("Key %d = %t\n", ev.Code, ev.Pressed)

	for _, tr := range r.state.Handle(ev.Code, ev.Pressed) {
		if !tr.Active {
			continue
		}
		if err := r.fire(settings.Action(tr.Name)); err != nil {
			return err
		}
	}

	return nil
}

func (r *Relay) fire(action settings.Action) error {
	if action == settings.ActionToggleGlobalHotkeys {
		r.enabled = !r.enabled
		r.cfg.Logger.InfoMsg("Global hotkeys %s\n", onOff(r.enabled))
		return nil
	}

	if !r.enabled {
		r.cfg.Logger.VerboseMsg("Hotkey %s ignored, global hotkeys are off\n", action)
		return nil
	}

	r.cfg.Logger.VerboseMsg("Sending hotkey %s\n", action)

	switch action {
	case settings.ActionSplit:
		return r.sender.StartOrSplit()
	case settings.ActionReset:
		return r.sender.Reset()
	case settings.ActionSkip:
		return r.sender.SkipSplit()
	case settings.ActionUndo:
		return r.sender.UndoSplit()
	case settings.ActionPause:
		r.paused = !r.paused
		if r.paused {
			return r.sender.Pause()
		}
		return r.sender.Resume()
	case settings.ActionSwitchComparisonNext:
		r.compIndex = (r.compIndex + 1) % len(r.comparisons)
		return r.sender.SetComparison(r.comparisons[r.compIndex])
	case settings.ActionSwitchComparisonPrevious:
		if r.compIndex == 0 {
			r.compIndex = len(r.comparisons) - 1
		} else {
			r.compIndex--
		}
		return r.sender.SetComparison(r.comparisons[r.compIndex])
	default:
		return nil
	}
}

func onOff(enabled bool) string {
	if enabled {
		return "enabled"
	}
	return "disabled"
}
