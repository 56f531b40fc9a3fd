// Package settings reads hotkey bindings and comparison state from
// LiveSplit's settings.cfg file.
//
// The file is an XML document written by LiveSplit itself. Only the
// parts relevant for hotkey relaying are extracted: the hotkey profile
// bindings, the last selected comparison, the comparison generator
// states and the global hotkeys toggle.
package settings

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"
)

// Action identifies a hotkey binding in a LiveSplit hotkey profile. The
// values are the XML element names LiveSplit uses.
type Action string

const (
	ActionSplit                    Action = "SplitKey"
	ActionReset                    Action = "ResetKey"
	ActionSkip                     Action = "SkipKey"
	ActionUndo                     Action = "UndoKey"
	ActionPause                    Action = "PauseKey"
	ActionToggleGlobalHotkeys      Action = "ToggleGlobalHotkeys"
	ActionSwitchComparisonPrevious Action = "SwitchComparisonPrevious"
	ActionSwitchComparisonNext     Action = "SwitchComparisonNext"
)

// Actions lists all supported hotkey actions in a stable order.
var Actions = []Action{
	ActionSplit,
	ActionReset,
	ActionSkip,
	ActionUndo,
	ActionPause,
	ActionToggleGlobalHotkeys,
	ActionSwitchComparisonPrevious,
	ActionSwitchComparisonNext,
}

// ComparisonGenerators lists the comparison generators LiveSplit ships
// with, in the order it presents them. "Personal Best" is not a
// generator in the settings file but always exists as a comparison.
var ComparisonGenerators = []string{
	"Best Segments",
	"Best Split Times",
	"Average Segments",
	"Median Segments",
	"Worst Segments",
	"Balanced PB",
	"Latest Run",
	"Personal Best",
}

// Settings holds the hotkey-relevant parts of a LiveSplit settings file.
type Settings struct {
	Profile              string
	Bindings             map[Action]string
	LastComparison       string
	GeneratorStates      map[string]bool
	GlobalHotkeysEnabled bool
}

// Load reads and parses the settings file at path, extracting bindings
// from the hotkey profile with the given name.
func Load(path, profile string) (*Settings, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening LiveSplit settings: %s", err)
	}
	defer f.Close()

	s, err := Parse(f, profile)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %s", path, err)
	}
	return s, nil
}

var knownActions = func() map[Action]bool {
	m := make(map[Action]bool, len(Actions))
	for _, a := range Actions {
		m[a] = true
	}
	return m
}()

// Parse reads a settings document from r. The profile must match the
// name attribute of one of the HotkeyProfile elements.
func Parse(r io.Reader, profile string) (*Settings, error) {
	s := &Settings{
		Profile:              profile,
		Bindings:             make(map[Action]string),
		GeneratorStates:      make(map[string]bool),
		GlobalHotkeysEnabled: true, // absent in older settings files
	}

	dec := xml.NewDecoder(r)

	var (
		inProfiles   bool
		inTarget     bool
		curBinding   Action
		inStates     bool
		curGenerator string
		curScalar    string
		profileFound bool
		profileNames []string
	)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading XML: %s", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			name := t.Name.Local
			switch {
			case name == "HotkeyProfiles":
				inProfiles = true
			case inProfiles && name == "HotkeyProfile":
				pname := attrValue(t, "name")
				profileNames = append(profileNames, pname)
				inTarget = pname == profile
				if inTarget {
					profileFound = true
				}
			case inTarget && knownActions[Action(name)]:
				curBinding = Action(name)
			case name == "ComparisonGeneratorStates":
				inStates = true
			case inStates && name == "Generator":
				curGenerator = attrValue(t, "name")
			case name == "LastComparison" || name == "GlobalHotkeysEnabled":
				curScalar = name
			}

		case xml.EndElement:
			switch t.Name.Local {
			case "HotkeyProfiles":
				inProfiles = false
			case "HotkeyProfile":
				inTarget = false
			case "ComparisonGeneratorStates":
				inStates = false
			case "Generator":
				curGenerator = ""
			}
			if curBinding != "" && t.Name.Local == string(curBinding) {
				curBinding = ""
			}
			curScalar = ""

		case xml.CharData:
			text := strings.TrimSpace(string(t))
			if text == "" {
				continue
			}
			switch {
			case curBinding != "":
				s.Bindings[curBinding] = text
			case curGenerator != "":
				s.GeneratorStates[curGenerator] = strings.EqualFold(text, "true")
			case curScalar == "LastComparison":
				s.LastComparison = text
			case curScalar == "GlobalHotkeysEnabled":
				s.GlobalHotkeysEnabled = strings.EqualFold(text, "true")
			}
		}
	}

	if !profileFound {
		if len(profileNames) == 0 {
			return nil, fmt.Errorf("no hotkey profiles found")
		}
		return nil, fmt.Errorf("hotkey profile %q not found, have: %s", profile, strings.Join(profileNames, ", "))
	}

	return s, nil
}

// EnabledComparisons returns the comparisons available for cycling: the
// generators enabled in the settings, always followed by "Personal
// Best", which LiveSplit offers unconditionally.
func (s *Settings) EnabledComparisons() []string {
	var enabled []string
	for _, name := range ComparisonGenerators {
		if s.GeneratorStates[name] {
			enabled = append(enabled, name)
		}
	}
	return append(enabled, "Personal Best")
}

func attrValue(e xml.StartElement, name string) string {
	for _, attr := range e.Attr {
		if attr.Name.Local == name {
			return attr.Value
		}
	}
	return ""
}
