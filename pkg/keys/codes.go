package keys

// Linux evdev key codes used by modifier handling.
const (
	codeLeftCtrl   = 29
	codeLeftShift  = 42
	codeRightShift = 54
	codeLeftAlt    = 56
	codeRightCtrl  = 97
	codeRightAlt   = 100
)

// keyCodes maps .NET Keys enumeration member names, as LiveSplit writes
// them into settings.cfg, to Linux evdev key codes (KEY_* from
// input-event-codes.h). Aliases reflect members that share a value in
// the .NET enumeration.
var keyCodes = map[string]uint16{
	// Letters.
	"A": 30, "B": 48, "C": 46, "D": 32, "E": 18, "F": 33, "G": 34,
	"H": 35, "I": 23, "J": 36, "K": 37, "L": 38, "M": 50, "N": 49,
	"O": 24, "P": 25, "Q": 16, "R": 19, "S": 31, "T": 20, "U": 22,
	"V": 47, "W": 17, "X": 45, "Y": 21, "Z": 44,

	// Number row.
	"D0": 11, "D1": 2, "D2": 3, "D3": 4, "D4": 5,
	"D5": 6, "D6": 7, "D7": 8, "D8": 9, "D9": 10,

	// Numeric keypad.
	"NumPad0": 82, "NumPad1": 79, "NumPad2": 80, "NumPad3": 81,
	"NumPad4": 75, "NumPad5": 76, "NumPad6": 77, "NumPad7": 71,
	"NumPad8": 72, "NumPad9": 73,
	"Add":      78,
	"Subtract": 74,
	"Multiply": 55,
	"Divide":   98,
	"Decimal":  83,

	// Function keys.
	"F1": 59, "F2": 60, "F3": 61, "F4": 62, "F5": 63, "F6": 64,
	"F7": 65, "F8": 66, "F9": 67, "F10": 68, "F11": 87, "F12": 88,
	"F13": 183, "F14": 184, "F15": 185, "F16": 186, "F17": 187,
	"F18": 188, "F19": 189, "F20": 190, "F21": 191, "F22": 192,
	"F23": 193, "F24": 194,

	// Whitespace and editing.
	"Space":  57,
	"Enter":  28,
	"Return": 28,
	"Tab":    15,
	"Back":   14,
	"Escape": 1,
	"Delete": 111,
	"Insert": 110,

	// Navigation cluster.
	"Home": 102, "End": 107,
	"PageUp": 104, "Prior": 104,
	"PageDown": 109, "Next": 109,
	"Up": 103, "Down": 108, "Left": 105, "Right": 106,

	// Locks and system keys.
	"CapsLock": 58, "Capital": 58,
	"NumLock":  69,
	"Scroll":   70,
	"Pause":    119,
	"Snapshot": 99, "PrintScreen": 99,

	// Modifier keys when used as triggers.
	"ShiftKey": 42, "LShiftKey": 42, "RShiftKey": 54,
	"ControlKey": 29, "LControlKey": 29, "RControlKey": 97,
	"Menu": 56, "LMenu": 56, "RMenu": 100,
	"LWin": 125, "RWin": 126,
	"Apps": 127,

	// OEM keys (US layout positions).
	"Oemtilde": 41, "Oem3": 41,
	"OemMinus": 12,
	"Oemplus":  13,
	"OemOpenBrackets": 26, "Oem4": 26,
	"OemCloseBrackets": 27, "Oem6": 27,
	"OemSemicolon": 39, "Oem1": 39,
	"OemQuotes": 40, "Oem7": 40,
	"OemPipe": 43, "Oem5": 43,
	"Oemcomma":  51,
	"OemPeriod": 52,
	"OemQuestion": 53, "Oem2": 53,
	"OemBackslash": 86, "Oem102": 86,

	// Media keys.
	"VolumeMute":         113,
	"VolumeDown":         114,
	"VolumeUp":           115,
	"MediaNextTrack":     163,
	"MediaPlayPause":     164,
	"MediaPreviousTrack": 165,
	"MediaStop":          166,
}
