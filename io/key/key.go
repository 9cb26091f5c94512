// SPDX-License-Identifier: Unlicense OR MIT

// Package key implements keyboard events, shortcut commands and input
// method types.
package key

import (
	"strings"
)

// An Event is generated when a key is pressed or released. For text
// input use EditEvent.
type Event struct {
	// Name of the key.
	Name Name
	// Code is the physical key, independent of layout.
	Code Code
	// Modifiers is the set of active modifiers when the key was pressed.
	Modifiers Modifiers
	// State is the state of the key when the event was fired.
	State State
	// Text is the string produced by the key press, if any.
	Text string
	// Repeat is set on synthetic repeats of a held key.
	Repeat bool
}

// An EditEvent requests an edit by an input method.
type EditEvent struct {
	// Range specifies the range to replace with Text.
	Range Range
	Text  string
}

// Range represents a range of text, such as an editor's selection.
// Start and End are in runes.
type Range struct {
	Start int
	End   int
}

// Snippet represents a snippet of text content used for communicating
// between an editor and an input method.
type Snippet struct {
	Range
	Text string
}

// Code is a physical key identifier, typically a platform scancode.
// It is opaque to this module; it only supports comparison.
type Code uint32

// ImePurpose hints the kind of data a text input expects, so the
// platform can pick an appropriate input method or on-screen keyboard.
type ImePurpose uint8

const (
	// PurposeNormal expects any input.
	PurposeNormal ImePurpose = iota
	// PurposeNumber expects numeric input.
	PurposeNumber
	// PurposePassword expects a password; the input method should
	// disable prediction and obscure suggestions.
	PurposePassword
)

// State is the state of a key during an event.
type State uint8

const (
	// Press is the state of a pressed key.
	Press State = iota
	// Release is the state of a key that has been released.
	Release
)

// Modifiers
type Modifiers uint32

const (
	// ModCtrl is the ctrl modifier key.
	ModCtrl Modifiers = 1 << iota
	// ModCommand is the command modifier key
	// found on Apple keyboards.
	ModCommand
	// ModShift is the shift modifier key.
	ModShift
	// ModAlt is the alt modifier key, or the option
	// key on Apple keyboards.
	ModAlt
	// ModSuper is the "logo" modifier key, often
	// represented by a Windows logo.
	ModSuper
)

// Name is the identifier for a keyboard key.
//
// For letters, the upper case form is used, via unicode.ToUpper.
// The shift modifier is taken into account, all other
// modifiers are ignored. For example, the "shift-1" and "ctrl-shift-1"
// combinations both give the Name "!" with the US keyboard layout.
type Name string

const (
	// Names for special keys.
	NameLeftArrow      Name = "←"
	NameRightArrow     Name = "→"
	NameUpArrow        Name = "↑"
	NameDownArrow      Name = "↓"
	NameReturn         Name = "⏎"
	NameEnter          Name = "⌤"
	NameEscape         Name = "⎋"
	NameHome           Name = "⇱"
	NameEnd            Name = "⇲"
	NameDeleteBackward Name = "⌫"
	NameDeleteForward  Name = "⌦"
	NamePageUp         Name = "⇞"
	NamePageDown       Name = "⇟"
	NameTab            Name = "Tab"
	NameSpace          Name = "Space"
	NameCtrl           Name = "Ctrl"
	NameShift          Name = "Shift"
	NameAlt            Name = "Alt"
	NameSuper          Name = "Super"
	NameCommand        Name = "⌘"
	NameInsert         Name = "Insert"
	NamePause          Name = "Pause"
	NameContextMenu    Name = "ContextMenu"
	NameF1             Name = "F1"
	NameF2             Name = "F2"
	NameF3             Name = "F3"
	NameF4             Name = "F4"
	NameF5             Name = "F5"
	NameF6             Name = "F6"
	NameF7             Name = "F7"
	NameF8             Name = "F8"
	NameF9             Name = "F9"
	NameF10            Name = "F10"
	NameF11            Name = "F11"
	NameF12            Name = "F12"
	NameBack           Name = "Back"
)

// Command is a key-independent action, produced from shortcut key
// combinations or sent programmatically.
type Command uint8

const (
	// CommandActivate is programmatic or accessibility activation.
	CommandActivate Command = iota
	// CommandEscape relaxes control: deselect, close, cancel.
	CommandEscape
	// CommandEnter may insert a line break or activate.
	CommandEnter
	CommandTab

	CommandLeft
	CommandRight
	CommandUp
	CommandDown
	CommandWordLeft
	CommandWordRight
	CommandHome
	CommandEnd
	CommandDocHome
	CommandDocEnd
	CommandPageUp
	CommandPageDown

	CommandDelete
	CommandDelBack
	CommandDelWord
	CommandDelWordBack

	CommandDeselect
	CommandSelectAll

	CommandFind
	CommandFindNext
	CommandFindPrevious

	CommandCut
	CommandCopy
	CommandPaste
	CommandUndo
	CommandRedo

	CommandNew
	CommandOpen
	CommandSave
	CommandPrint

	CommandNavNext
	CommandNavPrevious
	CommandNavParent

	CommandHelp
	CommandRefresh
	CommandDebug
	CommandContextMenu
	CommandMenu
	CommandFullscreen

	CommandClose
	CommandExit
)

// IsActivate reports whether c is an activation command: Activate
// (programmatic) or Enter.
func (c Command) IsActivate() bool {
	return c == CommandActivate || c == CommandEnter
}

// SuitableForSelFocus reports whether c may be sent to a widget which
// has selection focus but not keyboard focus.
func (c Command) SuitableForSelFocus() bool {
	switch c {
	case CommandEscape, CommandCut, CommandCopy, CommandDeselect, CommandSelectAll:
		return true
	default:
		return false
	}
}

// CommandFromKey maps a key press with modifiers to a shortcut
// command. Only ctrl/command and shift participate in the mapping.
func CommandFromKey(name Name, mods Modifiers) (Command, bool) {
	if mods&(ModAlt|ModSuper) != 0 {
		return 0, false
	}
	ctrl := mods.Contain(ModCtrl) || mods.Contain(ModCommand)
	shift := mods.Contain(ModShift)
	switch {
	case ctrl && shift:
		if name == "Z" {
			return CommandRedo, true
		}
		return 0, false
	case ctrl:
		c, ok := ctrlCommands[name]
		return c, ok
	case shift:
		if name == NameF3 {
			return CommandFindPrevious, true
		}
		// Shift reverses or extends these; handlers read it from the
		// event modifiers.
		switch name {
		case NameTab, NameLeftArrow, NameRightArrow, NameUpArrow,
			NameDownArrow, NameHome, NameEnd, NamePageUp, NamePageDown:
			c, ok := plainCommands[name]
			return c, ok
		}
		return 0, false
	default:
		c, ok := plainCommands[name]
		return c, ok
	}
}

var plainCommands = map[Name]Command{
	NameEscape:         CommandEscape,
	NameReturn:         CommandEnter,
	NameEnter:          CommandEnter,
	NameTab:            CommandTab,
	NameLeftArrow:      CommandLeft,
	NameRightArrow:     CommandRight,
	NameUpArrow:        CommandUp,
	NameDownArrow:      CommandDown,
	NameHome:           CommandHome,
	NameEnd:            CommandEnd,
	NamePageUp:         CommandPageUp,
	NamePageDown:       CommandPageDown,
	NameDeleteForward:  CommandDelete,
	NameDeleteBackward: CommandDelBack,
	NameContextMenu:    CommandContextMenu,
	NameF1:             CommandHelp,
	NameF3:             CommandFindNext,
	NameF5:             CommandRefresh,
	NameF10:            CommandMenu,
	NameF11:            CommandFullscreen,
	NameBack:           CommandNavPrevious,
}

var ctrlCommands = map[Name]Command{
	"A":                CommandSelectAll,
	"C":                CommandCopy,
	"F":                CommandFind,
	"N":                CommandNew,
	"O":                CommandOpen,
	"P":                CommandPrint,
	"Q":                CommandExit,
	"S":                CommandSave,
	"V":                CommandPaste,
	"W":                CommandClose,
	"X":                CommandCut,
	"Y":                CommandRedo,
	"Z":                CommandUndo,
	NameLeftArrow:      CommandWordLeft,
	NameRightArrow:     CommandWordRight,
	NameHome:           CommandDocHome,
	NameEnd:            CommandDocEnd,
	NameDeleteForward:  CommandDelWord,
	NameDeleteBackward: CommandDelWordBack,
}

// Contain reports whether m contains all modifiers
// in m2.
func (m Modifiers) Contain(m2 Modifiers) bool {
	return m&m2 == m2
}

func (Event) ImplementsEvent()     {}
func (EditEvent) ImplementsEvent() {}

func (m Modifiers) String() string {
	var strs []string
	if m.Contain(ModCtrl) {
		strs = append(strs, string(NameCtrl))
	}
	if m.Contain(ModCommand) {
		strs = append(strs, string(NameCommand))
	}
	if m.Contain(ModShift) {
		strs = append(strs, string(NameShift))
	}
	if m.Contain(ModAlt) {
		strs = append(strs, string(NameAlt))
	}
	if m.Contain(ModSuper) {
		strs = append(strs, string(NameSuper))
	}
	return strings.Join(strs, "-")
}

func (s State) String() string {
	switch s {
	case Press:
		return "Press"
	case Release:
		return "Release"
	default:
		panic("invalid State")
	}
}
