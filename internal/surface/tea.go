package surface

import tea "charm.land/bubbletea/v2"

// FromTea translates a Bubble Tea message into a window event. The second
// return value is false for messages that have no window counterpart.
//
// Losing terminal focus is reported as PointerCancel, as is releasing a
// button other than the primary one. Some terminals report releases without
// a button; those count as primary releases.
func FromTea(msg tea.Msg) (Event, bool) {
	switch msg := msg.(type) {
	case tea.MouseClickMsg:
		return Event{Kind: PointerDown, X: msg.X, Y: msg.Y, Button: fromTeaButton(msg.Button)}, true

	case tea.MouseMotionMsg:
		return Event{Kind: PointerMove, X: msg.X, Y: msg.Y, Button: fromTeaButton(msg.Button)}, true

	case tea.MouseReleaseMsg:
		button := fromTeaButton(msg.Button)
		kind := PointerUp
		if button != ButtonLeft && button != ButtonNone {
			kind = PointerCancel
		}
		return Event{Kind: kind, X: msg.X, Y: msg.Y, Button: button}, true

	case tea.BlurMsg:
		return Event{Kind: PointerCancel}, true

	case tea.KeyPressMsg:
		return Event{
			Kind:  KeyDown,
			Key:   keyName(msg),
			Alt:   msg.Mod.Contains(tea.ModAlt),
			Ctrl:  msg.Mod.Contains(tea.ModCtrl),
			Meta:  msg.Mod.Contains(tea.ModMeta) || msg.Mod.Contains(tea.ModSuper),
			Shift: msg.Mod.Contains(tea.ModShift),
		}, true
	}
	return Event{}, false
}

func fromTeaButton(b tea.MouseButton) Button {
	switch b {
	case tea.MouseNone:
		return ButtonNone
	case tea.MouseLeft:
		return ButtonLeft
	case tea.MouseMiddle:
		return ButtonMiddle
	case tea.MouseRight:
		return ButtonRight
	default:
		return ButtonOther
	}
}

// keyName returns the unmodified key name
func keyName(msg tea.KeyPressMsg) string {
	switch msg.Code {
	case tea.KeyUp:
		return KeyArrowUp
	case tea.KeyDown:
		return KeyArrowDown
	}
	return tea.Key{Code: msg.Code, Text: msg.Text}.String()
}
