package handlers

import tea "charm.land/bubbletea/v2"

// keyString returns the key in the notation used by the key mappings.
// The space bar is configured as " ".
func keyString(msg tea.KeyPressMsg) string {
	k := msg.String()
	if k == "space" {
		return " "
	}
	return k
}
