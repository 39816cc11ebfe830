package models

import "github.com/Rorical/CalcPad/internal/config"

// AppModel represents the UI state - only local UI concerns
type AppModel struct {
	Display      string       // Display text pushed by core
	Operator     string       // Pending operator symbol, empty when none
	State        string       // Calculator state name
	FocusRow     int          // Focused keypad row
	FocusCol     int          // Focused keypad column
	Flash        string       // ID of the button pressed during the current tick
	Status       string       // Status bar text
	Width        int          // Terminal width
	Height       int          // Terminal height
	ServiceReady bool         // Whether calculator service is available
	Theme        config.Theme // Keypad colours
}
