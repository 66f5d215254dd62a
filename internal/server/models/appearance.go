package models

import "time"

// AppearanceSettings holds display and TTS preferences for one user.
// TTS multipliers are normalized to 0.0..1.0 and mapped to engine ranges by
// the client. Brightness is the in-app overlay level, not device brightness.
type AppearanceSettings struct {
	ID                  string         `json:"id"`
	UserID              string         `json:"-"`
	SymbolGridLayout    GridLayout     `json:"symbol_grid_layout"`
	FontSize            TextSize       `json:"font_size"`
	ContrastMode        ContrastMode   `json:"contrast_mode"`
	DarkModeEnabled     bool           `json:"dark_mode_enabled"`
	Brightness          int            `json:"brightness"`
	TTSPitch            float64        `json:"tts_pitch"`
	TTSSpeed            float64        `json:"tts_speed"`
	TTSVolume           float64        `json:"tts_volume"`
	TTSSelectedVoiceID  *string        `json:"tts_selected_voice_id,omitempty"`
	TTSHighlightWord    bool           `json:"tts_highlight_word"`
	TTSSpeakPunctuation bool           `json:"tts_speak_punctuation"`
	SelectionMode       *SelectionMode `json:"selection_mode,omitempty"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
}

// DefaultAppearanceSettings returns the defaults served when a user has never
// saved appearance settings.
func DefaultAppearanceSettings() *AppearanceSettings {
	drag := SelectionDrag
	return &AppearanceSettings{
		ID:               "defaults",
		SymbolGridLayout: GridLayoutStandard,
		FontSize:         TextSizeMedium,
		ContrastMode:     ContrastDefault,
		Brightness:       50,
		TTSPitch:         0.5,
		TTSSpeed:         0.5,
		TTSVolume:        0.8,
		TTSHighlightWord: true,
		SelectionMode:    &drag,
	}
}

// NormalizeContrast enforces the contrast/dark-mode consistency rule:
// high-contrast-dark implies dark mode on, high-contrast-light implies off.
// It reports whether DarkModeEnabled was changed.
func (a *AppearanceSettings) NormalizeContrast() bool {
	switch {
	case a.ContrastMode == ContrastHighDark && !a.DarkModeEnabled:
		a.DarkModeEnabled = true
		return true
	case a.ContrastMode == ContrastHighLight && a.DarkModeEnabled:
		a.DarkModeEnabled = false
		return true
	}
	return false
}
