package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/voclara/voclara/internal/server/models"
)

// parentalSettingsRequest uses pointers throughout: omitted fields keep their
// stored value, so a PUT merges onto the existing (or default) settings.
type parentalSettingsRequest struct {
	BlockViolence         *bool               `json:"block_violence"`
	BlockInappropriate    *bool               `json:"block_inappropriate"`
	DailyLimitHours       *string             `json:"daily_limit_hours"`
	DowntimeEnabled       *bool               `json:"downtime_enabled"`
	DowntimeDays          *[]models.DayOfWeek `json:"downtime_days"`
	DowntimeStart         *string             `json:"downtime_start"`
	DowntimeEnd           *string             `json:"downtime_end"`
	RequirePasscode       *bool               `json:"require_passcode"`
	ParentalPasscode      *string             `json:"parental_passcode"`
	NotifyEmails          *[]string           `json:"notify_emails"`
	AsdLevel              *models.AsdLevel    `json:"asd_level"`
	DataSharingPreference *bool               `json:"data_sharing_preference"`
}

type verifyPasscodeRequest struct {
	Passcode string `json:"passcode" binding:"required"`
}

type appearanceSettingsRequest struct {
	SymbolGridLayout *models.GridLayout   `json:"symbol_grid_layout"`
	FontSize         *models.TextSize     `json:"font_size"`
	ContrastMode     *models.ContrastMode `json:"contrast_mode"`
	// Theme is the alias mobile clients send for contrast_mode.
	Theme               *models.ContrastMode  `json:"theme"`
	DarkModeEnabled     *bool                 `json:"dark_mode_enabled"`
	Brightness          *int                  `json:"brightness"`
	TTSPitch            *float64              `json:"tts_pitch"`
	TTSSpeed            *float64              `json:"tts_speed"`
	TTSVolume           *float64              `json:"tts_volume"`
	TTSSelectedVoiceID  *string               `json:"tts_selected_voice_id"`
	TTSHighlightWord    *bool                 `json:"tts_highlight_word"`
	TTSSpeakPunctuation *bool                 `json:"tts_speak_punctuation"`
	SelectionMode       *models.SelectionMode `json:"selection_mode"`
}

func validTimeOfDay(v string) bool {
	_, err := time.Parse("15:04", v)
	return err == nil
}

func validDailyLimit(v string) bool {
	if v == "" {
		return true
	}
	n, err := strconv.Atoi(v)
	return err == nil && n >= 0 && n <= 24
}

func (s *Server) handleGetParental(c *gin.Context) {
	user := currentUser(c)

	settings, err := s.settings.GetParental(c.Request.Context(), user.ID)
	if err != nil {
		s.logger.Error(c.Request.Context(), "parental settings read failed", "error", err)
		abortWithDetail(c, http.StatusInternalServerError, "Could not retrieve parental settings.")
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (s *Server) handleUpdateParental(c *gin.Context) {
	var req parentalSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithDetail(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	user := currentUser(c)
	settings, err := s.settings.GetParental(c.Request.Context(), user.ID)
	if err != nil {
		s.logger.Error(c.Request.Context(), "parental settings read failed", "error", err)
		abortWithDetail(c, http.StatusInternalServerError, "Could not retrieve parental settings.")
		return
	}

	if req.BlockViolence != nil {
		settings.BlockViolence = *req.BlockViolence
	}
	if req.BlockInappropriate != nil {
		settings.BlockInappropriate = *req.BlockInappropriate
	}
	if req.DailyLimitHours != nil {
		if !validDailyLimit(*req.DailyLimitHours) {
			abortWithDetail(c, http.StatusUnprocessableEntity, "Daily limit must be a whole number of hours between 0 and 24.")
			return
		}
		if *req.DailyLimitHours == "" {
			settings.DailyLimitHours = nil
		} else {
			settings.DailyLimitHours = req.DailyLimitHours
		}
	}
	if req.DowntimeEnabled != nil {
		settings.DowntimeEnabled = *req.DowntimeEnabled
	}
	if req.DowntimeDays != nil {
		for _, d := range *req.DowntimeDays {
			if !models.ValidDay(d) {
				abortWithDetail(c, http.StatusUnprocessableEntity, "Invalid downtime day.")
				return
			}
		}
		settings.DowntimeDays = *req.DowntimeDays
	}
	if req.DowntimeStart != nil {
		if !validTimeOfDay(*req.DowntimeStart) {
			abortWithDetail(c, http.StatusUnprocessableEntity, "Downtime start must be HH:MM.")
			return
		}
		settings.DowntimeStart = *req.DowntimeStart
	}
	if req.DowntimeEnd != nil {
		if !validTimeOfDay(*req.DowntimeEnd) {
			abortWithDetail(c, http.StatusUnprocessableEntity, "Downtime end must be HH:MM.")
			return
		}
		settings.DowntimeEnd = *req.DowntimeEnd
	}
	if req.RequirePasscode != nil {
		settings.RequirePasscode = *req.RequirePasscode
	}
	if req.NotifyEmails != nil {
		settings.NotifyEmails = *req.NotifyEmails
	}
	if req.AsdLevel != nil {
		settings.AsdLevel = req.AsdLevel
	}
	if req.DataSharingPreference != nil {
		settings.DataSharingPreference = *req.DataSharingPreference
	}

	if settings.DowntimeEnabled && len(settings.DowntimeDays) == 0 {
		abortWithDetail(c, http.StatusUnprocessableEntity, "Downtime requires at least one day.")
		return
	}

	updated, err := s.settings.UpdateParental(c.Request.Context(), user.ID, settings, req.ParentalPasscode)
	if err != nil {
		s.logger.Error(c.Request.Context(), "parental settings update failed", "error", err)
		abortWithDetail(c, http.StatusInternalServerError, "Could not update parental settings.")
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (s *Server) handleVerifyPasscode(c *gin.Context) {
	var req verifyPasscodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithDetail(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	user := currentUser(c)
	ok, err := s.settings.VerifyParentalPasscode(c.Request.Context(), user.ID, req.Passcode)
	if err != nil {
		s.logger.Error(c.Request.Context(), "passcode verification failed", "error", err)
		abortWithDetail(c, http.StatusInternalServerError, "Could not verify passcode.")
		return
	}

	resp := gin.H{"success": ok}
	if !ok {
		resp["message"] = "Incorrect parental passcode."
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleGetAppearance(c *gin.Context) {
	user := currentUser(c)

	settings, err := s.settings.GetAppearance(c.Request.Context(), user.ID)
	if err != nil {
		s.logger.Error(c.Request.Context(), "appearance settings read failed", "error", err)
		abortWithDetail(c, http.StatusInternalServerError, "Could not retrieve appearance settings.")
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (s *Server) handleUpdateAppearance(c *gin.Context) {
	var req appearanceSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithDetail(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	user := currentUser(c)
	settings, err := s.settings.GetAppearance(c.Request.Context(), user.ID)
	if err != nil {
		s.logger.Error(c.Request.Context(), "appearance settings read failed", "error", err)
		abortWithDetail(c, http.StatusInternalServerError, "Could not retrieve appearance settings.")
		return
	}

	contrast := req.ContrastMode
	if contrast == nil {
		contrast = req.Theme
	}
	if contrast != nil {
		settings.ContrastMode = *contrast
	}
	if req.SymbolGridLayout != nil {
		settings.SymbolGridLayout = *req.SymbolGridLayout
	}
	if req.FontSize != nil {
		settings.FontSize = *req.FontSize
	}
	if req.DarkModeEnabled != nil {
		settings.DarkModeEnabled = *req.DarkModeEnabled
	}
	if req.Brightness != nil {
		if *req.Brightness < 0 || *req.Brightness > 100 {
			abortWithDetail(c, http.StatusUnprocessableEntity, "Brightness must be between 0 and 100.")
			return
		}
		settings.Brightness = *req.Brightness
	}
	for _, v := range []struct {
		value *float64
		dst   *float64
		name  string
	}{
		{req.TTSPitch, &settings.TTSPitch, "tts_pitch"},
		{req.TTSSpeed, &settings.TTSSpeed, "tts_speed"},
		{req.TTSVolume, &settings.TTSVolume, "tts_volume"},
	} {
		if v.value == nil {
			continue
		}
		if *v.value < 0 || *v.value > 1 {
			abortWithDetail(c, http.StatusUnprocessableEntity, v.name+" must be between 0.0 and 1.0.")
			return
		}
		*v.dst = *v.value
	}
	if req.TTSSelectedVoiceID != nil {
		settings.TTSSelectedVoiceID = req.TTSSelectedVoiceID
	}
	if req.TTSHighlightWord != nil {
		settings.TTSHighlightWord = *req.TTSHighlightWord
	}
	if req.TTSSpeakPunctuation != nil {
		settings.TTSSpeakPunctuation = *req.TTSSpeakPunctuation
	}
	if req.SelectionMode != nil {
		settings.SelectionMode = req.SelectionMode
	}

	if settings.NormalizeContrast() {
		s.logger.Warn(c.Request.Context(), "dark mode adjusted to match contrast mode",
			"contrast_mode", settings.ContrastMode)
	}

	updated, err := s.settings.UpdateAppearance(c.Request.Context(), user.ID, settings)
	if err != nil {
		s.logger.Error(c.Request.Context(), "appearance settings update failed", "error", err)
		abortWithDetail(c, http.StatusInternalServerError, "Could not update appearance settings.")
		return
	}

	c.JSON(http.StatusOK, updated)
}
