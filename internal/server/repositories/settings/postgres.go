package settings

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/voclara/voclara/internal/common"
	"github.com/voclara/voclara/internal/dbx"
	"github.com/voclara/voclara/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetParental(ctx context.Context, userID string) (*models.ParentalSettings, error) {
	query :=
		`SELECT id, user_id, block_violence, block_inappropriate, daily_limit_hours,
		        downtime_enabled, downtime_days, downtime_start, downtime_end,
		        require_passcode, hashed_parental_passcode, notify_emails, asd_level,
		        data_sharing_preference, created_at, updated_at
		 FROM parental_settings
		 WHERE user_id = $1
		 `

	s := &models.ParentalSettings{}
	var days, emails []byte

	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&s.ID, &s.UserID, &s.BlockViolence, &s.BlockInappropriate, &s.DailyLimitHours,
		&s.DowntimeEnabled, &days, &s.DowntimeStart, &s.DowntimeEnd,
		&s.RequirePasscode, &s.HashedParentalPasscode, &emails, &s.AsdLevel,
		&s.DataSharingPreference, &s.CreatedAt, &s.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	if err := json.Unmarshal(days, &s.DowntimeDays); err != nil {
		return nil, fmt.Errorf("decode downtime_days: %w", err)
	}
	if err := json.Unmarshal(emails, &s.NotifyEmails); err != nil {
		return nil, fmt.Errorf("decode notify_emails: %w", err)
	}

	return s, nil
}

func (r *PostgresRepository) UpsertParental(ctx context.Context, s *models.ParentalSettings) (*models.ParentalSettings, error) {

	days, err := json.Marshal(s.DowntimeDays)
	if err != nil {
		return nil, fmt.Errorf("encode downtime_days: %w", err)
	}
	emails, err := json.Marshal(s.NotifyEmails)
	if err != nil {
		return nil, fmt.Errorf("encode notify_emails: %w", err)
	}

	query :=
		`INSERT INTO parental_settings
		    (user_id, block_violence, block_inappropriate, daily_limit_hours,
		     downtime_enabled, downtime_days, downtime_start, downtime_end,
		     require_passcode, hashed_parental_passcode, notify_emails, asd_level,
		     data_sharing_preference)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		 ON CONFLICT (user_id) DO UPDATE SET
		     block_violence = EXCLUDED.block_violence,
		     block_inappropriate = EXCLUDED.block_inappropriate,
		     daily_limit_hours = EXCLUDED.daily_limit_hours,
		     downtime_enabled = EXCLUDED.downtime_enabled,
		     downtime_days = EXCLUDED.downtime_days,
		     downtime_start = EXCLUDED.downtime_start,
		     downtime_end = EXCLUDED.downtime_end,
		     require_passcode = EXCLUDED.require_passcode,
		     hashed_parental_passcode = EXCLUDED.hashed_parental_passcode,
		     notify_emails = EXCLUDED.notify_emails,
		     asd_level = EXCLUDED.asd_level,
		     data_sharing_preference = EXCLUDED.data_sharing_preference,
		     updated_at = now()
		 RETURNING id, created_at, updated_at
		 `

	err = r.db.QueryRowContext(ctx, query,
		s.UserID, s.BlockViolence, s.BlockInappropriate, s.DailyLimitHours,
		s.DowntimeEnabled, days, s.DowntimeStart, s.DowntimeEnd,
		s.RequirePasscode, s.HashedParentalPasscode, emails, s.AsdLevel,
		s.DataSharingPreference).
		Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return s, nil
}

func (r *PostgresRepository) GetAppearance(ctx context.Context, userID string) (*models.AppearanceSettings, error) {
	query :=
		`SELECT id, user_id, symbol_grid_layout, font_size, contrast_mode,
		        dark_mode_enabled, brightness, tts_pitch, tts_speed, tts_volume,
		        tts_selected_voice_id, tts_highlight_word, tts_speak_punctuation,
		        selection_mode, created_at, updated_at
		 FROM appearance_settings
		 WHERE user_id = $1
		 `

	s := &models.AppearanceSettings{}

	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&s.ID, &s.UserID, &s.SymbolGridLayout, &s.FontSize, &s.ContrastMode,
		&s.DarkModeEnabled, &s.Brightness, &s.TTSPitch, &s.TTSSpeed, &s.TTSVolume,
		&s.TTSSelectedVoiceID, &s.TTSHighlightWord, &s.TTSSpeakPunctuation,
		&s.SelectionMode, &s.CreatedAt, &s.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return s, nil
}

func (r *PostgresRepository) UpsertAppearance(ctx context.Context, s *models.AppearanceSettings) (*models.AppearanceSettings, error) {
	query :=
		`INSERT INTO appearance_settings
		    (user_id, symbol_grid_layout, font_size, contrast_mode, dark_mode_enabled,
		     brightness, tts_pitch, tts_speed, tts_volume, tts_selected_voice_id,
		     tts_highlight_word, tts_speak_punctuation, selection_mode)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		 ON CONFLICT (user_id) DO UPDATE SET
		     symbol_grid_layout = EXCLUDED.symbol_grid_layout,
		     font_size = EXCLUDED.font_size,
		     contrast_mode = EXCLUDED.contrast_mode,
		     dark_mode_enabled = EXCLUDED.dark_mode_enabled,
		     brightness = EXCLUDED.brightness,
		     tts_pitch = EXCLUDED.tts_pitch,
		     tts_speed = EXCLUDED.tts_speed,
		     tts_volume = EXCLUDED.tts_volume,
		     tts_selected_voice_id = EXCLUDED.tts_selected_voice_id,
		     tts_highlight_word = EXCLUDED.tts_highlight_word,
		     tts_speak_punctuation = EXCLUDED.tts_speak_punctuation,
		     selection_mode = EXCLUDED.selection_mode,
		     updated_at = now()
		 RETURNING id, created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		s.UserID, s.SymbolGridLayout, s.FontSize, s.ContrastMode, s.DarkModeEnabled,
		s.Brightness, s.TTSPitch, s.TTSSpeed, s.TTSVolume, s.TTSSelectedVoiceID,
		s.TTSHighlightWord, s.TTSSpeakPunctuation, s.SelectionMode).
		Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return s, nil
}
