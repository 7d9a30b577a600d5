package database

import (
	"database/sql"

	"github.com/Masood-zone/CMS--full/app/models"
)

// GetSettingValue returns the value stored under name, or "" when unset.
func GetSettingValue(db *sql.DB, name string) (string, error) {
	var value string
	err := db.QueryRow(`SELECT value FROM settings WHERE name = $1`, name).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// UpsertSetting creates or replaces a named setting value.
func UpsertSetting(db *sql.DB, name, value string) (*models.Setting, error) {
	setting := &models.Setting{Name: name, Value: value}
	query := `INSERT INTO settings (name, value)
			  VALUES ($1, $2)
			  ON CONFLICT (name)
			  DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
			  RETURNING id, created_at, updated_at`
	err := db.QueryRow(query, name, value).Scan(&setting.ID, &setting.CreatedAt, &setting.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return setting, nil
}
