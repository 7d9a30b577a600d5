package canteen

import (
	"log"
	"strconv"

	"github.com/Masood-zone/CMS--full/app/models"
)

// standingFee resolves the current daily canteen fee. An unset or
// malformed settings value means no fee is configured yet; charging
// defaults to zero rather than failing.
func standingFee(store Store) (float64, error) {
	value, err := store.SettingValue(models.SettingAmount)
	if err != nil {
		return 0, err
	}
	if value == "" {
		return 0, nil
	}
	fee, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Settings %q holds a non-numeric value %q, defaulting to 0", models.SettingAmount, value)
		return 0, nil
	}
	return float64(fee), nil
}
