package main

import (
	"fmt"
	"net/http"

	"gemtrade/config"
	"gemtrade/logger"
	"gemtrade/respond"
	"gemtrade/scheduler"
)

// GetConfigHandler returns the current settings. Secrets are never included.
func GetConfigHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respond.JSON(w, http.StatusOK, config.GetConfig())
	}
}

// SaveConfigHandler validates and persists new settings. Listen address and
// schedule changes apply after a restart.
func SaveConfigHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var newCfg config.Config
		if !respond.Decode(w, r, &newCfg) {
			return
		}
		if err := validateConfig(newCfg); err != nil {
			respond.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := config.SaveConfig(newCfg); err != nil {
			logger.Error("saving config failed", "error", err)
			respond.Error(w, "failed to save settings", http.StatusInternalServerError)
			return
		}
		respond.Message(w, "settings saved")
	}
}

func validateConfig(c config.Config) error {
	if c.TaxRatePercent < 0 || c.TaxRatePercent > 100 {
		return fmt.Errorf("taxRatePercent must be between 0 and 100")
	}
	if err := scheduler.ValidateSchedule(c.DigestSchedule); err != nil {
		return err
	}
	return nil
}
