package models

import "time"

// AboutInfo is the read-only payload backing the About panel.
type AboutInfo struct {
	Name            string    `json:"name"`
	Version         string    `json:"version"`
	Commit          string    `json:"commit"`
	OperatingSystem string    `json:"operatingSystem"`
	Architecture    string    `json:"architecture"`
	GoVersion       string    `json:"goVersion"`
	FirstStartup    time.Time `json:"firstStartup"`
	DatabasePath    string    `json:"databasePath"`
}
