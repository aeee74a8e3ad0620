package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// StructuredJSONConfig is the layout of the optional JSON config file.
type StructuredJSONConfig struct {
	Installer struct {
		RootDir       string `json:"root_dir"`
		ModuleName    string `json:"module_name"`
		ModuleVersion string `json:"module_version"`
		Action        string `json:"action"`
		LogLevel      string `json:"log_level"`
	} `json:"installer,omitempty"`

	Storage struct {
		DB struct {
			Type string `json:"type"`
			DSN  string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return &StructuredConfig{
		Installer: Installer{
			RootDir:       jsonCfg.Installer.RootDir,
			ModuleName:    jsonCfg.Installer.ModuleName,
			ModuleVersion: jsonCfg.Installer.ModuleVersion,
			Action:        jsonCfg.Installer.Action,
			LogLevel:      jsonCfg.Installer.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				Type: jsonCfg.Storage.DB.Type,
				DSN:  jsonCfg.Storage.DB.DSN,
			},
		},
	}, nil
}
