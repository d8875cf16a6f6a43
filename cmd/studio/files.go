package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jonathan/proposal-studio/internal/schemas"
	"github.com/jonathan/proposal-studio/internal/types"
)

// readJSONFile validates path against the named schema and decodes it into v.
func readJSONFile(path, schema string, v any) error {
	if err := schemas.ValidateFile(schema, path); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(content, v); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", path, err)
	}
	return nil
}

func readIntake(path string) (types.IntakeData, error) {
	var intake types.IntakeData
	if err := readJSONFile(path, schemas.Intake, &intake); err != nil {
		return types.IntakeData{}, err
	}
	if err := intake.Validate(); err != nil {
		return types.IntakeData{}, fmt.Errorf("invalid intake %s: %w", path, err)
	}
	return intake, nil
}

func readStyleProfile(path string) (types.StyleProfile, error) {
	var profile types.StyleProfile
	if err := readJSONFile(path, schemas.StyleProfile, &profile); err != nil {
		return types.StyleProfile{}, err
	}
	if err := profile.Validate(); err != nil {
		return types.StyleProfile{}, fmt.Errorf("invalid style profile %s: %w", path, err)
	}
	return profile, nil
}

// writeOutput writes content to outPath, or to w when outPath is empty.
func writeOutput(w io.Writer, outPath string, content []byte) error {
	if outPath == "" {
		_, err := w.Write(content)
		return err
	}

	if dir := filepath.Dir(outPath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(outPath, content, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

func writeJSON(w io.Writer, outPath string, v any) error {
	content, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return writeOutput(w, outPath, append(content, '\n'))
}
