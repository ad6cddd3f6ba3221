package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"alfredoptarigan/ats-checker/internal/models"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

func validateOutput(output string) error {
	switch output {
	case outputText, outputJSON, outputYAML:
		return nil
	}
	return fmt.Errorf("unknown output format %q (want text, json or yaml)", output)
}

func writeScanResults(w io.Writer, output string, resp models.ScanResponse) error {
	switch output {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(resp)
	default:
		return writeText(w, resp.Results)
	}
}

func scoreColor(score float64) *color.Color {
	switch {
	case score >= 75:
		return color.New(color.FgGreen, color.Bold)
	case score >= 40:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgRed, color.Bold)
	}
}

func writeText(w io.Writer, results []models.ScanResult) error {
	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(w)
		}

		fmt.Fprintf(w, "%s  %s\n", scoreColor(r.Score).Sprintf("%5.1f%%", r.Score), r.Filename)
		if r.ExtractionFailed {
			fmt.Fprintln(w, "  warning: no text could be extracted from this file")
		}

		missing := "none"
		if len(r.Missing) > 0 {
			missing = strings.Join(r.Missing, ", ")
		}
		fmt.Fprintf(w, "  missing: %s\n", missing)

		fmt.Fprintln(w, "  insights:")
		for _, s := range r.Insights {
			fmt.Fprintf(w, "    - %s\n", s)
		}
		fmt.Fprintln(w, "  strategies:")
		for _, s := range r.Strategies {
			fmt.Fprintf(w, "    - %s\n", s)
		}
	}
	return nil
}
