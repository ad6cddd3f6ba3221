package models

import "time"

type ScanResult struct {
	ID               string   `json:"id,omitempty" yaml:"id,omitempty"`
	Filename         string   `json:"filename" yaml:"filename"`
	Score            float64  `json:"score" yaml:"score"`
	Tier             string   `json:"tier" yaml:"tier"`
	Missing          []string `json:"missing" yaml:"missing"`
	Insights         []string `json:"insights" yaml:"insights"`
	Strategies       []string `json:"strategies" yaml:"strategies"`
	ExtractionFailed bool     `json:"extraction_failed" yaml:"extraction_failed"`
	AISummary        string   `json:"ai_summary,omitempty" yaml:"ai_summary,omitempty"`
}

type ScanResponse struct {
	Results []ScanResult `json:"results" yaml:"results"`
}

type GeneratorRequest struct {
	JobDescription string `json:"job_description" form:"job_description"`
}

type TemplateResult struct {
	JobDescription string   `json:"job_description" yaml:"job_description"`
	Keywords       []string `json:"keywords" yaml:"keywords"`
	Template       string   `json:"template" yaml:"template"`
}

type ScanRecordResponse struct {
	ID         string    `json:"id"`
	Filename   string    `json:"filename"`
	Score      float64   `json:"score"`
	UploadedAt time.Time `json:"uploaded_at"`
}

type ScanListResponse struct {
	Scans []ScanRecordResponse `json:"scans"`
	Count int                  `json:"count"`
}
