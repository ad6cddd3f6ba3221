package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"alfredoptarigan/ats-checker/internal/analyzer"
	"alfredoptarigan/ats-checker/internal/models"
)

// Upload is one résumé document as received from the caller.
type Upload struct {
	Filename string
	Data     []byte
}

type ScannerService interface {
	Scan(ctx context.Context, jobDesc string, upload Upload) (models.ScanResult, error)
	BuildTemplate(jobDesc string) models.TemplateResult
}

type scannerService struct {
	parser   DocumentParserService
	coach    CoachService
	recorder ScanRecorder
	log      *zap.Logger
}

// NewScannerService wires the matching pipeline. coach and recorder are
// optional; without a recorder nothing is persisted.
func NewScannerService(
	parser DocumentParserService,
	coach CoachService,
	recorder ScanRecorder,
	log *zap.Logger,
) ScannerService {
	return &scannerService{
		parser:   parser,
		coach:    coach,
		recorder: recorder,
		log:      log,
	}
}

// Scan extracts, analyzes and records one upload. Unreadable documents are
// analyzed as blank résumés: the result scores 0, lists the full job
// description gap as missing keywords rather than an empty list, and is flagged
// ExtractionFailed. Only persistence failures return an error.
func (s *scannerService) Scan(ctx context.Context, jobDesc string, upload Upload) (models.ScanResult, error) {
	log := s.log.With(zap.String("filename", upload.Filename))

	extractionFailed := false
	text, err := s.parser.ExtractText(upload.Filename, upload.Data)
	if err != nil {
		log.Warn("text extraction failed, scoring as blank resume", zap.Error(err))
		text = ""
		extractionFailed = true
	}

	analysis := analyzer.Analyze(text, jobDesc)
	log.Debug("resume analyzed",
		zap.Float64("score", analysis.Score),
		zap.Strings("missing", analysis.Missing),
	)

	result := models.ScanResult{
		Filename:         upload.Filename,
		Score:            analysis.Score,
		Tier:             analysis.Tier,
		Missing:          analysis.Missing,
		Insights:         analysis.Insights,
		Strategies:       analysis.Strategies,
		ExtractionFailed: extractionFailed,
	}

	if s.coach != nil && s.coach.Enabled() {
		summary, err := s.coach.Summarize(ctx, CoachInput{
			Filename:       upload.Filename,
			JobDescription: jobDesc,
			Score:          analysis.Score,
			Missing:        analysis.Missing,
		})
		if err != nil {
			log.Warn("coach summary skipped", zap.Error(err))
		} else {
			result.AISummary = summary
		}
	}

	if s.recorder != nil {
		id, err := s.recorder.Record(ctx, upload.Filename, upload.Data, analysis.Score)
		if err != nil {
			return result, fmt.Errorf("failed to record scan of %s: %w", upload.Filename, err)
		}
		result.ID = id.String()
	}

	return result, nil
}

// BuildTemplate implements ScannerService.
func (s *scannerService) BuildTemplate(jobDesc string) models.TemplateResult {
	keywords := analyzer.ExtractTopKeywords(jobDesc, analyzer.DefaultTopKeywords)

	return models.TemplateResult{
		JobDescription: jobDesc,
		Keywords:       keywords,
		Template:       analyzer.BuildResumeTemplate(keywords),
	}
}
