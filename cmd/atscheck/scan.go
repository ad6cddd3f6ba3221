package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"alfredoptarigan/ats-checker/internal/models"
	"alfredoptarigan/ats-checker/internal/services"
)

func newScanCmd(root *rootOptions) *cobra.Command {
	var (
		jdPath      string
		output      string
		concurrency int
	)

	cmd := &cobra.Command{
		Use:   "scan --jd JOB.txt RESUME...",
		Short: "Score one or more resumes against a job description",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutput(output); err != nil {
				return err
			}

			parser := services.NewDocumentParserService(root.log)
			jobDesc, err := readJobDescription(parser, jdPath)
			if err != nil {
				return err
			}

			uploads := make([]services.Upload, 0, len(args))
			for _, path := range args {
				data, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("failed to read %s: %w", path, err)
				}
				uploads = append(uploads, services.Upload{Filename: filepath.Base(path), Data: data})
			}

			var scanner services.ScannerService = services.NewScannerService(parser, nil, nil, root.log)

			if len(uploads) > 1 && output == outputText {
				bar := progressbar.NewOptions(len(uploads),
					progressbar.OptionSetWriter(cmd.ErrOrStderr()),
					progressbar.OptionSetDescription("scanning"),
					progressbar.OptionClearOnFinish(),
				)
				scanner = &progressScanner{ScannerService: scanner, bar: bar}
			}

			batch := services.NewBatchScanner(scanner, concurrency, root.log)
			results, err := batch.ScanAll(context.Background(), jobDesc, uploads)
			if err != nil {
				return err
			}

			return writeScanResults(cmd.OutOrStdout(), output, models.ScanResponse{Results: results})
		},
	}

	cmd.Flags().StringVar(&jdPath, "jd", "", "path to the job description (.txt, .docx or .pdf)")
	cmd.Flags().StringVarP(&output, "output", "o", outputText, "output format: text, json or yaml")
	cmd.Flags().IntVar(&concurrency, "concurrency", 4, "number of resumes scanned in parallel")

	return cmd
}

// progressScanner advances a progress bar after each scanned resume.
type progressScanner struct {
	services.ScannerService
	bar *progressbar.ProgressBar
}

func (p *progressScanner) Scan(ctx context.Context, jobDesc string, upload services.Upload) (models.ScanResult, error) {
	result, err := p.ScannerService.Scan(ctx, jobDesc, upload)
	_ = p.bar.Add(1)
	return result, err
}
