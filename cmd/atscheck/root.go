package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"alfredoptarigan/ats-checker/internal/logger"
	"alfredoptarigan/ats-checker/internal/services"
)

type rootOptions struct {
	debug bool
	log   *zap.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "atscheck",
		Short:         "Check resumes against a job description the way an ATS would",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			log, err := logger.New(false, opts.debug)
			if err != nil {
				return fmt.Errorf("failed to create logger: %w", err)
			}
			if !opts.debug {
				log = zap.NewNop()
			}
			opts.log = log
			return nil
		},
	}

	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")

	cmd.AddCommand(newScanCmd(opts))
	cmd.AddCommand(newTemplateCmd(opts))

	return cmd
}

// readJobDescription loads the job description from a .txt, .docx or .pdf file.
func readJobDescription(parser services.DocumentParserService, path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("--jd is required")
	}

	content, err := parser.ExtractFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read job description: %w", err)
	}

	jobDesc := strings.TrimSpace(content.Text)
	if jobDesc == "" {
		return "", fmt.Errorf("job description %s is empty", path)
	}
	return jobDesc, nil
}
