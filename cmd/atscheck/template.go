package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"alfredoptarigan/ats-checker/internal/services"
)

func newTemplateCmd(root *rootOptions) *cobra.Command {
	var jdPath string

	cmd := &cobra.Command{
		Use:   "template --jd JOB.txt",
		Short: "Print a resume skeleton seeded with the job description's top keywords",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			parser := services.NewDocumentParserService(root.log)
			jobDesc, err := readJobDescription(parser, jdPath)
			if err != nil {
				return err
			}

			scanner := services.NewScannerService(parser, nil, nil, root.log)
			result := scanner.BuildTemplate(jobDesc)

			_, err = fmt.Fprint(cmd.OutOrStdout(), result.Template)
			return err
		},
	}

	cmd.Flags().StringVar(&jdPath, "jd", "", "path to the job description (.txt, .docx or .pdf)")

	return cmd
}
