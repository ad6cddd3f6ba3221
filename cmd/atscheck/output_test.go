package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"alfredoptarigan/ats-checker/internal/models"
)

func sampleResponse() models.ScanResponse {
	return models.ScanResponse{Results: []models.ScanResult{
		{
			Filename:   "cv.pdf",
			Score:      52.3,
			Tier:       "optimization",
			Missing:    []string{"docker"},
			Insights:   []string{"Technical Gap: The JD emphasizes 'docker'. Add this to your Skills section."},
			Strategies: []string{"a", "b", "c"},
		},
	}}
}

func TestWriteScanResults(t *testing.T) {
	color.NoColor = true

	var text bytes.Buffer
	require.NoError(t, writeScanResults(&text, outputText, sampleResponse()))
	assert.Contains(t, text.String(), " 52.3%  cv.pdf")
	assert.Contains(t, text.String(), "missing: docker")

	var js bytes.Buffer
	require.NoError(t, writeScanResults(&js, outputJSON, sampleResponse()))
	var decoded models.ScanResponse
	require.NoError(t, json.Unmarshal(js.Bytes(), &decoded))
	assert.Equal(t, sampleResponse(), decoded)

	var ym bytes.Buffer
	require.NoError(t, writeScanResults(&ym, outputYAML, sampleResponse()))
	var fromYAML models.ScanResponse
	require.NoError(t, yaml.Unmarshal(ym.Bytes(), &fromYAML))
	assert.Equal(t, "cv.pdf", fromYAML.Results[0].Filename)
}

func TestValidateOutput(t *testing.T) {
	assert.NoError(t, validateOutput("yaml"))
	assert.Error(t, validateOutput("xml"))
}

func TestScanCommand(t *testing.T) {
	dir := t.TempDir()
	jd := filepath.Join(dir, "jd.txt")
	resume := filepath.Join(dir, "cv.txt")
	require.NoError(t, os.WriteFile(jd, []byte("Golang engineer with Kubernetes"), 0644))
	require.NoError(t, os.WriteFile(resume, []byte("Golang engineer"), 0644))

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"scan", "--jd", jd, "-o", "json", resume})

	require.NoError(t, cmd.Execute())

	var resp models.ScanResponse
	require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
	require.Len(t, resp.Results, 1)
	assert.Equal(t, []string{"kubernetes", "with"}, resp.Results[0].Missing)
	assert.Greater(t, resp.Results[0].Score, 0.0)
}

func TestTemplateCommand_RequiresJobDescription(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"template"})

	assert.Error(t, cmd.Execute())
}
