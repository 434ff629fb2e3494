package controller

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/undextrois/techdebt-reviewer/src/config"
	"github.com/undextrois/techdebt-reviewer/src/model"
	"github.com/undextrois/techdebt-reviewer/src/service/report"
	"github.com/undextrois/techdebt-reviewer/src/util"
)

// ReportController handles report generation and writing
type ReportController struct {
	cfg *config.Config
}

// NewReportController creates a new report controller
func NewReportController(cfg *config.Config) *ReportController {
	return &ReportController{cfg: cfg}
}

// GenerateReports renders the metrics in every configured format and writes
// the files to the output directory, returning the written paths.
func (c *ReportController) GenerateReports(metrics *model.AggregatedMetrics) ([]string, error) {
	util.Debug("Generating reports for %d formats: %v", len(c.cfg.Output.Formats), c.cfg.Output.Formats)
	generator := report.NewGenerator()
	var outputPaths []string

	for _, format := range c.cfg.Output.Formats {
		output, err := generator.Generate(metrics, format)
		if err != nil {
			return nil, fmt.Errorf("generating %s report: %w", format, err)
		}

		outputPath := c.getOutputPath(format)
		if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
			return nil, fmt.Errorf("creating output directory: %w", err)
		}
		if err := os.WriteFile(outputPath, []byte(output), 0644); err != nil {
			return nil, fmt.Errorf("writing report to %s: %w", outputPath, err)
		}

		util.Info("Report written: %s", outputPath)
		outputPaths = append(outputPaths, outputPath)
	}

	return outputPaths, nil
}

// GenerateToString renders the metrics in one format without writing files
func (c *ReportController) GenerateToString(metrics *model.AggregatedMetrics, format string) (string, error) {
	return report.NewGenerator().Generate(metrics, format)
}

func (c *ReportController) getOutputPath(format string) string {
	ext := format
	if format == "markdown" {
		ext = "md"
	}
	return filepath.Join(c.cfg.Output.OutputDir, "technical-debt-report."+ext)
}
