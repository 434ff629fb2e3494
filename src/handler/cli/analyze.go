package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/undextrois/techdebt-reviewer/src/controller"
	"github.com/undextrois/techdebt-reviewer/src/util"
)

func (h *Handler) analyzeCmd() *cobra.Command {
	var (
		inputDir  string
		outputDir string
		format    string
		topN      int
		maxFiles  int
		dryRun    bool
		timeout   time.Duration
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a directory of code review documents",
		Long:  "Extracts technical debt items from Markdown review documents, ranks them, and generates reports",
		RunE: func(cmd *cobra.Command, args []string) error {
			if inputDir == "" {
				inputDir = h.cfg.Input.Dir
			}
			if !cmd.Flags().Changed("top-n") {
				topN = h.cfg.Analysis.TopN
			}
			if !cmd.Flags().Changed("max-files") {
				maxFiles = h.cfg.Input.MaxFiles
			}

			util.Info("Analyzing reviews in: %s (timeout: %v)", inputDir, timeout)

			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			analysisCtrl := controller.NewAnalysisController(h.cfg)
			result, err := analysisCtrl.Analyze(ctx, controller.AnalyzeRequest{
				InputDir: inputDir,
				MaxFiles: maxFiles,
				TopN:     topN,
			})
			if err != nil {
				util.Error("Analysis failed: %v", err)
				return fmt.Errorf("analysis failed: %w", err)
			}

			if outputDir != "" {
				h.cfg.Output.OutputDir = outputDir
			}
			if format != "" {
				h.cfg.Output.Formats = []string{format}
			}

			if dryRun {
				util.Info("Dry run: skipping report generation")
			} else {
				reportCtrl := controller.NewReportController(h.cfg)
				paths, err := reportCtrl.GenerateReports(result.Metrics)
				if err != nil {
					return fmt.Errorf("generating reports: %w", err)
				}
				for _, path := range paths {
					fmt.Printf("Report written to %s\n", path)
				}
			}

			printSummary(result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputDir, "input-dir", "i", "", "Directory containing Markdown review documents")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory for reports")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Report format (markdown, json, csv)")
	cmd.Flags().IntVarP(&topN, "top-n", "n", 10, "Number of top priority items to highlight")
	cmd.Flags().IntVar(&maxFiles, "max-files", 0, "Maximum number of files to process (0 = no limit)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Parse and analyze but do not write report files")
	cmd.Flags().DurationVarP(&timeout, "timeout", "t", 5*time.Minute, "Analysis timeout")

	return cmd
}

// printSummary writes a severity-colored rollup to stderr
func printSummary(result *controller.AnalysisResult) {
	metrics := result.Metrics

	fmt.Fprintf(os.Stderr, "\nAnalysis complete:\n")
	fmt.Fprintf(os.Stderr, "  Repositories analyzed: %d\n", metrics.TotalRepos)
	fmt.Fprintf(os.Stderr, "  Total debt items:      %d\n", metrics.TotalDebtItems)
	fmt.Fprintf(os.Stderr, "  Average severity:      %.2f/5\n", metrics.AverageSeverity)
	fmt.Fprintf(os.Stderr, "  Average priority:      %.2f/100\n", metrics.AveragePriority)

	if metrics.TotalDebtItems == 0 {
		return
	}

	severityColors := map[int]*color.Color{
		5: color.New(color.FgRed, color.Bold),
		4: color.New(color.FgRed),
		3: color.New(color.FgYellow),
		2: color.New(color.FgGreen),
		1: color.New(color.FgWhite),
	}
	severityNames := map[int]string{
		5: "critical", 4: "high", 3: "medium", 2: "low", 1: "minimal",
	}

	fmt.Fprintf(os.Stderr, "  Severity distribution:\n")
	for severity := 5; severity >= 1; severity-- {
		count := metrics.SeverityDistribution[severity]
		if count == 0 {
			continue
		}
		label := severityColors[severity].Sprintf("%-8s", severityNames[severity])
		fmt.Fprintf(os.Stderr, "    %s %d\n", label, count)
	}
}
