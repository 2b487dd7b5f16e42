package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/jwhandley/ttwa/area"
	"github.com/jwhandley/ttwa/graph"
	"github.com/jwhandley/ttwa/ingest"
	"github.com/jwhandley/ttwa/report"
)

func newReportCmd() *cobra.Command {
	var jsonPath, svgPath string
	var maxIter int

	cmd := &cobra.Command{
		Use:   "report <input.csv>",
		Short: "Run fit and print a styled terminal summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(args[0], maxIter, jsonPath, svgPath)
		},
	}

	cmd.Flags().IntVar(&maxIter, "max-iter", 1<<30, "maximum dissolution rounds")
	cmd.Flags().StringVar(&jsonPath, "json", "", "also write a JSON partition snapshot here")
	cmd.Flags().StringVar(&svgPath, "svg", "", "also write an SVG size histogram here")

	return cmd
}

func runReport(inputPath string, maxIter int, jsonPath, svgPath string) error {
	f, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("ttwa: opening %s: %w", inputPath, err)
	}
	defer f.Close()

	codes, matrix, err := ingest.ReadAdjacencyMatrix(f)
	if err != nil {
		return fmt.Errorf("ttwa: reading %s: %w", inputPath, err)
	}

	g, err := graph.FromAdjacencyMatrix(matrix)
	if err != nil {
		return fmt.Errorf("ttwa: building graph: %w", err)
	}

	ac := area.NewAreaCollection(g)
	partition, err := ac.Fit(maxIter)
	if err != nil {
		return fmt.Errorf("ttwa: fit: %w", err)
	}

	printSummary(partition)

	if jsonPath != "" {
		jf, err := os.Create(jsonPath)
		if err != nil {
			return fmt.Errorf("ttwa: creating %s: %w", jsonPath, err)
		}
		defer jf.Close()
		if err := report.WriteJSON(jf, codes, partition); err != nil {
			return err
		}
	}

	if svgPath != "" {
		sf, err := os.Create(svgPath)
		if err != nil {
			return fmt.Errorf("ttwa: creating %s: %w", svgPath, err)
		}
		defer sf.Close()
		if err := report.WriteSizeHistogramSVG(sf, partition); err != nil {
			return err
		}
	}

	return nil
}

var (
	reportTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	reportLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	reportValueStyle = lipgloss.NewStyle().Bold(true)
)

func printSummary(partition area.Partition) {
	stats := report.Summary(partition)

	line := func(label string, value any) string {
		return lipgloss.JoinHorizontal(lipgloss.Left,
			reportLabelStyle.Render(fmt.Sprintf("%-24s", label)),
			reportValueStyle.Render(fmt.Sprintf("%v", value)),
		)
	}

	block := lipgloss.JoinVertical(lipgloss.Left,
		reportTitleStyle.Render("ttwa fit summary"),
		line("areas", stats.AreaCount),
		line("iterations", partition.Iterations),
		line("iter limit reached", partition.IterLimitReached),
		line("mean area size", fmt.Sprintf("%.1f", stats.MeanSize)),
		line("mean self-containment", fmt.Sprintf("%.3f", stats.MeanSelfContainment)),
		line("median self-containment", fmt.Sprintf("%.3f", stats.MedianContainment)),
	)

	fmt.Println(block)
}
