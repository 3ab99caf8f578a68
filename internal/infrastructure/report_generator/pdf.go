package report_generator

import (
	"fmt"
	"strconv"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/kurochkinivan/egrid_loader/internal/domain"
)

const (
	titleRowHeight = 14
	rowHeight      = 8
	labelColSize   = 6
	valueColSize   = 6
)

type PDFGenerator struct{}

func NewPDFGenerator() *PDFGenerator {
	return &PDFGenerator{}
}

// GenerateReport renders a one-page summary of the run into outputPath.
func (g *PDFGenerator) GenerateReport(outputPath string, report *domain.RunReport) error {
	cfg := config.NewBuilder().
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		Build()

	m := maroto.New(cfg)

	m.AddRow(titleRowHeight, text.NewCol(12, "eGRID load report", props.Text{
		Size:  16,
		Style: fontstyle.Bold,
		Align: align.Center,
	}))

	for _, field := range reportFields(report) {
		m.AddRow(rowHeight, fieldCols(field[0], field[1])...)
	}

	document, err := m.Generate()
	if err != nil {
		return fmt.Errorf("failed to generate pdf: %w", err)
	}

	if err := document.Save(outputPath); err != nil {
		return fmt.Errorf("failed to save pdf to %s: %w", outputPath, err)
	}

	return nil
}

func reportFields(report *domain.RunReport) [][2]string {
	return [][2]string{
		{"Run ID", report.RunID},
		{"Execution date", report.ExecutionDate.Format(time.RFC3339)},
		{"Status", string(report.Status)},
		{"Files scanned", strconv.Itoa(report.FilesScanned)},
		{"Files validated", strconv.Itoa(report.FilesValidated)},
		{"Files invalid", strconv.Itoa(report.FilesInvalid)},
		{"Records loaded", strconv.FormatInt(report.TotalRecords, 10)},
		{"Success rate", strconv.FormatFloat(report.SuccessRate(), 'f', 2, 64) + "%"},
		{"Duration", report.Duration.Round(time.Millisecond).String()},
	}
}

func fieldCols(label, value string) []core.Col {
	return []core.Col{
		text.NewCol(labelColSize, label, props.Text{Style: fontstyle.Bold, Align: align.Left}),
		text.NewCol(valueColSize, value, props.Text{Align: align.Left}),
	}
}
