// Package pdf turns an already-assembled report context into PDF bytes.
// It holds no scoring logic: callers hand it display-ready values.
package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
)

type Document struct {
	Title           string
	AssessmentName  string
	GeneratedAt     time.Time
	Summary         string
	TopTraits       []string
	Riasec          *RiasecSection // present only for career-interest reports
	Insights        []InsightSection
	Recommendations []string
	Chart           *ChartSection
}

type RiasecSection struct {
	HollandCode string
	Rows        []ScoreRow
}

type ScoreRow struct {
	Label string
	Score int // raw integer score shown in the table
	Pct   int // 0..100, drives the bar width
}

type InsightSection struct {
	Title            string
	Description      string
	WorkEnvironments []string
}

type ChartSection struct {
	Labels []string
	Values []float64
	// FiveScale marks 1-5 proficiency data, rendered as value*20 percent.
	// Other values are taken as percentages directly, clamped to [0,100].
	FiveScale bool
}

const (
	pageWidth  = 210.0
	marginL    = 15.0
	marginR    = 15.0
	barMaxW    = pageWidth - marginL - marginR - 60
	lineHeight = 6.0
)

// Render lays the document out on A4 pages and returns the PDF bytes.
func Render(doc *Document) ([]byte, error) {
	p := fpdf.New("P", "mm", "A4", "")
	p.SetMargins(marginL, 15, marginR)
	p.SetAutoPageBreak(true, 20)
	p.AddPage()

	p.SetFont("Helvetica", "B", 18)
	p.CellFormat(0, 10, doc.Title, "", 1, "C", false, 0, "")
	p.SetFont("Helvetica", "", 10)
	p.CellFormat(0, 6, fmt.Sprintf("%s - generated %s", doc.AssessmentName, doc.GeneratedAt.Format("2 Jan 2006")), "", 1, "C", false, 0, "")
	p.Ln(4)

	if doc.Summary != "" {
		sectionHeading(p, "Summary")
		p.SetFont("Helvetica", "", 11)
		p.MultiCell(0, lineHeight, doc.Summary, "", "L", false)
		p.Ln(2)
	}

	if len(doc.TopTraits) > 0 {
		sectionHeading(p, "Top Traits")
		p.SetFont("Helvetica", "", 11)
		for i, trait := range doc.TopTraits {
			p.CellFormat(0, lineHeight, fmt.Sprintf("%d. %s", i+1, trait), "", 1, "L", false, 0, "")
		}
		p.Ln(2)
	}

	if doc.Riasec != nil {
		renderRiasec(p, doc.Riasec)
	}

	if len(doc.Insights) > 0 {
		sectionHeading(p, "Insights")
		for _, ins := range doc.Insights {
			p.SetFont("Helvetica", "B", 11)
			p.CellFormat(0, lineHeight, ins.Title, "", 1, "L", false, 0, "")
			p.SetFont("Helvetica", "", 10)
			p.MultiCell(0, 5, ins.Description, "", "L", false)
			if len(ins.WorkEnvironments) > 0 {
				p.SetFont("Helvetica", "I", 9)
				for _, env := range ins.WorkEnvironments {
					p.CellFormat(0, 5, "- "+env, "", 1, "L", false, 0, "")
				}
			}
			p.Ln(2)
		}
	}

	if len(doc.Recommendations) > 0 {
		sectionHeading(p, "Recommendations")
		p.SetFont("Helvetica", "", 11)
		for _, rec := range doc.Recommendations {
			p.MultiCell(0, lineHeight, "- "+rec, "", "L", false)
		}
		p.Ln(2)
	}

	if doc.Chart != nil {
		renderChart(p, doc.Chart)
	}

	var buf bytes.Buffer
	if err := p.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func sectionHeading(p *fpdf.Fpdf, title string) {
	p.SetFont("Helvetica", "B", 13)
	p.SetFillColor(235, 240, 250)
	p.CellFormat(0, 8, title, "", 1, "L", true, 0, "")
	p.Ln(1)
}

func renderRiasec(p *fpdf.Fpdf, s *RiasecSection) {
	sectionHeading(p, "Interest Profile (Holland Code: "+s.HollandCode+")")
	p.SetFont("Helvetica", "", 10)
	for _, row := range s.Rows {
		p.CellFormat(45, lineHeight, row.Label, "", 0, "L", false, 0, "")
		p.CellFormat(12, lineHeight, fmt.Sprint(row.Score), "", 0, "R", false, 0, "")
		drawBar(p, row.Pct)
		p.Ln(lineHeight)
	}
	p.Ln(2)
}

func renderChart(p *fpdf.Fpdf, c *ChartSection) {
	sectionHeading(p, "Score Overview")
	p.SetFont("Helvetica", "", 10)
	for i, label := range c.Labels {
		if i >= len(c.Values) {
			break
		}
		p.CellFormat(45, lineHeight, label, "", 0, "L", false, 0, "")
		p.CellFormat(12, lineHeight, fmt.Sprintf("%.0f", c.Values[i]), "", 0, "R", false, 0, "")
		drawBar(p, BarPercent(c.Values[i], c.FiveScale))
		p.Ln(lineHeight)
	}
	p.Ln(2)
}

// BarPercent maps a chart value to a 0..100 bar width percentage: 1-5 scaled
// data renders as value*20, anything else is clamped into [0,100].
func BarPercent(value float64, fiveScale bool) int {
	pct := value
	if fiveScale {
		pct = value * 20
	}
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	return int(pct)
}

func drawBar(p *fpdf.Fpdf, pct int) {
	x, y := p.GetXY()
	p.SetFillColor(66, 103, 178)
	p.Rect(x+3, y+1, barMaxW*float64(pct)/100, lineHeight-2, "F")
}
