package report

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"selfchart/domain/survey"
	"selfchart/models"
)

const scoresSheet = "Scores"

// Workbook exports the reading's trait table and chart summary as an xlsx
// workbook.
func (r *Renderer) Workbook(reading *models.Reading) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(scoresSheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	headers := []string{"Trait", "Raw", "Percentile", "Band"}
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(scoresSheet, cell, h); err != nil {
			return nil, err
		}
	}

	trait := reading.Trait.TraitProfile
	row := 2
	for _, t := range survey.Traits {
		score, ok := trait.Scores[t]
		if !ok {
			continue
		}
		values := []interface{}{string(t), score.Raw, score.Percentile, string(score.Band)}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(scoresSheet, cell, v); err != nil {
				return nil, err
			}
		}
		row++
	}

	ch := reading.Chart.ChartProfile
	chartRows := [][2]string{
		{"Type", string(ch.Type)},
		{"Authority", string(ch.Authority)},
		{"Profile", ch.Profile},
		{"Definition", string(ch.Definition)},
		{"Fingerprint", reading.Fingerprint},
	}
	row++ // blank separator row
	for _, cr := range chartRows {
		if err := f.SetCellValue(scoresSheet, fmt.Sprintf("A%d", row), cr[0]); err != nil {
			return nil, err
		}
		if err := f.SetCellValue(scoresSheet, fmt.Sprintf("B%d", row), cr[1]); err != nil {
			return nil, err
		}
		row++
	}

	return f.WriteToBuffer()
}
