package stats

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"jardin/entities"
)

// BuildWorkbook renders the admin statistics export: one sheet of global
// numbers, one row per collaborator on the second sheet.
func BuildWorkbook(tasks []entities.Task, users []entities.User) (*excelize.File, error) {
	f := excelize.NewFile()

	const globalSheet = "Global"
	if err := f.SetSheetName("Sheet1", globalSheet); err != nil {
		return nil, err
	}
	global := GlobalTimeStats(tasks)
	rows := [][]any{
		{"Metric", "Value"},
		{"Total tasks", len(tasks)},
	}
	if global != nil {
		rows = append(rows,
			[]any{"Completed tasks", global.TotalTasks},
			[]any{"Average time", FormatDuration(global.AverageMinutes)},
			[]any{"Fastest", FormatDuration(global.FastestMinutes)},
			[]any{"Slowest", FormatDuration(global.SlowestMinutes)},
		)
	}
	for i, row := range rows {
		if err := f.SetSheetRow(globalSheet, fmt.Sprintf("A%d", i+1), &row); err != nil {
			return nil, err
		}
	}

	const collabSheet = "Collaborators"
	if _, err := f.NewSheet(collabSheet); err != nil {
		return nil, err
	}
	header := []any{"Name", "Email", "Completed tasks", "Total time", "Average", "Contribution %"}
	if err := f.SetSheetRow(collabSheet, "A1", &header); err != nil {
		return nil, err
	}
	row := 2
	for i := range users {
		u := &users[i]
		cs := CollaboratorStats(tasks, u.ID)
		if cs == nil {
			continue
		}
		values := []any{
			u.Name,
			u.Email,
			cs.TotalTasks,
			FormatDuration(cs.TotalTimeSpent),
			FormatDuration(cs.AverageMinutes),
			fmt.Sprintf("%.1f", cs.ContributionPercentage),
		}
		if err := f.SetSheetRow(collabSheet, fmt.Sprintf("A%d", row), &values); err != nil {
			return nil, err
		}
		row++
	}
	return f, nil
}
