package report

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"
)

// Renderer writes an assembled Report into a styled xlsx workbook:
// a three-rows-per-day attendance grid, a financial summary section,
// and an allowances/deductions section. All values are written fully
// resolved; the sections reference each other only through the Go-side
// computation, never through live spreadsheet formulas.
type Renderer struct {
	CompanyName string
	Title       string
}

const (
	fillHeader     = "2C3E50"
	fillSubheader  = "34495E"
	fillCheckIn    = "D5F5E3"
	fillCheckOut   = "FADBD8"
	fillMinutes    = "D6EAF8"
	fillSunday     = "FFE5E5"
	fillToday      = "FCF3CF"
	fillAltColumn  = "ECF0F1"
	fillFinancial  = "F39C12"
	fillDeductions = "27AE60"
	fillName       = "F5B7B1"
	fillInHand     = "A9DFBF"
)

const (
	fmtMoney   = `"₹"#,##0.00`
	fmtWage    = `"₹"#,##0.0000`
	fmtMinutes = "#,##0.00"
	fmtPercent = "0.00%"
)

var summaryLabels = []string{
	"ID", "Name", "Presence", "Absence", "Basic Salary", "Total Days",
	"Payable Days", "Per Day Amt", "Per Min Wage", "Total Mins",
	"Gross Salary", "Short Hour Deduct.", "Earned Salary", "In Hand Salary",
}

var deductionLabels = []string{
	"ID", "Name", "Allowance", "Advance Paid", "Loan", "Interest %",
	"Interest Amt", "Premium", "Total Deductions",
}

// Filename returns the download name for a monthly report workbook.
func Filename(month time.Month, year int) string {
	return fmt.Sprintf("attendance_salary_report_%02d_%d.xlsx", int(month), year)
}

// WriteXLSX renders the report workbook to w.
func (r Renderer) WriteXLSX(w io.Writer, rep *Report) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := fmt.Sprintf("Attendance %s %d", rep.Month.String(), rep.Year)
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	st, err := newStyleSet(f)
	if err != nil {
		return fmt.Errorf("build styles: %w", err)
	}

	if err := r.writeHeader(f, sheet, st, rep); err != nil {
		return err
	}
	writeGridHeaders(f, sheet, st, rep)
	writeGrid(f, sheet, st, rep)

	numMainCols := 2 + len(rep.Employees)
	summaryCol := numMainCols + 2
	writeSummary(f, sheet, st, rep, summaryCol)

	deductionsCol := summaryCol + len(rep.Employees) + 2
	writeDeductions(f, sheet, st, rep, deductionsCol)

	finalizeLayout(f, sheet, numMainCols)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// styleSet holds the precomputed style IDs used across the sheet.
type styleSet struct {
	title, stamp      int
	subheader         int
	ciLabel, coLabel  int
	minsLabel         int
	data, dataAlt     int
	ciData, coData    int
	minsData, minsAlt int
	sundayDate        int
	todayDate         int
	plainDate         int
	financialTitle    int
	deductionsTitle   int
	summaryHead       int
	inHandHead        int
	nameCell          int
	inHandCell        int
	money, moneyAlt   int
	wage, percent     int
}

func border() []excelize.Border {
	sides := []string{"left", "right", "top", "bottom"}
	b := make([]excelize.Border, 0, 4)
	for _, s := range sides {
		b = append(b, excelize.Border{Type: s, Color: "BDC3C7", Style: 1})
	}
	return b
}

func centered() *excelize.Alignment {
	return &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true}
}

func solid(color string) excelize.Fill {
	return excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}}
}

func newStyleSet(f *excelize.File) (*styleSet, error) {
	st := &styleSet{}
	numFmt := func(s string) *string { return &s }

	specs := []struct {
		dst   *int
		style *excelize.Style
	}{
		{&st.title, &excelize.Style{
			Font:      &excelize.Font{Size: 18, Bold: true, Color: "FFFFFF"},
			Fill:      solid(fillHeader),
			Alignment: centered(),
		}},
		{&st.stamp, &excelize.Style{
			Font:      &excelize.Font{Size: 11, Italic: true, Color: "FFFFFF"},
			Fill:      solid(fillHeader),
			Alignment: centered(),
		}},
		{&st.subheader, &excelize.Style{
			Font:      &excelize.Font{Size: 11, Bold: true, Color: "FFFFFF"},
			Fill:      solid(fillSubheader),
			Alignment: centered(),
			Border:    border(),
		}},
		{&st.ciLabel, &excelize.Style{
			Font:      &excelize.Font{Bold: true, Color: "287431"},
			Fill:      solid(fillCheckIn),
			Alignment: centered(),
			Border:    border(),
		}},
		{&st.coLabel, &excelize.Style{
			Font:      &excelize.Font{Bold: true, Color: "943126"},
			Fill:      solid(fillCheckOut),
			Alignment: centered(),
			Border:    border(),
		}},
		{&st.minsLabel, &excelize.Style{
			Font:      &excelize.Font{Bold: true, Color: "1B4F72"},
			Fill:      solid(fillMinutes),
			Alignment: centered(),
			Border:    border(),
		}},
		{&st.data, &excelize.Style{
			Font:      &excelize.Font{Size: 11},
			Alignment: centered(),
			Border:    border(),
		}},
		{&st.dataAlt, &excelize.Style{
			Font:      &excelize.Font{Size: 11},
			Fill:      solid(fillAltColumn),
			Alignment: centered(),
			Border:    border(),
		}},
		{&st.ciData, &excelize.Style{
			Font:      &excelize.Font{Size: 11, Color: "287431"},
			Alignment: centered(),
			Border:    border(),
		}},
		{&st.coData, &excelize.Style{
			Font:      &excelize.Font{Size: 11, Color: "943126"},
			Alignment: centered(),
			Border:    border(),
		}},
		{&st.minsData, &excelize.Style{
			Font:      &excelize.Font{Size: 11},
			Alignment: centered(),
			Border:    border(),
			CustomNumFmt: numFmt(fmtMinutes),
		}},
		{&st.minsAlt, &excelize.Style{
			Font:      &excelize.Font{Size: 11},
			Fill:      solid(fillAltColumn),
			Alignment: centered(),
			Border:    border(),
			CustomNumFmt: numFmt(fmtMinutes),
		}},
		{&st.sundayDate, &excelize.Style{
			Font:      &excelize.Font{Size: 11, Bold: true, Color: "943126"},
			Fill:      solid(fillSunday),
			Alignment: centered(),
			Border:    border(),
		}},
		{&st.todayDate, &excelize.Style{
			Font:      &excelize.Font{Size: 11, Bold: true, Color: "B7950B"},
			Fill:      solid(fillToday),
			Alignment: centered(),
			Border:    border(),
		}},
		{&st.plainDate, &excelize.Style{
			Font:      &excelize.Font{Size: 11},
			Alignment: centered(),
			Border:    border(),
		}},
		{&st.financialTitle, &excelize.Style{
			Font:      &excelize.Font{Size: 18, Bold: true, Color: "FFFFFF"},
			Fill:      solid(fillFinancial),
			Alignment: centered(),
		}},
		{&st.deductionsTitle, &excelize.Style{
			Font:      &excelize.Font{Size: 18, Bold: true, Color: "FFFFFF"},
			Fill:      solid(fillDeductions),
			Alignment: centered(),
		}},
		{&st.summaryHead, &excelize.Style{
			Font:      &excelize.Font{Size: 11, Bold: true, Color: "FFFFFF"},
			Fill:      solid(fillSubheader),
			Alignment: &excelize.Alignment{Horizontal: "right", Vertical: "center"},
			Border:    border(),
		}},
		{&st.inHandHead, &excelize.Style{
			Font:      &excelize.Font{Size: 11, Bold: true, Color: "145A32"},
			Fill:      solid(fillInHand),
			Alignment: &excelize.Alignment{Horizontal: "right", Vertical: "center"},
			Border:    border(),
		}},
		{&st.nameCell, &excelize.Style{
			Font:      &excelize.Font{Size: 11},
			Fill:      solid(fillName),
			Alignment: centered(),
			Border:    border(),
		}},
		{&st.inHandCell, &excelize.Style{
			Font:      &excelize.Font{Size: 11},
			Fill:      solid(fillInHand),
			Alignment: centered(),
			Border:    border(),
			CustomNumFmt: numFmt(fmtMoney),
		}},
		{&st.money, &excelize.Style{
			Font:      &excelize.Font{Size: 11},
			Alignment: centered(),
			Border:    border(),
			CustomNumFmt: numFmt(fmtMoney),
		}},
		{&st.moneyAlt, &excelize.Style{
			Font:      &excelize.Font{Size: 11},
			Fill:      solid(fillAltColumn),
			Alignment: centered(),
			Border:    border(),
			CustomNumFmt: numFmt(fmtMoney),
		}},
		{&st.wage, &excelize.Style{
			Font:      &excelize.Font{Size: 11},
			Alignment: centered(),
			Border:    border(),
			CustomNumFmt: numFmt(fmtWage),
		}},
		{&st.percent, &excelize.Style{
			Font:      &excelize.Font{Size: 11},
			Alignment: centered(),
			Border:    border(),
			CustomNumFmt: numFmt(fmtPercent),
		}},
	}

	for _, s := range specs {
		id, err := f.NewStyle(s.style)
		if err != nil {
			return nil, err
		}
		*s.dst = id
	}
	return st, nil
}

// cell converts 1-based coordinates to an A1 reference. Coordinates are
// always derived from loop indexes here, so the error path is dead.
func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

func (r Renderer) writeHeader(f *excelize.File, sheet string, st *styleSet, rep *Report) error {
	if err := f.MergeCell(sheet, "A1", "F2"); err != nil {
		return fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheet, "A1",
		fmt.Sprintf("%s\n%s - %s %d", r.CompanyName, r.Title, rep.Month.String(), rep.Year))
	f.SetCellStyle(sheet, "A1", "F2", st.title)

	f.MergeCell(sheet, "G1", "J2")
	f.SetCellValue(sheet, "G1",
		fmt.Sprintf("Report Generated:\n%s", rep.GeneratedAt.Format("2006-01-02 15:04")))
	f.SetCellStyle(sheet, "G1", "J2", st.stamp)
	return nil
}

func writeGridHeaders(f *excelize.File, sheet string, st *styleSet, rep *Report) {
	f.MergeCell(sheet, "A4", "A5")
	f.MergeCell(sheet, "B4", "B5")
	f.SetCellValue(sheet, "A4", "Date")
	f.SetCellValue(sheet, "B4", "Status")
	f.SetCellStyle(sheet, "A4", "B5", st.subheader)

	for i, emp := range rep.Employees {
		col := 3 + i
		f.SetCellValue(sheet, cell(col, 4), emp.UID)
		f.SetCellValue(sheet, cell(col, 5), emp.Name)
		f.SetCellStyle(sheet, cell(col, 4), cell(col, 5), st.subheader)
	}
}

func writeGrid(f *excelize.File, sheet string, st *styleSet, rep *Report) {
	const startRow = 6
	today := time.Now().UTC().Truncate(24 * time.Hour)

	for i, date := range rep.Dates {
		rowCI := startRow + i*3
		rowCO := rowCI + 1
		rowMins := rowCI + 2

		dateStyle := st.plainDate
		if date.Weekday() == time.Sunday {
			dateStyle = st.sundayDate
		} else if date.Equal(today) {
			dateStyle = st.todayDate
		}

		f.MergeCell(sheet, cell(1, rowCI), cell(1, rowMins))
		f.SetCellValue(sheet, cell(1, rowCI),
			fmt.Sprintf("%s\n%d", date.Format("Mon"), date.Day()))
		f.SetCellStyle(sheet, cell(1, rowCI), cell(1, rowMins), dateStyle)

		f.SetCellValue(sheet, cell(2, rowCI), "Check-In")
		f.SetCellValue(sheet, cell(2, rowCO), "Check-Out")
		f.SetCellValue(sheet, cell(2, rowMins), "Minutes Worked")
		f.SetCellStyle(sheet, cell(2, rowCI), cell(2, rowCI), st.ciLabel)
		f.SetCellStyle(sheet, cell(2, rowCO), cell(2, rowCO), st.coLabel)
		f.SetCellStyle(sheet, cell(2, rowMins), cell(2, rowMins), st.minsLabel)

		for j, emp := range rep.Employees {
			col := 3 + j
			day := emp.Days[i]

			ciVal, coVal := "-", "-"
			if day.HasCheckIn {
				ciVal = day.CheckIn.String()
			}
			if day.HasCheckOut {
				coVal = day.CheckOut.String()
			}

			f.SetCellValue(sheet, cell(col, rowCI), ciVal)
			f.SetCellValue(sheet, cell(col, rowCO), coVal)
			f.SetCellValue(sheet, cell(col, rowMins), day.Minutes)

			// Alternate column shading keeps adjacent employees readable.
			if j%2 != 0 {
				f.SetCellStyle(sheet, cell(col, rowCI), cell(col, rowCO), st.dataAlt)
				f.SetCellStyle(sheet, cell(col, rowMins), cell(col, rowMins), st.minsAlt)
			} else {
				f.SetCellStyle(sheet, cell(col, rowCI), cell(col, rowCI), st.ciData)
				f.SetCellStyle(sheet, cell(col, rowCO), cell(col, rowCO), st.coData)
				f.SetCellStyle(sheet, cell(col, rowMins), cell(col, rowMins), st.minsData)
			}
		}

		for _, row := range []int{rowCI, rowCO, rowMins} {
			f.SetRowHeight(sheet, row, 20)
		}
	}
}

func writeSummary(f *excelize.File, sheet string, st *styleSet, rep *Report, startCol int) {
	const startRow = 4

	f.SetCellValue(sheet, cell(startCol, startRow), "Financial Summary")
	f.MergeCell(sheet, cell(startCol, startRow), cell(startCol+len(rep.Employees), startRow))
	f.SetCellStyle(sheet, cell(startCol, startRow), cell(startCol, startRow), st.financialTitle)

	for i, label := range summaryLabels {
		ref := cell(startCol, startRow+2+i)
		f.SetCellValue(sheet, ref, label)
		if label == "In Hand Salary" {
			f.SetCellStyle(sheet, ref, ref, st.inHandHead)
		} else {
			f.SetCellStyle(sheet, ref, ref, st.summaryHead)
		}
	}

	for i, emp := range rep.Employees {
		col := startCol + 1 + i
		fin := emp.Finance

		rows := []struct {
			value interface{}
			style int
		}{
			{emp.UID, st.data},
			{emp.Name, st.nameCell},
			{fin.PresenceDays, st.data},
			{fin.AbsenceDays, st.data},
			{fin.MonthlySalary.InexactFloat64(), st.money},
			{fin.TotalDays, st.data},
			{fin.PayableDays, st.data},
			{fin.PerDayAmount.InexactFloat64(), st.money},
			{fin.PerMinuteWage.InexactFloat64(), st.wage},
			{fin.TotalMinutes, st.minsData},
			{fin.GrossSalary.InexactFloat64(), st.money},
			{fin.ShortfallDeduction.InexactFloat64(), st.money},
			{fin.EarnedSalary.InexactFloat64(), st.money},
			{fin.NetSalary.InexactFloat64(), st.inHandCell},
		}
		for r, rowSpec := range rows {
			ref := cell(col, startRow+2+r)
			f.SetCellValue(sheet, ref, rowSpec.value)
			f.SetCellStyle(sheet, ref, ref, rowSpec.style)
		}
	}
}

func writeDeductions(f *excelize.File, sheet string, st *styleSet, rep *Report, startCol int) {
	const startRow = 4

	f.SetCellValue(sheet, cell(startCol, startRow), "Allowances & Deductions")
	f.MergeCell(sheet, cell(startCol, startRow), cell(startCol+len(deductionLabels)-1, startRow))
	f.SetCellStyle(sheet, cell(startCol, startRow), cell(startCol, startRow), st.deductionsTitle)

	headerRow := startRow + 2
	for i, label := range deductionLabels {
		ref := cell(startCol+i, headerRow)
		f.SetCellValue(sheet, ref, label)
		f.SetCellStyle(sheet, ref, ref, st.subheader)
	}

	for i, emp := range rep.Employees {
		row := headerRow + 1 + i
		fin := emp.Finance

		cols := []struct {
			value interface{}
			style int
		}{
			{emp.UID, st.data},
			{emp.Name, st.data},
			{fin.Allowance.InexactFloat64(), st.money},
			{fin.AdvancePaid.InexactFloat64(), st.money},
			{fin.Loan.InexactFloat64(), st.money},
			{fin.InterestPercent.Div(hundred).InexactFloat64(), st.percent},
			{fin.InterestAmount.InexactFloat64(), st.money},
			{fin.Premium.InexactFloat64(), st.money},
			{fin.TotalDeductions.InexactFloat64(), st.money},
		}
		for c, colSpec := range cols {
			ref := cell(startCol+c, row)
			f.SetCellValue(sheet, ref, colSpec.value)
			f.SetCellStyle(sheet, ref, ref, colSpec.style)
		}
	}
}

func finalizeLayout(f *excelize.File, sheet string, numMainCols int) {
	f.SetColWidth(sheet, "A", "A", 10)
	f.SetColWidth(sheet, "B", "B", 15)

	main, _ := excelize.ColumnNumberToName(numMainCols)
	if numMainCols >= 3 {
		f.SetColWidth(sheet, "C", main, 20)
	}

	tailStart, _ := excelize.ColumnNumberToName(numMainCols + 1)
	tailEnd, _ := excelize.ColumnNumberToName(numMainCols + 35)
	f.SetColWidth(sheet, tailStart, tailEnd, 18)

	f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		XSplit:      2,
		YSplit:      5,
		TopLeftCell: "C6",
		ActivePane:  "bottomRight",
	})
}
