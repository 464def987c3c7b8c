package generate_excel

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"apparel-oms/internal/storage"
)

type GenerateExcelStorage interface {
	GetOrdersMonth(ctx context.Context, year int, month int, search string) ([]*storage.Order, error)
}

type GenerateExcelService struct {
	storage GenerateExcelStorage
}

func NewGenerateService(storage GenerateExcelStorage) *GenerateExcelService {
	return &GenerateExcelService{storage: storage}
}

// GenerateOrderBook builds the monthly order-book workbook handed to the
// planning meeting.
func (g *GenerateExcelService) GenerateOrderBook(ctx context.Context, year, month int) ([]byte, error) {
	orders, err := g.storage.GetOrdersMonth(ctx, year, month, "")
	if err != nil {
		return nil, fmt.Errorf("fetch orders: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Order Book"
	f.SetSheetName("Sheet1", sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})

	headers := []string{"Order No", "Customer", "Status", "Priority", "Mode", "Total", "Paid", "Order Date", "Due Date"}
	for i, name := range headers {
		f.SetCellValue(sheet, cellName(i+1, 1), name)
	}
	f.SetCellStyle(sheet, "A1", cellName(len(headers), 1), headerStyle)

	for rowIdx, o := range orders {
		rowNum := rowIdx + 2

		f.SetCellValue(sheet, cellName(1, rowNum), o.OrderNum)
		f.SetCellValue(sheet, cellName(2, rowNum), o.Customer)
		f.SetCellValue(sheet, cellName(3, rowNum), string(o.Status))
		f.SetCellValue(sheet, cellName(4, rowNum), o.PriorityCode)
		f.SetCellValue(sheet, cellName(5, rowNum), o.ProductionMode)
		f.SetCellValue(sheet, cellName(6, rowNum), o.TotalAmount)
		f.SetCellValue(sheet, cellName(7, rowNum), o.PaidAmount)
		f.SetCellValue(sheet, cellName(8, rowNum), o.OrderDate.Format("2006-01-02"))
		if o.DueDate != nil {
			f.SetCellValue(sheet, cellName(9, rowNum), o.DueDate.Format("2006-01-02"))
		}
	}

	f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		XSplit:      0,
		YSplit:      1,
		TopLeftCell: "A2",
	})

	f.SetColWidth(sheet, "A", "I", 15)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
