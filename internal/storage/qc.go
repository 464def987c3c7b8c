package storage

import "time"

type QCResult string

const (
	QCPass           QCResult = "pass"
	QCPassWithRework QCResult = "pass_with_rework"
	QCFail           QCResult = "fail"
)

type DefectSeverity string

const (
	DefectMinor    DefectSeverity = "minor"
	DefectMajor    DefectSeverity = "major"
	DefectCritical DefectSeverity = "critical"
)

type QCCheckpoint struct {
	Name           string          `json:"name"`
	Passed         bool            `json:"passed"`
	DefectSeverity *DefectSeverity `json:"defect_severity"`
	Note           *string         `json:"note"`
}

type QCRecord struct {
	ID            int64          `json:"id"`
	OrderID       int64          `json:"order_id"`
	TotalQty      int            `json:"total_qty"`
	PassedQty     int            `json:"passed_qty"`
	FailedQty     int            `json:"failed_qty"`
	ReworkQty     int            `json:"rework_qty"`
	PassRate      int            `json:"pass_rate"`
	OverallResult QCResult       `json:"overall_result"`
	Inspector     string         `json:"inspector"`
	Checkpoints   []QCCheckpoint `json:"checkpoints"`
	InspectedAt   time.Time      `json:"inspected_at"`
}
