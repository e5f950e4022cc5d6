package licenses

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

const (
	reportFormatTextStringConstant          = "text"
	reportFormatJSONStringConstant          = "json"
	unsupportedReportFormatTemplateConstant = "unsupported report format %q (expected text or json)"
	reportWriteErrorTemplateConstant        = "unable to write license report: %w"
	reportLineTerminatorConstant            = "\n"
)

// ReportFormat selects how a check report is rendered.
type ReportFormat string

// Supported report formats.
const (
	ReportFormatText ReportFormat = ReportFormat(reportFormatTextStringConstant)
	ReportFormatJSON ReportFormat = ReportFormat(reportFormatJSONStringConstant)
)

// UnmarshalText implements encoding.TextUnmarshaler.
func (format *ReportFormat) UnmarshalText(text []byte) error {
	parsedFormat, parseError := ParseReportFormat(string(text))
	if parseError != nil {
		return parseError
	}
	*format = parsedFormat
	return nil
}

// ParseReportFormat converts user input into a ReportFormat, treating empty input as text.
func ParseReportFormat(rawFormat string) (ReportFormat, error) {
	switch normalized := strings.ToLower(strings.TrimSpace(rawFormat)); normalized {
	case "", reportFormatTextStringConstant:
		return ReportFormatText, nil
	case reportFormatJSONStringConstant:
		return ReportFormatJSON, nil
	default:
		return "", fmt.Errorf(unsupportedReportFormatTemplateConstant, rawFormat)
	}
}

// ReportRenderer writes check reports to the operator.
type ReportRenderer struct {
	format ReportFormat
}

// NewReportRenderer constructs a renderer for format.
func NewReportRenderer(format ReportFormat) ReportRenderer {
	return ReportRenderer{format: format}
}

// Render writes report to writer. Text reports list one message per discrepancy; JSON reports
// encode the full report including the overall result.
func (renderer ReportRenderer) Render(writer io.Writer, report Report) error {
	if writer == nil {
		return nil
	}
	if renderer.format == ReportFormatJSON {
		discrepancies := report.Discrepancies
		if discrepancies == nil {
			discrepancies = []Discrepancy{}
		}
		encoder := json.NewEncoder(writer)
		encoder.SetIndent("", lockFileIndentConstant)
		if encodeError := encoder.Encode(jsonReport{Failed: report.Failed(), Discrepancies: discrepancies}); encodeError != nil {
			return fmt.Errorf(reportWriteErrorTemplateConstant, encodeError)
		}
		return nil
	}

	for _, discrepancy := range report.Discrepancies {
		if _, writeError := io.WriteString(writer, discrepancy.Message()+reportLineTerminatorConstant); writeError != nil {
			return fmt.Errorf(reportWriteErrorTemplateConstant, writeError)
		}
	}
	return nil
}

type jsonReport struct {
	Failed        bool          `json:"failed"`
	Discrepancies []Discrepancy `json:"discrepancies"`
}
