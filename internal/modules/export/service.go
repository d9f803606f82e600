package export

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

type ReportType string

const (
	TypeRevenue   ReportType = "revenue"
	TypeOccupancy ReportType = "occupancy"
	TypeServices  ReportType = "services"
	TypeGuests    ReportType = "guests"
	TypeInvoice   ReportType = "invoice"
)

// Valid reports whether the selector names a known report type.
func (t ReportType) Valid() bool {
	switch t {
	case TypeRevenue, TypeOccupancy, TypeServices, TypeGuests, TypeInvoice:
		return true
	}
	return false
}

type Request struct {
	Type     ReportType
	Language string
	From     time.Time
	To       time.Time
	StayID   int64
}

// File is a rendered workbook ready to be sent as a download.
type File struct {
	Name    string
	Content []byte
}

type Service struct {
	reports  ReportSource
	invoices InvoiceSource
}

func NewService(reports ReportSource, invoices InvoiceSource) *Service {
	return &Service{reports: reports, invoices: invoices}
}

// Export validates the selectors, builds the requested report through the
// value-object contract and renders it as an XLSX workbook. An unknown
// report type or language is rejected, never defaulted.
func (s *Service) Export(ctx context.Context, req Request) (*File, error) {
	if req.Language != LangRU && req.Language != LangEN {
		return nil, ErrUnknownLanguage
	}
	l := labelSet{lang: req.Language}

	f := excelize.NewFile()
	defer f.Close()

	var name string
	switch req.Type {
	case TypeRevenue:
		report, err := s.reports.Revenue(ctx, req.From, req.To)
		if err != nil {
			return nil, err
		}
		if err := renderRevenue(f, l, report); err != nil {
			return nil, err
		}
		name = exportFileName("revenue", req.From, req.To)

	case TypeOccupancy:
		report, err := s.reports.Occupancy(ctx, req.From, req.To)
		if err != nil {
			return nil, err
		}
		if err := renderOccupancy(f, l, report); err != nil {
			return nil, err
		}
		name = exportFileName("occupancy", req.From, req.To)

	case TypeServices:
		report, err := s.reports.Services(ctx, req.From, req.To)
		if err != nil {
			return nil, err
		}
		if err := renderServices(f, l, report); err != nil {
			return nil, err
		}
		name = exportFileName("services", req.From, req.To)

	case TypeGuests:
		report, err := s.reports.Guests(ctx, req.From, req.To)
		if err != nil {
			return nil, err
		}
		if err := renderGuests(f, l, report); err != nil {
			return nil, err
		}
		name = exportFileName("guests", req.From, req.To)

	case TypeInvoice:
		inv, err := s.invoices.Build(ctx, req.StayID)
		if err != nil {
			return nil, err
		}
		if err := renderInvoice(f, l, inv); err != nil {
			return nil, err
		}
		name = fmt.Sprintf("invoice_stay_%d.xlsx", req.StayID)

	default:
		return nil, ErrUnknownReportType
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return &File{Name: name, Content: buf.Bytes()}, nil
}

func exportFileName(kind string, from, to time.Time) string {
	return fmt.Sprintf("%s_%s_%s.xlsx", kind, from.Format("2006-01-02"), to.Format("2006-01-02"))
}
