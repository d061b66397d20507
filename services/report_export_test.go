package services

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var sampleReport = []ReportRow{
	{ID: 2, CustomerName: "Budi", ServiceName: "Setrika", EstimatedTotal: 15000.5, CurrentStatus: "Selesai", Date: "2026-10-19 09:30"},
	{ID: 1, CustomerName: "", ServiceName: "Cuci Kering", EstimatedTotal: 7000, CurrentStatus: "Diterima", Date: "2026-10-18 14:00"},
}

func TestWriteReportXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteReportXLSX(&buf, sampleReport))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(reportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, reportHeaders, rows[0])
	assert.Equal(t, "Budi", rows[1][1])
	assert.Equal(t, "Setrika", rows[1][2])
	assert.Equal(t, "Diterima", rows[2][4])

	styleID, err := f.GetCellStyle(reportSheet, "A1")
	require.NoError(t, err)
	style, err := f.GetStyle(styleID)
	require.NoError(t, err)
	require.NotNil(t, style.Font)
	assert.True(t, style.Font.Bold)

	width, err := f.GetColWidth(reportSheet, "C")
	require.NoError(t, err)
	assert.Equal(t, 20.0, width)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteReportXLSXPropagatesWriteError(t *testing.T) {
	assert.Error(t, WriteReportXLSX(failingWriter{}, sampleReport))
}

func TestWriteReportPDF(t *testing.T) {
	var buf bytes.Buffer
	at := time.Date(2026, 10, 19, 10, 0, 0, 0, time.Local)
	require.NoError(t, WriteReportPDF(&buf, sampleReport, at))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestWriteReportPDFEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteReportPDF(&buf, nil, time.Now()))
	assert.NotZero(t, buf.Len())
}
