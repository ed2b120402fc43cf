// FocusNest - Survey Analytics and Subscription Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/focusnest

package dataset

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/transform"
)

// LoadFile loads a survey dataset from disk, dispatching on the file
// extension. CSV files honor the configured charset; XLSX files are always
// read from the first sheet.
func LoadFile(path, encoding string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return LoadXLSX(f, path)
	case ".csv", ".txt", "":
		return LoadCSV(f, encoding, path)
	default:
		return nil, fmt.Errorf("unsupported dataset format %q (use .csv or .xlsx)", filepath.Ext(path))
	}
}

// LoadCSV reads a delimited text dataset. All columns are kept as strings;
// numeric typing is inferred by the Table profiler, not the parser, so a
// stray textual cell turns a column categorical instead of poisoning it
// with NaNs.
func LoadCSV(r io.Reader, encoding, source string) (*Table, error) {
	decoded, err := decodingReader(r, encoding)
	if err != nil {
		return nil, err
	}

	df := dataframe.ReadCSV(decoded,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	return newTable(df, source)
}

// LoadXLSX reads the first sheet of an XLSX workbook. The first row is the
// header; short rows are padded with empty cells so every record has the
// full column count.
func LoadXLSX(r io.Reader, source string) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", source)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("sheet %s has no data rows", sheets[0])
	}

	headers := rows[0]
	columns := make([][]string, len(headers))
	for i := range columns {
		columns[i] = make([]string, 0, len(rows)-1)
	}
	for _, row := range rows[1:] {
		for i := range headers {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			columns[i] = append(columns[i], cell)
		}
	}

	seriesList := make([]series.Series, len(headers))
	for i, name := range headers {
		seriesList[i] = series.New(columns[i], series.String, name)
	}

	return newTable(dataframe.New(seriesList...), source)
}

// decodingReader wraps r with a charset decoder when the dataset is not
// UTF-8. Supported names mirror config validation.
func decodingReader(r io.Reader, encoding string) (io.Reader, error) {
	switch strings.ToLower(encoding) {
	case "", "utf-8", "utf8":
		return r, nil
	case "latin-1", "iso-8859-1":
		return transform.NewReader(r, charmap.ISO8859_1.NewDecoder()), nil
	case "windows-1252":
		return transform.NewReader(r, charmap.Windows1252.NewDecoder()), nil
	case "gbk", "gb2312":
		return transform.NewReader(r, simplifiedchinese.GBK.NewDecoder()), nil
	default:
		return nil, fmt.Errorf("unsupported dataset encoding %q", encoding)
	}
}
