// file: internals/helpers/sheet/csv_parser.go
package sheet

import (
	"encoding/csv"
	"io"
	"strings"
)

// CSVParser — implementasi Parser untuk file .csv. Header baris pertama
// dinormalisasi (lowercase, spasi → underscore) jadi key map.
// Input yang tidak terbaca → list kosong, sesuai kontrak Parser.
type CSVParser struct{}

func NewCSVParser() *CSVParser { return &CSVParser{} }

func (p *CSVParser) Parse(r io.Reader, filename string) []map[string]string {
	if !strings.HasSuffix(strings.ToLower(filename), ".csv") {
		return nil
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil
	}
	keys := make([]string, len(header))
	for i, h := range header {
		keys[i] = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(h)), " ", "_")
	}

	var rows []map[string]string
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// baris rusak dilewati, sisanya tetap dibaca
			continue
		}
		row := make(map[string]string, len(keys))
		for i, v := range rec {
			if i >= len(keys) || keys[i] == "" {
				continue
			}
			row[keys[i]] = strings.TrimSpace(v)
		}
		rows = append(rows, row)
	}
	return rows
}
