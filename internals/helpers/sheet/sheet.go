// file: internals/helpers/sheet/sheet.go
package sheet

import "io"

// Parser — boundary pembaca spreadsheet upload. Implementasi nyata
// (xlsx/csv + normalisasi nama kolom) hidup di luar service ini;
// kontraknya: hasil berupa row key→value yang sudah dinormalisasi,
// dan input yang tidak terbaca menghasilkan list kosong, bukan error.
type Parser interface {
	Parse(r io.Reader, filename string) []map[string]string
}
