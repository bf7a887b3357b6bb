// file: internals/helpers/sheet/csv_parser_test.go
package sheet

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVParserParse(t *testing.T) {
	p := NewCSVParser()

	t.Run("header dinormalisasi dan nilai di-trim", func(t *testing.T) {
		in := "Enrollment No,Name,Semester\n E001 ,Budi,3\nE002,Sari,1\n"
		rows := p.Parse(strings.NewReader(in), "students.csv")
		require.Len(t, rows, 2)
		assert.Equal(t, "E001", rows[0]["enrollment_no"])
		assert.Equal(t, "Budi", rows[0]["name"])
		assert.Equal(t, "3", rows[0]["semester"])
		assert.Equal(t, "E002", rows[1]["enrollment_no"])
	})

	t.Run("kolom lebih sedikit dari header tetap jalan", func(t *testing.T) {
		in := "name,division\nKalkulus\n"
		rows := p.Parse(strings.NewReader(in), "classes.csv")
		require.Len(t, rows, 1)
		assert.Equal(t, "Kalkulus", rows[0]["name"])
		_, ok := rows[0]["division"]
		assert.False(t, ok)
	})

	t.Run("ekstensi bukan csv = kosong", func(t *testing.T) {
		assert.Nil(t, p.Parse(strings.NewReader("a,b\n1,2\n"), "data.xlsx"))
	})

	t.Run("input kosong = kosong, bukan error", func(t *testing.T) {
		assert.Nil(t, p.Parse(strings.NewReader(""), "empty.csv"))
	})
}
