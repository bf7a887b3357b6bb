// file: internals/helpers/dbtime/dbtime.go
package dbtime

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// AtLocalMidnight memotong t ke tengah malam di zona loc.
func AtLocalMidnight(t time.Time, loc *time.Location) time.Time {
	lt := t.In(loc)
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, loc)
}

// ResolveSessionDate menormalisasi tanggal sesi absensi:
//   - millis != nil → dianggap epoch-ms, dipotong ke local midnight
//   - dateStr != "" → "YYYY-MM-DD" diparse di zona loc
//   - dua-duanya kosong / string tidak valid → 400
func ResolveSessionDate(millis *int64, dateStr string, loc *time.Location) (time.Time, error) {
	if millis != nil {
		return AtLocalMidnight(time.UnixMilli(*millis), loc), nil
	}
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return time.Time{}, fiber.NewError(fiber.StatusBadRequest, "Tanggal sesi wajib diisi (date atau date_millis)")
	}
	t, err := time.ParseInLocation("2006-01-02", dateStr, loc)
	if err != nil {
		return time.Time{}, fiber.NewError(fiber.StatusBadRequest, "Format tanggal tidak valid, gunakan YYYY-MM-DD")
	}
	return t, nil
}

// MonthWindow mengembalikan [awal bulan, awal bulan berikutnya) di zona loc
// untuk tanggal apa pun dalam bulan itu. Batasnya half-open: record tepat
// 23:59:59.999 masih masuk, satu milidetik kemudian sudah bulan berikutnya.
func MonthWindow(anyDayInMonth time.Time, loc *time.Location) (time.Time, time.Time) {
	lt := anyDayInMonth.In(loc)
	start := time.Date(lt.Year(), lt.Month(), 1, 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 1, 0)
}
