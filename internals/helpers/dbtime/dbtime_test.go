// file: internals/helpers/dbtime/dbtime_test.go
package dbtime

import (
	"errors"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jakarta(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)
	return loc
}

func TestAtLocalMidnight(t *testing.T) {
	loc := jakarta(t)

	// 2025-08-21 23:30 WIB → tetap 2025-08-21 00:00 WIB
	in := time.Date(2025, 8, 21, 23, 30, 0, 0, loc)
	got := AtLocalMidnight(in, loc)
	assert.Equal(t, time.Date(2025, 8, 21, 0, 0, 0, 0, loc), got)

	// 2025-08-21 18:00 UTC = 2025-08-22 01:00 WIB → midnight 22-nya
	inUTC := time.Date(2025, 8, 21, 18, 0, 0, 0, time.UTC)
	got = AtLocalMidnight(inUTC, loc)
	assert.Equal(t, time.Date(2025, 8, 22, 0, 0, 0, 0, loc), got)
}

func TestResolveSessionDate(t *testing.T) {
	loc := jakarta(t)

	t.Run("millis menang dan dipotong ke midnight", func(t *testing.T) {
		ms := time.Date(2025, 8, 21, 14, 45, 12, 0, loc).UnixMilli()
		got, err := ResolveSessionDate(&ms, "", loc)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 8, 21, 0, 0, 0, 0, loc), got)
	})

	t.Run("date string diparse di zona lokal", func(t *testing.T) {
		got, err := ResolveSessionDate(nil, "2025-08-21", loc)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 8, 21, 0, 0, 0, 0, loc), got)
	})

	t.Run("dua-duanya kosong = 400", func(t *testing.T) {
		_, err := ResolveSessionDate(nil, "   ", loc)
		require.Error(t, err)
		var fe *fiber.Error
		require.True(t, errors.As(err, &fe))
		assert.Equal(t, fiber.StatusBadRequest, fe.Code)
	})

	t.Run("format salah = 400", func(t *testing.T) {
		_, err := ResolveSessionDate(nil, "21-08-2025", loc)
		require.Error(t, err)
		var fe *fiber.Error
		require.True(t, errors.As(err, &fe))
		assert.Equal(t, fiber.StatusBadRequest, fe.Code)
	})
}

func TestMonthWindow(t *testing.T) {
	loc := jakarta(t)

	cases := []struct {
		name      string
		anyDay    time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "tengah bulan",
			anyDay:    time.Date(2025, 8, 21, 10, 0, 0, 0, loc),
			wantStart: time.Date(2025, 8, 1, 0, 0, 0, 0, loc),
			wantEnd:   time.Date(2025, 9, 1, 0, 0, 0, 0, loc),
		},
		{
			name:      "desember lintas tahun",
			anyDay:    time.Date(2025, 12, 31, 0, 0, 0, 0, loc),
			wantStart: time.Date(2025, 12, 1, 0, 0, 0, 0, loc),
			wantEnd:   time.Date(2026, 1, 1, 0, 0, 0, 0, loc),
		},
		{
			name:      "februari non-kabisat",
			anyDay:    time.Date(2025, 2, 28, 12, 0, 0, 0, loc),
			wantStart: time.Date(2025, 2, 1, 0, 0, 0, 0, loc),
			wantEnd:   time.Date(2025, 3, 1, 0, 0, 0, 0, loc),
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			start, end := MonthWindow(tc.anyDay, loc)
			assert.Equal(t, tc.wantStart, start)
			assert.Equal(t, tc.wantEnd, end)
		})
	}

	t.Run("half-open: akhir bulan masuk, awal bulan berikut tidak", func(t *testing.T) {
		start, end := MonthWindow(time.Date(2025, 8, 15, 0, 0, 0, 0, loc), loc)
		lastMoment := time.Date(2025, 8, 31, 23, 59, 59, 999_000_000, loc)
		assert.True(t, !lastMoment.Before(start) && lastMoment.Before(end))

		nextMonth := time.Date(2025, 9, 1, 0, 0, 0, 0, loc)
		assert.False(t, nextMonth.Before(end)) // batas kanan eksklusif
	})
}
