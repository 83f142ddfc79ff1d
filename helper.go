package daylog

import (
	"strconv"
	"time"
)

// dailyFileName maps a date to its log file name: unpadded month and day
// with a four-digit year, e.g. 8_24_2026.log for August 24 2026.
func dailyFileName(t time.Time) string {
	return strconv.Itoa(int(t.Month())) + "_" +
		strconv.Itoa(t.Day()) + "_" +
		strconv.Itoa(t.Year()) + ".log"
}
