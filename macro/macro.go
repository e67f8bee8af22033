package macro

import (
	"fmt"
	"time"

	"github.com/clipperhouse/bopomofo/numerals"
)

const (
	DateTodayShort         = "MACRO@DATE_TODAY_SHORT"
	DateTodayMedium        = "MACRO@DATE_TODAY_MEDIUM"
	DateTodayMediumRoc     = "MACRO@DATE_TODAY_MEDIUM_ROC"
	DateTodayMediumChinese = "MACRO@DATE_TODAY_MEDIUM_CHINESE"
)

// rocEpochYear is the Gregorian year the Republic of China calendar
// counts from (1912 is ROC year 1).
const rocEpochYear = 1911

var heavenlyStems = []string{"甲", "乙", "丙", "丁", "戊", "己", "庚", "辛", "壬", "癸"}
var earthlyBranches = []string{"子", "丑", "寅", "卯", "辰", "巳", "午", "未", "申", "酉", "戌", "亥"}

// sexagenaryYear renders the stem-branch label for the given Gregorian
// year. Year 4 CE is the cycle's 甲子 anchor.
func sexagenaryYear(year int) string {
	offset := year - 4
	stem := ((offset % 10) + 10) % 10
	branch := ((offset % 12) + 12) % 12
	return heavenlyStems[stem] + earthlyBranches[branch]
}

func chineseOrdinal(n int) string {
	return numerals.GenerateChineseNumber(fmt.Sprintf("%d", n), "", numerals.ChineseLowercase)
}

var expanders = map[string]func(time.Time) string{
	DateTodayShort:         expandDateTodayShort,
	DateTodayMedium:        expandDateTodayMedium,
	DateTodayMediumRoc:     expandDateTodayMediumRoc,
	DateTodayMediumChinese: expandDateTodayMediumChinese,
}

func expandDateTodayShort(now time.Time) string {
	return fmt.Sprintf("%d/%d/%d", now.Year(), int(now.Month()), now.Day())
}

func expandDateTodayMedium(now time.Time) string {
	return fmt.Sprintf("%d年%d月%d日", now.Year(), int(now.Month()), now.Day())
}

func expandDateTodayMediumRoc(now time.Time) string {
	return fmt.Sprintf("民國%d年%d月%d日", now.Year()-rocEpochYear, int(now.Month()), now.Day())
}

// expandDateTodayMediumChinese labels the year with its sexagenary
// stem-branch cycle name and renders month/day in Chinese numerals. It
// does not perform lunisolar date conversion; day-of-month stays the
// Gregorian one.
func expandDateTodayMediumChinese(now time.Time) string {
	return sexagenaryYear(now.Year()) + "年" + chineseOrdinal(int(now.Month())) + "月" + chineseOrdinal(now.Day()) + "日"
}

// Now is swapped out in tests to make macro expansion deterministic.
var Now = time.Now

// Handle expands input if it names a recognized MACRO@... token,
// returning it unchanged otherwise.
func Handle(input string) string {
	if fn, ok := expanders[input]; ok {
		return fn(Now())
	}
	return input
}
