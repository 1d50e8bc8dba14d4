package signature

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"
)

// Char represents a System.Char constant, a UTF-16 code unit
type Char uint16

func (c Char) String() string {
	return strconv.QuoteRune(rune(c))
}

// Decimal represents a System.Decimal constant: a 96-bit integer scaled by 10^-Scale
type Decimal struct {
	Lo, Mid, Hi uint32
	Scale       uint8
	Negative    bool
}

func (d Decimal) String() string {
	mantissa := new(big.Int).SetUint64(uint64(d.Hi))
	mantissa.Lsh(mantissa, 32)
	mantissa.Or(mantissa, new(big.Int).SetUint64(uint64(d.Mid)))
	mantissa.Lsh(mantissa, 32)
	mantissa.Or(mantissa, new(big.Int).SetUint64(uint64(d.Lo)))
	digits := mantissa.String()
	if scale := int(d.Scale); scale > 0 {
		if len(digits) <= scale {
			digits = strings.Repeat("0", scale-len(digits)+1) + digits
		}
		digits = digits[:len(digits)-scale] + "." + digits[len(digits)-scale:]
	}
	if d.Negative {
		return "-" + digits
	}
	return digits
}

const (
	ticksPerSecond = 10_000_000
	unixEpochTicks = 621_355_968_000_000_000
	maxDateTicks   = 3_155_378_975_999_999_999
)

// ticksToTime converts System.DateTime ticks (100ns since 0001-01-01) to UTC time
func ticksToTime(ticks int64) (time.Time, error) {
	if ticks < 0 || ticks > maxDateTicks {
		return time.Time{}, fmt.Errorf("DateTime ticks out of range: %d", ticks)
	}
	delta := ticks - unixEpochTicks
	seconds := delta / ticksPerSecond
	remainder := delta % ticksPerSecond
	if remainder < 0 {
		seconds--
		remainder += ticksPerSecond
	}
	return time.Unix(seconds, remainder*100).UTC(), nil
}
