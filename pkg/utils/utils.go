package utils

import (
	"context"
	"fmt"
	"log"
	"runtime"
	"strings"
	"time"

	"vybevigil/pkg/logger"
)

// ContainsString checks if a slice of strings contains a specific string.
func ContainsString(slice []string, str string) bool {
	for _, item := range slice {
		if item == str {
			return true
		}
	}
	return false
}

// GoSafe runs the given function in a new goroutine and recovers from any panic.
func GoSafe(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[Panic Recovered] %v", r)
			}
		}()
		fn()
	}()
}

func ToPointer[T any](value T) *T {
	return &value
}

func ShouldContinue(ctx context.Context, log *logger.Logger) bool {
	select {
	case <-ctx.Done():
		pc, _, _, ok := runtime.Caller(1)
		funcName := "unknown"
		if ok {
			fn := runtime.FuncForPC(pc)
			if fn != nil {
				parts := strings.Split(fn.Name(), "/")
				funcName = parts[len(parts)-1]
			}
		}

		log.Warn("Context cancelled",
			logger.StringField("caller", funcName),
		)
		return false
	default:
		return true
	}
}

// ShortAddr renders a Solana address as `head...tail` for display.
func ShortAddr(addr string) string {
	if len(addr) <= 10 {
		return addr
	}
	return addr[:6] + "..." + addr[len(addr)-4:]
}

// FormatUSD renders a dollar amount with thousands separators, e.g.
// $1,234,567.89.
func FormatUSD(value float64) string {
	s := fmt.Sprintf("%.2f", value)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	dot := strings.Index(s, ".")
	intPart, frac := s[:dot], s[dot:]

	var b strings.Builder
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(intPart[i])
	}
	return sign + "$" + b.String() + frac
}

// FormatUnix renders a Unix timestamp in seconds as a UTC date string.
// Zero renders as N/A.
func FormatUnix(ts int64) string {
	if ts == 0 {
		return "N/A"
	}
	return time.Unix(ts, 0).UTC().Format("2006-01-02 15:04:05")
}

// FormatUnixMilli is FormatUnix for millisecond timestamps.
func FormatUnixMilli(ts int64) string {
	if ts == 0 {
		return "N/A"
	}
	return time.UnixMilli(ts).UTC().Format("2006-01-02 15:04:05")
}
