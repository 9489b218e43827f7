package telegram

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"vybevigil/internal/dto"
)

var (
	// Base58 alphabet, the length Solana pubkeys actually use.
	solanaAddressRe = regexp.MustCompile(`^[1-9A-HJ-NP-Za-km-z]{32,44}$`)
	pythIDRe        = regexp.MustCompile(`^[\w-]{20,60}$`)
)

func validateSolanaAddress(input string) error {
	if !solanaAddressRe.MatchString(input) {
		return fmt.Errorf("'%s' is not a valid Solana address", input)
	}
	return nil
}

func validatePythID(input string) error {
	if !pythIDRe.MatchString(input) {
		return fmt.Errorf("'%s' is not a valid Pyth ID", input)
	}
	return nil
}

func parseCount(input string, max int) (int, error) {
	count, err := strconv.Atoi(input)
	if err != nil {
		return 0, fmt.Errorf("'%s' is not a number", input)
	}
	if count < 1 || count > max {
		return 0, fmt.Errorf("count must be between 1 and %d", max)
	}
	return count, nil
}

func parseThreshold(input string) (float64, error) {
	threshold, err := strconv.ParseFloat(input, 64)
	if err != nil {
		return 0, fmt.Errorf("'%s' is not a number", input)
	}
	if threshold <= 0 {
		return 0, fmt.Errorf("threshold must be greater than zero")
	}
	return threshold, nil
}

// parseTimeRange reads two unix timestamps in either order and returns them
// ascending. The window must span at least an hour.
func parseTimeRange(input string) (int64, int64, error) {
	fields := strings.Fields(input)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("expected two unix timestamps separated by a space")
	}

	start, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("'%s' is not a unix timestamp", fields[0])
	}
	end, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("'%s' is not a unix timestamp", fields[1])
	}

	if start > end {
		start, end = end, start
	}
	if end-start < dto.MinChartRange {
		return 0, 0, fmt.Errorf("range must cover at least one hour")
	}
	return start, end, nil
}

// parseMintAndCount reads "<mint> [count]", falling back to def when count
// is omitted.
func parseMintAndCount(input string, def, max int) (string, int, error) {
	fields := strings.Fields(input)
	if len(fields) == 0 || len(fields) > 2 {
		return "", 0, fmt.Errorf("expected a token mint address, optionally followed by a count")
	}

	if err := validateSolanaAddress(fields[0]); err != nil {
		return "", 0, err
	}

	count := def
	if len(fields) == 2 {
		var err error
		count, err = parseCount(fields[1], max)
		if err != nil {
			return "", 0, err
		}
	}
	return fields[0], count, nil
}

// parsePythSeriesQuery reads either a bare feed ID (last 24h, hourly) or
// "<feed> <resolution> <start> <end>".
func parsePythSeriesQuery(input string, now int64) (string, dto.OHLCVParams, error) {
	fields := strings.Fields(input)
	switch len(fields) {
	case 1:
		if err := validatePythID(fields[0]); err != nil {
			return "", dto.OHLCVParams{}, err
		}
		return fields[0], dto.OHLCVParams{
			Resolution: "1h",
			TimeStart:  now - 24*3600,
			TimeEnd:    now,
		}, nil
	case 4:
		if err := validatePythID(fields[0]); err != nil {
			return "", dto.OHLCVParams{}, err
		}
		start, end, err := parseTimeRange(fields[2] + " " + fields[3])
		if err != nil {
			return "", dto.OHLCVParams{}, err
		}
		return fields[0], dto.OHLCVParams{
			Resolution: fields[1],
			TimeStart:  start,
			TimeEnd:    end,
		}, nil
	default:
		return "", dto.OHLCVParams{}, fmt.Errorf("expected a feed ID, optionally followed by resolution, start and end timestamps")
	}
}

// chartResolution picks a candle size that keeps the point count sane for
// the requested window.
func chartResolution(start, end int64) string {
	if time.Duration(end-start)*time.Second <= 48*time.Hour {
		return "1h"
	}
	return "1d"
}
