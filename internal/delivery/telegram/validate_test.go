package telegram

import (
	"testing"

	"vybevigil/internal/dto"

	"github.com/stretchr/testify/assert"
)

func TestValidateSolanaAddress(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid wrapped sol mint", input: "So11111111111111111111111111111111111111112", wantErr: false},
		{name: "valid wallet", input: "DYw8jCTfwHNRJhhmFcbXvVDTqWMEVFBX6ZKUmG5CNSKK", wantErr: false},
		{name: "too short", input: "So1111111", wantErr: true},
		{name: "too long", input: "So111111111111111111111111111111111111111111111111", wantErr: true},
		{name: "contains zero", input: "0o11111111111111111111111111111111111111112", wantErr: true},
		{name: "contains capital O", input: "Oo11111111111111111111111111111111111111112", wantErr: true},
		{name: "contains letter l", input: "lo11111111111111111111111111111111111111112", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "with spaces", input: "So111111111 1111111111111111111111111111112", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateSolanaAddress(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseCount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		max     int
		want    int
		wantErr bool
	}{
		{name: "valid", input: "10", max: 25, want: 10},
		{name: "at max", input: "25", max: 25, want: 25},
		{name: "over max", input: "26", max: 25, wantErr: true},
		{name: "zero", input: "0", max: 25, wantErr: true},
		{name: "negative", input: "-3", max: 25, wantErr: true},
		{name: "not a number", input: "ten", max: 25, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseCount(tt.input, tt.max)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseThreshold(t *testing.T) {
	got, err := parseThreshold("1500.5")
	assert.NoError(t, err)
	assert.Equal(t, 1500.5, got)

	_, err = parseThreshold("0")
	assert.Error(t, err)

	_, err = parseThreshold("-100")
	assert.Error(t, err)

	_, err = parseThreshold("abc")
	assert.Error(t, err)
}

func TestParseTimeRange(t *testing.T) {
	t.Run("ascending input", func(t *testing.T) {
		start, end, err := parseTimeRange("1700000000 1700100000")
		assert.NoError(t, err)
		assert.Equal(t, int64(1700000000), start)
		assert.Equal(t, int64(1700100000), end)
	})

	t.Run("descending input gets swapped", func(t *testing.T) {
		start, end, err := parseTimeRange("1700100000 1700000000")
		assert.NoError(t, err)
		assert.Equal(t, int64(1700000000), start)
		assert.Equal(t, int64(1700100000), end)
	})

	t.Run("window too small", func(t *testing.T) {
		_, _, err := parseTimeRange("1700000000 1700000100")
		assert.Error(t, err)
	})

	t.Run("exactly one hour", func(t *testing.T) {
		_, _, err := parseTimeRange("1700000000 1700003600")
		assert.NoError(t, err)
	})

	t.Run("wrong field count", func(t *testing.T) {
		_, _, err := parseTimeRange("1700000000")
		assert.Error(t, err)
	})

	t.Run("not numbers", func(t *testing.T) {
		_, _, err := parseTimeRange("yesterday today")
		assert.Error(t, err)
	})
}

func TestParseMintAndCount(t *testing.T) {
	mint := "So11111111111111111111111111111111111111112"

	t.Run("mint only uses default", func(t *testing.T) {
		gotMint, gotCount, err := parseMintAndCount(mint, dto.DefaultHolderCount, dto.MaxHolderCount)
		assert.NoError(t, err)
		assert.Equal(t, mint, gotMint)
		assert.Equal(t, dto.DefaultHolderCount, gotCount)
	})

	t.Run("explicit count", func(t *testing.T) {
		gotMint, gotCount, err := parseMintAndCount(mint+" 5", dto.DefaultHolderCount, dto.MaxHolderCount)
		assert.NoError(t, err)
		assert.Equal(t, mint, gotMint)
		assert.Equal(t, 5, gotCount)
	})

	t.Run("bad mint", func(t *testing.T) {
		_, _, err := parseMintAndCount("notanaddress 5", dto.DefaultHolderCount, dto.MaxHolderCount)
		assert.Error(t, err)
	})

	t.Run("bad count", func(t *testing.T) {
		_, _, err := parseMintAndCount(mint+" 500", dto.DefaultHolderCount, dto.MaxHolderCount)
		assert.Error(t, err)
	})

	t.Run("too many fields", func(t *testing.T) {
		_, _, err := parseMintAndCount(mint+" 5 7", dto.DefaultHolderCount, dto.MaxHolderCount)
		assert.Error(t, err)
	})
}

func TestParsePythSeriesQuery(t *testing.T) {
	feed := "H6ARHf6YXhGYeQfUzQNGk6rDNnLBQKrenN712K4AQJEG"
	now := int64(1700100000)

	t.Run("bare feed defaults to last day hourly", func(t *testing.T) {
		gotFeed, params, err := parsePythSeriesQuery(feed, now)
		assert.NoError(t, err)
		assert.Equal(t, feed, gotFeed)
		assert.Equal(t, "1h", params.Resolution)
		assert.Equal(t, now-24*3600, params.TimeStart)
		assert.Equal(t, now, params.TimeEnd)
	})

	t.Run("full query", func(t *testing.T) {
		gotFeed, params, err := parsePythSeriesQuery(feed+" 1d 1700000000 1700090000", now)
		assert.NoError(t, err)
		assert.Equal(t, feed, gotFeed)
		assert.Equal(t, "1d", params.Resolution)
		assert.Equal(t, int64(1700000000), params.TimeStart)
		assert.Equal(t, int64(1700090000), params.TimeEnd)
	})

	t.Run("bad feed", func(t *testing.T) {
		_, _, err := parsePythSeriesQuery("nope", now)
		assert.Error(t, err)
	})

	t.Run("wrong field count", func(t *testing.T) {
		_, _, err := parsePythSeriesQuery(feed+" 1d 1700000000", now)
		assert.Error(t, err)
	})
}

func TestChartResolution(t *testing.T) {
	assert.Equal(t, "1h", chartResolution(0, 3600))
	assert.Equal(t, "1h", chartResolution(0, 48*3600))
	assert.Equal(t, "1d", chartResolution(0, 7*24*3600))
}
