package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{amount: 0, want: "Rp0"},
		{amount: 999, want: "Rp999"},
		{amount: 1000, want: "Rp1.000"},
		{amount: 200000, want: "Rp200.000"},
		{amount: 1234567, want: "Rp1.234.567"},
		{amount: -5000, want: "-Rp5.000"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			require.Equal(t, tt.want, FormatAmount(tt.amount))
		})
	}
}

func TestFormatRemaining(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{name: "elapsed", d: -time.Minute, want: "closed"},
		{name: "exactly_now", d: 0, want: "closed"},
		{name: "seconds", d: 30 * time.Second, want: "0 minutes left"},
		{name: "one_minute", d: time.Minute, want: "1 minute left"},
		{name: "hours", d: 5*time.Hour + 20*time.Minute, want: "5 hours left"},
		{name: "days", d: 3*24*time.Hour + 2*time.Hour, want: "3 days left"},
		{name: "one_day", d: 24 * time.Hour, want: "1 day left"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, FormatRemaining(tt.d))
		})
	}
}

func TestGenerateID(t *testing.T) {
	id := GenerateID()
	require.True(t, IsID(id))
	require.NotEqual(t, id, GenerateID())
	require.False(t, IsID("not-an-id"))
}
