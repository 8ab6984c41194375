package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatGrade(t *testing.T) {
	tests := []struct {
		name  string
		grade float64
		want  string
	}{
		{name: "unrated", grade: 0, want: "0.0"},
		{name: "whole number", grade: 4, want: "4.0"},
		{name: "one decimal kept", grade: 4.5, want: "4.5"},
		{name: "extra precision rounded", grade: 4.55, want: "4.5"},
		{name: "rounds up", grade: 4.96, want: "5.0"},
		{name: "negative treated as unrated", grade: -1, want: "0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatGrade(tt.grade))
		})
	}
}

func TestSimplifyLocation(t *testing.T) {
	tests := []struct {
		name string
		full string
		want string
	}{
		{name: "empty", full: "", want: ""},
		{
			name: "comma separated keeps first two",
			full: "Praia do Rosa, Imbituba, Santa Catarina, Brasil",
			want: "Praia do Rosa, Imbituba",
		},
		{
			name: "hyphen separators normalized",
			full: "Praia do Rosa - Imbituba - SC",
			want: "Praia do Rosa, Imbituba",
		},
		{
			name: "single component passes through",
			full: "Fernando de Noronha",
			want: "Fernando de Noronha",
		},
		{
			name: "parts trimmed",
			full: "Chapada dos Veadeiros ,  Alto Paraíso, GO",
			want: "Chapada dos Veadeiros, Alto Paraíso",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SimplifyLocation(tt.full))
		})
	}
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "05 de março de 2024",
		FormatDate(time.Date(2024, time.March, 5, 10, 30, 0, 0, time.UTC)))
	assert.Equal(t, "31 de dezembro de 2023",
		FormatDate(time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "", FormatDate(time.Time{}))
}

func TestFormatCost(t *testing.T) {
	assert.Equal(t, "N/A", FormatCost(""))
	assert.Equal(t, "N/A", FormatCost("   "))
	assert.Equal(t, "R$ 1.250,50", FormatCost("1250.5"))
	assert.Equal(t, "uns 2 mil", FormatCost("uns 2 mil"))
}

func TestFitImage(t *testing.T) {
	// 4000x3000 shown at 335 points wide scales to 251 points tall.
	size := FitImage(4000, 3000, 335, ThumbBounds)
	assert.Equal(t, 335.0, size.Width)
	assert.Equal(t, 251.0, size.Height)
}

func TestFitImage_ClampsHeight(t *testing.T) {
	// Very tall image hits the max.
	tall := FitImage(100, 5000, 375, FeedBounds)
	assert.Equal(t, 335.0, tall.Width)
	assert.Equal(t, 600.0, tall.Height)

	// Very wide image hits the min.
	wide := FitImage(5000, 100, 375, FeedBounds)
	assert.Equal(t, 250.0, wide.Height)
}

func TestFitImage_Degenerate(t *testing.T) {
	size := FitImage(0, 0, 375, DetailBounds)
	assert.Equal(t, 355.0, size.Width)
	assert.Equal(t, 355.0, size.Height)
}
