package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseBoxes(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []BoundingBox
	}{
		{
			name: "no tags",
			text: "no target found",
			want: []BoundingBox{},
		},
		{
			name: "single tag with surrounding text",
			text: "drone at <bbox>100 200 300 400</bbox> near the tower",
			want: []BoundingBox{{X1: 100, Y1: 200, X2: 300, Y2: 400}},
		},
		{
			name: "keeps textual order",
			text: "<bbox>900 900 950 950</bbox><bbox>0 0 10 10</bbox>",
			want: []BoundingBox{
				{X1: 900, Y1: 900, X2: 950, Y2: 950},
				{X1: 0, Y1: 0, X2: 10, Y2: 10},
			},
		},
		{
			name: "reversed corners are kept",
			text: "<bbox>500 500 100 100</bbox>",
			want: []BoundingBox{{X1: 500, Y1: 500, X2: 100, Y2: 100}},
		},
		{
			name: "double space does not match",
			text: "<bbox>1  2 3 4</bbox>",
			want: []BoundingBox{},
		},
		{
			name: "negative numbers do not match",
			text: "<bbox>-1 2 3 4</bbox>",
			want: []BoundingBox{},
		},
		{
			name: "three numbers do not match",
			text: "<bbox>1 2 3</bbox>",
			want: []BoundingBox{},
		},
		{
			name: "leading zeros",
			text: "<bbox>007 010 0 1000</bbox>",
			want: []BoundingBox{{X1: 7, Y1: 10, X2: 0, Y2: 1000}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBoxes(tt.text)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParseBoxes_Overflow(t *testing.T) {
	_, err := ParseBoxes("<bbox>99999999999999999999 0 1 1</bbox>")
	require.Error(t, err)
}

func TestBoundingBoxRescale(t *testing.T) {
	tests := []struct {
		name          string
		box           BoundingBox
		width, height int
		want          PixelBox
	}{
		{
			name:  "drone example first box",
			box:   BoundingBox{X1: 100, Y1: 200, X2: 300, Y2: 400},
			width: 640, height: 480,
			want: PixelBox{XMin: 64, YMin: 96, XMax: 192, YMax: 192},
		},
		{
			name:  "full frame",
			box:   BoundingBox{X1: 0, Y1: 0, X2: 1000, Y2: 1000},
			width: 640, height: 480,
			want: PixelBox{XMin: 0, YMin: 0, XMax: 640, YMax: 480},
		},
		{
			name:  "half to end truncates odd sizes",
			box:   BoundingBox{X1: 500, Y1: 500, X2: 1000, Y2: 1000},
			width: 333, height: 101,
			want: PixelBox{XMin: 166, YMin: 50, XMax: 333, YMax: 101},
		},
		{
			name:  "truncates toward zero",
			box:   BoundingBox{X1: 1, Y1: 999, X2: 3, Y2: 2},
			width: 999, height: 999,
			want: PixelBox{XMin: 0, YMin: 998, XMax: 2, YMax: 1},
		},
		{
			name:  "reversed order is not fixed up",
			box:   BoundingBox{X1: 800, Y1: 800, X2: 200, Y2: 200},
			width: 100, height: 50,
			want: PixelBox{XMin: 80, YMin: 40, XMax: 20, YMax: 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.box.Rescale(tt.width, tt.height))
		})
	}
}

func TestLabel(t *testing.T) {
	require.Equal(t, "Box 1", Label(0))
	require.Equal(t, "Box 5", Label(4))
}

func TestColorFor_Cycles(t *testing.T) {
	require.Equal(t, ColorFor(0), ColorFor(4))
	require.Equal(t, ColorFor(1), ColorFor(5))
	require.NotEqual(t, ColorFor(0), ColorFor(1))
	require.NotEqual(t, ColorFor(2), ColorFor(3))
}
