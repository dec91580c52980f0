package plot

import "github.com/wcharczuk/go-chart/v2/drawing"

// Palette is the plotly default qualitative colour sequence.
var Palette = []string{
	"#636EFA", "#EF553B", "#00CC96", "#AB63FA", "#FFA15A",
	"#19D3F3", "#FF6692", "#B6E880", "#FF97FF", "#FECB52",
}

// Named colours used by the quantum figures.
const (
	Blue       = "#1F77B4"
	Orange     = "#FF7F0E"
	Green      = "#2CA02C"
	Red        = "#D62728"
	Grey       = "#7F7F7F"
	LightGray  = "#D3D3D3"
	FireBrick  = "#B22222"
	SteelBlue  = "#4682B4"
	DarkOrange = "#FF8C00"
)

// PaletteColor returns the i-th palette colour, cycling.
func PaletteColor(i int) drawing.Color {
	if i < 0 {
		i = -i
	}
	return Color(Palette[i%len(Palette)])
}
