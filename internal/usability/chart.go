package usability

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/samber/lo"
)

const barWidth = 40

// Chart is a horizontal text bar chart. Max fixes the scale; zero scales to
// the largest value.
type Chart struct {
	Title  string
	Labels []string
	Values []float64
	Max    float64
}

func (c Chart) Render(w io.Writer) {
	fmt.Fprintln(w, c.Title)

	scale := c.Max
	if scale <= 0 {
		scale = lo.Max(c.Values)
	}
	width := lo.Max(lo.Map(c.Labels, func(l string, _ int) int { return len(l) }))

	for i, label := range c.Labels {
		v := c.Values[i]
		n := 0
		if scale > 0 {
			n = int(math.Round(v / scale * barWidth))
		}
		n = lo.Clamp(n, 0, barWidth)
		fmt.Fprintf(w, "  %-*s | %s %.2f\n", width, label, strings.Repeat("#", n), v)
	}
	fmt.Fprintln(w)
}
