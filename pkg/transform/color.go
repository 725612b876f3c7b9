package transform

import (
	"strings"

	"golang.org/x/image/colornames"

	"github.com/go-drift/tether/pkg/graphics"
)

type colorTransformer struct {
	Base[graphics.Color]
}

// Color returns a transformer for color-valued properties. Content accepts
// SVG 1.1 color names (via golang.org/x/image/colornames) and "#rgb",
// "#rrggbb", "#rrggbbaa" hex forms; the content written back is always the
// hex form, so round trips are exact.
func Color() Transformer[graphics.Color] {
	return colorTransformer{}
}

func (colorTransformer) Parse(ctx BindingContext, raw *string, previous graphics.Color, hasPrevious bool) (graphics.Color, bool) {
	if raw == nil {
		initial, ok := loadInitial[graphics.Color](ctx)
		return initial, ok
	}
	s := strings.ToLower(strings.TrimSpace(*raw))
	if named, ok := colornames.Map[s]; ok {
		return graphics.FromRGBA(named), true
	}
	c, err := graphics.ParseHex(s)
	if err != nil {
		return 0, false
	}
	return c, true
}

func (colorTransformer) Stringify(value graphics.Color) string { return value.Hex() }

func (colorTransformer) Eql(a, b graphics.Color) bool { return a == b }

func (colorTransformer) Init(ctx BindingContext, value graphics.Color, raw *string, preset bool) graphics.Color {
	storeInitial(ctx, value)
	return value
}
