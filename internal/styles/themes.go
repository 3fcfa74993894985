package styles

// Built-in styles. The base style carries the font and scroll defaults every
// other style inherits; dark and light provide the stock appearance pair.
//
// State slot order in the slice forms below is
// (default, disabled, invalid, active, highlight).

// DefaultFont is the font every style resolves to unless overridden.
var DefaultFont = Font{Family: "Helvetica", Size: 10}

func registerBuiltins(r *Registry) {
	mustNew(r, "_base", nil, Settings{
		"font":             DefaultFont,
		"scroll_bar_width": 1,
	})

	mustNew(r, "_dark_base", "_base", Settings{
		"insert_bg":   White,
		"frame_color": Lighten(GreyD0, 0.12),
	})
	dark := mustNew(r, "dark", "_dark_base", Settings{
		"fg":                  []any{GreyL1, GreyMD0, RedMD0, GreyL1, GreyL1},
		"bg":                  []any{GreyD0, GreyD0, GreyD0, GreyD0, GreyD0},
		"input_fg":            []any{BluML0, Black, White, nil, GreyD1},
		"input_bg":            []any{GreyD1, GreyML0, RedMD0, nil, BluML0},
		"menu_fg":             []any{BluML0, GreyMD0, nil, BluML0},
		"menu_bg":             []any{GreyD1, GreyD1, nil, Black},
		"button_fg":           []any{GreyL0, nil, nil, Black},
		"button_bg":           []any{BluMD0, nil, nil, BluML0},
		"selected_fg":         []any{GreyD0, GreyML0, RedMD0},
		"selected_bg":         []any{GreyL1, Black, White},
		"arrows_fg":           []any{GreyL0, Black},
		"arrows_bg":           []any{BluMD0, GreyML0},
		"combo_fg":            []any{BluML0, Black, White, nil, GreyD1},
		"combo_bg":            []any{GreyD1, GreyML0, RedMD0, nil, BluML0},
		"table_alt_fg":        BluML0,
		"table_alt_bg":        GreyD1,
		"table_header_fg":     Lighten(BluML0, 0.2),
		"table_header_bg":     Darken(GreyD1, 0.25),
		"scroll_trough_color": BluMD0,
		"scroll_bg":           GreyD1,
		"scroll_arrow_color":  GreyL0,
		"link_fg":             Cyan0,
		"tooltip_bg":          YlwL0,
		"tooltip_fg":          Black,
	})

	mustNew(r, "_light_base", "_base", Settings{
		"insert_bg":   Black,
		"frame_color": Darken(GreyL0, 0.12),
	})
	mustNew(r, "light", "_light_base", Settings{
		"fg":                  []any{GreyD0, GreyML0, RedMD0, GreyD0, GreyD0},
		"bg":                  []any{GreyL0, GreyL0, GreyL0, GreyL0, GreyL0},
		"input_fg":            []any{GreyD0, GreyMD0, RedMD0, nil, GreyL0},
		"input_bg":            []any{White, GreyL1, YlwL0, nil, BluMD0},
		"button_fg":           []any{White, nil, nil, GreyD0},
		"button_bg":           []any{BluMD0, nil, nil, BluML0},
		"selected_fg":         []any{GreyL0, GreyL1, White},
		"selected_bg":         []any{BluMD0, GreyMD0, RedMD0},
		"table_alt_bg":        GreyL1,
		"table_header_fg":     Darken(BluMD0, 0.2),
		"table_header_bg":     Darken(GreyL1, 0.15),
		"scroll_trough_color": GreyL1,
		"scroll_bg":           White,
		"scroll_arrow_color":  GreyMD0,
		"link_fg":             Cyan0,
		"tooltip_bg":          YlwL0,
		"tooltip_fg":          Black,
	})

	r.SetDefault(dark)
}

// mustNew registers a built-in style. Built-in definitions are static; a
// routing failure here is a programming error, not user input.
func mustNew(r *Registry, name string, parent any, settings Settings) *Style {
	style, err := r.New(name, parent, settings)
	if err != nil {
		panic(err)
	}
	return style
}
