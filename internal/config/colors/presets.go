package colors

// Default returns the default color scheme (purple theme)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		Accent: "#874BFD",

		ColumnBorder: "#5F87D7",
		TaskBorder:   "#585858",
		Label:        "#5FD7AF",
		Due:          "#FFD700",

		Title:  "#D75FD7",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		Success: "#5FD75F",
		Error:   "#FF0000",
	}
}

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		Accent: "#FFFFFF",

		ColumnBorder: "#FFFFFF",
		TaskBorder:   "#585858",
		Label:        "#D0D0D0",
		Due:          "#D0D0D0",

		Title:  "#FFFFFF",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		Success: "#FFFFFF",
		Error:   "#FFFFFF",
	}
}

// Dragon returns the Kanagawa Dragon color scheme (dark theme with warm earth tones)
func Dragon() *ColorScheme {
	return &ColorScheme{
		Preset: "dragon",

		Accent: "#8992A7", // dragonViolet

		ColumnBorder: "#625E5A", // dragonBlack6
		TaskBorder:   "#282727", // dragonBlack4
		Label:        "#8EA4A2", // dragonAqua
		Due:          "#FF9E3B", // roninYellow

		Title:  "#8BA4B0", // dragonBlue2
		Subtle: "#737C73", // dragonAsh
		Normal: "#C5C9C5", // dragonWhite

		Success: "#8A9A7B", // dragonGreen2
		Error:   "#E82424", // samuraiRed
	}
}
