package render

// palette maps triangle color identifiers to display colors.
var palette = [...]Color{
	RGB(15, 15, 15),    // 0: obsidian black
	RGB(120, 0, 15),    // 1: blood crimson
	RGB(90, 0, 30),     // 2: deep maroon
	RGB(70, 0, 80),     // 3: phantom purple
	RGB(40, 0, 40),     // 4: midnight plum
	RGB(100, 100, 100), // 5: ashen grey
	RGB(160, 160, 160), // 6: veiled silver
}

// PaletteSize is the number of defined color identifiers.
const PaletteSize = len(palette)

// PaletteColor resolves a color identifier. Identifiers outside
// 0..PaletteSize-1 are white.
func PaletteColor(id int) Color {
	if id < 0 || id >= len(palette) {
		return ColorWhite
	}
	return palette[id]
}
