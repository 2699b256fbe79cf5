package font

// Tiny is the narrow 3x5 text font (selector 1, the default). Glyphs sit on
// rows 1-5 of the 8 pixel cell so the time lines up with the 3x5 temperature
// widget. Lowercase runes render as small caps.
var Tiny = &Font{
	name:     "tiny",
	height:   8,
	top:      1,
	tracking: 1,
	glyphs: map[rune][]string{
		' ': {"000", "000", "000", "000", "000"},
		'0': {"111", "101", "101", "101", "111"},
		'1': {"010", "110", "010", "010", "111"},
		'2': {"111", "001", "111", "100", "111"},
		'3': {"111", "001", "111", "001", "111"},
		'4': {"101", "101", "111", "001", "001"},
		'5': {"111", "100", "111", "001", "111"},
		'6': {"111", "100", "111", "101", "111"},
		'7': {"111", "001", "010", "100", "100"},
		'8': {"111", "101", "111", "101", "111"},
		'9': {"111", "101", "111", "001", "111"},
		'A': {"010", "101", "111", "101", "101"},
		'B': {"110", "101", "110", "101", "110"},
		'C': {"011", "100", "100", "100", "011"},
		'D': {"110", "101", "101", "101", "110"},
		'E': {"111", "100", "110", "100", "111"},
		'F': {"111", "100", "110", "100", "100"},
		'G': {"011", "100", "101", "101", "011"},
		'H': {"101", "101", "111", "101", "101"},
		'I': {"111", "010", "010", "010", "111"},
		'J': {"001", "001", "001", "101", "010"},
		'K': {"101", "101", "110", "101", "101"},
		'L': {"100", "100", "100", "100", "111"},
		'M': {"101", "111", "111", "101", "101"},
		'N': {"110", "101", "101", "101", "101"},
		'O': {"010", "101", "101", "101", "010"},
		'P': {"110", "101", "110", "100", "100"},
		'Q': {"010", "101", "101", "010", "001"},
		'R': {"110", "101", "110", "101", "101"},
		'S': {"011", "100", "010", "001", "110"},
		'T': {"111", "010", "010", "010", "010"},
		'U': {"101", "101", "101", "101", "111"},
		'V': {"101", "101", "101", "101", "010"},
		'W': {"101", "101", "111", "111", "101"},
		'X': {"101", "101", "010", "101", "101"},
		'Y': {"101", "101", "010", "010", "010"},
		'Z': {"111", "001", "010", "100", "111"},
		':': {"0", "1", "0", "1", "0"},
		'-': {"000", "000", "111", "000", "000"},
		'.': {"0", "0", "0", "0", "1"},
		'/': {"001", "001", "010", "100", "100"},
	},
}
