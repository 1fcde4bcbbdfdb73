// Package theme holds color palette presets for transcript rendering.
// Values are lipgloss-compatible color specifiers (hex or 256-color codes);
// resolving them into terminal-appropriate styles is the caller's job.
package theme

// Palette assigns a color to each class of transcript line.
type Palette struct {
	Frame     string
	Title     string
	Method    string
	URL       string
	Header    string
	Body      string
	Time      string
	Status2xx string
	Status3xx string
	Status4xx string
	Status5xx string
	Error     string
}

// Default is a VS Code-inspired theme that reads well on dark terminals.
var Default = Palette{
	Frame:     "#ABB2BF",
	Title:     "#61AFEF",
	Method:    "#C678DD",
	URL:       "#56B6C2",
	Header:    "#98C379",
	Body:      "#ABB2BF",
	Time:      "#D19A66",
	Status2xx: "#98C379",
	Status3xx: "#56B6C2",
	Status4xx: "#E5C07B",
	Status5xx: "#E06C75",
	Error:     "#E06C75",
}

// CatppuccinMocha uses soft pastels with rosewater highlights.
var CatppuccinMocha = Palette{
	Frame:     "245",
	Title:     "217",
	Method:    "183",
	URL:       "117",
	Header:    "151",
	Body:      "253",
	Time:      "223",
	Status2xx: "151",
	Status3xx: "117",
	Status4xx: "223",
	Status5xx: "211",
	Error:     "211",
}

// DoomDracula mirrors doom-dracula with pink, purple, and cyan accents.
var DoomDracula = Palette{
	Frame:     "95",
	Title:     "219",
	Method:    "141",
	URL:       "81",
	Header:    "147",
	Body:      "253",
	Time:      "111",
	Status2xx: "84",
	Status3xx: "81",
	Status4xx: "219",
	Status5xx: "204",
	Error:     "204",
}

// TokyoNight draws on Tokyo Night's neon blues and violets.
var TokyoNight = Palette{
	Frame:     "244",
	Title:     "69",
	Method:    "176",
	URL:       "110",
	Header:    "117",
	Body:      "252",
	Time:      "173",
	Status2xx: "111",
	Status3xx: "110",
	Status4xx: "173",
	Status5xx: "210",
	Error:     "210",
}

// GruvboxLight trades neon for earthy reds and ambers.
var GruvboxLight = Palette{
	Frame:     "101",
	Title:     "214",
	Method:    "132",
	URL:       "66",
	Header:    "106",
	Body:      "239",
	Time:      "172",
	Status2xx: "106",
	Status3xx: "66",
	Status4xx: "172",
	Status5xx: "124",
	Error:     "124",
}
