package chase

// Preset is a named playfield layout.
// '#' is a wall, 'P' the player start, 'C' a chaser start; every other
// in-bounds cell starts with a pellet. Start cells hold no pellet.
type Preset struct {
	Name   string
	Layout []string
}

var presets = map[string]Preset{
	"small": {
		Name: "Courtyard",
		Layout: []string{
			"###########",
			"#C       C#",
			"# ## # ## #",
			"#    P    #",
			"# ## # ## #",
			"#C       C#",
			"###########",
		},
	},
	"medium": {
		Name: "Crossroads",
		Layout: []string{
			"###################",
			"#C       #       C#",
			"# ## ### # ### ## #",
			"#                 #",
			"# ## # ##### # ## #",
			"#    #   P   #    #",
			"# ## # ##### # ## #",
			"#                 #",
			"# ## ### # ### ## #",
			"#C       #       C#",
			"###################",
		},
	},
	"large": {
		Name: "Gallery",
		Layout: []string{
			"###########################",
			"#C                       C#",
			"# ##### ##### ##### ##### #",
			"#                         #",
			"# ##### ##### ##### ##### #",
			"#                         #",
			"# ##### ##### ##### ##### #",
			"#            P            #",
			"# ##### ##### ##### ##### #",
			"#                         #",
			"# ##### ##### ##### ##### #",
			"#                         #",
			"# ##### ##### ##### ##### #",
			"#C                       C#",
			"###########################",
		},
	},
}

// GetPreset returns the layout for a preset name, or nil if unknown.
func GetPreset(name string) *Preset {
	if p, ok := presets[name]; ok {
		return &p
	}
	return nil
}

// PresetNames returns the available preset names.
func PresetNames() []string {
	return []string{"small", "medium", "large"}
}
