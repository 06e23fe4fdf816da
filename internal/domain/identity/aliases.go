package identity

// defaultAliases covers every rename observed in the league's history.
var defaultAliases = map[string]string{
	// Wolfpack
	"Make Wolfpack Great Again": "Wolfpack",
	"Wolfpack is Problematic":   "Wolfpack",
	"Covid Caged Wolfpack":      "Wolfpack",
	"Neutered Wolfpack":         "Wolfpack",
	"Impeached Wolfpack":        "Wolfpack",
	"Unidentifiable Wolfpack":   "Wolfpack",

	// Scrubs
	"Handycuffs":         "Scrubs",
	"PMQ Scrubs":         "Scrubs",
	"Captain Phillips":   "Scrubs",
	"Part-Time Battlers": "Scrubs",

	// The Brotherhood
	"Hood":                   "The Brotherhood",
	"Smitten on Witten":      "The Brotherhood",
	"The Arian Brother Hood": "The Brotherhood",

	// Killer Cam (case fix)
	"killer cam": "Killer Cam",

	// Woody
	"Cowboys Ware94": "Woody",

	// MEGATRON
	"TeamBreezy":            "MEGATRON",
	"Breezes' Transformers": "MEGATRON",
	"MegatroN":              "MEGATRON",

	// The Generous
	"Generous Brady":       "The Generous",
	"Ball So Hard Wolfpak": "The Generous",
	"Wolfpak":              "The Generous",
	"Boston Tea Party":     "The Generous",

	// Pels
	"Palm Beach Pelicans": "Pels",

	// Mebs Militia
	"Mebs Militia owns the Hood": "Mebs Militia",

	// The Ratpack
	"Rats": "The Ratpack",
}
