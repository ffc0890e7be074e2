package quizgen

// fallbackTranslations pads the distractor set when the pool cannot supply
// three distinct wrong translations. Generic everyday nouns; padding walks
// the list in order so degenerate pools still produce deterministic options.
var fallbackTranslations = []string{
	"apple",
	"river",
	"mountain",
	"road",
	"book",
	"fire",
	"stone",
	"bird",
	"horse",
	"milk",
	"snow",
	"window",
}
