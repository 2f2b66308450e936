package adventure

import "fmt"

// Speakers in the story.
const (
	Narrator = ""
	Sara     = "Sara"
	Hisab    = "Hisab"
	Raqmi    = "Raqmi"
)

// Line is one line of dialogue. An empty Speaker marks narration.
type Line struct {
	Speaker string
	Text    string
}

var scripts = map[Stage][]Line{
	Intro: {
		{Narrator, "While wandering through the old school library, Sara noticed a strange book glowing with a faint light."},
		{Narrator, `Its title read: "Secrets of the Operations".`},
	},
	Portal: {
		{Narrator, "The pages swirl and the library dissolves into a whirl of numbers..."},
	},
	MeetGenie: {
		{Sara, "Where am I? This place is so strange! Everything here is made of... numbers?"},
		{Hisab, "Welcome to the World of Numbers, Sara! I am Hisab, guardian of this world."},
		{Hisab, "Our world has fallen a little out of balance, and we need a clever mind like yours to set it right. Are you ready to help?"},
	},
	Relationship: {
		{Raqmi, "Before the vault, one last secret. Watch what happens when we turn a multiplication around."},
		{Sara, "Division undoes multiplication! If we know 5 × 7 = 35, then we know right away that 35 ÷ 7 = 5!"},
	},
	Outro: {
		{Narrator, "Sara returned to the library, and the book in her hands no longer glowed."},
		{Narrator, "She had learned that math is not just numbers. It is an adventure!"},
	},
}

// Script returns the dialogue for a story stage. Challenge stages have none.
func Script(stage Stage) []Line {
	lines := scripts[stage]
	out := make([]Line, len(lines))
	copy(out, lines)
	return out
}

// Fact is the multiplication and division pair revealed in the
// relationship scene.
type Fact struct {
	Factor1, Factor2, Product int
}

// RelationshipFact is the fact family shown before the vault.
var RelationshipFact = Fact{Factor1: 5, Factor2: 7, Product: 35}

// Multiplication renders the fact as a product, e.g. "5 × 7 = 35".
func (f Fact) Multiplication() string {
	return fmt.Sprintf("%d × %d = %d", f.Factor1, f.Factor2, f.Product)
}

// Division renders the inverse fact, e.g. "35 ÷ 7 = 5".
func (f Fact) Division() string {
	return fmt.Sprintf("%d ÷ %d = %d", f.Product, f.Factor2, f.Factor1)
}
