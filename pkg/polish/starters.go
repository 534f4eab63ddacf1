package polish

// Starter is a canned conversation opener for drafting sessions.
type Starter struct {
	// Title is the short label shown to the user.
	Title string

	// Prompt is the seed text sent to the assistant.
	Prompt string
}

// Starters returns the canned conversation starters in display order.
func Starters() []Starter {
	return []Starter{
		{
			Title:  "Draft my WPS",
			Prompt: "Draft a hybrid WPS for [occupation], [region]. Use task-not-method verbs and include accessibility notes.",
		},
		{
			Title:  "Audit this WPS/RTI",
			Prompt: "Audit the uploaded/pasted draft for accessibility issues, show flags, and produce a clean copy.",
		},
		{
			Title:  "Accommodation SOP",
			Prompt: "Create an Accommodation SOP for a small employer with community-college RTI, include a 10-day SLA and privacy notes.",
		},
		{
			Title:  "Partner & Funding map",
			Prompt: "Draft a partner map (DOR/VR, AJCs, CILs, unions, CBOs) and a braided funding sketch for [county].",
		},
	}
}
