package assistant

import "github.com/dormmate/dormmate/internal/games"

// promptFor returns the instruction template for a game kind. Unknown kinds
// fall through to the quick-activity prompt.
func promptFor(kind games.Kind) string {
	switch kind {
	case games.KindTruthDare:
		return "Generate one 'truth' question and one 'dare' challenge suitable for students sharing a flat. " +
			"Follow this format exactly: 'Truth: [question] | Dare: [challenge]'. Fun but nothing over the line."
	case games.KindWhoIsSpy:
		return "For a round of 'who is the spy', generate two similar but different words (for example: milk vs yogurt). " +
			"Return format: 'Civilian word: [word one], Spy word: [word two]'."
	default:
		return "Suggest a quick five-minute group activity that works inside a shared dorm room."
	}
}
