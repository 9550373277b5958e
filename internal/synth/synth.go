// Package synth generates synthetic identities and text for the
// simulated feedback stream.
package synth

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

var firstNames = []string{
	"Ada", "Alan", "Barbara", "Claude", "Donald", "Edsger", "Frances",
	"Grace", "John", "Katherine", "Ken", "Leslie", "Margaret", "Niklaus",
	"Radia", "Rob", "Robert", "Sophie", "Tim", "Vint",
}

var lastNames = []string{
	"Allen", "Backus", "Cerf", "Dijkstra", "Hamilton", "Hopper", "Johnson",
	"Kay", "Knuth", "Lamport", "Liskov", "Lovelace", "McCarthy", "Perlman",
	"Pike", "Ritchie", "Shannon", "Thompson", "Wilkes", "Wirth",
}

var mailDomains = []string{
	"example.com", "example.net", "example.org", "mail.test", "inbox.test",
}

var buzzAdjectives = []string{
	"Adaptive", "Balanced", "Decentralized", "Ergonomic", "Frictionless",
	"Holistic", "Integrated", "Proactive", "Seamless", "Synergistic",
}

var buzzNouns = []string{
	"Alliance", "Architecture", "Initiative", "Framework", "Paradigm",
	"Platform", "Showcase", "Summit", "Symposium", "Workshop",
}

var buzzDescriptors = []string{
	"next-generation", "mission-critical", "user-centric", "cross-platform",
	"future-proof", "value-added", "enterprise-wide", "community-driven",
}

var sentenceWords = []string{
	"speaker", "session", "venue", "audience", "demo", "schedule", "content",
	"discussion", "pacing", "examples", "slides", "questions", "insights",
	"atmosphere", "organization", "material", "delivery", "energy",
}

var sentenceOpeners = []string{
	"Really enjoyed the", "Mixed feelings about the", "Impressed by the",
	"Could not follow the", "Loved the", "Underwhelmed by the",
	"Great", "Solid", "Chaotic but fun",
}

// FullName returns a random person name.
func FullName(r *rand.Rand) string {
	return pick(r, firstNames) + " " + pick(r, lastNames)
}

// Email returns a random email address unique enough for test data.
func Email(r *rand.Rand) string {
	return fmt.Sprintf("%s.%s%d@%s",
		strings.ToLower(pick(r, firstNames)),
		strings.ToLower(pick(r, lastNames)),
		r.IntN(10000),
		pick(r, mailDomains),
	)
}

// CatchPhrase returns a random event name in corporate catchphrase style.
func CatchPhrase(r *rand.Rand) string {
	return pick(r, buzzAdjectives) + " " + pick(r, buzzNouns)
}

// CatchPhraseDescriptor returns a random event description fragment.
func CatchPhraseDescriptor(r *rand.Rand) string {
	return pick(r, buzzDescriptors)
}

// Sentence returns a short random feedback sentence.
func Sentence(r *rand.Rand) string {
	return fmt.Sprintf("%s %s and the %s.",
		pick(r, sentenceOpeners), pick(r, sentenceWords), pick(r, sentenceWords))
}

func pick(r *rand.Rand, items []string) string {
	return items[r.IntN(len(items))]
}
