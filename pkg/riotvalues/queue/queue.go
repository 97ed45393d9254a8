package queuevalues

// Display names of the common queues, keyed by queue id.
var QueueNames = map[int]string{
	400:  "Normal Draft",
	420:  "Ranked Solo/Duo",
	430:  "Normal Blind",
	440:  "Ranked Flex",
	450:  "ARAM",
	490:  "Quickplay",
	700:  "Clash",
	720:  "ARAM Clash",
	900:  "ARURF",
	1020: "One for All",
	1300: "Nexus Blitz",
	1400: "Ultimate Spellbook",
	1700: "Arena",
	1710: "Arena",
	1900: "URF",
}

// RankedQueues are the queues with a ladder.
var RankedQueues = []int{420, 440}

// Name returns the queue name, the game mode for unknown queues.
func Name(queueId int, gameMode string) string {
	if name, ok := QueueNames[queueId]; ok {
		return name
	}
	return gameMode
}

// IsRanked reports whether the queue has a ladder.
func IsRanked(queueId int) bool {
	for _, q := range RankedQueues {
		if q == queueId {
			return true
		}
	}
	return false
}
