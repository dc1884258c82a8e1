package report

// Stat names one of the scalar metrics printed in the campaign footer.
type Stat int

const (
	UniqueInstructions Stat = iota
	UniqueCodehashes
	CorpusSize
	TotalCalls
	Seed
)

// Stats lists every Stat in rendering order.
var Stats = [...]Stat{
	UniqueInstructions,
	UniqueCodehashes,
	CorpusSize,
	TotalCalls,
	Seed,
}

var footerLabels = map[Stat]string{
	UniqueInstructions: "Unique instructions:",
	UniqueCodehashes:   "Unique codehashes:",
	CorpusSize:         "Corpus size:",
	TotalCalls:         "Total calls:",
	Seed:               "Seed:",
}

var humanLabels = map[Stat]string{
	UniqueInstructions: "Unique instructions",
	UniqueCodehashes:   "Contracts analyzed",
	CorpusSize:         "Corpus size",
	TotalCalls:         "Total calls",
	Seed:               "Seed",
}

var keys = map[Stat]string{
	UniqueInstructions: "unique_instructions",
	UniqueCodehashes:   "unique_codehashes",
	CorpusSize:         "corpus_size",
	TotalCalls:         "total_calls",
	Seed:               "seed",
}

// FooterLabel is the prefix the engine prints this stat's footer line with.
func (s Stat) FooterLabel() string { return footerLabels[s] }

// String is a human label for the stat.
func (s Stat) String() string { return humanLabels[s] }

// Key is a snake_case identifier for the stat.
func (s Stat) Key() string { return keys[s] }

// CampaignStats holds the footer metrics that were present and well formed.
// A missing key means the engine did not print it.
type CampaignStats map[Stat]int64

// Get returns a stat's value and whether it was present.
func (cs CampaignStats) Get(s Stat) (v int64, ok bool) {
	v, ok = cs[s]
	return
}

// Seed returns the seed the campaign ran with, if reported.
func (cs CampaignStats) Seed() (int64, bool) { return cs.Get(Seed) }

// CorpusSize returns the final corpus size, if reported.
func (cs CampaignStats) CorpusSize() (int64, bool) { return cs.Get(CorpusSize) }
