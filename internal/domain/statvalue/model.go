package statvalue

// Entry is one tagged career statistic as reported by the provider,
// e.g. {fn: "batting", matchtype: "odi", stat: "runs", value: " 1234 "}.
type Entry struct {
	Category string `json:"fn"`
	Format   string `json:"matchtype"`
	Label    string `json:"stat"`
	Value    string `json:"value"`
}

const (
	CategoryBatting = "batting"
	CategoryBowling = "bowling"

	FormatODI  = "odi"
	FormatT20  = "t20"
	FormatTest = "test"
)
