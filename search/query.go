package search

import (
	"strconv"
	"strings"
)

// Query represents the structured parameters of a conversation search.
// It decouples raw client input from the index engine requirements.
type Query struct {
	RawInput string // original input line
	Terms    string // text matched against message content
	Sender   string // optional: restrict hits to one sender
	Limit    int    // maximum number of hits
}

const defaultLimit = 10

// NewQuery parses a raw line with command-line style arguments.
// Example: /find invoice overdue --from alice --limit 5
func NewQuery(input string) *Query {
	query := &Query{
		RawInput: input,
		Limit:    defaultLimit,
	}

	parts := strings.Fields(input)
	var textTerms []string

	for i := 0; i < len(parts); i++ {
		part := parts[i]

		if strings.HasPrefix(part, "--") && i+1 < len(parts) {
			key := strings.TrimPrefix(part, "--")
			val := parts[i+1]

			switch key {
			case "from":
				query.Sender = val
			case "limit":
				if limit, err := strconv.Atoi(val); err == nil && limit > 0 {
					query.Limit = limit
				}
			}
			i++ // skip the consumed value
			continue
		}

		// Anything that is not a flag or a command prefix is a search term
		if !strings.HasPrefix(part, "/") {
			textTerms = append(textTerms, part)
		}
	}

	query.Terms = strings.Join(textTerms, " ")
	return query
}
