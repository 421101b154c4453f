package store

import (
	"strings"

	"github.com/somfix/dashboard/internal/model"
)

// HistoryForCustomer returns the service records whose customer name
// contains query, case-insensitively. An empty query returns the whole
// ledger, newest first.
func HistoryForCustomer(s State, query string) []model.ServiceRecord {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return s.History
	}
	var out []model.ServiceRecord
	for _, r := range s.History {
		if strings.Contains(strings.ToLower(r.CustomerName), query) {
			out = append(out, r)
		}
	}
	return out
}
