package app

import "strings"

const maxTracedQueryLength = 512

const tracedQueryElision = " ... "

// formatDBQueryForTrace collapses whitespace and caps the statement length
// recorded on postgres spans. Long upserts keep their conflict target and
// long updates keep their WHERE clause, so a truncated player statement still
// shows which row key it hit.
func formatDBQueryForTrace(query string) string {
	normalized := strings.Join(strings.Fields(query), " ")
	if len(normalized) <= maxTracedQueryLength {
		return normalized
	}

	tail := statementKeyClause(normalized)
	if tail == "" || len(tail)+len(tracedQueryElision) >= maxTracedQueryLength {
		return normalized[:maxTracedQueryLength] + "..."
	}

	head := normalized[:maxTracedQueryLength-len(tail)-len(tracedQueryElision)]
	return head + tracedQueryElision + tail
}

// statementKeyClause returns "ON CONFLICT (...)" for upserts and the WHERE
// clause for updates.
func statementKeyClause(query string) string {
	if i := strings.LastIndex(query, " ON CONFLICT "); i >= 0 {
		clause := query[i+1:]
		if j := strings.Index(clause, " DO "); j >= 0 {
			clause = clause[:j]
		}
		return clause
	}
	if i := strings.LastIndex(query, " WHERE "); i >= 0 {
		return query[i+1:]
	}
	return ""
}
