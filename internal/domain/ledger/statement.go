package ledger

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// StatementSource identifies where a statement line came from
type StatementSource string

const (
	// StatementSourcePayment marks lines derived from tenant rent payments
	StatementSourcePayment StatementSource = "PAYMENT"
	// StatementSourceManual marks lines derived from manual ledger entries
	StatementSourceManual StatementSource = "MANUAL"
)

// StatementLine is one unnumbered row of a landlord statement before the
// running balance is applied. Payment-derived lines credit the full payment
// amount; the payment's internal fee split is not consulted in this view.
type StatementLine struct {
	Date      time.Time
	Narration string
	Method    string
	Credit    decimal.Decimal
	Debit     decimal.Decimal
	Source    StatementSource
	SourceID  string
	Tenant    string
	Property  string
	Seq       int64
}

// NumberedLine is a statement row annotated with its position and the
// running balance after applying it.
type NumberedLine struct {
	SN        int             `json:"sn"`
	Date      time.Time       `json:"date"`
	Narration string          `json:"narration"`
	Method    string          `json:"mode_of_payment"`
	Credit    decimal.Decimal `json:"credit"`
	Debit     decimal.Decimal `json:"debit"`
	Balance   decimal.Decimal `json:"balance"`
	Source    StatementSource `json:"source"`
	SourceID  string          `json:"source_id"`
	Tenant    string          `json:"tenant,omitempty"`
	Property  string          `json:"property,omitempty"`
}

// Statement is the ordered, balance-annotated view of a landlord's account
type Statement struct {
	Lines   []NumberedLine  `json:"lines"`
	Balance decimal.Decimal `json:"balance"`
}

// BuildStatement merges statement lines into one chronological sequence and
// computes the running balance. Sorting is by date ascending with a stable
// tie-break on insertion order (Seq), so same-date reordering never changes
// the final balance, only intermediate values.
func BuildStatement(lines []StatementLine) Statement {
	merged := make([]StatementLine, len(lines))
	copy(merged, lines)

	sort.SliceStable(merged, func(i, j int) bool {
		if merged[i].Date.Equal(merged[j].Date) {
			return merged[i].Seq < merged[j].Seq
		}
		return merged[i].Date.Before(merged[j].Date)
	})

	balance := decimal.Zero
	numbered := make([]NumberedLine, 0, len(merged))
	for i, line := range merged {
		balance = balance.Add(line.Credit).Sub(line.Debit)
		numbered = append(numbered, NumberedLine{
			SN:        i + 1,
			Date:      line.Date,
			Narration: line.Narration,
			Method:    line.Method,
			Credit:    line.Credit,
			Debit:     line.Debit,
			Balance:   balance,
			Source:    line.Source,
			SourceID:  line.SourceID,
			Tenant:    line.Tenant,
			Property:  line.Property,
		})
	}

	return Statement{Lines: numbered, Balance: balance}
}
