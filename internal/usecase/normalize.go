package usecase

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"fine-reconciliation/internal/domain"
)

// normalizeLookupLimit bounds how many title-enrichment lookups run at once.
// Large fine collections would otherwise fan out one request per record.
const normalizeLookupLimit = 8

// Probe tables: per canonical field, the ordered list of dotted paths tried
// against a raw record. First defined value wins. The endpoints disagree on
// casing and nesting, so every known variant is listed explicitly.
var (
	fineIDPaths        = []string{"id", "Id", "ID", "fineId", "FineId", "_id"}
	userIDPaths        = []string{"userId", "UserId", "user.id", "User.Id", "member.id", "bookIssue.userId"}
	userNamePaths      = []string{"userName", "UserName", "user.name", "User.Name", "user.fullName", "member.name"}
	userEmailPaths     = []string{"userEmail", "UserEmail", "user.email", "User.Email", "member.email"}
	bookIDPaths        = []string{"bookId", "BookId", "book.id", "Book.Id", "bookIssue.bookId", "bookIssue.book.id"}
	bookTitlePaths     = []string{"bookTitle", "BookTitle", "book.title", "Book.Title", "bookIssue.book.title", "BookIssue.Book.Title"}
	bookAuthorPaths    = []string{"bookAuthor", "BookAuthor", "book.author", "Book.Author", "bookIssue.book.author"}
	issueIDPaths       = []string{"bookIssueId", "BookIssueId", "bookIssue.id", "BookIssue.Id", "issueId"}
	issueDatePaths     = []string{"issueDate", "IssueDate", "bookIssue.issueDate", "createdAt", "CreatedAt"}
	dueDatePaths       = []string{"dueDate", "DueDate", "bookIssue.dueDate", "BookIssue.DueDate"}
	returnDatePaths    = []string{"returnDate", "ReturnDate", "bookIssue.returnDate"}
	daysOverduePaths   = []string{"daysOverdue", "DaysOverdue", "overdueDays"}
	fineAmountPaths    = []string{"fineAmount", "FineAmount", "amount", "fine.amount"}
	paidAmountPaths    = []string{"paidAmount", "PaidAmount", "amountPaid"}
	pendingAmountPaths = []string{"pendingAmount", "PendingAmount", "outstandingAmount", "balance"}
	statusPaths        = []string{"status", "Status", "fineStatus", "FineStatus"}
	waivedFlagPaths    = []string{"waived", "isWaived", "IsWaived"}
	waiverReasonPaths  = []string{"waiverReason", "WaiverReason", "waiver.reason"}
	notesPaths         = []string{"notes", "Notes", "remark"}
	paymentsPaths      = []string{"payments", "Payments"}

	// Paths tried against a book-issue record fetched by the fallback lookup.
	issueBookTitlePaths  = []string{"book.title", "Book.Title", "bookTitle", "BookTitle", "title", "Title"}
	issueBookAuthorPaths = []string{"book.author", "Book.Author", "bookAuthor", "BookAuthor", "author", "Author"}

	paymentIDPaths      = []string{"id", "Id", "ID", "paymentId", "PaymentId"}
	paymentFineIDPaths  = []string{"fineId", "FineId", "fine.id"}
	paymentUserIDPaths  = []string{"userId", "UserId", "user.id"}
	paymentAmountPaths  = []string{"amount", "Amount"}
	paymentDatePaths    = []string{"paymentDate", "PaymentDate", "date", "createdAt"}
	paymentMethodPaths  = []string{"paymentMethod", "PaymentMethod", "method", "Method"}
	paymentStatusPaths  = []string{"status", "Status"}
	paymentTxnPaths     = []string{"transactionId", "TransactionId", "transactionID"}
	paymentReceiptPaths = []string{"receiptNumber", "ReceiptNumber", "receiptNo"}
	paymentNotesPaths   = []string{"notes", "Notes"}
	paymentByPaths      = []string{"processedBy", "ProcessedBy"}
)

// Normalizer converts raw fine payloads into canonical Fine records. It
// never fails: every field falls back to a zero value or sentinel, and
// enrichment-lookup errors are swallowed.
type Normalizer struct {
	lookup IssueLookup
	rate   decimal.Decimal
	now    func() time.Time
}

// NewNormalizer creates a normalizer. lookup may be nil, in which case
// missing titles stay at the sentinel without a secondary fetch.
func NewNormalizer(lookup IssueLookup, dailyRate decimal.Decimal) *Normalizer {
	if !dailyRate.IsPositive() {
		dailyRate = DefaultDailyRate
	}
	return &Normalizer{lookup: lookup, rate: dailyRate, now: time.Now}
}

// NormalizeAll maps every raw record into a Fine, preserving input order.
// Records whose title could not be resolved locally are enriched through
// the issue lookup, concurrently across records but bounded by
// normalizeLookupLimit. A failed lookup leaves the sentinel title in place;
// one bad record never fails the batch.
func (n *Normalizer) NormalizeAll(ctx context.Context, raws []domain.RawRecord) []domain.Fine {
	fines := make([]domain.Fine, len(raws))

	var wg sync.WaitGroup
	sem := make(chan struct{}, normalizeLookupLimit)

	for i, raw := range raws {
		fines[i] = n.Normalize(raw)

		if fines[i].BookTitle != domain.UnknownBookTitle || fines[i].BookIssueID == "" || n.lookup == nil {
			continue
		}
		wg.Add(1)
		go func(idx int, issueID string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			issue, err := n.lookup.FetchBookIssue(ctx, issueID)
			if err != nil {
				return // sentinel stays, failure is not surfaced
			}
			if title := probeString(issue, issueBookTitlePaths); title != "" {
				fines[idx].BookTitle = title
			}
			if fines[idx].BookAuthor == "" {
				fines[idx].BookAuthor = probeString(issue, issueBookAuthorPaths)
			}
		}(i, fines[i].BookIssueID)
	}

	wg.Wait()
	return fines
}

// Normalize maps a single raw record into a canonical Fine. Pure except for
// the clock read; the secondary title lookup happens in NormalizeAll.
func (n *Normalizer) Normalize(raw domain.RawRecord) domain.Fine {
	f := domain.Fine{
		ID:          probeString(raw, fineIDPaths),
		UserID:      probeString(raw, userIDPaths),
		UserName:    probeString(raw, userNamePaths),
		UserEmail:   probeString(raw, userEmailPaths),
		BookID:      probeString(raw, bookIDPaths),
		BookAuthor:  probeString(raw, bookAuthorPaths),
		BookIssueID: probeString(raw, issueIDPaths),
	}

	f.BookTitle = probeString(raw, bookTitlePaths)
	if f.BookTitle == "" {
		f.BookTitle = domain.UnknownBookTitle
	}

	if due, ok := probeTime(raw, dueDatePaths); ok {
		f.DueDate = due
	}
	if issued, ok := probeTime(raw, issueDatePaths); ok {
		f.IssueDate = issued
	} else {
		f.IssueDate = f.DueDate
	}
	if returned, ok := probeTime(raw, returnDatePaths); ok {
		f.ReturnDate = &returned
	}

	f.Payments = n.normalizePayments(raw, f.ID, f.UserID)

	if paid, ok := probeDecimal(raw, paidAmountPaths); ok {
		f.PaidAmount = paid
	} else {
		f.PaidAmount = settledAmount(f.Payments)
	}

	if days, ok := probeInt(raw, daysOverduePaths); ok && days >= 0 {
		f.DaysOverdue = days
	} else if !f.DueDate.IsZero() {
		f.DaysOverdue = DaysOverdue(f.DueDate, f.ReturnDate, n.now())
	}

	if amount, ok := probeDecimal(raw, fineAmountPaths); ok {
		f.FineAmount = amount
	} else {
		f.FineAmount = FineForDays(f.DaysOverdue, n.rate)
	}
	if f.FineAmount.IsNegative() {
		f.FineAmount = decimal.Zero
	}

	if pending, ok := probeDecimal(raw, pendingAmountPaths); ok && !pending.IsNegative() {
		f.PendingAmount = pending
	} else {
		f.PendingAmount = pendingFor(f.FineAmount, f.PaidAmount)
	}

	f.Status = domain.StatusFromRaw(probeString(raw, statusPaths), f.PaidAmount, f.FineAmount)
	f.WaiverReason = probeString(raw, waiverReasonPaths)
	f.Notes = probeString(raw, notesPaths)

	// Legacy waiver signal: a waiver recorded as a zero-amount "payment"
	// with method Waived, or a bare waived flag. Folding it into the status
	// here keeps the downstream partition exclusive.
	if waived, ok := probeBool(raw, waivedFlagPaths); ok && waived {
		f.Status = domain.StatusWaived
	}
	for _, p := range f.Payments {
		if p.Method == domain.MethodWaived {
			f.Status = domain.StatusWaived
			if f.WaiverReason == "" {
				f.WaiverReason = p.Notes
			}
			break
		}
	}

	// Nothing further is owed on a terminal write-off.
	if f.Status == domain.StatusWaived || f.Status == domain.StatusCancelled {
		f.PendingAmount = decimal.Zero
	}

	return f
}

func (n *Normalizer) normalizePayments(raw domain.RawRecord, fineID, userID string) []domain.Payment {
	val, ok := probe(raw, paymentsPaths)
	if !ok {
		return nil
	}
	items, ok := val.([]any)
	if !ok {
		return nil
	}

	payments := make([]domain.Payment, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		rawPayment := domain.RawRecord(m)

		p := domain.Payment{
			ID:            probeString(rawPayment, paymentIDPaths),
			FineID:        probeString(rawPayment, paymentFineIDPaths),
			UserID:        probeString(rawPayment, paymentUserIDPaths),
			Method:        domain.PaymentMethod(probeString(rawPayment, paymentMethodPaths)),
			Status:        domain.PaymentStatus(probeString(rawPayment, paymentStatusPaths)),
			TransactionID: probeString(rawPayment, paymentTxnPaths),
			ReceiptNumber: probeString(rawPayment, paymentReceiptPaths),
			Notes:         probeString(rawPayment, paymentNotesPaths),
			ProcessedBy:   probeString(rawPayment, paymentByPaths),
		}
		if p.FineID == "" {
			p.FineID = fineID
		}
		if p.UserID == "" {
			p.UserID = userID
		}
		if amount, ok := probeDecimal(rawPayment, paymentAmountPaths); ok {
			p.Amount = amount
		}
		if date, ok := probeTime(rawPayment, paymentDatePaths); ok {
			p.PaymentDate = date
		} else {
			p.PaymentDate = n.now().UTC()
		}
		if p.Status == "" {
			p.Status = domain.PaymentCompleted
		}
		payments = append(payments, p)
	}
	return payments
}

// settledAmount sums the completed, settleable payments against a fine.
func settledAmount(payments []domain.Payment) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		if p.Status == domain.PaymentCompleted && p.Method.Settleable() {
			total = total.Add(p.Amount)
		}
	}
	return total
}

// pendingFor derives the outstanding amount: max(0, fine - paid).
func pendingFor(fine, paid decimal.Decimal) decimal.Decimal {
	pending := fine.Sub(paid)
	if pending.IsNegative() {
		return decimal.Zero
	}
	return pending
}

// probe returns the first defined value among the dotted paths.
func probe(raw domain.RawRecord, paths []string) (any, bool) {
	for _, path := range paths {
		if v, ok := lookupPath(raw, path); ok {
			return v, true
		}
	}
	return nil, false
}

// lookupPath walks a dotted path through nested JSON objects.
func lookupPath(raw domain.RawRecord, path string) (any, bool) {
	var cur any = map[string]any(raw)
	for _, part := range strings.Split(path, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		v, ok := m[part]
		if !ok || v == nil {
			return nil, false
		}
		cur = v
	}
	return cur, true
}

func probeString(raw domain.RawRecord, paths []string) string {
	for _, path := range paths {
		v, ok := lookupPath(raw, path)
		if !ok {
			continue
		}
		switch s := v.(type) {
		case string:
			if strings.TrimSpace(s) != "" {
				return s
			}
		case float64:
			// JSON numbers used as identifiers decode as float64.
			return strconv.FormatFloat(s, 'f', -1, 64)
		case int:
			return strconv.Itoa(s)
		}
	}
	return ""
}

func probeDecimal(raw domain.RawRecord, paths []string) (decimal.Decimal, bool) {
	for _, path := range paths {
		v, ok := lookupPath(raw, path)
		if !ok {
			continue
		}
		switch num := v.(type) {
		case float64:
			return decimal.NewFromFloat(num), true
		case int:
			return decimal.NewFromInt(int64(num)), true
		case string:
			if d, err := decimal.NewFromString(strings.TrimSpace(num)); err == nil {
				return d, true
			}
		case decimal.Decimal:
			return num, true
		}
	}
	return decimal.Zero, false
}

func probeInt(raw domain.RawRecord, paths []string) (int, bool) {
	for _, path := range paths {
		v, ok := lookupPath(raw, path)
		if !ok {
			continue
		}
		switch num := v.(type) {
		case float64:
			return int(num), true
		case int:
			return num, true
		case string:
			if i, err := strconv.Atoi(strings.TrimSpace(num)); err == nil {
				return i, true
			}
		}
	}
	return 0, false
}

func probeBool(raw domain.RawRecord, paths []string) (bool, bool) {
	for _, path := range paths {
		v, ok := lookupPath(raw, path)
		if !ok {
			continue
		}
		switch b := v.(type) {
		case bool:
			return b, true
		case string:
			if parsed, err := strconv.ParseBool(strings.ToLower(b)); err == nil {
				return parsed, true
			}
		}
	}
	return false, false
}

// timeLayouts are the formats the endpoints are known to emit.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func probeTime(raw domain.RawRecord, paths []string) (time.Time, bool) {
	for _, path := range paths {
		v, ok := lookupPath(raw, path)
		if !ok {
			continue
		}
		switch t := v.(type) {
		case time.Time:
			return t.UTC(), true
		case string:
			for _, layout := range timeLayouts {
				if parsed, err := time.Parse(layout, t); err == nil {
					return parsed.UTC(), true
				}
			}
		}
	}
	return time.Time{}, false
}
