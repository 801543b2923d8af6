package constants

// InboxState is the internal lifecycle of an inbox item as it moves through
// OCR staging. Distinct from the canonical Status view layered on top.
type InboxState string

const (
	InboxStateCreated   InboxState = "CREATED"   // uploaded, waiting for OCR
	InboxStateProcessed InboxState = "PROCESSED" // OCR text staged, waiting for review
	InboxStateFailed    InboxState = "FAILED"    // OCR failed, retryable
	InboxStateApproved  InboxState = "APPROVED"  // converted into a ledger record, terminal
)

// LedgerState is the lifecycle of a durable bill/receipt record.
type LedgerState string

const (
	LedgerStateCreated LedgerState = "CREATED"
	LedgerStateRemoved LedgerState = "REMOVED" // terminal
)

// ProviderState is the visibility of a service provider catalog entry.
type ProviderState string

const (
	ProviderStateActive ProviderState = "ACTIVE"
	ProviderStateHidden ProviderState = "HIDDEN"
)

// Recurrence is how often a provider typically bills.
type Recurrence string

const (
	RecurrenceYearly     Recurrence = "YEARLY"
	RecurrenceMonthly    Recurrence = "MONTHLY"
	RecurrenceWeekly     Recurrence = "WEEKLY"
	RecurrenceNotRegular Recurrence = "NOT_REGULAR"
)

var AllRecurrences = []string{
	string(RecurrenceYearly),
	string(RecurrenceMonthly),
	string(RecurrenceWeekly),
	string(RecurrenceNotRegular),
}

// LinkedEntityType discriminates the ledger record an approved inbox item
// produced. Paired with the linked entity id so a BILL id can never be
// read back as a receipt.
type LinkedEntityType string

const (
	LinkedEntityBill    LinkedEntityType = "BILL"
	LinkedEntityReceipt LinkedEntityType = "RECEIPT"
)

var AllLinkedEntityTypes = []string{
	string(LinkedEntityBill),
	string(LinkedEntityReceipt),
}

var AllInboxStates = []string{
	string(InboxStateCreated),
	string(InboxStateProcessed),
	string(InboxStateFailed),
	string(InboxStateApproved),
}

var AllLedgerStates = []string{
	string(LedgerStateCreated),
	string(LedgerStateRemoved),
}

var AllProviderStates = []string{
	string(ProviderStateActive),
	string(ProviderStateHidden),
}
