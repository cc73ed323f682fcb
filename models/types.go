package models

// Error type constants
const (
	ErrorTypeValidation = "validation"
	ErrorTypeUnexpected = "unexpected"
)

// Metadata keys
const (
	MetaAPICall  = "api_call"
	MetaToolName = "tool_name"
	MetaMessage  = "message"
	MetaCount    = "count"
)

// Envelope is the uniform response contract returned by every tool.
// Exactly one of Data or Error is set: success implies Data present,
// failure implies a non-empty Error. Metadata is always present and
// always carries at least the api_call identifier.
type Envelope struct {
	Success   bool           `json:"success"`
	Data      any            `json:"data,omitempty"`
	Error     string         `json:"error,omitempty"`
	ErrorType string         `json:"error_type,omitempty"`
	Metadata  map[string]any `json:"metadata"`
}

// Roll call types

type RollCallData struct {
	BillNumber string     `json:"bill_number"`
	Biennium   string     `json:"biennium"`
	RollCalls  []RollCall `json:"roll_calls"`
}

type RollCall struct {
	SequenceNumber int    `json:"sequence_number"`
	Date           string `json:"date"`
	Description    string `json:"description"`
	YeaVotes       int    `json:"yea_votes"`
	NayVotes       int    `json:"nay_votes"`
	AbsentVotes    int    `json:"absent_votes"`
	ExcusedVotes   int    `json:"excused_votes"`
	Votes          []Vote `json:"votes"`
}

type Vote struct {
	LegislatorName string `json:"legislator_name"`
	Vote           string `json:"vote"`
	District       string `json:"district"`
	Party          string `json:"party"`
}

// Pass-through tool payloads

type BillData struct {
	BillNumber string `json:"bill_number"`
	Biennium   string `json:"biennium"`
	Bills      []any  `json:"bills"`
}

type DocumentData struct {
	BillNumber string `json:"bill_number"`
	Biennium   string `json:"biennium"`
	Documents  []any  `json:"documents"`
}

type CommitteeData struct {
	Biennium   string `json:"biennium"`
	Committees []any  `json:"committees"`
}

type MeetingData struct {
	BeginDate string `json:"begin_date"`
	EndDate   string `json:"end_date"`
	Meetings  []any  `json:"meetings"`
}

type AmendmentData struct {
	BillNumber string `json:"bill_number"`
	Year       int    `json:"year"`
	Amendments []any  `json:"amendments"`
}

type SessionLawData struct {
	BillNumber string `json:"bill_number"`
	Biennium   string `json:"biennium"`
	SessionLaw any    `json:"session_law"`
}
