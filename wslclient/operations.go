// Copyright (c) 2025 Fishbits.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package wslclient

import (
	"context"
	"net/url"
	"strconv"
)

// Upstream service endpoints ({service}.asmx)
const (
	legislationService        = "LegislationService"
	committeeService          = "CommitteeService"
	committeeMeetingService   = "CommitteeMeetingService"
	amendmentService          = "AmendmentService"
	sponsorService            = "SponsorService"
	sessionLawService         = "SessionLawService"
	legislativeDocumentService = "LegislativeDocumentService"
)

// Legislation

func (c *Client) GetLegislation(ctx context.Context, biennium, billNumber string) []Record {
	return c.list(ctx, legislationService, "GetLegislation", "array_of_legislation",
		url.Values{"biennium": {biennium}, "billNumber": {billNumber}})
}

func (c *Client) GetLegislationByYear(ctx context.Context, year string) []Record {
	return c.list(ctx, legislationService, "GetLegislationByYear", "array_of_legislation_info",
		url.Values{"year": {year}})
}

func (c *Client) GetPrefiledLegislation(ctx context.Context) []Record {
	return c.list(ctx, legislationService, "GetPrefiledLegislation", "array_of_legislation", nil)
}

func (c *Client) GetLegislationTypes(ctx context.Context) []Record {
	return c.list(ctx, legislationService, "GetLegislationTypes", "array_of_legislation_type", nil)
}

func (c *Client) GetRollCalls(ctx context.Context, biennium string, billNumber int) []Record {
	return c.list(ctx, legislationService, "GetRollCalls", "array_of_roll_call",
		url.Values{"biennium": {biennium}, "billNumber": {strconv.Itoa(billNumber)}})
}

func (c *Client) GetHearings(ctx context.Context, biennium string, billNumber int) []Record {
	return c.list(ctx, legislationService, "GetHearings", "array_of_committee_meeting",
		url.Values{"biennium": {biennium}, "billNumber": {strconv.Itoa(billNumber)}})
}

func (c *Client) GetRcwCitesAffected(ctx context.Context, biennium, billID string) []Record {
	return c.list(ctx, legislationService, "GetRcwCitesAffected", "array_of_rcw_cite",
		url.Values{"biennium": {biennium}, "billId": {billID}})
}

func (c *Client) GetAmendmentsForYear(ctx context.Context, year, billNumber int) []Record {
	return c.list(ctx, legislationService, "GetAmendmentsForYear", "array_of_amendment",
		url.Values{"year": {strconv.Itoa(year)}, "billNumber": {strconv.Itoa(billNumber)}})
}

func (c *Client) GetAmendmentsForBiennium(ctx context.Context, biennium string, billNumber int) []Record {
	return c.list(ctx, legislationService, "GetAmendmentsForBiennium", "array_of_amendment",
		url.Values{"biennium": {biennium}, "billNumber": {strconv.Itoa(billNumber)}})
}

func (c *Client) GetLegislationPassedHouse(ctx context.Context, biennium string) []Record {
	return c.list(ctx, legislationService, "GetLegislationPassedHouse", "array_of_legislation_info",
		url.Values{"biennium": {biennium}})
}

func (c *Client) GetLegislationPassedSenate(ctx context.Context, biennium string) []Record {
	return c.list(ctx, legislationService, "GetLegislationPassedSenate", "array_of_legislation_info",
		url.Values{"biennium": {biennium}})
}

func (c *Client) GetLegislationPassedLegislature(ctx context.Context, biennium string) []Record {
	return c.list(ctx, legislationService, "GetLegislationPassedLegislature", "array_of_legislation_info",
		url.Values{"biennium": {biennium}})
}

// Committees

func (c *Client) GetCommittees(ctx context.Context, biennium string) []Record {
	return c.list(ctx, committeeService, "GetCommittees", "array_of_committee",
		url.Values{"biennium": {biennium}})
}

func (c *Client) GetActiveCommittees(ctx context.Context) []Record {
	return c.list(ctx, committeeService, "GetActiveCommittees", "array_of_committee", nil)
}

func (c *Client) GetHouseCommittees(ctx context.Context, biennium string) []Record {
	return c.list(ctx, committeeService, "GetHouseCommittees", "array_of_committee",
		url.Values{"biennium": {biennium}})
}

func (c *Client) GetSenateCommittees(ctx context.Context, biennium string) []Record {
	return c.list(ctx, committeeService, "GetSenateCommittees", "array_of_committee",
		url.Values{"biennium": {biennium}})
}

func (c *Client) GetCommitteeMembers(ctx context.Context, biennium, agency, committeeName string) []Record {
	return c.list(ctx, committeeService, "GetCommitteeMembers", "array_of_member",
		url.Values{"biennium": {biennium}, "agency": {agency}, "committeeName": {committeeName}})
}

func (c *Client) GetActiveCommitteeMembers(ctx context.Context, agency, committeeName string) []Record {
	return c.list(ctx, committeeService, "GetActiveCommitteeMembers", "array_of_member",
		url.Values{"agency": {agency}, "committeeName": {committeeName}})
}

func (c *Client) GetCommitteeMeetings(ctx context.Context, beginDate, endDate string) []Record {
	return c.list(ctx, committeeMeetingService, "GetCommitteeMeetings", "array_of_committee_meeting",
		url.Values{"beginDate": {beginDate}, "endDate": {endDate}})
}

// Amendments

func (c *Client) GetAmendments(ctx context.Context, year string) []Record {
	return c.list(ctx, amendmentService, "GetAmendments", "array_of_amendment",
		url.Values{"year": {year}})
}

// Sponsors

func (c *Client) GetSponsors(ctx context.Context, biennium string) []Record {
	return c.list(ctx, sponsorService, "GetSponsors", "array_of_member",
		url.Values{"biennium": {biennium}})
}

func (c *Client) GetHouseSponsors(ctx context.Context, biennium string) []Record {
	return c.list(ctx, sponsorService, "GetHouseSponsors", "array_of_member",
		url.Values{"biennium": {biennium}})
}

func (c *Client) GetSenateSponsors(ctx context.Context, biennium string) []Record {
	return c.list(ctx, sponsorService, "GetSenateSponsors", "array_of_member",
		url.Values{"biennium": {biennium}})
}

// Session laws

func (c *Client) GetSessionLawByBill(ctx context.Context, biennium, billNumber string) Record {
	return c.one(ctx, sessionLawService, "GetSessionLawByBill", "session_law",
		url.Values{"biennium": {biennium}, "billNumber": {billNumber}})
}

func (c *Client) GetChapterNumbersByYear(ctx context.Context, year int) []Record {
	return c.list(ctx, sessionLawService, "GetChapterNumbersByYear", "array_of_session_law",
		url.Values{"year": {strconv.Itoa(year)}})
}

// Documents

func (c *Client) GetDocuments(ctx context.Context, biennium, namedLike string) []Record {
	return c.list(ctx, legislativeDocumentService, "GetDocuments", "array_of_legislative_document",
		url.Values{"biennium": {biennium}, "namedLike": {namedLike}})
}

func (c *Client) GetDocumentClasses(ctx context.Context, biennium string) []Record {
	return c.list(ctx, legislativeDocumentService, "GetDocumentClasses", "array_of_document_class",
		url.Values{"biennium": {biennium}})
}
