// Copyright (c) 2025 Fishbits.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tools

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/fishbits/wa-leg-mcp/models"
	"github.com/fishbits/wa-leg-mcp/testutil"
	"github.com/fishbits/wa-leg-mcp/wslclient"
)

func newRollCallTool(fake *fakeUpstream) *RollCallTool {
	t := NewRollCallTool(fake)
	t.currentBiennium = func() string { return "2023-24" }
	return t
}

func sampleRecord() wslclient.Record {
	return wslclient.Record{
		"sequence_number": 1,
		"vote_date":       "2023-03-15",
		"motion":          "Final Passage",
		"yea_count":       65,
		"nay_count":       33,
		"absent_count":    0,
		"excused_count":   0,
		"votes": map[string]any{
			"array_of_vote": []any{
				map[string]any{"name": "Smith, John", "vote_value": "Yea", "district": 1, "party": "D"},
			},
		},
	}
}

func TestGetRollCalls_EndToEnd(t *testing.T) {
	var gotBiennium string
	var gotBillNumber int
	fake := &fakeUpstream{
		rollCalls: func(biennium string, billNumber int) []wslclient.Record {
			gotBiennium = biennium
			gotBillNumber = billNumber
			return []wslclient.Record{sampleRecord()}
		},
	}

	env := newRollCallTool(fake).GetRollCalls(context.Background(), "HB 1234", "2023-24")
	testutil.CheckEnvelope(t, env)

	if gotBiennium != "2023-24" || gotBillNumber != 1234 {
		t.Errorf("upstream called with (%q, %d), want (2023-24, 1234)", gotBiennium, gotBillNumber)
	}

	if !env.Success {
		t.Fatalf("expected success, got error %q", env.Error)
	}

	data, ok := env.Data.(models.RollCallData)
	if !ok {
		t.Fatalf("expected RollCallData, got %T", env.Data)
	}
	if data.BillNumber != "HB 1234" {
		t.Errorf("bill_number should echo the original input, got %q", data.BillNumber)
	}
	if data.Biennium != "2023-24" {
		t.Errorf("unexpected biennium %q", data.Biennium)
	}

	want := []models.RollCall{{
		SequenceNumber: 1,
		Date:           "2023-03-15",
		Description:    "Final Passage",
		YeaVotes:       65,
		NayVotes:       33,
		AbsentVotes:    0,
		ExcusedVotes:   0,
		Votes: []models.Vote{{
			LegislatorName: "Smith, John",
			Vote:           "Yea",
			District:       "1",
			Party:          "D",
		}},
	}}
	if !reflect.DeepEqual(data.RollCalls, want) {
		t.Errorf("roll call mismatch:\n got %#v\nwant %#v", data.RollCalls, want)
	}

	if env.Metadata[models.MetaAPICall] != "GetRollCalls" {
		t.Errorf("unexpected api_call %v", env.Metadata[models.MetaAPICall])
	}
	if env.Metadata[models.MetaCount] != 1 {
		t.Errorf("unexpected count %v", env.Metadata[models.MetaCount])
	}
}

func TestGetRollCalls_BillNumberFormats(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		{"HB 1234", 1234},
		{"SB 5678", 5678},
		{"1234", 1234},
		{"5678", 5678},
	}

	for _, tc := range cases {
		var gotBillNumber int
		fake := &fakeUpstream{
			rollCalls: func(_ string, billNumber int) []wslclient.Record {
				gotBillNumber = billNumber
				return nil
			},
		}

		env := newRollCallTool(fake).GetRollCalls(context.Background(), tc.input, "")
		if !env.Success {
			t.Errorf("GetRollCalls(%q) failed: %s", tc.input, env.Error)
		}
		if gotBillNumber != tc.want {
			t.Errorf("GetRollCalls(%q) queried bill %d, want %d", tc.input, gotBillNumber, tc.want)
		}
	}
}

func TestGetRollCalls_DefaultBiennium(t *testing.T) {
	var gotBiennium string
	fake := &fakeUpstream{
		rollCalls: func(biennium string, _ int) []wslclient.Record {
			gotBiennium = biennium
			return nil
		},
	}

	tool := newRollCallTool(fake)
	env := tool.GetRollCalls(context.Background(), "HB 1234", "")

	if gotBiennium != "2023-24" {
		t.Errorf("expected resolved default biennium, got %q", gotBiennium)
	}
	data := env.Data.(models.RollCallData)
	if data.Biennium != "2023-24" {
		t.Errorf("envelope should report the resolved biennium, got %q", data.Biennium)
	}
}

func TestGetRollCalls_ExplicitBiennium(t *testing.T) {
	var gotBiennium string
	fake := &fakeUpstream{
		rollCalls: func(biennium string, _ int) []wslclient.Record {
			gotBiennium = biennium
			return nil
		},
	}

	env := newRollCallTool(fake).GetRollCalls(context.Background(), "HB 1234", "2021-22")
	if gotBiennium != "2021-22" {
		t.Errorf("explicit biennium should win, got %q", gotBiennium)
	}
	if env.Data.(models.RollCallData).Biennium != "2021-22" {
		t.Errorf("envelope biennium mismatch")
	}
}

func TestGetRollCalls_Empty(t *testing.T) {
	for name, records := range map[string][]wslclient.Record{
		"nil":   nil,
		"empty": {},
	} {
		t.Run(name, func(t *testing.T) {
			fake := &fakeUpstream{
				rollCalls: func(string, int) []wslclient.Record { return records },
			}

			env := newRollCallTool(fake).GetRollCalls(context.Background(), "HB 1234", "2023-24")
			testutil.CheckEnvelope(t, env)

			if !env.Success {
				t.Fatalf("empty result must be success, got error %q", env.Error)
			}
			data := env.Data.(models.RollCallData)
			if data.RollCalls == nil || len(data.RollCalls) != 0 {
				t.Errorf("expected empty roll_calls slice, got %#v", data.RollCalls)
			}
			msg, _ := env.Metadata[models.MetaMessage].(string)
			if !strings.Contains(msg, "No roll calls found") {
				t.Errorf("expected explanatory message, got %q", msg)
			}
			if !strings.Contains(msg, "HB 1234") || !strings.Contains(msg, "2023-24") {
				t.Errorf("message should name the bill and biennium, got %q", msg)
			}
		})
	}
}

func TestGetRollCalls_InvalidFormat(t *testing.T) {
	env := newRollCallTool(&fakeUpstream{}).GetRollCalls(context.Background(), "INVALID", "2023-24")
	testutil.CheckEnvelope(t, env)

	if env.Success {
		t.Fatal("expected validation failure")
	}
	if env.ErrorType != models.ErrorTypeValidation {
		t.Errorf("expected validation error type, got %q", env.ErrorType)
	}
	if !strings.Contains(env.Error, "Invalid bill number format") {
		t.Errorf("unexpected error text %q", env.Error)
	}
	if !strings.Contains(env.Error, "INVALID") {
		t.Errorf("error should echo the input, got %q", env.Error)
	}
	if env.Metadata[models.MetaToolName] != "get_roll_calls" {
		t.Errorf("expected tool_name metadata, got %v", env.Metadata[models.MetaToolName])
	}
	if env.Metadata[models.MetaAPICall] != "GetRollCalls" {
		t.Errorf("expected api_call metadata, got %v", env.Metadata[models.MetaAPICall])
	}
}

func TestGetRollCalls_NumericOverflow(t *testing.T) {
	env := newRollCallTool(&fakeUpstream{}).GetRollCalls(context.Background(), "99999999999999999999999", "2023-24")

	if env.Success {
		t.Fatal("expected validation failure")
	}
	if env.ErrorType != models.ErrorTypeValidation {
		t.Errorf("expected validation error type, got %q", env.ErrorType)
	}
	if !strings.Contains(env.Error, "Must be a valid number") {
		t.Errorf("unexpected error text %q", env.Error)
	}
}

func TestGetRollCalls_SortsBySequenceNumber(t *testing.T) {
	fake := &fakeUpstream{
		rollCalls: func(string, int) []wslclient.Record {
			return []wslclient.Record{
				{"sequence_number": 3, "motion": "Third Reading"},
				{"sequence_number": 1, "motion": "First Reading"},
				{"sequence_number": 2, "motion": "Second Reading"},
			}
		},
	}

	env := newRollCallTool(fake).GetRollCalls(context.Background(), "1234", "2023-24")
	data := env.Data.(models.RollCallData)

	var got []int
	for _, rc := range data.RollCalls {
		got = append(got, rc.SequenceNumber)
	}
	if !reflect.DeepEqual(got, []int{1, 2, 3}) {
		t.Errorf("expected ascending order, got %v", got)
	}
}

func TestGetRollCalls_SortIsStable(t *testing.T) {
	fake := &fakeUpstream{
		rollCalls: func(string, int) []wslclient.Record {
			return []wslclient.Record{
				{"sequence_number": 2, "motion": "first of the twos"},
				{"sequence_number": 1, "motion": "the one"},
				{"sequence_number": 2, "motion": "second of the twos"},
			}
		},
	}

	env := newRollCallTool(fake).GetRollCalls(context.Background(), "1234", "2023-24")
	data := env.Data.(models.RollCallData)

	var got []string
	for _, rc := range data.RollCalls {
		got = append(got, rc.Description)
	}
	want := []string{"the one", "first of the twos", "second of the twos"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("equal sequence numbers must keep input order:\n got %v\nwant %v", got, want)
	}
}

func TestGetRollCalls_VoteShapeTolerance(t *testing.T) {
	wrapped := sampleRecord()

	bare := sampleRecord()
	bare["votes"] = []any{
		map[string]any{"name": "Smith, John", "vote_value": "Yea", "district": 1, "party": "D"},
	}

	fetch := func(rec wslclient.Record) []models.RollCall {
		fake := &fakeUpstream{
			rollCalls: func(string, int) []wslclient.Record { return []wslclient.Record{rec} },
		}
		env := newRollCallTool(fake).GetRollCalls(context.Background(), "HB 1234", "2023-24")
		if !env.Success {
			t.Fatalf("unexpected failure: %s", env.Error)
		}
		return env.Data.(models.RollCallData).RollCalls
	}

	if !reflect.DeepEqual(fetch(wrapped), fetch(bare)) {
		t.Error("wrapped and bare vote payloads must normalize identically")
	}
}

func TestGetRollCalls_UnknownVoteShape(t *testing.T) {
	rec := sampleRecord()
	rec["votes"] = "not a payload at all"

	fake := &fakeUpstream{
		rollCalls: func(string, int) []wslclient.Record { return []wslclient.Record{rec} },
	}

	env := newRollCallTool(fake).GetRollCalls(context.Background(), "HB 1234", "2023-24")
	if !env.Success {
		t.Fatalf("unknown vote shape defaults to no votes, got error %q", env.Error)
	}
	rcs := env.Data.(models.RollCallData).RollCalls
	if len(rcs) != 1 || len(rcs[0].Votes) != 0 {
		t.Errorf("expected one roll call with zero votes, got %#v", rcs)
	}
}

func TestGetRollCalls_MissingFieldsDefault(t *testing.T) {
	fake := &fakeUpstream{
		rollCalls: func(string, int) []wslclient.Record {
			return []wslclient.Record{
				{"votes": map[string]any{"array_of_vote": []any{map[string]any{}}}},
			}
		},
	}

	env := newRollCallTool(fake).GetRollCalls(context.Background(), "HB 1234", "2023-24")
	rc := env.Data.(models.RollCallData).RollCalls[0]

	if rc.SequenceNumber != 0 || rc.Date != "" || rc.Description != "" {
		t.Errorf("missing record fields should default, got %#v", rc)
	}
	if rc.YeaVotes != 0 || rc.NayVotes != 0 || rc.AbsentVotes != 0 || rc.ExcusedVotes != 0 {
		t.Errorf("missing tallies should default to zero, got %#v", rc)
	}

	vote := rc.Votes[0]
	if vote.LegislatorName != "" || vote.Vote != "" || vote.District != "" || vote.Party != "" {
		t.Errorf("missing vote fields should default to empty strings, got %#v", vote)
	}
}

func TestGetRollCalls_MalformedVoteEntry(t *testing.T) {
	rec := sampleRecord()
	rec["votes"] = map[string]any{"array_of_vote": []any{"bogus entry"}}

	fake := &fakeUpstream{
		rollCalls: func(string, int) []wslclient.Record { return []wslclient.Record{rec} },
	}

	env := newRollCallTool(fake).GetRollCalls(context.Background(), "HB 1234", "2023-24")
	testutil.CheckEnvelope(t, env)

	if env.Success {
		t.Fatal("malformed vote entry must fail")
	}
	if env.ErrorType != models.ErrorTypeUnexpected {
		t.Errorf("expected unexpected error type, got %q", env.ErrorType)
	}
	if !strings.Contains(env.Error, "Failed to fetch roll calls") {
		t.Errorf("unexpected error text %q", env.Error)
	}
}

func TestRollCallHandle(t *testing.T) {
	fake := &fakeUpstream{
		rollCalls: func(string, int) []wslclient.Record {
			return []wslclient.Record{sampleRecord()}
		},
	}
	tool := newRollCallTool(fake)

	result, err := tool.Handle(context.Background(),
		testutil.NewRequest("get_roll_calls", map[string]any{"bill_number": "HB 1234", "biennium": "2023-24"}))
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}

	env := testutil.DecodeEnvelope(t, result)
	testutil.CheckEnvelope(t, env)
	if !env.Success {
		t.Fatalf("expected success, got %q", env.Error)
	}
	if env.Metadata[models.MetaAPICall] != "GetRollCalls" {
		t.Errorf("unexpected api_call %v", env.Metadata[models.MetaAPICall])
	}
}

func TestRollCallHandle_MissingBillNumber(t *testing.T) {
	tool := newRollCallTool(&fakeUpstream{})

	result, err := tool.Handle(context.Background(),
		testutil.NewRequest("get_roll_calls", map[string]any{}))
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if !result.IsError {
		t.Error("missing required argument should produce an error result")
	}
}
