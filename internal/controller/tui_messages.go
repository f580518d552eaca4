package controller

import (
	m "github.com/mouse-blink/opcheck/internal/model"
)

// Message types.
type casesMsg struct {
	cases []m.Case
}

type resultMsg struct {
	result m.Result
}

type mutationMsg struct {
	report m.MutationReport
}

type summaryMsg struct {
	text   string
	passed int
	total  int
}

// Status labels shown in the results list.
const (
	statusPassed   = "passed"
	statusFailed   = "FAILED"
	statusKilled   = "killed"
	statusSurvived = "SURVIVED"
	statusListed   = "listed"
)

// List item types.
type resultItem struct {
	index  int
	expr   string
	label  string
	status string
	detail string
}

func (r resultItem) FilterValue() string {
	return r.label + " " + r.expr + " " + r.status
}

func itemFromCase(index int, c m.Case) resultItem {
	return resultItem{
		index:  index + 1,
		expr:   c.Expression(),
		label:  c.Label,
		status: statusListed,
		detail: "expected " + c.Expected.String(),
	}
}

func itemFromResult(result m.Result) resultItem {
	item := resultItem{
		index:  result.Index + 1,
		expr:   result.Case.Expression(),
		label:  result.Case.Label,
		status: statusPassed,
		detail: "= " + result.Computed.String(),
	}

	switch {
	case result.Err != nil:
		item.status = statusFailed
		item.detail = result.Err.Error()
	case !result.Passed:
		item.status = statusFailed
		item.detail = result.Computed.String() + " != " + result.Case.Expected.String()
	}

	return item
}

func itemFromMutation(report m.MutationReport) resultItem {
	item := resultItem{
		index:  report.Mutation.ID + 1,
		expr:   report.Mutation.Expression(),
		label:  report.Mutation.Case.Label,
		status: statusKilled,
		detail: "= " + report.Computed.String(),
	}

	if report.Err != nil {
		item.detail = report.Err.Error()
	}

	if report.Status == m.Survived {
		item.status = statusSurvived
	}

	return item
}
