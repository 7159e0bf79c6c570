package domain

import "slices"

// Clone returns a deep copy so store state can never alias a snapshot.
func (m MeetingRecord) Clone() MeetingRecord {
	m.ActionItems = slices.Clone(m.ActionItems)
	return m
}

// Clone returns a deep copy including the task list.
func (s ScheduleRecord) Clone() ScheduleRecord {
	s.Tasks = slices.Clone(s.Tasks)
	return s
}

// Clone returns a deep copy including the item list.
func (b BudgetRecord) Clone() BudgetRecord {
	b.Items = slices.Clone(b.Items)
	return b
}

// Clone returns a deep copy including the risk list.
func (r RiskRecord) Clone() RiskRecord {
	r.Risks = slices.Clone(r.Risks)
	return r
}

// Clone returns a deep copy including the tag list.
func (c TaskCardRecord) Clone() TaskCardRecord {
	c.Tags = slices.Clone(c.Tags)
	return c
}
