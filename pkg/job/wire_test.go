package job

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalCountCoercion(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{"number", `{"total_count":10}`, 10},
		{"numeric string", `{"total_count":"10"}`, 10},
		{"non-numeric string", `{"total_count":"abc"}`, 0},
		{"absent", `{}`, 0},
		{"null", `{"total_count":null}`, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var resp jobListResponse
			require.NoError(t, json.Unmarshal([]byte(tt.body), &resp))
			assert.Equal(t, tt.want, int(resp.TotalCount))
		})
	}
}

func TestMetadataCodec(t *testing.T) {
	meta := Metadata{"team": "pastry", "openings": float64(2)}
	raw := stringifyMetadata(meta)
	assert.Equal(t, meta, ParseMetadata(raw))

	assert.Equal(t, "", stringifyMetadata(nil), "nil metadata is omitted, not sent as {}")
	assert.Equal(t, Metadata{}, ParseMetadata(""))
	assert.Equal(t, Metadata{}, ParseMetadata("not json"))
	assert.Equal(t, Metadata{}, ParseMetadata("null"))

	_, err := ParseMetadataStrict("not json")
	assert.Error(t, err)
	strict, err := ParseMetadataStrict(`{"a":1}`)
	require.NoError(t, err)
	assert.Equal(t, Metadata{"a": float64(1)}, strict)
}

func TestJobStatusWireMapping(t *testing.T) {
	assert.Equal(t, "JOB_STATUS_PUBLISHED", StatusPublished.Wire())
	assert.Equal(t, StatusClosed, JobStatusFromWire("JOB_STATUS_CLOSED"))
	// Unrecognized and missing statuses fall back to draft.
	assert.Equal(t, StatusDraft, JobStatusFromWire("JOB_STATUS_ARCHIVED"))
	assert.Equal(t, StatusDraft, JobStatusFromWire(""))

	_, err := ParseJobStatusWire("JOB_STATUS_ARCHIVED")
	assert.Error(t, err)
}

func TestApplicationStatusWireMapping(t *testing.T) {
	assert.Equal(t, "APPLICATION_STATUS_ACCEPTED", ApplicationAccepted.Wire())
	assert.Equal(t, ApplicationRejected, ApplicationStatusFromWire("APPLICATION_STATUS_REJECTED"))
	// Unrecognized and missing statuses fall back to pending.
	assert.Equal(t, ApplicationPending, ApplicationStatusFromWire("APPLICATION_STATUS_WITHDRAWN"))
	assert.Equal(t, ApplicationPending, ApplicationStatusFromWire(""))

	_, err := ParseApplicationStatusWire("")
	assert.Error(t, err)
}

func TestFromWireJobDefaults(t *testing.T) {
	var wire wireJob
	require.NoError(t, json.Unmarshal([]byte(`{
		"id":"j1",
		"restaurant_id":"r1",
		"title":"Line cook",
		"description":"desc",
		"status":"JOB_STATUS_MYSTERY",
		"metadata_json":"{broken"
	}`), &wire))

	got := fromWireJob(wire)
	assert.Equal(t, StatusDraft, got.Status)
	assert.Equal(t, Metadata{}, got.Metadata)
	assert.Equal(t, []string{}, got.RequiredSkills)
	assert.Empty(t, got.RestaurantName)
}

func TestFromWireApplicationSummaries(t *testing.T) {
	var wire wireApplication
	require.NoError(t, json.Unmarshal([]byte(`{
		"id":"a1",
		"job_id":"j1",
		"chef_profile_id":"c1",
		"status":"APPLICATION_STATUS_ACCEPTED",
		"job":{"id":"j1","title":"Line cook","status":"JOB_STATUS_PUBLISHED","restaurant_name":"Nonna"},
		"chef":{"profile_id":"c1","full_name":"Aiko","location":"Osaka"}
	}`), &wire))

	got := fromWireApplication(wire)
	assert.Equal(t, ApplicationAccepted, got.Status)
	require.NotNil(t, got.Job)
	assert.Equal(t, StatusPublished, got.Job.Status)
	assert.Equal(t, "Nonna", got.Job.RestaurantName)
	require.NotNil(t, got.Chef)
	assert.Equal(t, "Aiko", got.Chef.FullName)

	// Absent summaries stay nil rather than defaulting.
	got = fromWireApplication(wireApplication{ID: "a2", Status: "APPLICATION_STATUS_PENDING"})
	assert.Nil(t, got.Job)
	assert.Nil(t, got.Chef)
}
