package postgres

import (
	"testing"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/riskibarqy/props-dashboard/internal/domain/prop"
)

func TestDecodeChangeEventUpdate(t *testing.T) {
	t.Parallel()

	payload := `{
		"action": "UPDATE",
		"new": {
			"id": "ud-123",
			"source": "underdog",
			"sport_id": "NBA",
			"stat_type": "Points",
			"player_name": "LeBron James",
			"team_abbr": "LAL",
			"game_display": "LAL @ BOS",
			"line": 25.5,
			"over_price": "-110",
			"under_price": "-115",
			"status": "active",
			"updated_at": "2026-03-01T19:00:00.123456+00:00"
		},
		"old": {
			"id": "ud-123",
			"source": "underdog",
			"sport_id": "NBA",
			"stat_type": "Points",
			"status": "active",
			"updated_at": "2026-03-01T18:59:00+00:00"
		}
	}`

	event, err := decodeChangeEvent([]byte(payload))
	if err != nil {
		t.Fatalf("decodeChangeEvent error: %v", err)
	}
	if event.Type != prop.EventUpdate {
		t.Fatalf("expected UPDATE, got %s", event.Type)
	}
	if event.New == nil || event.Old == nil {
		t.Fatal("expected both new and old rows")
	}
	if event.New.ID != "ud-123" || event.New.Source != prop.SourceUnderdog {
		t.Fatalf("unexpected new row: %+v", event.New)
	}
	if event.New.Line == nil || *event.New.Line != 25.5 {
		t.Fatalf("unexpected line: %v", event.New.Line)
	}

	want := time.Date(2026, 3, 1, 19, 0, 0, 123456000, time.UTC)
	if !event.New.UpdatedAt.Equal(want) {
		t.Fatalf("unexpected updated_at: %s", event.New.UpdatedAt)
	}
}

func TestDecodeChangeEventDeleteWithoutNewRow(t *testing.T) {
	t.Parallel()

	payload := `{"action": "DELETE", "old": {"id": "ud-123"}}`

	event, err := decodeChangeEvent([]byte(payload))
	if err != nil {
		t.Fatalf("decodeChangeEvent error: %v", err)
	}
	if event.Type != prop.EventDelete {
		t.Fatalf("expected DELETE, got %s", event.Type)
	}
	if event.New != nil {
		t.Fatal("expected nil new row on delete")
	}
	if event.Old == nil || event.Old.ID != "ud-123" {
		t.Fatalf("unexpected old row: %+v", event.Old)
	}
}

func TestDecodeChangeEventMalformed(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		payload string
	}{
		{name: "not json", payload: `{"action": "INSERT"`},
		{name: "unknown action", payload: `{"action": "TRUNCATE"}`},
		{name: "bad timestamp", payload: `{"action": "INSERT", "new": {"id": "x", "updated_at": "yesterday"}}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := decodeChangeEvent([]byte(tc.payload))
			if err == nil {
				t.Fatal("expected decode error")
			}
			if !errors.Is(err, ErrMalformedPayload) {
				t.Fatalf("expected malformed payload marker, got %v", err)
			}
		})
	}
}
