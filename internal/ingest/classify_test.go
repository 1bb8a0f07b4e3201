package ingest

import (
	"testing"

	"mlb-scores-service/internal/domain"
)

func TestClassifyPrecedence(t *testing.T) {
	cases := []struct {
		name  string
		flags domain.GameFlags
		want  domain.Classification
	}{
		{"live", domain.GameFlags{Live: true}, domain.ClassLive},
		{"warmup counts as live", domain.GameFlags{Warmup: true}, domain.ClassLive},
		{"live wins over postponed", domain.GameFlags{Live: true, Postponed: true}, domain.ClassLive},
		{"live wins over final", domain.GameFlags{Live: true, Final: true}, domain.ClassLive},
		{"postponed", domain.GameFlags{Postponed: true}, domain.ClassPostponed},
		{"cancelled counts as postponed", domain.GameFlags{Cancelled: true}, domain.ClassPostponed},
		{"suspended counts as postponed", domain.GameFlags{Suspended: true}, domain.ClassPostponed},
		{"postponed with delay is delayed", domain.GameFlags{Postponed: true, Delayed: true}, domain.ClassDelayed},
		{"delayed", domain.GameFlags{Delayed: true}, domain.ClassDelayed},
		{"in-game delay", domain.GameFlags{InGameDelay: true}, domain.ClassDelayed},
		{"delayed wins over final", domain.GameFlags{Delayed: true, Final: true}, domain.ClassDelayed},
		{"final", domain.GameFlags{Final: true}, domain.ClassFinal},
		{"no flags", domain.GameFlags{}, domain.ClassScheduled},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.flags); got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}
