package ingest

import "mlb-scores-service/internal/domain"

// Classify resolves a game's flag bundle into a single classification.
// Precedence: live > postponed (only if not also delayed) > delayed > final >
// scheduled. A game carrying several flags never yields more than one class.
func Classify(flags domain.GameFlags) domain.Classification {
	switch {
	case flags.AnyLive():
		return domain.ClassLive
	case flags.AnyPostponed() && !flags.AnyDelayed():
		return domain.ClassPostponed
	case flags.AnyDelayed():
		return domain.ClassDelayed
	case flags.Final:
		return domain.ClassFinal
	default:
		return domain.ClassScheduled
	}
}
