package journal

import "time"

// The duplicate guard prevents accidental double-logging within a short
// window while allowing intentional correction. A proposal either inserts
// immediately or surfaces the most recent in-window record as a conflict
// candidate; the caller then decides between replace and cancel. Cancel
// needs no call — the store was never touched.

// EnergyOutcome is the result of proposing a new energy entry.
// Exactly one of Inserted or Conflict is set.
type EnergyOutcome struct {
	Inserted *EnergyRecord
	Conflict *EnergyRecord
}

// SleepOutcome is the result of proposing a new sleep entry.
// Exactly one of Inserted or Conflict is set.
type SleepOutcome struct {
	Inserted *SleepRecord
	Conflict *SleepRecord
}

// ProposeEnergy validates a new energy entry and either inserts it or
// returns the conflict candidate found within the energy lookback window.
func (j *Journal) ProposeEnergy(req EnergyRequest) (*EnergyOutcome, error) {
	if err := ValidateEnergyRequest(req); err != nil {
		return nil, err
	}

	records, err := j.ListEnergy()
	if err != nil {
		return nil, err
	}
	if idx := conflictCandidate(records, j.cfg.EnergyWindow); idx >= 0 {
		cand := records[idx]
		return &EnergyOutcome{Conflict: &cand}, nil
	}

	rec, err := j.insertEnergy(j.db, req.Rating)
	if err != nil {
		return nil, err
	}
	return &EnergyOutcome{Inserted: rec}, nil
}

// ReplaceEnergy resolves an energy conflict by deleting the candidate and
// inserting the new entry as one logical replacement. The new record gets
// a fresh timestamp at the moment of actual insertion.
func (j *Journal) ReplaceEnergy(candidateID string, req EnergyRequest) (*EnergyRecord, error) {
	if err := ValidateEnergyRequest(req); err != nil {
		return nil, err
	}

	tx, err := j.db.Begin()
	if err != nil {
		return nil, &StoreError{Op: "begin replace", Err: err}
	}
	defer func() { _ = tx.Rollback() }()

	if err := j.deleteEnergy(tx, candidateID); err != nil {
		return nil, err
	}
	rec, err := j.insertEnergy(tx, req.Rating)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, &StoreError{Op: "commit replace", Err: err}
	}
	return rec, nil
}

// ProposeSleep validates a new sleep entry and either inserts it or
// returns the conflict candidate found within the sleep lookback window.
func (j *Journal) ProposeSleep(req SleepRequest) (*SleepOutcome, error) {
	if err := ValidateSleepRequest(req); err != nil {
		return nil, err
	}

	records, err := j.ListSleep()
	if err != nil {
		return nil, err
	}
	if idx := conflictCandidate(records, j.cfg.SleepWindow); idx >= 0 {
		cand := records[idx]
		return &SleepOutcome{Conflict: &cand}, nil
	}

	rec, err := j.insertSleep(j.db, req)
	if err != nil {
		return nil, err
	}
	return &SleepOutcome{Inserted: rec}, nil
}

// ReplaceSleep resolves a sleep conflict by deleting the candidate and
// inserting the new entry as one logical replacement.
func (j *Journal) ReplaceSleep(candidateID string, req SleepRequest) (*SleepRecord, error) {
	if err := ValidateSleepRequest(req); err != nil {
		return nil, err
	}

	tx, err := j.db.Begin()
	if err != nil {
		return nil, &StoreError{Op: "begin replace", Err: err}
	}
	defer func() { _ = tx.Rollback() }()

	if err := j.deleteSleep(tx, candidateID); err != nil {
		return nil, err
	}
	rec, err := j.insertSleep(tx, req)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, &StoreError{Op: "commit replace", Err: err}
	}
	return rec, nil
}

// conflictCandidate returns the index of the most recent record whose
// timestamp is strictly inside the lookback window, or -1 when none is.
// Ties on equal timestamps break arbitrarily; in practice timestamps are
// unique.
func conflictCandidate[R Record](records []R, window time.Duration) int {
	cutoff := timeNow().Add(-window)
	best := -1
	for i, rec := range records {
		if !rec.When().After(cutoff) {
			continue
		}
		if best < 0 || rec.When().After(records[best].When()) {
			best = i
		}
	}
	return best
}
