package session

// Start positions the engine on the first valid question. Malformed
// records are skipped silently; if none survive normalization the
// attempt is terminal before it begins and ErrNoQuestions is returned.
func (e *Engine) Start() error {
	if e.started {
		return nil
	}

	total := 0
	for i := range e.records {
		if e.normalize(i) != nil {
			total++
		}
	}
	e.totalValid = total
	e.started = true

	// Terminal error state, not a completed attempt: no completion is
	// emitted and nothing should be persisted for it.
	if total == 0 {
		e.finished = true
		e.onDone = nil
		return ErrNoQuestions
	}

	e.current = e.firstValidFrom(0)
	return nil
}

// Advance moves to the next valid question, or finishes the attempt
// when none remain. Any pending auto-advance is cancelled and in-flight
// grading results for the question being left become stale.
func (e *Engine) Advance() {
	if e.finished || !e.started {
		return
	}

	e.cancelPending()
	e.generation++
	e.selected = nil
	e.feedback = FeedbackNone
	e.gradingResult = nil
	e.gradingBusy = false

	next := e.firstValidFrom(e.current + 1)
	if next < 0 {
		e.finished = true
		e.emitComplete()
		return
	}
	e.current = next
}

// HandleAutoAdvance is the loop-side half of the auto-advance timer:
// the owner calls it with the generation the fired timer carried. A
// stale generation means the learner already moved on; nothing happens.
func (e *Engine) HandleAutoAdvance(generation uint64) {
	if generation != e.generation {
		return
	}
	e.Advance()
}

func (e *Engine) firstValidFrom(start int) int {
	for i := start; i < len(e.records); i++ {
		if e.normalize(i) != nil {
			return i
		}
	}
	return -1
}

func (e *Engine) emitComplete() {
	if e.onDone == nil {
		return
	}
	done := e.onDone
	e.onDone = nil
	done(Finalize(e.score, e.totalValid).TotalPoints())
}
