package session

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/rlemos/provinha/internal/content"
	"github.com/rlemos/provinha/internal/effects"
	"github.com/rlemos/provinha/internal/grading"
	"github.com/rlemos/provinha/internal/quiz"
	"github.com/rlemos/provinha/internal/timer"
)

func intPtr(i int) *int { return &i }

func choiceRecord(text string, correct int) content.Record {
	return content.Record{
		Text:         text,
		Options:      []string{"A", "B", "C", "D"},
		CorrectIndex: intPtr(correct),
	}
}

func discursiveRecord(text string) content.Record {
	return content.Record{
		Text:             text,
		Tag:              "discursiva",
		GradingGuideline: "Deve citar a exploração do pau-brasil.",
	}
}

func testRNG() *rand.Rand {
	return rand.New(rand.NewPCG(42, 0))
}

func newTestEngine(t *testing.T, records []content.Record, opts Options) *Engine {
	t.Helper()
	if opts.Scheduler == nil {
		opts.Scheduler = timer.NewManual()
	}
	if opts.RNG == nil {
		opts.RNG = testRNG()
	}
	return New(content.Meta{ContentID: "c1", Title: "Brasil Colônia"}, records, opts)
}

func TestStartSkipsMalformedRecords(t *testing.T) {
	records := []content.Record{
		{Text: ""},
		{Text: "Sem opções", Options: []string{"A"}},
		choiceRecord("Primeira válida", 1),
		choiceRecord("Segunda válida", 0),
	}

	e := newTestEngine(t, records, Options{})
	if err := e.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if e.Index() != 2 {
		t.Errorf("Index = %d, want 2 (first valid record)", e.Index())
	}
	if e.TotalValid() != 2 {
		t.Errorf("TotalValid = %d, want 2", e.TotalValid())
	}
}

func TestStartAllMalformed(t *testing.T) {
	records := []content.Record{
		{Text: ""},
		{Text: "broken", Options: []string{"A", "B"}, CorrectIndex: intPtr(9)},
	}

	completed := false
	e := newTestEngine(t, records, Options{
		OnComplete: func(points int) { completed = true },
	})
	if err := e.Start(); err != ErrNoQuestions {
		t.Fatalf("Start error = %v, want ErrNoQuestions", err)
	}
	if !e.Finished() {
		t.Error("engine should be finished when nothing is playable")
	}
	// An empty attempt is an error state, not a completed one.
	if completed {
		t.Error("OnComplete emitted for an attempt that never started")
	}
}

func TestSubmitCorrectAnswer(t *testing.T) {
	sched := timer.NewManual()
	counter := &effects.Counter{}
	e := newTestEngine(t, []content.Record{choiceRecord("Q", 2)}, Options{
		Scheduler: sched,
		Effects:   counter,
	})
	if err := e.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	if err := e.SubmitAnswer(2); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if e.Score() != 1 {
		t.Errorf("Score = %v, want 1", e.Score())
	}
	if e.Feedback() != FeedbackCorrect {
		t.Errorf("Feedback = %v, want FeedbackCorrect", e.Feedback())
	}
	if counter.N != 1 {
		t.Errorf("celebrations = %d, want 1", counter.N)
	}
	if sched.Pending() != 1 {
		t.Errorf("pending timers = %d, want 1", sched.Pending())
	}
}

func TestSubmitWrongAnswer(t *testing.T) {
	sched := timer.NewManual()
	counter := &effects.Counter{}
	e := newTestEngine(t, []content.Record{choiceRecord("Q", 2)}, Options{
		Scheduler: sched,
		Effects:   counter,
	})
	e.Start()

	if err := e.SubmitAnswer(0); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if e.Score() != 0 {
		t.Errorf("Score = %v, want 0", e.Score())
	}
	if e.Feedback() != FeedbackWrong {
		t.Errorf("Feedback = %v, want FeedbackWrong", e.Feedback())
	}
	if counter.N != 0 {
		t.Errorf("celebrations = %d, want 0", counter.N)
	}

	// The wrong-answer timer fires only past the longer delay.
	sched.Advance(CorrectAdvanceDelay)
	if sched.Pending() != 1 {
		t.Fatal("timer fired before the wrong-answer delay")
	}
	sched.Advance(WrongAdvanceDelay)
	if sched.Pending() != 0 {
		t.Error("timer did not fire at the wrong-answer delay")
	}
}

func TestDoubleSubmitIsRejected(t *testing.T) {
	sched := timer.NewManual()
	e := newTestEngine(t, []content.Record{choiceRecord("Q", 1)}, Options{Scheduler: sched})
	e.Start()

	if err := e.SubmitAnswer(0); err != nil {
		t.Fatalf("first SubmitAnswer: %v", err)
	}
	if err := e.SubmitAnswer(1); err != ErrAlreadyAnswered {
		t.Fatalf("second SubmitAnswer error = %v, want ErrAlreadyAnswered", err)
	}
	if e.Score() != 0 {
		t.Errorf("Score changed on rejected submission: %v", e.Score())
	}
	if got := *e.Selected(); got != 0 {
		t.Errorf("Selected = %d, want the first submission's 0", got)
	}
	if sched.Pending() != 1 {
		t.Errorf("pending timers = %d, want 1 (no rescheduling)", sched.Pending())
	}
}

func TestAutoAdvanceFires(t *testing.T) {
	sched := timer.NewManual()
	var fired []uint64
	e := newTestEngine(t,
		[]content.Record{choiceRecord("Q1", 0), choiceRecord("Q2", 0)},
		Options{
			Scheduler:     sched,
			OnAutoAdvance: func(gen uint64) { fired = append(fired, gen) },
		})
	e.Start()

	gen := e.Generation()
	e.SubmitAnswer(0)
	sched.Fire()

	if len(fired) != 1 || fired[0] != gen {
		t.Fatalf("notify calls = %v, want one with generation %d", fired, gen)
	}
	e.HandleAutoAdvance(fired[0])
	if e.Index() != 1 {
		t.Errorf("Index = %d, want 1 after auto-advance", e.Index())
	}
	if e.Feedback() != FeedbackNone || e.Selected() != nil {
		t.Error("per-question state not cleared on advance")
	}
}

func TestStaleAutoAdvanceIsDiscarded(t *testing.T) {
	sched := timer.NewManual()
	e := newTestEngine(t,
		[]content.Record{choiceRecord("Q1", 0), choiceRecord("Q2", 0), choiceRecord("Q3", 0)},
		Options{Scheduler: sched})
	e.Start()

	gen := e.Generation()
	e.SubmitAnswer(0)

	// The learner advances manually before the timer fires.
	e.Advance()
	if sched.Pending() != 0 {
		t.Fatal("manual advance did not cancel the pending timer")
	}
	if e.Index() != 1 {
		t.Fatalf("Index = %d, want 1", e.Index())
	}

	// A stale notification for the old question changes nothing.
	e.HandleAutoAdvance(gen)
	if e.Index() != 1 {
		t.Errorf("stale auto-advance moved the engine to %d", e.Index())
	}
}

func TestAdvancePastLastQuestionCompletes(t *testing.T) {
	var points int
	calls := 0
	e := newTestEngine(t, []content.Record{choiceRecord("Q1", 0)}, Options{
		OnComplete: func(p int) { points = p; calls++ },
	})
	e.Start()
	e.SubmitAnswer(0)
	e.Advance()

	if !e.Finished() {
		t.Fatal("engine should be finished")
	}
	if calls != 1 {
		t.Fatalf("OnComplete calls = %d, want 1", calls)
	}
	// 1/1 correct: 100%, 10 base, 5 bonus.
	if points != 15 {
		t.Errorf("total points = %d, want 15", points)
	}

	// Advancing a finished attempt stays a no-op.
	e.Advance()
	if calls != 1 {
		t.Errorf("OnComplete re-emitted: %d calls", calls)
	}
}

func TestDiscursiveGradingFlow(t *testing.T) {
	sched := timer.NewManual()
	counter := &effects.Counter{}
	e := newTestEngine(t, []content.Record{discursiveRecord("Explique o escambo.")}, Options{
		Scheduler: sched,
		Effects:   counter,
	})
	e.Start()

	if q := e.Question(); q == nil || q.Format != quiz.FormatDiscursive {
		t.Fatal("expected a discursive question")
	}

	if _, err := e.BeginDiscursive("   "); err != ErrEmptyAnswer {
		t.Fatalf("blank answer error = %v, want ErrEmptyAnswer", err)
	}

	gen, err := e.BeginDiscursive("Troca de trabalho por mercadorias.")
	if err != nil {
		t.Fatalf("BeginDiscursive: %v", err)
	}
	if !e.GradingBusy() {
		t.Fatal("engine should be awaiting grading")
	}
	if _, err := e.BeginDiscursive("de novo"); err != ErrGradingInFlight {
		t.Fatalf("concurrent BeginDiscursive error = %v, want ErrGradingInFlight", err)
	}

	e.ApplyGrading(gen, &grading.Result{Adherence: grading.AdherencePartial})
	if e.Score() != 0.5 {
		t.Errorf("Score = %v, want 0.5 for partial adherence", e.Score())
	}
	if e.Feedback() != FeedbackCorrect {
		t.Errorf("Feedback = %v, want FeedbackCorrect for partial", e.Feedback())
	}
	if counter.N != 1 {
		t.Errorf("celebrations = %d, want 1", counter.N)
	}
	if e.GradingResult() == nil {
		t.Error("grading result not held for display")
	}
	// Discursive questions never auto-advance.
	if sched.Pending() != 0 {
		t.Errorf("pending timers = %d, want 0", sched.Pending())
	}

	if _, err := e.BeginDiscursive("outra"); err != ErrAlreadyAnswered {
		t.Errorf("re-answering graded question error = %v, want ErrAlreadyAnswered", err)
	}
}

func TestDiscursiveIncorrect(t *testing.T) {
	e := newTestEngine(t, []content.Record{discursiveRecord("Q")}, Options{})
	e.Start()

	gen, _ := e.BeginDiscursive("resposta errada")
	e.ApplyGrading(gen, &grading.Result{Adherence: grading.AdherenceIncorrect})
	if e.Score() != 0 {
		t.Errorf("Score = %v, want 0", e.Score())
	}
	if e.Feedback() != FeedbackWrong {
		t.Errorf("Feedback = %v, want FeedbackWrong", e.Feedback())
	}
}

func TestFailGradingAllowsRetry(t *testing.T) {
	e := newTestEngine(t, []content.Record{discursiveRecord("Q")}, Options{})
	e.Start()

	gen, _ := e.BeginDiscursive("primeira tentativa")
	e.FailGrading(gen)
	if e.GradingBusy() {
		t.Fatal("failed grading should clear the in-flight flag")
	}
	if e.Score() != 0 || e.Answered() != 0 {
		t.Error("failed grading mutated score or answer count")
	}

	gen2, err := e.BeginDiscursive("segunda tentativa")
	if err != nil {
		t.Fatalf("retry after failure: %v", err)
	}
	e.ApplyGrading(gen2, &grading.Result{Adherence: grading.AdherenceCorrect})
	if e.Score() != 1 {
		t.Errorf("Score = %v, want 1", e.Score())
	}
}

func TestStaleGradingResultIsDiscarded(t *testing.T) {
	e := newTestEngine(t,
		[]content.Record{discursiveRecord("Q1"), choiceRecord("Q2", 0)},
		Options{})
	e.Start()

	gen, _ := e.BeginDiscursive("resposta")
	e.Advance()

	e.ApplyGrading(gen, &grading.Result{Adherence: grading.AdherenceCorrect})
	if e.Score() != 0 {
		t.Errorf("stale grading result scored: %v", e.Score())
	}
	if e.GradingResult() != nil {
		t.Error("stale grading result held")
	}
}

func TestFillNormalizationScenario(t *testing.T) {
	// A legacy fill record plays as multiple-choice; picking the option
	// equal to the accepted answer scores the point.
	records := []content.Record{
		{
			Text:            "Qual país colonizou o ___?",
			Tag:             "fill",
			AcceptedAnswers: []string{"Brasil"},
		},
		choiceRecord("Q2", 3),
	}

	sched := timer.NewManual()
	e := newTestEngine(t, records, Options{Scheduler: sched})
	if err := e.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	q := e.Question()
	if q == nil || q.Format != quiz.FormatChoice {
		t.Fatal("fill record did not normalize to multiple-choice")
	}
	if len(q.Options) < 4 {
		t.Fatalf("options = %v, want the answer plus three distractors", q.Options)
	}
	if q.Options[q.CorrectIndex] != "Brasil" {
		t.Fatalf("correct option = %q, want Brasil", q.Options[q.CorrectIndex])
	}

	// Repeated reads must agree on option order.
	q2 := e.Question()
	if q2 != q {
		t.Fatal("normalization not cached; option order could drift")
	}

	if err := e.SubmitAnswer(q.CorrectIndex); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if e.Score() != 1 {
		t.Errorf("Score = %v, want 1", e.Score())
	}
}

func TestSubmitAgainstWrongFormat(t *testing.T) {
	e := newTestEngine(t, []content.Record{discursiveRecord("Q")}, Options{})
	e.Start()
	if err := e.SubmitAnswer(0); err != ErrNotChoice {
		t.Errorf("SubmitAnswer on discursive error = %v, want ErrNotChoice", err)
	}

	e2 := newTestEngine(t, []content.Record{choiceRecord("Q", 0)}, Options{})
	e2.Start()
	if _, err := e2.BeginDiscursive("texto"); err != ErrNotDiscursive {
		t.Errorf("BeginDiscursive on choice error = %v, want ErrNotDiscursive", err)
	}
}

func TestCorrectDelayIsShorter(t *testing.T) {
	if CorrectAdvanceDelay != 2000*time.Millisecond {
		t.Errorf("CorrectAdvanceDelay = %v", CorrectAdvanceDelay)
	}
	if WrongAdvanceDelay != 3000*time.Millisecond {
		t.Errorf("WrongAdvanceDelay = %v", WrongAdvanceDelay)
	}
}
