package player

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/google/uuid"

	"github.com/rlemos/provinha/internal/content"
	"github.com/rlemos/provinha/internal/effects"
	"github.com/rlemos/provinha/internal/grading"
	"github.com/rlemos/provinha/internal/quiz"
	"github.com/rlemos/provinha/internal/router"
	"github.com/rlemos/provinha/internal/screen"
	"github.com/rlemos/provinha/internal/screens/results"
	"github.com/rlemos/provinha/internal/session"
	"github.com/rlemos/provinha/internal/store"
	"github.com/rlemos/provinha/internal/ui/components"
	"github.com/rlemos/provinha/internal/ui/layout"
)

// Deps bundles the collaborators the player needs. Grader and Events
// may be nil; discursive grading then reports an error the learner can
// skip past, and nothing is persisted.
type Deps struct {
	Grader   grading.Grader
	Events   store.EventRepo
	Learner  grading.Submission // grade/age/profile defaults, texts filled per answer
	Effects  effects.Celebrator
	Seed     uint64
}

// PlayerScreen runs one quiz attempt.
type PlayerScreen struct {
	engine *session.Engine
	deps   Deps
	item   *content.Item

	attemptID     string
	startedAt     time.Time
	questionStart time.Time

	// advanceCh carries fired auto-advance generations from the timer
	// goroutine back into the Bubble Tea loop.
	advanceCh chan uint64

	mc          components.MultiChoice
	input       components.TextInput
	gradingErr  string
	quitConfirm bool
	noQuestions bool
	done        bool
}

var _ screen.Screen = (*PlayerScreen)(nil)
var _ screen.KeyHintProvider = (*PlayerScreen)(nil)
var _ screen.StatusProvider = (*PlayerScreen)(nil)

// New creates a player for one content item and starts the attempt.
func New(item *content.Item, deps Deps) *PlayerScreen {
	s := &PlayerScreen{
		deps:      deps,
		item:      item,
		attemptID: uuid.New().String(),
		startedAt: time.Now(),
		advanceCh: make(chan uint64, 1),
		input:     components.NewTextInput("Digite sua resposta...", 500),
	}

	opts := session.Options{
		Effects: deps.Effects,
		OnAutoAdvance: func(gen uint64) {
			select {
			case s.advanceCh <- gen:
			default:
			}
		},
	}
	if deps.Seed != 0 {
		opts.RNG = seededRNG(deps.Seed)
	}

	s.engine = session.New(item.Meta, item.Questions, opts)
	if err := s.engine.Start(); err != nil {
		if errors.Is(err, session.ErrNoQuestions) {
			s.noQuestions = true
		}
		return s
	}
	s.syncQuestion()
	return s
}

func (s *PlayerScreen) Init() tea.Cmd {
	cmds := []tea.Cmd{s.listen(), s.input.Init()}
	if s.deps.Events != nil && !s.noQuestions {
		cmds = append(cmds, s.recordStart())
	}
	return tea.Batch(cmds...)
}

func (s *PlayerScreen) Title() string {
	return s.item.Title
}

func (s *PlayerScreen) Status() string {
	if s.noQuestions {
		return ""
	}
	return fmt.Sprintf("%s pts · %d/%d",
		formatScore(s.engine.Score()), s.engine.Answered(), s.engine.TotalValid())
}

func (s *PlayerScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.noQuestions:
		return []layout.KeyHint{{Key: "Esc", Description: "Voltar"}}
	case s.quitConfirm:
		return []layout.KeyHint{
			{Key: "S", Description: "Abandonar"},
			{Key: "N", Description: "Continuar"},
		}
	case s.gradingErr != "":
		return []layout.KeyHint{
			{Key: "Enter", Description: "Tentar de novo"},
			{Key: "Esc", Description: "Sair"},
		}
	case s.engine.Selected() != nil, s.discursiveAnswered():
		return []layout.KeyHint{{Key: "Enter", Description: "Próxima"}}
	case s.currentIsDiscursive():
		return []layout.KeyHint{
			{Key: "Enter", Description: "Enviar"},
			{Key: "Esc", Description: "Sair"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navegar"},
			{Key: "Enter", Description: "Responder"},
			{Key: "Esc", Description: "Sair"},
		}
	}
}

func (s *PlayerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case autoAdvanceMsg:
		s.engine.HandleAutoAdvance(msg.Generation)
		cmds := []tea.Cmd{s.listen()}
		if cmd := s.afterTransition(); cmd != nil {
			cmds = append(cmds, cmd)
		}
		return s, tea.Batch(cmds...)

	case gradedMsg:
		return s.handleGraded(msg)

	case finishedMsg:
		s.done = true
		sum := session.Finalize(s.engine.Score(), s.engine.TotalValid())
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: results.New(s.item.Title, sum)}
		}

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.currentIsDiscursive() && !s.discursiveAnswered() && !s.engine.GradingBusy() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *PlayerScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.noQuestions || s.done {
		if msg.String() == "esc" || msg.String() == "enter" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	if s.quitConfirm {
		switch msg.String() {
		case "s", "S", "y", "Y":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.quitConfirm = false
		}
		return s, nil
	}

	if msg.String() == "esc" {
		s.quitConfirm = true
		return s, nil
	}

	q := s.engine.Question()
	if q == nil {
		return s, nil
	}

	if q.Format == quiz.FormatChoice {
		return s.handleChoiceKey(msg)
	}
	return s.handleDiscursiveKey(msg)
}

func (s *PlayerScreen) handleChoiceKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.engine.Selected() != nil {
		// Feedback is showing; Enter skips the rest of the auto-advance
		// delay. Advance cancels the pending timer, so the fire that
		// would follow is discarded as stale.
		if msg.String() == "enter" {
			s.engine.Advance()
			return s, s.afterTransition()
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.mc, cmd = s.mc.Update(msg)
	if !s.mc.Submitted {
		return s, cmd
	}

	if err := s.engine.SubmitAnswer(s.mc.ChosenIndex); err != nil {
		return s, cmd
	}
	return s, tea.Batch(cmd, s.recordChoiceAnswer())
}

func (s *PlayerScreen) handleDiscursiveKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.engine.GradingBusy() {
		return s, nil
	}

	if s.discursiveAnswered() {
		if msg.String() == "enter" {
			s.engine.Advance()
			return s, s.afterTransition()
		}
		return s, nil
	}

	if msg.String() != "enter" {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	s.gradingErr = ""
	text := s.input.Value()
	gen, err := s.engine.BeginDiscursive(text)
	if err != nil {
		if errors.Is(err, session.ErrEmptyAnswer) {
			s.gradingErr = "Escreva uma resposta antes de enviar."
		}
		return s, nil
	}
	return s, s.grade(gen, text)
}

func (s *PlayerScreen) handleGraded(msg gradedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.engine.FailGrading(msg.Generation)
		if msg.Generation == s.engine.Generation() {
			s.gradingErr = "Não foi possível corrigir sua resposta. Tente enviar de novo."
		}
		return s, nil
	}

	before := s.engine.Generation()
	s.engine.ApplyGrading(msg.Generation, msg.Result)
	if msg.Generation != before {
		return s, nil
	}
	return s, s.recordDiscursiveAnswer(msg.Result)
}

// afterTransition refreshes per-question UI state after the engine
// moved, and kicks off the finish flow when the attempt completed.
func (s *PlayerScreen) afterTransition() tea.Cmd {
	if s.engine.Finished() {
		return s.recordFinish()
	}
	s.syncQuestion()
	return nil
}

func (s *PlayerScreen) syncQuestion() {
	s.questionStart = time.Now()
	s.gradingErr = ""
	q := s.engine.Question()
	if q == nil {
		return
	}
	if q.Format == quiz.FormatChoice {
		s.mc = components.NewMultiChoice(q.Text, q.Options, q.CorrectIndex)
	} else {
		s.input.Reset()
	}
}

func (s *PlayerScreen) currentIsDiscursive() bool {
	q := s.engine.Question()
	return q != nil && q.Format == quiz.FormatDiscursive
}

func (s *PlayerScreen) discursiveAnswered() bool {
	return s.currentIsDiscursive() && s.engine.GradingResult() != nil
}

// listen blocks on the auto-advance channel and resurfaces fires as
// messages. Re-issued after every receipt.
func (s *PlayerScreen) listen() tea.Cmd {
	return func() tea.Msg {
		return autoAdvanceMsg{Generation: <-s.advanceCh}
	}
}

func (s *PlayerScreen) grade(gen uint64, text string) tea.Cmd {
	q := s.engine.Question()
	sub := s.deps.Learner
	sub.StudentText = text
	sub.Guideline = q.Guideline
	sub.Subject = s.item.Subject
	sub.Topic = s.item.Topic
	if sub.Grade == "" {
		sub.Grade = s.item.Grade
	}
	if sub.Age == 0 {
		sub.Age = s.item.Age
	}

	grader := s.deps.Grader
	return func() tea.Msg {
		if grader == nil {
			return gradedMsg{Generation: gen, Err: errors.New("grading unavailable")}
		}
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		res, err := grader.Grade(ctx, sub)
		return gradedMsg{Generation: gen, Result: res, Err: err}
	}
}

func (s *PlayerScreen) recordStart() tea.Cmd {
	events := s.deps.Events
	data := store.AttemptEventData{
		AttemptID:          s.attemptID,
		ContentID:          s.item.ContentID,
		ContentTitle:       s.item.Title,
		Action:             "start",
		QuestionsPresented: s.engine.TotalValid(),
	}
	return func() tea.Msg {
		_ = events.AppendAttemptEvent(context.Background(), data)
		return nil
	}
}

func (s *PlayerScreen) recordFinish() tea.Cmd {
	sum := session.Finalize(s.engine.Score(), s.engine.TotalValid())
	data := store.AttemptEventData{
		AttemptID:          s.attemptID,
		ContentID:          s.item.ContentID,
		ContentTitle:       s.item.Title,
		Action:             "finish",
		QuestionsPresented: s.engine.TotalValid(),
		ScoreHalves:        int(s.engine.Score() * 2),
		TotalPoints:        sum.TotalPoints(),
		DurationSecs:       int(time.Since(s.startedAt).Seconds()),
	}
	events := s.deps.Events
	return func() tea.Msg {
		if events != nil {
			_ = events.AppendAttemptEvent(context.Background(), data)
		}
		return finishedMsg{}
	}
}

func (s *PlayerScreen) recordChoiceAnswer() tea.Cmd {
	if s.deps.Events == nil {
		return nil
	}
	q := s.engine.Question()
	data := store.AnswerEventData{
		AttemptID:     s.attemptID,
		QuestionIndex: s.engine.Index(),
		Format:        "choice",
		QuestionText:  q.Text,
		ChosenIndex:   *s.engine.Selected(),
		CorrectIndex:  q.CorrectIndex,
		StudentText:   "",
		Correct:       s.engine.Feedback() == session.FeedbackCorrect,
		TimeMs:        int(time.Since(s.questionStart).Milliseconds()),
	}
	events := s.deps.Events
	return func() tea.Msg {
		_ = events.AppendAnswerEvent(context.Background(), data)
		return nil
	}
}

func (s *PlayerScreen) recordDiscursiveAnswer(res *grading.Result) tea.Cmd {
	if s.deps.Events == nil {
		return nil
	}
	q := s.engine.Question()
	data := store.AnswerEventData{
		AttemptID:     s.attemptID,
		QuestionIndex: s.engine.Index(),
		Format:        "discursive",
		QuestionText:  q.Text,
		ChosenIndex:   -1,
		CorrectIndex:  -1,
		StudentText:   s.input.Value(),
		Adherence:     string(res.Adherence),
		Correct:       res.Adherence == grading.AdherenceCorrect,
		TimeMs:        int(time.Since(s.questionStart).Milliseconds()),
	}
	events := s.deps.Events
	return func() tea.Msg {
		_ = events.AppendAnswerEvent(context.Background(), data)
		return nil
	}
}

func seededRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0))
}

func formatScore(score float64) string {
	if score == float64(int(score)) {
		return fmt.Sprintf("%d", int(score))
	}
	return fmt.Sprintf("%.1f", score)
}
