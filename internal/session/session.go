// Package session coordinates topic selection, practice and completion.
package session

import (
	"errors"
	"fmt"

	"github.com/verte-zerg/vocabtype/internal/model"
	"github.com/verte-zerg/vocabtype/internal/typing"
)

// ErrInvalidPhase is returned when a command does not apply to the current phase.
var ErrInvalidPhase = errors.New("command not valid in current phase")

// Phase is one of Selecting, Practicing or Finished.
type Phase interface {
	Name() string
	isPhase()
}

// Selecting shows the topic list.
type Selecting struct{}

// Practicing carries the chosen topic and the live typing state.
type Practicing struct {
	Topic  model.VocabularyTopic
	Typing typing.State
}

// Finished carries the completed topic.
type Finished struct {
	Topic model.VocabularyTopic
}

func (Selecting) Name() string  { return "selecting" }
func (Practicing) Name() string { return "practicing" }
func (Finished) Name() string   { return "finished" }

func (Selecting) isPhase()  {}
func (Practicing) isPhase() {}
func (Finished) isPhase()   {}

// Controller owns the session phase.
type Controller struct {
	engine *typing.Engine
	phase  Phase
}

// New returns a controller in the selecting phase.
func New(engine *typing.Engine) *Controller {
	return &Controller{engine: engine, phase: Selecting{}}
}

// Phase returns the current phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// SelectTopic starts practicing topic. Valid while selecting.
func (c *Controller) SelectTopic(topic model.VocabularyTopic) error {
	if _, ok := c.phase.(Selecting); !ok {
		return fmt.Errorf("select topic while %s: %w", c.phase.Name(), ErrInvalidPhase)
	}
	return c.startPracticing(topic)
}

// Finish moves from practicing to finished.
func (c *Controller) Finish() error {
	p, ok := c.phase.(Practicing)
	if !ok {
		return fmt.Errorf("finish while %s: %w", c.phase.Name(), ErrInvalidPhase)
	}
	c.phase = Finished{Topic: p.Topic}
	return nil
}

// ChangeTopic drops the selected topic and returns to selecting.
func (c *Controller) ChangeTopic() error {
	switch c.phase.(type) {
	case Practicing, Finished:
		c.phase = Selecting{}
		return nil
	default:
		return fmt.Errorf("change topic while %s: %w", c.phase.Name(), ErrInvalidPhase)
	}
}

// Restart practices the finished topic again with a new word order.
func (c *Controller) Restart() error {
	f, ok := c.phase.(Finished)
	if !ok {
		return fmt.Errorf("restart while %s: %w", c.phase.Name(), ErrInvalidPhase)
	}
	return c.startPracticing(f.Topic)
}

// HandleKey feeds a key to the typing engine while practicing and
// moves to finished when the last word is submitted.
func (c *Controller) HandleKey(k typing.Key) typing.Event {
	p, ok := c.phase.(Practicing)
	if !ok {
		return typing.EventNone
	}
	next, ev := typing.HandleKey(p.Typing, k)
	c.phase = Practicing{Topic: p.Topic, Typing: next}
	if ev == typing.EventFinished {
		// Practicing was just set, so Finish cannot fail.
		_ = c.Finish()
	}
	return ev
}

func (c *Controller) startPracticing(topic model.VocabularyTopic) error {
	state, err := c.engine.Start(topic)
	if err != nil {
		return fmt.Errorf("start topic %d: %w", topic.ID, err)
	}
	c.phase = Practicing{Topic: topic, Typing: state}
	return nil
}
