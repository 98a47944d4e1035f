// Package quizhost is the page-independent half of the in-browser quiz:
// it turns UI events into session calls and session state into the
// strings the page shows. The js/wasm binary only moves values between
// the DOM and a Controller.
package quizhost

import (
	"strconv"

	"go.uber.org/zap"

	"github.com/woophysics/lessons/internal/formative"
	"github.com/woophysics/lessons/internal/storage"
)

// Stat keys match the data-stat attributes of the quiz markup.
const (
	StatFirst       = "first"
	StatRetry       = "retry"
	StatImprovement = "improvement"
)

type Controller struct {
	session *formative.Session
	saver   storage.Saver
	log     *zap.Logger
}

func New(s *formative.Session, saver storage.Saver, log *zap.Logger) *Controller {
	return &Controller{session: s, saver: saver, log: log}
}

func (c *Controller) SessionID() string { return c.session.ID }

// Input records the text of one field as typed or selected.
func (c *Controller) Input(itemID, fieldID, value string) {
	c.session.SetField(itemID, fieldID, value)
}

// SelectRound takes the data-round value of a round button. Values that
// are not numbers are ignored.
func (c *Controller) SelectRound(raw string) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return
	}
	c.session.SelectRound(formative.Round(n))
}

// Round is the data-round value of the active round button.
func (c *Controller) Round() string {
	return strconv.Itoa(int(c.session.Round()))
}

func (c *Controller) Grade() []formative.Record {
	recs := c.session.Grade()
	c.log.Info("graded", zap.Int("round", int(c.session.Round())), zap.Int("records", len(recs)))
	return recs
}

// Export hands responses.csv to the saver.
func (c *Controller) Export() (string, error) {
	where, err := c.saver.Save(formative.ExportFilename, formative.ExportMIME, []byte(c.session.ExportCSV()))
	if err != nil {
		c.log.Error("export failed", zap.Error(err))
		return "", err
	}
	return where, nil
}

// Reset clears the session. The caller clears the inputs on the page.
func (c *Controller) Reset() { c.session.Reset() }

// Stats returns the display text of every statistic, keyed like the
// data-stat attributes.
func (c *Controller) Stats() map[string]string {
	return map[string]string{
		StatFirst:       formative.FormatPercent(c.session.Accuracy(formative.RoundFirst)),
		StatRetry:       formative.FormatPercent(c.session.Accuracy(formative.RoundRetry)),
		StatImprovement: formative.FormatPoints(c.session.Improvement()),
	}
}
