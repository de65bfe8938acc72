package bot

import (
	"fmt"
	"log"

	"github.com/ytget/yt-downloader-bot/internal/model"
)

// cleanupStack collects release actions as resources are acquired and runs
// them in reverse order. A failing or panicking action is logged as a
// model.CleanupError and never stops the others.
type cleanupStack struct {
	logger  *log.Logger
	tag     string
	actions []cleanupAction
}

type cleanupAction struct {
	op string
	fn func() error
}

func newCleanupStack(logger *log.Logger, tag string) *cleanupStack {
	return &cleanupStack{logger: logger, tag: tag}
}

// Push registers fn to run on Run
func (c *cleanupStack) Push(op string, fn func() error) {
	c.actions = append(c.actions, cleanupAction{op: op, fn: fn})
}

// Run executes all registered actions, last pushed first
func (c *cleanupStack) Run() {
	for i := len(c.actions) - 1; i >= 0; i-- {
		action := c.actions[i]
		if err := c.runOne(action); err != nil {
			c.logger.Printf("%s %v", c.tag, &model.CleanupError{Op: action.op, Err: err})
		}
	}
	c.actions = nil
}

func (c *cleanupStack) runOne(action cleanupAction) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return action.fn()
}
