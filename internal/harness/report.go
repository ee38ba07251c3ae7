package harness

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Report struct {
	Answer string
	Part   string

	Min  time.Duration
	Mean time.Duration
	Max  time.Duration

	RunID      uuid.UUID
	Iterations int
	Day        uint8
}

func (r *Report) String() string {
	answer := r.Answer
	if strings.Contains(answer, "\n") {
		answer = "\n" + strings.TrimRight(answer, "\n")
	}

	return fmt.Sprintf(
		"Day %d Part %s: %s\n  iterations %d, min %s, mean %s, max %s",

		r.Day,
		r.Part,
		answer,
		r.Iterations,
		r.Min,
		r.Mean,
		r.Max,
	)
}
