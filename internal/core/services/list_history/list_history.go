package listhistory

import (
	"context"
	"georemind/internal/core/domain/activation"
	c "georemind/internal/core/domain/common"
	e "georemind/internal/core/domain/errors"
	"georemind/internal/core/services"
	"time"
)

type Input struct {
	// Since drops entries activated before the given moment.
	Since c.Optional[time.Time]
}

type Result struct {
	Entries []activation.Entry
}

type service struct {
	history activation.Log
}

func New(history activation.Log) services.Service[Input, Result] {
	if history == nil {
		panic(e.NewNilArgumentError("history"))
	}
	return &service{history: history}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	entries := s.history.List(ctx)
	if !input.Since.IsPresent {
		result.Entries = entries
		return result, nil
	}

	result.Entries = make([]activation.Entry, 0, len(entries))
	for _, entry := range entries {
		if entry.ActivationDate.Before(input.Since.Value) {
			continue
		}
		result.Entries = append(result.Entries, entry)
	}
	return result, nil
}
