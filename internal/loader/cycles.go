package loader

import (
	otmerrors "github.com/jacoelho/otm/errors"
	"github.com/jacoelho/otm/internal/ctxlog"
	"github.com/jacoelho/otm/internal/graphcycle"
	"github.com/jacoelho/otm/internal/model"
)

// detectCycles records extension and parent type loops as warnings. The
// resolution walks stop at the first repeat, so a loop never fails a load.
func (b *builder) detectCycles() {
	b.cycles(otmerrors.ErrExtensionCycle, "extension cycle detected", func(e model.NamedEntity) model.NamedEntity {
		return model.ExtensionOf(e).Target()
	})
	b.cycles(otmerrors.ErrParentTypeCycle, "parent type cycle detected", model.ParentType)
}

func (b *builder) cycles(code otmerrors.ErrorCode, msg string, parent func(model.NamedEntity) model.NamedEntity) {
	logger := ctxlog.FromContext(b.ctx)

	var starts []model.QName
	for _, e := range b.index.order {
		if parent(e) != nil {
			starts = append(starts, e.Name())
		}
	}
	if len(starts) == 0 {
		return
	}

	found, err := graphcycle.Cycles(graphcycle.Config[model.QName]{
		Starts: starts,
		Exists: func(q model.QName) bool {
			_, ok := b.index.lookup(q)
			return ok
		},
		Next: func(q model.QName) ([]model.QName, error) {
			e, _ := b.index.lookup(q)
			target := parent(e)
			if model.IsNil(target) {
				return nil, nil
			}
			return []model.QName{target.Name()}, nil
		},
	})
	if err != nil {
		logger.Warn("cycle detection stopped", "error", err)
		return
	}
	for _, cycle := range found {
		logger.Warn(msg, "entity", cycle.Key.String(), "cycle", cycle.Error())
		b.warnf(code, Pos{}, cycle.Key.String(), "%s", cycle.Error())
	}
	logger.Debug("cycle detection finished", "code", string(code), "starts", len(starts), "cycles", len(found))
}
