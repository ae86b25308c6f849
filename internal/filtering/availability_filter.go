package filtering

import (
	"context"

	"github.com/legalops/lexfinder/internal/roster"

	"go.uber.org/zap"
)

// onLeaveStatus is the availability label used by the roster export for
// lawyers who cannot take new matters.
const onLeaveStatus = "On Leave"

type availabilityFilter struct {
	disabled bool
	reason   string
}

// NewAvailability creates a filter that removes lawyers marked as on leave.
func NewAvailability(enabled bool) Filter {
	f := &availabilityFilter{}
	if !enabled {
		f.Disable("not requested")
	}
	return f
}

func (f *availabilityFilter) Name() string { return "availability" }

func (f *availabilityFilter) Disable(reason string) {
	f.disabled = true
	f.reason = reason
}

func (f *availabilityFilter) IsEnabled() bool { return !f.disabled }

func (f *availabilityFilter) Apply(_ context.Context, deps Deps, r *roster.Roster) (*roster.Roster, Step, error) {
	initial := r.Len()

	var onLeave []string
	for _, lawyer := range r.Lawyers {
		if lawyer.Availability == onLeaveStatus {
			onLeave = append(onLeave, lawyer.Name)
		}
	}

	excluded := r.Exclude(onLeave)
	if deps.Logger != nil && len(excluded) > 0 {
		deps.Logger.Info("excluding lawyers on leave",
			zap.Strings("excluded_lawyers", excluded),
			zap.Int("lawyers_left", r.Len()),
		)
	}

	return r, Step{Initial: initial, Dropped: len(excluded), Left: r.Len()}, nil
}

func (f *availabilityFilter) Status() Status {
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason}
}
