package housekeeping

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	default:
		return false
	}
}

// CanTransition encodes the only legal moves:
// pending -> in-progress -> completed. Completed is terminal.
func (s Status) CanTransition(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusInProgress
	case StatusInProgress:
		return next == StatusCompleted
	default:
		return false
	}
}

type TaskType string

const (
	TaskStandardClean     TaskType = "Standard Clean"
	TaskDeepClean         TaskType = "Deep Clean"
	TaskQuickTouchUp      TaskType = "Quick Touch-up"
	TaskPostCheckoutClean TaskType = "Post-Checkout Clean"
)

func (t TaskType) IsValid() bool {
	switch t {
	case TaskStandardClean, TaskDeepClean, TaskQuickTouchUp, TaskPostCheckoutClean:
		return true
	default:
		return false
	}
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}
