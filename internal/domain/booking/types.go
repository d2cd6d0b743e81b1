package booking

type Status string

const (
	StatusActive Status = "active"
	StatusClosed Status = "closed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusClosed:
		return true
	default:
		return false
	}
}
