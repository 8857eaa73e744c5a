package domain

// NotFoundError reports that the directory has no switch/port mapping for
// the identifier. Message carries the directory's own explanation.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	if e.Message == "" {
		return "no switch/port mapping found"
	}
	return e.Message
}
