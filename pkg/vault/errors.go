package vault

import "fmt"

// StatusError is returned when the server responds with a status outside the
// accepted range. The body is kept verbatim so failures surface exactly what
// the server said.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("(%d) %s", e.Status, e.Body)
}
