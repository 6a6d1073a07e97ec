package diavgeia

import (
	"fmt"
	"strings"
)

// ReceiverNameQuery matches decisions naming name as a receiver.
func ReceiverNameQuery(name string) string {
	return fmt.Sprintf(`receiverName:"%s"`, quote(name))
}

// ReceiverAFMQuery matches decisions paying afm issued within year.
func ReceiverAFMQuery(afm string, year int) string {
	return fmt.Sprintf(
		`receiverAFM:"%s" AND issueDate:[DT(%d-01-01T00:00:00) TO DT(%d-12-31T23:59:59)]`,
		quote(afm), year, year,
	)
}

// quote keeps a phrase from closing its own quotes early.
func quote(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), `"`, `\"`)
}
