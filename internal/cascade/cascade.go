// Package cascade implements ranked candidate resolution: try an ordered
// list of member names against a receiver until one yields a value of the
// expected shape. Host accessor renames are monotonic across releases but
// not predictable, so candidate lists lead with the newest known name and
// the first valid hit wins.
package cascade

import (
	"fmt"
	"reflect"

	"github.com/cursedclient/cursedclient/internal/introspect"
	"github.com/cursedclient/cursedclient/internal/logger"
)

// Resolve tries each candidate name in order through Locate and Invoke,
// returning the first invocation result that passes the shape check.
// Candidates after the first hit are never touched. Absence, invocation
// failure and shape mismatch all just advance the cascade; individual
// failures surface only as debug log entries. ok is false when the whole
// list is exhausted, which callers treat as "not ready", not as an error.
func Resolve(receiver reflect.Value, candidates []string, kind introspect.Kind, check introspect.ShapeCheck, log *logger.Logger) (introspect.Value, bool) {
	if !receiver.IsValid() {
		return introspect.Absent(), false
	}

	t := receiver.Type()
	for _, name := range candidates {
		member, found := introspect.Locate(t, name, kind)
		if !found {
			continue
		}

		value, err := member.Invoke(receiver)
		if err != nil {
			log.WithFields(map[string]any{
				"candidate": name,
				"kind":      kind.String(),
				"owner":     fmt.Sprintf("%v", member.Owner()),
			}).Debugf("candidate invocation failed: %v", err)
			continue
		}
		if !check(value) {
			log.WithFields(map[string]any{
				"candidate": name,
				"kind":      kind.String(),
				"shape":     value.Shape().String(),
			}).Debug("candidate result has unexpected shape")
			continue
		}
		return value, true
	}

	return introspect.Absent(), false
}
