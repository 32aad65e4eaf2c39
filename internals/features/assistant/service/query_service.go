// file: internals/features/assistant/service/query_service.go
package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"educonnect_backend/internals/features/assistant/intent"
	"educonnect_backend/internals/features/assistant/reply"
	"educonnect_backend/internals/features/records/store"
)

// QueryService answers free-text questions about the caller's record.
type QueryService struct {
	store          *store.Store
	defaultStudent string
	logger         log.Logger
}

func NewQueryService(s *store.Store, defaultStudent string, logger log.Logger) *QueryService {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &QueryService{store: s, defaultStudent: defaultStudent, logger: logger}
}

// SubmitQuery classifies text and renders the reply from the latest
// snapshot. An unknown caller gets an apology, not an error.
func (q *QueryService) SubmitQuery(text, user string) string {
	if strings.TrimSpace(user) == "" {
		user = q.defaultStudent
	}

	doc := q.store.Snapshot()
	_, rec, err := store.FindStudent(doc, user)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			level.Error(q.logger).Log("op", "query", "user", user, "err", err)
		}
		return fmt.Sprintf("Sorry, I couldn't find data for %s. Please check your credentials.", user)
	}

	now := q.store.Now()
	tag := intent.Classify(text)
	level.Debug(q.logger).Log("op", "query", "user", user, "intent", tag)
	return reply.Render(tag, rec, doc, intent.ResolveDay(text, now), now)
}
