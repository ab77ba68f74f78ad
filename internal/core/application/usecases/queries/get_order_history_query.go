package queries

import (
	"errors"
	"time"

	"tableside/internal/core/domain/model/order"
	"tableside/internal/pkg/guard"
)

var (
	ErrGetOrderHistoryQueryIsNotConstructed = errors.New(
		"GetOrderHistoryQuery must be created via NewGetOrderHistoryQuery constructor",
	)

	// ErrActorIsNotAdmin is returned when a non-admin token asks for the
	// order history.
	ErrActorIsNotAdmin = errors.New("actor is not an admin")

	ErrTableFilterIsInvalid = errors.New("table filter must not be negative")
)

// GetOrderHistoryQuery retrieves past and present orders, optionally
// narrowed by table, status or calendar day. Only admins may run it.
type GetOrderHistoryQuery struct { //nolint:recvcheck //using for validation
	actorToken string
	table      int
	status     order.Status
	day        time.Time

	guard guard.ConstructorGuard
}

// NewGetOrderHistoryQuery creates a history query.
// A table of 0, an empty status string and a zero day each mean "any".
// An unknown non-empty status string fails construction.
func NewGetOrderHistoryQuery(actorToken string, table int, status string, day time.Time) (GetOrderHistoryQuery, error) {
	query := GetOrderHistoryQuery{
		actorToken: actorToken,
		day:        day,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setTable(table),
		query.setStatus(status),
	); err != nil {
		return GetOrderHistoryQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderHistoryQueryIsNotConstructed)
}

// ActorToken returns the raw role token of the actor.
func (q GetOrderHistoryQuery) ActorToken() string {
	return q.actorToken
}

// Table returns the table filter, 0 meaning any table.
func (q GetOrderHistoryQuery) Table() int {
	return q.table
}

// Status returns the status filter, order.Unknown meaning any status.
func (q GetOrderHistoryQuery) Status() order.Status {
	return q.status
}

// Day returns the calendar day filter, the zero time meaning any day.
func (q GetOrderHistoryQuery) Day() time.Time {
	return q.day
}

func (q *GetOrderHistoryQuery) setTable(table int) error {
	if table < 0 {
		return ErrTableFilterIsInvalid
	}

	q.table = table
	return nil
}

func (q *GetOrderHistoryQuery) setStatus(status string) error {
	if status == "" {
		q.status = order.Unknown
		return nil
	}

	parsed, err := order.StatusFromString(status)
	if err != nil {
		return err
	}

	q.status = parsed
	return nil
}
