package shared

import (
	"time"

	"github.com/google/uuid"
)

// DomainEvent is raised by an aggregate when something a subscriber
// could care about happens. Events stay in memory on the aggregate;
// a future outbox can persist them without touching the domain layer.
type DomainEvent interface {
	EventID() uuid.UUID
	EventType() string
	OccurredAt() time.Time
	AggregateID() uuid.UUID
	CompanyID() uuid.UUID
}

// BaseDomainEvent supplies the DomainEvent plumbing so concrete events
// only declare their payload fields.
type BaseDomainEvent struct {
	id         uuid.UUID
	eventType  string
	occurredAt time.Time
	aggregate  uuid.UUID
	company    uuid.UUID
}

func NewBaseDomainEvent(eventType string, aggregateID, companyID uuid.UUID) BaseDomainEvent {
	return BaseDomainEvent{
		id:         uuid.New(),
		eventType:  eventType,
		occurredAt: time.Now(),
		aggregate:  aggregateID,
		company:    companyID,
	}
}

func (e *BaseDomainEvent) EventID() uuid.UUID     { return e.id }
func (e *BaseDomainEvent) EventType() string      { return e.eventType }
func (e *BaseDomainEvent) OccurredAt() time.Time  { return e.occurredAt }
func (e *BaseDomainEvent) AggregateID() uuid.UUID { return e.aggregate }
func (e *BaseDomainEvent) CompanyID() uuid.UUID   { return e.company }
