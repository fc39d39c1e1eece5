package interfaces

type EventPublisher interface {
	Publish(event any) error
}
