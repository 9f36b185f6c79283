package interfaces

// Repository defines the interface for data persistence
type Repository interface {
	Action() ActionRepository
	Topic() TopicRepository

	Close() error
}
