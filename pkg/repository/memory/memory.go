package memory

import (
	"github.com/bussola-app/bussola/pkg/domain/interfaces"
)

// Repository is an alias for Memory to match the pattern
type Repository = Memory

// Memory keeps every record in process memory. It backs tests and local development.
type Memory struct {
	action *actionRepository
	topic  *topicRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		action: newActionRepository(),
		topic:  newTopicRepository(),
	}
}

func (m *Memory) Action() interfaces.ActionRepository {
	return m.action
}

func (m *Memory) Topic() interfaces.TopicRepository {
	return m.topic
}

func (m *Memory) Close() error {
	return nil
}
