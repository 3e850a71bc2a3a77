package mailer

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSendNotificationUnknownKind(t *testing.T) {
	log := zerolog.Nop()
	m := New("localhost", "2525", "portal@example.com", "", &log)

	err := m.SendNotification("unknown-kind", "A B", "a@x.com")
	assert.Error(t, err)
}
