package mailer_test

import (
	"context"
	"testing"

	"roster-importer/core/mailer"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Enabled(t *testing.T) {
	assert.False(t, mailer.Config{}.Enabled())
	assert.False(t, mailer.Config{Host: "smtp.example.com"}.Enabled())
	assert.False(t, mailer.Config{To: "ops@example.com"}.Enabled())
	assert.True(t, mailer.Config{Host: "smtp.example.com", To: "ops@example.com"}.Enabled())
}

func TestMailer_SendDisabled(t *testing.T) {
	// An unconfigured mailer must not attempt a connection.
	m := mailer.New(mailer.Config{})
	err := m.Send(context.Background(), "subject", "body")
	assert.NoError(t, err)
}
