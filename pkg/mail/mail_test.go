package mail

import (
	"bytes"
	"testing"

	"pin-packs/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMailer_Disabled(t *testing.T) {
	assert.Nil(t, NewMailer(&config.Config{}))
}

func TestBuild(t *testing.T) {
	m := NewMailer(&config.Config{SMTPHost: "smtp.local", SMTPPort: 2525, MailFrom: "orders@pinpacks.local"})
	require.NotNil(t, m)

	gm := m.build(Message{
		To:      "buyer@example.com",
		Subject: "Your pin packs are ready",
		Text:    "Thanks for your purchase",
		HTML:    "<p>Thanks for your purchase</p>",
	})

	assert.Equal(t, []string{"orders@pinpacks.local"}, gm.GetHeader("From"))
	assert.Equal(t, []string{"buyer@example.com"}, gm.GetHeader("To"))
	assert.Equal(t, []string{"Your pin packs are ready"}, gm.GetHeader("Subject"))

	var buf bytes.Buffer
	_, err := gm.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "text/plain")
	assert.Contains(t, buf.String(), "text/html")
}
