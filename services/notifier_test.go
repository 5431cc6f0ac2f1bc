package services_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satyarajasree/digital-marketing-backend/models"
	"github.com/satyarajasree/digital-marketing-backend/services"
)

type recordedEmail struct {
	To      string
	Subject string
	Body    string
}

type recordingMailer struct {
	sent    []recordedEmail
	failAll bool
}

func (m *recordingMailer) Send(to, subject, htmlBody string) error {
	if m.failAll {
		return errors.New("smtp unavailable")
	}
	m.sent = append(m.sent, recordedEmail{To: to, Subject: subject, Body: htmlBody})
	return nil
}

func TestNotifyContactSendsTeamThenUser(t *testing.T) {
	mailer := &recordingMailer{}
	notifier := services.NewNotifier(mailer, "team@example.com")

	contact := &models.Contact{
		Fullname: "Jordan Smith",
		Mobile:   "+1234567890",
		Email:    "jordan@example.com",
		Subject:  "Hello",
		Message:  "A message",
	}
	require.NoError(t, notifier.NotifyContact(contact))
	require.Len(t, mailer.sent, 2)
	assert.Equal(t, "team@example.com", mailer.sent[0].To)
	assert.Contains(t, mailer.sent[0].Body, "Jordan Smith")
	assert.Contains(t, mailer.sent[0].Body, "+1234567890")
	assert.Equal(t, "jordan@example.com", mailer.sent[1].To)
	assert.Contains(t, mailer.sent[1].Body, "A message")
}

func TestNotifyContactReturnsSendError(t *testing.T) {
	mailer := &recordingMailer{failAll: true}
	notifier := services.NewNotifier(mailer, "team@example.com")

	err := notifier.NotifyContact(&models.Contact{Email: "jordan@example.com"})
	assert.Error(t, err)
}

func TestNotifyJobApplicationReferencesJobTitle(t *testing.T) {
	mailer := &recordingMailer{}
	notifier := services.NewNotifier(mailer, "team@example.com")

	app := &models.JobApplication{FullName: "Alex Doe", Email: "alex@example.com"}
	require.NoError(t, notifier.NotifyJobApplication(app, "Backend Engineer"))
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "alex@example.com", mailer.sent[0].To)
	assert.Equal(t, "Thank You for Applying to Backend Engineer!", mailer.sent[0].Subject)
	assert.Contains(t, mailer.sent[0].Body, "Alex Doe")
}

func TestNotifyOpenApplicationPositionFallback(t *testing.T) {
	mailer := &recordingMailer{}
	notifier := services.NewNotifier(mailer, "team@example.com")

	withPosition := &models.OpenApplication{FullName: "Sam Lee", Email: "sam@example.com", DesiredPosition: "Designer"}
	require.NoError(t, notifier.NotifyOpenApplication(withPosition))
	require.Len(t, mailer.sent, 1)
	assert.Contains(t, mailer.sent[0].Body, "Designer")

	withoutPosition := &models.OpenApplication{FullName: "Sam Lee", Email: "sam@example.com"}
	require.NoError(t, notifier.NotifyOpenApplication(withoutPosition))
	require.Len(t, mailer.sent, 2)
	assert.Contains(t, mailer.sent[1].Body, "the position you applied for")
}
