package services

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/satyarajasree/digital-marketing-backend/models"
)

const contactTeamHTML = `<html>
<body>
  <h2>New contact request</h2>
  <table cellpadding="4">
    <tr><td><b>Name</b></td><td>{{.Fullname}}</td></tr>
    <tr><td><b>Mobile</b></td><td>{{.Mobile}}</td></tr>
    <tr><td><b>Email</b></td><td>{{.Email}}</td></tr>
    <tr><td><b>Subject</b></td><td>{{.Subject}}</td></tr>
  </table>
  <p>{{.Message}}</p>
</body>
</html>`

const contactUserHTML = `<html>
<body>
  <h2>Thank you for reaching out, {{.Fullname}}!</h2>
  <p>We received your message and will get back to you shortly.</p>
  <blockquote>{{.Message}}</blockquote>
  <p>Warm regards,<br>The Team</p>
</body>
</html>`

const jobApplicationHTML = `<html>
<body>
  <h2>Thank you for applying, {{.FullName}}!</h2>
  <p>We received your application for <b>{{.JobTitle}}</b>. Our hiring team
  will review it and reach out if your profile is a match.</p>
  <p>Warm regards,<br>The Hiring Team</p>
</body>
</html>`

const openApplicationHTML = `<html>
<body>
  <h2>Thank you for your application, {{.FullName}}!</h2>
  <p>We received your application for <b>{{.DesiredPosition}}</b> and will
  keep your profile on file for matching openings.</p>
  <p>Warm regards,<br>The Hiring Team</p>
</body>
</html>`

var (
	contactTeamTmpl     = template.Must(template.New("contact_team").Parse(contactTeamHTML))
	contactUserTmpl     = template.Must(template.New("contact_user").Parse(contactUserHTML))
	jobApplicationTmpl  = template.Must(template.New("job_application").Parse(jobApplicationHTML))
	openApplicationTmpl = template.Must(template.New("open_application").Parse(openApplicationHTML))
)

// Notifier renders and dispatches the transactional emails triggered by
// form submissions. It runs inline in the request cycle; the per-entity
// failure policy is decided by the callers.
type Notifier struct {
	mailer       Mailer
	contactEmail string
}

func NewNotifier(mailer Mailer, contactEmail string) *Notifier {
	return &Notifier{mailer: mailer, contactEmail: contactEmail}
}

// NotifyContact sends the internal notification first, then the submitter
// thank-you. Any failure is returned to the caller.
func (n *Notifier) NotifyContact(contact *models.Contact) error {
	teamBody, err := render(contactTeamTmpl, contact)
	if err != nil {
		return err
	}
	if err := n.mailer.Send(n.contactEmail, "New Contact: "+contact.Subject, teamBody); err != nil {
		return err
	}

	userBody, err := render(contactUserTmpl, contact)
	if err != nil {
		return err
	}
	return n.mailer.Send(contact.Email, "Thank you for contacting us!", userBody)
}

func (n *Notifier) NotifyJobApplication(app *models.JobApplication, jobTitle string) error {
	body, err := render(jobApplicationTmpl, struct {
		FullName string
		JobTitle string
	}{app.FullName, jobTitle})
	if err != nil {
		return err
	}
	subject := fmt.Sprintf("Thank You for Applying to %s!", jobTitle)
	return n.mailer.Send(app.Email, subject, body)
}

func (n *Notifier) NotifyOpenApplication(app *models.OpenApplication) error {
	position := app.DesiredPosition
	if position == "" {
		position = "the position you applied for"
	}
	body, err := render(openApplicationTmpl, struct {
		FullName        string
		DesiredPosition string
	}{app.FullName, position})
	if err != nil {
		return err
	}
	return n.mailer.Send(app.Email, "Thank You for Your Application!", body)
}

func render(tmpl *template.Template, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
