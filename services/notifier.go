package services

import (
	"fmt"
	"html"
	"sync"

	"github.com/meinhoongagan/skillverify/models"
	"github.com/meinhoongagan/skillverify/utils"
	"github.com/sirupsen/logrus"
)

// Notifier emails booking parties in the background. Delivery failures are
// logged and never reach the request that triggered them.
type Notifier struct {
	mailer utils.Mailer
	wg     sync.WaitGroup
}

func NewNotifier(mailer utils.Mailer) *Notifier {
	if mailer == nil {
		mailer = utils.LogMailer{}
	}
	return &Notifier{mailer: mailer}
}

// Wait blocks until every queued email has been attempted.
func (n *Notifier) Wait() {
	n.wg.Wait()
}

// BookingCreated tells the worker about a new request. The booking must have
// Customer and Worker.User loaded.
func (n *Notifier) BookingCreated(b *models.Booking) {
	if b.Worker.User == nil {
		return
	}
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>You have a new booking request.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Customer:</strong> %s</li>
			<li><strong>Date:</strong> %s at %s</li>
			<li><strong>Address:</strong> %s</li>
			<li><strong>Amount:</strong> %.2f</li>
		</ul>
		<p>Please confirm or decline it from your dashboard.</p>
		<p>The SkillVerify Team</p>
	`, html.EscapeString(b.Worker.User.FullName), html.EscapeString(b.Service),
		html.EscapeString(b.Customer.FullName), b.ScheduledDate.Format(utils.DateLayout),
		b.ScheduledTime, html.EscapeString(b.Address), b.Amount)

	n.send(b, b.Worker.User.Email, "New Booking Request", body)
}

// StatusChanged tells the party who did not make the change.
func (n *Notifier) StatusChanged(b *models.Booking, actor models.Role) {
	if b.Worker.User == nil {
		return
	}
	to, name := b.Customer.Email, b.Customer.FullName
	if actor == models.RoleCustomer {
		to, name = b.Worker.User.Email, b.Worker.User.FullName
	}
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>The booking for <strong>%s</strong> on %s at %s is now <strong>%s</strong>.</p>
		<p>The SkillVerify Team</p>
	`, html.EscapeString(name), html.EscapeString(b.Service),
		b.ScheduledDate.Format(utils.DateLayout), b.ScheduledTime, b.Status)

	n.send(b, to, "Booking "+string(b.Status), body)
}

func (n *Notifier) send(b *models.Booking, to, subject, body string) {
	if to == "" {
		return
	}
	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		if err := n.mailer.Send(to, subject, body); err != nil {
			utils.Logger.WithFields(logrus.Fields{
				"booking_id": b.ID,
				"to":         to,
				"error":      err,
			}).Warn("failed to send booking email")
		}
	}()
}
