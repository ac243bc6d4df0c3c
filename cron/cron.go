package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/talenthub/booking-api/db"
	"github.com/talenthub/booking-api/models"
	"github.com/talenthub/booking-api/utils"
)

// StartCronJobs initializes and starts the cron scheduler for booking reminders
func StartCronJobs() {
	c := cron.New()
	// Run every minute to check for bookings in the next hour
	_, err := c.AddFunc("* * * * *", sendBookingReminders)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for booking reminders")
}

// sendBookingReminders checks for bookings and sends reminders
func sendBookingReminders() {
	var bookings []models.Booking
	now := time.Now()
	// Look for bookings starting in the next hour
	startWindow := now.Add(55 * time.Minute)
	endWindow := now.Add(65 * time.Minute)

	err := db.DB.Preload("Artist").Preload("Service").Preload("Expert").
		Where("status = ? AND start_time BETWEEN ? AND ?", models.StatusConfirmed, startWindow, endWindow).
		Find(&bookings).Error
	if err != nil {
		log.Printf("Error fetching bookings for reminders: %v", err)
		return
	}

	for _, booking := range bookings {
		if err := sendReminderEmail(&booking); err != nil {
			log.Printf("Failed to send reminder for booking %d: %v", booking.ID, err)
			continue
		}
		log.Printf("Sent reminder for booking %d to %s", booking.ID, booking.Artist.Email)
	}
}

// sendReminderEmail constructs and sends the reminder email
func sendReminderEmail(booking *models.Booking) error {
	subject := fmt.Sprintf("Reminder: Upcoming Session - %s", booking.Title)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder for your session scheduled in one hour.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Expert:</strong> %s</li>
			<li><strong>Start Time:</strong> %s</li>
			<li><strong>End Time:</strong> %s</li>
			<li><strong>Status:</strong> %s</li>
		</ul>
		<p>If you need to reschedule or cancel, please do so as soon as possible.</p>
		<p>Best regards,</p>
		<p>The TalentHub Team</p>
	`, booking.Artist.FullName(), booking.Service.ServiceTitle, booking.Expert.FullName(),
		booking.StartTime.Format("2006-01-02 15:04:05"),
		booking.EndTime.Format("2006-01-02 15:04:05"),
		booking.Status)

	return utils.SendEmail(booking.Artist.Email, subject, body)
}
