package models

import "time"

type NotificationChannel string

const (
	ChannelEmail    NotificationChannel = "email"
	ChannelSMS      NotificationChannel = "sms"
	ChannelWhatsapp NotificationChannel = "whatsapp"
	ChannelInApp    NotificationChannel = "inapp"
)

// Channels lists every channel in display order.
var Channels = []NotificationChannel{ChannelEmail, ChannelSMS, ChannelWhatsapp, ChannelInApp}

func (c NotificationChannel) Valid() bool {
	for _, ch := range Channels {
		if ch == c {
			return true
		}
	}
	return false
}

type Notification struct {
	ID        string              `json:"id"`
	Title     string              `json:"title"`
	Body      string              `json:"body"`
	Channel   NotificationChannel `json:"channel"`
	CreatedAt time.Time           `json:"createdAt"`
	Read      bool                `json:"read"`
}

func (n Notification) GetID() string { return n.ID }

// NotificationPrefs maps a channel to whether it is enabled.
type NotificationPrefs map[NotificationChannel]bool

// DefaultNotificationPrefs returns email and in-app on, sms and whatsapp off.
func DefaultNotificationPrefs() NotificationPrefs {
	return NotificationPrefs{
		ChannelEmail:    true,
		ChannelSMS:      false,
		ChannelWhatsapp: false,
		ChannelInApp:    true,
	}
}
