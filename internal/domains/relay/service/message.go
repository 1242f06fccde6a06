package service

import (
	"flexwork/internal/domains/notification/model"
	"strconv"

	"firebase.google.com/go/v4/messaging"
)

const (
	dataKeyNotificationID = "notificationId"
	dataKeyCreatedAt      = "createdAt"
)

type androidOptions struct {
	channelID string
	sound     string
}

func newMessage(token, title, body string, data map[string]string, android androidOptions) *messaging.Message {
	return &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
		Android: &messaging.AndroidConfig{
			Notification: &messaging.AndroidNotification{
				ChannelID: android.channelID,
				Sound:     android.sound,
			},
		},
	}
}

// messageFor stringifies the payload and adds the notification id and creation time.
func messageFor(notification model.Notification, android androidOptions) *messaging.Message {
	data := notification.Data.Strings()
	data[dataKeyNotificationID] = notification.ID
	data[dataKeyCreatedAt] = strconv.FormatInt(notification.CreatedAt, 10)

	return newMessage(notification.FCMToken, notification.Title, notification.Body, data, android)
}
