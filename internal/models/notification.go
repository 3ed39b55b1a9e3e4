package models

type Notification struct {
	To      string
	Subject string
	Text    string
}
