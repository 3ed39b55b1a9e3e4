package mailer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/adanyl0v/go-task-services/internal/models"
)

const testSender = `"Task Manager" <noreply@taskmanager.com>`

func TestNewMessage(t *testing.T) {
	msg, err := NewMessage(testSender, models.Notification{
		To:      "alice@example.com",
		Subject: "Task created",
		Text:    "Your task was created.",
	})
	if err != nil {
		t.Fatalf("NewMessage error: %v", err)
	}

	var buf bytes.Buffer
	if _, err = msg.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo error: %v", err)
	}
	raw := buf.String()

	for _, want := range []string{
		"noreply@taskmanager.com",
		"alice@example.com",
		"Subject: Task created",
		"Your task was created.",
	} {
		if !strings.Contains(raw, want) {
			t.Fatalf("message does not contain %q:\n%s", want, raw)
		}
	}
}

func TestNewMessageRejectsBadRecipient(t *testing.T) {
	_, err := NewMessage(testSender, models.Notification{To: "not an address", Subject: "s", Text: "t"})
	if err == nil {
		t.Fatal("expected an error for an invalid recipient")
	}
}
