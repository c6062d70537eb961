// Package notify delivers one-time codes over email and SMS. Every channel
// is optional; a Dispatcher with no channel configured drops messages.
package notify

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cinerank-auth/internal/data/entity"
)

// ErrNoChannel is returned when no channel is configured for a target.
var ErrNoChannel = errors.New("no delivery channel configured")

type Message struct {
	Subject string
	Text    string
	HTML    string
}

// Sender delivers a message to a single address (email or E.164 phone).
type Sender interface {
	Send(ctx context.Context, to string, msg Message) error
}

// Dispatcher routes a code to the email or SMS sender based on the target.
type Dispatcher struct {
	Email Sender
	SMS   Sender
}

// SendCode delivers code to target. Phone targets lose their tel: marker
// before they reach the SMS sender.
func (d *Dispatcher) SendCode(ctx context.Context, target, code string, validity time.Duration) error {
	msg := CodeMessage(code, validity)

	if entity.IsPhoneTarget(target) {
		if d == nil || d.SMS == nil {
			return ErrNoChannel
		}
		return d.SMS.Send(ctx, strings.TrimPrefix(target, entity.PhoneTargetPrefix), msg)
	}

	if d == nil || d.Email == nil {
		return ErrNoChannel
	}
	return d.Email.Send(ctx, target, msg)
}

// CodeMessage renders the OTP message.
func CodeMessage(code string, validity time.Duration) Message {
	minutes := int(validity.Minutes())
	return Message{
		Subject: "Your CineRank OTP",
		Text:    fmt.Sprintf("Your CineRank OTP code is %s. It expires in %d minutes.", code, minutes),
		HTML:    fmt.Sprintf("<p>Your OTP code is <strong>%s</strong>. It expires in %d minutes.</p>", code, minutes),
	}
}
