// Package flash carries a one-shot status message from a redirecting
// response to the request that follows it.
package flash

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"
)

// Kind tells a success notice from an error.
type Kind string

// Message kinds.
const (
	KindMessage Kind = "message"
	KindError   Kind = "error"
)

// Message is a short-lived status string shown once after a redirect.
type Message struct {
	Kind Kind   `json:"kind"`
	Text string `json:"text"`
}

// Success builds a success message.
func Success(text string) Message { return Message{Kind: KindMessage, Text: text} }

// Failure builds an error message.
func Failure(text string) Message { return Message{Kind: KindError, Text: text} }

// IsError reports whether the message describes a failure.
func (m Message) IsError() bool { return m.Kind == KindError }

// Store hands a message to the next request and forgets it once read.
type Store interface {
	// Put attaches m to the response so that the next request can Pop it.
	Put(w http.ResponseWriter, r *http.Request, m Message) error
	// Pop returns the pending message, if any, and discards it.
	Pop(w http.ResponseWriter, r *http.Request) (Message, bool, error)
}

// ErrMalformed is returned by Pop when the carried message cannot be decoded.
var ErrMalformed = errors.New("flash: malformed message")

var errUnknownKind = errors.New("flash: unknown message kind")

func (k Kind) valid() bool { return k == KindMessage || k == KindError }

func encode(m Message) ([]byte, error) {
	if !m.Kind.valid() {
		return nil, errUnknownKind
	}
	return json.Marshal(m)
}

func decode(b []byte) (Message, error) {
	var m Message
	if err := json.Unmarshal(b, &m); err != nil {
		return Message{}, ErrMalformed
	}
	if !m.Kind.valid() {
		return Message{}, ErrMalformed
	}
	return m, nil
}

func clearCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func setCookie(w http.ResponseWriter, name, value string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
