package session_test

import (
	"testing"
	"time"

	"github.com/mozzey/partyline/internal/domain"
	"github.com/mozzey/partyline/internal/session"
)

const testSecret = "test-secret-key-for-session-codec"

func TestCodec_RoundTrip(t *testing.T) {
	codec := session.NewCodec([]byte(testSecret), time.Hour)

	sess := domain.Session{domain.SessionKeyUserID: "abc-123"}
	value, err := codec.Encode(sess)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	got := codec.Decode(value)
	if got == nil {
		t.Fatal("expected session, got absent")
	}
	if got.UserID() != "abc-123" {
		t.Fatalf("expected userId abc-123, got %q", got.UserID())
	}
	if len(got) != len(sess) {
		t.Fatalf("expected %d entries, got %d", len(sess), len(got))
	}
}

func TestCodec_RoundTrip_EmptySession(t *testing.T) {
	codec := session.NewCodec([]byte(testSecret), time.Hour)

	value, err := codec.Encode(domain.Session{})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	got := codec.Decode(value)
	if got == nil {
		t.Fatal("expected empty session, got absent")
	}
	if len(got) != 0 {
		t.Fatalf("expected no entries, got %d", len(got))
	}
}

func TestCodec_Decode_Absent(t *testing.T) {
	codec := session.NewCodec([]byte(testSecret), time.Hour)

	valid, err := codec.Encode(domain.Session{domain.SessionKeyUserID: "u1"})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	tampered := valid[:len(valid)-5] + "XXXXX"

	other := session.NewCodec([]byte("a-completely-different-secret"), time.Hour)
	foreign, err := other.Encode(domain.Session{domain.SessionKeyUserID: "u1"})
	if err != nil {
		t.Fatalf("Encode with other secret: %v", err)
	}

	tests := []struct {
		name  string
		value string
	}{
		{"empty", ""},
		{"malformed", "not-a-session-token"},
		{"tampered signature", tampered},
		{"wrong secret", foreign},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := codec.Decode(tc.value); got != nil {
				t.Fatalf("expected absent, got %v", got)
			}
		})
	}
}

func TestCodec_Decode_Expired(t *testing.T) {
	codec := session.NewCodec([]byte(testSecret), -time.Minute)

	value, err := codec.Encode(domain.Session{domain.SessionKeyUserID: "u1"})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	fresh := session.NewCodec([]byte(testSecret), time.Hour)
	if got := fresh.Decode(value); got != nil {
		t.Fatalf("expected absent for expired token, got %v", got)
	}
}

func TestCodec_Encode_NotDeterministicButVerifiable(t *testing.T) {
	codec := session.NewCodec([]byte(testSecret), time.Hour)
	sess := domain.Session{domain.SessionKeyUserID: "u1"}

	v1, err := codec.Encode(sess)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	v2, err := codec.Encode(sess)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	// Timestamps may make values differ; both must still verify.
	for _, v := range []string{v1, v2} {
		got := codec.Decode(v)
		if got == nil || got.UserID() != "u1" {
			t.Fatalf("expected decodable session, got %v", got)
		}
	}
}
