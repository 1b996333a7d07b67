package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/hrms-service/internal/domain"
)

// ErrOTPNotFound is returned when no code is stored for an email.
var ErrOTPNotFound = errors.New("otp not found")

// OTPStore keeps at most one outstanding one-time code per email.
// Saving overwrites any prior code, so requesting a new OTP immediately
// invalidates the old one. Records disappear on their own once the TTL
// elapses; nothing sweeps them proactively.
type OTPStore interface {
	Save(ctx context.Context, email string, record domain.OTPRecord, ttl time.Duration) error
	Get(ctx context.Context, email string) (*domain.OTPRecord, error)
	MarkVerified(ctx context.Context, email string) error
	Delete(ctx context.Context, email string) error
}

const otpKeyPrefix = "otp:"

type redisOTPStore struct {
	client *redis.Client
}

// NewRedisOTPStore returns a Redis-backed store. Keeping codes in a
// shared store rather than process memory preserves the one-time
// guarantee when more than one server instance runs.
func NewRedisOTPStore(client *redis.Client) OTPStore {
	return &redisOTPStore{client: client}
}

func (s *redisOTPStore) Save(ctx context.Context, email string, record domain.OTPRecord, ttl time.Duration) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, otpKeyPrefix+email, data, ttl).Err()
}

func (s *redisOTPStore) Get(ctx context.Context, email string) (*domain.OTPRecord, error) {
	data, err := s.client.Get(ctx, otpKeyPrefix+email).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrOTPNotFound
		}
		return nil, err
	}
	var record domain.OTPRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// MarkVerified flips the verified flag while keeping the remaining TTL,
// so verification never extends the code's lifetime.
func (s *redisOTPStore) MarkVerified(ctx context.Context, email string) error {
	record, err := s.Get(ctx, email)
	if err != nil {
		return err
	}
	record.Verified = true
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}
	// XX restricts the write to a still-live key. A plain SET here would
	// recreate a key that expired after the Get, without any TTL.
	err = s.client.SetArgs(ctx, otpKeyPrefix+email, data, redis.SetArgs{
		Mode:    "XX",
		KeepTTL: true,
	}).Err()
	if errors.Is(err, redis.Nil) {
		return ErrOTPNotFound
	}
	return err
}

func (s *redisOTPStore) Delete(ctx context.Context, email string) error {
	return s.client.Del(ctx, otpKeyPrefix+email).Err()
}
