// Package purchase holds the placeholder for the "Buy Now" action. No order is
// placed; the request is logged and acknowledged.
package purchase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/five82/carlot/internal/listing"
)

// Receipt acknowledges a buy request.
type Receipt struct {
	RequestID   string
	RecordID    string
	Message     string
	RequestedAt time.Time
}

// Buyer handles buy requests for a listing.
type Buyer interface {
	Buy(ctx context.Context, rec listing.CarRecord) (Receipt, error)
}

var _ Buyer = (*Stub)(nil)

// Stub logs the request and returns a receipt.
type Stub struct {
	logger *zap.Logger
	now    func() time.Time
}

// NewStub returns a Stub logging through logger.
func NewStub(logger *zap.Logger) *Stub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Stub{logger: logger.Named("purchase"), now: time.Now}
}

// Buy never fails unless ctx is already done.
func (s *Stub) Buy(ctx context.Context, rec listing.CarRecord) (Receipt, error) {
	if err := ctx.Err(); err != nil {
		return Receipt{}, err
	}
	receipt := Receipt{
		RequestID:   uuid.NewString(),
		RecordID:    rec.ID,
		Message:     Message(rec),
		RequestedAt: s.now(),
	}
	s.logger.Info("buy requested",
		zap.String("request_id", receipt.RequestID),
		zap.String("record_id", rec.ID),
		zap.String("message", receipt.Message),
	)
	return receipt, nil
}

// Message formats the acknowledgement shown to the user.
func Message(rec listing.CarRecord) string {
	name, _ := rec.Attr(listing.FieldCarName)
	model, _ := rec.Attr(listing.FieldModel)
	return strings.TrimSpace("Buying " + strings.TrimSpace(name+" "+model))
}
