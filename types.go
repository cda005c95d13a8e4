package paykit

import (
	"github.com/dmitrymomot/paykit/pkg/enum"
)

// Metadata is a free-form string map callers can attach to most resources.
type Metadata map[string]string

// Interval is a billing period length.
type Interval string

const (
	IntervalDay   Interval = "day"
	IntervalWeek  Interval = "week"
	IntervalMonth Interval = "month"
	IntervalYear  Interval = "year"
)

// PaymentStatus is the lifecycle state of a payment. Most states serialize
// as their own name; the multi-word ones carry explicit snake_case tokens.
type PaymentStatus string

const (
	PaymentStatusProcessing     PaymentStatus = "processing"
	PaymentStatusSucceeded      PaymentStatus = "succeeded"
	PaymentStatusFailed         PaymentStatus = "failed"
	PaymentStatusCancelled      PaymentStatus = "cancelled"
	PaymentStatusRequiresAction PaymentStatus = "RequiresAction"
	PaymentStatusPartialRefund  PaymentStatus = "PartiallyRefunded"
	PaymentStatusRefunded       PaymentStatus = "refunded"
)

// SubscriptionStatus is the lifecycle state of a subscription.
type SubscriptionStatus string

const (
	SubscriptionStatusActive   SubscriptionStatus = "active"
	SubscriptionStatusTrialing SubscriptionStatus = "trialing"
	SubscriptionStatusPastDue  SubscriptionStatus = "PastDue"
	SubscriptionStatusPaused   SubscriptionStatus = "paused"
	SubscriptionStatusCanceled SubscriptionStatus = "canceled"
	SubscriptionStatusExpired  SubscriptionStatus = "expired"
)

func init() {
	enum.Register(enum.Values[Interval]{
		IntervalDay:   "",
		IntervalWeek:  "",
		IntervalMonth: "",
		IntervalYear:  "",
	})
	enum.Register(enum.Values[PaymentStatus]{
		PaymentStatusProcessing:     "",
		PaymentStatusSucceeded:      "",
		PaymentStatusFailed:         "",
		PaymentStatusCancelled:      "",
		PaymentStatusRequiresAction: "requires_action",
		PaymentStatusPartialRefund:  "partially_refunded",
		PaymentStatusRefunded:       "",
	})
	enum.Register(enum.Values[SubscriptionStatus]{
		SubscriptionStatusActive:   "",
		SubscriptionStatusTrialing: "",
		SubscriptionStatusPastDue:  "past_due",
		SubscriptionStatusPaused:   "",
		SubscriptionStatusCanceled: "",
		SubscriptionStatusExpired:  "",
	})
}

func (i Interval) MarshalJSON() ([]byte, error)  { return enum.MarshalJSON(i) }
func (i *Interval) UnmarshalJSON(b []byte) error { return enum.UnmarshalJSON(b, i) }

func (s PaymentStatus) MarshalJSON() ([]byte, error)  { return enum.MarshalJSON(s) }
func (s *PaymentStatus) UnmarshalJSON(b []byte) error { return enum.UnmarshalJSON(b, s) }

func (s SubscriptionStatus) MarshalJSON() ([]byte, error)  { return enum.MarshalJSON(s) }
func (s *SubscriptionStatus) UnmarshalJSON(b []byte) error { return enum.UnmarshalJSON(b, s) }
