package models

import "time"

// PaymentStatusPaid is the only status a ledger row is ever written with.
const PaymentStatusPaid = "paid"

// Payment is the append-only ledger row recording a verified
// subscription payment. RazorpayPaymentID carries a unique index so a
// re-delivered confirmation cannot produce a second row.
type Payment struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	UserID            uint      `json:"user_id" gorm:"index"`
	PlanID            uint      `json:"plan_id"`
	Amount            int64     `json:"amount"` // minor units (paise)
	RazorpayOrderID   string    `json:"razorpay_order_id" gorm:"not null"`
	RazorpayPaymentID string    `json:"razorpay_payment_id" gorm:"uniqueIndex;not null"`
	RazorpaySignature string    `json:"-"`
	Status            string    `json:"status" gorm:"default:'paid'"`
	CreatedAt         time.Time `json:"created_at"`
}

// HelpPayment records a verified Help & Earn contribution along with
// the donor and referral details captured on the form.
type HelpPayment struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	UserID            uint      `json:"user_id" gorm:"index"`
	Amount            int64     `json:"amount"` // minor units (paise)
	Name              string    `json:"name"`
	Phone             string    `json:"phone"`
	Email             string    `json:"email"`
	ReferralName      string    `json:"referral_name"`
	ReferralID        string    `json:"referral_id"`
	Category          string    `json:"category"`
	GiveAmount        string    `json:"give_amount"`
	ReferralNumber    string    `json:"referral_number"`
	RazorpayOrderID   string    `json:"razorpay_order_id" gorm:"not null"`
	RazorpayPaymentID string    `json:"razorpay_payment_id" gorm:"uniqueIndex;not null"`
	RazorpaySignature string    `json:"-"`
	Status            string    `json:"status" gorm:"default:'paid'"`
	CreatedAt         time.Time `json:"created_at"`
}
