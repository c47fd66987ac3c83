package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/mypham-next/internal/config"
	"github.com/mypham-next/internal/constants"
	"github.com/mypham-next/internal/models"

	"github.com/shopspring/decimal"
)

func TestBuildOrderStatusContent(t *testing.T) {
	tests := []struct {
		name                string
		locale              string
		status              string
		wantSubjectContains []string
		wantBodyContains    []string
	}{
		{
			name:   "shipping_vi",
			locale: constants.LocaleViVN,
			status: constants.OrderStatusShipping,
			wantSubjectContains: []string{
				"Cập nhật đơn hàng",
				"Đang giao",
			},
			wantBodyContains: []string{
				"Đơn hàng MP20250901120000123456",
				"Đang giao",
				"329999 VND",
			},
		},
		{
			name:   "canceled_en",
			locale: constants.LocaleEnUS,
			status: constants.OrderStatusCanceled,
			wantSubjectContains: []string{
				"Order update",
				"Đã hủy",
			},
			wantBodyContains: []string{
				"MP20250901120000123456",
				"329999 VND",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := OrderStatusEmailInput{
				OrderNo: "MP20250901120000123456",
				Status:  tt.status,
				Amount:  models.NewMoneyFromDecimal(decimal.NewFromInt(329999)),
			}
			subject, body := buildOrderStatusContent(input, tt.locale)
			for _, expected := range tt.wantSubjectContains {
				if !strings.Contains(subject, expected) {
					t.Fatalf("subject missing %q: %s", expected, subject)
				}
			}
			for _, expected := range tt.wantBodyContains {
				if !strings.Contains(body, expected) {
					t.Fatalf("body missing %q: %s", expected, body)
				}
			}
		})
	}
}

func TestBuildBookingStatusContent(t *testing.T) {
	input := BookingStatusEmailInput{
		CustomerName:    "Trần Thị B",
		BookingDate:     "15/09/2026",
		ServiceCategory: "Chăm sóc da",
		Status:          constants.BookingStatusConfirmed,
	}

	subject, body := buildBookingStatusContent(input, constants.LocaleViVN)
	if !strings.Contains(subject, "Đã xác nhận") {
		t.Fatalf("subject should carry localized status label: %s", subject)
	}
	for _, expected := range []string{"Trần Thị B", "Chăm sóc da", "15/09/2026", "Đã xác nhận"} {
		if !strings.Contains(body, expected) {
			t.Fatalf("body missing %q: %s", expected, body)
		}
	}

	// 未识别的状态原样输出
	input.Status = "mystery"
	subject, _ = buildBookingStatusContent(input, constants.LocaleViVN)
	if !strings.Contains(subject, "mystery") {
		t.Fatalf("unknown status should pass through, got %s", subject)
	}
}

func TestSendTextEmailGuards(t *testing.T) {
	svc := NewEmailService(&config.EmailConfig{Enabled: false})
	if err := svc.sendTextEmail("a@b.vn", "s", "b"); !errors.Is(err, ErrEmailServiceDisabled) {
		t.Fatalf("disabled config want ErrEmailServiceDisabled got %v", err)
	}

	svc.SetConfig(&config.EmailConfig{Enabled: true})
	if err := svc.sendTextEmail("a@b.vn", "s", "b"); !errors.Is(err, ErrEmailServiceNotConfigured) {
		t.Fatalf("missing host want ErrEmailServiceNotConfigured got %v", err)
	}

	svc.SetConfig(&config.EmailConfig{Enabled: true, Host: "smtp.example.com", Port: 587, From: "shop@example.com"})
	if err := svc.sendTextEmail("not-an-address", "s", "b"); !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("bad recipient want ErrInvalidEmail got %v", err)
	}
}

func TestIsEmailRecipientRejected(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "smtp_550_no_such_recipient",
			err:  errors.New("550 No such recipient here"),
			want: true,
		},
		{
			name: "smtp_user_unknown",
			err:  errors.New("SMTP 5.1.1 user unknown"),
			want: true,
		},
		{
			name: "smtp_550_mailbox_unavailable",
			err:  errors.New("550 mailbox unavailable"),
			want: true,
		},
		{
			name: "network_timeout",
			err:  errors.New("dial tcp timeout"),
			want: false,
		},
		{
			name: "nil_error",
			err:  nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isEmailRecipientRejected(tt.err); got != tt.want {
				t.Fatalf("isEmailRecipientRejected() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNormalizeEmailSendError(t *testing.T) {
	rejected := errors.New("550 No such recipient here")
	if got := normalizeEmailSendError(rejected); !errors.Is(got, ErrEmailRecipientRejected) {
		t.Fatalf("normalizeEmailSendError() expected ErrEmailRecipientRejected, got %v", got)
	}

	networkErr := errors.New("dial tcp timeout")
	if got := normalizeEmailSendError(networkErr); !errors.Is(got, networkErr) {
		t.Fatalf("normalizeEmailSendError() should keep original error, got %v", got)
	}

	if got := normalizeEmailSendError(nil); got != nil {
		t.Fatalf("normalizeEmailSendError(nil) should be nil, got %v", got)
	}
}
