package service

import (
	m "villashare_backend/internals/features/bookings/payment/model"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

var SnapClient snap.Client

// InitMidtrans is called once at bootstrap.
func InitMidtrans(serverKey string, useProduction bool) {
	env := midtrans.Sandbox
	if useProduction {
		env = midtrans.Production
	}
	SnapClient.New(serverKey, env)
}

// GenerateSnapToken creates a Snap token + redirect_url for a payment.
func GenerateSnapToken(p m.PaymentModel, name, email string) (string, string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  p.PaymentOrderID,
			GrossAmt: int64(p.PaymentAmount),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: name,
			Email: email,
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", "", err
	}

	return resp.Token, resp.RedirectURL, nil
}
