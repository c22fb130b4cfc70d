package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaskNumber(t *testing.T) {
	cases := []struct {
		name       string
		methodType string
		number     string
		want       string
	}{
		{"card keeps last four", MethodCard, "4242424242424242", "**** 4242"},
		{"transfer keeps last four", MethodTransfer, "012345678901234567", "**** 4567"},
		{"paypal has no number", MethodPayPal, "whatever", ""},
		{"mercadopago has no number", MethodMercadoPago, "whatever", ""},
		{"short number kept as is", MethodCard, "99", "**** 99"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, maskNumber(tc.methodType, tc.number))
		})
	}
}

func TestFakeReference_Prefixes(t *testing.T) {
	cases := map[string]string{
		MethodTransfer:    "SPEI-",
		MethodCard:        "AUTH-VISA-",
		MethodPayPal:      "PAYID-",
		MethodMercadoPago: "MP-",
		"Otro":            "GEN-",
	}
	for methodType, prefix := range cases {
		ref := fakeReference(methodType)
		assert.True(t, strings.HasPrefix(ref, prefix), "%s: got %s", methodType, ref)
		assert.Greater(t, len(ref), len(prefix))
	}
}

func TestAddMethod_InvalidType(t *testing.T) {
	svc := NewPaymentService(newFakePaymentRepo())

	_, err := svc.AddMethod(context.Background(), 1, AddMethodInput{
		Type: "Cheque", Alias: "nope",
	})

	assertAppErrorStatus(t, err, 400)
}

func TestAddMethod_CardRequiresNumber(t *testing.T) {
	svc := NewPaymentService(newFakePaymentRepo())

	_, err := svc.AddMethod(context.Background(), 1, AddMethodInput{
		Type: MethodCard, Alias: "mi tarjeta",
	})

	assertAppErrorStatus(t, err, 400)
}

func TestAddMethod_DefaultIsExclusive(t *testing.T) {
	repo := newFakePaymentRepo()
	svc := NewPaymentService(repo)

	first, err := svc.AddMethod(context.Background(), 1, AddMethodInput{
		Type: MethodCard, Alias: "tarjeta", Number: "4242424242424242", IsDefault: true,
	})
	require.NoError(t, err)

	second, err := svc.AddMethod(context.Background(), 1, AddMethodInput{
		Type: MethodPayPal, Alias: "paypal", IsDefault: true,
	})
	require.NoError(t, err)

	assert.False(t, repo.methods[first.ID].IsDefault)
	assert.True(t, repo.methods[second.ID].IsDefault)
}

func TestPay_Success(t *testing.T) {
	repo := newFakePaymentRepo()
	svc := NewPaymentService(repo)
	method, err := svc.AddMethod(context.Background(), 1, AddMethodInput{
		Type: MethodTransfer, Alias: "cuenta", Number: "0123456789012345",
	})
	require.NoError(t, err)

	payment, err := svc.Pay(context.Background(), 1, PayInput{
		MethodID: method.ID, Concept: "Renta enero", Amount: 8500,
	})

	require.NoError(t, err)
	assert.Equal(t, "Pagado", string(payment.Status))
	assert.Equal(t, "MXN", payment.Currency)
	assert.True(t, strings.HasPrefix(payment.Reference, "SPEI-"))
}

func TestPay_ForeignMethodRejected(t *testing.T) {
	repo := newFakePaymentRepo()
	svc := NewPaymentService(repo)
	method, err := svc.AddMethod(context.Background(), 1, AddMethodInput{
		Type: MethodPayPal, Alias: "paypal",
	})
	require.NoError(t, err)

	_, err = svc.Pay(context.Background(), 2, PayInput{
		MethodID: method.ID, Concept: "Renta", Amount: 100,
	})

	assertAppErrorStatus(t, err, 403)
}

func TestPay_InvalidAmount(t *testing.T) {
	svc := NewPaymentService(newFakePaymentRepo())

	_, err := svc.Pay(context.Background(), 1, PayInput{MethodID: 1, Concept: "x", Amount: 0})

	assertAppErrorStatus(t, err, 400)
}

func TestPay_UnknownMethod(t *testing.T) {
	svc := NewPaymentService(newFakePaymentRepo())

	_, err := svc.Pay(context.Background(), 1, PayInput{MethodID: 99, Concept: "x", Amount: 10})

	assertAppErrorStatus(t, err, 404)
}
