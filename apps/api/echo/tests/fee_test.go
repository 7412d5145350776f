package tests

import (
	"encoding/json"
	"math"
	"net/http"
	"testing"
	"time"

	"github.com/brainaspire/academia/core/fee"
)

func quoteRequest() fee.QuoteRequest {
	return fee.QuoteRequest{
		Grade:            9,
		DateJoined:       time.Date(2025, time.September, 15, 0, 0, 0, 0, time.UTC),
		PrevYearResults:  fee.PrevYearResults{Percentage: 92, Year: 2025, Board: "CBSE"},
		SelectedSubjects: []string{"maths", "physics", "chemistry", "biology", "english"},
		PaymentType:      "one_time",
		CoachingMode:     "online",
	}
}

func Test_feeApi_calculateCourseFee(t *testing.T) {
	req, rec := newRequest(http.MethodPost, "/v1/fee/calculate-course-fee", marchallObj(t, quoteRequest()))
	app.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("code = %v, want %v; body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var quote fee.Quote
	if err := json.Unmarshal(rec.Body.Bytes(), &quote); err != nil {
		t.Fatalf("unmarshalling Quote: %v", err)
	}

	// Sep 15 2025 -> Feb 28 2026 at 1000/month, 5 subjects = 100%
	wantTuition := (16.0/30.0)*1000 + 4*1000 + (1.0/28.0)*1000
	wantTotal := 1000 + 500 + wantTuition
	wantFinal := wantTotal - wantTuition*0.18 // one_time 5 + online 3 + scholarship 10

	if math.Abs(quote.TuitionFee-wantTuition) > 1e-6 {
		t.Errorf("TuitionFee = %v, want %v", quote.TuitionFee, wantTuition)
	}
	if math.Abs(quote.TotalFee-wantTotal) > 1e-6 {
		t.Errorf("TotalFee = %v, want %v", quote.TotalFee, wantTotal)
	}
	if quote.Discount.TotalDiscount != 18 {
		t.Errorf("TotalDiscount = %v, want 18", quote.Discount.TotalDiscount)
	}
	if math.Abs(quote.FinalFee-wantFinal) > 1e-6 {
		t.Errorf("FinalFee = %v, want %v", quote.FinalFee, wantFinal)
	}
}

func Test_feeApi_calculateCourseFee_badRequests(t *testing.T) {
	mutate := func(f func(*fee.QuoteRequest)) []byte {
		qr := quoteRequest()
		f(&qr)
		return marchallObj(t, qr)
	}

	tests := []httpTest{
		{name: "empty body", body: []byte("{}"), wantCode: http.StatusBadRequest},
		{name: "unknown grade", body: mutate(func(qr *fee.QuoteRequest) { qr.Grade = 12 }), wantCode: http.StatusBadRequest},
		{name: "bad payment type", body: mutate(func(qr *fee.QuoteRequest) { qr.PaymentType = "weekly" }), wantCode: http.StatusBadRequest},
		{name: "bad coaching mode", body: mutate(func(qr *fee.QuoteRequest) { qr.CoachingMode = "hybrid" }), wantCode: http.StatusBadRequest},
		{name: "no subjects", body: mutate(func(qr *fee.QuoteRequest) { qr.SelectedSubjects = nil }), wantCode: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(http.MethodPost, "/v1/fee/calculate-course-fee", tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}
