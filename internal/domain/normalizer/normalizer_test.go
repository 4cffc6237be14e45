package normalizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_MerchantCaseAndWhitespace(t *testing.T) {
	a := Normalize("NETFLIX.COM 123456", PurposeMerchant)
	b := Normalize("netflix.com   123456", PurposeMerchant)
	assert.Equal(t, a, b)
}

func TestNormalize_KnownServiceKeepsText(t *testing.T) {
	// A known service name short-circuits aggressive cleanup, so the long
	// digit run survives in the key.
	key := Normalize("NETFLIX.COM 123456", PurposeMerchant)
	assert.Equal(t, "netflix.com 123456", key)
}

func TestNormalize_StoreNumbersCollapse(t *testing.T) {
	a := Normalize("GROCERY STORE #4821", PurposeMerchant)
	b := Normalize("GROCERY STORE #9103", PurposeMerchant)
	assert.Equal(t, a, b)
	assert.Equal(t, "grocery store", a)
}

func TestNormalize_DistinctMerchantsStayDistinct(t *testing.T) {
	assert.NotEqual(t,
		Normalize("NETFLIX", PurposeMerchant),
		Normalize("SPOTIFY", PurposeMerchant),
	)
}

func TestNormalize_MerchantCleanup(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"long digit run stripped", "PAYMENT 12345678 STORE", "payment store"},
		{"short digit run kept", "STORE 42", "store 42"},
		{"masked digits stripped", "CARD ****1234 STORE", "card 1234 store"},
		{"trailing reference stripped", "ELECTRIC CO-99812", "electric co"},
		{"hebrew service kept", "ביטוח ישיר 445566778899", "ביטוח ישיר 445566778899"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input, PurposeMerchant))
		})
	}
}

func TestNormalize_SourceCleanup(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"four digit run stripped", "SALARY REF 2024", "salary ref"},
		{"short mask stripped", "EMPLOYER ** DEPOSIT", "employer  deposit"},
		{"three digits kept", "DIV 123", "div 123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input, PurposeSource))
		})
	}
}

func TestNormalize_Deterministic(t *testing.T) {
	for i := 0; i < 3; i++ {
		assert.Equal(t, Normalize("ACME CORP 999999", PurposeMerchant), Normalize("ACME CORP 999999", PurposeMerchant))
		assert.Equal(t, Normalize("ACME CORP 999999", PurposeSource), Normalize("ACME CORP 999999", PurposeSource))
	}
}
