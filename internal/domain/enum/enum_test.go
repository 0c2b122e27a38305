package enum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvoiceStatusTransitions(t *testing.T) {
	assert.True(t, InvoiceStatusDraft.CanTransitionTo(InvoiceStatusSend))
	assert.False(t, InvoiceStatusSend.CanTransitionTo(InvoiceStatusDraft))
	assert.False(t, InvoiceStatusSend.CanTransitionTo(InvoiceStatusSend))
	assert.False(t, InvoiceStatusDraft.CanTransitionTo(InvoiceStatusDraft))
}

func TestInvoiceStatusIsValid(t *testing.T) {
	assert.True(t, InvoiceStatusDraft.IsValid())
	assert.True(t, InvoiceStatusSend.IsValid())
	assert.False(t, InvoiceStatus("paid").IsValid())
}

func TestParseAuthMethod(t *testing.T) {
	assert.Equal(t, AuthMethodOAuth2, ParseAuthMethod("oauth2"))
	assert.Equal(t, AuthMethodPlain, ParseAuthMethod("plain"))
	assert.Equal(t, AuthMethodNone, ParseAuthMethod("none"))
	assert.Equal(t, AuthMethodUnknown, ParseAuthMethod("saml"))
	assert.Equal(t, AuthMethodUnknown, ParseAuthMethod(""))
}

func TestStatusFilterMatches(t *testing.T) {
	assert.True(t, StatusFilterAll.Matches(InvoiceStatusDraft))
	assert.True(t, StatusFilterAll.Matches(InvoiceStatusSend))
	assert.True(t, StatusFilterDraft.Matches(InvoiceStatusDraft))
	assert.False(t, StatusFilterDraft.Matches(InvoiceStatusSend))
	assert.True(t, StatusFilter("").Matches(InvoiceStatusSend))
}
